package utils

import (
	"testing"
	"time"
)

func TestSyncInterval(t *testing.T) {
	calls := 0
	p := NewSyncInterval(time.Hour, func() { calls += 1 })

	p.Trigger()
	p.Trigger()
	p.Trigger()
	if calls != 1 {
		t.Errorf("calls = %d after triggers, expected 1", calls)
	}

	p.Flush()
	if calls != 2 {
		t.Errorf("calls = %d after flush, expected 2", calls)
	}
	p.Trigger()
	if calls != 2 {
		t.Errorf("calls = %d after flush and trigger, expected 2", calls)
	}

	p = NewSyncInterval(0, func() { calls += 1 })
	p.Trigger()
	p.Trigger()
	if calls != 4 {
		t.Errorf("calls = %d with zero interval, expected 4", calls)
	}
}
