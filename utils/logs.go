package utils

import "time"

// SyncInterval calls handler at most once per minInterval.
// Not safe for concurrent use.
type SyncInterval struct {
	minInterval time.Duration
	handler     func()
	lastCall    time.Time
}

func NewSyncInterval(minInterval time.Duration, handler func()) *SyncInterval {
	return &SyncInterval{minInterval: minInterval, handler: handler}
}

func (p *SyncInterval) Trigger() {
	now := time.Now()
	if now.Sub(p.lastCall) >= p.minInterval {
		p.handler()
		p.lastCall = now
	}
}

// Flush calls handler unconditionally, useful for a final progress line.
func (p *SyncInterval) Flush() {
	p.handler()
	p.lastCall = time.Now()
}
