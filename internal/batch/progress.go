package batch

import (
	"sync"
	"time"
)

// percentMultiplier converts a ratio to a percentage.
const percentMultiplier = 100

// Progress tracks how far a batch run has gotten. Safe for concurrent
// use; RunConcurrent updates it from multiple goroutines.
type Progress struct {
	total     int
	processed int
	startTime time.Time

	mu sync.RWMutex
}

// NewProgress creates a tracker for the given item count.
func NewProgress(total int) *Progress {
	return &Progress{
		total:     total,
		startTime: time.Now(),
	}
}

// AddProcessed records n more processed items.
func (p *Progress) AddProcessed(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed += n
}

// Total returns the number of items in the run.
func (p *Progress) Total() int { return p.total }

// Processed returns the number of items processed so far.
func (p *Progress) Processed() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.processed
}

// PercentComplete returns completion as 0-100.
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.total == 0 {
		return 0
	}
	return float64(p.processed) / float64(p.total) * percentMultiplier
}

// IsComplete reports whether every item has been processed.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.processed >= p.total
}

// Elapsed returns the time since the run started.
func (p *Progress) Elapsed() time.Duration {
	return time.Since(p.startTime)
}
