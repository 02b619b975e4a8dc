// Package testutil provides shared helpers for deterministic tests.
package testutil

import (
	"sync"
	"time"
)

// Epoch is the fixed starting instant for DeterministicClock.
// An arbitrary round UTC timestamp, chosen so golden files are readable.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// DeterministicClock is a thread-safe clock that steps forward by a fixed
// interval on every call to Now.
//
// Unlike time.Now, consecutive readings are guaranteed distinct and
// strictly increasing, so history ordering in tests never depends on
// timer resolution. Can be reset for test reuse.
type DeterministicClock struct {
	mu   sync.Mutex
	at   time.Time
	step time.Duration
}

// NewDeterministicClock creates a clock starting at Epoch that advances
// one second per reading.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{at: Epoch, step: time.Second}
}

// Now returns the current instant and advances the clock by one step.
//
// The first call returns Epoch. Safe for concurrent use.
func (c *DeterministicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.at
	c.at = c.at.Add(c.step)
	return now
}

// Current returns the next instant Now would report, without advancing.
func (c *DeterministicClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

// Reset rewinds the clock to Epoch.
//
// Used for test reuse. After Reset, the next call to Now returns Epoch.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = Epoch
}
