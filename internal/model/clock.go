package model

import (
	"sync"
	"time"
)

// Clock is one side's chess clock.
type Clock struct {
	mu          sync.Mutex
	timeLeft    time.Duration
	increment   time.Duration
	lastStarted time.Time
	isRunning   bool
	now         func() time.Time
}

func NewClock(initialTime, increment time.Duration) *Clock {
	return &Clock{
		timeLeft:  initialTime,
		increment: increment,
		now:       time.Now,
	}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = c.now()
		c.isRunning = true
	}
}

// Stop pauses the clock. When addIncrement is set the side's increment
// is credited, as it is after every completed move.
func (c *Clock) Stop(addIncrement bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.timeLeft -= c.now().Sub(c.lastStarted)
		c.isRunning = false
	}
	if addIncrement && c.timeLeft > 0 {
		c.timeLeft += c.increment
	}
}

func (c *Clock) TimeLeft() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.timeLeft - c.now().Sub(c.lastStarted)
	}
	return c.timeLeft
}

// Flagged reports whether the side has run out of time.
func (c *Clock) Flagged() bool {
	return c.TimeLeft() <= 0
}

// deciseconds is the unit the client renders.
func (c *Clock) deciseconds() int {
	left := c.TimeLeft()
	if left < 0 {
		left = 0
	}
	return int(left.Milliseconds() / 100)
}
