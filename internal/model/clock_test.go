package model

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewClock(time.Minute, 2*time.Second)
	c.now = func() time.Time { return now }

	c.Start()
	now = now.Add(10 * time.Second)
	if got := c.TimeLeft(); got != 50*time.Second {
		t.Fatalf("running TimeLeft = %v", got)
	}
	c.Stop(true)
	if got := c.TimeLeft(); got != 52*time.Second {
		t.Fatalf("TimeLeft after increment = %v", got)
	}
	now = now.Add(time.Hour)
	if got := c.TimeLeft(); got != 52*time.Second {
		t.Fatalf("stopped clock ran: %v", got)
	}

	c.Start()
	now = now.Add(time.Minute)
	if !c.Flagged() {
		t.Fatal("clock not flagged")
	}
	c.Stop(true)
	if c.deciseconds() != 0 {
		t.Fatalf("deciseconds = %d", c.deciseconds())
	}
}
