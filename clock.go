// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package smoothing

import "time"

// Clock is the time source a Filter uses for the settle delay.
type Clock interface {
	// Now returns the current time. It must never go backwards.
	Now() time.Time

	// Sleep pauses the calling goroutine for at least d.
	Sleep(d time.Duration)
}

type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

func (wallClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// settle blocks until d has passed on c, measured from the moment it is
// called.
func settle(c Clock, d time.Duration) {
	if d <= 0 {
		return
	}
	start := c.Now()
	for elapsed := time.Duration(0); elapsed < d; elapsed = c.Now().Sub(start) {
		c.Sleep(d - elapsed)
	}
}
