// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package smoothing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testClock advances only when slept on. step, if set, is the most a single
// Sleep advances, to simulate early wake-ups.
type testClock struct {
	now    time.Time
	step   time.Duration
	sleeps []time.Duration
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	if c.step > 0 && d > c.step {
		d = c.step
	}
	c.now = c.now.Add(d)
}

func (c *testClock) slept() time.Duration {
	var total time.Duration
	for _, d := range c.sleeps {
		total += d
	}

	return total
}

func TestSettle(t *testing.T) {
	cases := []struct {
		name    string
		delay   time.Duration
		step    time.Duration
		elapsed time.Duration
		sleeps  []time.Duration
	}{
		{
			name:    "zero",
			delay:   0,
			elapsed: 0,
			sleeps:  nil,
		},
		{
			name:    "single",
			delay:   20 * time.Millisecond,
			elapsed: 20 * time.Millisecond,
			sleeps:  []time.Duration{20 * time.Millisecond},
		},
		{
			name:    "earlyWakeUps",
			delay:   25 * time.Millisecond,
			step:    10 * time.Millisecond,
			elapsed: 25 * time.Millisecond,
			sleeps: []time.Duration{
				25 * time.Millisecond,
				15 * time.Millisecond,
				5 * time.Millisecond,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Time{}.Add(time.Hour)
			clock := &testClock{now: start, step: tc.step}
			settle(clock, tc.delay)
			assert.Equal(t, tc.elapsed, clock.now.Sub(start))
			assert.Equal(t, tc.sleeps, clock.sleeps)
		})
	}
}
