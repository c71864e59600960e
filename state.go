// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package smoothing

import "fmt"

// State is the position of a Filter in its batch cycle.
type State uint8

const (
	// StateFilling means the batch still accepts samples before it is full.
	StateFilling State = iota

	// StateFull means the batch holds BatchLength samples. The next accepted
	// sample starts a new batch.
	StateFull
)

func (s State) String() string {
	switch s {
	case StateFilling:
		return "filling"
	case StateFull:
		return "full"
	default:
		return fmt.Sprintf("invalid state: %d", s)
	}
}

func stateOf(readings, batchLength int) State {
	if readings < batchLength {
		return StateFilling
	}

	return StateFull
}
