// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package smoothing

import (
	"slices"

	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Integer](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// divideRound divides with round-half-up. n must be positive.
func divideRound(sum uint32, n int) uint16 {
	d := uint32(n)

	return uint16((sum + d/2) / d)
}

func sum(values []uint16) uint32 {
	var total uint32
	for _, v := range values {
		total += uint32(v)
	}

	return total
}

// median sorts values in place and returns the lower median.
func median(values []uint16) uint16 {
	if len(values) == 0 {
		return 0
	}
	slices.Sort(values)

	return values[(len(values)-1)/2]
}

func mean(values []uint16) uint16 {
	if len(values) == 0 {
		return 0
	}

	return divideRound(sum(values), len(values))
}

// trimmedMean sorts values in place and averages all of them except the
// single lowest and the single highest. Fewer than three values yield 0.
func trimmedMean(values []uint16) uint16 {
	if len(values) < 3 {
		return 0
	}
	slices.Sort(values)
	inner := values[1 : len(values)-1]

	return divideRound(sum(inner), len(inner))
}

func minimum(values []uint16) uint16 {
	if len(values) == 0 {
		return 0
	}

	return slices.Min(values)
}

func maximum(values []uint16) uint16 {
	if len(values) == 0 {
		return 0
	}

	return slices.Max(values)
}
