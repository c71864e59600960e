// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package smoothing

import "fmt"

// A Summary holds every statistic of one batch.
type Summary struct {
	// Readings is the number of samples the statistics were computed from.
	Readings int

	// Median is the lower median of the batch.
	Median uint16

	// Mean is the arithmetic mean, rounded half up.
	Mean uint16

	// TrimmedMean is the arithmetic mean without the lowest and the highest
	// sample, rounded half up. It is 0 for batches of fewer than three
	// samples.
	TrimmedMean uint16

	// Minimum is the lowest sample.
	Minimum uint16

	// Maximum is the highest sample.
	Maximum uint16
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"readings=%v, median=%v, mean=%v, trimmedMean=%v, min=%v, max=%v",
		s.Readings, s.Median, s.Mean, s.TrimmedMean, s.Minimum, s.Maximum,
	)
}
