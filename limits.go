// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package smoothing

import "time"

const (
	// FilterMin is the lowest sample value a range bound can be set to.
	FilterMin = 0

	// FilterMax is the highest sample value a range bound can be set to.
	FilterMax = 0xFFFF

	// BatchLengthMin is the shortest allowed batch.
	BatchLengthMin = 3

	// BatchLengthMax is the longest allowed batch. It also sizes the storage
	// of every Filter.
	BatchLengthMax = 11

	// BatchLengthDefault is the batch length used by NewDefault.
	BatchLengthDefault = 5

	// SettleDelayMin is the shortest settle delay.
	SettleDelayMin = 0 * time.Millisecond

	// SettleDelayMax is the longest settle delay.
	SettleDelayMax = 100 * time.Millisecond

	// SettleDelayDefault is the settle delay used by NewDefault.
	SettleDelayDefault = 20 * time.Millisecond
)
