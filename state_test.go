// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package smoothing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateFilling, stateOf(0, 5))
	assert.Equal(t, StateFilling, stateOf(4, 5))
	assert.Equal(t, StateFull, stateOf(5, 5))
	assert.Equal(t, StateFull, stateOf(3, 3))
}

func TestStateString(t *testing.T) {
	cases := []struct {
		name     string
		value    State
		expected string
	}{
		{
			name:     "filling",
			value:    StateFilling,
			expected: "filling",
		},
		{
			name:     "full",
			value:    StateFull,
			expected: "full",
		},
		{
			name:     "invalid",
			value:    17,
			expected: "invalid state: 17",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.value.String())
		})
	}
}
