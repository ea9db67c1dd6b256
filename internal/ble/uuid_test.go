package ble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUUID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "16-bit short form",
			input:    "2a29",
			expected: "2a29",
		},
		{
			name:     "16-bit with 0x prefix",
			input:    "0x2A29",
			expected: "2a29",
		},
		{
			name:     "full Bluetooth SIG UUID with dashes",
			input:    "00002a29-0000-1000-8000-00805f9b34fb",
			expected: "2a29",
		},
		{
			name:     "full Bluetooth SIG UUID without dashes",
			input:    "00002a2900001000800000805f9b34fb",
			expected: "2a29",
		},
		{
			name:     "product service UUID collapses to short form",
			input:    "0000fce0-0000-1000-8000-00805f9b34fb",
			expected: "fce0",
		},
		{
			name:     "custom 128-bit UUID stays long",
			input:    "f0cd3001-95da-4f4b-9ac8-aa55d312af0c",
			expected: "f0cd300195da4f4b9ac8aa55d312af0c",
		},
		{
			name:     "UUID with braces",
			input:    "{00002a29-0000-1000-8000-00805f9b34fb}",
			expected: "2a29",
		},
		{
			name:     "uppercase input",
			input:    "F0CD3001-95DA-4F4B-9AC8-AA55D312AF0C",
			expected: "f0cd300195da4f4b9ac8aa55d312af0c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeUUID(tt.input))
		})
	}
}
