package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorVersionAtLeast(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"0.8.0", true},
		{"0.8.1", true},
		{"0.10.0", true},
		{"1.0", true},
		{"0.7.4", false},
		{"0.5", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, vectorVersionAtLeast(tt.version, minVectorVersion))
		})
	}
}
