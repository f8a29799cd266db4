package crypto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		poolSize int
		want     float64
	}{
		{name: "default options", length: 10, poolSize: 94, want: 10 * math.Log2(94)},
		{name: "power of two pool", length: 8, poolSize: 64, want: 48},
		{name: "digits only", length: 4, poolSize: 10, want: 4 * math.Log2(10)},
		{name: "single symbol", length: 20, poolSize: 1, want: 0},
		{name: "empty pool", length: 20, poolSize: 0, want: 0},
		{name: "zero length", length: 0, poolSize: 94, want: 0},
		{name: "large length does not overflow", length: 100000, poolSize: 94, want: 100000 * math.Log2(94)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entropy(tt.length, tt.poolSize)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
		})
	}
}
