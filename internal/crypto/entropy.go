package crypto

import "math"

// Entropy returns the information content in bits of a password of length
// characters drawn uniformly from poolSize symbols: length * log2(poolSize).
//
// The class guarantees make real draws slightly non-uniform, so this is an
// upper bound.
func Entropy(length, poolSize int) float64 {
	if length <= 0 || poolSize <= 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}
