// Package sampling implements the sampling of uniform floating point values from a stream of random bytes.
package sampling

import (
	"encoding/binary"
)

// Float64Sampler samples uniform float64 values from a PRNG.
// Its output is deterministic if the PRNG is a KeyedPRNG.
type Float64Sampler struct {
	prng PRNG
	buf  [8]byte
}

// NewFloat64Sampler creates a new Float64Sampler reading from prng.
func NewFloat64Sampler(prng PRNG) *Float64Sampler {
	return &Float64Sampler{prng: prng}
}

// Uint64 returns a uniform value between 0 and 0xFFFFFFFFFFFFFFFF.
func (s *Float64Sampler) Uint64() uint64 {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Float64 returns a uniform float in [min, max).
// The fraction is built from the top 53 bits of a uniform uint64, so it is exactly representable and strictly less than 1.
func (s *Float64Sampler) Float64(min, max float64) float64 {
	f := float64(s.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}
