// SPDX-License-Identifier: MIT

package qstate

import (
	"math/bits"
	"math/rand"
	"time"
)

// newSource returns a rand source. seed == nil draws from the clock, so
// unseeded states sample differently on every run; WithSeed or SetSeed make
// them reproducible.
func newSource(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(*seed))
}

// streamStep is the odd 64-bit golden-ratio increment separating streams.
const streamStep = 0x9e3779b97f4a7c15

// DeriveSeed returns the seed of stream number stream under parent: the
// rotated parent plus an odd multiple of the stream, finalized by murmur3
// fmix64. Both steps are bijective, so distinct streams of one parent (and
// distinct parents on one stream) never share a seed.
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(fmix64(bits.RotateLeft64(uint64(parent), 32) + streamStep*(stream+1)))
}

func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}
