package merkle

import "math/bits"

// IsPow2 determins if the unsigned value size is a perfect power of 2.
func IsPow2(size uint64) bool {
	if size == 0 {
		return false
	}
	return size&(size-1) == 0
}

// NextPow2 returns the smallest power of two that is >= n.
// Both 0 and 1 round up to 1.
func NextPow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(n-1)
}

// Log2Uint64 efficiently computes log base 2 of num
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}
