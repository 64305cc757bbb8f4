package merkle

import "errors"

var (
	ErrNoLeaves        = errors.New("a merkle tree requires at least one leaf")
	ErrNotPow2         = errors.New("the number of leaves must be a power of two")
	ErrIndexOutOfRange = errors.New("leaf index out of range")
)
