package merkle

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashHex returns the lowercase hex encoding of the SHA-256 digest of data.
// It is used for leaves (the raw file content) and, via HashPair, for interior
// nodes.
func HashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashPair returns H(left || right) where left and right are the hex encoded
// values of two sibling nodes.
//
// The order is strictly positional: left is always the node with the even
// index on its level. The pair is never sorted before hashing, doing so would
// produce a different root for the same leaves and break index addressed
// proofs.
func HashPair(left, right string) string {
	h := sha256.New()
	h.Write([]byte(left))
	h.Write([]byte(right))
	return hex.EncodeToString(h.Sum(nil))
}
