package client

import "github.com/forestrie/go-merklestore/merkle"

// PadFiller is appended to a batch until its length is a power of two
const PadFiller = "0"

// PadFiles returns files extended with PadFiller to the next power of two.
// Batches that are already a power of two, including the single file batch,
// are returned unchanged. The input slice is never modified.
func PadFiles(files []string) []string {
	n := uint64(len(files))
	want := merkle.NextPow2(n)
	if n == 0 || n == want {
		return files
	}
	padded := make([]string, want)
	copy(padded, files)
	for i := n; i < want; i++ {
		padded[i] = PadFiller
	}
	return padded
}

// LeafHashes returns the leaf hash of each file
func LeafHashes(files []string) []string {
	hashes := make([]string, len(files))
	for i, f := range files {
		hashes[i] = merkle.HashHex([]byte(f))
	}
	return hashes
}
