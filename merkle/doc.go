/*
Package merkle implements the complete binary merkle tree used to commit to a
batch of files.

# Structure

The tree is built from an ordered list of leaf hashes whose length is a power
of two. Row 0 is the leaves, each subsequent row hashes adjacent pairs of the
row below, and the final row is the root.

	2          H(H(01) || H(23))
	          /                 \
	1     H(0 || 1)          H(2 || 3)
	      /      \            /      \
	0    0        1          2        3

Nodes are addressed by (level, index). Navigation between levels is simple
binary arithmetic: the parent of i is i/2 and the sibling of i is i with its
low bit flipped. There is no need to materialise anything other than the rows
to produce a proof, and verification needs nothing but the proof itself.

# Hashing

All values are lowercase hex SHA-256 strings. A leaf is the hash of the file
content. An interior node is the hash of the concatenation of its two child
hex strings, in positional order: left then right by index. The pair is never
sorted first. Sorting would make proofs self describing, but it produces a
different root for the same leaves. Proof verification therefore takes the leaf
index, whose bits select the side of each pair.

# Proofs

An inclusion proof for leaf i lists one sibling hash per level, bottom-up, and
has Depth - 1 entries. VerifyInclusion recomputes the root from a leaf hash, its
index and the proof and compares it with a trusted root. A mismatch is reported
as false, never as an error.
*/
package merkle
