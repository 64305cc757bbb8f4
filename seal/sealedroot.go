package seal

// SealedRoot defines the details we include in our signed commitment to a
// stored batch.
type SealedRoot struct {
	// Root is the merkle root over the padded batch hashes
	Root string `cbor:"1,keyasint"`
	// LeafCount is the number of leaves the root commits, after padding. It
	// fixes the depth of the tree and so the length of every valid proof.
	LeafCount uint64 `cbor:"2,keyasint"`
	// Timestamp is the unix time (milliseconds) read at the time the root was
	// signed. Including it allows for the same root to be re-signed.
	Timestamp int64 `cbor:"3,keyasint"`
	// LogID identifies the log (server namespace) the batch was stored in
	LogID []byte `cbor:"4,keyasint"`
}
