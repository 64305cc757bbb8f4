// Package api defines the request and response records exchanged between the
// merklestore client and server, and the error taxonomy both sides share.
package api

// StoreRequest carries a complete, already padded, batch. hashes[i] is the leaf
// hash the client computed for files[i].
type StoreRequest struct {
	Files  []string `json:"files"`
	Hashes []string `json:"hashes"`
}

// StoreResponse returns the merkle root over StoreRequest.Hashes.
//
// Seal is present only when the server is configured to sign its roots. It is
// a COSE Sign1 message over the root and the batch size.
type StoreResponse struct {
	Root string `json:"root"`
	Seal []byte `json:"seal,omitempty"`
}

type FetchRequest struct {
	FileIndex uint64 `json:"file_index"`
}

// FetchResponse carries the requested file and its inclusion proof, ordered
// from the leaf level upwards.
type FetchResponse struct {
	File  string   `json:"file"`
	Proof []string `json:"proof"`
}
