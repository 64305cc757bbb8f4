// Package seal signs and verifies commitments to a stored batch.
//
// A seal is a COSE Sign1 message whose payload is the CBOR encoding of a
// SealedRoot. A server configured with a signing key returns a seal with every
// store, and a client holding the public key can check the root it was given
// was issued by that server before it records it.
package seal
