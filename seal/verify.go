package seal

import (
	"crypto/ecdsa"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/veraison/go-cose"
)

// DecodeSealedRoot decodes the SealedRoot from the signed message WITHOUT
// verifying the signature. Use VerifySealedRoot unless you only need to
// inspect a seal.
func DecodeSealedRoot(codec dtcbor.CBORCodec, sealed []byte) (*cose.Sign1Message, SealedRoot, error) {
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(sealed); err != nil {
		return nil, SealedRoot{}, err
	}
	var state SealedRoot
	if err := codec.UnmarshalInto(msg.Payload, &state); err != nil {
		return nil, SealedRoot{}, err
	}
	return &msg, state, nil
}

// VerifySealedRoot checks the signature on the seal with publicKey and that the
// sealed root is the one the server returned alongside it.
func VerifySealedRoot(
	codec dtcbor.CBORCodec, publicKey *ecdsa.PublicKey, sealed []byte, root string,
) (SealedRoot, error) {

	msg, state, err := DecodeSealedRoot(codec, sealed)
	if err != nil {
		return SealedRoot{}, fmt.Errorf("%w: %w", ErrSealVerifyFailed, err)
	}

	verifier, err := cose.NewVerifier(cose.AlgorithmES256, publicKey)
	if err != nil {
		return SealedRoot{}, err
	}
	if err = msg.Verify(nil, verifier); err != nil {
		return SealedRoot{}, fmt.Errorf("%w: %w", ErrSealVerifyFailed, err)
	}
	if state.Root != root {
		return SealedRoot{}, fmt.Errorf("%w: %s != %s", ErrSealRootMismatch, state.Root, root)
	}
	return state, nil
}
