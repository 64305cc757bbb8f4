package seal

import (
	"crypto/ecdsa"
	"crypto/rand"
	"time"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/veraison/go-cose"
)

// RootSigner produces seals over SealedRoot states
type RootSigner struct {
	keyID     string
	signer    cose.Signer
	cborCodec dtcbor.CBORCodec
	now       func() time.Time
}

// NewRootSigner returns a signer for ES256 seals. keyID is carried in the
// protected header so verifiers can select the matching public key.
func NewRootSigner(key *ecdsa.PrivateKey, keyID string, cborCodec dtcbor.CBORCodec) (*RootSigner, error) {
	signer, err := cose.NewSigner(cose.AlgorithmES256, key)
	if err != nil {
		return nil, err
	}
	return &RootSigner{
		keyID:     keyID,
		signer:    signer,
		cborCodec: cborCodec,
		now:       time.Now,
	}, nil
}

// Sign1 signs the state, setting its timestamp, and returns the encoded COSE
// Sign1 message
func (rs *RootSigner) Sign1(state SealedRoot) ([]byte, error) {
	state.Timestamp = rs.now().UnixMilli()

	payload, err := rs.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelAlgorithm: cose.AlgorithmES256,
				cose.HeaderLabelKeyID:     []byte(rs.keyID),
			},
		},
		Payload: payload,
	}
	err = msg.Sign(rand.Reader, nil, rs.signer)
	if err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}
