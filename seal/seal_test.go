package seal

import (
	"path/filepath"
	"testing"
	"time"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"
)

func testCodec(t *testing.T) dtcbor.CBORCodec {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
	require.NoError(t, err)
	return codec
}

func TestRootSigner_Sign1(t *testing.T) {
	codec := testCodec(t)
	key, err := GenerateKey()
	require.NoError(t, err)

	rs, err := NewRootSigner(key, "merklestore seal key 1", codec)
	require.NoError(t, err)
	rs.now = func() time.Time { return time.UnixMilli(1234) }

	root := "862532e6a3c9aafc2016810598ed0cc3025af5640db73224f586b6f1138385f4"
	sealed, err := rs.Sign1(SealedRoot{Root: root, LeafCount: 4, LogID: []byte{1, 2}})
	require.NoError(t, err)

	state, err := VerifySealedRoot(codec, &key.PublicKey, sealed, root)
	require.NoError(t, err)
	assert.Equal(t, SealedRoot{Root: root, LeafCount: 4, Timestamp: 1234, LogID: []byte{1, 2}}, state)

	msg, _, err := DecodeSealedRoot(codec, sealed)
	require.NoError(t, err)
	kid, ok := msg.Headers.Protected[cose.HeaderLabelKeyID]
	require.True(t, ok)
	assert.Equal(t, []byte("merklestore seal key 1"), kid)

	// a seal for a different root is rejected
	_, err = VerifySealedRoot(codec, &key.PublicKey, sealed, "00"+root[2:])
	assert.ErrorIs(t, err, ErrSealRootMismatch)

	// as is a seal checked with the wrong key
	other, err := GenerateKey()
	require.NoError(t, err)
	_, err = VerifySealedRoot(codec, &other.PublicKey, sealed, root)
	assert.ErrorIs(t, err, ErrSealVerifyFailed)

	// and a corrupted message
	corrupt := append([]byte(nil), sealed...)
	corrupt[len(corrupt)-1] ^= 0xff
	_, err = VerifySealedRoot(codec, &key.PublicKey, corrupt, root)
	assert.ErrorIs(t, err, ErrSealVerifyFailed)
}

func TestKeyPairPEM(t *testing.T) {
	dir := t.TempDir()
	key, err := GenerateKey()
	require.NoError(t, err)

	priv := filepath.Join(dir, "seal.pem")
	pub := filepath.Join(dir, "seal.pub.pem")
	require.NoError(t, WriteKeyPairPEM(key, priv, pub))

	readKey, err := ReadPrivateKeyPEM(priv)
	require.NoError(t, err)
	assert.True(t, key.Equal(readKey))

	readPub, err := ReadPublicKeyPEM(pub)
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(readPub))

	_, err = ReadPublicKeyPEM(priv)
	assert.Error(t, err)

	_, err = ReadPrivateKeyPEM(filepath.Join(dir, "missing.pem"))
	assert.Error(t, err)
}
