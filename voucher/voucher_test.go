package voucher

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) *secp256k1.PrivateKey {
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	return key
}

func TestPayload(t *testing.T) {
	recipient := util.Uint160{1, 2, 3}
	payload, err := Payload(big.NewInt(123), recipient, big.NewInt(100000))
	require.NoError(t, err)
	require.Len(t, payload, 84)

	require.Equal(t, byte(123), payload[31])
	require.True(t, bytes.Equal(make([]byte, 31), payload[:31]))
	require.Equal(t, recipient.BytesBE(), payload[32:52])
	require.Equal(t, big.NewInt(100000), new(big.Int).SetBytes(payload[52:]))

	t.Run("out of range", func(t *testing.T) {
		_, err := Payload(big.NewInt(-1), recipient, big.NewInt(1))
		require.Error(t, err)

		tooBig := new(big.Int).Lsh(big.NewInt(1), 255)
		_, err = Payload(big.NewInt(1), recipient, tooBig)
		require.Error(t, err)
		_, err = Payload(tooBig, recipient, big.NewInt(1))
		require.Error(t, err)

		maxInt := new(big.Int).Sub(tooBig, big.NewInt(1))
		payload, err := Payload(maxInt, recipient, maxInt)
		require.NoError(t, err)
		require.Equal(t, maxInt, new(big.Int).SetBytes(payload[:32]))
	})
}

func TestMessage(t *testing.T) {
	recipient := util.Uint160{9}
	msg, err := Message(big.NewInt(1), recipient, big.NewInt(2))
	require.NoError(t, err)

	payload, err := Payload(big.NewInt(1), recipient, big.NewInt(2))
	require.NoError(t, err)
	digest := hash.Sha256(payload)
	require.Equal(t, append([]byte("\x19Ethereum Signed Message:\n32"), digest.BytesBE()...), msg)
}

func TestSignVerify(t *testing.T) {
	key := newKey(t)
	other := newKey(t)
	recipient := util.Uint160{7, 7, 7}

	v, err := New(key, big.NewInt(123), recipient, big.NewInt(100000))
	require.NoError(t, err)
	require.Len(t, v.Signature, SignatureSize)

	require.True(t, v.Verify(key.PubKey()))
	require.False(t, v.Verify(other.PubKey()))

	t.Run("neo-go keys", func(t *testing.T) {
		pub, err := keys.NewPublicKeyFromBytes(key.PubKey().SerializeCompressed(), secp256k1.S256())
		require.NoError(t, err)

		msg, err := Message(v.Nonce, v.Recipient, v.Amount)
		require.NoError(t, err)
		digest := hash.Sha256(msg)
		require.True(t, pub.Verify(v.Signature, digest.BytesBE()))
	})

	t.Run("tampered", func(t *testing.T) {
		changed := *v
		changed.Amount = big.NewInt(100001)
		require.False(t, changed.Verify(key.PubKey()))

		changed = *v
		changed.Recipient = util.Uint160{8}
		require.False(t, changed.Verify(key.PubKey()))

		changed = *v
		changed.Signature = v.Signature[:SignatureSize-1]
		require.False(t, changed.Verify(key.PubKey()))
	})
}

func TestEncodeDecode(t *testing.T) {
	key := newKey(t)
	v, err := New(key, NewNonce(), util.Uint160{1}, big.NewInt(42))
	require.NoError(t, err)

	s, err := v.Encode()
	require.NoError(t, err)

	actual, err := Decode(s)
	require.NoError(t, err)
	require.Equal(t, 0, v.Nonce.Cmp(actual.Nonce))
	require.Equal(t, 0, v.Amount.Cmp(actual.Amount))
	require.Equal(t, v.Recipient, actual.Recipient)
	require.Equal(t, v.Signature, actual.Signature)
	require.True(t, actual.Verify(key.PubKey()))

	t.Run("invalid", func(t *testing.T) {
		_, err := Decode("0OIl")
		require.ErrorIs(t, err, ErrInvalidVoucher)

		_, err = Decode(base58.Encode([]byte{1, 2, 3}))
		require.ErrorIs(t, err, ErrInvalidVoucher)

		_, err = (&Voucher{Nonce: big.NewInt(1), Amount: big.NewInt(1)}).Encode()
		require.ErrorIs(t, err, ErrInvalidVoucher)
	})
}

func TestNewNonce(t *testing.T) {
	a, b := NewNonce(), NewNonce()
	require.NotEqual(t, 0, a.Cmp(b))
	require.LessOrEqual(t, a.BitLen(), 128)
}
