/*
Package voucher builds and signs SoundBox claim vouchers.

A voucher authorizes crediting an amount of SOUND to the recipient ledger in
SoundBox. It is signed by the claim signer key registered in the contract and is
redeemed with the claim or withdrawAndClaim contract methods.
*/
package voucher

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/soundlabs/soundbox-contract/contracts/soundbox/boxconst"
)

const (
	// SignatureSize is the size of r || s signature.
	SignatureSize = 64

	uint256Size = 32
	// NeoVM integers are signed 256-bit.
	maxValueBits = 8*uint256Size - 1
	encodedSize = 2*uint256Size + util.Uint160Size + SignatureSize
)

// ErrInvalidVoucher is returned by Decode for malformed vouchers.
var ErrInvalidVoucher = errors.New("invalid voucher")

// Voucher is a signed claim.
type Voucher struct {
	Nonce     *big.Int
	Recipient util.Uint160
	Amount    *big.Int
	Signature []byte
}

// New creates a voucher signed with key.
func New(key *secp256k1.PrivateKey, nonce *big.Int, recipient util.Uint160, amount *big.Int) (*Voucher, error) {
	msg, err := Message(nonce, recipient, amount)
	if err != nil {
		return nil, err
	}
	return &Voucher{
		Nonce:     nonce,
		Recipient: recipient,
		Amount:    amount,
		Signature: Sign(key, msg),
	}, nil
}

// NewNonce returns a random 128-bit nonce.
func NewNonce() *big.Int {
	id := uuid.New()
	return new(big.Int).SetBytes(id[:])
}

// Payload returns nonce, recipient and amount concatenated, numbers are
// encoded as 32-byte big-endian values.
func Payload(nonce *big.Int, recipient util.Uint160, amount *big.Int) ([]byte, error) {
	n, err := uint256Bytes(nonce)
	if err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}
	a, err := uint256Bytes(amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}

	payload := make([]byte, 0, 2*uint256Size+util.Uint160Size)
	payload = append(payload, n...)
	payload = append(payload, recipient.BytesBE()...)
	return append(payload, a...), nil
}

// Message returns the message the claim signer signs, it is the same
// as the one returned by claimMessage contract method.
func Message(nonce *big.Int, recipient util.Uint160, amount *big.Int) ([]byte, error) {
	payload, err := Payload(nonce, recipient, amount)
	if err != nil {
		return nil, err
	}
	digest := hash.Sha256(payload)
	return append([]byte(boxconst.ClaimMessagePrefix), digest.BytesBE()...), nil
}

// Sign signs SHA-256 of msg and returns r || s signature.
func Sign(key *secp256k1.PrivateKey, msg []byte) []byte {
	digest := hash.Sha256(msg)
	sig := ecdsa.SignCompact(key, digest.BytesBE(), true)
	// Strip recovery code.
	return sig[1:]
}

// Verify checks r || s signature of SHA-256 of msg.
func Verify(pub *secp256k1.PublicKey, msg []byte, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(sig[:uint256Size]) || s.SetByteSlice(sig[uint256Size:]) {
		return false
	}
	digest := hash.Sha256(msg)
	return ecdsa.NewSignature(&r, &s).Verify(digest.BytesBE(), pub)
}

// Verify checks voucher signature against the signer key.
func (v *Voucher) Verify(pub *secp256k1.PublicKey) bool {
	msg, err := Message(v.Nonce, v.Recipient, v.Amount)
	if err != nil {
		return false
	}
	return Verify(pub, msg, v.Signature)
}

// Encode returns base58 form of the voucher.
func (v *Voucher) Encode() (string, error) {
	if len(v.Signature) != SignatureSize {
		return "", fmt.Errorf("%w: signature size %d", ErrInvalidVoucher, len(v.Signature))
	}
	payload, err := Payload(v.Nonce, v.Recipient, v.Amount)
	if err != nil {
		return "", err
	}
	return base58.Encode(append(payload, v.Signature...)), nil
}

// Decode parses voucher encoded with Encode.
func Decode(s string) (*Voucher, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVoucher, err)
	}
	if len(data) != encodedSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidVoucher, len(data))
	}

	recipient, err := util.Uint160DecodeBytesBE(data[uint256Size : uint256Size+util.Uint160Size])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVoucher, err)
	}
	off := uint256Size + util.Uint160Size
	return &Voucher{
		Nonce:     new(big.Int).SetBytes(data[:uint256Size]),
		Recipient: recipient,
		Amount:    new(big.Int).SetBytes(data[off : off+uint256Size]),
		Signature: data[off+uint256Size:],
	}, nil
}

func uint256Bytes(n *big.Int) ([]byte, error) {
	if n == nil || n.Sign() < 0 || n.BitLen() > maxValueBits {
		return nil, errors.New("value is out of VM integer range")
	}
	return n.FillBytes(make([]byte, uint256Size)), nil
}
