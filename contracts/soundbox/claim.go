package soundbox

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/soundlabs/soundbox-contract/common"
	"github.com/soundlabs/soundbox-contract/contracts/soundbox/boxconst"
)

// SetSigner sets the compressed secp256k1 public key of the claim signer.
func SetSigner(key interop.PublicKey) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	if len(key) != interop.PublicKeyCompressedLen || (key[0] != 0x02 && key[0] != 0x03) {
		panic(boxconst.ErrInvalidSigner)
	}
	storage.Put(ctx, []byte{signerKey}, key)
	runtime.Log("claim signer updated")
}

// Signer returns the claim signer key or nil if not set.
func Signer() interop.PublicKey {
	ctx := storage.GetReadOnlyContext()
	return getSigner(ctx)
}

// VerifySignature checks that signature of the message was made by the
// signer key. The message is hashed with SHA-256 before verification.
func VerifySignature(signer interop.PublicKey, signature interop.Signature, message []byte) bool {
	return verify(signer, signature, message)
}

// ClaimMessage returns the message claim signer signs to authorize a claim:
// the prefix followed by SHA-256 of nonce, recipient and amount, with
// numbers encoded as 32-byte big-endian values.
func ClaimMessage(nonce int, recipient interop.Hash160, amount int) []byte {
	common.CheckAddress(recipient)
	return claimMessage(nonce, recipient, amount)
}

// IsNonceUsed checks whether the nonce was redeemed.
func IsNonceUsed(nonce int) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, nonceKey(nonce)) != nil
}

func claim(ctx storage.Context, user interop.Hash160, signature interop.Signature, nonce, amount int) {
	if amount < 0 {
		panic(common.ErrNegativeAmount)
	}
	redeem(ctx, nonce, user, amount, signature)
	addLedger(ctx, user, amount)
	runtime.Notify("Claim", user, nonce, amount)
}

// redeem marks nonce as consumed if the signature was made by the signer.
func redeem(ctx storage.Context, nonce int, recipient interop.Hash160, amount int, signature interop.Signature) {
	msg := claimMessage(nonce, recipient, amount)
	if !verify(getSigner(ctx), signature, msg) {
		panic(boxconst.ErrInvalidSignature)
	}

	key := nonceKey(nonce)
	if storage.Get(ctx, key) != nil {
		panic(boxconst.ErrNonceConsumed)
	}
	storage.Put(ctx, key, []byte{1})
}

func verify(signer interop.PublicKey, signature interop.Signature, message []byte) bool {
	if signer == nil || len(signer) != interop.PublicKeyCompressedLen {
		return false
	}
	if signature == nil || len(signature) != interop.SignatureLen {
		return false
	}
	return crypto.VerifyWithECDsa(message, signer, signature, crypto.Secp256k1)
}

func claimMessage(nonce int, recipient interop.Hash160, amount int) []byte {
	payload := append(uint256Bytes(nonce), recipient...)
	payload = append(payload, uint256Bytes(amount)...)
	digest := crypto.Sha256(payload)
	return append([]byte(boxconst.ClaimMessagePrefix), digest...)
}

func getSigner(ctx storage.Context) interop.PublicKey {
	val := storage.Get(ctx, []byte{signerKey})
	if val == nil {
		return nil
	}
	return val.(interop.PublicKey)
}

func nonceKey(nonce int) []byte {
	return append([]byte{noncePrefix}, uint256Bytes(nonce)...)
}

// uint256Bytes encodes n as 32-byte big-endian value.
func uint256Bytes(n int) []byte {
	if n < 0 {
		panic(boxconst.ErrOutOfRange)
	}
	buf := make([]byte, 32)
	for i := 31; i >= 0; i-- {
		buf[i] = byte(n % 256)
		n = n / 256
	}
	if n != 0 {
		panic(boxconst.ErrOutOfRange)
	}
	return buf
}
