package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Storage keys of the owner and the authorized set. Contracts using
// these helpers must not use 'O' and 'A' as their own prefixes.
var (
	ownerKey         = []byte{'O'}
	authorizedPrefix = []byte{'A'}
)

// SetOwner stores contract owner.
func SetOwner(ctx storage.Context, owner interop.Hash160) {
	CheckAddress(owner)
	storage.Put(ctx, ownerKey, owner)
}

// Owner returns contract owner.
func Owner(ctx storage.Context) interop.Hash160 {
	val := storage.Get(ctx, ownerKey)
	return val.(interop.Hash160)
}

// CheckOwner panics with ErrNotOwner if the transaction is not
// witnessed by the contract owner.
func CheckOwner(ctx storage.Context) {
	if !runtime.CheckWitness(Owner(ctx)) {
		panic(ErrNotOwner)
	}
}

// CheckAuthorized panics with ErrNotAuthorized unless the owner or
// any member of the authorized set witnessed the transaction.
func CheckAuthorized(ctx storage.Context) {
	if runtime.CheckWitness(Owner(ctx)) {
		return
	}

	it := storage.Find(ctx, authorizedPrefix, storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		member := iterator.Value(it).(interop.Hash160)
		if runtime.CheckWitness(member) {
			return
		}
	}
	panic(ErrNotAuthorized)
}

// Authorize adds addr to the authorized set. The caller must check
// the owner witness.
func Authorize(ctx storage.Context, addr interop.Hash160) {
	CheckAddress(addr)
	storage.Put(ctx, authorizedKey(addr), []byte{1})
	runtime.Log("authorized account added")
}

// Unauthorize removes addr from the authorized set. The caller must check
// the owner witness.
func Unauthorize(ctx storage.Context, addr interop.Hash160) {
	CheckAddress(addr)
	storage.Delete(ctx, authorizedKey(addr))
	runtime.Log("authorized account removed")
}

// IsAuthorized checks whether addr is in the authorized set. The owner
// is not a member unless added explicitly.
func IsAuthorized(ctx storage.Context, addr interop.Hash160) bool {
	if !IsValidAddress(addr) {
		return false
	}
	return storage.Get(ctx, authorizedKey(addr)) != nil
}

// TransferOwnership replaces the owner, the current owner must witness.
func TransferOwnership(ctx storage.Context, newOwner interop.Hash160) {
	CheckOwner(ctx)
	SetOwner(ctx, newOwner)
	runtime.Log("ownership transferred")
}

func authorizedKey(addr interop.Hash160) []byte {
	return append(authorizedPrefix, addr...)
}
