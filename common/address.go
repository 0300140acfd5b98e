package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
)

// ErrInvalidAddress appears when an argument is not a valid
// 20-byte script hash.
const ErrInvalidAddress = "invalid address"

// CheckAddress panics with ErrInvalidAddress if addr is not a script hash.
func CheckAddress(addr interop.Hash160) {
	if !IsValidAddress(addr) {
		panic(ErrInvalidAddress)
	}
}

// IsValidAddress checks whether addr has a script hash length.
func IsValidAddress(addr interop.Hash160) bool {
	return addr != nil && len(addr) == interop.Hash160Len
}

// Equal compares two script hashes by content. Hashes read from the storage
// are Buffers while arguments are ByteStrings, so EQUAL can't be used.
func Equal(a, b interop.Hash160) bool {
	if a == nil || b == nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	return std.MemoryCompare(a, b) == 0
}
