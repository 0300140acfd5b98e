package nep11recv

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Payment is the last received NEP-11 token.
type Payment struct {
	Token   interop.Hash160
	From    interop.Hash160
	TokenID []byte
}

const lastKey = "last"

// OnNEP11Payment stores the payment, "reject" data makes it fail.
func OnNEP11Payment(from interop.Hash160, amount int, tokenID []byte, data any) {
	if amount != 1 {
		panic("wrong amount")
	}
	if data == "reject" {
		panic("payment rejected")
	}
	storage.Put(storage.GetContext(), lastKey, std.Serialize(Payment{
		Token:   runtime.GetCallingScriptHash(),
		From:    from,
		TokenID: tokenID,
	}))
}

func LastPayment() Payment {
	val := storage.Get(storage.GetReadOnlyContext(), lastKey)
	if val == nil {
		return Payment{}
	}
	return std.Deserialize(val.([]byte)).(Payment)
}

func Verify() bool {
	return true
}
