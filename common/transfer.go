package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
)

// Transfer moves amount of NEP-17 token from `from` to `to`.
// It panics with reason if the token returns false.
func Transfer(token, from, to interop.Hash160, amount int, data interface{}, reason string) {
	ok := contract.Call(token, "transfer", contract.All, from, to, amount, data).(bool)
	if !ok {
		panic(reason)
	}
}

// TransferFrom moves amount of token from `from` to `to` spending the
// allowance given to spender. It panics with reason if the token returns false.
func TransferFrom(token, spender, from, to interop.Hash160, amount int, data interface{}, reason string) {
	ok := contract.Call(token, "transferFrom", contract.All, spender, from, to, amount, data).(bool)
	if !ok {
		panic(reason)
	}
}

// BalanceOf returns NEP-17 balance of account.
func BalanceOf(token, account interop.Hash160) int {
	return contract.Call(token, "balanceOf", contract.ReadStates, account).(int)
}
