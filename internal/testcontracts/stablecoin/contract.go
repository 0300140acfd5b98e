package stablecoin

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	balancePrefix   = 'b'
	allowancePrefix = 'l'
	supplyKey       = 's'
)

func Symbol() string {
	return "BUSD"
}

func Decimals() int {
	return 18
}

func TotalSupply() int {
	return getInt(storage.GetReadOnlyContext(), []byte{supplyKey})
}

func BalanceOf(account interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), append([]byte{balancePrefix}, account...))
}

// Mint issues amount to account, anyone can call it.
func Mint(account interop.Hash160, amount int) {
	ctx := storage.GetContext()
	addInt(ctx, []byte{supplyKey}, amount)
	addInt(ctx, append([]byte{balancePrefix}, account...), amount)
	notifyTransfer(nil, account, amount)
}

func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if !runtime.CheckWitness(from) {
		return false
	}
	return move(storage.GetContext(), from, to, amount, data)
}

func Approve(owner, spender interop.Hash160, amount int) {
	if !runtime.CheckWitness(owner) {
		panic("not witnessed")
	}
	ctx := storage.GetContext()
	storage.Put(ctx, allowanceKey(owner, spender), amount)
	runtime.Notify("Approval", owner, spender, amount)
}

func Allowance(owner, spender interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), allowanceKey(owner, spender))
}

func TransferFrom(spender, from, to interop.Hash160, amount int, data any) bool {
	if !runtime.CheckWitness(spender) {
		return false
	}
	ctx := storage.GetContext()
	key := allowanceKey(from, spender)
	allowed := getInt(ctx, key)
	if allowed < amount {
		return false
	}
	if !move(ctx, from, to, amount, data) {
		return false
	}
	storage.Put(ctx, key, allowed-amount)
	return true
}

func move(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	if amount < 0 {
		panic("negative amount")
	}
	fromKey := append([]byte{balancePrefix}, from...)
	balance := getInt(ctx, fromKey)
	if balance < amount {
		return false
	}
	storage.Put(ctx, fromKey, balance-amount)
	addInt(ctx, append([]byte{balancePrefix}, to...), amount)
	notifyTransfer(from, to, amount)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
	return true
}

func notifyTransfer(from, to interop.Hash160, amount int) {
	runtime.Notify("Transfer", from, to, amount)
}

func getInt(ctx storage.Context, key []byte) int {
	val := storage.Get(ctx, key)
	if val == nil {
		return 0
	}
	return val.(int)
}

func addInt(ctx storage.Context, key []byte, delta int) {
	storage.Put(ctx, key, getInt(ctx, key)+delta)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}
