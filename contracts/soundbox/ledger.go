package soundbox

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/soundlabs/soundbox-contract/common"
	"github.com/soundlabs/soundbox-contract/contracts/soundbox/boxconst"
)

// Deposit pulls amount of SOUND from the user wallet and credits the user
// ledger with the amount the box actually received. The user must approve
// the box as a SOUND spender beforehand.
//
// Produces Deposit notification.
func Deposit(user interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckWitness(user)
	if amount < 0 {
		panic(common.ErrNegativeAmount)
	}

	sound := getHash(ctx, soundKey)
	self := runtime.GetExecutingScriptHash()
	before := common.BalanceOf(sound, self)
	common.TransferFrom(sound, self, user, self, amount, nil, common.ErrInsufficientBalance)
	received := common.BalanceOf(sound, self) - before

	addLedger(ctx, user, received)
	runtime.Notify("Deposit", user, received)
}

// Withdraw debits the user ledger and transfers amount of SOUND from the
// box to the user wallet.
//
// Produces Withdraw notification.
func Withdraw(user interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckWitness(user)
	withdraw(ctx, user, amount)
}

// Claim credits the user ledger with amount authorized by the claim signer.
// Each nonce can be redeemed once.
//
// Produces Claim notification.
func Claim(user interop.Hash160, signature interop.Signature, nonce, amount int) {
	ctx := storage.GetContext()
	common.CheckWitness(user)
	claim(ctx, user, signature, nonce, amount)
}

// WithdrawAndClaim redeems claimAmount and then withdraws totalAmount in a
// single transaction. The part of totalAmount above claimAmount is taken
// from the existing ledger balance.
func WithdrawAndClaim(user interop.Hash160, totalAmount int, signature interop.Signature, nonce, claimAmount int) {
	ctx := storage.GetContext()
	common.CheckWitness(user)
	claim(ctx, user, signature, nonce, claimAmount)
	withdraw(ctx, user, totalAmount)
}

// UserBox returns ledger state of the user.
func UserBox(user interop.Hash160) Account {
	ctx := storage.GetReadOnlyContext()
	return Account{Balance: ledgerBalance(ctx, user)}
}

// Custody returns the amount of SOUND held by the box.
func Custody() int {
	ctx := storage.GetReadOnlyContext()
	return common.BalanceOf(getHash(ctx, soundKey), runtime.GetExecutingScriptHash())
}

func withdraw(ctx storage.Context, user interop.Hash160, amount int) {
	if amount < 0 {
		panic(common.ErrNegativeAmount)
	}
	balance := ledgerBalance(ctx, user)
	if amount > balance {
		panic(boxconst.ErrExceedsLedgerBalance)
	}

	sound := getHash(ctx, soundKey)
	self := runtime.GetExecutingScriptHash()
	if common.BalanceOf(sound, self) < amount {
		panic(boxconst.ErrInsufficientCustody)
	}

	common.PutInt(ctx, ledgerKey(user), balance-amount)
	runtime.Notify("Withdraw", user, amount)
	common.Transfer(sound, self, user, amount, nil, boxconst.ErrInsufficientCustody)
}

func ledgerBalance(ctx storage.Context, user interop.Hash160) int {
	return common.GetInt(ctx, ledgerKey(user))
}

func addLedger(ctx storage.Context, user interop.Hash160, amount int) {
	common.PutInt(ctx, ledgerKey(user), ledgerBalance(ctx, user)+amount)
}

// debitLedger panics with reason if the user ledger is less than amount.
func debitLedger(ctx storage.Context, user interop.Hash160, amount int, reason string) {
	balance := ledgerBalance(ctx, user)
	if balance < amount {
		panic(reason)
	}
	common.PutInt(ctx, ledgerKey(user), balance-amount)
}

func ledgerKey(user interop.Hash160) []byte {
	return append([]byte{ledgerPrefix}, user...)
}
