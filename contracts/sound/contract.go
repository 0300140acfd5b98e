package sound

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/soundlabs/soundbox-contract/common"
	"github.com/soundlabs/soundbox-contract/contracts/sound/soundconst"
)

// Tax holds fee rates in hundredths of a percent.
type Tax struct {
	// Rate of transfers not involving the pair.
	Transfer int
	// Rate of transfers sent by the pair.
	Buy int
	// Rate of transfers received by the pair.
	Sell int
}

const (
	symbol   = "SOUND"
	decimals = 18

	// initial supply in whole tokens
	defaultSupply = 1_000_000_000

	balancePrefix   = 'b'
	allowancePrefix = 'l'
	exemptPrefix    = 'x'
	supplyKey       = 's'
	taxKey          = 't'
	pairKey         = 'p'
	receiverKey     = 'r'
)

func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]interface{})
	owner := args[0].(interop.Hash160)
	supply := defaultSupply
	for i := 0; i < decimals; i++ {
		supply *= 10
	}
	tax := Tax{
		Transfer: soundconst.DefaultTax,
		Buy:      soundconst.DefaultTax,
		Sell:     soundconst.DefaultTax,
	}
	if len(args) > 1 {
		supply = args[1].(int)
	}
	if len(args) > 2 {
		tax.Transfer = args[2].(int)
	}
	if len(args) > 3 {
		tax.Buy = args[3].(int)
	}
	if len(args) > 4 {
		tax.Sell = args[4].(int)
	}
	if supply < 0 || tax.Transfer < 0 || tax.Buy < 0 || tax.Sell < 0 {
		panic(common.ErrNegativeAmount)
	}
	if tax.Transfer > soundconst.TaxDenominator || tax.Buy > soundconst.TaxDenominator ||
		tax.Sell > soundconst.TaxDenominator {
		panic(soundconst.ErrTaxTooHigh)
	}

	common.SetOwner(ctx, owner)
	common.SetSerialized(ctx, []byte{taxKey}, tax)
	storage.Put(ctx, []byte{supplyKey}, supply)
	storage.Put(ctx, []byte{receiverKey}, owner)
	common.PutFlag(ctx, exemptKey(owner), true)
	common.PutFlag(ctx, exemptKey(runtime.GetExecutingScriptHash()), true)

	common.PutInt(ctx, balanceKey(owner), supply)
	notifyTransfer(nil, owner, supply)

	runtime.Log("sound contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the owner.
func Update(nef []byte, manifest string, data interface{}) {
	ctx := storage.GetContext()
	common.Update(ctx, nef, manifest, data)
	runtime.Log("sound contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Symbol is a NEP-17 standard method that returns SOUND token symbol.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method that returns precision of SOUND
// balances.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of tokens
// issued on deploy. It never changes.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, []byte{supplyKey})
}

// BalanceOf is a NEP-17 standard method that returns SOUND balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	if !common.IsValidAddress(account) {
		panic(common.ErrInvalidAddress)
	}
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, balanceKey(account))
}

// Transfer is a NEP-17 standard method that moves amount from one account to
// another withholding the transfer tax. It must be witnessed by `from`. It
// returns false if `from` has not enough tokens or is not witnessed.
func Transfer(from, to interop.Hash160, amount int, data interface{}) bool {
	ctx := storage.GetContext()
	if !common.IsValidAddress(from) {
		panic(common.ErrInvalidAddress)
	}
	if !runtime.CheckWitness(from) {
		runtime.Log("transfer is not witnessed by sender")
		return false
	}
	return move(ctx, from, to, amount, data, true)
}

// Approve sets the amount spender can transfer from owner's balance with
// TransferFrom. The previous allowance is overwritten.
func Approve(owner, spender interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckWitness(owner)
	common.CheckAddress(spender)
	if amount < 0 {
		panic(common.ErrNegativeAmount)
	}
	common.PutInt(ctx, allowanceKey(owner, spender), amount)
	runtime.Notify("Approval", owner, spender, amount)
}

// Allowance returns the amount spender can still transfer from owner.
func Allowance(owner, spender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, allowanceKey(owner, spender))
}

// TransferFrom moves amount from `from` to `to` on behalf of spender, which
// must witness the call. It returns false if the allowance or the balance of
// `from` doesn't cover amount. The tax is withheld as in Transfer.
func TransferFrom(spender, from, to interop.Hash160, amount int, data interface{}) bool {
	ctx := storage.GetContext()
	common.CheckAddress(from)
	if !runtime.CheckWitness(spender) {
		runtime.Log("transfer is not witnessed by spender")
		return false
	}
	if amount < 0 {
		panic(common.ErrNegativeAmount)
	}

	key := allowanceKey(from, spender)
	allowed := common.GetInt(ctx, key)
	if allowed < amount {
		runtime.Log("insufficient allowance")
		return false
	}
	if common.GetInt(ctx, balanceKey(from)) < amount {
		runtime.Log("insufficient balance")
		return false
	}
	common.PutInt(ctx, key, allowed-amount)
	return move(ctx, from, to, amount, data, true)
}

// SetTax sets buy and sell rates. Both must not exceed soundconst.MaxTax.
// It can be invoked only by the owner.
func SetTax(buyRate, sellRate int) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	if buyRate < 0 || sellRate < 0 {
		panic(common.ErrNegativeAmount)
	}
	if buyRate > soundconst.MaxTax || sellRate > soundconst.MaxTax {
		panic(soundconst.ErrTaxTooHigh)
	}

	tax := getTax(ctx)
	tax.Buy = buyRate
	tax.Sell = sellRate
	common.SetSerialized(ctx, []byte{taxKey}, tax)
	runtime.Notify("TaxUpdate", buyRate, sellRate)
}

// GetTax returns current rates.
func GetTax() Tax {
	ctx := storage.GetReadOnlyContext()
	return getTax(ctx)
}

// SetTaxFree adds account to or removes it from the set of accounts whose
// transfers are not taxed. It can be invoked only by the owner.
func SetTaxFree(account interop.Hash160, flag bool) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	common.CheckAddress(account)
	common.PutFlag(ctx, exemptKey(account), flag)
}

// IsTaxFree checks whether account transfers are not taxed.
func IsTaxFree(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return common.HasFlag(ctx, exemptKey(account))
}

// SetPair registers the liquidity pair account. Transfers from the pair
// are taxed with the buy rate, transfers to it with the sell rate.
func SetPair(pair interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	common.CheckAddress(pair)
	storage.Put(ctx, []byte{pairKey}, pair)
}

// Pair returns the liquidity pair account or nil if not set.
func Pair() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getHash(ctx, pairKey)
}

// SetReceivers sets the account ManualTransferTax sends withheld taxes to.
func SetReceivers(receiver interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	common.CheckAddress(receiver)
	if common.Equal(receiver, runtime.GetExecutingScriptHash()) {
		panic(soundconst.ErrInvalidReceiver)
	}
	storage.Put(ctx, []byte{receiverKey}, receiver)
}

// Receiver returns the account withheld taxes are sent to.
func Receiver() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getHash(ctx, receiverKey)
}

// Owner returns contract owner.
func Owner() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return common.Owner(ctx)
}

// TransferOwnership replaces contract owner.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	common.TransferOwnership(ctx, newOwner)
}

// Authorize allows account to sweep taxes. It can be invoked only by the owner.
func Authorize(account interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	common.Authorize(ctx, account)
}

// Unauthorize revokes the permission given by Authorize.
func Unauthorize(account interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	common.Unauthorize(ctx, account)
}

// IsAuthorized checks whether account was authorized by the owner.
func IsAuthorized(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return common.IsAuthorized(ctx, account)
}

// TaxReservoir returns the amount of withheld taxes, i.e. the balance
// of the contract itself.
func TaxReservoir() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, balanceKey(runtime.GetExecutingScriptHash()))
}

// ManualTransferTax sends all withheld taxes to the receiver. It can be
// invoked by the owner or by an authorized account.
//
// Produces TaxSweep notification.
func ManualTransferTax() {
	ctx := storage.GetContext()
	common.CheckAuthorized(ctx)

	self := runtime.GetExecutingScriptHash()
	amount := common.GetInt(ctx, balanceKey(self))
	receiver := getHash(ctx, receiverKey)
	if amount > 0 {
		move(ctx, self, receiver, amount, nil, false)
	}
	runtime.Notify("TaxSweep", receiver, amount)
	runtime.Log("tax swept")
}

func move(ctx storage.Context, from, to interop.Hash160, amount int, data interface{}, taxed bool) bool {
	if amount < 0 {
		panic(common.ErrNegativeAmount)
	}
	common.CheckAddress(to)

	fromKey := balanceKey(from)
	fromBalance := common.GetInt(ctx, fromKey)
	if fromBalance < amount {
		runtime.Log("insufficient balance")
		return false
	}

	if common.Equal(from, to) {
		notifyTransfer(from, to, amount)
		return true
	}

	fee := 0
	if taxed {
		fee = computeFee(ctx, from, to, amount)
	}
	net := amount - fee

	self := runtime.GetExecutingScriptHash()
	common.PutInt(ctx, fromKey, fromBalance-amount)
	addBalance(ctx, to, net)
	if fee > 0 {
		addBalance(ctx, self, fee)
		notifyTransfer(from, self, fee)
	}
	notifyTransfer(from, to, net)

	if !common.Equal(to, self) && management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, net, data)
	}
	return true
}

func notifyTransfer(from, to interop.Hash160, amount int) {
	runtime.Notify("Transfer", from, to, amount)
}

func computeFee(ctx storage.Context, from, to interop.Hash160, amount int) int {
	if common.HasFlag(ctx, exemptKey(from)) || common.HasFlag(ctx, exemptKey(to)) {
		return 0
	}

	tax := getTax(ctx)
	rate := tax.Transfer
	pair := getHash(ctx, pairKey)
	if pair != nil {
		if common.Equal(to, pair) {
			rate = tax.Sell
		} else if common.Equal(from, pair) {
			rate = tax.Buy
		}
	}
	return amount * rate / soundconst.TaxDenominator
}

func addBalance(ctx storage.Context, account interop.Hash160, amount int) {
	key := balanceKey(account)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+amount)
}

func getTax(ctx storage.Context) Tax {
	data := storage.Get(ctx, []byte{taxKey})
	return std.Deserialize(data.([]byte)).(Tax)
}

func getHash(ctx storage.Context, key byte) interop.Hash160 {
	val := storage.Get(ctx, []byte{key})
	if val == nil {
		return nil
	}
	return val.(interop.Hash160)
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte{balancePrefix}, account...)
}

func exemptKey(account interop.Hash160) []byte {
	return append([]byte{exemptPrefix}, account...)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}
