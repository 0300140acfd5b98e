package soundbox

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/soundlabs/soundbox-contract/common"
	"github.com/soundlabs/soundbox-contract/contracts/soundbox/boxconst"
)

type (
	// Album is a minted album instance.
	Album struct {
		Owner interop.Hash160
		// Album type (catalog id) the instance was bought as.
		Type int
	}

	// Account stores ledger state of a user.
	Account struct {
		// SOUND held by the box on behalf of the user.
		Balance int
	}
)

const (
	symbol   = "ALBUM"
	decimals = 0

	soundKey     = 's'
	stableKey    = 'c'
	signerKey    = 'g'
	receiverKey  = 'r'
	limitedKey   = 'l'
	maxSupplyKey = 'm'
	mintedKey    = 'n'
	marketKey    = 'e'

	ledgerPrefix  = 'u'
	noncePrefix   = 'N'
	pricePrefix   = 'p'
	stockPrefix   = 'k'
	albumPrefix   = 't'
	balancePrefix = 'b'
	accountPrefix = 'a'
	listingPrefix = 'L'
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
	sound := args[1].(interop.Hash160)
	stable := args[2].(interop.Hash160)
	maxSupply := boxconst.DefaultMaxSupply
	if len(args) > 3 {
		maxSupply = args[3].(int)
	}
	common.CheckAddress(sound)
	common.CheckAddress(stable)
	if maxSupply < 0 {
		panic(common.ErrNegativeAmount)
	}

	common.SetOwner(ctx, owner)
	storage.Put(ctx, []byte{soundKey}, sound)
	storage.Put(ctx, []byte{stableKey}, stable)
	storage.Put(ctx, []byte{receiverKey}, owner)
	storage.Put(ctx, []byte{maxSupplyKey}, maxSupply)
	storage.Put(ctx, []byte{mintedKey}, 0)

	unit := 1
	for i := 0; i < 18; i++ {
		unit *= 10
	}
	putPrice(ctx, 0, Price{Asset: boxconst.AssetStable, Amount: 100 * unit})
	putPrice(ctx, 1, Price{Asset: boxconst.AssetStable, Amount: 75 * unit})
	putPrice(ctx, 2, Price{Asset: boxconst.AssetStable, Amount: 50 * unit})

	runtime.Log("soundbox contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the owner.
func Update(nef []byte, manifest string, data interface{}) {
	ctx := storage.GetContext()
	common.Update(ctx, nef, manifest, data)
	runtime.Log("soundbox contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Symbol returns album token symbol.
func Symbol() string {
	return symbol
}

// Decimals returns album token decimals.
func Decimals() int {
	return decimals
}

// TotalSupply returns the number of minted albums.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, []byte{mintedKey})
}

// BalanceOf returns the number of albums owned by the account.
func BalanceOf(owner interop.Hash160) int {
	common.CheckAddress(owner)
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{balancePrefix}, owner...))
}

// OwnerOf returns owner of the album.
func OwnerOf(tokenID []byte) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getAlbum(ctx, tokenID).Owner
}

// Properties returns album properties.
func Properties(tokenID []byte) map[string]interface{} {
	ctx := storage.GetReadOnlyContext()
	album := getAlbum(ctx, tokenID)
	return map[string]interface{}{
		"name": "Album #" + string(tokenID),
		"type": album.Type,
	}
}

// Tokens returns iterator over all minted album IDs.
func Tokens() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{albumPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// TokensOf returns iterator over IDs of albums owned by the account.
func TokensOf(owner interop.Hash160) iterator.Iterator {
	common.CheckAddress(owner)
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{accountPrefix}, owner...), storage.ValuesOnly)
}

// Transfer transfers the album to another owner. Any sale listing of the
// album is cancelled.
func Transfer(to interop.Hash160, tokenID []byte, data interface{}) bool {
	common.CheckAddress(to)
	ctx := storage.GetContext()
	album := getAlbum(ctx, tokenID)
	from := album.Owner
	if !runtime.CheckWitness(from) {
		return false
	}

	if !common.Equal(from, to) {
		moveAlbum(ctx, tokenID, album, to)
	}
	postTransfer(from, to, tokenID, data)
	return true
}

// OnNEP17Payment accepts SOUND and stable tokens. Received tokens increase
// custody only, ledger balances are credited by deposit and claim.
func OnNEP17Payment(from interop.Hash160, amount int, data interface{}) {
	ctx := storage.GetReadOnlyContext()
	caller := runtime.GetCallingScriptHash()
	if !common.Equal(caller, getHash(ctx, soundKey)) && !common.Equal(caller, getHash(ctx, stableKey)) {
		panic(boxconst.ErrUnsupportedToken)
	}
}

// Sound returns SOUND token contract hash.
func Sound() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getHash(ctx, soundKey)
}

// Stable returns stable token contract hash.
func Stable() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getHash(ctx, stableKey)
}

// SetReceiver sets the account receiving stable payments for new albums.
func SetReceiver(receiver interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	common.CheckAddress(receiver)
	storage.Put(ctx, []byte{receiverKey}, receiver)
}

// Receiver returns the account receiving stable payments for new albums.
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

// Authorize allows account to edit album prices. It can be invoked only
// by the owner.
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

func mint(ctx storage.Context, owner interop.Hash160, albumType int) []byte {
	minted := common.GetInt(ctx, []byte{mintedKey})
	tokenID := []byte(std.Itoa(minted, 10))
	storage.Put(ctx, []byte{mintedKey}, minted+1)

	common.SetSerialized(ctx, albumKey(tokenID), Album{Owner: owner, Type: albumType})
	updateBalance(ctx, tokenID, owner, 1)
	postTransfer(nil, owner, tokenID, nil)
	return tokenID
}

// moveAlbum changes album owner and drops its listing.
func moveAlbum(ctx storage.Context, tokenID []byte, album Album, to interop.Hash160) {
	updateBalance(ctx, tokenID, album.Owner, -1)
	updateBalance(ctx, tokenID, to, 1)
	album.Owner = to
	common.SetSerialized(ctx, albumKey(tokenID), album)
	storage.Delete(ctx, listingKey(tokenID))
}

func updateBalance(ctx storage.Context, tokenID []byte, owner interop.Hash160, diff int) {
	balanceKey := append([]byte{balancePrefix}, owner...)
	balance := common.GetInt(ctx, balanceKey) + diff
	common.PutInt(ctx, balanceKey, balance)

	tokenKey := append([]byte{accountPrefix}, owner...)
	tokenKey = append(tokenKey, tokenID...)
	if diff > 0 {
		storage.Put(ctx, tokenKey, tokenID)
	} else {
		storage.Delete(ctx, tokenKey)
	}
}

// postTransfer emits Transfer event and calls onNEP11Payment if needed.
func postTransfer(from, to interop.Hash160, tokenID []byte, data interface{}) {
	runtime.Notify("Transfer", from, to, 1, tokenID)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP11Payment", contract.All, from, 1, tokenID, data)
	}
}

func getAlbum(ctx storage.Context, tokenID []byte) Album {
	data := storage.Get(ctx, albumKey(tokenID))
	if data == nil {
		panic(boxconst.ErrTokenNotFound)
	}
	return std.Deserialize(data.([]byte)).(Album)
}

func getHash(ctx storage.Context, key byte) interop.Hash160 {
	val := storage.Get(ctx, []byte{key})
	if val == nil {
		return nil
	}
	return val.(interop.Hash160)
}

func albumKey(tokenID []byte) []byte {
	return append([]byte{albumPrefix}, tokenID...)
}
