package soundbox

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/soundlabs/soundbox-contract/common"
	"github.com/soundlabs/soundbox-contract/contracts/soundbox/boxconst"
)

// Price is an album type price in one of the assets.
type Price struct {
	// boxconst.AssetSound or boxconst.AssetStable.
	Asset  int
	Amount int
}

// SetAlbumPrice sets the price of the album type in SOUND or in stable
// token. At most one of the prices can be non-zero, zero for both makes the
// album type unavailable. It can be invoked by the owner or by authorized
// accounts.
func SetAlbumPrice(id int, priceInToken, priceInStable int) {
	ctx := storage.GetContext()
	common.CheckAuthorized(ctx)
	if priceInToken < 0 || priceInStable < 0 || (priceInToken > 0 && priceInStable > 0) {
		panic(boxconst.ErrInvalidPrice)
	}

	switch {
	case priceInToken > 0:
		putPrice(ctx, id, Price{Asset: boxconst.AssetSound, Amount: priceInToken})
	case priceInStable > 0:
		putPrice(ctx, id, Price{Asset: boxconst.AssetStable, Amount: priceInStable})
	default:
		storage.Delete(ctx, priceKey(id))
	}
}

// PriceInSOUND returns SOUND price of the album type, 0 if it is priced in
// stable token or not priced.
func PriceInSOUND(id int) int {
	return priceIn(id, boxconst.AssetSound)
}

// PriceInBUSD returns stable token price of the album type, 0 if it is
// priced in SOUND or not priced.
func PriceInBUSD(id int) int {
	return priceIn(id, boxconst.AssetStable)
}

// SetLimitedAlbum sets the cap of minted albums and enables or disables
// per-type stock accounting. It can be invoked only by the owner.
func SetLimitedAlbum(maxSupply int, enabled bool) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	if maxSupply < 0 {
		panic(common.ErrNegativeAmount)
	}
	storage.Put(ctx, []byte{maxSupplyKey}, maxSupply)
	common.PutFlag(ctx, []byte{limitedKey}, enabled)
}

// SetStock sets the number of albums of the type left for sale. It can be
// invoked only by the owner.
func SetStock(id int, qty int) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	if qty < 0 {
		panic(common.ErrNegativeAmount)
	}
	common.PutInt(ctx, stockKey(id), qty)
}

// Stock returns the number of albums of the type left for sale.
func Stock(id int) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, stockKey(id))
}

// Limited checks whether per-type stock accounting is enabled.
func Limited() bool {
	ctx := storage.GetReadOnlyContext()
	return common.HasFlag(ctx, []byte{limitedKey})
}

// MaxSupply returns the cap of minted albums.
func MaxSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, []byte{maxSupplyKey})
}

// BuyNew mints a new album of the type to the buyer. Stable-priced albums
// are paid from the buyer wallet to the receiver, SOUND-priced ones are
// paid from the buyer ledger. It returns ID of the minted album.
func BuyNew(buyer interop.Hash160, id int) []byte {
	ctx := storage.GetContext()
	common.CheckWitness(buyer)

	price, ok := getPrice(ctx, id)
	if !ok {
		panic(boxconst.ErrInvalidPrice)
	}
	if price.Asset == boxconst.AssetStable {
		common.TransferFrom(getHash(ctx, stableKey), runtime.GetExecutingScriptHash(),
			buyer, getHash(ctx, receiverKey), price.Amount, nil, common.ErrInsufficientBalance)
	} else {
		debitLedger(ctx, buyer, price.Amount, boxconst.ErrInsufficientLedgerFunds)
	}

	if common.GetInt(ctx, []byte{mintedKey}) >= common.GetInt(ctx, []byte{maxSupplyKey}) {
		panic(boxconst.ErrSupplyExhausted)
	}
	if common.HasFlag(ctx, []byte{limitedKey}) {
		stock := common.GetInt(ctx, stockKey(id))
		if stock <= 0 {
			panic(boxconst.ErrOutOfStock)
		}
		common.PutInt(ctx, stockKey(id), stock-1)
	}

	return mint(ctx, buyer, id)
}

func priceIn(id int, asset int) int {
	ctx := storage.GetReadOnlyContext()
	price, ok := getPrice(ctx, id)
	if !ok || price.Asset != asset {
		return 0
	}
	return price.Amount
}

func getPrice(ctx storage.Context, id int) (Price, bool) {
	data := storage.Get(ctx, priceKey(id))
	if data == nil {
		return Price{}, false
	}
	return std.Deserialize(data.([]byte)).(Price), true
}

func putPrice(ctx storage.Context, id int, price Price) {
	common.SetSerialized(ctx, priceKey(id), price)
}

func priceKey(id int) []byte {
	return append([]byte{pricePrefix}, intKey(id)...)
}

func stockKey(id int) []byte {
	return append([]byte{stockPrefix}, intKey(id)...)
}

func intKey(id int) []byte {
	var buf interface{} = id
	return buf.([]byte)
}
