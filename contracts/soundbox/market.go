package soundbox

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/soundlabs/soundbox-contract/common"
	"github.com/soundlabs/soundbox-contract/contracts/soundbox/boxconst"
)

// Listing is a resale offer of an album.
type Listing struct {
	Seller interop.Hash160
	Asset  int
	Price  int
}

// SetEnableMarket enables album resale. Market can't be disabled.
func SetEnableMarket() {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)
	common.PutFlag(ctx, []byte{marketKey}, true)
	runtime.Log("market enabled")
}

// MarketEnabled checks whether album resale is enabled.
func MarketEnabled() bool {
	ctx := storage.GetReadOnlyContext()
	return common.HasFlag(ctx, []byte{marketKey})
}

// SellAlbum lists the album for sale for price in the asset. Listing an
// already listed album replaces the offer.
//
// Produces Listed notification.
func SellAlbum(seller interop.Hash160, tokenID []byte, asset int, price int) {
	ctx := storage.GetContext()
	common.CheckWitness(seller)
	album := getAlbum(ctx, tokenID)
	if !common.Equal(album.Owner, seller) {
		panic(common.ErrNotOwner)
	}
	if (asset != boxconst.AssetSound && asset != boxconst.AssetStable) || price <= 0 {
		panic(boxconst.ErrInvalidPrice)
	}

	common.SetSerialized(ctx, listingKey(tokenID), Listing{
		Seller: seller,
		Asset:  asset,
		Price:  price,
	})
	runtime.Notify("Listed", tokenID, seller, asset, price)
}

// CancelListing removes the album from sale.
func CancelListing(seller interop.Hash160, tokenID []byte) {
	ctx := storage.GetContext()
	common.CheckWitness(seller)
	album := getAlbum(ctx, tokenID)
	if !common.Equal(album.Owner, seller) {
		panic(common.ErrNotOwner)
	}
	if _, ok := getListing(ctx, tokenID); !ok {
		panic(boxconst.ErrNotListed)
	}
	storage.Delete(ctx, listingKey(tokenID))
}

// GetListing returns the sale offer of the album. Seller is nil if the album
// is not for sale.
func GetListing(tokenID []byte) Listing {
	ctx := storage.GetReadOnlyContext()
	listing, _ := getListing(ctx, tokenID)
	return listing
}

// BuyAlbum buys a listed album. SOUND-priced albums are paid from the buyer
// ledger to the seller ledger, stable-priced ones from the buyer wallet to
// the seller wallet.
//
// Produces Sold and Transfer notifications.
func BuyAlbum(buyer interop.Hash160, tokenID []byte) {
	ctx := storage.GetContext()
	common.CheckWitness(buyer)
	if !common.HasFlag(ctx, []byte{marketKey}) {
		panic(boxconst.ErrMarketDisabled)
	}
	listing, ok := getListing(ctx, tokenID)
	if !ok {
		panic(boxconst.ErrNotListed)
	}

	album := getAlbum(ctx, tokenID)
	seller := album.Owner
	if listing.Asset == boxconst.AssetStable {
		common.TransferFrom(getHash(ctx, stableKey), runtime.GetExecutingScriptHash(),
			buyer, seller, listing.Price, nil, common.ErrInsufficientBalance)
	} else {
		debitLedger(ctx, buyer, listing.Price, boxconst.ErrInsufficientLedgerFunds)
		addLedger(ctx, seller, listing.Price)
	}

	moveAlbum(ctx, tokenID, album, buyer)
	runtime.Notify("Sold", tokenID, seller, buyer, listing.Asset, listing.Price)
	postTransfer(seller, buyer, tokenID, nil)
}

func getListing(ctx storage.Context, tokenID []byte) (Listing, bool) {
	data := storage.Get(ctx, listingKey(tokenID))
	if data == nil {
		return Listing{}, false
	}
	return std.Deserialize(data.([]byte)).(Listing), true
}

func listingKey(tokenID []byte) []byte {
	return append([]byte{listingPrefix}, tokenID...)
}
