// Package soundbox contains RPC wrappers for SoundBox contract.
package soundbox

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep11"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// SoundboxAccount is a contract-specific soundbox.Account type used by its methods.
type SoundboxAccount struct {
	Balance *big.Int
}

// SoundboxListing is a contract-specific soundbox.Listing type used by its methods.
// Seller is zero for albums that are not for sale.
type SoundboxListing struct {
	Seller util.Uint160
	Asset *big.Int
	Price *big.Int
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	User util.Uint160
	Amount *big.Int
}

// WithdrawEvent represents "Withdraw" event emitted by the contract.
type WithdrawEvent struct {
	User util.Uint160
	Amount *big.Int
}

// ClaimEvent represents "Claim" event emitted by the contract.
type ClaimEvent struct {
	User util.Uint160
	Nonce *big.Int
	Amount *big.Int
}

// ListedEvent represents "Listed" event emitted by the contract.
type ListedEvent struct {
	TokenId []byte
	Seller util.Uint160
	Asset *big.Int
	Price *big.Int
}

// SoldEvent represents "Sold" event emitted by the contract.
type SoldEvent struct {
	TokenId []byte
	Seller util.Uint160
	Buyer util.Uint160
	Asset *big.Int
	Price *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep11.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep11.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep11.NonDivisibleReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep11.BaseWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep11.NewNonDivisibleReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep11ndt = nep11.NewNonDivisible(actor, hash)
	return &Contract{ContractReader{nep11ndt.NonDivisibleReader, actor, hash}, nep11ndt.BaseWriter, actor, hash}
}

// ClaimMessage invokes `claimMessage` method of contract.
func (c *ContractReader) ClaimMessage(nonce *big.Int, recipient util.Uint160, amount *big.Int) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "claimMessage", nonce, recipient, amount))
}

// Custody invokes `custody` method of contract.
func (c *ContractReader) Custody() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "custody"))
}

// GetListing invokes `getListing` method of contract.
func (c *ContractReader) GetListing(tokenID []byte) (*SoundboxListing, error) {
	return itemToSoundboxListing(unwrap.Item(c.invoker.Call(c.hash, "getListing", tokenID)))
}

// IsAuthorized invokes `isAuthorized` method of contract.
func (c *ContractReader) IsAuthorized(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAuthorized", account))
}

// IsNonceUsed invokes `isNonceUsed` method of contract.
func (c *ContractReader) IsNonceUsed(nonce *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isNonceUsed", nonce))
}

// Limited invokes `limited` method of contract.
func (c *ContractReader) Limited() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "limited"))
}

// MarketEnabled invokes `marketEnabled` method of contract.
func (c *ContractReader) MarketEnabled() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "marketEnabled"))
}

// MaxSupply invokes `maxSupply` method of contract.
func (c *ContractReader) MaxSupply() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxSupply"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// PriceInBUSD invokes `priceInBUSD` method of contract.
func (c *ContractReader) PriceInBUSD(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "priceInBUSD", id))
}

// PriceInSOUND invokes `priceInSOUND` method of contract.
func (c *ContractReader) PriceInSOUND(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "priceInSOUND", id))
}

// Receiver invokes `receiver` method of contract.
func (c *ContractReader) Receiver() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "receiver"))
}

// Signer invokes `signer` method of contract.
func (c *ContractReader) Signer() ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "signer"))
}

// Sound invokes `sound` method of contract.
func (c *ContractReader) Sound() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "sound"))
}

// Stable invokes `stable` method of contract.
func (c *ContractReader) Stable() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "stable"))
}

// Stock invokes `stock` method of contract.
func (c *ContractReader) Stock(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "stock", id))
}

// UserBox invokes `userBox` method of contract.
func (c *ContractReader) UserBox(user util.Uint160) (*SoundboxAccount, error) {
	return itemToSoundboxAccount(unwrap.Item(c.invoker.Call(c.hash, "userBox", user)))
}

// VerifySignature invokes `verifySignature` method of contract.
func (c *ContractReader) VerifySignature(signer []byte, signature []byte, message []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "verifySignature", signer, signature, message))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Authorize creates a transaction invoking `authorize` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Authorize(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "authorize", account)
}

// AuthorizeTransaction creates a transaction invoking `authorize` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AuthorizeTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "authorize", account)
}

// AuthorizeUnsigned creates a transaction invoking `authorize` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AuthorizeUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "authorize", nil, account)
}

// BuyAlbum creates a transaction invoking `buyAlbum` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BuyAlbum(buyer util.Uint160, tokenID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "buyAlbum", buyer, tokenID)
}

// BuyAlbumTransaction creates a transaction invoking `buyAlbum` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuyAlbumTransaction(buyer util.Uint160, tokenID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "buyAlbum", buyer, tokenID)
}

// BuyAlbumUnsigned creates a transaction invoking `buyAlbum` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BuyAlbumUnsigned(buyer util.Uint160, tokenID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "buyAlbum", nil, buyer, tokenID)
}

// BuyNew creates a transaction invoking `buyNew` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BuyNew(buyer util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "buyNew", buyer, id)
}

// BuyNewTransaction creates a transaction invoking `buyNew` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuyNewTransaction(buyer util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "buyNew", buyer, id)
}

// BuyNewUnsigned creates a transaction invoking `buyNew` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BuyNewUnsigned(buyer util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "buyNew", nil, buyer, id)
}

// CancelListing creates a transaction invoking `cancelListing` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelListing(seller util.Uint160, tokenID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelListing", seller, tokenID)
}

// CancelListingTransaction creates a transaction invoking `cancelListing` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelListingTransaction(seller util.Uint160, tokenID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelListing", seller, tokenID)
}

// CancelListingUnsigned creates a transaction invoking `cancelListing` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelListingUnsigned(seller util.Uint160, tokenID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelListing", nil, seller, tokenID)
}

// Claim creates a transaction invoking `claim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Claim(user util.Uint160, signature []byte, nonce *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claim", user, signature, nonce, amount)
}

// ClaimTransaction creates a transaction invoking `claim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimTransaction(user util.Uint160, signature []byte, nonce *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claim", user, signature, nonce, amount)
}

// ClaimUnsigned creates a transaction invoking `claim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimUnsigned(user util.Uint160, signature []byte, nonce *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claim", nil, user, signature, nonce, amount)
}

// Deposit creates a transaction invoking `deposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deposit(user util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deposit", user, amount)
}

// DepositTransaction creates a transaction invoking `deposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositTransaction(user util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deposit", user, amount)
}

// DepositUnsigned creates a transaction invoking `deposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositUnsigned(user util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deposit", nil, user, amount)
}

// SellAlbum creates a transaction invoking `sellAlbum` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SellAlbum(seller util.Uint160, tokenID []byte, asset *big.Int, price *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "sellAlbum", seller, tokenID, asset, price)
}

// SellAlbumTransaction creates a transaction invoking `sellAlbum` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SellAlbumTransaction(seller util.Uint160, tokenID []byte, asset *big.Int, price *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "sellAlbum", seller, tokenID, asset, price)
}

// SellAlbumUnsigned creates a transaction invoking `sellAlbum` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SellAlbumUnsigned(seller util.Uint160, tokenID []byte, asset *big.Int, price *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "sellAlbum", nil, seller, tokenID, asset, price)
}

// SetAlbumPrice creates a transaction invoking `setAlbumPrice` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAlbumPrice(id *big.Int, priceInToken *big.Int, priceInStable *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAlbumPrice", id, priceInToken, priceInStable)
}

// SetAlbumPriceTransaction creates a transaction invoking `setAlbumPrice` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAlbumPriceTransaction(id *big.Int, priceInToken *big.Int, priceInStable *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAlbumPrice", id, priceInToken, priceInStable)
}

// SetAlbumPriceUnsigned creates a transaction invoking `setAlbumPrice` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAlbumPriceUnsigned(id *big.Int, priceInToken *big.Int, priceInStable *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAlbumPrice", nil, id, priceInToken, priceInStable)
}

// SetEnableMarket creates a transaction invoking `setEnableMarket` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetEnableMarket() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setEnableMarket")
}

// SetEnableMarketTransaction creates a transaction invoking `setEnableMarket` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetEnableMarketTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setEnableMarket")
}

// SetEnableMarketUnsigned creates a transaction invoking `setEnableMarket` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetEnableMarketUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setEnableMarket", nil)
}

// SetLimitedAlbum creates a transaction invoking `setLimitedAlbum` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetLimitedAlbum(maxSupply *big.Int, enabled bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setLimitedAlbum", maxSupply, enabled)
}

// SetLimitedAlbumTransaction creates a transaction invoking `setLimitedAlbum` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetLimitedAlbumTransaction(maxSupply *big.Int, enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setLimitedAlbum", maxSupply, enabled)
}

// SetLimitedAlbumUnsigned creates a transaction invoking `setLimitedAlbum` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetLimitedAlbumUnsigned(maxSupply *big.Int, enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setLimitedAlbum", nil, maxSupply, enabled)
}

// SetReceiver creates a transaction invoking `setReceiver` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetReceiver(receiver util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setReceiver", receiver)
}

// SetReceiverTransaction creates a transaction invoking `setReceiver` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetReceiverTransaction(receiver util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setReceiver", receiver)
}

// SetReceiverUnsigned creates a transaction invoking `setReceiver` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetReceiverUnsigned(receiver util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setReceiver", nil, receiver)
}

// SetSigner creates a transaction invoking `setSigner` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSigner(key []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSigner", key)
}

// SetSignerTransaction creates a transaction invoking `setSigner` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSignerTransaction(key []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSigner", key)
}

// SetSignerUnsigned creates a transaction invoking `setSigner` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSignerUnsigned(key []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSigner", nil, key)
}

// SetStock creates a transaction invoking `setStock` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetStock(id *big.Int, qty *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setStock", id, qty)
}

// SetStockTransaction creates a transaction invoking `setStock` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetStockTransaction(id *big.Int, qty *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setStock", id, qty)
}

// SetStockUnsigned creates a transaction invoking `setStock` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetStockUnsigned(id *big.Int, qty *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setStock", nil, id, qty)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Unauthorize creates a transaction invoking `unauthorize` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unauthorize(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unauthorize", account)
}

// UnauthorizeTransaction creates a transaction invoking `unauthorize` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnauthorizeTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unauthorize", account)
}

// UnauthorizeUnsigned creates a transaction invoking `unauthorize` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnauthorizeUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unauthorize", nil, account)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nef []byte, manifest string, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nef, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nef []byte, manifest string, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nef, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nef []byte, manifest string, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nef, manifest, data)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(user util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", user, amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(user util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", user, amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(user util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, user, amount)
}

// WithdrawAndClaim creates a transaction invoking `withdrawAndClaim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawAndClaim(user util.Uint160, totalAmount *big.Int, signature []byte, nonce *big.Int, claimAmount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawAndClaim", user, totalAmount, signature, nonce, claimAmount)
}

// WithdrawAndClaimTransaction creates a transaction invoking `withdrawAndClaim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawAndClaimTransaction(user util.Uint160, totalAmount *big.Int, signature []byte, nonce *big.Int, claimAmount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawAndClaim", user, totalAmount, signature, nonce, claimAmount)
}

// WithdrawAndClaimUnsigned creates a transaction invoking `withdrawAndClaim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawAndClaimUnsigned(user util.Uint160, totalAmount *big.Int, signature []byte, nonce *big.Int, claimAmount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawAndClaim", nil, user, totalAmount, signature, nonce, claimAmount)
}

// itemToSoundboxAccount converts stack item into *SoundboxAccount.
func itemToSoundboxAccount(item stackitem.Item, err error) (*SoundboxAccount, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SoundboxAccount)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SoundboxAccount from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SoundboxAccount) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Balance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Balance: %w", err)
	}

	return nil
}

// itemToSoundboxListing converts stack item into *SoundboxListing.
func itemToSoundboxListing(item stackitem.Item, err error) (*SoundboxListing, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SoundboxListing)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SoundboxListing from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SoundboxListing) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Seller, err = func (item stackitem.Item) (util.Uint160, error) {
		if _, ok := item.(stackitem.Null); ok {
			return util.Uint160{}, nil
		}
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Seller: %w", err)
	}

	index++
	res.Asset, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	index++
	res.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// WithdrawEventsFromApplicationLog retrieves a set of all emitted events
// with "Withdraw" name from the provided [result.ApplicationLog].
func WithdrawEventsFromApplicationLog(log *result.ApplicationLog) ([]*WithdrawEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WithdrawEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Withdraw" {
				continue
			}
			event := new(WithdrawEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WithdrawEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WithdrawEvent or
// returns an error if it's not possible to do to so.
func (e *WithdrawEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ClaimEventsFromApplicationLog retrieves a set of all emitted events
// with "Claim" name from the provided [result.ApplicationLog].
func ClaimEventsFromApplicationLog(log *result.ApplicationLog) ([]*ClaimEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ClaimEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Claim" {
				continue
			}
			event := new(ClaimEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ClaimEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ClaimEvent or
// returns an error if it's not possible to do to so.
func (e *ClaimEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.User, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.Nonce, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Nonce: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ListedEventsFromApplicationLog retrieves a set of all emitted events
// with "Listed" name from the provided [result.ApplicationLog].
func ListedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ListedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ListedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Listed" {
				continue
			}
			event := new(ListedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ListedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ListedEvent or
// returns an error if it's not possible to do to so.
func (e *ListedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TokenId, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenId: %w", err)
	}

	index++
	e.Seller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Seller: %w", err)
	}

	index++
	e.Asset, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	index++
	e.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}

// SoldEventsFromApplicationLog retrieves a set of all emitted events
// with "Sold" name from the provided [result.ApplicationLog].
func SoldEventsFromApplicationLog(log *result.ApplicationLog) ([]*SoldEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SoldEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Sold" {
				continue
			}
			event := new(SoldEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SoldEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SoldEvent or
// returns an error if it's not possible to do to so.
func (e *SoldEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TokenId, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenId: %w", err)
	}

	index++
	e.Seller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Seller: %w", err)
	}

	index++
	e.Buyer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	index++
	e.Asset, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	index++
	e.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}
