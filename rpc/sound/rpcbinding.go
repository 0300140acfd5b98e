// Package sound contains RPC wrappers for Sound contract.
package sound

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// SoundTax is a contract-specific sound.Tax type used by its methods.
type SoundTax struct {
	Transfer *big.Int
	Buy *big.Int
	Sell *big.Int
}

// ApprovalEvent represents "Approval" event emitted by the contract.
type ApprovalEvent struct {
	Owner util.Uint160
	Spender util.Uint160
	Amount *big.Int
}

// TaxUpdateEvent represents "TaxUpdate" event emitted by the contract.
type TaxUpdateEvent struct {
	BuyRate *big.Int
	SellRate *big.Int
}

// TaxSweepEvent represents "TaxSweep" event emitted by the contract.
type TaxSweepEvent struct {
	Receiver util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// Allowance invokes `allowance` method of contract.
func (c *ContractReader) Allowance(owner util.Uint160, spender util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "allowance", owner, spender))
}

// GetTax invokes `getTax` method of contract.
func (c *ContractReader) GetTax() (*SoundTax, error) {
	return itemToSoundTax(unwrap.Item(c.invoker.Call(c.hash, "getTax")))
}

// IsAuthorized invokes `isAuthorized` method of contract.
func (c *ContractReader) IsAuthorized(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAuthorized", account))
}

// IsTaxFree invokes `isTaxFree` method of contract.
func (c *ContractReader) IsTaxFree(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isTaxFree", account))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Pair invokes `pair` method of contract.
func (c *ContractReader) Pair() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "pair"))
}

// Receiver invokes `receiver` method of contract.
func (c *ContractReader) Receiver() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "receiver"))
}

// TaxReservoir invokes `taxReservoir` method of contract.
func (c *ContractReader) TaxReservoir() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "taxReservoir"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Approve creates a transaction invoking `approve` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Approve(owner util.Uint160, spender util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approve", owner, spender, amount)
}

// ApproveTransaction creates a transaction invoking `approve` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approve", owner, spender, amount)
}

// ApproveUnsigned creates a transaction invoking `approve` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approve", nil, owner, spender, amount)
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

// ManualTransferTax creates a transaction invoking `manualTransferTax` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ManualTransferTax() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "manualTransferTax")
}

// ManualTransferTaxTransaction creates a transaction invoking `manualTransferTax` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ManualTransferTaxTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "manualTransferTax")
}

// ManualTransferTaxUnsigned creates a transaction invoking `manualTransferTax` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ManualTransferTaxUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "manualTransferTax", nil)
}

// SetPair creates a transaction invoking `setPair` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPair(pair util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPair", pair)
}

// SetPairTransaction creates a transaction invoking `setPair` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPairTransaction(pair util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPair", pair)
}

// SetPairUnsigned creates a transaction invoking `setPair` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPairUnsigned(pair util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPair", nil, pair)
}

// SetReceivers creates a transaction invoking `setReceivers` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetReceivers(receiver util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setReceivers", receiver)
}

// SetReceiversTransaction creates a transaction invoking `setReceivers` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetReceiversTransaction(receiver util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setReceivers", receiver)
}

// SetReceiversUnsigned creates a transaction invoking `setReceivers` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetReceiversUnsigned(receiver util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setReceivers", nil, receiver)
}

// SetTax creates a transaction invoking `setTax` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTax(buyRate *big.Int, sellRate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTax", buyRate, sellRate)
}

// SetTaxTransaction creates a transaction invoking `setTax` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTaxTransaction(buyRate *big.Int, sellRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTax", buyRate, sellRate)
}

// SetTaxUnsigned creates a transaction invoking `setTax` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTaxUnsigned(buyRate *big.Int, sellRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTax", nil, buyRate, sellRate)
}

// SetTaxFree creates a transaction invoking `setTaxFree` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTaxFree(account util.Uint160, flag bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTaxFree", account, flag)
}

// SetTaxFreeTransaction creates a transaction invoking `setTaxFree` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTaxFreeTransaction(account util.Uint160, flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTaxFree", account, flag)
}

// SetTaxFreeUnsigned creates a transaction invoking `setTaxFree` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTaxFreeUnsigned(account util.Uint160, flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTaxFree", nil, account, flag)
}

// TransferFrom creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferFrom(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferFrom", spender, from, to, amount, data)
}

// TransferFromTransaction creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferFromTransaction(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferFrom", spender, from, to, amount, data)
}

// TransferFromUnsigned creates a transaction invoking `transferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferFromUnsigned(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferFrom", nil, spender, from, to, amount, data)
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

// itemToSoundTax converts stack item into *SoundTax.
func itemToSoundTax(item stackitem.Item, err error) (*SoundTax, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SoundTax)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SoundTax from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SoundTax) FromStackItem(item stackitem.Item) error {
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
	res.Transfer, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Transfer: %w", err)
	}

	index++
	res.Buy, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Buy: %w", err)
	}

	index++
	res.Sell, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Sell: %w", err)
	}

	return nil
}

// ApprovalEventsFromApplicationLog retrieves a set of all emitted events
// with "Approval" name from the provided [result.ApplicationLog].
func ApprovalEventsFromApplicationLog(log *result.ApplicationLog) ([]*ApprovalEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ApprovalEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Approval" {
				continue
			}
			event := new(ApprovalEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ApprovalEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ApprovalEvent or
// returns an error if it's not possible to do to so.
func (e *ApprovalEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Spender, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Spender: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// TaxUpdateEventsFromApplicationLog retrieves a set of all emitted events
// with "TaxUpdate" name from the provided [result.ApplicationLog].
func TaxUpdateEventsFromApplicationLog(log *result.ApplicationLog) ([]*TaxUpdateEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TaxUpdateEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TaxUpdate" {
				continue
			}
			event := new(TaxUpdateEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TaxUpdateEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TaxUpdateEvent or
// returns an error if it's not possible to do to so.
func (e *TaxUpdateEvent) FromStackItem(item *stackitem.Array) error {
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
	e.BuyRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BuyRate: %w", err)
	}

	index++
	e.SellRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SellRate: %w", err)
	}

	return nil
}

// TaxSweepEventsFromApplicationLog retrieves a set of all emitted events
// with "TaxSweep" name from the provided [result.ApplicationLog].
func TaxSweepEventsFromApplicationLog(log *result.ApplicationLog) ([]*TaxSweepEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TaxSweepEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TaxSweep" {
				continue
			}
			event := new(TaxSweepEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TaxSweepEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TaxSweepEvent or
// returns an error if it's not possible to do to so.
func (e *TaxSweepEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Receiver, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Receiver: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
