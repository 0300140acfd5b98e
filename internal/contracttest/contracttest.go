// Package contracttest deploys SOUND, SoundBox and auxiliary contracts
// to an in-memory chain for tests.
package contracttest

import (
	"math/big"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/soundlabs/soundbox-contract/voucher"
	"github.com/stretchr/testify/require"
)

// Contract directories relative to the module root.
const (
	SoundPath    = "contracts/sound"
	BoxPath      = "contracts/soundbox"
	StablePath   = "internal/testcontracts/stablecoin"
	ReceiverPath = "internal/testcontracts/nep11recv"
)

// Env holds deployed contracts. Invokers are signed by the committee
// which owns all contracts.
type Env struct {
	E      *neotest.Executor
	Sound  *neotest.ContractInvoker
	Stable *neotest.ContractInvoker
	Box    *neotest.ContractInvoker

	// SignerKey is the claim signer registered in SoundBox.
	SignerKey *secp256k1.PrivateKey
}

// NewExecutor creates executor with a single-node chain.
func NewExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// Compile compiles contract from the directory relative to the module root.
func Compile(t *testing.T, e *neotest.Executor, dir string) *neotest.Contract {
	dir = filepath.Join(moduleRoot(), dir)
	return neotest.CompileFile(t, e.CommitteeHash, dir, filepath.Join(dir, "config.yml"))
}

// DeploySound deploys SOUND owned by the committee. Extra deploy arguments
// are total supply and transfer, buy and sell rates.
func DeploySound(t *testing.T, e *neotest.Executor, args ...any) util.Uint160 {
	ctr := Compile(t, e, SoundPath)
	e.DeployContract(t, ctr, append([]any{e.CommitteeHash}, args...))
	return ctr.Hash
}

// DeployStable deploys mintable stable token.
func DeployStable(t *testing.T, e *neotest.Executor) util.Uint160 {
	ctr := Compile(t, e, StablePath)
	e.DeployContract(t, ctr, nil)
	return ctr.Hash
}

// DeployBox deploys SoundBox owned by the committee.
func DeployBox(t *testing.T, e *neotest.Executor, sound, stable util.Uint160, args ...any) util.Uint160 {
	ctr := Compile(t, e, BoxPath)
	e.DeployContract(t, ctr, append([]any{e.CommitteeHash, sound, stable}, args...))
	return ctr.Hash
}

// NewEnv deploys all contracts, registers a fresh claim signer and makes
// SoundBox tax-free in SOUND.
func NewEnv(t *testing.T) *Env {
	e := NewExecutor(t)
	soundH := DeploySound(t, e)
	stableH := DeployStable(t, e)
	boxH := DeployBox(t, e, soundH, stableH)

	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	env := &Env{
		E:         e,
		Sound:     e.CommitteeInvoker(soundH),
		Stable:    e.CommitteeInvoker(stableH),
		Box:       e.CommitteeInvoker(boxH),
		SignerKey: key,
	}
	env.Box.Invoke(t, stackitem.Null{}, "setSigner", key.PubKey().SerializeCompressed())
	env.Sound.Invoke(t, stackitem.Null{}, "setTaxFree", boxH, true)
	return env
}

// FundSound transfers SOUND from the owner who is tax-free.
func (env *Env) FundSound(t *testing.T, to util.Uint160, amount int64) {
	env.Sound.Invoke(t, true, "transfer", env.E.CommitteeHash, to, amount, nil)
}

// FundStable mints stable tokens.
func (env *Env) FundStable(t *testing.T, to util.Uint160, amount *big.Int) {
	env.Stable.Invoke(t, stackitem.Null{}, "mint", to, amount)
}

// Sign returns signature of a claim made by the registered signer.
func (env *Env) Sign(t *testing.T, nonce int64, recipient util.Uint160, amount int64) []byte {
	return SignClaim(t, env.SignerKey, nonce, recipient, amount)
}

// SignClaim returns signature of a claim made by key.
func SignClaim(t *testing.T, key *secp256k1.PrivateKey, nonce int64, recipient util.Uint160, amount int64) []byte {
	v, err := voucher.New(key, big.NewInt(nonce), recipient, big.NewInt(amount))
	require.NoError(t, err)
	return v.Signature
}

// Int invokes read-only method returning an integer.
func Int(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) *big.Int {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return s.Pop().BigInt()
}

// Hash invokes read-only method returning a script hash.
func Hash(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) util.Uint160 {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)

	b, err := s.Pop().Item().TryBytes()
	require.NoError(t, err)
	h, err := util.Uint160DecodeBytesBE(b)
	require.NoError(t, err)
	return h
}

// Ledger returns SoundBox ledger balance of the account.
func (env *Env) Ledger(t *testing.T, acc util.Uint160) *big.Int {
	s, err := env.Box.TestInvoke(t, "userBox", acc)
	require.NoError(t, err)

	fields, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, fields, 1)
	balance, err := fields[0].TryInteger()
	require.NoError(t, err)
	return balance
}

// OwnerOf returns owner of the album.
func (env *Env) OwnerOf(t *testing.T, tokenID []byte) util.Uint160 {
	return Hash(t, env.Box, "ownerOf", tokenID)
}

// BoxHash returns SoundBox contract hash.
func (env *Env) BoxHash() util.Uint160 {
	return env.Box.Hash
}

func moduleRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}
