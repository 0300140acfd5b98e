package sound_test

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/soundlabs/soundbox-contract/common"
	"github.com/soundlabs/soundbox-contract/contracts/sound/soundconst"
	"github.com/soundlabs/soundbox-contract/internal/contracttest"
	"github.com/stretchr/testify/require"
)

func newSoundInvoker(t *testing.T, args ...any) *neotest.ContractInvoker {
	e := contracttest.NewExecutor(t)
	h := contracttest.DeploySound(t, e, args...)
	return e.CommitteeInvoker(h)
}

func balanceOf(t *testing.T, c *neotest.ContractInvoker, acc neotest.Signer) *big.Int {
	return contracttest.Int(t, c, "balanceOf", acc.ScriptHash())
}

func TestSoundGeneric(t *testing.T) {
	c := newSoundInvoker(t)

	supply := new(big.Int).Exp(big.NewInt(10), big.NewInt(27), nil)
	c.Invoke(t, "SOUND", "symbol")
	c.Invoke(t, 18, "decimals")
	c.Invoke(t, supply, "totalSupply")
	c.Invoke(t, supply, "balanceOf", c.CommitteeHash)
	c.Invoke(t, common.Version, "version")
	c.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(soundconst.DefaultTax),
		stackitem.Make(soundconst.DefaultTax),
		stackitem.Make(soundconst.DefaultTax),
	}), "getTax")
	c.Invoke(t, true, "isTaxFree", c.CommitteeHash)
	c.Invoke(t, true, "isTaxFree", c.Hash)
	require.Equal(t, c.CommitteeHash, contracttest.Hash(t, c, "receiver"))
	c.Invoke(t, stackitem.Null{}, "pair")
}

func TestSoundDeployParameters(t *testing.T) {
	c := newSoundInvoker(t, 1_000_000, 100, 20, 50)

	c.Invoke(t, 1_000_000, "totalSupply")
	c.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(100), stackitem.Make(20), stackitem.Make(50),
	}), "getTax")
}

func TestSoundSetTax(t *testing.T) {
	c := newSoundInvoker(t)

	c.Invoke(t, stackitem.Null{}, "setTax", 100, 100)
	c.InvokeFail(t, soundconst.ErrTaxTooHigh, "setTax", 101, 101)
	c.InvokeFail(t, soundconst.ErrTaxTooHigh, "setTax", 101, 0)
	c.InvokeFail(t, soundconst.ErrTaxTooHigh, "setTax", 0, 101)
	c.InvokeFail(t, common.ErrNegativeAmount, "setTax", -1, 0)

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, common.ErrNotOwner, "setTax", 10, 10)

	// Failed calls don't change anything.
	c.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(soundconst.DefaultTax), stackitem.Make(100), stackitem.Make(100),
	}), "getTax")

	h := c.Invoke(t, stackitem.Null{}, "setTax", 10, 20)
	res := c.GetTxExecResult(t, h)
	require.Len(t, res.Events, 1)
	require.Equal(t, "TaxUpdate", res.Events[0].Name)
}

func TestSoundTransferTax(t *testing.T) {
	c := newSoundInvoker(t)
	team, marketing := c.NewAccount(t), c.NewAccount(t)

	const initAmount = 1_000_000_000
	c.Invoke(t, true, "transfer", c.CommitteeHash, team.ScriptHash(), initAmount, nil)
	require.Equal(t, big.NewInt(initAmount), balanceOf(t, c, team))
	c.Invoke(t, 0, "taxReservoir")

	const amount = initAmount / 10
	const fee = amount * soundconst.DefaultTax / soundconst.TaxDenominator
	cTeam := c.WithSigners(team)
	h := cTeam.Invoke(t, true, "transfer", team.ScriptHash(), marketing.ScriptHash(), amount, nil)

	require.Equal(t, big.NewInt(amount-fee), balanceOf(t, c, marketing))
	require.Equal(t, big.NewInt(initAmount-amount), balanceOf(t, c, team))
	c.Invoke(t, fee, "taxReservoir")
	c.Invoke(t, fee, "balanceOf", c.Hash)
	c.Invoke(t, new(big.Int).Exp(big.NewInt(10), big.NewInt(27), nil), "totalSupply")

	res := c.GetTxExecResult(t, h)
	require.Len(t, res.Events, 2)
	for _, ev := range res.Events {
		require.Equal(t, "Transfer", ev.Name)
	}

	t.Run("zero amount", func(t *testing.T) {
		cTeam.Invoke(t, true, "transfer", team.ScriptHash(), marketing.ScriptHash(), 0, nil)
		c.Invoke(t, fee, "taxReservoir")
	})
	t.Run("self transfer", func(t *testing.T) {
		cTeam.Invoke(t, true, "transfer", team.ScriptHash(), team.ScriptHash(), 1000, nil)
		require.Equal(t, big.NewInt(initAmount-amount), balanceOf(t, c, team))
		c.Invoke(t, fee, "taxReservoir")
	})
	t.Run("insufficient balance", func(t *testing.T) {
		cTeam.Invoke(t, false, "transfer", team.ScriptHash(), marketing.ScriptHash(), initAmount, nil)
	})
	t.Run("no witness", func(t *testing.T) {
		c.WithSigners(marketing).Invoke(t, false, "transfer", team.ScriptHash(), marketing.ScriptHash(), 1, nil)
	})
	t.Run("negative amount", func(t *testing.T) {
		cTeam.InvokeFail(t, common.ErrNegativeAmount, "transfer", team.ScriptHash(), marketing.ScriptHash(), -1, nil)
	})
}

func TestSoundTaxFree(t *testing.T) {
	c := newSoundInvoker(t)
	user, lp := c.NewAccount(t), c.NewAccount(t)

	c.WithSigners(user).InvokeFail(t, common.ErrNotOwner, "setTaxFree", lp.ScriptHash(), true)

	c.Invoke(t, stackitem.Null{}, "setTaxFree", lp.ScriptHash(), true)
	c.Invoke(t, true, "isTaxFree", lp.ScriptHash())
	c.Invoke(t, true, "transfer", c.CommitteeHash, lp.ScriptHash(), 10_000, nil)

	c.WithSigners(lp).Invoke(t, true, "transfer", lp.ScriptHash(), user.ScriptHash(), 10_000, nil)
	require.Equal(t, big.NewInt(10_000), balanceOf(t, c, user))
	c.Invoke(t, 0, "taxReservoir")

	// Recipient exemption is enough.
	c.WithSigners(user).Invoke(t, true, "transfer", user.ScriptHash(), lp.ScriptHash(), 5_000, nil)
	require.Equal(t, big.NewInt(5_000), balanceOf(t, c, lp))
	c.Invoke(t, 0, "taxReservoir")

	c.Invoke(t, stackitem.Null{}, "setTaxFree", lp.ScriptHash(), false)
	c.Invoke(t, false, "isTaxFree", lp.ScriptHash())
	c.WithSigners(lp).Invoke(t, true, "transfer", lp.ScriptHash(), user.ScriptHash(), 1_000, nil)
	c.Invoke(t, 30, "taxReservoir")
}

func TestSoundPairRates(t *testing.T) {
	c := newSoundInvoker(t)
	pair, user := c.NewAccount(t), c.NewAccount(t)

	c.WithSigners(user).InvokeFail(t, common.ErrNotOwner, "setPair", pair.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "setPair", pair.ScriptHash())
	require.Equal(t, pair.ScriptHash(), contracttest.Hash(t, c, "pair"))
	c.Invoke(t, stackitem.Null{}, "setTax", 100, 50)

	c.Invoke(t, true, "transfer", c.CommitteeHash, pair.ScriptHash(), 100_000, nil)

	// buy
	c.WithSigners(pair).Invoke(t, true, "transfer", pair.ScriptHash(), user.ScriptHash(), 10_000, nil)
	require.Equal(t, big.NewInt(9_900), balanceOf(t, c, user))
	c.Invoke(t, 100, "taxReservoir")

	// sell
	c.WithSigners(user).Invoke(t, true, "transfer", user.ScriptHash(), pair.ScriptHash(), 9_900, nil)
	require.Equal(t, big.NewInt(90_000+9_900-49), balanceOf(t, c, pair))
	c.Invoke(t, 149, "taxReservoir")
}

func TestSoundManualTransferTax(t *testing.T) {
	c := newSoundInvoker(t)
	team, marketing, charity := c.NewAccount(t), c.NewAccount(t), c.NewAccount(t)

	c.WithSigners(team).InvokeFail(t, common.ErrNotOwner, "setReceivers", charity.ScriptHash())
	c.InvokeFail(t, soundconst.ErrInvalidReceiver, "setReceivers", c.Hash)
	c.Invoke(t, stackitem.Null{}, "setReceivers", charity.ScriptHash())
	require.Equal(t, charity.ScriptHash(), contracttest.Hash(t, c, "receiver"))

	c.Invoke(t, true, "transfer", c.CommitteeHash, team.ScriptHash(), 1_000_000, nil)
	c.WithSigners(team).Invoke(t, true, "transfer", team.ScriptHash(), marketing.ScriptHash(), 100_000, nil)
	c.Invoke(t, 3_000, "taxReservoir")

	cCharity := c.WithSigners(charity)
	cCharity.InvokeFail(t, common.ErrNotAuthorized, "manualTransferTax")

	c.WithSigners(team).InvokeFail(t, common.ErrNotOwner, "authorize", charity.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "authorize", charity.ScriptHash())
	c.Invoke(t, true, "isAuthorized", charity.ScriptHash())

	h := cCharity.Invoke(t, stackitem.Null{}, "manualTransferTax")
	c.Invoke(t, 0, "taxReservoir")
	require.Equal(t, big.NewInt(3_000), balanceOf(t, c, charity))

	res := c.GetTxExecResult(t, h)
	require.Equal(t, "TaxSweep", res.Events[len(res.Events)-1].Name)

	t.Run("empty reservoir", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "manualTransferTax")
		require.Equal(t, big.NewInt(3_000), balanceOf(t, c, charity))
	})

	c.Invoke(t, stackitem.Null{}, "unauthorize", charity.ScriptHash())
	c.Invoke(t, false, "isAuthorized", charity.ScriptHash())
	cCharity.InvokeFail(t, common.ErrNotAuthorized, "manualTransferTax")
}

func TestSoundTransferFrom(t *testing.T) {
	c := newSoundInvoker(t)
	owner, spender, to := c.NewAccount(t), c.NewAccount(t), c.NewAccount(t)

	c.Invoke(t, true, "transfer", c.CommitteeHash, owner.ScriptHash(), 100_000, nil)

	cOwner := c.WithSigners(owner)
	cSpender := c.WithSigners(spender)

	cSpender.InvokeFail(t, common.ErrWitnessFailed, "approve", owner.ScriptHash(), spender.ScriptHash(), 10)
	cOwner.InvokeFail(t, common.ErrNegativeAmount, "approve", owner.ScriptHash(), spender.ScriptHash(), -1)
	cOwner.Invoke(t, stackitem.Null{}, "approve", owner.ScriptHash(), spender.ScriptHash(), 50_000)
	c.Invoke(t, 50_000, "allowance", owner.ScriptHash(), spender.ScriptHash())

	cSpender.Invoke(t, false, "transferFrom",
		spender.ScriptHash(), owner.ScriptHash(), to.ScriptHash(), 50_001, nil)
	cOwner.Invoke(t, false, "transferFrom",
		spender.ScriptHash(), owner.ScriptHash(), to.ScriptHash(), 100, nil)

	cSpender.Invoke(t, true, "transferFrom",
		spender.ScriptHash(), owner.ScriptHash(), to.ScriptHash(), 20_000, nil)
	c.Invoke(t, 30_000, "allowance", owner.ScriptHash(), spender.ScriptHash())
	require.Equal(t, big.NewInt(80_000), balanceOf(t, c, owner))
	require.Equal(t, big.NewInt(20_000-600), balanceOf(t, c, to))
	c.Invoke(t, 600, "taxReservoir")

	t.Run("allowance above balance", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Null{}, "approve", owner.ScriptHash(), spender.ScriptHash(), 1_000_000)
		cSpender.Invoke(t, false, "transferFrom",
			spender.ScriptHash(), owner.ScriptHash(), to.ScriptHash(), 80_001, nil)
		c.Invoke(t, 1_000_000, "allowance", owner.ScriptHash(), spender.ScriptHash())
	})
}

func TestSoundOwnership(t *testing.T) {
	c := newSoundInvoker(t)
	acc := c.NewAccount(t)

	c.WithSigners(acc).InvokeFail(t, common.ErrNotOwner, "transferOwnership", acc.ScriptHash())
	c.WithSigners(acc).InvokeFail(t, common.ErrNotOwner, "update", []byte{}, "", nil)

	c.Invoke(t, stackitem.Null{}, "transferOwnership", acc.ScriptHash())
	require.Equal(t, acc.ScriptHash(), contracttest.Hash(t, c, "owner"))
	c.InvokeFail(t, common.ErrNotOwner, "setTax", 1, 1)
	c.WithSigners(acc).Invoke(t, stackitem.Null{}, "setTax", 1, 1)
}
