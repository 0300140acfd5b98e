package main

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParseUint(t *testing.T) {
	n, err := parseUint("1000000000000000000000")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000", n.String())

	_, err = parseUint("-1")
	require.Error(t, err)
	_, err = parseUint("1e3")
	require.Error(t, err)
}

func TestParseKeys(t *testing.T) {
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	parsed, err := parsePrivateKey(hex.EncodeToString(key.Serialize()))
	require.NoError(t, err)
	require.True(t, key.PubKey().IsEqual(parsed.PubKey()))

	_, err = parsePrivateKey("0102")
	require.Error(t, err)

	pub, err := parsePublicKey(hex.EncodeToString(key.PubKey().SerializeCompressed()))
	require.NoError(t, err)
	require.True(t, key.PubKey().IsEqual(pub))

	_, err = parsePublicKey("zz")
	require.Error(t, err)
}

func TestParseContract(t *testing.T) {
	h := util.Uint160{1, 2, 3}

	res, err := parseContract(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseContract(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseContract("")
	require.Error(t, err)
}

func TestSignAndInspect(t *testing.T) {
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	log := zaptest.NewLogger(t)
	recipient := address.Uint160ToString(util.Uint160{7})

	require.NoError(t, runSign(log, []string{
		"--key", hex.EncodeToString(key.Serialize()),
		"--recipient", recipient,
		"--amount", big.NewInt(100000).String(),
		"--nonce", "123",
	}))

	require.Error(t, runSign(log, []string{"--key", "00", "--recipient", recipient, "--amount", "1"}))
	require.Error(t, runInspect(log, nil))
	require.Error(t, runInspect(log, []string{"not-a-voucher"}))
	require.Error(t, runLedger(log, []string{"--box", util.Uint160{}.StringLE()}))
}
