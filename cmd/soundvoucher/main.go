package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/soundlabs/soundbox-contract/voucher"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usage = `Usage: soundvoucher <command> [flags]

Commands:
  sign     sign a claim voucher
  inspect  decode a voucher and optionally check it against the signer and the chain
  ledger   print SoundBox ledger state of an account
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	switch os.Args[1] {
	case "sign":
		err = runSign(log, os.Args[2:])
	case "inspect":
		err = runInspect(log, os.Args[2:])
	case "ledger":
		err = runLedger(log, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal("command failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
}

func runSign(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	keyHex := fs.String("key", "", "Hex-encoded secp256k1 private key of the claim signer")
	recipientStr := fs.String("recipient", "", "Neo address of the claim recipient")
	amountStr := fs.String("amount", "", "Amount of SOUND to credit")
	nonceStr := fs.String("nonce", "", "Claim nonce (random if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	key, err := parsePrivateKey(*keyHex)
	if err != nil {
		return err
	}
	recipient, err := address.StringToUint160(*recipientStr)
	if err != nil {
		return fmt.Errorf("recipient: %w", err)
	}
	amount, err := parseUint(*amountStr)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	nonce := voucher.NewNonce()
	if *nonceStr != "" {
		nonce, err = parseUint(*nonceStr)
		if err != nil {
			return fmt.Errorf("nonce: %w", err)
		}
	}

	v, err := voucher.New(key, nonce, recipient, amount)
	if err != nil {
		return fmt.Errorf("sign voucher: %w", err)
	}
	encoded, err := v.Encode()
	if err != nil {
		return err
	}

	log.Info("voucher signed",
		zap.Stringer("nonce", v.Nonce),
		zap.String("recipient", address.Uint160ToString(v.Recipient)),
		zap.Stringer("amount", v.Amount))
	fmt.Println(encoded)
	return nil
}

func runInspect(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	signerHex := fs.String("signer", "", "Hex-encoded compressed public key of the claim signer")
	rpcEndpoint := fs.String("rpc", "", "Neo RPC endpoint to check the nonce against")
	boxStr := fs.String("box", "", "SoundBox contract address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("expected exactly one voucher")
	}

	v, err := voucher.Decode(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Printf("nonce:     %s\n", v.Nonce)
	fmt.Printf("recipient: %s\n", address.Uint160ToString(v.Recipient))
	fmt.Printf("amount:    %s\n", v.Amount)
	fmt.Printf("signature: %s\n", hex.EncodeToString(v.Signature))

	if *signerHex != "" {
		pub, err := parsePublicKey(*signerHex)
		if err != nil {
			return err
		}
		fmt.Printf("valid:     %t\n", v.Verify(pub))
	}

	if *rpcEndpoint != "" {
		box, err := parseContract(*boxStr)
		if err != nil {
			return err
		}
		b, err := newRemoteBlockchain(*rpcEndpoint, box)
		if err != nil {
			return err
		}
		defer b.close()

		used, err := b.box.IsNonceUsed(v.Nonce)
		if err != nil {
			return fmt.Errorf("check nonce: %w", err)
		}
		log.Debug("nonce checked", zap.Uint32("height", b.currentBlock), zap.Bool("used", used))
		fmt.Printf("redeemed:  %t\n", used)
	}
	return nil
}

func runLedger(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)
	rpcEndpoint := fs.String("rpc", "", "Neo RPC endpoint")
	boxStr := fs.String("box", "", "SoundBox contract address")
	userStr := fs.String("user", "", "Neo address of the account")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rpcEndpoint == "" {
		return errors.New("missing Neo RPC endpoint")
	}

	box, err := parseContract(*boxStr)
	if err != nil {
		return err
	}
	user, err := address.StringToUint160(*userStr)
	if err != nil {
		return fmt.Errorf("user: %w", err)
	}

	b, err := newRemoteBlockchain(*rpcEndpoint, box)
	if err != nil {
		return err
	}
	defer b.close()

	state, err := b.ledger(user)
	if err != nil {
		return err
	}
	log.Debug("ledger state fetched", zap.Uint32("height", b.currentBlock))

	fmt.Printf("ledger:  %s\n", state.balance)
	fmt.Printf("albums:  %s\n", state.albums)
	fmt.Printf("custody: %s\n", state.custody)
	return nil
}

func parsePrivateKey(s string) (*secp256k1.PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	if len(b) != secp256k1.PrivKeyBytesLen {
		return nil, fmt.Errorf("private key: invalid size %d", len(b))
	}
	return secp256k1.PrivKeyFromBytes(b), nil
}

func parsePublicKey(s string) (*secp256k1.PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	return pub, nil
}

// parseContract accepts either Neo address or LE hex script hash.
func parseContract(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, errors.New("missing SoundBox contract")
	}
	if h, err := util.Uint160DecodeStringLE(s); err == nil {
		return h, nil
	}
	h, err := address.StringToUint160(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("SoundBox contract: %w", err)
	}
	return h, nil
}

func parseUint(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	if n.Sign() < 0 {
		return nil, errors.New("negative number")
	}
	return n, nil
}
