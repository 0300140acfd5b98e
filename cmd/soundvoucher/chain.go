package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/soundlabs/soundbox-contract/rpc/soundbox"
)

// remoteBlockchain is a read-only view of SoundBox deployed in a Neo network.
type remoteBlockchain struct {
	rpc *rpcclient.Client
	box *soundbox.ContractReader

	currentBlock uint32
}

type ledgerState struct {
	balance *big.Int
	albums  *big.Int
	custody *big.Int
}

// newRemoteBlockchain dials Neo RPC server. Connection and all requests are
// done within 15s timeout.
func newRemoteBlockchain(endpoint string, box util.Uint160) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		box:          soundbox.NewReader(invoker.New(c, nil), box),
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

func (x *remoteBlockchain) ledger(user util.Uint160) (ledgerState, error) {
	acc, err := x.box.UserBox(user)
	if err != nil {
		return ledgerState{}, fmt.Errorf("get user box: %w", err)
	}
	albums, err := x.box.BalanceOf(user)
	if err != nil {
		return ledgerState{}, fmt.Errorf("get album balance: %w", err)
	}
	custody, err := x.box.Custody()
	if err != nil {
		return ledgerState{}, fmt.Errorf("get custody: %w", err)
	}
	return ledgerState{
		balance: acc.Balance,
		albums:  albums,
		custody: custody,
	}, nil
}
