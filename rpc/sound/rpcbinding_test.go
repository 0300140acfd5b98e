package sound

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestTaxEventsFromApplicationLog(t *testing.T) {
	receiver := util.Uint160{1}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "TaxUpdate",
					Item: stackitem.NewArray([]stackitem.Item{stackitem.Make(100), stackitem.Make(50)}),
				},
				{
					Name: "TaxSweep",
					Item: stackitem.NewArray([]stackitem.Item{stackitem.Make(receiver.BytesBE()), stackitem.Make(149)}),
				},
			},
		}},
	}

	updates, err := TaxUpdateEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	require.Equal(t, int64(100), updates[0].BuyRate.Int64())
	require.Equal(t, int64(50), updates[0].SellRate.Int64())

	sweeps, err := TaxSweepEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, sweeps, 1)
	require.Equal(t, receiver, sweeps[0].Receiver)
	require.Equal(t, int64(149), sweeps[0].Amount.Int64())

	log.Executions[0].Events[0].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(100)})
	_, err = TaxUpdateEventsFromApplicationLog(log)
	require.Error(t, err)
}

func TestTaxFromStackItem(t *testing.T) {
	res, err := itemToSoundTax(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(300), stackitem.Make(300), stackitem.Make(300),
	}), nil)
	require.NoError(t, err)
	require.Equal(t, int64(300), res.Transfer.Int64())
	require.Equal(t, int64(300), res.Buy.Int64())
	require.Equal(t, int64(300), res.Sell.Int64())
}
