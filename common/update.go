package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Update checks the owner witness and updates the calling contract
// passing current version along with data to its _deploy.
func Update(ctx storage.Context, nef []byte, manifest string, data interface{}) {
	CheckOwner(ctx)
	// Calculating keys and serializing requires calling
	// std and crypto contracts, so `All` flags are passed.
	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nef, manifest, AppendVersion(data))
}
