package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrWitnessFailed appears when the method must be called
// using certain account but was not.
var ErrWitnessFailed = "witness check failed"

// CheckWitness checks that caller is a valid address and that the
// transaction is witnessed by it. It panics with ErrWitnessFailed on fail.
func CheckWitness(caller interop.Hash160) {
	CheckAddress(caller)
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
