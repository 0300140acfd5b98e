package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetInt returns integer stored by key or 0 if there is nothing.
func GetInt(ctx storage.Context, key []byte) int {
	val := storage.Get(ctx, key)
	if val == nil {
		return 0
	}
	return val.(int)
}

// PutInt stores value by key, zero values are removed from the storage.
func PutInt(ctx storage.Context, key []byte, value int) {
	if value == 0 {
		storage.Delete(ctx, key)
		return
	}
	storage.Put(ctx, key, value)
}

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key interface{}, value interface{}) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// PutFlag sets or removes a presence flag.
func PutFlag(ctx storage.Context, key []byte, flag bool) {
	if flag {
		storage.Put(ctx, key, []byte{1})
	} else {
		storage.Delete(ctx, key)
	}
}

// HasFlag checks a presence flag set by PutFlag.
func HasFlag(ctx storage.Context, key []byte) bool {
	return storage.Get(ctx, key) != nil
}
