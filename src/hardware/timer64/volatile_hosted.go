//go:build !tinygo

package timer64

import "sync/atomic"

// Register32 mirrors the API of tinygo's runtime/volatile register type so
// the driver builds on a hosted toolchain against plain memory.  Hardware
// builds alias the real thing, see volatile_baremetal.go.
type Register32 struct {
	reg uint32
}

func (r *Register32) Get() uint32 {
	return atomic.LoadUint32(&r.reg)
}

func (r *Register32) Set(v uint32) {
	if h := storeHook; h != nil && h(r, v) {
		return
	}
	atomic.StoreUint32(&r.reg, v)
}

func (r *Register32) SetBits(v uint32) {
	r.Set(r.Get() | v)
}

func (r *Register32) ClearBits(v uint32) {
	r.Set(r.Get() &^ v)
}

func (r *Register32) HasBits(v uint32) bool {
	return r.Get()&v != 0
}

// Poke stores directly, bypassing the store hook.  Device models use it
// to publish state that software then reads back.
func (r *Register32) Poke(v uint32) {
	atomic.StoreUint32(&r.reg, v)
}

var storeHook func(*Register32, uint32) bool

// SetStoreHook installs f to observe every register store.  Returning
// true claims the store, so the raw cell is left untouched.  A device
// model needs this for bits whose write semantics are not plain memory,
// write-1-to-clear status bits in particular.  Pass nil to remove.
func SetStoreHook(f func(*Register32, uint32) bool) {
	storeHook = f
}

// Barrier is a no-op on a hosted build; the atomic loads and stores above
// already happen in program order.
func Barrier() {}
