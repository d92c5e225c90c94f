//go:build tinygo

package timer64

import (
	"github.com/tinygo-org/tinygo/src/device/arm"
	"github.com/tinygo-org/tinygo/src/runtime/volatile"
)

// On hardware every register access is a volatile load or store, so the
// compiler can neither reorder, cache, nor elide them.
type Register32 = volatile.Register32

// Barrier forces all earlier register stores to complete and become
// visible to the device before any later access proceeds.
func Barrier() {
	arm.Asm("dmb")
}
