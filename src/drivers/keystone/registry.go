package keystone

import (
	"platsupport/src/hardware/timer64"
	"platsupport/src/timer"
)

// ID selects one of the Timer64 units this library enumerates.
type ID int32

const (
	Timer0 ID = iota
	Timer1
	Timer2
	Timer3
	NumTimers
)

// Timer64 unit n sits at 0x02200000 + n*0x10000 in the K2 memory map.
const Timer0Base uintptr = 0x02200000
const BaseStride uintptr = 0x10000

// TINTLn event lines on the K2 interrupt controller, one per unit.
var eventLine = [NumTimers]uint32{66, 67, 68, 69}

// DefaultConfig is the boot-time mapping for a unit, assuming the device
// region is identity mapped.  Platforms that remap pass their own Config.
func DefaultConfig(id ID) timer.Config {
	return timer.Config{
		Vaddr: Timer0Base + uintptr(id)*BaseStride,
		IRQ:   eventLine[id],
	}
}

// One statically allocated driver instance per unit, for the life of the
// process.  Nothing here allocates.
var devices [NumTimers]Timer

// GetTimer binds the preallocated instance for id to the supplied mapping
// and hands it out reset and stopped.  Returns nil for an id outside the
// supported range.  Calling it twice for one id rebinds the same
// instance; a unit must never be reachable through two register blocks.
func GetTimer(id ID, config *timer.Config) timer.Timer {
	if id < 0 || id >= NumTimers {
		return nil
	}

	t := &devices[id]
	t.hw = timer64.Map(config.Vaddr)
	t.irq = config.IRQ

	t.Reset()
	return t
}
