// Package keystone drives one Timer64 unit on a Keystone II SoC through
// the generic timer contract.  The unit is a 64-bit down-to-period
// counter with oneshot and periodic enable modes.
package keystone

import (
	"platsupport/src/hardware/timer64"
	"platsupport/src/timer"
)

// TicksPerSecond is the fixed Timer64 input clock on Keystone II.
const TicksPerSecond = 204800000

// intervalTicks truncates a nanosecond interval to input-clock ticks.
// The multiply is done in 64 bits before the divides.
func intervalTicks(ns uint64) uint64 {
	return ns * TicksPerSecond / 1000 / 1000 / 1000
}

// Timer owns exactly one Timer64 register block.  It keeps no state of
// its own beyond the device handle; everything observable lives in the
// registers.
type Timer struct {
	hw  *timer64.RegisterMap
	irq uint32
}

func NewTimer(hw *timer64.RegisterMap, irq uint32) *Timer {
	return &Timer{hw: hw, irq: irq}
}

// Reset forces the unit into a known stopped state: disabled on the
// internal clock source, released from global reset, counter cleared,
// interrupts enabled.  The barrier makes sure the device has latched the
// disable before the global control register is rewritten.
func (t *Timer) Reset() {
	t.hw.Control.Set(0)
	timer64.Barrier()

	//64-bit mode, no prescaler, extra features off... then release reset,
	//because all-zero global control holds the whole unit in reset
	t.hw.GlobalControl.Set(0)
	t.hw.GlobalControl.Set(timer64.GlobalControlUnreset)

	t.hw.CounterLo.Set(0)
	t.hw.CounterHi.Set(0)

	t.hw.IntCtlStat.Set(timer64.IntCtlStatEnable)
}

// Start enables the counter in whatever mode is configured.  Period and
// counter state are untouched.
func (t *Timer) Start() timer.Error {
	t.hw.Control.SetBits(timer64.ControlEnableModeMask)
	return timer.Ok
}

// Stop halts the counter without erasing period or counter state.
func (t *Timer) Stop() timer.Error {
	t.hw.Control.ClearBits(timer64.ControlEnableModeMask)
	return timer.Ok
}

// program is the shared reprogramming protocol.  Reprogramming the period
// or counter while the unit is counting is racy, so the sequence is
// disable, barrier, rewrite counter and period, ack stale status,
// barrier, re-enable in the requested mode.  A rejected interval touches
// no register at all.
func (t *Timer) program(ns uint64, modeBits uint32) timer.Error {
	ticks := intervalTicks(ns)

	//0 expires immediately and 1 never advances past it
	if ticks < 2 {
		return timer.BadArg
	}

	tcr := t.hw.Control.Get()
	off := tcr &^ timer64.ControlEnableModeMask
	on := off | modeBits

	t.hw.Control.Set(off)
	//the device must have latched the disable before we touch the counter
	timer64.Barrier()

	t.hw.CounterLo.Set(0)
	t.hw.CounterHi.Set(0)
	t.hw.PeriodLo.Set(uint32(ticks))
	t.hw.PeriodHi.Set(uint32(ticks >> 32))

	//stale status from a previous period must not read as a new expiry
	t.hw.IntCtlStat.Set(timer64.IntCtlStatAck)

	timer64.Barrier()
	t.hw.Control.Set(on)

	return timer.Ok
}

// Periodic reloads and restarts automatically at each expiry.
func (t *Timer) Periodic(ns uint64) timer.Error {
	return t.program(ns, timer64.ControlEnableModePeriodic)
}

// OneshotRelative counts once to the interval and stops.
func (t *Timer) OneshotRelative(ns uint64) timer.Error {
	return t.program(ns, timer64.ControlEnableModeOneshot)
}

// OneshotAbsolute is not supported; the unit has no absolute comparator.
func (t *Timer) OneshotAbsolute(ns uint64) timer.Error {
	return timer.StubTimeout(ns)
}

// GetTime reads the low counter word.  The counter is 64 bits internally
// but only 32 bits of precision are exposed, so the value wraps at 2^32.
func (t *Timer) GetTime() uint64 {
	return uint64(t.hw.CounterLo.Get())
}

// HandleIRQ acknowledges an expiration.  The dispatcher must call this on
// every interrupt from this device; the hardware holds the line asserted
// until the status bit is cleared.
func (t *Timer) HandleIRQ(_ uint32) {
	t.hw.IntCtlStat.Set(timer64.IntCtlStatAck)
}

// GetNthIRQ returns the device's single interrupt line for any n.
func (t *Timer) GetNthIRQ(_ uint32) uint32 {
	return t.irq
}

func (t *Timer) Properties() timer.Properties {
	return timer.Properties{
		Upcounter:        false,
		Timeouts:         true,
		RelativeTimeouts: true,
		PeriodicTimeouts: true,
		AbsoluteTimeouts: false,
		BitWidth:         32,
		IRQs:             1,
	}
}
