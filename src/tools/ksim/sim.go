//go:build !tinygo

// Package ksim models a Timer64 unit behind a hosted register map, so the
// real driver can be exercised without silicon.  The model is advanced
// explicitly with Step; nothing moves between calls.
package ksim

import (
	"platsupport/src/hardware/timer64"
)

// Device is one modeled unit.  Counter, period and control state live in
// the shared register map, exactly where the driver reads and writes
// them; only the interrupt status needs modeling on the side, because its
// write-1-to-clear behavior is not plain memory.
type Device struct {
	hw        *timer64.RegisterMap
	intEnable bool
	pending   bool
}

var devices []*Device

// NewDevice attaches a model to hw.  The register store hook stays
// installed for the life of the process; every Device made here shares
// it.
func NewDevice(hw *timer64.RegisterMap) *Device {
	d := &Device{hw: hw}
	devices = append(devices, d)
	timer64.SetStoreHook(dispatch)
	return d
}

func dispatch(r *timer64.Register32, v uint32) bool {
	for _, d := range devices {
		if r == &d.hw.IntCtlStat {
			d.storeIntCtlStat(v)
			return true
		}
	}
	return false
}

// storeIntCtlStat applies a software store: bit 0 is a plain read-write
// enable, bit 1 clears the expiration status when written as 1.
func (d *Device) storeIntCtlStat(v uint32) {
	d.intEnable = v&timer64.IntCtlStatEnable != 0
	if v&timer64.IntCtlStatPending != 0 {
		d.pending = false
	}
	d.publish()
}

func (d *Device) publish() {
	v := uint32(0)
	if d.intEnable {
		v |= timer64.IntCtlStatEnable
	}
	if d.pending {
		v |= timer64.IntCtlStatPending
	}
	d.hw.IntCtlStat.Poke(v)
}

// IRQAsserted reports whether the interrupt line is held high: an
// unacknowledged expiry with the interrupt enabled.
func (d *Device) IRQAsserted() bool {
	return d.pending && d.intEnable
}

// Step advances the unit by n input-clock ticks.  A unit held in global
// reset or with the enable-mode field clear does not move.  Reaching the
// period raises the status bit and either halts the counter at the
// period (oneshot) or wraps it to zero (periodic and continuous modes).
func (d *Device) Step(n uint64) {
	if !d.hw.GlobalControl.HasBits(timer64.GlobalControlUnreset) {
		return
	}
	mode := d.hw.Control.Get() & timer64.ControlEnableModeMask
	if mode == 0 {
		return
	}

	cnt := uint64(d.hw.CounterHi.Get())<<32 | uint64(d.hw.CounterLo.Get())
	prd := uint64(d.hw.PeriodHi.Get())<<32 | uint64(d.hw.PeriodLo.Get())

	for n > 0 {
		if prd == 0 || cnt >= prd {
			//nothing left to expire against, free run
			cnt += n
			break
		}
		if left := prd - cnt; n < left {
			cnt += n
			break
		} else {
			n -= left
		}

		d.pending = true
		if mode == timer64.ControlEnableModeOneshot {
			cnt = prd
			d.hw.Control.Poke(d.hw.Control.Get() &^ timer64.ControlEnableModeMask)
			break
		}
		cnt = 0
	}

	d.hw.CounterLo.Poke(uint32(cnt))
	d.hw.CounterHi.Poke(uint32(cnt >> 32))
	d.publish()
}
