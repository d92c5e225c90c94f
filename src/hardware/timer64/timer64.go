// Package timer64 describes the register interface of one TI Keystone II
// 64-bit timer unit ("Timer64").  See the Keystone timer user guide,
// http://www.ti.com/lit/ug/sprugv5a/sprugv5a.pdf
package timer64

import "unsafe"

// RegisterMap is the Timer64 register block.  Field offsets are fixed by
// the hardware, so the reserved gaps are spelled out as fields rather than
// left to guesswork.  Reserved regions must never be written.
type RegisterMap struct {
	reserved0     Register32    //0x00
	EmuClockSpeed Register32    //0x04 emulation management and clock speed
	reserved1     [2]Register32 //0x08
	CounterLo     Register32    //0x10 counter, low 32 bits
	CounterHi     Register32    //0x14 counter, high 32 bits
	PeriodLo      Register32    //0x18 period, low 32 bits
	PeriodHi      Register32    //0x1C period, high 32 bits
	Control       Register32    //0x20 timer control
	GlobalControl Register32    //0x24 timer global control
	Watchdog      Register32    //0x28 watchdog control
	reserved2     [2]Register32 //0x2C
	ReloadLo      Register32    //0x34 reload, low 32 bits
	ReloadHi      Register32    //0x38 reload, high 32 bits
	CaptureLo     Register32    //0x3C capture, low 32 bits
	CaptureHi     Register32    //0x40 capture, high 32 bits
	IntCtlStat    Register32    //0x44 interrupt control and status
}

// Control register enable-mode field. 00 leaves the counter halted.
const ControlEnableModeMask = 0xC0
const ControlEnableModeOneshot = 0x40
const ControlEnableModePeriodic = 0x80

// Global control register.  All zeros holds the whole unit in reset; the
// unreset bits must be set before the counter will run.
const GlobalControlUnreset = 0x03

// Interrupt control/status register.
const IntCtlStatEnable = 0x01  //interrupt enable, read-write
const IntCtlStatPending = 0x02 //expiration status, write 1 to clear
const IntCtlStatAck = 0x03     //keeps the line enabled while clearing status

// Map binds a register map to an already-mapped device address.  The
// mapping is owned by the platform layer and must outlive the result.
func Map(vaddr uintptr) *RegisterMap {
	return (*RegisterMap)(unsafe.Pointer(vaddr))
}
