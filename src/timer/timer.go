// Package timer is the generic timer contract that platform timer drivers
// implement and that the registry and interrupt dispatcher consume.
package timer

// Error is a status code.  Ok is success; everything else names the
// single way a call can fail.
type Error int32

const (
	Ok           Error = 0
	BadArg       Error = -1
	NotSupported Error = -2
)

func (e Error) Error() string {
	return e.String()
}

func (e Error) String() string {
	switch e {
	case Ok:
		return "Ok"
	case BadArg:
		return "BadArg"
	case NotSupported:
		return "NotSupported"
	}
	return "Unknown"
}

// Properties declares what a given timer device can do.  Callers must
// consult these before relying on a timeout flavor.
type Properties struct {
	Upcounter        bool
	Timeouts         bool
	RelativeTimeouts bool
	PeriodicTimeouts bool
	AbsoluteTimeouts bool
	BitWidth         uint32 //usable counter precision in bits
	IRQs             uint32 //number of interrupt lines the device owns
}

// Config is supplied by the platform layer for each logical timer id: the
// already-mapped device address and the interrupt line wired to it.
type Config struct {
	Vaddr uintptr
	IRQ   uint32
}

// Timer is one logical timer.  The caller serializes all operations on a
// given instance, including HandleIRQ from the interrupt dispatch path.
type Timer interface {
	Start() Error
	Stop() Error
	GetTime() uint64
	OneshotAbsolute(ns uint64) Error
	OneshotRelative(ns uint64) Error
	Periodic(ns uint64) Error
	HandleIRQ(irq uint32)
	GetNthIRQ(n uint32) uint32
	Properties() Properties
}
