//go:build !tinygo

// ksim runs the keystone timer driver against the hosted Timer64 model
// and lets you poke it from the keyboard.  The model advances at real
// time in 100ms slices off a wall clock ticker.
package main

import (
	"fmt"
	"log"
	"time"

	tty "github.com/mattn/go-tty"

	"platsupport/src/drivers/keystone"
	"platsupport/src/hardware/timer64"
	"platsupport/src/timer"
	"platsupport/src/tools/ksim"
)

const stepInterval = 100 * time.Millisecond
const ticksPerStep = keystone.TicksPerSecond / 10

func main() {
	t, err := tty.Open()
	if err != nil {
		log.Fatalf("opening tty: %v", err)
	}
	defer t.Close()

	hw := new(timer64.RegisterMap)
	dev := ksim.NewDevice(hw)
	tmr := keystone.NewTimer(hw, keystone.DefaultConfig(keystone.Timer0).IRQ)
	tmr.Reset()

	keys := make(chan rune)
	go func() {
		for {
			r, err := t.ReadRune()
			if err != nil {
				close(keys)
				return
			}
			keys <- r
		}
	}()

	fmt.Print("ksim: o=oneshot 1s  p=periodic 500ms  s=start  t=stop  r=reset  a=ack  q=quit\r\n")
	tick := time.NewTicker(stepInterval)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			dev.Step(ticksPerStep)
			line := " "
			if dev.IRQAsserted() {
				line = "!"
			}
			fmt.Printf("\r%s irq=%d cnt=%010d tcr=%02x int=%02x ", line,
				tmr.GetNthIRQ(0), tmr.GetTime(), hw.Control.Get(), hw.IntCtlStat.Get())
		case r, ok := <-keys:
			if !ok {
				return
			}
			switch r {
			case 'o':
				report("oneshot", tmr.OneshotRelative(uint64(time.Second)))
			case 'p':
				report("periodic", tmr.Periodic(uint64(500*time.Millisecond)))
			case 's':
				report("start", tmr.Start())
			case 't':
				report("stop", tmr.Stop())
			case 'r':
				tmr.Reset()
			case 'a':
				tmr.HandleIRQ(tmr.GetNthIRQ(0))
			case 'q':
				fmt.Print("\r\n")
				return
			}
		}
	}
}

func report(op string, e timer.Error) {
	if e != timer.Ok {
		fmt.Printf("\r\n%s: %v\r\n", op, e)
	}
}
