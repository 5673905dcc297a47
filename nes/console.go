package nes

import (
	"fmt"
	"image"
)

// NumControllers is how many controller ports the machine has.
const NumControllers = 2

// Console wires the CPU, PPU, DMA engine and bus together and owns the
// master clock. The PPU runs at three times the CPU rate; one Clock call is
// one PPU cycle.
type Console struct {
	CPU *CPU
	PPU *PPU
	Bus *Bus
	DMA *DMA

	Cartridge *Cartridge

	systemClockCounter uint64
	cartridgeLoaded    bool
}

func NewConsole() *Console {
	ppu := NewPPU()
	dma := &DMA{}
	dma.Reset()
	bus := &Bus{ppu: ppu, dma: dma}
	cpu := NewCPU(bus)
	return &Console{
		CPU: cpu,
		PPU: ppu,
		Bus: bus,
		DMA: dma,
	}
}

// InsertCartridge connects a cartridge to the bus and the PPU and resets
// the machine.
func (console *Console) InsertCartridge(cartridge *Cartridge) {
	console.Bus.cartridge = cartridge
	console.PPU.ConnectCartridge(cartridge)
	console.Cartridge = cartridge
	console.cartridgeLoaded = true
	console.Reset()
}

// IsCartridgeLoaded reports whether a cartridge has been inserted.
func (console *Console) IsCartridgeLoaded() bool {
	return console.cartridgeLoaded
}

// Reset runs the CPU reset sequence and zeroes the master clock counter;
// the PPU and DMA state are left as they are. It does nothing until a
// cartridge is loaded because the CPU reads its reset vector through the
// mapper.
func (console *Console) Reset() {
	if !console.cartridgeLoaded {
		return
	}
	console.CPU.Reset()
	console.systemClockCounter = 0
}

// SystemClockCounter returns the number of master ticks since reset.
func (console *Console) SystemClockCounter() uint64 {
	return console.systemClockCounter
}

// Clock runs one master tick. The phases are ordered: the PPU always
// advances first; every third tick either the DMA engine or the CPU gets
// the slot; last, a pending NMI is consumed so it lands between the other
// phases and the next tick.
func (console *Console) Clock() {
	console.PPU.Clock()
	if console.systemClockCounter%3 == 0 {
		if console.DMA.InProgress() {
			console.clockDMA()
		} else {
			console.CPU.Clock()
		}
	}
	if console.PPU.NeedsNMI() {
		console.CPU.NMI()
	}
	console.systemClockCounter++
}

// clockDMA advances a sprite transfer by one CPU slot. The engine first
// aligns to an odd master tick, then pairs bus reads on even ticks with
// OAM writes on odd ticks.
func (console *Console) clockDMA() {
	dma := console.DMA
	if dma.Waiting() {
		if console.systemClockCounter%2 == 1 {
			dma.StopWaiting()
		}
		return
	}
	if console.systemClockCounter%2 == 0 {
		dma.ReadData(console.Bus)
	} else {
		address, data := dma.LastRead()
		console.PPU.WriteOAM(address, data)
	}
}

// DoFrame clocks the machine until the PPU reports a completed frame, then
// drains whatever instruction the CPU still has in flight so the frame
// boundary always falls between instructions.
func (console *Console) DoFrame() {
	if !console.cartridgeLoaded {
		return
	}
	for !console.PPU.FrameComplete() {
		console.Clock()
	}
	for !console.CPU.InstructionComplete() {
		console.CPU.Clock()
	}
	console.PPU.StartNewFrame()
}

// Buffer returns the PPU's 256x240 output frame.
func (console *Console) Buffer() *image.RGBA {
	return console.PPU.Frame()
}

// FrameComplete reports whether the PPU has finished the current frame.
func (console *Console) FrameComplete() bool {
	return console.PPU.FrameComplete()
}

// WriteController ORs a button mask into controller idx (0 or 1).
func (console *Console) WriteController(idx int, mask byte) {
	checkControllerIndex(idx)
	console.Bus.WriteController(idx, mask)
}

// ClearController zeroes the state of controller idx.
func (console *Console) ClearController(idx int) {
	checkControllerIndex(idx)
	console.Bus.ClearController(idx)
}

// Controller returns the raw state of controller idx.
func (console *Console) Controller(idx int) byte {
	checkControllerIndex(idx)
	return console.Bus.Controller(idx)
}

func checkControllerIndex(idx int) {
	if idx < 0 || idx >= NumControllers {
		panic(fmt.Sprintf("controller index out of range: %d", idx))
	}
}
