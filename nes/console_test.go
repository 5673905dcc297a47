package nes

import "testing"

// newTestCartridge returns an NROM cartridge with a single PRG bank, which
// the mapper mirrors through both 0x8000-0xBFFF and 0xC000-0xFFFF.
func newTestCartridge() *Cartridge {
	return &Cartridge{
		PRG:      make([]byte, 16384),
		CHR:      make([]byte, 8192),
		Mirror:   MirrorVertical,
		Mapper:   &Mapper0{prgBanks: 1, chrBanks: 1},
		prgBanks: 1,
		chrBanks: 1,
	}
}

// loadProgram copies a program into PRG at the given CPU address and points
// the reset vector at it.
func loadProgram(cartridge *Cartridge, origin uint16, program []byte) {
	for i, b := range program {
		cartridge.PRG[(origin+uint16(i))&0x3FFF] = b
	}
	cartridge.PRG[0xFFFC&0x3FFF] = byte(origin)
	cartridge.PRG[0xFFFD&0x3FFF] = byte(origin >> 8)
}

// newTestConsole builds a console running the given program.
func newTestConsole(origin uint16, program []byte) *Console {
	cartridge := newTestCartridge()
	loadProgram(cartridge, origin, program)
	console := NewConsole()
	console.InsertCartridge(cartridge)
	return console
}

// drainCPU clocks the CPU until the instruction in flight completes.
func drainCPU(cpu *CPU) {
	for !cpu.InstructionComplete() {
		cpu.Clock()
	}
}

// stepInstruction runs one full instruction and returns how many cycles it
// took.
func stepInstruction(cpu *CPU) int {
	n := 0
	for {
		cpu.Clock()
		n++
		if cpu.InstructionComplete() {
			return n
		}
	}
}

func TestClockRatio(t *testing.T) {
	// a NOP sled longer than the test runs, so every CPU cycle is accounted for
	program := make([]byte, 0x100)
	for i := range program {
		program[i] = 0xEA
	}
	console := newTestConsole(0x8000, program)

	// 3 master ticks per CPU cycle; the first 8 CPU cycles drain the
	// reset sequence, the rest retire a NOP every 2 cycles
	const ticks = 3 * (8 + 2*10)
	for i := 0; i < ticks; i++ {
		console.Clock()
	}
	if got, want := console.CPU.PC, uint16(0x8000+10); got != want {
		t.Errorf("PC = 0x%04X, want 0x%04X", got, want)
	}
	if got := console.SystemClockCounter(); got != ticks {
		t.Errorf("system clock counter = %d, want %d", got, ticks)
	}
}

func TestPPUAdvancesEveryTick(t *testing.T) {
	console := newTestConsole(0x8000, []byte{0xEA})
	for i := 0; i < 341; i++ {
		console.Clock()
	}
	if console.PPU.ScanLine != 1 || console.PPU.Cycle != 0 {
		t.Errorf("PPU at (%d, %d), want (1, 0)",
			console.PPU.ScanLine, console.PPU.Cycle)
	}
}

func TestResetWithoutCartridge(t *testing.T) {
	console := NewConsole()
	console.Reset()
	console.DoFrame()
	if console.IsCartridgeLoaded() {
		t.Error("cartridge reported loaded")
	}
}

func TestDoFrame(t *testing.T) {
	program := make([]byte, 0x100)
	for i := range program {
		program[i] = 0xEA
	}
	console := newTestConsole(0x8000, program)
	console.DoFrame()

	if console.PPU.FrameComplete() {
		t.Error("frame latch not cleared after DoFrame")
	}
	if !console.CPU.InstructionComplete() {
		t.Error("instruction left in flight after DoFrame")
	}
	// the first frame runs from powerup at (0, 0) to the scanline wrap
	if got := console.SystemClockCounter(); got != 261*341 {
		t.Errorf("system clock counter = %d, want %d", got, 261*341)
	}
}

func TestVBlankNMI(t *testing.T) {
	// enable NMIs, then spin; the NMI handler at 0x9000 spins too
	program := []byte{
		0xA9, 0x80, // LDA #$80
		0x8D, 0x00, 0x20, // STA $2000
		0x4C, 0x05, 0x80, // JMP $8005
	}
	cartridge := newTestCartridge()
	loadProgram(cartridge, 0x8000, program)
	cartridge.PRG[(0x9000)&0x3FFF] = 0x4C // JMP $9000
	cartridge.PRG[(0x9001)&0x3FFF] = 0x00
	cartridge.PRG[(0x9002)&0x3FFF] = 0x90
	cartridge.PRG[0xFFFA&0x3FFF] = 0x00
	cartridge.PRG[0xFFFB&0x3FFF] = 0x90

	console := NewConsole()
	console.InsertCartridge(cartridge)
	console.DoFrame()

	cpu := console.CPU
	if cpu.PC < 0x9000 || cpu.PC > 0x9002 {
		t.Errorf("PC = 0x%04X, want NMI handler at 0x9000", cpu.PC)
	}
	if cpu.SP != 0xFD-3 {
		t.Errorf("SP = 0x%02X, want three bytes pushed from 0xFD", cpu.SP)
	}
	if cpu.I != 1 {
		t.Error("interrupt disable not set by NMI")
	}
}

func TestControllerFacade(t *testing.T) {
	console := newTestConsole(0x8000, []byte{0xEA})
	console.WriteController(0, ButtonA)
	console.WriteController(0, ButtonStart)
	if got := console.Controller(0); got != ButtonA|ButtonStart {
		t.Errorf("controller state = 0x%02X, want 0x%02X", got, ButtonA|ButtonStart)
	}
	console.ClearController(0)
	if got := console.Controller(0); got != 0 {
		t.Errorf("controller state after clear = 0x%02X", got)
	}
}

func TestControllerIndexOutOfRange(t *testing.T) {
	console := NewConsole()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for controller index 2")
		}
	}()
	console.WriteController(2, ButtonA)
}
