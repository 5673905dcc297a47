package nes

import "testing"

func newTestPPU() *PPU {
	ppu := NewPPU()
	ppu.ConnectCartridge(newTestCartridge())
	return ppu
}

func TestStatusReadClearsVBlankAndLatch(t *testing.T) {
	ppu := newTestPPU()
	ppu.status |= statusVerticalBlank
	ppu.WriteRegister(6, 0x3F) // first PPUADDR write arms the latch

	data := ppu.ReadRegister(2, false)
	if data&statusVerticalBlank == 0 {
		t.Error("vblank bit not visible in the read")
	}
	if ppu.status&statusVerticalBlank != 0 {
		t.Error("vblank bit not cleared by the read")
	}
	if ppu.addressLatch != 0 {
		t.Error("address latch not reset by the read")
	}
}

func TestStatusReadOnlyHasNoSideEffects(t *testing.T) {
	ppu := newTestPPU()
	ppu.status |= statusVerticalBlank
	ppu.WriteRegister(6, 0x3F)

	ppu.ReadRegister(2, true)
	if ppu.status&statusVerticalBlank == 0 {
		t.Error("read-only status read cleared vblank")
	}
	if ppu.addressLatch != 1 {
		t.Error("read-only status read reset the address latch")
	}
}

func TestStatusReadMixesDataBuffer(t *testing.T) {
	ppu := newTestPPU()
	ppu.status = 0xE0
	ppu.dataBuffer = 0x1F
	if got := ppu.ReadRegister(2, false); got != 0xFF {
		t.Errorf("status read = 0x%02X, want 0xFF", got)
	}
}

func TestScrollRegisterWrites(t *testing.T) {
	ppu := newTestPPU()
	ppu.WriteRegister(5, 0x7D) // coarse X = 15, fine X = 5
	if ppu.fineX != 5 {
		t.Errorf("fine X = %d, want 5", ppu.fineX)
	}
	if ppu.t.coarseX() != 15 {
		t.Errorf("t coarse X = %d, want 15", ppu.t.coarseX())
	}
	ppu.WriteRegister(5, 0x5E) // coarse Y = 11, fine Y = 6
	if ppu.t.fineY() != 6 {
		t.Errorf("t fine Y = %d, want 6", ppu.t.fineY())
	}
	if ppu.t.coarseY() != 11 {
		t.Errorf("t coarse Y = %d, want 11", ppu.t.coarseY())
	}
}

func TestAddrRegisterWrites(t *testing.T) {
	ppu := newTestPPU()
	ppu.WriteRegister(6, 0x23)
	if ppu.v != 0 {
		t.Error("v updated before the second PPUADDR write")
	}
	ppu.WriteRegister(6, 0x45)
	if got := ppu.v.addr(); got != 0x2345 {
		t.Errorf("v = 0x%04X, want 0x2345", got)
	}
}

func TestCtrlMirrorsNametableBitsIntoT(t *testing.T) {
	ppu := newTestPPU()
	ppu.WriteRegister(0, 0x03)
	if ppu.t.nametableX() != 1 || ppu.t.nametableY() != 1 {
		t.Errorf("t nametable bits = (%d, %d), want (1, 1)",
			ppu.t.nametableX(), ppu.t.nametableY())
	}
}

func TestPPUDataBufferedRead(t *testing.T) {
	ppu := newTestPPU()
	// nametable RAM at 0x2000; CHR claims everything below
	ppu.ppuWrite(0x2005, 0x42)

	ppu.WriteRegister(6, 0x20)
	ppu.WriteRegister(6, 0x05)
	if got := ppu.ReadRegister(7, false); got == 0x42 {
		t.Error("first PPUDATA read should return the stale buffer")
	}
	ppu.WriteRegister(6, 0x20)
	ppu.WriteRegister(6, 0x05)
	if got := ppu.ReadRegister(7, false); got != 0x42 {
		t.Errorf("buffered read = 0x%02X, want 0x42", got)
	}
}

func TestPPUDataPaletteReadIsImmediate(t *testing.T) {
	ppu := newTestPPU()
	ppu.ppuWrite(0x3F01, 0x2A)

	ppu.WriteRegister(6, 0x3F)
	ppu.WriteRegister(6, 0x01)
	if got := ppu.ReadRegister(7, false); got != 0x2A {
		t.Errorf("palette read = 0x%02X, want immediate 0x2A", got)
	}
}

func TestPPUDataIncrement(t *testing.T) {
	ppu := newTestPPU()
	ppu.WriteRegister(6, 0x20)
	ppu.WriteRegister(6, 0x00)
	ppu.WriteRegister(7, 0x00)
	if got := ppu.v.addr(); got != 0x2001 {
		t.Errorf("v = 0x%04X, want 0x2001 (+1 mode)", got)
	}

	ppu.WriteRegister(0, ctrlIncrementMode)
	ppu.WriteRegister(6, 0x20)
	ppu.WriteRegister(6, 0x00)
	ppu.WriteRegister(7, 0x00)
	if got := ppu.v.addr(); got != 0x2020 {
		t.Errorf("v = 0x%04X, want 0x2020 (+32 mode)", got)
	}
}

func TestPaletteMirroring(t *testing.T) {
	ppu := newTestPPU()
	ppu.ppuWrite(0x3F00, 0x17)
	if got := ppu.ppuRead(0x3F10); got != 0x17 {
		t.Errorf("read 0x3F10 = 0x%02X, want alias of 0x3F00", got)
	}
	ppu.ppuWrite(0x3F14, 0x21)
	if got := ppu.ppuRead(0x3F04); got != 0x21 {
		t.Errorf("read 0x3F04 = 0x%02X, want alias of 0x3F14", got)
	}
}

func TestNametableMirroring(t *testing.T) {
	ppu := newTestPPU()

	ppu.cartridge.Mirror = MirrorVertical
	ppu.ppuWrite(0x2000, 0x11)
	if got := ppu.ppuRead(0x2800); got != 0x11 {
		t.Errorf("vertical: 0x2800 = 0x%02X, want 0x11", got)
	}
	ppu.ppuWrite(0x2400, 0x22)
	if got := ppu.ppuRead(0x2C00); got != 0x22 {
		t.Errorf("vertical: 0x2C00 = 0x%02X, want 0x22", got)
	}

	ppu.cartridge.Mirror = MirrorHorizontal
	ppu.ppuWrite(0x2000, 0x33)
	if got := ppu.ppuRead(0x2400); got != 0x33 {
		t.Errorf("horizontal: 0x2400 = 0x%02X, want 0x33", got)
	}
	ppu.ppuWrite(0x2800, 0x44)
	if got := ppu.ppuRead(0x2C00); got != 0x44 {
		t.Errorf("horizontal: 0x2C00 = 0x%02X, want 0x44", got)
	}
}

func TestOAMAddressAndData(t *testing.T) {
	ppu := newTestPPU()
	ppu.WriteRegister(3, 0x10)
	ppu.WriteRegister(4, 0xAB)
	if ppu.oamData[0x10] != 0xAB {
		t.Errorf("OAM[0x10] = 0x%02X, want 0xAB", ppu.oamData[0x10])
	}
	if got := ppu.ReadRegister(4, false); got != 0xAB {
		t.Errorf("OAMDATA read = 0x%02X, want 0xAB", got)
	}
}

func TestVBlankAndNMILatch(t *testing.T) {
	ppu := newTestPPU()
	ppu.WriteRegister(0, ctrlEnableNMI)

	for !(ppu.ScanLine == 241 && ppu.Cycle == 2) {
		ppu.Clock()
	}
	if ppu.status&statusVerticalBlank == 0 {
		t.Error("vblank not set at scanline 241")
	}
	if !ppu.NeedsNMI() {
		t.Error("NMI latch not raised")
	}
	if ppu.NeedsNMI() {
		t.Error("NMI latch not consumed by the first query")
	}
}

func TestNMILatchRequiresEnable(t *testing.T) {
	ppu := newTestPPU()
	for !(ppu.ScanLine == 241 && ppu.Cycle == 2) {
		ppu.Clock()
	}
	if ppu.NeedsNMI() {
		t.Error("NMI raised with the enable bit clear")
	}
}

func TestFrameCounters(t *testing.T) {
	ppu := newTestPPU()
	// from powerup at (0, 0), the first frame ends 261 scanlines later at
	// the wrap back to the pre-render line
	for i := 0; i < 261*341; i++ {
		if ppu.Cycle < 0 || ppu.Cycle > 340 {
			t.Fatalf("cycle out of range: %d", ppu.Cycle)
		}
		if ppu.ScanLine < -1 || ppu.ScanLine > 260 {
			t.Fatalf("scanline out of range: %d", ppu.ScanLine)
		}
		ppu.Clock()
	}
	if !ppu.FrameComplete() {
		t.Error("frame not complete after a full frame of cycles")
	}
	if ppu.ScanLine != -1 || ppu.Cycle != 0 {
		t.Errorf("PPU at (%d, %d), want wrap to (-1, 0)", ppu.ScanLine, ppu.Cycle)
	}
	ppu.StartNewFrame()
	if ppu.FrameComplete() {
		t.Error("frame latch not cleared")
	}
}

func TestPrerenderClearsStatus(t *testing.T) {
	ppu := newTestPPU()
	ppu.status = statusVerticalBlank | statusSpriteOverflow | statusSpriteZeroHit
	ppu.ScanLine = -1
	ppu.Cycle = 1
	ppu.Clock()
	if ppu.status&0xE0 != 0 {
		t.Errorf("status = 0x%02X, want all flags cleared", ppu.status)
	}
}

func TestSpriteEvaluation(t *testing.T) {
	ppu := newTestPPU()
	// sprite 0 covers scanlines 10-17
	ppu.oamData[0] = 10
	ppu.oamData[1] = 0x01
	ppu.oamData[2] = 0x00
	ppu.oamData[3] = 0x40
	// sprite 5 also intersects
	ppu.oamData[5*4] = 12

	ppu.ScanLine = 10
	ppu.evaluateSprites()
	if ppu.spriteCount != 1 {
		t.Fatalf("sprite count = %d, want 1", ppu.spriteCount)
	}
	if !ppu.spriteZeroHitPossible {
		t.Error("sprite zero not flagged as possible")
	}

	ppu.ScanLine = 15
	ppu.evaluateSprites()
	if ppu.spriteCount != 2 {
		t.Errorf("sprite count = %d, want 2", ppu.spriteCount)
	}
}

func TestSpriteOverflow(t *testing.T) {
	ppu := newTestPPU()
	for i := 0; i < 9; i++ {
		ppu.oamData[i*4] = 20
	}
	ppu.ScanLine = 20
	ppu.evaluateSprites()
	if ppu.spriteCount != 8 {
		t.Errorf("sprite count = %d, want clamp to 8", ppu.spriteCount)
	}
	if ppu.status&statusSpriteOverflow == 0 {
		t.Error("sprite overflow not set by a ninth sprite")
	}
}

func TestSpriteSize16Evaluation(t *testing.T) {
	ppu := newTestPPU()
	ppu.ctrl = ctrlSpriteSize
	ppu.oamData[0] = 10
	ppu.ScanLine = 25 // row 15 of a 8x16 sprite
	ppu.evaluateSprites()
	if ppu.spriteCount != 1 {
		t.Errorf("sprite count = %d, want 1 in 8x16 mode", ppu.spriteCount)
	}
}

func TestFlipByte(t *testing.T) {
	tests := []struct{ in, out byte }{
		{0b11100000, 0b00000111},
		{0b10000000, 0b00000001},
		{0b10110001, 0b10001101},
		{0x00, 0x00},
		{0xFF, 0xFF},
	}
	for _, tt := range tests {
		if got := flipByte(tt.in); got != tt.out {
			t.Errorf("flipByte(%08b) = %08b, want %08b", tt.in, got, tt.out)
		}
	}
}

func TestScrollXIncrementWrapsNametable(t *testing.T) {
	ppu := newTestPPU()
	ppu.mask = maskRenderBackground
	ppu.v.setCoarseX(31)
	ppu.incrementScrollX()
	if ppu.v.coarseX() != 0 {
		t.Errorf("coarse X = %d, want wrap to 0", ppu.v.coarseX())
	}
	if ppu.v.nametableX() != 1 {
		t.Error("nametable X not flipped on wrap")
	}
}

func TestScrollYIncrement(t *testing.T) {
	ppu := newTestPPU()
	ppu.mask = maskRenderBackground

	ppu.v.setFineY(7)
	ppu.v.setCoarseY(29)
	ppu.incrementScrollY()
	if ppu.v.fineY() != 0 || ppu.v.coarseY() != 0 {
		t.Errorf("fineY=%d coarseY=%d, want both 0", ppu.v.fineY(), ppu.v.coarseY())
	}
	if ppu.v.nametableY() != 1 {
		t.Error("nametable Y not flipped wrapping row 29")
	}

	// row 31 wraps to 0 without the nametable flip
	ppu.v.setFineY(7)
	ppu.v.setCoarseY(31)
	ppu.incrementScrollY()
	if ppu.v.coarseY() != 0 {
		t.Errorf("coarse Y = %d, want 0", ppu.v.coarseY())
	}
	if ppu.v.nametableY() != 1 {
		t.Error("nametable Y must not flip wrapping row 31")
	}
}

func TestScrollFrozenWhenRenderingDisabled(t *testing.T) {
	ppu := newTestPPU()
	ppu.v.setCoarseX(31)
	ppu.incrementScrollX()
	if ppu.v.coarseX() != 31 {
		t.Error("scroll moved with rendering disabled")
	}
}

func TestBackgroundPixelRendering(t *testing.T) {
	ppu := newTestPPU()
	ppu.mask = maskRenderBackground
	ppu.bgShifterPatternLo = 0x8000
	ppu.bgShifterPatternHi = 0x8000
	ppu.bgShifterAttributeLo = 0x8000
	ppu.bgShifterAttributeHi = 0x0000

	pixel, palette := ppu.currentPixel()
	if pixel != 3 {
		t.Errorf("pixel = %d, want 3", pixel)
	}
	if palette != 1 {
		t.Errorf("palette = %d, want 1", palette)
	}
}

func TestFineXSelectsShifterBit(t *testing.T) {
	ppu := newTestPPU()
	ppu.mask = maskRenderBackground
	ppu.bgShifterPatternLo = 0x4000 // bit visible only at fineX 1
	if pixel, _ := ppu.currentPixel(); pixel != 0 {
		t.Errorf("pixel = %d, want 0 at fineX 0", pixel)
	}
	ppu.fineX = 1
	if pixel, _ := ppu.currentPixel(); pixel != 1 {
		t.Errorf("pixel = %d, want 1 at fineX 1", pixel)
	}
}

func TestSpritePriorityOverBackground(t *testing.T) {
	ppu := newTestPPU()
	ppu.mask = maskRenderBackground | maskRenderSprites
	ppu.bgShifterPatternLo = 0x8000
	ppu.spriteCount = 1
	ppu.spriteScanLine[0] = oamEntry{y: 0, id: 0, attribute: 0x01, x: 0}
	ppu.spriteShifterPatternLo[0] = 0x80

	pixel, palette := ppu.currentPixel()
	if pixel != 1 || palette != 0x05 {
		t.Errorf("pixel=%d palette=%d, want sprite pixel 1 palette 5", pixel, palette)
	}

	// priority bit set puts the sprite behind the opaque background
	ppu.spriteScanLine[0].attribute |= 0x20
	if _, palette = ppu.currentPixel(); palette == 0x05 {
		t.Errorf("sprite won despite behind-background priority")
	}
}

func TestSpriteZeroHit(t *testing.T) {
	ppu := newTestPPU()
	ppu.mask = maskRenderBackground | maskRenderSprites |
		maskRenderBackgroundLeft | maskRenderSpritesLeft
	ppu.Cycle = 100
	ppu.spriteZeroHitPossible = true
	ppu.spriteCount = 1
	ppu.spriteScanLine[0] = oamEntry{}
	ppu.spriteShifterPatternLo[0] = 0x80
	ppu.bgShifterPatternLo = 0x8000

	ppu.currentPixel()
	if ppu.status&statusSpriteZeroHit == 0 {
		t.Error("sprite zero hit not raised")
	}
}

func TestSpriteZeroHitGatedInLeftColumns(t *testing.T) {
	ppu := newTestPPU()
	ppu.mask = maskRenderBackground | maskRenderSprites
	ppu.Cycle = 5 // inside the left eight columns
	ppu.spriteZeroHitPossible = true
	ppu.spriteCount = 1
	ppu.spriteScanLine[0] = oamEntry{}
	ppu.spriteShifterPatternLo[0] = 0x80
	ppu.bgShifterPatternLo = 0x8000

	ppu.currentPixel()
	if ppu.status&statusSpriteZeroHit != 0 {
		t.Error("sprite zero hit asserted in the masked left columns")
	}

	ppu.Cycle = 9
	ppu.currentPixel()
	if ppu.status&statusSpriteZeroHit == 0 {
		t.Error("sprite zero hit should assert from cycle 9")
	}
}

func TestSpriteZeroHitNeedsBothPipelines(t *testing.T) {
	ppu := newTestPPU()
	ppu.mask = maskRenderSprites // background off
	ppu.Cycle = 100
	ppu.spriteZeroHitPossible = true
	ppu.spriteZeroBeingRendered = true
	ppu.checkSpriteZeroHit()
	if ppu.status&statusSpriteZeroHit != 0 {
		t.Error("sprite zero hit must require both render bits")
	}
}

func TestLoopyFieldRoundTrips(t *testing.T) {
	var r loopyRegister
	r.setCoarseX(21)
	r.setCoarseY(13)
	r.setNametableX(1)
	r.setNametableY(1)
	r.setFineY(5)
	if r.coarseX() != 21 || r.coarseY() != 13 ||
		r.nametableX() != 1 || r.nametableY() != 1 || r.fineY() != 5 {
		t.Errorf("loopy fields scrambled: %016b", uint16(r))
	}
	// fields must not bleed into each other
	r.setCoarseX(0)
	if r.coarseY() != 13 || r.fineY() != 5 {
		t.Error("clearing coarse X disturbed other fields")
	}
}
