package nes

// DMA is the sprite transfer engine. A write to 0x4014 starts a 256-byte
// copy from page<<8 in CPU address space into PPU OAM. The Console drives
// the protocol: the engine waits until an odd master tick, then alternates
// bus reads on even ticks with OAM deliveries on odd ticks, so a full
// transfer absorbs 513 CPU cycles plus up to one alignment cycle. The CPU
// does not advance while a transfer is in progress.
type DMA struct {
	page    byte
	address byte
	data    byte

	transferring bool
	waiting      bool
}

// StartTransfer arms a copy from the 256-byte page given by the high
// address byte. The engine always enters the wait state first.
func (dma *DMA) StartTransfer(page byte) {
	dma.page = page
	dma.address = 0
	dma.transferring = true
	dma.waiting = true
}

// InProgress reports whether a transfer is pending or running.
func (dma *DMA) InProgress() bool {
	return dma.transferring
}

// Waiting reports whether the engine is still aligning to an odd tick.
func (dma *DMA) Waiting() bool {
	return dma.waiting
}

func (dma *DMA) StopWaiting() {
	dma.waiting = false
}

// ReadData fetches the next source byte over the bus.
func (dma *DMA) ReadData(bus *Bus) {
	dma.data = bus.CPURead(uint16(dma.page)<<8|uint16(dma.address), false)
}

// LastRead hands back the offset and byte read on the previous even tick
// and advances. Wrapping 0xFF back to 0x00 finishes the transfer.
func (dma *DMA) LastRead() (byte, byte) {
	address := dma.address
	dma.address++
	if dma.address == 0 {
		dma.transferring = false
		dma.waiting = true
	}
	return address, dma.data
}

func (dma *DMA) Reset() {
	dma.page = 0
	dma.address = 0
	dma.data = 0
	dma.transferring = false
	dma.waiting = true
}
