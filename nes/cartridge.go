package nes

// Mirroring modes, set by the cartridge wiring
const (
	MirrorHorizontal = 0
	MirrorVertical   = 1
	MirrorSingle0    = 2
	MirrorSingle1    = 3
)

// MirrorLookup maps a mirroring mode and a nametable quadrant to one of the
// PPU's two physical 1 KiB nametables.
var MirrorLookup = [...][4]uint16{
	{0, 0, 1, 1},
	{0, 1, 0, 1},
	{0, 0, 0, 0},
	{1, 1, 1, 1},
}

// Cartridge holds the PRG and CHR ROM images plus the mapper that decodes
// bus addresses into them. It is created by the iNES loader and owned by
// the Console; the bus and PPU hold references only.
type Cartridge struct {
	PRG      []byte // PRG-ROM banks
	CHR      []byte // CHR-ROM banks
	MapperID byte
	Mirror   byte
	Mapper   Mapper
	prgBanks int
	chrBanks int
}

// CPURead offers a CPU bus read to the cartridge. The second return value
// reports whether the mapper claimed the address.
func (cartridge *Cartridge) CPURead(address uint16) (byte, bool) {
	if mapped, ok := cartridge.Mapper.MapCPURead(address); ok {
		return cartridge.PRG[mapped], true
	}
	return 0, false
}

// CPUWrite offers a CPU bus write to the cartridge and reports whether the
// mapper consumed it.
func (cartridge *Cartridge) CPUWrite(address uint16, data byte) bool {
	if mapped, ok := cartridge.Mapper.MapCPUWrite(address); ok {
		cartridge.PRG[mapped] = data
		return true
	}
	return false
}

// PPURead offers a PPU bus read (the pattern table window) to the cartridge.
func (cartridge *Cartridge) PPURead(address uint16) (byte, bool) {
	if mapped, ok := cartridge.Mapper.MapPPURead(address); ok {
		return cartridge.CHR[mapped], true
	}
	return 0, false
}

// PPUWrite offers a PPU bus write to the cartridge.
func (cartridge *Cartridge) PPUWrite(address uint16, data byte) bool {
	if mapped, ok := cartridge.Mapper.MapPPUWrite(address); ok {
		cartridge.CHR[mapped] = data
		return true
	}
	return false
}
