package nes

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const iNESFileMagic = 0x1a53454e

// Cartridge load failures the caller may want to tell apart. A missing
// file surfaces as the *os.PathError returned by os.Open.
var (
	ErrInvalidFile        = errors.New("invalid .nes file")
	ErrMapperNotSupported = errors.New("unsupported mapper")
)

type iNESFileHeader struct {
	Magic    uint32  // iNES magic number
	NumPRG   byte    // number of PRG-ROM banks (16KB each)
	NumCHR   byte    // number of CHR-ROM banks (8KB each)
	Control1 byte    // control bits
	Control2 byte    // control bits
	NumRAM   byte    // PRG-RAM size (x 8KB)
	_        [7]byte // unused padding
}

// LoadCartridge reads an iNES file (.nes) and returns a Cartridge on success.
// http://wiki.nesdev.com/w/index.php/INES
func LoadCartridge(path string) (*Cartridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCartridge(file)
}

// ReadCartridge parses an iNES image from r.
func ReadCartridge(r io.Reader) (*Cartridge, error) {
	// read file header
	header := iNESFileHeader{}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}

	// verify header magic number
	if header.Magic != iNESFileMagic {
		return nil, ErrInvalidFile
	}

	// mapper type
	mapper1 := header.Control1 >> 4
	mapper2 := header.Control2 >> 4
	mapper := mapper1 | mapper2<<4
	if mapper != 0 {
		return nil, fmt.Errorf("%w: %d", ErrMapperNotSupported, mapper)
	}

	// mirroring type
	mirror := header.Control1 & 1

	// skip trainer if present (unused)
	if header.Control1&4 == 4 {
		trainer := make([]byte, 512)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, err
		}
	}

	// read prg-rom bank(s)
	prg := make([]byte, int(header.NumPRG)*16384)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, err
	}

	// read chr-rom bank(s)
	chr := make([]byte, int(header.NumCHR)*8192)
	if _, err := io.ReadFull(r, chr); err != nil {
		return nil, err
	}

	// provide chr-rom if not in file
	if header.NumCHR == 0 {
		chr = make([]byte, 8192)
	}

	prgBanks := int(header.NumPRG)
	chrBanks := int(header.NumCHR)
	return &Cartridge{
		PRG:      prg,
		CHR:      chr,
		MapperID: mapper,
		Mirror:   mirror,
		Mapper:   &Mapper0{prgBanks, chrBanks},
		prgBanks: prgBanks,
		chrBanks: chrBanks,
	}, nil
}
