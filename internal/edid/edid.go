// Package edid generates EDID display identification blobs.
package edid

// DDC bus addresses used for EDID access.
const (
	DDCAddrWrite uint8 = 0xa0
	DDCAddrRead  uint8 = 0xa1
)

// IsDDCRead reports whether addr is the read form of the EDID DDC address.
func IsDDCRead(addr uint8) bool {
	return addr&0xfe == DDCAddrWrite && addr&0x01 == 1
}

// BlobSize is the size of a generated EDID blob, base block plus extension space.
const BlobSize = 256

// blockSize is the size of the EDID base block covered by the checksum.
const blockSize = 128

// Display describes the monitor identity encoded into a blob.
type Display struct {
	Vendor string // 3 letter PNP manufacturer code
	Name   string
	Serial string

	PreferredWidth  uint32
	PreferredHeight uint32
	MaxWidth        uint32
	MaxHeight       uint32
}

// DefaultDisplay returns the display identity of the emulated GeForce3 output.
func DefaultDisplay() Display {
	return Display{
		Vendor:          "NVD",
		Name:            "GeForce3",
		Serial:          "12345678",
		PreferredWidth:  1024,
		PreferredHeight: 768,
		MaxWidth:        1600,
		MaxHeight:       1200,
	}
}

// Generate builds an EDID blob for the given display. The blob starts with
// the fixed EDID header, packs the 3 letter manufacturer code into 2 bytes,
// stores the preferred resolution little endian at bytes 54..57 and closes
// the base block with a checksum byte so that the block sums to zero.
func Generate(display Display) []byte {
	blob := make([]byte, BlobSize)

	copy(blob, []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00})

	if len(display.Vendor) >= 3 {
		// each letter compressed to 5 bits, A = 1
		m0 := display.Vendor[0] - 'A' + 1
		m1 := display.Vendor[1] - 'A' + 1
		m2 := display.Vendor[2] - 'A' + 1
		blob[8] = m0<<2 | m1>>3
		blob[9] = m1<<5 | m2
	}

	blob[54] = byte(display.PreferredWidth)
	blob[55] = byte(display.PreferredWidth >> 8)
	blob[56] = byte(display.PreferredHeight)
	blob[57] = byte(display.PreferredHeight >> 8)

	var sum uint8
	for _, b := range blob[:blockSize-1] {
		sum += b
	}
	blob[blockSize-1] = -sum

	return blob
}
