package edid

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestGenerate(t *testing.T) {
	blob := Generate(DefaultDisplay())

	assert.Len(t, blob, BlobSize)

	t.Run("header", func(t *testing.T) {
		want := []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}
		assert.Equal(t, want, blob[:8])
	})

	t.Run("manufacturer code NVD", func(t *testing.T) {
		// N=14, V=22, D=4 at 5 bits each
		assert.Equal(t, byte(0x3a), blob[8])
		assert.Equal(t, byte(0xc4), blob[9])
	})

	t.Run("preferred resolution little endian", func(t *testing.T) {
		width := uint32(blob[54]) | uint32(blob[55])<<8
		height := uint32(blob[56]) | uint32(blob[57])<<8
		assert.Equal(t, uint32(1024), width)
		assert.Equal(t, uint32(768), height)
	})

	t.Run("base block sums to zero", func(t *testing.T) {
		var sum uint8
		for _, b := range blob[:128] {
			sum += b
		}
		assert.Equal(t, uint8(0), sum)
	})
}

func TestGenerateDynamicUpdate(t *testing.T) {
	display := DefaultDisplay()
	blob := Generate(display)
	assert.Equal(t, byte(1024&0xff), blob[54])

	display.PreferredWidth = 1920
	display.PreferredHeight = 1080
	blob = Generate(display)

	width := uint32(blob[54]) | uint32(blob[55])<<8
	height := uint32(blob[56]) | uint32(blob[57])<<8
	assert.Equal(t, uint32(1920), width)
	assert.Equal(t, uint32(1080), height)
}

func TestGenerateShortVendor(t *testing.T) {
	display := DefaultDisplay()
	display.Vendor = "N"

	blob := Generate(display)
	assert.Equal(t, byte(0), blob[8])
	assert.Equal(t, byte(0), blob[9])
}

func TestDDCAddresses(t *testing.T) {
	assert.True(t, IsDDCRead(DDCAddrRead))
	assert.False(t, IsDDCRead(DDCAddrWrite))
	assert.False(t, IsDDCRead(0x51))
	assert.Equal(t, uint8(0xa0), DDCAddrRead&0xfe)
}
