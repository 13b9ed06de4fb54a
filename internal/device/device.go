// Package device models the GeForce3 register space read during chipset detection.
package device

import (
	"github.com/retroenv/nvprobe/internal/edid"
)

// Config contains the identification values of a simulated device.
type Config struct {
	Architecture   uint32 // 8 bit field of PMC_BOOT_0
	Implementation uint32 // 4 bit field of PMC_BOOT_0
	VendorID       uint32 // 16 bit PCI vendor identifier
	DeviceID       uint32 // 16 bit PCI device identifier
}

// DefaultConfig returns the configuration of the reference GeForce3 device.
func DefaultConfig() Config {
	return Config{
		Architecture:   ArchNV20,
		Implementation: ImplGeForce3,
		VendorID:       VendorNVIDIA,
		DeviceID:       DeviceGeForce3,
	}
}

// Device is the register space of a simulated GeForce3 board. All register
// values are computed once at construction and never change, there is no
// write path.
type Device struct {
	config Config

	boot0   uint32
	intr0   uint32 // no interrupts pending
	intrEn0 uint32 // interrupts disabled

	edidBlob []byte
}

// New creates a new device with the given identification values.
func New(cfg Config) *Device {
	return &Device{
		config:   cfg,
		boot0:    ComputeBoot0(cfg.Architecture, cfg.Implementation),
		edidBlob: edid.Generate(edid.DefaultDisplay()),
	}
}

// Config returns the identification values the device was created with.
func (d *Device) Config() Config {
	return d.config
}

// ComputeBoot0 packs architecture and implementation into the PMC_BOOT_0
// layout read by nouveau:
//
//	bits 31-20: architecture
//	bits 23-16: architecture, overlapping the field above
//	bits  7-4:  implementation
//
// Values wider than the 8/4 bit fields are not masked and alias into
// neighboring bits, matching the emulated hardware.
func ComputeBoot0(architecture, implementation uint32) uint32 {
	return architecture<<20 | architecture<<16 | implementation<<4
}

// Read returns the value of the register at the given BAR0 offset.
// Offsets outside the recognized set read as zero. Reads have no side
// effects and never fail.
func (d *Device) Read(offset uint32) uint32 {
	switch offset {
	case RegPMCBoot0:
		return d.boot0
	case RegPMCIntr0:
		return d.intr0
	case RegPMCIntrEn0:
		return d.intrEn0
	case RegPBusPCINV1:
		return d.config.VendorID<<16 | d.config.DeviceID
	default:
		return 0
	}
}

// DDCRead returns one byte of the EDID blob as seen over the DDC bus.
// Offsets beyond the blob read as 0xff like an idle I2C bus.
func (d *Device) DDCRead(offset uint32) uint8 {
	if offset >= uint32(len(d.edidBlob)) {
		return 0xff
	}
	return d.edidBlob[offset]
}

// EDID returns a copy of the device's EDID blob.
func (d *Device) EDID() []byte {
	blob := make([]byte, len(d.edidBlob))
	copy(blob, d.edidBlob)
	return blob
}
