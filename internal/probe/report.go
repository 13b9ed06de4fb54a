package probe

import "github.com/retroenv/nvprobe/internal/device"

// Expected contains the reference values detection results are compared
// against. They are external reference data and never derived from the
// register space under test.
type Expected struct {
	Architecture uint32 // as decoded by nouveau from PMC_BOOT_0
	VendorID     uint32
	DeviceID     uint32
	Boot0        uint32 // raw PMC_BOOT_0 value
}

// DefaultExpected returns the reference values for the GeForce3 NV20 chipset.
func DefaultExpected() Expected {
	return Expected{
		Architecture: 0x22,
		VendorID:     device.VendorNVIDIA,
		DeviceID:     device.DeviceGeForce3,
		Boot0:        0x02200000,
	}
}

// ExpectedFor derives the reference values for a device configuration.
// The expected architecture folds the configured value with its upper
// nibble, the overlap nouveau's shift at bit 20 picks up from the
// PMC_BOOT_0 packing.
func ExpectedFor(cfg device.Config) Expected {
	return Expected{
		Architecture: (cfg.Architecture | cfg.Architecture>>4) & 0xff,
		VendorID:     cfg.VendorID,
		DeviceID:     cfg.DeviceID,
		Boot0:        device.ComputeBoot0(cfg.Architecture, cfg.Implementation),
	}
}

// Check is the outcome of a single detection comparison.
type Check struct {
	Name     string
	Register uint32 // register offset the observed value was read from
	Observed uint32
	Expected uint32
	Passed   bool
}

// Report contains the outcome of a detection pass.
type Report struct {
	Checks []Check
}

// Verdict reports whether all checks passed.
func (r Report) Verdict() bool {
	for _, check := range r.Checks {
		if !check.Passed {
			return false
		}
	}
	return true
}

// Readout is the observed value of one required register.
type Readout struct {
	Name     string
	Register uint32
	Value    uint32
	Passed   bool
}

// CoverageReport contains the outcome of a register coverage pass.
type CoverageReport struct {
	Readouts []Readout
}

// Verdict reports whether all required registers read as non degenerate values.
func (r CoverageReport) Verdict() bool {
	for _, readout := range r.Readouts {
		if !readout.Passed {
			return false
		}
	}
	return true
}

// DecodeArchitecture extracts the architecture field from PMC_BOOT_0
// the way nouveau does.
func DecodeArchitecture(boot0 uint32) uint32 {
	return boot0 >> 20 & 0xff
}

// DecodeImplementation extracts the implementation field from PMC_BOOT_0.
func DecodeImplementation(boot0 uint32) uint32 {
	return boot0 >> 16 & 0xf
}

// DecodeVendorID extracts the PCI vendor identifier from PBUS_PCI_NV_1.
func DecodeVendorID(pciID uint32) uint32 {
	return pciID >> 16 & 0xffff
}

// DecodeDeviceID extracts the PCI device identifier from PBUS_PCI_NV_1.
func DecodeDeviceID(pciID uint32) uint32 {
	return pciID & 0xffff
}
