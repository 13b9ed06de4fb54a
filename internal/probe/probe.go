// Package probe replays the register reads of nouveau's chipset detection
// and validates the decoded fields against expected identification values.
package probe

import (
	"github.com/retroenv/nvprobe/internal/device"
	"github.com/retroenv/retrogolib/log"
)

// RegisterReader reads 32 bit values from BAR0 register offsets.
type RegisterReader interface {
	Read(offset uint32) uint32
}

// Prober validates a register space against expected identification values.
type Prober struct {
	logger   *log.Logger
	reader   RegisterReader
	expected Expected
}

// New creates a new prober for the given register space.
func New(logger *log.Logger, reader RegisterReader, expected Expected) *Prober {
	return &Prober{
		logger:   logger,
		reader:   reader,
		expected: expected,
	}
}

// Detection replays the register reads nouveau performs during chipset
// detection and compares each decoded field against the expected values.
// Mismatches are reported as failed checks, Detection itself never fails.
func (p *Prober) Detection() Report {
	boot0 := p.reader.Read(device.RegPMCBoot0)
	architecture := DecodeArchitecture(boot0)
	implementation := DecodeImplementation(boot0)

	p.logger.Debug("Read PMC_BOOT_0",
		log.Hex("value", boot0),
		log.Hex("architecture", architecture),
		log.Hex("implementation", implementation))

	pciID := p.reader.Read(device.RegPBusPCINV1)
	vendorID := DecodeVendorID(pciID)
	deviceID := DecodeDeviceID(pciID)

	p.logger.Debug("Read PBUS_PCI_NV_1",
		log.Hex("value", pciID),
		log.Hex("vendor", vendorID),
		log.Hex("device", deviceID))

	intr := p.reader.Read(device.RegPMCIntr0)
	intrEn := p.reader.Read(device.RegPMCIntrEn0)

	p.logger.Debug("Read interrupt registers",
		log.Hex("status", intr),
		log.Hex("enable", intrEn))

	return Report{
		Checks: []Check{
			newCheck("architecture", device.RegPMCBoot0, architecture, p.expected.Architecture),
			newCheck("vendor_id", device.RegPBusPCINV1, vendorID, p.expected.VendorID),
			newCheck("device_id", device.RegPBusPCINV1, deviceID, p.expected.DeviceID),
			newCheck("boot0", device.RegPMCBoot0, boot0, p.expected.Boot0),
		},
	}
}

// Coverage reads every register required by nouveau and records the observed
// values. The boot identification register must not read as zero, the driver
// treats a zero there as an absent device.
func (p *Prober) Coverage() CoverageReport {
	var report CoverageReport

	for _, reg := range device.Registers() {
		value := p.reader.Read(reg.Offset)
		passed := reg.Offset != device.RegPMCBoot0 || value != 0

		p.logger.Debug("Read register",
			log.String("register", reg.Name),
			log.Hex("offset", reg.Offset),
			log.Hex("value", value))

		report.Readouts = append(report.Readouts, Readout{
			Name:     reg.Name,
			Register: reg.Offset,
			Value:    value,
			Passed:   passed,
		})
	}

	return report
}

func newCheck(name string, register, observed, expected uint32) Check {
	return Check{
		Name:     name,
		Register: register,
		Observed: observed,
		Expected: expected,
		Passed:   observed == expected,
	}
}
