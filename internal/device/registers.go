package device

// BAR0 register offsets read by the nouveau driver during chipset detection.
const (
	RegPMCBoot0   uint32 = 0x000000 // NV_PMC_BOOT_0, chipset identification
	RegPMCIntr0   uint32 = 0x000100 // NV_PMC_INTR_0, interrupt status
	RegPMCIntrEn0 uint32 = 0x000140 // NV_PMC_INTR_EN_0, interrupt enable
	RegPBusPCINV1 uint32 = 0x001804 // NV_PBUS_PCI_NV_1, PCI identity mirror
)

// NV20 identification constants.
const (
	ArchNV20 uint32 = 0x20

	ImplGeForce3      uint32 = 0x00
	ImplGeForce3Ti200 uint32 = 0x01
	ImplGeForce3Ti500 uint32 = 0x02

	VendorNVIDIA uint32 = 0x10de

	DeviceGeForce3      uint32 = 0x0200
	DeviceGeForce3Ti200 uint32 = 0x0201
	DeviceGeForce3Ti500 uint32 = 0x0202
)

// Register describes a recognized register offset.
type Register struct {
	Name   string
	Offset uint32
}

// Registers returns the registers nouveau reads during detection, in probe order.
func Registers() []Register {
	return []Register{
		{Name: "PMC_BOOT_0", Offset: RegPMCBoot0},
		{Name: "PMC_INTR_0", Offset: RegPMCIntr0},
		{Name: "PMC_INTR_EN_0", Offset: RegPMCIntrEn0},
		{Name: "PBUS_PCI_NV_1", Offset: RegPBusPCINV1},
	}
}
