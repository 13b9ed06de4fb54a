package probe

import (
	"testing"

	"github.com/retroenv/nvprobe/internal/device"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// stubSpace is a register space backed by a map, unmapped offsets read as zero.
type stubSpace map[uint32]uint32

func (s stubSpace) Read(offset uint32) uint32 {
	return s[offset]
}

func TestDetectionReferenceDevice(t *testing.T) {
	logger := log.NewTestLogger(t)
	dev := device.New(device.DefaultConfig())
	prober := New(logger, dev, DefaultExpected())

	report := prober.Detection()

	assert.True(t, report.Verdict())
	assert.Len(t, report.Checks, 4)

	for _, check := range report.Checks {
		assert.True(t, check.Passed)
	}

	assert.Equal(t, "architecture", report.Checks[0].Name)
	assert.Equal(t, uint32(0x22), report.Checks[0].Observed)
	assert.Equal(t, "vendor_id", report.Checks[1].Name)
	assert.Equal(t, uint32(0x10de), report.Checks[1].Observed)
	assert.Equal(t, "device_id", report.Checks[2].Name)
	assert.Equal(t, uint32(0x0200), report.Checks[2].Observed)
	assert.Equal(t, "boot0", report.Checks[3].Name)
	assert.Equal(t, uint32(0x02200000), report.Checks[3].Observed)
}

func TestDetectionMismatches(t *testing.T) {
	logger := log.NewTestLogger(t)

	tests := []struct {
		name        string
		space       stubSpace
		wantFailed  []string
		wantVerdict bool
	}{
		{
			name:        "all registers zero",
			space:       stubSpace{},
			wantFailed:  []string{"architecture", "vendor_id", "device_id", "boot0"},
			wantVerdict: false,
		},
		{
			name: "wrong vendor only",
			space: stubSpace{
				device.RegPMCBoot0:   0x02200000,
				device.RegPBusPCINV1: 0x10ec<<16 | 0x0200,
			},
			wantFailed:  []string{"vendor_id"},
			wantVerdict: false,
		},
		{
			name: "boot0 decodes but raw value differs",
			space: stubSpace{
				device.RegPMCBoot0:   0x02200010,
				device.RegPBusPCINV1: 0x10de0200,
			},
			wantFailed:  []string{"boot0"},
			wantVerdict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := New(logger, tt.space, DefaultExpected())
			report := prober.Detection()

			assert.Equal(t, tt.wantVerdict, report.Verdict())

			var failed []string
			for _, check := range report.Checks {
				if !check.Passed {
					failed = append(failed, check.Name)
				}
			}
			assert.Equal(t, tt.wantFailed, failed)
		})
	}
}

func TestDetectionIsIdempotent(t *testing.T) {
	logger := log.NewTestLogger(t)
	dev := device.New(device.DefaultConfig())
	prober := New(logger, dev, DefaultExpected())

	first := prober.Detection()
	second := prober.Detection()
	assert.Equal(t, first, second)
}

func TestCoverage(t *testing.T) {
	logger := log.NewTestLogger(t)

	t.Run("reference device passes", func(t *testing.T) {
		dev := device.New(device.DefaultConfig())
		prober := New(logger, dev, DefaultExpected())

		report := prober.Coverage()

		assert.True(t, report.Verdict())
		assert.Len(t, report.Readouts, 4)
		assert.Equal(t, "PMC_BOOT_0", report.Readouts[0].Name)
		assert.Equal(t, uint32(0x02200000), report.Readouts[0].Value)
	})

	t.Run("zero boot identification fails", func(t *testing.T) {
		space := stubSpace{
			device.RegPBusPCINV1: 0x10de0200,
		}
		prober := New(logger, space, DefaultExpected())

		report := prober.Coverage()

		assert.False(t, report.Verdict())
		assert.False(t, report.Readouts[0].Passed)
		// interrupt registers read zero by design and still pass
		assert.True(t, report.Readouts[1].Passed)
		assert.True(t, report.Readouts[2].Passed)
		assert.True(t, report.Readouts[3].Passed)
	})
}

func TestDecode(t *testing.T) {
	boot0 := uint32(0x02200000)
	assert.Equal(t, uint32(0x22), DecodeArchitecture(boot0))
	assert.Equal(t, uint32(0x0), DecodeImplementation(boot0))

	pciID := uint32(0x10de0200)
	assert.Equal(t, uint32(0x10de), DecodeVendorID(pciID))
	assert.Equal(t, uint32(0x0200), DecodeDeviceID(pciID))
}

func TestExpectedFor(t *testing.T) {
	t.Run("reference config matches pinned expectations", func(t *testing.T) {
		assert.Equal(t, DefaultExpected(), ExpectedFor(device.DefaultConfig()))
	})

	t.Run("architecture fold", func(t *testing.T) {
		cfg := device.DefaultConfig()
		cfg.Architecture = 0x30
		expected := ExpectedFor(cfg)

		// decode at bit 20 picks up the placement at bit 16 as well
		assert.Equal(t, uint32(0x33), expected.Architecture)
		assert.Equal(t, device.ComputeBoot0(0x30, cfg.Implementation), expected.Boot0)
	})

	t.Run("ti500 expectations", func(t *testing.T) {
		expected := ExpectedFor(device.ModelConfig(device.ModelTi500))
		assert.Equal(t, uint32(0x22), expected.Architecture)
		assert.Equal(t, uint32(0x0202), expected.DeviceID)
		assert.Equal(t, uint32(0x02200020), expected.Boot0)
	})
}

func TestReportVerdict(t *testing.T) {
	report := Report{Checks: []Check{
		{Name: "a", Passed: true},
		{Name: "b", Passed: true},
	}}
	assert.True(t, report.Verdict())

	report.Checks = append(report.Checks, Check{Name: "c"})
	assert.False(t, report.Verdict())

	assert.True(t, Report{}.Verdict())
}
