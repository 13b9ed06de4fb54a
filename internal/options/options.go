// Package options contains the program options.
package options

import (
	"github.com/retroenv/nvprobe/internal/device"
)

// Parameters contains device selection options.
type Parameters struct {
	Model string // board variant: geforce3, ti200, ti500
	Mode  string // optional display mode to validate, e.g. 1024x768x32
}

// Flags contains behavior options.
type Flags struct {
	Debug bool
	Quiet bool
}

// Overrides replaces individual identification values of the selected model.
// Unset fields keep the model defaults.
type Overrides struct {
	Architecture   *uint32
	Implementation *uint32
	VendorID       *uint32
	DeviceID       *uint32
}

// Apply returns cfg with all set overrides applied.
func (o Overrides) Apply(cfg device.Config) device.Config {
	if o.Architecture != nil {
		cfg.Architecture = *o.Architecture
	}
	if o.Implementation != nil {
		cfg.Implementation = *o.Implementation
	}
	if o.VendorID != nil {
		cfg.VendorID = *o.VendorID
	}
	if o.DeviceID != nil {
		cfg.DeviceID = *o.DeviceID
	}
	return cfg
}

// Program options of the validator.
type Program struct {
	Parameters
	Flags

	Overrides Overrides
}
