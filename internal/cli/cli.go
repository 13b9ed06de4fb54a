// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/nvprobe/internal/device"
	"github.com/retroenv/nvprobe/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	var overrides overrideFlags
	readOptionFlags(flags, &opts, &overrides)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags}
	}

	if len(flags.Args()) > 0 {
		return opts, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("unexpected argument '%s'", flags.Args()[0]),
		}
	}

	if err := normalizeOptions(&opts, overrides); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: nvprobe [options]\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// overrideFlags carries the raw override values before parsing,
// an empty string keeps the model default.
type overrideFlags struct {
	architecture   string
	implementation string
	vendorID       string
	deviceID       string
}

// normalizeOptions validates the model name and parses override values
func normalizeOptions(opts *options.Program, overrides overrideFlags) error {
	model, err := device.ModelFromString(opts.Model)
	if err != nil {
		return err
	}
	opts.Model = string(model)

	fields := []struct {
		name   string
		value  string
		target **uint32
	}{
		{name: "arch", value: overrides.architecture, target: &opts.Overrides.Architecture},
		{name: "impl", value: overrides.implementation, target: &opts.Overrides.Implementation},
		{name: "vendor", value: overrides.vendorID, target: &opts.Overrides.VendorID},
		{name: "device", value: overrides.deviceID, target: &opts.Overrides.DeviceID},
	}

	for _, field := range fields {
		if field.value == "" {
			continue
		}
		value, err := strconv.ParseUint(field.value, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid %s value '%s': %w", field.name, field.value, err)
		}
		parsed := uint32(value)
		*field.target = &parsed
	}

	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, overrides *overrideFlags) {
	flags.StringVar(&opts.Model, "model", "geforce3", "board variant to simulate (geforce3/ti200/ti500)")
	flags.StringVar(&opts.Mode, "mode", "", "display mode to validate in addition to detection, for example 1024x768x32")
	flags.StringVar(&overrides.architecture, "arch", "", "override the architecture identification field, for example 0x20")
	flags.StringVar(&overrides.implementation, "impl", "", "override the implementation identification field")
	flags.StringVar(&overrides.vendorID, "vendor", "", "override the PCI vendor identifier, for example 0x10de")
	flags.StringVar(&overrides.deviceID, "device", "", "override the PCI device identifier")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
