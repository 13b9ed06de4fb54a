// Package pipeline orchestrates the device construction and validation stages.
package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/nvprobe/internal/device"
	"github.com/retroenv/nvprobe/internal/options"
	"github.com/retroenv/nvprobe/internal/probe"
	"github.com/retroenv/nvprobe/internal/vbe"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete validation workflow.
type Pipeline struct {
	logger *log.Logger
}

// New creates a new validation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
	}
}

// Execute builds the configured device and runs all validation passes.
// The returned verdict is true only if every pass succeeded. A failed
// check is a reported outcome, not an error.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (bool, error) {
	model, err := device.ModelFromString(opts.Model)
	if err != nil {
		return false, fmt.Errorf("resolving model: %w", err)
	}

	// expectations follow the selected model, overrides perturb the
	// simulated device only
	referenceCfg := device.ModelConfig(model)
	cfg := opts.Overrides.Apply(referenceCfg)

	p.logger.Info("Simulating device",
		log.String("model", string(model)),
		log.Hex("architecture", cfg.Architecture),
		log.Hex("implementation", cfg.Implementation),
		log.Hex("vendor", cfg.VendorID),
		log.Hex("device", cfg.DeviceID))

	if err := ctx.Err(); err != nil {
		return false, err
	}

	dev := device.New(cfg)
	prober := probe.New(p.logger, dev, probe.ExpectedFor(referenceCfg))

	detection := prober.Detection()
	p.logDetection(detection)

	coverage := prober.Coverage()
	p.logCoverage(coverage)

	verdict := detection.Verdict() && coverage.Verdict()

	if opts.Mode != "" {
		ok, err := p.validateMode(opts.Mode)
		if err != nil {
			return false, err
		}
		verdict = verdict && ok
	}

	return verdict, nil
}

func (p *Pipeline) logDetection(report probe.Report) {
	for _, check := range report.Checks {
		if check.Passed {
			p.logger.Info("Detection check passed",
				log.String("check", check.Name),
				log.Hex("value", check.Observed))
			continue
		}
		p.logger.Error("Detection check failed",
			log.String("check", check.Name),
			log.Hex("expected", check.Expected),
			log.Hex("got", check.Observed))
	}
}

func (p *Pipeline) logCoverage(report probe.CoverageReport) {
	for _, readout := range report.Readouts {
		if readout.Passed {
			p.logger.Info("Register present",
				log.String("register", readout.Name),
				log.Hex("offset", readout.Register),
				log.Hex("value", readout.Value))
			continue
		}
		p.logger.Error("Register reads as absent device",
			log.String("register", readout.Name),
			log.Hex("offset", readout.Register),
			log.Hex("value", readout.Value))
	}
}

func (p *Pipeline) validateMode(modeOption string) (bool, error) {
	mode, err := vbe.ParseMode(modeOption)
	if err != nil {
		return false, fmt.Errorf("parsing display mode: %w", err)
	}

	if err := vbe.Validate(mode); err != nil {
		p.logger.Error("Display mode rejected",
			log.String("mode", mode.String()),
			log.Err(err))
		return false, nil
	}

	p.logger.Info("Display mode supported",
		log.String("mode", mode.String()),
		log.Hex("pitch", mode.Pitch()))
	return true, nil
}
