package konica

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"github.com/MichaelHengge/konica-lscs/misdk"
)

// Measure triggers a measurement. With wait set, it blocks until the
// instrument reports a non-measuring state, then applies the configured
// settle delay before returning so an immediate read sees the new value.
func (d *Device) Measure(ctx context.Context, wait bool) error {
	res, err := d.sdk.Measure(ctx, d.port())
	if err != nil {
		return errors.Wrap(err, "measure")
	}
	if err := res.Err("Measure"); err != nil {
		return err
	}
	if !wait {
		return nil
	}
	if err := d.WaitForIdle(ctx); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.clock.After(d.cfg.SettleDelay):
	}
	return nil
}

// MeasurementStatus polls the instrument's measurement state once.
func (d *Device) MeasurementStatus(ctx context.Context) (Status, error) {
	res, status, err := d.sdk.PollingMeasurement(ctx, d.port())
	if err != nil {
		return StatusUnknown, errors.Wrap(err, "polling measurement")
	}
	if err := res.Err("PollingMeasurement"); err != nil {
		return StatusUnknown, err
	}
	return statusFromVendor(status), nil
}

// WaitForIdle polls at the configured interval until the instrument
// leaves the measuring state. The wait ends early when ctx is done or,
// with a nonzero MeasureTimeout, when the timeout elapses; a timeout
// surfaces as a measurement error.
func (d *Device) WaitForIdle(ctx context.Context) error {
	var deadline time.Time
	if d.cfg.MeasureTimeout > 0 {
		deadline = d.clock.Now().Add(d.cfg.MeasureTimeout)
	}
	for {
		status, err := d.MeasurementStatus(ctx)
		if err != nil {
			return err
		}
		if status != StatusMeasuring {
			return nil
		}
		if !deadline.IsZero() && !d.clock.Now().Before(deadline) {
			return misdk.NewError("WaitForIdle", misdk.ErMeasurementFailed,
				"instrument did not leave the measuring state within %s", d.cfg.MeasureTimeout)
		}
		if !goutils.SelectContextOrWait(ctx, d.cfg.PollInterval) {
			return ctx.Err()
		}
	}
}

// CancelMeasurement cancels an in-progress measurement.
func (d *Device) CancelMeasurement(ctx context.Context) error {
	res, err := d.sdk.CancelMeasurement(ctx, d.port())
	if err != nil {
		return errors.Wrap(err, "cancel measurement")
	}
	return res.Err("CancelMeasurement")
}

// ReadDisplayValue reads the values currently shown on the instrument.
// The channel set depends on the active color mode. This is the most
// reliable read path on these instruments.
func (d *Device) ReadDisplayValue(ctx context.Context) (map[string]float64, error) {
	res, values, err := d.sdk.ReadDisplayValue(ctx, d.port())
	if err != nil {
		return nil, errors.Wrap(err, "read display value")
	}
	if err := res.Err("ReadDisplayValue"); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadLatestData reads the last measurement in the given color mode's
// space.
func (d *Device) ReadLatestData(ctx context.Context, mode ColorMode) (map[string]float64, error) {
	space, ok := colorSpaceToVendor[mode]
	if !ok {
		return nil, misdk.NewError("ReadLatestData", misdk.ErInvalidParameter,
			"color mode %q is not one of %v", mode, colorModeKeys())
	}
	res, values, err := d.sdk.ReadLatestData(ctx, space, d.port())
	if err != nil {
		return nil, errors.Wrap(err, "read latest data")
	}
	if err := res.Err("ReadLatestData"); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadLatestXYZ reads the last measurement as raw XYZ tristimulus
// values.
func (d *Device) ReadLatestXYZ(ctx context.Context) (map[string]float64, error) {
	return d.ReadLatestData(ctx, ColorModeXYZ)
}

// Luminance reads the displayed luminance in the instrument's luminance
// unit, taken from channel "Lv" or, for XYZ display modes, "Y". A
// display without either channel is a data error.
func (d *Device) Luminance(ctx context.Context) (float64, error) {
	values, err := d.ReadDisplayValue(ctx)
	if err != nil {
		return 0, err
	}
	if lv, ok := values["Lv"]; ok {
		return lv, nil
	}
	if y, ok := values["Y"]; ok {
		return y, nil
	}
	return 0, misdk.NewError("Luminance", misdk.ErNoData,
		"no luminance channel in display value %v", values)
}

// Color reads all displayed color values from the last measurement.
func (d *Device) Color(ctx context.Context) (map[string]float64, error) {
	return d.ReadDisplayValue(ctx)
}
