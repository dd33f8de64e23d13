package konica

import (
	"context"

	"github.com/pkg/errors"

	"github.com/MichaelHengge/konica-lscs/misdk"
)

// DeleteAll addresses every record of a store in delete operations, an
// observed vendor convention.
const DeleteAll = -1

// NumberOfSamples reports how many measurements the instrument's sample
// store holds.
func (d *Device) NumberOfSamples(ctx context.Context) (int, error) {
	res, count, err := d.sdk.NumberOfSamples(ctx, d.port())
	if err != nil {
		return 0, errors.Wrap(err, "number of samples")
	}
	if err := res.Err("GetNumberOfSampleData"); err != nil {
		return 0, err
	}
	return count, nil
}

// ReadSampleData reads stored sample number. Sample numbers are 1-based;
// anything below 1 is rejected before the vendor call. The read is
// attempted as XYZ first and retried as Lvxy when the instrument reports
// no data, since LS models store luminance-only records.
func (d *Device) ReadSampleData(ctx context.Context, number int) (map[string]float64, error) {
	if number < 1 {
		return nil, misdk.NewError("ReadSampleData", misdk.ErNoData,
			"sample numbers are 1-based, got %d", number)
	}
	res, values, err := d.sdk.ReadSampleData(ctx, number, misdk.SpaceXYZ, d.port())
	if err != nil {
		return nil, errors.Wrap(err, "read sample data")
	}
	if res.Code == misdk.ErNoData {
		res, values, err = d.sdk.ReadSampleData(ctx, number, misdk.SpaceLvxy, d.port())
		if err != nil {
			return nil, errors.Wrap(err, "read sample data")
		}
	}
	if err := res.Err("ReadSampleData"); err != nil {
		return nil, err
	}
	return values, nil
}

// DeleteSampleData deletes stored sample number, or every sample when
// number is DeleteAll. Deleting all requires no prior count check.
func (d *Device) DeleteSampleData(ctx context.Context, number int) error {
	if number != DeleteAll && number < 1 {
		return misdk.NewError("DeleteSampleData", misdk.ErNoData,
			"sample numbers are 1-based (or -1 for all), got %d", number)
	}
	res, err := d.sdk.DeleteSampleData(ctx, number, d.port())
	if err != nil {
		return errors.Wrap(err, "delete sample data")
	}
	return res.Err("DeleteSampleData")
}

// SetTargetChannel selects the target channel used by the instrument.
// The channel must already hold a saved target value.
func (d *Device) SetTargetChannel(ctx context.Context, channel int) error {
	res, err := d.sdk.SetTargetChannel(ctx, channel, d.port())
	if err != nil {
		return errors.Wrap(err, "set target channel")
	}
	return res.Err("SetTargetCh")
}

// TargetChannel reports the currently selected target channel.
func (d *Device) TargetChannel(ctx context.Context) (int, error) {
	res, channel, err := d.sdk.TargetChannel(ctx, d.port())
	if err != nil {
		return 0, errors.Wrap(err, "target channel")
	}
	if err := res.Err("GetTargetCh"); err != nil {
		return 0, err
	}
	return channel, nil
}

// ReadTargetData reads the target stored in channel, in the given color
// mode's space.
func (d *Device) ReadTargetData(ctx context.Context, channel int, mode ColorMode) (map[string]float64, error) {
	space, ok := colorSpaceToVendor[mode]
	if !ok {
		return nil, misdk.NewError("ReadTargetData", misdk.ErInvalidParameter,
			"color mode %q is not one of %v", mode, colorModeKeys())
	}
	res, values, err := d.sdk.ReadTargetData(ctx, channel, space, d.port())
	if err != nil {
		return nil, errors.Wrap(err, "read target data")
	}
	if err := res.Err("ReadTargetData"); err != nil {
		return nil, err
	}
	return values, nil
}

// TargetValues is a target point to store: Lv/x/y plus an optional ID
// (12 characters at most, enforced by the instrument).
type TargetValues struct {
	Lv float64
	X  float64
	Y  float64
	ID string
}

// WriteTargetData stores a target value in channel.
func (d *Device) WriteTargetData(ctx context.Context, channel int, target TargetValues) error {
	data := misdk.TargetData{
		Unit:   misdk.UnitCdm2,
		Values: misdk.ColorValues{"Lv": target.Lv, "x": target.X, "y": target.Y},
		ID:     target.ID,
	}
	res, err := d.sdk.WriteTargetData(ctx, channel, data, d.port())
	if err != nil {
		return errors.Wrap(err, "write target data")
	}
	return res.Err("WriteTargetData")
}

// DeleteTargetData deletes the target in channel, or every target when
// channel is DeleteAll.
func (d *Device) DeleteTargetData(ctx context.Context, channel int) error {
	res, err := d.sdk.DeleteTargetData(ctx, channel, d.port())
	if err != nil {
		return errors.Wrap(err, "delete target data")
	}
	return res.Err("DeleteTargetData")
}

// SetCalibrationChannel selects the user calibration channel applied to
// measurements; channel 0 applies no user calibration.
func (d *Device) SetCalibrationChannel(ctx context.Context, channel int) error {
	res, err := d.sdk.SetCalibrationChannel(ctx, channel, d.port())
	if err != nil {
		return errors.Wrap(err, "set calibration channel")
	}
	return res.Err("SetCalibrationCh")
}

// CalibrationChannel reports the active user calibration channel.
func (d *Device) CalibrationChannel(ctx context.Context) (int, error) {
	res, channel, err := d.sdk.CalibrationChannel(ctx, d.port())
	if err != nil {
		return 0, errors.Wrap(err, "calibration channel")
	}
	if err := res.Err("GetCalibrationCh"); err != nil {
		return 0, err
	}
	return channel, nil
}

// SetMatrixCalibration stores user calibration coefficients on the
// instrument. measured and truth must be the same length, matching the
// point count of the calibration type (1 for onepoint, 3 for rgb, 4 for
// wrgb).
func (d *Device) SetMatrixCalibration(
	ctx context.Context,
	channel int,
	measured, truth []TargetValues,
	calibType CalibrationType,
	id string,
) error {
	vendorType, ok := calibTypeToVendor[calibType]
	if !ok {
		return misdk.NewError("SetMatrixCalib", misdk.ErInvalidParameter,
			"calibration type %q is not one of [onepoint rgb wrgb]", calibType)
	}
	if len(measured) != len(truth) {
		return misdk.NewError("SetMatrixCalib", misdk.ErInvalidParameter,
			"measured and true value counts differ: %d vs %d", len(measured), len(truth))
	}
	res, err := d.sdk.SetMatrixCalibration(ctx, channel,
		toTargetData(measured), toTargetData(truth), vendorType, id, d.port())
	if err != nil {
		return errors.Wrap(err, "set matrix calibration")
	}
	return res.Err("SetMatrixCalib")
}

// CalibrationData reads the parameters stored in a user calibration
// channel.
func (d *Device) CalibrationData(ctx context.Context, channel int) (misdk.CalibrationData, error) {
	res, data, err := d.sdk.CalibrationData(ctx, channel, d.port())
	if err != nil {
		return misdk.CalibrationData{}, errors.Wrap(err, "calibration data")
	}
	if err := res.Err("GetCalibData"); err != nil {
		return misdk.CalibrationData{}, err
	}
	return data, nil
}

// DeleteCalibrationData deletes a user calibration channel, or all of
// them when channel is DeleteAll.
func (d *Device) DeleteCalibrationData(ctx context.Context, channel int) error {
	res, err := d.sdk.DeleteCalibrationData(ctx, channel, d.port())
	if err != nil {
		return errors.Wrap(err, "delete calibration data")
	}
	return res.Err("DeleteCalibData")
}

func toTargetData(targets []TargetValues) []misdk.TargetData {
	out := make([]misdk.TargetData, 0, len(targets))
	for _, t := range targets {
		out = append(out, misdk.TargetData{
			Unit:   misdk.UnitCdm2,
			Values: misdk.ColorValues{"Lv": t.Lv, "x": t.X, "y": t.Y},
			ID:     t.ID,
		})
	}
	return out
}
