// Package misdk models the call surface of the Konica Minolta LC-MISDK,
// the vendor library that owns all communication with LS-150/LS-160 and
// CS-150/CS-160 instruments. Nothing in this package talks to hardware;
// it defines the operations, return-code space, and value records that an
// SDK implementation (the interop bridge, or the fake instrument) must
// provide.
package misdk

import (
	"context"
	"time"
)

// SDK is the vendor call surface. Every operation returns a Result
// envelope carrying the vendor return code; a non-nil error means the
// call never reached the vendor layer (transport fault, closed client),
// never a vendor-reported failure.
//
// comPort addresses the instrument by virtual COM port number; 0 selects
// the first connected instrument.
type SDK interface {
	// Connection.
	Connect(ctx context.Context, comPort int) (Result, error)
	Disconnect(ctx context.Context, comPort int) (Result, error)
	DeviceList(ctx context.Context) (Result, map[int]string, error)

	// Measurement.
	Measure(ctx context.Context, comPort int) (Result, error)
	PollingMeasurement(ctx context.Context, comPort int) (Result, MeasStatus, error)
	CancelMeasurement(ctx context.Context, comPort int) (Result, error)
	ReadLatestData(ctx context.Context, space ColorSpace, comPort int) (Result, ColorValues, error)
	ReadDisplayValue(ctx context.Context, comPort int) (Result, ColorValues, error)

	// Stored samples. Sample numbers are 1-based; -1 deletes all.
	NumberOfSamples(ctx context.Context, comPort int) (Result, int, error)
	ReadSampleData(ctx context.Context, number int, space ColorSpace, comPort int) (Result, ColorValues, error)
	DeleteSampleData(ctx context.Context, number, comPort int) (Result, error)

	// Target values.
	SetTargetChannel(ctx context.Context, channel, comPort int) (Result, error)
	TargetChannel(ctx context.Context, comPort int) (Result, int, error)
	ReadTargetData(ctx context.Context, channel int, space ColorSpace, comPort int) (Result, ColorValues, error)
	WriteTargetData(ctx context.Context, channel int, data TargetData, comPort int) (Result, error)
	DeleteTargetData(ctx context.Context, channel, comPort int) (Result, error)

	// User calibration.
	SetCalibrationChannel(ctx context.Context, channel, comPort int) (Result, error)
	CalibrationChannel(ctx context.Context, comPort int) (Result, int, error)
	SetMatrixCalibration(
		ctx context.Context,
		channel int,
		measured, truth []TargetData,
		calibType CalibType,
		id string,
		comPort int,
	) (Result, error)
	CalibrationData(ctx context.Context, channel, comPort int) (Result, CalibrationData, error)
	DeleteCalibrationData(ctx context.Context, channel, comPort int) (Result, error)

	// Measurement settings.
	SetMeasurementTime(ctx context.Context, mt MeasurementTime, comPort int) (Result, error)
	MeasurementTime(ctx context.Context, comPort int) (Result, MeasurementTime, error)
	SetSyncMode(ctx context.Context, mf MeasurementFrequency, comPort int) (Result, error)
	SyncMode(ctx context.Context, comPort int) (Result, MeasurementFrequency, error)
	SetPeakValley(ctx context.Context, pv PeakValley, comPort int) (Result, error)
	PeakValley(ctx context.Context, comPort int) (Result, PeakValley, error)
	SetCloseUpLens(ctx context.Context, lens CloseUpLensType, comPort int) (Result, error)
	CloseUpLens(ctx context.Context, comPort int) (Result, CloseUpLensType, error)
	SetCCF(ctx context.Context, ccf CCF, comPort int) (Result, error)
	CCF(ctx context.Context, comPort int) (Result, CCF, error)
	SetLuminanceUnit(ctx context.Context, unit LuminanceUnit, comPort int) (Result, error)
	LuminanceUnit(ctx context.Context, comPort int) (Result, LuminanceUnit, error)

	// Instrument settings.
	SetAutoPowerOff(ctx context.Context, mode AutoPowerOff, comPort int) (Result, error)
	AutoPowerOff(ctx context.Context, comPort int) (Result, AutoPowerOff, error)
	SetBackLight(ctx context.Context, mode BackLightMode, comPort int) (Result, error)
	BackLight(ctx context.Context, comPort int) (Result, BackLightMode, error)
	SetBackLightLevel(ctx context.Context, level BackLightLevel, comPort int) (Result, error)
	BackLightLevel(ctx context.Context, comPort int) (Result, BackLightLevel, error)
	SetColorDispDigit(ctx context.Context, digits, comPort int) (Result, error)
	ColorDispDigit(ctx context.Context, comPort int) (Result, int, error)
	SetDisplayType(ctx context.Context, dt DispType, comPort int) (Result, error)
	DisplayType(ctx context.Context, comPort int) (Result, DispType, error)
	SetDisplayLanguage(ctx context.Context, lang DisplayLanguage, comPort int) (Result, error)
	DisplayLanguage(ctx context.Context, comPort int) (Result, DisplayLanguage, error)
	SetDateTime(ctx context.Context, t time.Time, comPort int) (Result, error)
	DateTime(ctx context.Context, comPort int) (Result, time.Time, error)
	SetDateFormat(ctx context.Context, df DateFormat, comPort int) (Result, error)
	DateFormat(ctx context.Context, comPort int) (Result, DateFormat, error)
	SetColorMode(ctx context.Context, mode ColorMode, comPort int) (Result, error)
	ColorMode(ctx context.Context, comPort int) (Result, ColorMode, error)
	SetColorModeDisplay(ctx context.Context, mode ColorMode, disp ColorModeDisplay, comPort int) (Result, error)
	ColorModeDisplay(ctx context.Context, mode ColorMode, comPort int) (Result, ColorModeDisplay, error)
	SetDataSaveMode(ctx context.Context, mode DataSaveMode, comPort int) (Result, error)
	DataSaveMode(ctx context.Context, comPort int) (Result, DataSaveMode, error)
	SetPeriodicCalibNotify(ctx context.Context, mode PeriodicCalibNotify, comPort int) (Result, error)
	PeriodicCalibNotify(ctx context.Context, comPort int) (Result, PeriodicCalibNotify, error)
	SetToggle(ctx context.Context, status ToggleStatus, comPort int) (Result, error)
	Toggle(ctx context.Context, comPort int) (Result, ToggleStatus, error)
	SetTrigger(ctx context.Context, status TriggerStatus, comPort int) (Result, error)
	Trigger(ctx context.Context, comPort int) (Result, TriggerStatus, error)

	// Information.
	DeviceInfo(ctx context.Context, comPort int) (Result, DeviceInfo, error)
	SDKVersion(ctx context.Context) (Result, string, error)
}
