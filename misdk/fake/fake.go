// Package fake implements an in-memory instrument behind the vendor call
// surface. It backs package tests and the CLI demo mode: settings round
// trip through a store seeded with factory defaults, measurements take a
// configurable amount of (steppable) clock time, and errors can be
// injected per method to exercise failure paths.
package fake

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/MichaelHengge/konica-lscs/misdk"
)

var _ misdk.SDK = (*SDK)(nil)

// SDK is a fake instrument. The zero value is not usable; call New.
type SDK struct {
	mu sync.Mutex

	clock       clock.Clock
	measureTime time.Duration

	connected      bool
	measuringUntil time.Time
	measured       bool

	// lvOnly mimics LS models, whose sample store has no XYZ records.
	lvOnly  bool
	display misdk.ColorValues
	samples []misdk.ColorValues

	targetChannel int
	targets       map[int]misdk.TargetData
	calibChannel  int
	calibrations  map[int]misdk.CalibrationData

	measTime    misdk.MeasurementTime
	syncMode    misdk.MeasurementFrequency
	peakValley  misdk.PeakValley
	lens        misdk.CloseUpLensType
	ccf         misdk.CCF
	lumUnit     misdk.LuminanceUnit
	autoPower   misdk.AutoPowerOff
	backLight   misdk.BackLightMode
	backLevel   misdk.BackLightLevel
	dispDigits  int
	dispType    misdk.DispType
	language    misdk.DisplayLanguage
	clockOffset time.Duration
	dateFormat  misdk.DateFormat
	colorMode   misdk.ColorMode
	modeDisplay map[misdk.ColorMode]misdk.ColorModeDisplay
	saveMode    misdk.DataSaveMode
	calibNotify misdk.PeriodicCalibNotify
	toggle      misdk.ToggleStatus
	trigger     misdk.TriggerStatus

	info misdk.DeviceInfo

	injected map[string]misdk.ReturnCode
}

// New returns a fake CS-150 with factory defaults and a real clock.
func New() *SDK {
	return &SDK{
		clock:       clock.New(),
		measureTime: 50 * time.Millisecond,
		display:     misdk.ColorValues{"Lv": 120.5, "x": 0.3127, "y": 0.3290},
		backLevel:   misdk.BackLightLevel3,
		backLight:   misdk.BackLightOn,
		dispDigits:  4,
		modeDisplay: map[misdk.ColorMode]misdk.ColorModeDisplay{
			misdk.ColorLvxy: misdk.ColorModeDisplayOn,
		},
		measTime: misdk.MeasurementTime{Mode: misdk.MeasTimeAuto},
		syncMode: misdk.MeasurementFrequency{SyncMode: misdk.SyncOff, Frequency: 60},
		targets:  map[int]misdk.TargetData{},
		calibrations: map[int]misdk.CalibrationData{
			// Channel 0 is the factory calibration and always present.
			0: {ID: "FACTORY", Type: misdk.CalibOnePoint, Coef: []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}},
		},
		info: misdk.DeviceInfo{
			ProductName:           "CS-150",
			SerialNumber:          "10001234",
			FirmwareMajor:         "1",
			FirmwareMinor:         "20",
			FirmwareFree:          "0000",
			CalibrationExpiration: "2027/03/01",
		},
		injected: map[string]misdk.ReturnCode{},
	}
}

// SetClock replaces the clock, letting tests step through measurement
// time. Call before Measure.
func (s *SDK) SetClock(c clock.Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = c
}

// SetMeasureDuration sets how long a measurement stays in the measuring
// state.
func (s *SDK) SetMeasureDuration(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.measureTime = d
}

// SetDisplay sets the next values ReadDisplayValue reports.
func (s *SDK) SetDisplay(values misdk.ColorValues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = values
	s.measured = true
}

// SetLuminanceOnly switches the fake to an LS model: the sample store
// holds no XYZ records, so XYZ sample reads report no data.
func (s *SDK) SetLuminanceOnly(lvOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lvOnly = lvOnly
	if lvOnly {
		s.info.ProductName = "LS-150"
	}
}

// SetDeviceInfo replaces the reported instrument identity.
func (s *SDK) SetDeviceInfo(info misdk.DeviceInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
}

// AddSample appends a record to the sample store.
func (s *SDK) AddSample(values misdk.ColorValues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, values)
}

// InjectError makes the next call to the named method (e.g. "Measure")
// return the given vendor code.
func (s *SDK) InjectError(method string, code misdk.ReturnCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.injected[method] = code
}

// takeInjected pops an injected failure for method, if any. Callers hold mu.
func (s *SDK) takeInjected(method string) (misdk.Result, bool) {
	code, ok := s.injected[method]
	if !ok {
		return misdk.Result{}, false
	}
	delete(s.injected, method)
	return misdk.Result{Code: code}, true
}

// requireConnection reports ErNoConnect for calls made without an open
// session. Callers hold mu.
func (s *SDK) requireConnection() (misdk.Result, bool) {
	if !s.connected {
		return misdk.Result{Code: misdk.ErNoConnect}, false
	}
	return misdk.Success(), true
}

// Connect opens the session.
func (s *SDK) Connect(ctx context.Context, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("Connect"); ok {
		return res, nil
	}
	s.connected = true
	return misdk.Success(), nil
}

// Disconnect closes the session. The trigger is disabled on disconnect,
// matching instrument behavior.
func (s *SDK) Disconnect(ctx context.Context, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("Disconnect"); ok {
		return res, nil
	}
	s.connected = false
	s.trigger = misdk.TriggerOff
	return misdk.Success(), nil
}

// Connected reports whether a session is open.
func (s *SDK) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// DeviceList reports the fake as the only attached instrument.
func (s *SDK) DeviceList(ctx context.Context) (misdk.Result, map[int]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("DeviceList"); ok {
		return res, nil, nil
	}
	return misdk.Success(), map[int]string{1: s.info.ProductName + "(" + s.info.SerialNumber + ")"}, nil
}

// Measure starts a measurement lasting the configured duration.
func (s *SDK) Measure(ctx context.Context, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("Measure"); ok {
		return res, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil
	}
	s.measuringUntil = s.clock.Now().Add(s.measureTime)
	s.measured = true
	if s.saveMode == misdk.SaveAuto {
		s.samples = append(s.samples, cloneValues(s.display))
	}
	return misdk.Success(), nil
}

// PollingMeasurement reports the current measurement state.
func (s *SDK) PollingMeasurement(ctx context.Context, comPort int) (misdk.Result, misdk.MeasStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("PollingMeasurement"); ok {
		return res, misdk.StatusIdling, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, misdk.StatusIdling, nil
	}
	if s.clock.Now().Before(s.measuringUntil) {
		return misdk.Success(), misdk.StatusMeasuring, nil
	}
	return misdk.Success(), misdk.StatusIdling, nil
}

// CancelMeasurement stops an in-progress measurement.
func (s *SDK) CancelMeasurement(ctx context.Context, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("CancelMeasurement"); ok {
		return res, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil
	}
	s.measuringUntil = time.Time{}
	return misdk.Success(), nil
}

// ReadLatestData reads the last measurement in the requested color space.
func (s *SDK) ReadLatestData(ctx context.Context, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("ReadLatestData"); ok {
		return res, nil, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil, nil
	}
	if !s.measured {
		return misdk.Result{Code: misdk.ErNoData}, nil, nil
	}
	return misdk.Success(), convertSpace(s.display, space), nil
}

// ReadDisplayValue reads the values currently shown on the instrument.
func (s *SDK) ReadDisplayValue(ctx context.Context, comPort int) (misdk.Result, misdk.ColorValues, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("ReadDisplayValue"); ok {
		return res, nil, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil, nil
	}
	if !s.measured {
		return misdk.Result{Code: misdk.ErNoData}, nil, nil
	}
	return misdk.Success(), cloneValues(s.display), nil
}

// NumberOfSamples reports the sample store length.
func (s *SDK) NumberOfSamples(ctx context.Context, comPort int) (misdk.Result, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("NumberOfSamples"); ok {
		return res, 0, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, 0, nil
	}
	return misdk.Success(), len(s.samples), nil
}

// ReadSampleData reads stored sample number (1-based) in the requested
// color space.
func (s *SDK) ReadSampleData(ctx context.Context, number int, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("ReadSampleData"); ok {
		return res, nil, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil, nil
	}
	if number < 1 || number > len(s.samples) {
		return misdk.Result{Code: misdk.ErNoData}, nil, nil
	}
	if s.lvOnly && space == misdk.SpaceXYZ {
		return misdk.Result{Code: misdk.ErNoData}, nil, nil
	}
	return misdk.Success(), convertSpace(s.samples[number-1], space), nil
}

// DeleteSampleData deletes sample number, or all samples when number is -1.
func (s *SDK) DeleteSampleData(ctx context.Context, number, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("DeleteSampleData"); ok {
		return res, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil
	}
	if number == -1 {
		s.samples = nil
		return misdk.Success(), nil
	}
	if number < 1 || number > len(s.samples) {
		return misdk.Result{Code: misdk.ErNoData}, nil
	}
	s.samples = append(s.samples[:number-1], s.samples[number:]...)
	return misdk.Success(), nil
}

// SetTargetChannel selects the active target channel. The channel must
// already hold target data.
func (s *SDK) SetTargetChannel(ctx context.Context, channel, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("SetTargetChannel"); ok {
		return res, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil
	}
	if _, ok := s.targets[channel]; !ok {
		return misdk.Result{Code: misdk.ErNoData}, nil
	}
	s.targetChannel = channel
	return misdk.Success(), nil
}

// TargetChannel reports the active target channel.
func (s *SDK) TargetChannel(ctx context.Context, comPort int) (misdk.Result, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("TargetChannel"); ok {
		return res, 0, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, 0, nil
	}
	return misdk.Success(), s.targetChannel, nil
}

// ReadTargetData reads the target stored in channel.
func (s *SDK) ReadTargetData(ctx context.Context, channel int, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("ReadTargetData"); ok {
		return res, nil, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil, nil
	}
	target, ok := s.targets[channel]
	if !ok {
		return misdk.Result{Code: misdk.ErNoData}, nil, nil
	}
	return misdk.Success(), convertSpace(target.Values, space), nil
}

// WriteTargetData stores target data in channel.
func (s *SDK) WriteTargetData(ctx context.Context, channel int, data misdk.TargetData, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("WriteTargetData"); ok {
		return res, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil
	}
	if channel < 1 {
		return misdk.Result{Code: misdk.ErInvalidParameter}, nil
	}
	s.targets[channel] = data
	return misdk.Success(), nil
}

// DeleteTargetData deletes the target in channel, or all targets when
// channel is -1.
func (s *SDK) DeleteTargetData(ctx context.Context, channel, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("DeleteTargetData"); ok {
		return res, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil
	}
	if channel == -1 {
		s.targets = map[int]misdk.TargetData{}
		return misdk.Success(), nil
	}
	if _, ok := s.targets[channel]; !ok {
		return misdk.Result{Code: misdk.ErNoData}, nil
	}
	delete(s.targets, channel)
	return misdk.Success(), nil
}

// SetCalibrationChannel selects the user calibration channel; 0 applies
// no user calibration.
func (s *SDK) SetCalibrationChannel(ctx context.Context, channel, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("SetCalibrationChannel"); ok {
		return res, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil
	}
	if _, ok := s.calibrations[channel]; !ok {
		return misdk.Result{Code: misdk.ErNoData}, nil
	}
	s.calibChannel = channel
	return misdk.Success(), nil
}

// CalibrationChannel reports the active user calibration channel.
func (s *SDK) CalibrationChannel(ctx context.Context, comPort int) (misdk.Result, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("CalibrationChannel"); ok {
		return res, 0, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, 0, nil
	}
	return misdk.Success(), s.calibChannel, nil
}

// SetMatrixCalibration stores a user calibration matrix.
func (s *SDK) SetMatrixCalibration(
	ctx context.Context,
	channel int,
	measured, truth []misdk.TargetData,
	calibType misdk.CalibType,
	id string,
	comPort int,
) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("SetMatrixCalibration"); ok {
		return res, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil
	}
	if channel < 1 || len(measured) == 0 || len(measured) != len(truth) {
		return misdk.Result{Code: misdk.ErInvalidParameter}, nil
	}
	s.calibrations[channel] = misdk.CalibrationData{
		Measured: measured,
		True:     truth,
		ID:       id,
		Date:     s.clock.Now(),
		Type:     calibType,
		Coef:     []float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
	}
	return misdk.Success(), nil
}

// CalibrationData reads the parameters of a user calibration channel.
func (s *SDK) CalibrationData(ctx context.Context, channel, comPort int) (misdk.Result, misdk.CalibrationData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("CalibrationData"); ok {
		return res, misdk.CalibrationData{}, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, misdk.CalibrationData{}, nil
	}
	data, ok := s.calibrations[channel]
	if !ok {
		return misdk.Result{Code: misdk.ErNoData}, misdk.CalibrationData{}, nil
	}
	return misdk.Success(), data, nil
}

// DeleteCalibrationData deletes a user calibration channel, or all of
// them when channel is -1. Channel 0 (factory) survives.
func (s *SDK) DeleteCalibrationData(ctx context.Context, channel, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("DeleteCalibrationData"); ok {
		return res, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, nil
	}
	if channel == -1 {
		for ch := range s.calibrations {
			if ch != 0 {
				delete(s.calibrations, ch)
			}
		}
		if s.calibChannel != 0 {
			s.calibChannel = 0
		}
		return misdk.Success(), nil
	}
	if channel == 0 {
		return misdk.Result{Code: misdk.ErInvalidParameter}, nil
	}
	if _, ok := s.calibrations[channel]; !ok {
		return misdk.Result{Code: misdk.ErNoData}, nil
	}
	delete(s.calibrations, channel)
	if s.calibChannel == channel {
		s.calibChannel = 0
	}
	return misdk.Success(), nil
}

// DeviceInfo reports the instrument identity snapshot.
func (s *SDK) DeviceInfo(ctx context.Context, comPort int) (misdk.Result, misdk.DeviceInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("DeviceInfo"); ok {
		return res, misdk.DeviceInfo{}, nil
	}
	if res, ok := s.requireConnection(); !ok {
		return res, misdk.DeviceInfo{}, nil
	}
	return misdk.Success(), s.info, nil
}

// SDKVersion reports the fake vendor library version.
func (s *SDK) SDKVersion(ctx context.Context) (misdk.Result, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeInjected("SDKVersion"); ok {
		return res, "", nil
	}
	return misdk.Success(), "1.2.0.0 (fake)", nil
}

func cloneValues(v misdk.ColorValues) misdk.ColorValues {
	out := make(misdk.ColorValues, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// convertSpace derives the requested record shape from stored values.
// Stored records carry either Lv/x/y or X/Y/Z; the missing triple is
// derived so reads in any space succeed like they do on a CS instrument.
func convertSpace(v misdk.ColorValues, space misdk.ColorSpace) misdk.ColorValues {
	lv, x, y := lvxyOf(v)
	switch space {
	case misdk.SpaceXYZ:
		if hasAll(v, "X", "Y", "Z") {
			return misdk.ColorValues{"X": v["X"], "Y": v["Y"], "Z": v["Z"]}
		}
		if y == 0 {
			return misdk.ColorValues{"X": 0, "Y": lv, "Z": 0}
		}
		return misdk.ColorValues{
			"X": lv * x / y,
			"Y": lv,
			"Z": lv * (1 - x - y) / y,
		}
	case misdk.SpaceLv:
		return misdk.ColorValues{"Lv": lv}
	default:
		return misdk.ColorValues{"Lv": lv, "x": x, "y": y}
	}
}

func lvxyOf(v misdk.ColorValues) (lv, x, y float64) {
	if hasAll(v, "Lv", "x", "y") {
		return v["Lv"], v["x"], v["y"]
	}
	if hasAll(v, "X", "Y", "Z") {
		sum := v["X"] + v["Y"] + v["Z"]
		if sum == 0 {
			return v["Y"], 0, 0
		}
		return v["Y"], v["X"] / sum, v["Y"] / sum
	}
	if lv, ok := v["Lv"]; ok {
		return lv, math.NaN(), math.NaN()
	}
	return 0, 0, 0
}

func hasAll(v misdk.ColorValues, keys ...string) bool {
	for _, k := range keys {
		if _, ok := v[k]; !ok {
			return false
		}
	}
	return true
}
