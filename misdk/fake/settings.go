package fake

import (
	"context"
	"time"

	"github.com/MichaelHengge/konica-lscs/misdk"
)

// Settings round-trip through plain fields under mu. Each setter mirrors
// the connection and injection gating of the vendor layer.

func (s *SDK) setting(method string) (misdk.Result, bool) {
	if res, ok := s.takeInjected(method); ok {
		return res, false
	}
	if res, ok := s.requireConnection(); !ok {
		return res, false
	}
	return misdk.Success(), true
}

// SetMeasurementTime sets the integration time mode.
func (s *SDK) SetMeasurementTime(ctx context.Context, mt misdk.MeasurementTime, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetMeasurementTime")
	if ok {
		s.measTime = mt
	}
	return res, nil
}

// MeasurementTime reports the integration time mode.
func (s *SDK) MeasurementTime(ctx context.Context, comPort int) (misdk.Result, misdk.MeasurementTime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("MeasurementTime")
	return res, s.measTime, nil
}

// SetSyncMode sets measurement synchronization.
func (s *SDK) SetSyncMode(ctx context.Context, mf misdk.MeasurementFrequency, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetSyncMode")
	if ok {
		s.syncMode = mf
	}
	return res, nil
}

// SyncMode reports measurement synchronization.
func (s *SDK) SyncMode(ctx context.Context, comPort int) (misdk.Result, misdk.MeasurementFrequency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("SyncMode")
	return res, s.syncMode, nil
}

// SetPeakValley sets peak/valley hold.
func (s *SDK) SetPeakValley(ctx context.Context, pv misdk.PeakValley, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetPeakValley")
	if ok {
		s.peakValley = pv
	}
	return res, nil
}

// PeakValley reports peak/valley hold.
func (s *SDK) PeakValley(ctx context.Context, comPort int) (misdk.Result, misdk.PeakValley, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("PeakValley")
	return res, s.peakValley, nil
}

// SetCloseUpLens sets the mounted close-up lens.
func (s *SDK) SetCloseUpLens(ctx context.Context, lens misdk.CloseUpLensType, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetCloseUpLens")
	if ok {
		s.lens = lens
	}
	return res, nil
}

// CloseUpLens reports the mounted close-up lens.
func (s *SDK) CloseUpLens(ctx context.Context, comPort int) (misdk.Result, misdk.CloseUpLensType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("CloseUpLens")
	return res, s.lens, nil
}

// SetCCF sets the color correction factor.
func (s *SDK) SetCCF(ctx context.Context, ccf misdk.CCF, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetCCF")
	if ok {
		s.ccf = ccf
	}
	return res, nil
}

// CCF reports the color correction factor.
func (s *SDK) CCF(ctx context.Context, comPort int) (misdk.Result, misdk.CCF, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("CCF")
	return res, s.ccf, nil
}

// SetLuminanceUnit sets the luminance unit.
func (s *SDK) SetLuminanceUnit(ctx context.Context, unit misdk.LuminanceUnit, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetLuminanceUnit")
	if ok {
		s.lumUnit = unit
	}
	return res, nil
}

// LuminanceUnit reports the luminance unit.
func (s *SDK) LuminanceUnit(ctx context.Context, comPort int) (misdk.Result, misdk.LuminanceUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("LuminanceUnit")
	return res, s.lumUnit, nil
}

// SetAutoPowerOff sets auto power off.
func (s *SDK) SetAutoPowerOff(ctx context.Context, mode misdk.AutoPowerOff, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetAutoPowerOff")
	if ok {
		s.autoPower = mode
	}
	return res, nil
}

// AutoPowerOff reports auto power off.
func (s *SDK) AutoPowerOff(ctx context.Context, comPort int) (misdk.Result, misdk.AutoPowerOff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("AutoPowerOff")
	return res, s.autoPower, nil
}

// SetBackLight turns the backlight on or off.
func (s *SDK) SetBackLight(ctx context.Context, mode misdk.BackLightMode, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetBackLight")
	if ok {
		s.backLight = mode
	}
	return res, nil
}

// BackLight reports the backlight state.
func (s *SDK) BackLight(ctx context.Context, comPort int) (misdk.Result, misdk.BackLightMode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("BackLight")
	return res, s.backLight, nil
}

// SetBackLightLevel sets backlight brightness.
func (s *SDK) SetBackLightLevel(ctx context.Context, level misdk.BackLightLevel, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetBackLightLevel")
	if ok {
		s.backLevel = level
	}
	return res, nil
}

// BackLightLevel reports backlight brightness.
func (s *SDK) BackLightLevel(ctx context.Context, comPort int) (misdk.Result, misdk.BackLightLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("BackLightLevel")
	return res, s.backLevel, nil
}

// SetColorDispDigit sets display precision (3 or 4 digits).
func (s *SDK) SetColorDispDigit(ctx context.Context, digits, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetColorDispDigit")
	if !ok {
		return res, nil
	}
	if digits != 3 && digits != 4 {
		return misdk.Result{Code: misdk.ErInvalidParameter}, nil
	}
	s.dispDigits = digits
	return res, nil
}

// ColorDispDigit reports display precision.
func (s *SDK) ColorDispDigit(ctx context.Context, comPort int) (misdk.Result, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("ColorDispDigit")
	return res, s.dispDigits, nil
}

// SetDisplayType sets absolute/difference/ratio display.
func (s *SDK) SetDisplayType(ctx context.Context, dt misdk.DispType, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetDisplayType")
	if ok {
		s.dispType = dt
	}
	return res, nil
}

// DisplayType reports the display type.
func (s *SDK) DisplayType(ctx context.Context, comPort int) (misdk.Result, misdk.DispType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("DisplayType")
	return res, s.dispType, nil
}

// SetDisplayLanguage sets the display language.
func (s *SDK) SetDisplayLanguage(ctx context.Context, lang misdk.DisplayLanguage, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetDisplayLanguage")
	if ok {
		s.language = lang
	}
	return res, nil
}

// DisplayLanguage reports the display language.
func (s *SDK) DisplayLanguage(ctx context.Context, comPort int) (misdk.Result, misdk.DisplayLanguage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("DisplayLanguage")
	return res, s.language, nil
}

// SetDateTime sets the instrument clock.
func (s *SDK) SetDateTime(ctx context.Context, t time.Time, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetDateTime")
	if ok {
		s.clockOffset = t.Sub(s.clock.Now())
	}
	return res, nil
}

// DateTime reports the instrument clock.
func (s *SDK) DateTime(ctx context.Context, comPort int) (misdk.Result, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("DateTime")
	return res, s.clock.Now().Add(s.clockOffset).Truncate(time.Second), nil
}

// SetDateFormat sets the date display format.
func (s *SDK) SetDateFormat(ctx context.Context, df misdk.DateFormat, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetDateFormat")
	if ok {
		s.dateFormat = df
	}
	return res, nil
}

// DateFormat reports the date display format.
func (s *SDK) DateFormat(ctx context.Context, comPort int) (misdk.Result, misdk.DateFormat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("DateFormat")
	return res, s.dateFormat, nil
}

// SetColorMode sets the displayed color space.
func (s *SDK) SetColorMode(ctx context.Context, mode misdk.ColorMode, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetColorMode")
	if ok {
		s.colorMode = mode
	}
	return res, nil
}

// ColorMode reports the displayed color space.
func (s *SDK) ColorMode(ctx context.Context, comPort int) (misdk.Result, misdk.ColorMode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("ColorMode")
	return res, s.colorMode, nil
}

// SetColorModeDisplay makes a color mode selectable on the instrument.
func (s *SDK) SetColorModeDisplay(ctx context.Context, mode misdk.ColorMode, disp misdk.ColorModeDisplay, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetColorModeDisplay")
	if ok {
		s.modeDisplay[mode] = disp
	}
	return res, nil
}

// ColorModeDisplay reports whether a color mode is selectable.
func (s *SDK) ColorModeDisplay(ctx context.Context, mode misdk.ColorMode, comPort int) (misdk.Result, misdk.ColorModeDisplay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("ColorModeDisplay")
	return res, s.modeDisplay[mode], nil
}

// SetDataSaveMode sets automatic or manual sample saving.
func (s *SDK) SetDataSaveMode(ctx context.Context, mode misdk.DataSaveMode, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetDataSaveMode")
	if ok {
		s.saveMode = mode
	}
	return res, nil
}

// DataSaveMode reports the sample saving mode.
func (s *SDK) DataSaveMode(ctx context.Context, comPort int) (misdk.Result, misdk.DataSaveMode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("DataSaveMode")
	return res, s.saveMode, nil
}

// SetPeriodicCalibNotify turns the periodic calibration alert on or off.
func (s *SDK) SetPeriodicCalibNotify(ctx context.Context, mode misdk.PeriodicCalibNotify, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetPeriodicCalibNotify")
	if ok {
		s.calibNotify = mode
	}
	return res, nil
}

// PeriodicCalibNotify reports the periodic calibration alert setting.
func (s *SDK) PeriodicCalibNotify(ctx context.Context, comPort int) (misdk.Result, misdk.PeriodicCalibNotify, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("PeriodicCalibNotify")
	return res, s.calibNotify, nil
}

// SetToggle sets the measurement button toggle behavior.
func (s *SDK) SetToggle(ctx context.Context, status misdk.ToggleStatus, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetToggle")
	if ok {
		s.toggle = status
	}
	return res, nil
}

// Toggle reports the measurement button toggle behavior.
func (s *SDK) Toggle(ctx context.Context, comPort int) (misdk.Result, misdk.ToggleStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("Toggle")
	return res, s.toggle, nil
}

// SetTrigger enables or disables the measurement button.
func (s *SDK) SetTrigger(ctx context.Context, status misdk.TriggerStatus, comPort int) (misdk.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.setting("SetTrigger")
	if ok {
		s.trigger = status
	}
	return res, nil
}

// Trigger reports whether the measurement button is enabled.
func (s *SDK) Trigger(ctx context.Context, comPort int) (misdk.Result, misdk.TriggerStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, _ := s.setting("Trigger")
	return res, s.trigger, nil
}
