package konica

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/MichaelHengge/konica-lscs/misdk"
)

func colorModeKeys() []ColorMode {
	return []ColorMode{ColorModeLvxy, ColorModeLvudvd, ColorModeLvTcpDuv, ColorModeXYZ, ColorModeLvDwPe, ColorModeLv}
}

func invalidArg(op, format string, args ...interface{}) error {
	return misdk.NewError(op, misdk.ErInvalidParameter, format, args...)
}

// SetMeasurementTime sets the integration time mode. manualSeconds is
// the integration time used in manual mode and ignored in auto mode.
func (d *Device) SetMeasurementTime(ctx context.Context, mode TimeMode, manualSeconds float64) error {
	vendorMode, ok := timeModeToVendor[mode]
	if !ok {
		return invalidArg("SetMeasurementTime", "mode %q must be %q or %q", mode, TimeModeAuto, TimeModeManual)
	}
	if mode == TimeModeManual && manualSeconds <= 0 {
		return invalidArg("SetMeasurementTime", "manual measurement time must be positive, got %v", manualSeconds)
	}
	mt := misdk.MeasurementTime{Mode: vendorMode}
	if mode == TimeModeManual {
		mt.ManualSeconds = manualSeconds
	}
	res, err := d.sdk.SetMeasurementTime(ctx, mt, d.port())
	if err != nil {
		return errors.Wrap(err, "set measurement time")
	}
	return res.Err("SetMeasurementTime")
}

// MeasurementTime reports the integration time mode and, for manual
// mode, the integration time in seconds.
func (d *Device) MeasurementTime(ctx context.Context) (TimeMode, float64, error) {
	res, mt, err := d.sdk.MeasurementTime(ctx, d.port())
	if err != nil {
		return TimeModeUnknown, 0, errors.Wrap(err, "measurement time")
	}
	if err := res.Err("GetMeasurementTime"); err != nil {
		return TimeModeUnknown, 0, err
	}
	mode, ok := timeModeFromVendor[mt.Mode]
	if !ok {
		mode = TimeModeUnknown
	}
	return mode, mt.ManualSeconds, nil
}

// SetSyncMode enables or disables synchronized measurement at the given
// display frequency in Hz.
func (d *Device) SetSyncMode(ctx context.Context, sync bool, frequency float64) error {
	if sync && frequency <= 0 {
		return invalidArg("SetSyncMode", "sync frequency must be positive, got %v", frequency)
	}
	mf := misdk.MeasurementFrequency{SyncMode: misdk.SyncOff, Frequency: frequency}
	if sync {
		mf.SyncMode = misdk.SyncOn
	}
	res, err := d.sdk.SetSyncMode(ctx, mf, d.port())
	if err != nil {
		return errors.Wrap(err, "set sync mode")
	}
	return res.Err("SetSyncMode")
}

// SyncMode reports whether synchronized measurement is on and its
// frequency in Hz.
func (d *Device) SyncMode(ctx context.Context) (bool, float64, error) {
	res, mf, err := d.sdk.SyncMode(ctx, d.port())
	if err != nil {
		return false, 0, errors.Wrap(err, "sync mode")
	}
	if err := res.Err("GetSyncMode"); err != nil {
		return false, 0, err
	}
	return mf.SyncMode == misdk.SyncOn, mf.Frequency, nil
}

// SetPeakValley sets peak/valley hold.
func (d *Device) SetPeakValley(ctx context.Context, mode PeakValleyMode) error {
	vendorMode, ok := peakValleyToVendor[mode]
	if !ok {
		return invalidArg("SetPeakValley", "mode %q must be one of [off peak valley]", mode)
	}
	res, err := d.sdk.SetPeakValley(ctx, vendorMode, d.port())
	if err != nil {
		return errors.Wrap(err, "set peak valley")
	}
	return res.Err("SetPeakValley")
}

// PeakValley reports the peak/valley hold mode.
func (d *Device) PeakValley(ctx context.Context) (PeakValleyMode, error) {
	res, pv, err := d.sdk.PeakValley(ctx, d.port())
	if err != nil {
		return PeakValleyUnknown, errors.Wrap(err, "peak valley")
	}
	if err := res.Err("GetPeakValley"); err != nil {
		return PeakValleyUnknown, err
	}
	mode, ok := peakValleyFromVendor[pv]
	if !ok {
		mode = PeakValleyUnknown
	}
	return mode, nil
}

// SetCloseUpLens tells the instrument which close-up lens is mounted so
// it applies the matching correction.
func (d *Device) SetCloseUpLens(ctx context.Context, lens LensType) error {
	vendorLens, ok := lensToVendor[lens]
	if !ok {
		return invalidArg("SetCloseUpLens", "lens type %q must be one of [standard no153 no135 no122 no110]", lens)
	}
	res, err := d.sdk.SetCloseUpLens(ctx, vendorLens, d.port())
	if err != nil {
		return errors.Wrap(err, "set close-up lens")
	}
	return res.Err("SetCloseUpLens")
}

// CloseUpLens reports the configured close-up lens.
func (d *Device) CloseUpLens(ctx context.Context) (LensType, error) {
	res, lens, err := d.sdk.CloseUpLens(ctx, d.port())
	if err != nil {
		return LensUnknown, errors.Wrap(err, "close-up lens")
	}
	if err := res.Err("GetCloseUpLens"); err != nil {
		return LensUnknown, err
	}
	lt, ok := lensFromVendor[lens]
	if !ok {
		lt = LensUnknown
	}
	return lt, nil
}

// SetCCF sets the color correction factor and turns CCF mode on or off.
func (d *Device) SetCCF(ctx context.Context, factor float64, enabled bool) error {
	ccf := misdk.CCF{Coef: factor, Mode: misdk.CCFOff}
	if enabled {
		ccf.Mode = misdk.CCFOn
	}
	res, err := d.sdk.SetCCF(ctx, ccf, d.port())
	if err != nil {
		return errors.Wrap(err, "set ccf")
	}
	return res.Err("SetCCF")
}

// CCF reports the color correction factor and whether CCF mode is on.
func (d *Device) CCF(ctx context.Context) (float64, bool, error) {
	res, ccf, err := d.sdk.CCF(ctx, d.port())
	if err != nil {
		return 0, false, errors.Wrap(err, "ccf")
	}
	if err := res.Err("GetCCF"); err != nil {
		return 0, false, err
	}
	return ccf.Coef, ccf.Mode == misdk.CCFOn, nil
}

// SetLuminanceUnit sets the unit the instrument reports luminance in:
// candelas per square meter or foot-lamberts.
func (d *Device) SetLuminanceUnit(ctx context.Context, unit LuminanceUnit) error {
	vendorUnit, ok := luminanceUnitToVendor[unit]
	if !ok {
		return invalidArg("SetLuminanceUnit", "luminance unit %q must be %q or %q", unit, UnitCdm2, UnitFl)
	}
	res, err := d.sdk.SetLuminanceUnit(ctx, vendorUnit, d.port())
	if err != nil {
		return errors.Wrap(err, "set luminance unit")
	}
	return res.Err("SetLuminanceUnit")
}

// LuminanceUnit reports the unit the instrument reports luminance in.
func (d *Device) LuminanceUnit(ctx context.Context) (LuminanceUnit, error) {
	res, unit, err := d.sdk.LuminanceUnit(ctx, d.port())
	if err != nil {
		return UnitUnknown, errors.Wrap(err, "luminance unit")
	}
	if err := res.Err("GetLuminanceUnit"); err != nil {
		return UnitUnknown, err
	}
	u, ok := luminanceUnitFromVendor[unit]
	if !ok {
		u = UnitUnknown
	}
	return u, nil
}

// SetAutoPowerOff turns the instrument's auto power off on or off.
func (d *Device) SetAutoPowerOff(ctx context.Context, enabled bool) error {
	mode := misdk.AutoPowerOffDisabled
	if enabled {
		mode = misdk.AutoPowerOffEnabled
	}
	res, err := d.sdk.SetAutoPowerOff(ctx, mode, d.port())
	if err != nil {
		return errors.Wrap(err, "set auto power off")
	}
	return res.Err("SetAutoPowerOff")
}

// AutoPowerOff reports whether auto power off is enabled.
func (d *Device) AutoPowerOff(ctx context.Context) (bool, error) {
	res, mode, err := d.sdk.AutoPowerOff(ctx, d.port())
	if err != nil {
		return false, errors.Wrap(err, "auto power off")
	}
	if err := res.Err("GetAutoPowerOff"); err != nil {
		return false, err
	}
	return mode == misdk.AutoPowerOffEnabled, nil
}

// SetBacklight turns the display backlight on or off.
func (d *Device) SetBacklight(ctx context.Context, on bool) error {
	mode := misdk.BackLightOff
	if on {
		mode = misdk.BackLightOn
	}
	res, err := d.sdk.SetBackLight(ctx, mode, d.port())
	if err != nil {
		return errors.Wrap(err, "set backlight")
	}
	return res.Err("SetBackLightOnOff")
}

// Backlight reports whether the display backlight is on.
func (d *Device) Backlight(ctx context.Context) (bool, error) {
	res, mode, err := d.sdk.BackLight(ctx, d.port())
	if err != nil {
		return false, errors.Wrap(err, "backlight")
	}
	if err := res.Err("GetBackLightOnOff"); err != nil {
		return false, err
	}
	return mode == misdk.BackLightOn, nil
}

// SetBacklightLevel sets the display backlight brightness, 1 (darkest)
// through 5 (brightest).
func (d *Device) SetBacklightLevel(ctx context.Context, level int) error {
	vendorLevel, ok := backLightLevelToVendor[level]
	if !ok {
		return invalidArg("SetBackLightLevel", "level must be between 1 and 5, got %d", level)
	}
	res, err := d.sdk.SetBackLightLevel(ctx, vendorLevel, d.port())
	if err != nil {
		return errors.Wrap(err, "set backlight level")
	}
	return res.Err("SetBackLightLevel")
}

// BacklightLevel reports the display backlight brightness (1-5), or 0
// for a level outside the documented set.
func (d *Device) BacklightLevel(ctx context.Context) (int, error) {
	res, level, err := d.sdk.BackLightLevel(ctx, d.port())
	if err != nil {
		return 0, errors.Wrap(err, "backlight level")
	}
	if err := res.Err("GetBackLightLevel"); err != nil {
		return 0, err
	}
	return backLightLevelFromVendor[level], nil
}

// SetColorDisplayDigits sets the display precision to 3 or 4 digits.
func (d *Device) SetColorDisplayDigits(ctx context.Context, digits int) error {
	if digits != 3 && digits != 4 {
		return invalidArg("SetColorDispDigit", "display digits must be 3 or 4, got %d", digits)
	}
	res, err := d.sdk.SetColorDispDigit(ctx, digits, d.port())
	if err != nil {
		return errors.Wrap(err, "set color display digits")
	}
	return res.Err("SetColorDispDigit")
}

// ColorDisplayDigits reports the display precision.
func (d *Device) ColorDisplayDigits(ctx context.Context) (int, error) {
	res, digits, err := d.sdk.ColorDispDigit(ctx, d.port())
	if err != nil {
		return 0, errors.Wrap(err, "color display digits")
	}
	if err := res.Err("GetColorDispDigit"); err != nil {
		return 0, err
	}
	return digits, nil
}

// SetDisplayType selects absolute, difference, or ratio display.
func (d *Device) SetDisplayType(ctx context.Context, dt DisplayType) error {
	vendorType, ok := displayTypeToVendor[dt]
	if !ok {
		return invalidArg("SetDisplayType", "display type %q must be one of [absolute difference ratio]", dt)
	}
	res, err := d.sdk.SetDisplayType(ctx, vendorType, d.port())
	if err != nil {
		return errors.Wrap(err, "set display type")
	}
	return res.Err("SetDisplayType")
}

// DisplayType reports the display type.
func (d *Device) DisplayType(ctx context.Context) (DisplayType, error) {
	res, dt, err := d.sdk.DisplayType(ctx, d.port())
	if err != nil {
		return DisplayUnknown, errors.Wrap(err, "display type")
	}
	if err := res.Err("GetDisplayType"); err != nil {
		return DisplayUnknown, err
	}
	t, ok := displayTypeFromVendor[dt]
	if !ok {
		t = DisplayUnknown
	}
	return t, nil
}

// SetDisplayLanguage sets the instrument display language.
func (d *Device) SetDisplayLanguage(ctx context.Context, lang Language) error {
	vendorLang, ok := languageToVendor[lang]
	if !ok {
		return invalidArg("SetDisplayLanguage", "language %q must be one of [english japanese chinese]", lang)
	}
	res, err := d.sdk.SetDisplayLanguage(ctx, vendorLang, d.port())
	if err != nil {
		return errors.Wrap(err, "set display language")
	}
	return res.Err("SetDisplayLanguage")
}

// DisplayLanguage reports the instrument display language.
func (d *Device) DisplayLanguage(ctx context.Context) (Language, error) {
	res, lang, err := d.sdk.DisplayLanguage(ctx, d.port())
	if err != nil {
		return LanguageUnknown, errors.Wrap(err, "display language")
	}
	if err := res.Err("GetDisplayLanguage"); err != nil {
		return LanguageUnknown, err
	}
	l, ok := languageFromVendor[lang]
	if !ok {
		l = LanguageUnknown
	}
	return l, nil
}

// SetDateTime sets the instrument clock. Sub-second precision is
// dropped; the instrument stores whole seconds.
func (d *Device) SetDateTime(ctx context.Context, t time.Time) error {
	res, err := d.sdk.SetDateTime(ctx, t.Truncate(time.Second), d.port())
	if err != nil {
		return errors.Wrap(err, "set date time")
	}
	return res.Err("SetDateTime")
}

// DateTime reads the instrument clock.
func (d *Device) DateTime(ctx context.Context) (time.Time, error) {
	res, t, err := d.sdk.DateTime(ctx, d.port())
	if err != nil {
		return time.Time{}, errors.Wrap(err, "date time")
	}
	if err := res.Err("GetDateTime"); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// SetDateFormat sets the instrument's date display format.
func (d *Device) SetDateFormat(ctx context.Context, format DateFormat) error {
	vendorFormat, ok := dateFormatToVendor[format]
	if !ok {
		return invalidArg("SetDateFormat", "date format %q must be one of [ymd mdy dmy]", format)
	}
	res, err := d.sdk.SetDateFormat(ctx, vendorFormat, d.port())
	if err != nil {
		return errors.Wrap(err, "set date format")
	}
	return res.Err("SetDateFormat")
}

// DateFormat reports the instrument's date display format.
func (d *Device) DateFormat(ctx context.Context) (DateFormat, error) {
	res, df, err := d.sdk.DateFormat(ctx, d.port())
	if err != nil {
		return DateFormatUnknown, errors.Wrap(err, "date format")
	}
	if err := res.Err("GetDateFormat"); err != nil {
		return DateFormatUnknown, err
	}
	f, ok := dateFormatFromVendor[df]
	if !ok {
		f = DateFormatUnknown
	}
	return f, nil
}

// SetColorMode sets the color space shown on the instrument display.
func (d *Device) SetColorMode(ctx context.Context, mode ColorMode) error {
	vendorMode, ok := colorModeToVendor[mode]
	if !ok {
		return invalidArg("SetColorMode", "color mode %q is not one of %v", mode, colorModeKeys())
	}
	res, err := d.sdk.SetColorMode(ctx, vendorMode, d.port())
	if err != nil {
		return errors.Wrap(err, "set color mode")
	}
	return res.Err("SetColorMode")
}

// ColorMode reports the color space shown on the instrument display.
func (d *Device) ColorMode(ctx context.Context) (ColorMode, error) {
	res, mode, err := d.sdk.ColorMode(ctx, d.port())
	if err != nil {
		return ColorModeUnknown, errors.Wrap(err, "color mode")
	}
	if err := res.Err("GetColorMode"); err != nil {
		return ColorModeUnknown, err
	}
	m, ok := colorModeFromVendor[mode]
	if !ok {
		m = ColorModeUnknown
	}
	return m, nil
}

// SetColorModeDisplay makes a color mode selectable (or not) on the
// instrument display.
func (d *Device) SetColorModeDisplay(ctx context.Context, mode ColorMode, enabled bool) error {
	vendorMode, ok := colorModeToVendor[mode]
	if !ok {
		return invalidArg("SetColorModeDisplayOnOff", "color mode %q is not one of %v", mode, colorModeKeys())
	}
	disp := misdk.ColorModeDisplayOff
	if enabled {
		disp = misdk.ColorModeDisplayOn
	}
	res, err := d.sdk.SetColorModeDisplay(ctx, vendorMode, disp, d.port())
	if err != nil {
		return errors.Wrap(err, "set color mode display")
	}
	return res.Err("SetColorModeDisplayOnOff")
}

// ColorModeDisplay reports whether a color mode is selectable on the
// instrument display.
func (d *Device) ColorModeDisplay(ctx context.Context, mode ColorMode) (bool, error) {
	vendorMode, ok := colorModeToVendor[mode]
	if !ok {
		return false, invalidArg("GetColorModeDisplayOnOff", "color mode %q is not one of %v", mode, colorModeKeys())
	}
	res, disp, err := d.sdk.ColorModeDisplay(ctx, vendorMode, d.port())
	if err != nil {
		return false, errors.Wrap(err, "color mode display")
	}
	if err := res.Err("GetColorModeDisplayOnOff"); err != nil {
		return false, err
	}
	return disp == misdk.ColorModeDisplayOn, nil
}

// SetDataSaveMode selects automatic or manual saving of measurements to
// the instrument's sample store.
func (d *Device) SetDataSaveMode(ctx context.Context, mode SaveMode) error {
	vendorMode, ok := saveModeToVendor[mode]
	if !ok {
		return invalidArg("SetDataSaveMode", "save mode %q must be %q or %q", mode, SaveModeAuto, SaveModeManual)
	}
	res, err := d.sdk.SetDataSaveMode(ctx, vendorMode, d.port())
	if err != nil {
		return errors.Wrap(err, "set data save mode")
	}
	return res.Err("SetDataSaveMode")
}

// DataSaveMode reports the sample saving mode.
func (d *Device) DataSaveMode(ctx context.Context) (SaveMode, error) {
	res, mode, err := d.sdk.DataSaveMode(ctx, d.port())
	if err != nil {
		return SaveModeUnknown, errors.Wrap(err, "data save mode")
	}
	if err := res.Err("GetDataSaveMode"); err != nil {
		return SaveModeUnknown, err
	}
	m, ok := saveModeFromVendor[mode]
	if !ok {
		m = SaveModeUnknown
	}
	return m, nil
}

// SetPeriodicCalibrationNotify turns the periodic calibration alert on
// or off.
func (d *Device) SetPeriodicCalibrationNotify(ctx context.Context, enabled bool) error {
	mode := misdk.CalibNotifyOff
	if enabled {
		mode = misdk.CalibNotifyOn
	}
	res, err := d.sdk.SetPeriodicCalibNotify(ctx, mode, d.port())
	if err != nil {
		return errors.Wrap(err, "set periodic calibration notify")
	}
	return res.Err("SetPeriodicCalibNotify")
}

// PeriodicCalibrationNotify reports whether the periodic calibration
// alert is on.
func (d *Device) PeriodicCalibrationNotify(ctx context.Context) (bool, error) {
	res, mode, err := d.sdk.PeriodicCalibNotify(ctx, d.port())
	if err != nil {
		return false, errors.Wrap(err, "periodic calibration notify")
	}
	if err := res.Err("GetPeriodicCalibNotify"); err != nil {
		return false, err
	}
	return mode == misdk.CalibNotifyOn, nil
}

// SetToggle sets the measurement button behavior: toggle mode (press to
// start, press again to stop) or standard mode (hold to measure).
func (d *Device) SetToggle(ctx context.Context, enabled bool) error {
	status := misdk.ToggleOff
	if enabled {
		status = misdk.ToggleOn
	}
	res, err := d.sdk.SetToggle(ctx, status, d.port())
	if err != nil {
		return errors.Wrap(err, "set toggle")
	}
	return res.Err("SetToggleOnOff")
}

// Toggle reports whether the measurement button is in toggle mode.
func (d *Device) Toggle(ctx context.Context) (bool, error) {
	res, status, err := d.sdk.Toggle(ctx, d.port())
	if err != nil {
		return false, errors.Wrap(err, "toggle")
	}
	if err := res.Err("GetToggleOnOff"); err != nil {
		return false, err
	}
	return status == misdk.ToggleOn, nil
}

// SetTrigger enables or disables the measurement button. The instrument
// disables the trigger on its own after a disconnect.
func (d *Device) SetTrigger(ctx context.Context, enabled bool) error {
	status := misdk.TriggerOff
	if enabled {
		status = misdk.TriggerOn
	}
	res, err := d.sdk.SetTrigger(ctx, status, d.port())
	if err != nil {
		return errors.Wrap(err, "set trigger")
	}
	return res.Err("SetTriggerOnOff")
}

// Trigger reports whether the measurement button is enabled.
func (d *Device) Trigger(ctx context.Context) (bool, error) {
	res, status, err := d.sdk.Trigger(ctx, d.port())
	if err != nil {
		return false, errors.Wrap(err, "trigger")
	}
	if err := res.Err("GetTriggerOnOff"); err != nil {
		return false, err
	}
	return status == misdk.TriggerOn, nil
}
