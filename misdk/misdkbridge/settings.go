package misdkbridge

import (
	"context"
	"time"

	"github.com/MichaelHengge/konica-lscs/misdk"
)

// Setting calls are thin wrappers; translation to human-readable modes
// happens above this layer, in the facade.

// SetMeasurementTime sets the integration time mode.
func (c *Client) SetMeasurementTime(ctx context.Context, mt misdk.MeasurementTime, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetMeasurementTime", struct {
		Value   misdk.MeasurementTime `json:"value"`
		ComPort int                   `json:"comPort"`
	}{mt, comPort}, nil)
}

// MeasurementTime reads the integration time mode.
func (c *Client) MeasurementTime(ctx context.Context, comPort int) (misdk.Result, misdk.MeasurementTime, error) {
	var payload struct {
		Value misdk.MeasurementTime `json:"value"`
	}
	res, err := c.call(ctx, "GetMeasurementTime", portParams{comPort}, &payload)
	return res, payload.Value, err
}

// SetSyncMode sets measurement synchronization.
func (c *Client) SetSyncMode(ctx context.Context, mf misdk.MeasurementFrequency, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetSyncMode", struct {
		Value   misdk.MeasurementFrequency `json:"value"`
		ComPort int                        `json:"comPort"`
	}{mf, comPort}, nil)
}

// SyncMode reads measurement synchronization.
func (c *Client) SyncMode(ctx context.Context, comPort int) (misdk.Result, misdk.MeasurementFrequency, error) {
	var payload struct {
		Value misdk.MeasurementFrequency `json:"value"`
	}
	res, err := c.call(ctx, "GetSyncMode", portParams{comPort}, &payload)
	return res, payload.Value, err
}

type intValueParams struct {
	Value   int `json:"value"`
	ComPort int `json:"comPort"`
}

type intValuePayload struct {
	Value int `json:"value"`
}

// SetPeakValley sets peak/valley hold.
func (c *Client) SetPeakValley(ctx context.Context, pv misdk.PeakValley, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetPeakValley", intValueParams{int(pv), comPort}, nil)
}

// PeakValley reads peak/valley hold.
func (c *Client) PeakValley(ctx context.Context, comPort int) (misdk.Result, misdk.PeakValley, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetPeakValley", portParams{comPort}, &payload)
	return res, misdk.PeakValley(payload.Value), err
}

// SetCloseUpLens sets the mounted close-up lens.
func (c *Client) SetCloseUpLens(ctx context.Context, lens misdk.CloseUpLensType, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetCloseUpLens", intValueParams{int(lens), comPort}, nil)
}

// CloseUpLens reads the mounted close-up lens.
func (c *Client) CloseUpLens(ctx context.Context, comPort int) (misdk.Result, misdk.CloseUpLensType, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetCloseUpLens", portParams{comPort}, &payload)
	return res, misdk.CloseUpLensType(payload.Value), err
}

// SetCCF sets the color correction factor.
func (c *Client) SetCCF(ctx context.Context, ccf misdk.CCF, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetCCF", struct {
		Value   misdk.CCF `json:"value"`
		ComPort int       `json:"comPort"`
	}{ccf, comPort}, nil)
}

// CCF reads the color correction factor.
func (c *Client) CCF(ctx context.Context, comPort int) (misdk.Result, misdk.CCF, error) {
	var payload struct {
		Value misdk.CCF `json:"value"`
	}
	res, err := c.call(ctx, "GetCCF", portParams{comPort}, &payload)
	return res, payload.Value, err
}

// SetLuminanceUnit sets the luminance unit.
func (c *Client) SetLuminanceUnit(ctx context.Context, unit misdk.LuminanceUnit, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetLuminanceUnit", intValueParams{int(unit), comPort}, nil)
}

// LuminanceUnit reads the luminance unit.
func (c *Client) LuminanceUnit(ctx context.Context, comPort int) (misdk.Result, misdk.LuminanceUnit, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetLuminanceUnit", portParams{comPort}, &payload)
	return res, misdk.LuminanceUnit(payload.Value), err
}

// SetAutoPowerOff sets auto power off.
func (c *Client) SetAutoPowerOff(ctx context.Context, mode misdk.AutoPowerOff, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetAutoPowerOff", intValueParams{int(mode), comPort}, nil)
}

// AutoPowerOff reads auto power off.
func (c *Client) AutoPowerOff(ctx context.Context, comPort int) (misdk.Result, misdk.AutoPowerOff, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetAutoPowerOff", portParams{comPort}, &payload)
	return res, misdk.AutoPowerOff(payload.Value), err
}

// SetBackLight turns the backlight on or off.
func (c *Client) SetBackLight(ctx context.Context, mode misdk.BackLightMode, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetBackLightOnOff", intValueParams{int(mode), comPort}, nil)
}

// BackLight reads the backlight state.
func (c *Client) BackLight(ctx context.Context, comPort int) (misdk.Result, misdk.BackLightMode, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetBackLightOnOff", portParams{comPort}, &payload)
	return res, misdk.BackLightMode(payload.Value), err
}

// SetBackLightLevel sets backlight brightness.
func (c *Client) SetBackLightLevel(ctx context.Context, level misdk.BackLightLevel, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetBackLightLevel", intValueParams{int(level), comPort}, nil)
}

// BackLightLevel reads backlight brightness.
func (c *Client) BackLightLevel(ctx context.Context, comPort int) (misdk.Result, misdk.BackLightLevel, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetBackLightLevel", portParams{comPort}, &payload)
	return res, misdk.BackLightLevel(payload.Value), err
}

// SetColorDispDigit sets display precision.
func (c *Client) SetColorDispDigit(ctx context.Context, digits, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetColorDispDigit", intValueParams{digits, comPort}, nil)
}

// ColorDispDigit reads display precision.
func (c *Client) ColorDispDigit(ctx context.Context, comPort int) (misdk.Result, int, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetColorDispDigit", portParams{comPort}, &payload)
	return res, payload.Value, err
}

// SetDisplayType sets absolute/difference/ratio display.
func (c *Client) SetDisplayType(ctx context.Context, dt misdk.DispType, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetDisplayType", intValueParams{int(dt), comPort}, nil)
}

// DisplayType reads the display type.
func (c *Client) DisplayType(ctx context.Context, comPort int) (misdk.Result, misdk.DispType, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetDisplayType", portParams{comPort}, &payload)
	return res, misdk.DispType(payload.Value), err
}

// SetDisplayLanguage sets the display language.
func (c *Client) SetDisplayLanguage(ctx context.Context, lang misdk.DisplayLanguage, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetDisplayLanguage", intValueParams{int(lang), comPort}, nil)
}

// DisplayLanguage reads the display language.
func (c *Client) DisplayLanguage(ctx context.Context, comPort int) (misdk.Result, misdk.DisplayLanguage, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetDisplayLanguage", portParams{comPort}, &payload)
	return res, misdk.DisplayLanguage(payload.Value), err
}

// SetDateTime sets the instrument clock.
func (c *Client) SetDateTime(ctx context.Context, t time.Time, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetDateTime", struct {
		Value   time.Time `json:"value"`
		ComPort int       `json:"comPort"`
	}{t, comPort}, nil)
}

// DateTime reads the instrument clock.
func (c *Client) DateTime(ctx context.Context, comPort int) (misdk.Result, time.Time, error) {
	var payload struct {
		Value time.Time `json:"value"`
	}
	res, err := c.call(ctx, "GetDateTime", portParams{comPort}, &payload)
	return res, payload.Value, err
}

// SetDateFormat sets the date display format.
func (c *Client) SetDateFormat(ctx context.Context, df misdk.DateFormat, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetDateFormat", intValueParams{int(df), comPort}, nil)
}

// DateFormat reads the date display format.
func (c *Client) DateFormat(ctx context.Context, comPort int) (misdk.Result, misdk.DateFormat, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetDateFormat", portParams{comPort}, &payload)
	return res, misdk.DateFormat(payload.Value), err
}

// SetColorMode sets the displayed color space.
func (c *Client) SetColorMode(ctx context.Context, mode misdk.ColorMode, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetColorMode", intValueParams{int(mode), comPort}, nil)
}

// ColorMode reads the displayed color space.
func (c *Client) ColorMode(ctx context.Context, comPort int) (misdk.Result, misdk.ColorMode, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetColorMode", portParams{comPort}, &payload)
	return res, misdk.ColorMode(payload.Value), err
}

// SetColorModeDisplay makes a color mode selectable on the instrument.
func (c *Client) SetColorModeDisplay(ctx context.Context, mode misdk.ColorMode, disp misdk.ColorModeDisplay, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetColorModeDisplayOnOff", struct {
		Mode    int `json:"mode"`
		Display int `json:"display"`
		ComPort int `json:"comPort"`
	}{int(mode), int(disp), comPort}, nil)
}

// ColorModeDisplay reads whether a color mode is selectable.
func (c *Client) ColorModeDisplay(ctx context.Context, mode misdk.ColorMode, comPort int) (misdk.Result, misdk.ColorModeDisplay, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetColorModeDisplayOnOff", struct {
		Mode    int `json:"mode"`
		ComPort int `json:"comPort"`
	}{int(mode), comPort}, &payload)
	return res, misdk.ColorModeDisplay(payload.Value), err
}

// SetDataSaveMode sets automatic or manual sample saving.
func (c *Client) SetDataSaveMode(ctx context.Context, mode misdk.DataSaveMode, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetDataSaveMode", intValueParams{int(mode), comPort}, nil)
}

// DataSaveMode reads the sample saving mode.
func (c *Client) DataSaveMode(ctx context.Context, comPort int) (misdk.Result, misdk.DataSaveMode, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetDataSaveMode", portParams{comPort}, &payload)
	return res, misdk.DataSaveMode(payload.Value), err
}

// SetPeriodicCalibNotify turns the periodic calibration alert on or off.
func (c *Client) SetPeriodicCalibNotify(ctx context.Context, mode misdk.PeriodicCalibNotify, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetPeriodicCalibNotify", intValueParams{int(mode), comPort}, nil)
}

// PeriodicCalibNotify reads the periodic calibration alert setting.
func (c *Client) PeriodicCalibNotify(ctx context.Context, comPort int) (misdk.Result, misdk.PeriodicCalibNotify, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetPeriodicCalibNotify", portParams{comPort}, &payload)
	return res, misdk.PeriodicCalibNotify(payload.Value), err
}

// SetToggle sets the measurement button toggle behavior.
func (c *Client) SetToggle(ctx context.Context, status misdk.ToggleStatus, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetToggleOnOff", intValueParams{int(status), comPort}, nil)
}

// Toggle reads the measurement button toggle behavior.
func (c *Client) Toggle(ctx context.Context, comPort int) (misdk.Result, misdk.ToggleStatus, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetToggleOnOff", portParams{comPort}, &payload)
	return res, misdk.ToggleStatus(payload.Value), err
}

// SetTrigger enables or disables the measurement button.
func (c *Client) SetTrigger(ctx context.Context, status misdk.TriggerStatus, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetTriggerOnOff", intValueParams{int(status), comPort}, nil)
}

// Trigger reads whether the measurement button is enabled.
func (c *Client) Trigger(ctx context.Context, comPort int) (misdk.Result, misdk.TriggerStatus, error) {
	var payload intValuePayload
	res, err := c.call(ctx, "GetTriggerOnOff", portParams{comPort}, &payload)
	return res, misdk.TriggerStatus(payload.Value), err
}
