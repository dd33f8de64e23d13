package misdk

import "time"

// ColorValues maps channel names ("Lv", "X", "Y", "Z", "x", "y", ...) to
// measured values. Which channels appear depends on the color space the
// data was read in.
type ColorValues map[string]float64

// MeasurementTime is the integration time setting.
type MeasurementTime struct {
	Mode MeasTimeMode `json:"mode"`
	// ManualSeconds is the integration time used when Mode is manual.
	ManualSeconds float64 `json:"manualSeconds,omitempty"`
}

// MeasurementFrequency is the sync mode setting.
type MeasurementFrequency struct {
	SyncMode SyncMode `json:"syncMode"`
	// Frequency is the sync frequency in Hz when SyncMode is on.
	Frequency float64 `json:"frequency,omitempty"`
}

// CCF is the color correction factor setting.
type CCF struct {
	Coef float64 `json:"coef"`
	Mode CCFMode `json:"mode"`
}

// TargetData is a stored target or calibration point: color values in a
// given luminance unit plus an optional ID string.
type TargetData struct {
	Unit   LuminanceUnit `json:"unit"`
	Values ColorValues   `json:"values"`
	ID     string        `json:"id,omitempty"`
}

// CalibrationData is the full parameter set of one user calibration
// channel.
type CalibrationData struct {
	Measured []TargetData `json:"measured"`
	True     []TargetData `json:"true"`
	ID       string       `json:"id"`
	Date     time.Time    `json:"date"`
	Type     CalibType    `json:"type"`
	Coef     []float64    `json:"coef"`
}

// DeviceInfo is a read-only snapshot of instrument identity and
// calibration status. Firmware fields are strings as the vendor reports
// them.
type DeviceInfo struct {
	ProductName           string `json:"productName"`
	SerialNumber          string `json:"serialNumber"`
	FirmwareMajor         string `json:"firmwareMajor"`
	FirmwareMinor         string `json:"firmwareMinor"`
	FirmwareFree          string `json:"firmwareFree"`
	CalibrationExpiration string `json:"calibrationExpiration"`
	CalibrationWarning    bool   `json:"calibrationWarning"`
}
