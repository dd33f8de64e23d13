package misdk

// MeasStatus is the instrument's measurement state as reported by
// PollingMeasurement.
type MeasStatus int

const (
	StatusIdling MeasStatus = iota
	StatusMeasuring
)

// ColorSpace selects the record shape for data reads. It mirrors the
// vendor's color space classes (XYZ, Lvxy, ...), not the display mode.
type ColorSpace int

const (
	SpaceXYZ ColorSpace = iota
	SpaceLvxy
	SpaceLvudvd
	SpaceLvTcpDuv
	SpaceLvDwPe
	SpaceLv
)

// MeasTimeMode selects automatic or manual integration time.
type MeasTimeMode int

const (
	MeasTimeAuto MeasTimeMode = iota
	MeasTimeManual
)

// SyncMode enables measurement synchronization to a display frequency.
type SyncMode int

const (
	SyncOff SyncMode = iota
	SyncOn
)

// PeakValley selects peak/valley hold behavior.
type PeakValley int

const (
	PeakValleyOff PeakValley = iota
	PeakValleyPeak
	PeakValleyValley
)

// CloseUpLensType identifies the mounted close-up lens.
type CloseUpLensType int

const (
	LensStandard CloseUpLensType = iota
	LensNo153
	LensNo135
	LensNo122
	LensNo110
)

// CalibType is the user calibration matrix type.
type CalibType int

const (
	CalibOnePoint CalibType = iota
	CalibRGB
	CalibWRGB
)

// CCFMode turns the color correction factor on or off.
type CCFMode int

const (
	CCFOff CCFMode = iota
	CCFOn
)

// AutoPowerOff is the instrument's auto power off setting.
type AutoPowerOff int

const (
	AutoPowerOffDisabled AutoPowerOff = iota
	AutoPowerOffEnabled
)

// BackLightMode turns the display backlight on or off.
type BackLightMode int

const (
	BackLightOff BackLightMode = iota
	BackLightOn
)

// BackLightLevel is the display backlight brightness, level 1 (darkest)
// through level 5 (brightest).
type BackLightLevel int

const (
	BackLightLevel1 BackLightLevel = iota + 1
	BackLightLevel2
	BackLightLevel3
	BackLightLevel4
	BackLightLevel5
)

// DispType selects absolute, difference, or ratio display.
type DispType int

const (
	DispAbs DispType = iota
	DispDiff
	DispRatio
)

// DisplayLanguage is the instrument display language.
type DisplayLanguage int

const (
	LangEnglish DisplayLanguage = iota
	LangJapanese
	LangChinese
)

// DateFormat is the instrument's date display format.
type DateFormat int

const (
	DateYYMMDD DateFormat = iota
	DateMMDDYY
	DateDDMMYY
)

// ColorMode is the color space shown on the instrument display.
type ColorMode int

const (
	ColorLvxy ColorMode = iota
	ColorLvudvd
	ColorLvTcpDuv
	ColorXYZ
	ColorLvDwPe
	ColorLv
)

// ColorModeDisplay makes a color mode selectable on the instrument.
type ColorModeDisplay int

const (
	ColorModeDisplayOff ColorModeDisplay = iota
	ColorModeDisplayOn
)

// DataSaveMode selects automatic or manual saving of measurements to the
// instrument's sample store.
type DataSaveMode int

const (
	SaveAuto DataSaveMode = iota
	SaveManual
)

// PeriodicCalibNotify turns the periodic calibration alert on or off.
type PeriodicCalibNotify int

const (
	CalibNotifyOff PeriodicCalibNotify = iota
	CalibNotifyOn
)

// ToggleStatus selects the measurement button behavior: toggle
// (press to start, press to stop) or standard (hold to measure).
type ToggleStatus int

const (
	ToggleOff ToggleStatus = iota
	ToggleOn
)

// TriggerStatus enables or disables the measurement button. The vendor
// layer disables the trigger automatically on disconnect.
type TriggerStatus int

const (
	TriggerOff TriggerStatus = iota
	TriggerOn
)

// LuminanceUnit is the unit of luminance values.
type LuminanceUnit int

const (
	UnitCdm2 LuminanceUnit = iota
	UnitFl
)
