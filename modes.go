package konica

import "github.com/MichaelHengge/konica-lscs/misdk"

// Human-readable modes, translated to vendor enums at the call boundary.
// Setters reject anything outside the enumerated set before a vendor call
// is made; getters translate unrecognized vendor values to the Unknown
// constant of each type since the vendor surface is not contractually
// closed.

// Status is the instrument's measurement state.
type Status string

// Measurement states.
const (
	StatusIdling    Status = "idling"
	StatusMeasuring Status = "measuring"
	StatusUnknown   Status = "unknown"
)

func statusFromVendor(s misdk.MeasStatus) Status {
	switch s {
	case misdk.StatusIdling:
		return StatusIdling
	case misdk.StatusMeasuring:
		return StatusMeasuring
	default:
		return StatusUnknown
	}
}

// TimeMode selects automatic or manual integration time.
type TimeMode string

// Integration time modes.
const (
	TimeModeAuto    TimeMode = "auto"
	TimeModeManual  TimeMode = "manual"
	TimeModeUnknown TimeMode = "unknown"
)

var timeModeToVendor = map[TimeMode]misdk.MeasTimeMode{
	TimeModeAuto:   misdk.MeasTimeAuto,
	TimeModeManual: misdk.MeasTimeManual,
}

var timeModeFromVendor = map[misdk.MeasTimeMode]TimeMode{
	misdk.MeasTimeAuto:   TimeModeAuto,
	misdk.MeasTimeManual: TimeModeManual,
}

// PeakValleyMode selects peak/valley hold behavior.
type PeakValleyMode string

// Peak/valley modes.
const (
	PeakValleyOff     PeakValleyMode = "off"
	PeakValleyPeak    PeakValleyMode = "peak"
	PeakValleyValley  PeakValleyMode = "valley"
	PeakValleyUnknown PeakValleyMode = "unknown"
)

var peakValleyToVendor = map[PeakValleyMode]misdk.PeakValley{
	PeakValleyOff:    misdk.PeakValleyOff,
	PeakValleyPeak:   misdk.PeakValleyPeak,
	PeakValleyValley: misdk.PeakValleyValley,
}

var peakValleyFromVendor = map[misdk.PeakValley]PeakValleyMode{
	misdk.PeakValleyOff:    PeakValleyOff,
	misdk.PeakValleyPeak:   PeakValleyPeak,
	misdk.PeakValleyValley: PeakValleyValley,
}

// LensType identifies the mounted close-up lens.
type LensType string

// Close-up lens types.
const (
	LensStandard LensType = "standard"
	LensNo153    LensType = "no153"
	LensNo135    LensType = "no135"
	LensNo122    LensType = "no122"
	LensNo110    LensType = "no110"
	LensUnknown  LensType = "unknown"
)

var lensToVendor = map[LensType]misdk.CloseUpLensType{
	LensStandard: misdk.LensStandard,
	LensNo153:    misdk.LensNo153,
	LensNo135:    misdk.LensNo135,
	LensNo122:    misdk.LensNo122,
	LensNo110:    misdk.LensNo110,
}

var lensFromVendor = map[misdk.CloseUpLensType]LensType{
	misdk.LensStandard: LensStandard,
	misdk.LensNo153:    LensNo153,
	misdk.LensNo135:    LensNo135,
	misdk.LensNo122:    LensNo122,
	misdk.LensNo110:    LensNo110,
}

// ColorMode is the color space shown on the instrument display.
type ColorMode string

// Color modes.
const (
	ColorModeLvxy     ColorMode = "lvxy"
	ColorModeLvudvd   ColorMode = "lvudvd"
	ColorModeLvTcpDuv ColorMode = "lvtcpduv"
	ColorModeXYZ      ColorMode = "xyz"
	ColorModeLvDwPe   ColorMode = "lvdwpe"
	ColorModeLv       ColorMode = "lv"
	ColorModeUnknown  ColorMode = "unknown"
)

var colorModeToVendor = map[ColorMode]misdk.ColorMode{
	ColorModeLvxy:     misdk.ColorLvxy,
	ColorModeLvudvd:   misdk.ColorLvudvd,
	ColorModeLvTcpDuv: misdk.ColorLvTcpDuv,
	ColorModeXYZ:      misdk.ColorXYZ,
	ColorModeLvDwPe:   misdk.ColorLvDwPe,
	ColorModeLv:       misdk.ColorLv,
}

var colorModeFromVendor = map[misdk.ColorMode]ColorMode{
	misdk.ColorLvxy:     ColorModeLvxy,
	misdk.ColorLvudvd:   ColorModeLvudvd,
	misdk.ColorLvTcpDuv: ColorModeLvTcpDuv,
	misdk.ColorXYZ:      ColorModeXYZ,
	misdk.ColorLvDwPe:   ColorModeLvDwPe,
	misdk.ColorLv:       ColorModeLv,
}

// color spaces for data reads share the color mode names
var colorSpaceToVendor = map[ColorMode]misdk.ColorSpace{
	ColorModeLvxy:     misdk.SpaceLvxy,
	ColorModeLvudvd:   misdk.SpaceLvudvd,
	ColorModeLvTcpDuv: misdk.SpaceLvTcpDuv,
	ColorModeXYZ:      misdk.SpaceXYZ,
	ColorModeLvDwPe:   misdk.SpaceLvDwPe,
	ColorModeLv:       misdk.SpaceLv,
}

// DisplayType selects absolute, difference, or ratio display.
type DisplayType string

// Display types.
const (
	DisplayAbsolute   DisplayType = "absolute"
	DisplayDifference DisplayType = "difference"
	DisplayRatio      DisplayType = "ratio"
	DisplayUnknown    DisplayType = "unknown"
)

var displayTypeToVendor = map[DisplayType]misdk.DispType{
	DisplayAbsolute:   misdk.DispAbs,
	DisplayDifference: misdk.DispDiff,
	DisplayRatio:      misdk.DispRatio,
}

var displayTypeFromVendor = map[misdk.DispType]DisplayType{
	misdk.DispAbs:   DisplayAbsolute,
	misdk.DispDiff:  DisplayDifference,
	misdk.DispRatio: DisplayRatio,
}

// Language is the instrument display language.
type Language string

// Display languages.
const (
	LanguageEnglish  Language = "english"
	LanguageJapanese Language = "japanese"
	LanguageChinese  Language = "chinese"
	LanguageUnknown  Language = "unknown"
)

var languageToVendor = map[Language]misdk.DisplayLanguage{
	LanguageEnglish:  misdk.LangEnglish,
	LanguageJapanese: misdk.LangJapanese,
	LanguageChinese:  misdk.LangChinese,
}

var languageFromVendor = map[misdk.DisplayLanguage]Language{
	misdk.LangEnglish:  LanguageEnglish,
	misdk.LangJapanese: LanguageJapanese,
	misdk.LangChinese:  LanguageChinese,
}

// DateFormat is the instrument's date display format.
type DateFormat string

// Date formats.
const (
	DateFormatYMD     DateFormat = "ymd"
	DateFormatMDY     DateFormat = "mdy"
	DateFormatDMY     DateFormat = "dmy"
	DateFormatUnknown DateFormat = "unknown"
)

var dateFormatToVendor = map[DateFormat]misdk.DateFormat{
	DateFormatYMD: misdk.DateYYMMDD,
	DateFormatMDY: misdk.DateMMDDYY,
	DateFormatDMY: misdk.DateDDMMYY,
}

var dateFormatFromVendor = map[misdk.DateFormat]DateFormat{
	misdk.DateYYMMDD: DateFormatYMD,
	misdk.DateMMDDYY: DateFormatMDY,
	misdk.DateDDMMYY: DateFormatDMY,
}

// SaveMode selects automatic or manual saving of measurements to the
// instrument's sample store.
type SaveMode string

// Data save modes.
const (
	SaveModeAuto    SaveMode = "auto"
	SaveModeManual  SaveMode = "manual"
	SaveModeUnknown SaveMode = "unknown"
)

var saveModeToVendor = map[SaveMode]misdk.DataSaveMode{
	SaveModeAuto:   misdk.SaveAuto,
	SaveModeManual: misdk.SaveManual,
}

var saveModeFromVendor = map[misdk.DataSaveMode]SaveMode{
	misdk.SaveAuto:   SaveModeAuto,
	misdk.SaveManual: SaveModeManual,
}

// LuminanceUnit is the unit the instrument reports luminance in.
type LuminanceUnit string

// Luminance units.
const (
	UnitCdm2    LuminanceUnit = "cdm2"
	UnitFl      LuminanceUnit = "fl"
	UnitUnknown LuminanceUnit = "unknown"
)

var luminanceUnitToVendor = map[LuminanceUnit]misdk.LuminanceUnit{
	UnitCdm2: misdk.UnitCdm2,
	UnitFl:   misdk.UnitFl,
}

var luminanceUnitFromVendor = map[misdk.LuminanceUnit]LuminanceUnit{
	misdk.UnitCdm2: UnitCdm2,
	misdk.UnitFl:   UnitFl,
}

// CalibrationType is the user calibration matrix type.
type CalibrationType string

// Calibration types.
const (
	CalibrationOnePoint CalibrationType = "onepoint"
	CalibrationRGB      CalibrationType = "rgb"
	CalibrationWRGB     CalibrationType = "wrgb"
	CalibrationUnknown  CalibrationType = "unknown"
)

var calibTypeToVendor = map[CalibrationType]misdk.CalibType{
	CalibrationOnePoint: misdk.CalibOnePoint,
	CalibrationRGB:      misdk.CalibRGB,
	CalibrationWRGB:     misdk.CalibWRGB,
}

var calibTypeFromVendor = map[misdk.CalibType]CalibrationType{
	misdk.CalibOnePoint: CalibrationOnePoint,
	misdk.CalibRGB:      CalibrationRGB,
	misdk.CalibWRGB:     CalibrationWRGB,
}

var backLightLevelToVendor = map[int]misdk.BackLightLevel{
	1: misdk.BackLightLevel1,
	2: misdk.BackLightLevel2,
	3: misdk.BackLightLevel3,
	4: misdk.BackLightLevel4,
	5: misdk.BackLightLevel5,
}

var backLightLevelFromVendor = map[misdk.BackLightLevel]int{
	misdk.BackLightLevel1: 1,
	misdk.BackLightLevel2: 2,
	misdk.BackLightLevel3: 3,
	misdk.BackLightLevel4: 4,
	misdk.BackLightLevel5: 5,
}
