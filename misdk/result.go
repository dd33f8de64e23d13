package misdk

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ReturnCode is a vendor return code. The space is closed and documented
// in the LC-MISDK reference manual; codes outside it resolve to an
// unknown-code description rather than failing translation.
type ReturnCode int

// The documented vendor return codes.
const (
	KmSuccess              ReturnCode = 0
	ErNoConnect            ReturnCode = 10
	ErInvalidParameter     ReturnCode = 25
	ErCannotCommand        ReturnCode = 30
	ErNoData               ReturnCode = 45
	ErOutOfRangeValue      ReturnCode = 50
	ErInstrumentProcessing ReturnCode = 60
	ErConnectFailed        ReturnCode = 100
	ErDisConnectFailed     ReturnCode = 110
	ErSetFailed            ReturnCode = 120
	ErGetFailed            ReturnCode = 130
	ErCalcFailed           ReturnCode = 140
	ErCancelFailed         ReturnCode = 150
	ErWriteFailed          ReturnCode = 160
	ErReadFailed           ReturnCode = 170
	ErDeleteFailed         ReturnCode = 180
	ErMeasurementFailed    ReturnCode = 200
)

var returnCodeDescriptions = map[ReturnCode]string{
	KmSuccess:              "The processing was completed normally (KmSuccess)",
	ErNoConnect:            "No instrument is connected to the specified virtual COM port (ErNoConnect)",
	ErInvalidParameter:     "The assigned parameter is incorrect (ErInvalidParameter)",
	ErCannotCommand:        "This model does not support the specified command (ErCannotCommand)",
	ErNoData:               "No specified data (ErNoData)",
	ErOutOfRangeValue:      "Calculation result is out of the support range of chromaticity or luminance (ErOutOfRangeValue)",
	ErInstrumentProcessing: "The instrument cannot receive any commands because it is in the middle of a process (ErInstrumentProcessing)",
	ErConnectFailed:        "Failed to connect to the instrument (ErConnectFailed)",
	ErDisConnectFailed:     "There are one or more ports that cannot be disconnected (ErDisConnectFailed)",
	ErSetFailed:            "Failed to set the setting (ErSetFailed)",
	ErGetFailed:            "Failed to obtain the setting (ErGetFailed)",
	ErCalcFailed:           "Calculation failed (ErCalcFailed)",
	ErCancelFailed:         "Cancellation failed (ErCancelFailed)",
	ErWriteFailed:          "Write failed (ErWriteFailed)",
	ErReadFailed:           "Read failed (ErReadFailed)",
	ErDeleteFailed:         "Failed to delete the setting(s) (ErDeleteFailed)",
	ErMeasurementFailed:    "Measurement failed (ErMeasurementFailed)",
}

// Description returns the manual's description for the code, or an
// unknown-code description for anything outside the documented space.
func (c ReturnCode) Description() string {
	if desc, ok := returnCodeDescriptions[c]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown error code %d", int(c))
}

// Result is the envelope every vendor call returns: the return code plus
// any free-text detail the vendor layer attached.
type Result struct {
	Code     ReturnCode `json:"code"`
	Messages []string   `json:"messages,omitempty"`
}

// Success is the envelope of a call that completed normally.
func Success() Result {
	return Result{Code: KmSuccess}
}

// OK reports whether the vendor completed the call normally.
func (r Result) OK() bool {
	return r.Code == KmSuccess
}

// Err resolves the envelope for the named operation: nil on success,
// otherwise exactly one *Error composing the manual description with any
// vendor-supplied detail.
func (r Result) Err(op string) error {
	if r.OK() {
		return nil
	}
	return &Error{Op: op, Code: r.Code, Detail: strings.Join(r.Messages, ", ")}
}

// Error is a vendor-reported failure.
type Error struct {
	Op     string
	Code   ReturnCode
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s failed with error %d: %s", e.Op, int(e.Code), e.Code.Description())
	if e.Detail != "" {
		msg += ". SDK details: " + e.Detail
	}
	return msg
}

// NewError builds a vendor-space failure originating in this layer, used
// for argument validation that must fail before any vendor call.
func NewError(op string, code ReturnCode, format string, args ...interface{}) error {
	return &Error{Op: op, Code: code, Detail: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the vendor return code from err, or -1 if err does not
// carry one.
func CodeOf(err error) ReturnCode {
	var me *Error
	if errors.As(err, &me) {
		return me.Code
	}
	return -1
}

// IsCode reports whether err carries the given vendor return code.
func IsCode(err error, code ReturnCode) bool {
	return CodeOf(err) == code
}
