// Package inject provides an injectable vendor SDK for tests: set the
// Func fields you care about and embed a real implementation (usually
// the fake instrument) for everything else.
package inject

import (
	"context"

	"github.com/MichaelHengge/konica-lscs/misdk"
)

// SDK is an injected vendor SDK.
type SDK struct {
	misdk.SDK
	ConnectFunc            func(ctx context.Context, comPort int) (misdk.Result, error)
	DisconnectFunc         func(ctx context.Context, comPort int) (misdk.Result, error)
	DeviceListFunc         func(ctx context.Context) (misdk.Result, map[int]string, error)
	MeasureFunc            func(ctx context.Context, comPort int) (misdk.Result, error)
	PollingMeasurementFunc func(ctx context.Context, comPort int) (misdk.Result, misdk.MeasStatus, error)
	CancelMeasurementFunc  func(ctx context.Context, comPort int) (misdk.Result, error)
	ReadLatestDataFunc     func(ctx context.Context, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error)
	ReadDisplayValueFunc   func(ctx context.Context, comPort int) (misdk.Result, misdk.ColorValues, error)
	NumberOfSamplesFunc    func(ctx context.Context, comPort int) (misdk.Result, int, error)
	ReadSampleDataFunc     func(ctx context.Context, number int, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error)
	DeleteSampleDataFunc   func(ctx context.Context, number, comPort int) (misdk.Result, error)
	DeviceInfoFunc         func(ctx context.Context, comPort int) (misdk.Result, misdk.DeviceInfo, error)
	SDKVersionFunc         func(ctx context.Context) (misdk.Result, string, error)
}

// Connect calls the injected Connect or the real version.
func (s *SDK) Connect(ctx context.Context, comPort int) (misdk.Result, error) {
	if s.ConnectFunc == nil {
		return s.SDK.Connect(ctx, comPort)
	}
	return s.ConnectFunc(ctx, comPort)
}

// Disconnect calls the injected Disconnect or the real version.
func (s *SDK) Disconnect(ctx context.Context, comPort int) (misdk.Result, error) {
	if s.DisconnectFunc == nil {
		return s.SDK.Disconnect(ctx, comPort)
	}
	return s.DisconnectFunc(ctx, comPort)
}

// DeviceList calls the injected DeviceList or the real version.
func (s *SDK) DeviceList(ctx context.Context) (misdk.Result, map[int]string, error) {
	if s.DeviceListFunc == nil {
		return s.SDK.DeviceList(ctx)
	}
	return s.DeviceListFunc(ctx)
}

// Measure calls the injected Measure or the real version.
func (s *SDK) Measure(ctx context.Context, comPort int) (misdk.Result, error) {
	if s.MeasureFunc == nil {
		return s.SDK.Measure(ctx, comPort)
	}
	return s.MeasureFunc(ctx, comPort)
}

// PollingMeasurement calls the injected PollingMeasurement or the real
// version.
func (s *SDK) PollingMeasurement(ctx context.Context, comPort int) (misdk.Result, misdk.MeasStatus, error) {
	if s.PollingMeasurementFunc == nil {
		return s.SDK.PollingMeasurement(ctx, comPort)
	}
	return s.PollingMeasurementFunc(ctx, comPort)
}

// CancelMeasurement calls the injected CancelMeasurement or the real
// version.
func (s *SDK) CancelMeasurement(ctx context.Context, comPort int) (misdk.Result, error) {
	if s.CancelMeasurementFunc == nil {
		return s.SDK.CancelMeasurement(ctx, comPort)
	}
	return s.CancelMeasurementFunc(ctx, comPort)
}

// ReadLatestData calls the injected ReadLatestData or the real version.
func (s *SDK) ReadLatestData(ctx context.Context, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error) {
	if s.ReadLatestDataFunc == nil {
		return s.SDK.ReadLatestData(ctx, space, comPort)
	}
	return s.ReadLatestDataFunc(ctx, space, comPort)
}

// ReadDisplayValue calls the injected ReadDisplayValue or the real
// version.
func (s *SDK) ReadDisplayValue(ctx context.Context, comPort int) (misdk.Result, misdk.ColorValues, error) {
	if s.ReadDisplayValueFunc == nil {
		return s.SDK.ReadDisplayValue(ctx, comPort)
	}
	return s.ReadDisplayValueFunc(ctx, comPort)
}

// NumberOfSamples calls the injected NumberOfSamples or the real
// version.
func (s *SDK) NumberOfSamples(ctx context.Context, comPort int) (misdk.Result, int, error) {
	if s.NumberOfSamplesFunc == nil {
		return s.SDK.NumberOfSamples(ctx, comPort)
	}
	return s.NumberOfSamplesFunc(ctx, comPort)
}

// ReadSampleData calls the injected ReadSampleData or the real version.
func (s *SDK) ReadSampleData(ctx context.Context, number int, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error) {
	if s.ReadSampleDataFunc == nil {
		return s.SDK.ReadSampleData(ctx, number, space, comPort)
	}
	return s.ReadSampleDataFunc(ctx, number, space, comPort)
}

// DeleteSampleData calls the injected DeleteSampleData or the real
// version.
func (s *SDK) DeleteSampleData(ctx context.Context, number, comPort int) (misdk.Result, error) {
	if s.DeleteSampleDataFunc == nil {
		return s.SDK.DeleteSampleData(ctx, number, comPort)
	}
	return s.DeleteSampleDataFunc(ctx, number, comPort)
}

// DeviceInfo calls the injected DeviceInfo or the real version.
func (s *SDK) DeviceInfo(ctx context.Context, comPort int) (misdk.Result, misdk.DeviceInfo, error) {
	if s.DeviceInfoFunc == nil {
		return s.SDK.DeviceInfo(ctx, comPort)
	}
	return s.DeviceInfoFunc(ctx, comPort)
}

// SDKVersion calls the injected SDKVersion or the real version.
func (s *SDK) SDKVersion(ctx context.Context) (misdk.Result, string, error) {
	if s.SDKVersionFunc == nil {
		return s.SDK.SDKVersion(ctx)
	}
	return s.SDKVersionFunc(ctx)
}
