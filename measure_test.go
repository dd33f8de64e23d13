package konica_test

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.viam.com/test"

	konica "github.com/MichaelHengge/konica-lscs"
	"github.com/MichaelHengge/konica-lscs/misdk"
	"github.com/MichaelHengge/konica-lscs/testutils/inject"
)

func TestMeasureAndRead(t *testing.T) {
	dev, _ := connectedFake(t)
	defer dev.Close()
	ctx := context.Background()

	test.That(t, dev.Measure(ctx, true), test.ShouldBeNil)

	status, err := dev.MeasurementStatus(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, status, test.ShouldEqual, konica.StatusIdling)

	lv, err := dev.Luminance(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, lv, test.ShouldEqual, 120.5)

	values, err := dev.Color(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, values["x"], test.ShouldEqual, 0.3127)
	test.That(t, values["y"], test.ShouldEqual, 0.3290)
}

func TestMeasureNoWait(t *testing.T) {
	dev, sdk := connectedFake(t)
	defer dev.Close()
	sdk.SetMeasureDuration(time.Minute)
	ctx := context.Background()

	test.That(t, dev.Measure(ctx, false), test.ShouldBeNil)

	status, err := dev.MeasurementStatus(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, status, test.ShouldEqual, konica.StatusMeasuring)

	test.That(t, dev.CancelMeasurement(ctx), test.ShouldBeNil)
	status, err = dev.MeasurementStatus(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, status, test.ShouldEqual, konica.StatusIdling)
}

func TestMeasureVendorFailure(t *testing.T) {
	dev, sdk := connectedFake(t)
	defer dev.Close()
	sdk.InjectError("Measure", misdk.ErInstrumentProcessing)

	err := dev.Measure(context.Background(), true)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, misdk.IsCode(err, misdk.ErInstrumentProcessing), test.ShouldBeTrue)
}

func TestWaitForIdleTimeout(t *testing.T) {
	mock := clock.NewMock()
	sdk := &inject.SDK{}
	polls := 0
	sdk.PollingMeasurementFunc = func(ctx context.Context, comPort int) (misdk.Result, misdk.MeasStatus, error) {
		polls++
		mock.Add(6 * time.Second)
		return misdk.Success(), misdk.StatusMeasuring, nil
	}
	dev := newDevice(t, sdk, konica.Config{
		PollInterval:   time.Millisecond,
		MeasureTimeout: 10 * time.Second,
		Clock:          mock,
	})

	err := dev.WaitForIdle(context.Background())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, misdk.IsCode(err, misdk.ErMeasurementFailed), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "did not leave the measuring state")
	test.That(t, polls, test.ShouldEqual, 2)
}

func TestWaitForIdleContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sdk := &inject.SDK{}
	sdk.PollingMeasurementFunc = func(ctx context.Context, comPort int) (misdk.Result, misdk.MeasStatus, error) {
		cancel()
		return misdk.Success(), misdk.StatusMeasuring, nil
	}
	dev := newDevice(t, sdk, fastConfig())

	err := dev.WaitForIdle(ctx)
	test.That(t, err, test.ShouldEqual, context.Canceled)
}

func TestWaitForIdleUnboundedReturnsOnIdle(t *testing.T) {
	sdk := &inject.SDK{}
	polls := 0
	sdk.PollingMeasurementFunc = func(ctx context.Context, comPort int) (misdk.Result, misdk.MeasStatus, error) {
		polls++
		if polls < 3 {
			return misdk.Success(), misdk.StatusMeasuring, nil
		}
		return misdk.Success(), misdk.StatusIdling, nil
	}
	dev := newDevice(t, sdk, fastConfig())

	test.That(t, dev.WaitForIdle(context.Background()), test.ShouldBeNil)
	test.That(t, polls, test.ShouldEqual, 3)
}

func TestMeasurementStatusUnknown(t *testing.T) {
	sdk := &inject.SDK{}
	sdk.PollingMeasurementFunc = func(ctx context.Context, comPort int) (misdk.Result, misdk.MeasStatus, error) {
		return misdk.Success(), misdk.MeasStatus(99), nil
	}
	dev := newDevice(t, sdk, konica.Config{})

	status, err := dev.MeasurementStatus(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, status, test.ShouldEqual, konica.StatusUnknown)
}

func TestLuminanceChannelPrecedence(t *testing.T) {
	dev, sdk := connectedFake(t)
	defer dev.Close()
	ctx := context.Background()

	sdk.SetDisplay(misdk.ColorValues{"Lv": 80.25, "x": 0.3, "y": 0.3})
	lv, err := dev.Luminance(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, lv, test.ShouldEqual, 80.25)

	// XYZ display modes carry luminance in Y
	sdk.SetDisplay(misdk.ColorValues{"X": 95.0, "Y": 100.0, "Z": 108.0})
	lv, err = dev.Luminance(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, lv, test.ShouldEqual, 100.0)

	sdk.SetDisplay(misdk.ColorValues{"Tcp": 6500})
	_, err = dev.Luminance(ctx)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, misdk.IsCode(err, misdk.ErNoData), test.ShouldBeTrue)
}

func TestReadLatestData(t *testing.T) {
	dev, _ := connectedFake(t)
	defer dev.Close()
	ctx := context.Background()

	// nothing measured yet
	_, err := dev.ReadLatestData(ctx, konica.ColorModeLvxy)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, misdk.IsCode(err, misdk.ErNoData), test.ShouldBeTrue)

	test.That(t, dev.Measure(ctx, true), test.ShouldBeNil)
	values, err := dev.ReadLatestData(ctx, konica.ColorModeLvxy)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, values["Lv"], test.ShouldEqual, 120.5)

	xyz, err := dev.ReadLatestXYZ(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, xyz["Y"], test.ShouldEqual, 120.5)
}

func TestReadLatestDataInvalidMode(t *testing.T) {
	sdk := &inject.SDK{}
	called := false
	sdk.ReadLatestDataFunc = func(ctx context.Context, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error) {
		called = true
		return misdk.Success(), nil, nil
	}
	dev := newDevice(t, sdk, konica.Config{})

	_, err := dev.ReadLatestData(context.Background(), konica.ColorMode("bogus"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, misdk.IsCode(err, misdk.ErInvalidParameter), test.ShouldBeTrue)
	test.That(t, called, test.ShouldBeFalse)
}
