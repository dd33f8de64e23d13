package konica_test

import (
	"context"
	"testing"
	"time"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	konica "github.com/MichaelHengge/konica-lscs"
	"github.com/MichaelHengge/konica-lscs/misdk"
	"github.com/MichaelHengge/konica-lscs/misdk/fake"
)

// fastConfig keeps the wait loop quick in tests that run it for real.
func fastConfig() konica.Config {
	return konica.Config{
		PollInterval: time.Millisecond,
		SettleDelay:  time.Millisecond,
	}
}

func newDevice(t *testing.T, sdk misdk.SDK, cfg konica.Config) *konica.Device {
	t.Helper()
	logger := golog.NewTestLogger(t)
	dev, err := konica.NewDevice(sdk, cfg, logger)
	test.That(t, err, test.ShouldBeNil)
	return dev
}

// connectedFake returns a connected Device over a fresh fake instrument.
func connectedFake(t *testing.T) (*konica.Device, *fake.SDK) {
	t.Helper()
	sdk := fake.New()
	sdk.SetMeasureDuration(10 * time.Millisecond)
	dev := newDevice(t, sdk, fastConfig())
	test.That(t, dev.Connect(context.Background()), test.ShouldBeNil)
	return dev, sdk
}

func TestConfigValidate(t *testing.T) {
	cfg := konica.Config{}
	test.That(t, cfg.Validate(), test.ShouldBeNil)
	test.That(t, cfg.PollInterval, test.ShouldEqual, 100*time.Millisecond)
	test.That(t, cfg.SettleDelay, test.ShouldEqual, 200*time.Millisecond)
	test.That(t, cfg.MeasureTimeout, test.ShouldEqual, time.Duration(0))
	test.That(t, cfg.Clock, test.ShouldNotBeNil)

	bad := konica.Config{ComPort: -1}
	test.That(t, bad.Validate(), test.ShouldNotBeNil)
	bad = konica.Config{PollInterval: -time.Second}
	test.That(t, bad.Validate(), test.ShouldNotBeNil)
	bad = konica.Config{MeasureTimeout: -time.Second}
	test.That(t, bad.Validate(), test.ShouldNotBeNil)
}

func TestNewDeviceRequiresSDK(t *testing.T) {
	_, err := konica.NewDevice(nil, konica.Config{}, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestConnectDisconnect(t *testing.T) {
	sdk := fake.New()
	dev := newDevice(t, sdk, konica.Config{})
	ctx := context.Background()

	test.That(t, dev.Connected(), test.ShouldBeFalse)
	test.That(t, dev.Connect(ctx), test.ShouldBeNil)
	test.That(t, dev.Connected(), test.ShouldBeTrue)
	test.That(t, sdk.Connected(), test.ShouldBeTrue)

	test.That(t, dev.Disconnect(ctx), test.ShouldBeNil)
	test.That(t, dev.Connected(), test.ShouldBeFalse)
	test.That(t, sdk.Connected(), test.ShouldBeFalse)
}

func TestConnectFailure(t *testing.T) {
	sdk := fake.New()
	sdk.InjectError("Connect", misdk.ErConnectFailed)
	dev := newDevice(t, sdk, konica.Config{})

	err := dev.Connect(context.Background())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, misdk.IsCode(err, misdk.ErConnectFailed), test.ShouldBeTrue)
	test.That(t, dev.Connected(), test.ShouldBeFalse)

	// close after a failed connect is a no-op
	test.That(t, dev.Close(), test.ShouldBeNil)
	test.That(t, sdk.Connected(), test.ShouldBeFalse)
}

func TestCloseSuppressesDisconnectFailure(t *testing.T) {
	dev, sdk := connectedFake(t)
	sdk.InjectError("Disconnect", misdk.ErDisConnectFailed)

	test.That(t, dev.Close(), test.ShouldBeNil)
	test.That(t, dev.Connected(), test.ShouldBeFalse)

	// and close is safe to call twice
	test.That(t, dev.Close(), test.ShouldBeNil)
}

type closeRecorder struct {
	misdk.SDK
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestCloseClosesTransport(t *testing.T) {
	rec := &closeRecorder{SDK: fake.New()}
	dev := newDevice(t, rec, konica.Config{})
	test.That(t, dev.Connect(context.Background()), test.ShouldBeNil)

	test.That(t, dev.Close(), test.ShouldBeNil)
	test.That(t, rec.closed, test.ShouldEqual, 1)
}

func TestDeviceList(t *testing.T) {
	dev, _ := connectedFake(t)
	defer dev.Close()

	devices, err := dev.DeviceList(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, devices, test.ShouldResemble, map[int]string{1: "CS-150(10001234)"})
}

func TestDeviceInfo(t *testing.T) {
	dev, sdk := connectedFake(t)
	defer dev.Close()
	sdk.SetDeviceInfo(misdk.DeviceInfo{
		ProductName:        "LS-160",
		SerialNumber:       "20005678",
		FirmwareMajor:      "2",
		FirmwareMinor:      "01",
		FirmwareFree:       "0000",
		CalibrationWarning: true,
	})

	info, err := dev.DeviceInfo(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.ProductName, test.ShouldEqual, "LS-160")
	test.That(t, info.SerialNumber, test.ShouldEqual, "20005678")
	test.That(t, info.CalibrationWarning, test.ShouldBeTrue)
}

func TestSDKVersion(t *testing.T) {
	dev, _ := connectedFake(t)
	defer dev.Close()

	version, err := dev.SDKVersion(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, version, test.ShouldEqual, "1.2.0.0 (fake)")
}

func TestCallWithoutConnect(t *testing.T) {
	sdk := fake.New()
	dev := newDevice(t, sdk, konica.Config{})

	_, err := dev.Luminance(context.Background())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, misdk.IsCode(err, misdk.ErNoConnect), test.ShouldBeTrue)
}
