// Package konica drives Konica Minolta LS-150/LS-160 luminance meters
// and CS-150/CS-160 color meters through the vendor LC-MISDK call
// surface. A Device owns one instrument session: it validates every
// setting against its closed mode set before the vendor sees it,
// translates vendor enums and return codes at the boundary, and runs the
// measurement wait loop.
//
// Typical usage:
//
//	sdk, err := misdkbridge.Dial(ctx, misdkbridge.Config{Address: addr}, logger)
//	if err != nil { ... }
//	dev, err := konica.NewDevice(sdk, konica.Config{}, logger)
//	if err != nil { ... }
//	defer dev.Close()
//	if err := dev.Connect(ctx); err != nil { ... }
//	if err := dev.Measure(ctx, true); err != nil { ... }
//	lv, err := dev.Luminance(ctx)
package konica

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/MichaelHengge/konica-lscs/misdk"
)

const (
	defaultPollInterval = 100 * time.Millisecond
	defaultSettleDelay  = 200 * time.Millisecond
)

// Config configures a Device. The zero value is usable: port 0
// (first connected instrument), 100 ms poll interval, 200 ms settle
// delay, and no measurement timeout.
type Config struct {
	// ComPort is the virtual COM port of the instrument; 0 selects the
	// first connected instrument.
	ComPort int
	// PollInterval is the delay between measurement status polls.
	PollInterval time.Duration
	// SettleDelay is applied after the instrument reports idle and
	// before Measure returns, favoring read-after-measure correctness
	// over latency.
	SettleDelay time.Duration
	// MeasureTimeout bounds how long Measure and WaitForIdle wait for
	// the instrument to leave the measuring state. Zero means wait
	// until the context is done, which preserves the instrument-trusting
	// behavior of the vendor tooling.
	MeasureTimeout time.Duration
	// Clock is substitutable for tests; defaults to the wall clock.
	Clock clock.Clock
}

// Validate checks the config and fills in defaults.
func (c *Config) Validate() error {
	if c.ComPort < 0 {
		return errors.New("com port cannot be negative")
	}
	if c.PollInterval < 0 || c.SettleDelay < 0 || c.MeasureTimeout < 0 {
		return errors.New("durations cannot be negative")
	}
	if c.PollInterval == 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.SettleDelay == 0 {
		c.SettleDelay = defaultSettleDelay
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

// Device is the facade over one instrument. A Device is safe for use
// from multiple goroutines; d.mu guards the session state, while vendor
// calls are serialized by the SDK implementation underneath (the bridge
// allows one request in flight, the fake locks its store).
type Device struct {
	mu        sync.Mutex
	sdk       misdk.SDK
	cfg       Config
	clock     clock.Clock
	logger    golog.Logger
	connected bool
}

// NewDevice builds a Device over the given vendor call surface. It does
// not touch the instrument; call Connect.
func NewDevice(sdk misdk.SDK, cfg Config, logger golog.Logger) (*Device, error) {
	if sdk == nil {
		return nil, errors.New("no SDK provided")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid device config")
	}
	if logger == nil {
		logger = golog.NewLogger("konica")
	}
	return &Device{
		sdk:    sdk,
		cfg:    cfg,
		clock:  cfg.Clock,
		logger: logger,
	}, nil
}

// port returns the configured virtual COM port.
func (d *Device) port() int {
	return d.cfg.ComPort
}

// Connect opens the session to the instrument.
func (d *Device) Connect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	res, err := d.sdk.Connect(ctx, d.port())
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	if err := res.Err("Connect"); err != nil {
		return err
	}
	d.connected = true
	d.logger.Debugw("connected", "com_port", d.port())
	return nil
}

// Disconnect closes the session. The vendor can report failure here
// (ErDisConnectFailed); that error is returned, but the session is
// considered closed either way.
func (d *Device) Disconnect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.connected = false
	res, err := d.sdk.Disconnect(ctx, d.port())
	if err != nil {
		return errors.Wrap(err, "disconnect")
	}
	return res.Err("DisConnect")
}

// Close releases the session and, when the SDK owns a transport (the
// interop bridge does), closes it too. Vendor-reported disconnect
// failures are suppressed so teardown always completes; they are logged
// at debug level. Close is the context-manager exit of this API: safe
// to call after a failed Connect and safe to call twice.
func (d *Device) Close() error {
	d.mu.Lock()
	wasConnected := d.connected
	d.connected = false
	d.mu.Unlock()

	if wasConnected {
		if res, err := d.sdk.Disconnect(context.Background(), d.port()); err != nil {
			d.logger.Debugw("disconnect during close", "error", err)
		} else if err := res.Err("DisConnect"); err != nil {
			d.logger.Debugw("disconnect during close", "error", err)
		}
	}

	var err error
	if closer, ok := d.sdk.(io.Closer); ok {
		err = multierr.Append(err, closer.Close())
	}
	return err
}

// Connected reports whether Connect succeeded and no disconnect has
// happened since. It does not probe the instrument.
func (d *Device) Connected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connected
}

// DeviceList enumerates attached instruments as a map from virtual COM
// port to a device string like "CS-150(10001234)".
func (d *Device) DeviceList(ctx context.Context) (map[int]string, error) {
	res, devices, err := d.sdk.DeviceList(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "device list")
	}
	if err := res.Err("GetDeviceList"); err != nil {
		return nil, err
	}
	return devices, nil
}

// DeviceInfo reads the instrument identity snapshot: product name,
// serial number, firmware triple, and periodic calibration status.
func (d *Device) DeviceInfo(ctx context.Context) (misdk.DeviceInfo, error) {
	res, info, err := d.sdk.DeviceInfo(ctx, d.port())
	if err != nil {
		return misdk.DeviceInfo{}, errors.Wrap(err, "device info")
	}
	if err := res.Err("GetDeviceInfo"); err != nil {
		return misdk.DeviceInfo{}, err
	}
	return info, nil
}

// SDKVersion reads the vendor library version.
func (d *Device) SDKVersion(ctx context.Context) (string, error) {
	res, version, err := d.sdk.SDKVersion(ctx)
	if err != nil {
		return "", errors.Wrap(err, "sdk version")
	}
	if err := res.Err("GetSDKVersion"); err != nil {
		return "", err
	}
	return version, nil
}
