// Package misdkbridge implements the vendor call surface over a TCP
// connection to the interop host, the vendor-side process that loads the
// LC-MISDK assembly and exposes it as newline-delimited JSON requests.
// The instrument wire protocol never appears here; the host and the
// vendor binary own it.
//
// The protocol is strictly request/response with one call in flight at a
// time, matching the serial nature of the vendor surface: the client
// writes {"id","method","params"} and reads back
// {"id","result":{"code","messages"},"payload"}.
package misdkbridge

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/MichaelHengge/konica-lscs/misdk"
)

// protocolVersion is the bridge protocol this client speaks. The host
// rejects the hello when it cannot serve it.
const protocolVersion = 1

const (
	defaultDialTimeout    = 5 * time.Second
	defaultRequestTimeout = 30 * time.Second
)

// Config configures a bridge client.
type Config struct {
	// Address of the interop host, host:port.
	Address string
	// DialTimeout bounds connection establishment. Defaults to 5s.
	DialTimeout time.Duration
	// RequestTimeout bounds each call when the caller's context carries
	// no deadline. Defaults to 30s; manual measurements can hold the
	// host for several seconds.
	RequestTimeout time.Duration
}

// Validate checks the config and fills in defaults.
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("address is required")
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = defaultDialTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	return nil
}

// Client is a misdk.SDK backed by the interop host.
type Client struct {
	mu     sync.Mutex
	cfg    Config
	conn   net.Conn
	reader *bufio.Reader
	logger golog.Logger

	hostVersion string
}

var _ misdk.SDK = (*Client)(nil)

// Dial connects to the interop host and performs the hello exchange.
func Dial(ctx context.Context, cfg Config, logger golog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "misdkbridge")
	}
	dialer := net.Dialer{Timeout: cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Address)
	if err != nil {
		return nil, errors.Wrapf(err, "misdkbridge: cannot reach interop host at %s", cfg.Address)
	}
	c := &Client{
		cfg:    cfg,
		conn:   conn,
		reader: bufio.NewReader(conn),
		logger: logger,
	}

	var hello struct {
		Protocol   int    `json:"protocol"`
		SDKVersion string `json:"sdkVersion"`
	}
	res, err := c.call(ctx, "Hello", map[string]int{"protocol": protocolVersion}, &hello)
	if err != nil {
		return nil, multierr.Combine(errors.Wrap(err, "misdkbridge: hello exchange"), conn.Close())
	}
	if err := res.Err("Hello"); err != nil {
		return nil, multierr.Combine(err, conn.Close())
	}
	if hello.Protocol != protocolVersion {
		return nil, multierr.Combine(
			errors.Errorf("misdkbridge: host speaks protocol %d, want %d", hello.Protocol, protocolVersion),
			conn.Close(),
		)
	}
	c.hostVersion = hello.SDKVersion
	logger.Debugw("connected to interop host", "address", cfg.Address, "sdk_version", hello.SDKVersion)
	return c, nil
}

// HostVersion reports the vendor library version the host announced.
func (c *Client) HostVersion() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hostVersion
}

// Close tears down the connection. Calls made afterwards fail without
// touching the network.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil
	c.reader = nil
	return conn.Close()
}

type request struct {
	ID     string      `json:"id"`
	Method string      `json:"method"`
	Params interface{} `json:"params,omitempty"`
}

type response struct {
	ID      string          `json:"id"`
	Result  misdk.Result    `json:"result"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// fault tears down the connection after a transport fault. Once a write
// or read has gone wrong the stream may hold a partial request or a late
// reply, so every later call would consume the wrong line; failing fast
// with a closed client beats answering one call with another's response.
// Callers hold mu.
func (c *Client) fault(err error) error {
	if c.conn != nil {
		err = multierr.Combine(err, c.conn.Close())
		c.conn = nil
		c.reader = nil
	}
	return err
}

// call performs one request/response round trip. A returned error is a
// transport fault; vendor failures live in the Result envelope.
func (c *Client) call(ctx context.Context, method string, params, payload interface{}) (misdk.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return misdk.Result{}, errors.Errorf("misdkbridge: %s on closed client", method)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.cfg.RequestTimeout)
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return misdk.Result{}, c.fault(errors.Wrapf(err, "misdkbridge: %s", method))
	}

	req := request{ID: uuid.NewString(), Method: method, Params: params}
	buf, err := json.Marshal(req)
	if err != nil {
		return misdk.Result{}, errors.Wrapf(err, "misdkbridge: encode %s", method)
	}
	if _, err := c.conn.Write(append(buf, '\n')); err != nil {
		return misdk.Result{}, c.fault(errors.Wrapf(err, "misdkbridge: send %s", method))
	}

	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return misdk.Result{}, c.fault(errors.Wrapf(err, "misdkbridge: receive %s", method))
	}
	var resp response
	if err := json.Unmarshal(line, &resp); err != nil {
		return misdk.Result{}, errors.Wrapf(err, "misdkbridge: decode %s", method)
	}
	if resp.ID != req.ID {
		return misdk.Result{}, c.fault(errors.Errorf("misdkbridge: %s response id mismatch", method))
	}
	if payload != nil && len(resp.Payload) > 0 {
		if err := json.Unmarshal(resp.Payload, payload); err != nil {
			return misdk.Result{}, errors.Wrapf(err, "misdkbridge: decode %s payload", method)
		}
	}
	if c.logger != nil {
		c.logger.Debugw("bridge call", "method", method, "code", int(resp.Result.Code))
	}
	return resp.Result, nil
}

type portParams struct {
	ComPort int `json:"comPort"`
}

// Connect opens the instrument session on the host.
func (c *Client) Connect(ctx context.Context, comPort int) (misdk.Result, error) {
	return c.call(ctx, "Connect", portParams{comPort}, nil)
}

// Disconnect releases the instrument session on the host.
func (c *Client) Disconnect(ctx context.Context, comPort int) (misdk.Result, error) {
	return c.call(ctx, "DisConnect", portParams{comPort}, nil)
}

// DeviceList enumerates instruments attached to the host.
func (c *Client) DeviceList(ctx context.Context) (misdk.Result, map[int]string, error) {
	var payload struct {
		Devices map[int]string `json:"devices"`
	}
	res, err := c.call(ctx, "GetDeviceList", nil, &payload)
	return res, payload.Devices, err
}

// Measure starts a measurement.
func (c *Client) Measure(ctx context.Context, comPort int) (misdk.Result, error) {
	return c.call(ctx, "Measure", portParams{comPort}, nil)
}

// PollingMeasurement reports the measurement state.
func (c *Client) PollingMeasurement(ctx context.Context, comPort int) (misdk.Result, misdk.MeasStatus, error) {
	var payload struct {
		Status misdk.MeasStatus `json:"status"`
	}
	res, err := c.call(ctx, "PollingMeasurement", portParams{comPort}, &payload)
	return res, payload.Status, err
}

// CancelMeasurement cancels an in-progress measurement.
func (c *Client) CancelMeasurement(ctx context.Context, comPort int) (misdk.Result, error) {
	return c.call(ctx, "CancelMeasurement", portParams{comPort}, nil)
}

type spaceParams struct {
	Space   misdk.ColorSpace `json:"space"`
	ComPort int              `json:"comPort"`
}

type valuesPayload struct {
	Values misdk.ColorValues `json:"values"`
}

// ReadLatestData reads the last measurement in the given color space.
func (c *Client) ReadLatestData(ctx context.Context, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error) {
	var payload valuesPayload
	res, err := c.call(ctx, "ReadLatestData", spaceParams{space, comPort}, &payload)
	return res, payload.Values, err
}

// ReadDisplayValue reads the values currently shown on the instrument.
func (c *Client) ReadDisplayValue(ctx context.Context, comPort int) (misdk.Result, misdk.ColorValues, error) {
	var payload valuesPayload
	res, err := c.call(ctx, "ReadDisplayValue", portParams{comPort}, &payload)
	return res, payload.Values, err
}

// NumberOfSamples reports how many measurements the instrument stores.
func (c *Client) NumberOfSamples(ctx context.Context, comPort int) (misdk.Result, int, error) {
	var payload struct {
		Count int `json:"count"`
	}
	res, err := c.call(ctx, "GetNumberOfSampleData", portParams{comPort}, &payload)
	return res, payload.Count, err
}

type sampleParams struct {
	Number  int              `json:"number"`
	Space   misdk.ColorSpace `json:"space"`
	ComPort int              `json:"comPort"`
}

// ReadSampleData reads a stored sample (1-based).
func (c *Client) ReadSampleData(ctx context.Context, number int, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error) {
	var payload valuesPayload
	res, err := c.call(ctx, "ReadSampleData", sampleParams{number, space, comPort}, &payload)
	return res, payload.Values, err
}

type numberParams struct {
	Number  int `json:"number"`
	ComPort int `json:"comPort"`
}

// DeleteSampleData deletes a stored sample, or all of them for -1.
func (c *Client) DeleteSampleData(ctx context.Context, number, comPort int) (misdk.Result, error) {
	return c.call(ctx, "DeleteSampleData", numberParams{number, comPort}, nil)
}

type channelParams struct {
	Channel int `json:"channel"`
	ComPort int `json:"comPort"`
}

// SetTargetChannel selects the active target channel.
func (c *Client) SetTargetChannel(ctx context.Context, channel, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetTargetCh", channelParams{channel, comPort}, nil)
}

// TargetChannel reports the active target channel.
func (c *Client) TargetChannel(ctx context.Context, comPort int) (misdk.Result, int, error) {
	var payload struct {
		Channel int `json:"channel"`
	}
	res, err := c.call(ctx, "GetTargetCh", portParams{comPort}, &payload)
	return res, payload.Channel, err
}

type targetReadParams struct {
	Channel int              `json:"channel"`
	Space   misdk.ColorSpace `json:"space"`
	ComPort int              `json:"comPort"`
}

// ReadTargetData reads the target stored in a channel.
func (c *Client) ReadTargetData(ctx context.Context, channel int, space misdk.ColorSpace, comPort int) (misdk.Result, misdk.ColorValues, error) {
	var payload valuesPayload
	res, err := c.call(ctx, "ReadTargetData", targetReadParams{channel, space, comPort}, &payload)
	return res, payload.Values, err
}

type targetWriteParams struct {
	Channel int              `json:"channel"`
	Data    misdk.TargetData `json:"data"`
	ComPort int              `json:"comPort"`
}

// WriteTargetData stores target data in a channel.
func (c *Client) WriteTargetData(ctx context.Context, channel int, data misdk.TargetData, comPort int) (misdk.Result, error) {
	return c.call(ctx, "WriteTargetData", targetWriteParams{channel, data, comPort}, nil)
}

// DeleteTargetData deletes a target channel, or all of them for -1.
func (c *Client) DeleteTargetData(ctx context.Context, channel, comPort int) (misdk.Result, error) {
	return c.call(ctx, "DeleteTargetData", channelParams{channel, comPort}, nil)
}

// SetCalibrationChannel selects the user calibration channel.
func (c *Client) SetCalibrationChannel(ctx context.Context, channel, comPort int) (misdk.Result, error) {
	return c.call(ctx, "SetCalibrationCh", channelParams{channel, comPort}, nil)
}

// CalibrationChannel reports the user calibration channel.
func (c *Client) CalibrationChannel(ctx context.Context, comPort int) (misdk.Result, int, error) {
	var payload struct {
		Channel int `json:"channel"`
	}
	res, err := c.call(ctx, "GetCalibrationCh", portParams{comPort}, &payload)
	return res, payload.Channel, err
}

type matrixCalibParams struct {
	Channel  int                `json:"channel"`
	Measured []misdk.TargetData `json:"measured"`
	True     []misdk.TargetData `json:"true"`
	Type     misdk.CalibType    `json:"type"`
	ID       string             `json:"id"`
	ComPort  int                `json:"comPort"`
}

// SetMatrixCalibration stores a user calibration matrix.
func (c *Client) SetMatrixCalibration(
	ctx context.Context,
	channel int,
	measured, truth []misdk.TargetData,
	calibType misdk.CalibType,
	id string,
	comPort int,
) (misdk.Result, error) {
	return c.call(ctx, "SetMatrixCalib", matrixCalibParams{channel, measured, truth, calibType, id, comPort}, nil)
}

// CalibrationData reads the parameters of a user calibration channel.
func (c *Client) CalibrationData(ctx context.Context, channel, comPort int) (misdk.Result, misdk.CalibrationData, error) {
	var payload struct {
		Data misdk.CalibrationData `json:"data"`
	}
	res, err := c.call(ctx, "GetCalibData", channelParams{channel, comPort}, &payload)
	return res, payload.Data, err
}

// DeleteCalibrationData deletes a user calibration channel, or all for -1.
func (c *Client) DeleteCalibrationData(ctx context.Context, channel, comPort int) (misdk.Result, error) {
	return c.call(ctx, "DeleteCalibData", channelParams{channel, comPort}, nil)
}

// DeviceInfo reads the instrument identity snapshot.
func (c *Client) DeviceInfo(ctx context.Context, comPort int) (misdk.Result, misdk.DeviceInfo, error) {
	var payload struct {
		Info misdk.DeviceInfo `json:"info"`
	}
	res, err := c.call(ctx, "GetDeviceInfo", portParams{comPort}, &payload)
	return res, payload.Info, err
}

// SDKVersion reads the vendor library version from the host.
func (c *Client) SDKVersion(ctx context.Context) (misdk.Result, string, error) {
	var payload struct {
		Version string `json:"version"`
	}
	res, err := c.call(ctx, "GetSDKVersion", nil, &payload)
	return res, payload.Version, err
}
