package misdkbridge_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/MichaelHengge/konica-lscs/misdk"
	"github.com/MichaelHengge/konica-lscs/misdk/misdkbridge"
)

type hostRequest struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

type hostResponse struct {
	ID      string       `json:"id"`
	Result  misdk.Result `json:"result"`
	Payload interface{}  `json:"payload,omitempty"`
}

// testHost is a minimal interop host: one connection, one line-delimited
// JSON request at a time, answers built by handle.
type testHost struct {
	listener net.Listener
	done     chan struct{}
}

func startHost(t *testing.T, handle func(req hostRequest) hostResponse) *testHost {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	test.That(t, err, test.ShouldBeNil)
	h := &testHost{listener: listener, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		reader := bufio.NewReader(conn)
		for {
			line, err := reader.ReadBytes('\n')
			if err != nil {
				return
			}
			var req hostRequest
			if err := json.Unmarshal(line, &req); err != nil {
				return
			}
			var resp hostResponse
			if req.Method == "Hello" {
				resp = hostResponse{
					Result:  misdk.Success(),
					Payload: map[string]interface{}{"protocol": 1, "sdkVersion": "1.2.0.0"},
				}
			} else {
				resp = handle(req)
			}
			resp.ID = req.ID
			buf, err := json.Marshal(resp)
			if err != nil {
				return
			}
			if _, err := conn.Write(append(buf, '\n')); err != nil {
				return
			}
		}
	}()
	t.Cleanup(func() {
		listener.Close()
		<-h.done
	})
	return h
}

func (h *testHost) addr() string {
	return h.listener.Addr().String()
}

func dialHost(t *testing.T, h *testHost) *misdkbridge.Client {
	t.Helper()
	logger := golog.NewTestLogger(t)
	client, err := misdkbridge.Dial(context.Background(), misdkbridge.Config{Address: h.addr()}, logger)
	test.That(t, err, test.ShouldBeNil)
	return client
}

func TestDialHello(t *testing.T) {
	h := startHost(t, func(req hostRequest) hostResponse {
		return hostResponse{Result: misdk.Success()}
	})
	client := dialHost(t, h)
	defer client.Close()
	test.That(t, client.HostVersion(), test.ShouldEqual, "1.2.0.0")
}

func TestDialNoHost(t *testing.T) {
	logger := golog.NewTestLogger(t)
	_, err := misdkbridge.Dial(context.Background(), misdkbridge.Config{
		Address:     "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	}, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot reach interop host")
}

func TestDialRequiresAddress(t *testing.T) {
	logger := golog.NewTestLogger(t)
	_, err := misdkbridge.Dial(context.Background(), misdkbridge.Config{}, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "address is required")
}

func TestVendorResultPassthrough(t *testing.T) {
	h := startHost(t, func(req hostRequest) hostResponse {
		switch req.Method {
		case "Connect":
			var params struct {
				ComPort int `json:"comPort"`
			}
			if err := json.Unmarshal(req.Params, &params); err != nil || params.ComPort != 3 {
				return hostResponse{Result: misdk.Result{Code: misdk.ErInvalidParameter}}
			}
			return hostResponse{Result: misdk.Success()}
		case "Measure":
			return hostResponse{Result: misdk.Result{
				Code:     misdk.ErInstrumentProcessing,
				Messages: []string{"busy"},
			}}
		default:
			return hostResponse{Result: misdk.Result{Code: misdk.ErCannotCommand}}
		}
	})
	client := dialHost(t, h)
	defer client.Close()
	ctx := context.Background()

	res, err := client.Connect(ctx, 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)

	// a vendor failure is not a transport error
	res, err = client.Measure(ctx, 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErInstrumentProcessing)
	test.That(t, res.Messages, test.ShouldResemble, []string{"busy"})
}

func TestPayloadDecoding(t *testing.T) {
	h := startHost(t, func(req hostRequest) hostResponse {
		switch req.Method {
		case "GetDeviceList":
			return hostResponse{
				Result:  misdk.Success(),
				Payload: map[string]interface{}{"devices": map[string]string{"1": "CS-150(10001234)"}},
			}
		case "PollingMeasurement":
			return hostResponse{
				Result:  misdk.Success(),
				Payload: map[string]interface{}{"status": int(misdk.StatusMeasuring)},
			}
		case "ReadDisplayValue":
			return hostResponse{
				Result:  misdk.Success(),
				Payload: map[string]interface{}{"values": map[string]float64{"Lv": 120.5, "x": 0.3127, "y": 0.3290}},
			}
		case "GetNumberOfSampleData":
			return hostResponse{
				Result:  misdk.Success(),
				Payload: map[string]interface{}{"count": 7},
			}
		case "GetDeviceInfo":
			return hostResponse{
				Result: misdk.Success(),
				Payload: map[string]interface{}{"info": misdk.DeviceInfo{
					ProductName:  "LS-160",
					SerialNumber: "20005678",
				}},
			}
		case "GetSDKVersion":
			return hostResponse{
				Result:  misdk.Success(),
				Payload: map[string]interface{}{"version": "1.2.0.0"},
			}
		default:
			return hostResponse{Result: misdk.Result{Code: misdk.ErCannotCommand}}
		}
	})
	client := dialHost(t, h)
	defer client.Close()
	ctx := context.Background()

	res, devices, err := client.DeviceList(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, devices, test.ShouldResemble, map[int]string{1: "CS-150(10001234)"})

	res, status, err := client.PollingMeasurement(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, status, test.ShouldEqual, misdk.StatusMeasuring)

	res, values, err := client.ReadDisplayValue(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, values["Lv"], test.ShouldEqual, 120.5)

	res, count, err := client.NumberOfSamples(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, count, test.ShouldEqual, 7)

	res, info, err := client.DeviceInfo(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, info.ProductName, test.ShouldEqual, "LS-160")
	test.That(t, info.SerialNumber, test.ShouldEqual, "20005678")

	res, version, err := client.SDKVersion(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, version, test.ShouldEqual, "1.2.0.0")
}

func TestCallAfterClose(t *testing.T) {
	h := startHost(t, func(req hostRequest) hostResponse {
		return hostResponse{Result: misdk.Success()}
	})
	client := dialHost(t, h)
	test.That(t, client.Close(), test.ShouldBeNil)
	test.That(t, client.Close(), test.ShouldBeNil)

	_, err := client.Connect(context.Background(), 0)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "closed client")
}

// A reply carrying the wrong id means the stream no longer lines up
// with the request/response cadence; the client must drop the
// connection instead of serving later calls stale replies.
func TestResponseIDMismatchClosesClient(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	test.That(t, err, test.ShouldBeNil)
	defer listener.Close()
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		reader := bufio.NewReader(conn)
		reply := func(resp hostResponse) bool {
			buf, err := json.Marshal(resp)
			if err != nil {
				return false
			}
			_, err = conn.Write(append(buf, '\n'))
			return err == nil
		}
		// answer the hello correctly
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}
		var req hostRequest
		if err := json.Unmarshal(line, &req); err != nil {
			return
		}
		if !reply(hostResponse{
			ID:      req.ID,
			Result:  misdk.Success(),
			Payload: map[string]interface{}{"protocol": 1, "sdkVersion": "1.2.0.0"},
		}) {
			return
		}
		// answer the next request under someone else's id
		if _, err := reader.ReadBytes('\n'); err != nil {
			return
		}
		reply(hostResponse{ID: "stale-reply", Result: misdk.Success()})
	}()

	logger := golog.NewTestLogger(t)
	client, err := misdkbridge.Dial(context.Background(), misdkbridge.Config{Address: listener.Addr().String()}, logger)
	test.That(t, err, test.ShouldBeNil)
	ctx := context.Background()

	_, err = client.Connect(ctx, 0)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "response id mismatch")

	// the connection is gone; later calls fail fast without touching it
	_, err = client.Connect(ctx, 0)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "closed client")
	test.That(t, client.Close(), test.ShouldBeNil)
}

// A read timeout poisons the connection the same way: the reply may
// still arrive later, and consuming it would answer the wrong call.
func TestReceiveTimeoutClosesClient(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	test.That(t, err, test.ShouldBeNil)
	defer listener.Close()
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		reader := bufio.NewReader(conn)
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}
		var req hostRequest
		if err := json.Unmarshal(line, &req); err != nil {
			return
		}
		resp := hostResponse{
			ID:      req.ID,
			Result:  misdk.Success(),
			Payload: map[string]interface{}{"protocol": 1, "sdkVersion": "1.2.0.0"},
		}
		buf, err := json.Marshal(resp)
		if err != nil {
			return
		}
		if _, err := conn.Write(append(buf, '\n')); err != nil {
			return
		}
		// swallow everything after the hello and never answer
		for {
			if _, err := reader.ReadBytes('\n'); err != nil {
				return
			}
		}
	}()

	logger := golog.NewTestLogger(t)
	client, err := misdkbridge.Dial(context.Background(), misdkbridge.Config{Address: listener.Addr().String()}, logger)
	test.That(t, err, test.ShouldBeNil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Measure(ctx, 0)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "receive Measure")

	_, err = client.Measure(context.Background(), 0)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "closed client")
}

func TestContextDeadline(t *testing.T) {
	// a host that accepts but never answers
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	test.That(t, err, test.ShouldBeNil)
	defer listener.Close()
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		for {
			if _, err := conn.Read(buf); err != nil {
				return
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	logger := golog.NewTestLogger(t)
	_, err = misdkbridge.Dial(ctx, misdkbridge.Config{Address: listener.Addr().String()}, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "hello exchange")
}
