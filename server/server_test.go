package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mobile-next/mobiletouch/commands"
	"github.com/mobile-next/mobiletouch/config"
	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/devices/evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryNode struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func (n *memoryNode) Write(p []byte) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.buf.Write(p)
}

func (n *memoryNode) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	return nil
}

func (n *memoryNode) AbsoluteAxes() (evdev.AxisSet, error) {
	return nil, nil
}

func (n *memoryNode) AbsInfo(code uint16) (evdev.AbsInfo, error) {
	return evdev.AbsInfo{}, nil
}

type memorySource struct {
	mu    sync.Mutex
	nodes []*memoryNode
}

func (s *memorySource) Open(path string) (*devices.TouchDevice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := &memoryNode{}
	s.nodes = append(s.nodes, node)
	return devices.NewTouchDevice("/dev/input/event7", node, devices.MotionRange{
		X:        devices.AxisRange{Maximum: 1080},
		Y:        devices.AxisRange{Maximum: 2400},
		Pressure: devices.AxisRange{Maximum: 255},
	}), nil
}

func useMemorySource(t *testing.T) *memorySource {
	t.Helper()

	commands.Configure(config.DefaultConfig())
	source := &memorySource{}
	commands.SetDeviceSource(source)

	t.Cleanup(func() {
		commands.Configure(config.DefaultConfig())
	})
	return source
}

func postRPC(t *testing.T, handler http.Handler, body string) JSONRPCResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp JSONRPCResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func errorField(t *testing.T, resp JSONRPCResponse, field string) interface{} {
	t.Helper()
	errMap, ok := resp.Error.(map[string]interface{})
	require.True(t, ok, "expected error object, got %v", resp.Error)
	return errMap[field]
}

func TestSendBanner(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	sendBanner(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleJSONRPCDirect(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		body         string
		expectedCode int
	}{
		{"GET not allowed", "GET", "", http.StatusMethodNotAllowed},
		{"PUT not allowed", "PUT", "{}", http.StatusMethodNotAllowed},
		{"invalid JSON", "POST", "not json", http.StatusOK},
		{"valid request", "POST", `{"jsonrpc":"2.0","method":"devices","id":1}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/rpc", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handleJSONRPC(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestJSONRPCValidation(t *testing.T) {
	handler := NewHandler(false)

	tests := []struct {
		name string
		body string
		code float64
		data string
	}{
		{"parse error", `{"jsonrpc":`, ErrCodeParseError, errMsgExpectingJSONRPC},
		{"wrong version", `{"jsonrpc":"1.0","method":"devices","id":1}`, ErrCodeInvalidRequest, errMsgInvalidJSONRPC},
		{"missing id", `{"jsonrpc":"2.0","method":"devices"}`, ErrCodeInvalidRequest, errMsgIDRequired},
		{"missing method", `{"jsonrpc":"2.0","id":1}`, ErrCodeInvalidRequest, errMsgMethodRequired},
		{"unknown method", `{"jsonrpc":"2.0","method":"io_tap","id":1}`, ErrCodeMethodNotFound, "Method 'io_tap' not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postRPC(t, handler, tt.body)
			assert.Nil(t, resp.Result)
			assert.Equal(t, tt.code, errorField(t, resp, "code"))
			assert.Equal(t, tt.data, errorField(t, resp, "data"))
		})
	}
}

func TestIoPinchOverRPC(t *testing.T) {
	source := useMemorySource(t)
	handler := NewHandler(false)

	resp := postRPC(t, handler, `{"jsonrpc":"2.0","method":"io_pinch","params":{"from":10,"to":50,"angle":0,"duration":0},"id":"p1"}`)

	require.Nil(t, resp.Error)
	assert.Equal(t, "p1", resp.ID)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pinch", result["gesture"])
	assert.Equal(t, "/dev/input/event7", result["device"])
	assert.EqualValues(t, 2, result["contacts"])

	require.Len(t, source.nodes, 1)
	node := source.nodes[0]
	assert.True(t, node.closed, "device should be closed after the gesture")
	assert.NotZero(t, node.buf.Len())
	assert.Zero(t, node.buf.Len()%evdev.EventSize)
}

func TestIoSwipeOverRPC(t *testing.T) {
	useMemorySource(t)
	handler := NewHandler(false)

	resp := postRPC(t, handler, `{"jsonrpc":"2.0","method":"io_swipe","params":{"startX":50,"startY":80,"endX":50,"endY":20,"duration":0},"id":2}`)

	require.Nil(t, resp.Error)
	result := resp.Result.(map[string]interface{})
	assert.Equal(t, "swipe", result["gesture"])
	assert.EqualValues(t, 1, result["contacts"])
}

func TestGestureParamErrors(t *testing.T) {
	source := useMemorySource(t)
	handler := NewHandler(false)

	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{
			"pinch without params",
			`{"jsonrpc":"2.0","method":"io_pinch","id":1}`,
			"'params' is required",
		},
		{
			"pinch missing angle",
			`{"jsonrpc":"2.0","method":"io_pinch","params":{"from":10,"to":50,"duration":100},"id":1}`,
			"missing parameters",
		},
		{
			"pinch wrong type",
			`{"jsonrpc":"2.0","method":"io_pinch","params":{"from":"ten","to":50,"angle":0,"duration":100},"id":1}`,
			"invalid parameters",
		},
		{
			"pinch out of range",
			`{"jsonrpc":"2.0","method":"io_pinch","params":{"from":10,"to":150,"angle":0,"duration":100},"id":1}`,
			"to",
		},
		{
			"swipe same points",
			`{"jsonrpc":"2.0","method":"io_swipe","params":{"startX":10,"startY":10,"endX":10,"endY":10,"duration":100},"id":1}`,
			"same",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postRPC(t, handler, tt.body)
			assert.Equal(t, float64(ErrCodeServerError), errorField(t, resp, "code"))
			assert.Contains(t, errorField(t, resp, "data"), tt.contains)
		})
	}

	assert.Empty(t, source.nodes, "invalid requests must not open the device")
}

func TestDeviceInfoOverRPC(t *testing.T) {
	useMemorySource(t)
	handler := NewHandler(false)

	resp := postRPC(t, handler, `{"jsonrpc":"2.0","method":"device_info","id":3}`)

	require.Nil(t, resp.Error)
	result := resp.Result.(map[string]interface{})
	assert.Equal(t, "/dev/input/event7", result["path"])
}

func TestServerShutdownRunsHooks(t *testing.T) {
	done := make(chan struct{})
	hook := devices.NewShutdownHook()
	hook.Register("test", func() error {
		close(done)
		return nil
	})

	shutdownMu.Lock()
	previous := shutdownHook
	shutdownHook = hook
	shutdownMu.Unlock()
	t.Cleanup(func() {
		shutdownMu.Lock()
		shutdownHook = previous
		shutdownMu.Unlock()
	})

	result, err := Execute(context.Background(), "server.shutdown", nil)
	require.NoError(t, err)
	assert.Equal(t, okResponse, result)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown hooks did not run")
	}
}

func TestExecuteUnknownMethod(t *testing.T) {
	_, err := Execute(context.Background(), "screenshot", nil)
	assert.EqualError(t, err, "method not found: screenshot")
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		expectedStatus int
	}{
		{"preflight", http.MethodOptions, http.StatusOK},
		{"get", http.MethodGet, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			w := httptest.NewRecorder()

			NewHandler(true).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		})
	}

	t.Run("disabled", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		NewHandler(false).ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"12000", ":12000", false},
		{"localhost:12000", "localhost:12000", false},
		{":9000", ":9000", false},
		{"abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeAddress(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
