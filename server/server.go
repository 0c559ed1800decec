package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mobile-next/mobiletouch/commands"
	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/utils"
)

const (
	// Parse error: Invalid JSON was received by the server
	ErrCodeParseError = -32700

	// Invalid Request: The JSON sent is not a valid Request object
	ErrCodeInvalidRequest = -32600

	// Method not found: The method does not exist / is not available
	ErrCodeMethodNotFound = -32601

	// Server error: Internal JSON-RPC error
	ErrCodeServerError = -32000

	// Invalid params: Invalid method parameters
	ErrCodeInvalidParams = -32602

	// Internal error: Internal JSON-RPC error
	ErrCodeInternalError = -32603
)

const (
	errTitleParseError   = "Parse error"
	errTitleInvalidReq   = "Invalid Request"
	errTitleMethodNotFnd = "Method not found"
	errTitleServerError  = "Server error"

	errMsgExpectingJSONRPC = "expecting jsonrpc payload"
	errMsgInvalidJSONRPC   = "'jsonrpc' must be '2.0'"
	errMsgIDRequired       = "'id' field is required"
	errMsgMethodRequired   = "'method' is required"
)

// Server timeouts. WriteTimeout bounds the longest gesture an HTTP client
// can wait for; use /ws for longer ones.
const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 60 * time.Second
	IdleTimeout     = 120 * time.Second
	ShutdownTimeout = 5 * time.Second
)

var okResponse = map[string]interface{}{"status": "ok"}

type JSONRPCRequest struct {
	// these fields are all omitempty, so we can report back to client if they are missing
	JSONRPC string          `json:"jsonrpc,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      interface{}     `json:"id,omitempty"`
}

// JSONRPCResponse represents a JSON-RPC response
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	ID      interface{} `json:"id"`
}

type rpcError struct {
	code    int
	message string
	data    string
}

func validateJSONRPCRequest(req JSONRPCRequest) *rpcError {
	if req.JSONRPC != "2.0" {
		return &rpcError{ErrCodeInvalidRequest, errTitleInvalidReq, errMsgInvalidJSONRPC}
	}
	if req.ID == nil {
		return &rpcError{ErrCodeInvalidRequest, errTitleInvalidReq, errMsgIDRequired}
	}
	if req.Method == "" {
		return &rpcError{ErrCodeInvalidRequest, errTitleInvalidReq, errMsgMethodRequired}
	}
	return nil
}

var (
	shutdownMu   sync.Mutex
	shutdownHook *devices.ShutdownHook
)

// requestShutdown runs the server's shutdown hooks in the background so the
// triggering request can still be answered.
func requestShutdown() {
	shutdownMu.Lock()
	hook := shutdownHook
	shutdownMu.Unlock()

	if hook == nil {
		return
	}

	go func() {
		if err := hook.Shutdown(); err != nil {
			utils.Info("Shutdown finished with errors: %v", err)
		}
	}()
}

// corsMiddleware handles CORS preflight requests and adds CORS headers to responses.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NormalizeAddress turns a bare port into ":port".
func NormalizeAddress(addr string) (string, error) {
	if strings.Contains(addr, ":") {
		return addr, nil
	}

	port, err := strconv.Atoi(addr)
	if err != nil {
		return "", fmt.Errorf("invalid port: %v", err)
	}
	return fmt.Sprintf(":%d", port), nil
}

// NewHandler builds the HTTP routes: banner, /rpc and /ws.
func NewHandler(enableCORS bool) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", sendBanner)
	mux.HandleFunc("/rpc", handleJSONRPC)
	mux.HandleFunc("/ws", NewWebSocketHandler(enableCORS))

	if enableCORS {
		return corsMiddleware(mux)
	}
	return mux
}

// StartServer serves JSON-RPC until ctx is cancelled or a client calls
// server.shutdown.
func StartServer(ctx context.Context, addr string, enableCORS bool) error {
	addr, err := NormalizeAddress(addr)
	if err != nil {
		return err
	}

	cfg := commands.Settings()
	hook := devices.NewShutdownHook()

	cache, err := devices.NewProbeCache(commands.Prober(), cfg.Server.ProbeCacheSize)
	if err != nil {
		return err
	}
	commands.SetDeviceSource(cache)

	if cfg.Server.WatchDevices {
		if err := cache.Watch(); err != nil {
			utils.Info("Not watching for input device changes: %v", err)
		} else {
			hook.Register("input-watcher", cache.Close)
		}
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      NewHandler(enableCORS),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	hook.Register("http-server", func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	shutdownMu.Lock()
	shutdownHook = hook
	shutdownMu.Unlock()

	stop := context.AfterFunc(ctx, requestShutdown)
	defer stop()

	utils.Info("Starting server on http://%s...", server.Addr)
	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		utils.Info("Server stopped")
		return nil
	}

	_ = hook.Shutdown()
	return err
}

func handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req JSONRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONRPCError(w, nil, ErrCodeParseError, errTitleParseError, errMsgExpectingJSONRPC)
		return
	}

	if rpcErr := validateJSONRPCRequest(req); rpcErr != nil {
		sendJSONRPCError(w, req.ID, rpcErr.code, rpcErr.message, rpcErr.data)
		return
	}

	utils.Info("Request ID: %v, Method: %s, Params: %s", req.ID, req.Method, string(req.Params))

	handler, exists := GetMethodRegistry()[req.Method]
	if !exists {
		sendJSONRPCError(w, req.ID, ErrCodeMethodNotFound, errTitleMethodNotFnd, fmt.Sprintf("Method '%s' not found", req.Method))
		return
	}

	result, err := handler(r.Context(), req.Params)
	if err != nil {
		utils.Verbose("Error executing method %s: %v", req.Method, err)
		sendJSONRPCError(w, req.ID, ErrCodeServerError, errTitleServerError, err.Error())
		return
	}

	sendJSONRPCResponse(w, req.ID, result)
}

func sendJSONRPCResponse(w http.ResponseWriter, id interface{}, result interface{}) {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Result:  result,
		ID:      id,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

func sendJSONRPCError(w http.ResponseWriter, id interface{}, code int, message string, data interface{}) {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Error: map[string]interface{}{
			"code":    code,
			"message": message,
			"data":    data,
		},
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

func sendBanner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(okResponse)
}
