package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mobile-next/mobiletouch/utils"
)

const (
	wsMaxMessageSize = 64 << 10
	wsWriteWait      = 5 * time.Second
)

type wsConnection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func newUpgrader(enableCORS bool) *websocket.Upgrader {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	if enableCORS {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	} else {
		upgrader.CheckOrigin = isSameOrigin
	}

	return &upgrader
}

// NewWebSocketHandler serves JSON-RPC over a websocket. Requests on one
// connection are handled in order.
func NewWebSocketHandler(enableCORS bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, enableCORS)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, enableCORS bool) {
	conn, err := newUpgrader(enableCORS).Upgrade(w, r, nil)
	if err != nil {
		utils.Verbose("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsMaxMessageSize)

	wsConn := &wsConnection{conn: conn}
	ctx := r.Context()

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			utils.Verbose("WebSocket connection closed: %v", err)
			break
		}

		if messageType != websocket.TextMessage {
			_ = wsConn.sendError(nil, ErrCodeInvalidRequest, errTitleInvalidReq, "only text messages accepted for requests")
			continue
		}

		handleWSMessage(ctx, wsConn, message)
	}
}

func isSameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return originURL.Host == r.Host
}

func handleWSMessage(ctx context.Context, wsConn *wsConnection, message []byte) {
	var req JSONRPCRequest
	if err := json.Unmarshal(message, &req); err != nil {
		_ = wsConn.sendError(nil, ErrCodeParseError, errTitleParseError, errMsgExpectingJSONRPC)
		return
	}

	if rpcErr := validateJSONRPCRequest(req); rpcErr != nil {
		_ = wsConn.sendError(req.ID, rpcErr.code, rpcErr.message, rpcErr.data)
		return
	}

	utils.Info("WebSocket Request ID: %v, Method: %s, Params: %s", req.ID, req.Method, string(req.Params))

	handleWSMethodCall(ctx, wsConn, req)
}

func handleWSMethodCall(ctx context.Context, wsConn *wsConnection, req JSONRPCRequest) {
	handler, exists := GetMethodRegistry()[req.Method]
	if !exists {
		_ = wsConn.sendError(req.ID, ErrCodeMethodNotFound, errTitleMethodNotFnd, req.Method+" not found")
		return
	}

	result, err := handler(ctx, req.Params)
	if err != nil {
		utils.Verbose("Error executing method %s: %v", req.Method, err)
		_ = wsConn.sendError(req.ID, ErrCodeServerError, errTitleServerError, err.Error())
		return
	}

	_ = wsConn.sendResponse(req.ID, result)
}

func (wsc *wsConnection) sendResponse(id interface{}, result interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Result:  result,
		ID:      id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendError(id interface{}, code int, message string, data interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Error: map[string]interface{}{
			"code":    code,
			"message": message,
			"data":    data,
		},
		ID: id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendJSON(v interface{}) error {
	wsc.writeMu.Lock()
	defer wsc.writeMu.Unlock()
	_ = wsc.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return wsc.conn.WriteJSON(v)
}
