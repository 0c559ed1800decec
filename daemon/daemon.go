package daemon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mobile-next/mobiletouch/server"
	"github.com/sevlyar/go-daemon"
)

const (
	// DaemonEnvVar marks the re-executed background server process
	DaemonEnvVar = "MOBILETOUCH_DAEMON_CHILD"

	shutdownRequestID = 1
	killTimeout       = 10 * time.Second
)

// Daemonize re-executes the current command detached from the terminal.
// A nil process means this is the child.
func Daemonize() (*os.Process, error) {
	// no pid file, the server logs to stderr
	ctx := &daemon.Context{
		WorkDir: "/",
		Umask:   027,
		Args:    os.Args,
		Env:     append(os.Environ(), fmt.Sprintf("%s=1", DaemonEnvVar)),
	}

	child, err := ctx.Reborn()
	if err != nil {
		return nil, fmt.Errorf("failed to daemonize: %w", err)
	}

	return child, nil
}

// IsChild returns true if this is the daemon child process
func IsChild() bool {
	return os.Getenv(DaemonEnvVar) == "1"
}

// ServerURL turns a listen address into the base URL a local client dials.
func ServerURL(addr string) (string, error) {
	addr, err := server.NormalizeAddress(addr)
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr, nil
}

// KillServer asks a running server to release its devices and stop.
func KillServer(addr string) error {
	baseURL, err := ServerURL(addr)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(server.JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  "server.shutdown",
		ID:      shutdownRequestID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	client := &http.Client{Timeout: killTimeout}
	req, err := http.NewRequest(http.MethodPost, baseURL+"/rpc", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if strings.Contains(err.Error(), "connection refused") {
			return fmt.Errorf("server is not running on %s", baseURL)
		}
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned error: %s", resp.Status)
	}

	var rpcResp server.JSONRPCResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("server refused shutdown: %v", rpcResp.Error)
	}

	return nil
}
