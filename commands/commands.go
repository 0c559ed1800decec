package commands

import (
	"fmt"
	"sync"

	"github.com/mobile-next/mobiletouch/config"
	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/utils"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

// UsageError reports invalid command arguments. It is raised before any
// device is touched.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// DeviceSource resolves a device path ("" to scan) to an opened touch device.
type DeviceSource interface {
	Open(path string) (*devices.TouchDevice, error)
}

type proberSource struct {
	prober *devices.Prober
}

func (s proberSource) Open(path string) (*devices.TouchDevice, error) {
	if path == "" {
		return s.prober.Find()
	}
	return s.prober.Probe(path)
}

var (
	settings     = config.DefaultConfig()
	prober       = devices.NewProber()
	deviceSource DeviceSource = proberSource{prober: prober}

	// deviceRegistry tracks opened devices so an interrupted process can
	// close them. Set once at startup via SetRegistry.
	deviceRegistry *devices.DeviceRegistry

	// gestureMu gives one gesture at a time exclusive use of the device.
	gestureMu sync.Mutex
)

// Configure applies loaded settings to device discovery and gesture pacing.
func Configure(cfg *config.Config) {
	settings = cfg

	prober = devices.NewProber()
	prober.PathPattern = cfg.Device.PathPattern
	prober.Candidates = cfg.Device.Candidates
	prober.RequirePressure = cfg.Device.RequirePressure
	deviceSource = proberSource{prober: prober}
}

// Settings returns the active configuration.
func Settings() *config.Config {
	return settings
}

// Prober returns the prober built from the active configuration.
func Prober() *devices.Prober {
	return prober
}

// SetDeviceSource replaces how touch devices are resolved, e.g. with a
// devices.ProbeCache in server mode.
func SetDeviceSource(source DeviceSource) {
	deviceSource = source
}

// SetRegistry sets the global device registry for cleanup tracking.
func SetRegistry(registry *devices.DeviceRegistry) {
	deviceRegistry = registry
}

// GetRegistry returns the current device registry, or nil.
func GetRegistry() *devices.DeviceRegistry {
	return deviceRegistry
}

// openTouchDevice resolves path, falling back to the configured device, and
// registers the result for cleanup. The returned release func unregisters
// and closes it.
func openTouchDevice(path string) (*devices.TouchDevice, func(), error) {
	if path == "" {
		path = settings.Device.Path
	}

	device, err := deviceSource.Open(path)
	if err != nil {
		return nil, nil, err
	}

	if deviceRegistry != nil {
		deviceRegistry.Register(device)
	}

	release := func() {
		if deviceRegistry != nil {
			deviceRegistry.Unregister(device)
		}
		if err := device.Close(); err != nil {
			utils.Verbose("Error closing touch device %s: %v", device.Path, err)
		}
	}

	return device, release, nil
}
