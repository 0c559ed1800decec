package devices

import (
	"sync"

	"github.com/mobile-next/mobiletouch/utils"
)

// DeviceRegistry tracks the touch devices currently held open so they can be
// released when the process is interrupted.
type DeviceRegistry struct {
	mu      sync.RWMutex
	devices map[string]*TouchDevice
}

// NewDeviceRegistry creates a new device registry instance
func NewDeviceRegistry() *DeviceRegistry {
	return &DeviceRegistry{
		devices: make(map[string]*TouchDevice),
	}
}

// Register adds an opened device for cleanup tracking
func (r *DeviceRegistry) Register(device *TouchDevice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices[device.Path] = device
}

// Unregister drops a device that its owner has closed
func (r *DeviceRegistry) Unregister(device *TouchDevice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.devices[device.Path] == device {
		delete(r.devices, device.Path)
	}
}

func (r *DeviceRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// CleanupAll closes every registered device
func (r *DeviceRegistry) CleanupAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.devices) == 0 {
		return
	}

	for path, device := range r.devices {
		if err := device.Close(); err != nil {
			utils.Verbose("Error closing touch device %s: %v", path, err)
		}
	}

	r.devices = make(map[string]*TouchDevice)
}
