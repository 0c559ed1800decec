package commands

import (
	"fmt"

	"github.com/mobile-next/mobiletouch/devices"
)

// InfoCommand resolves the touch device and reports its axis ranges
func InfoCommand(path string) (*devices.TouchDeviceInfo, error) {
	gestureMu.Lock()
	defer gestureMu.Unlock()

	device, release, err := openTouchDevice(path)
	if err != nil {
		return nil, fmt.Errorf("error finding touch device: %w", err)
	}
	defer release()

	info := device.Info()
	return &info, nil
}
