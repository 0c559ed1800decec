package devices

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kenshaw/evdev"
	"github.com/mobile-next/mobiletouch/utils"
)

// InputDevice describes one candidate input node.
type InputDevice struct {
	Path    string       `json:"path"`
	Name    string       `json:"name,omitempty"`
	Vendor  string       `json:"vendor,omitempty"`
	Product string       `json:"product,omitempty"`
	Touch   bool         `json:"touch"`
	Motion  *MotionRange `json:"motion,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// IdentifyFunc reads the kernel name and vendor/product ids of a node.
type IdentifyFunc func(path string) (name, vendor, product string, err error)

// ListInputDevices reports every existing candidate node, whether it
// qualifies as a touch device and its kernel identity.
func (p *Prober) ListInputDevices(identify IdentifyFunc) []InputDevice {
	if identify == nil {
		identify = identifyNode
	}

	var result []InputDevice
	for i := 0; i < p.Candidates; i++ {
		path := fmt.Sprintf(p.PathPattern, i)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		entry := InputDevice{Path: path}

		name, vendor, product, err := identify(path)
		if err != nil {
			utils.Verbose("Could not identify %s: %v", path, err)
		} else {
			entry.Name, entry.Vendor, entry.Product = name, vendor, product
		}

		device, err := p.Probe(path)
		if err != nil {
			var openErr *OpenError
			if errors.As(err, &openErr) {
				entry.Error = openErr.Error()
			}
		} else {
			motion := device.Motion
			entry.Touch = true
			entry.Motion = &motion
			_ = device.Close()
		}

		result = append(result, entry)
	}

	return result
}

func identifyNode(path string) (string, string, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", "", "", err
	}

	dev := evdev.Open(file)
	defer dev.Close()

	id := dev.ID()
	return dev.Name(), fmt.Sprintf("%04x", id.Vendor), fmt.Sprintf("%04x", id.Product), nil
}
