package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"
)

type DoctorInfo struct {
	Version       string `json:"mobiletouch_version"`
	OS            string `json:"os"`
	OSVersion     string `json:"os_version"`
	Kernel        string `json:"kernel,omitempty"`
	EffectiveUID  int    `json:"euid"`
	InputDir      string `json:"input_dir"`
	InputNodes    int    `json:"input_nodes"`
	WritableNodes int    `json:"writable_nodes"`
	TouchDevice   string `json:"touch_device,omitempty"`
	TouchError    string `json:"touch_error,omitempty"`
	ConfigDevice  string `json:"config_device,omitempty"`
}

func getOSVersion() string {
	if runtime.GOOS != "linux" {
		return ""
	}

	// Android has no /etc/os-release
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), "\"")
		}
	}
	return ""
}

func getKernelRelease() string {
	data, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// countInputNodes returns how many event nodes exist in dir and how many of
// them this process may open for writing.
func countInputNodes(dir string) (int, int) {
	matches, err := filepath.Glob(filepath.Join(dir, "event*"))
	if err != nil {
		return 0, 0
	}

	writable := 0
	for _, path := range matches {
		if unix.Access(path, unix.W_OK) == nil {
			writable++
		}
	}
	return len(matches), writable
}

// DoctorCommand performs system diagnostics and returns information about the environment
func DoctorCommand(version string) *CommandResponse {
	info := DoctorInfo{
		Version:      version,
		OS:           runtime.GOOS,
		OSVersion:    getOSVersion(),
		Kernel:       getKernelRelease(),
		EffectiveUID: os.Geteuid(),
		InputDir:     filepath.Dir(prober.PathPattern),
		ConfigDevice: settings.Device.Path,
	}

	info.InputNodes, info.WritableNodes = countInputNodes(info.InputDir)

	device, err := deviceSource.Open(settings.Device.Path)
	if err != nil {
		info.TouchError = err.Error()
	} else {
		info.TouchDevice = device.Path
		_ = device.Close()
	}

	return NewSuccessResponse(info)
}
