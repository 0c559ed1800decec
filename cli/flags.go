package cli

var (
	verbose bool

	// all commands
	configPath string
	devicePath string
)
