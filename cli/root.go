package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mobile-next/mobiletouch/commands"
	"github.com/mobile-next/mobiletouch/config"
	"github.com/mobile-next/mobiletouch/utils"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mobiletouch",
	Short: "Synthesize multi-touch gestures on a Linux touch screen",
	Long: `Writes pinch and swipe gestures straight into the kernel input node of a
multi-touch controller (/dev/input/eventN). Requires write access to the node,
which usually means running as root.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func initConfig() {
	utils.SetVerbose(verbose)
}

// loadConfig applies the optional config file. --verbose wins over the
// file's log level and --device over its device path.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if !verbose && cfg.Log.Level != "" {
		if err := utils.SetLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
		}
	}

	if devicePath != "" {
		cfg.Device.Path = devicePath
	}

	commands.Configure(cfg)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (.ini or .toml)")
	rootCmd.PersistentFlags().StringVar(&devicePath, "device", "", "touch device node, e.g. /dev/input/event2 (default: scan)")
}

// GetVersion returns the build version
func GetVersion() string {
	return version
}

// Execute runs the root command; ctx is cancelled on SIGINT/SIGTERM
func Execute(ctx context.Context) error {
	// enable microseconds in logs
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	return rootCmd.ExecuteContext(ctx)
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(jsonData))
}
