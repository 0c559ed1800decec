package cli

import (
	"fmt"

	"github.com/mobile-next/mobiletouch/commands"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List input devices",
	Long:  `Lists the input event nodes with their kernel names and marks the ones that qualify as multi-touch controllers.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.DevicesCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the touch device and its axis ranges",
	Long:  `Resolves the touch device (--device or scan) and prints its X, Y and pressure ranges.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := commands.InfoCommand(devicePath)
		if err != nil {
			response := commands.NewErrorResponse(err)
			printJson(response)
			return err
		}

		printJson(commands.NewSuccessResponse(info))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(infoCmd)
}
