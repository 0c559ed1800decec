package cli

import (
	"fmt"
	"strconv"

	"github.com/mobile-next/mobiletouch/commands"
	"github.com/spf13/cobra"
)

var pinchCmd = &cobra.Command{
	Use:   "pinch <from> <to> <angle> <duration>",
	Short: "Pinch two fingers about the center of the screen",
	Long: `Moves two contacts symmetrically about the screen center.

from, to:  distance from the center in % of the half screen size
angle:     direction of the pinch line in degrees, 0 (horizontal) to 90 (vertical)
duration:  how long the pinch takes in milliseconds

from < to zooms in, from > to zooms out.`,
	Example: `  mobiletouch pinch 10 50 45 300`,
	Args:    exactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseIntArgs([]string{"from", "to", "angle", "duration"}, args)
		if err != nil {
			printJson(commands.NewErrorResponse(err))
			return err
		}

		req := commands.PinchRequest{
			Device:     devicePath,
			From:       values[0],
			To:         values[1],
			Angle:      values[2],
			DurationMs: values[3],
		}

		response := commands.PinchCommand(cmd.Context(), req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var swipeCmd = &cobra.Command{
	Use:   "swipe <startX> <startY> <endX> <endY> <duration>",
	Short: "Swipe one finger across the screen",
	Long: `Drags a single contact in a straight line.

startX, startY, endX, endY:  position in % of the screen width and height
duration:                    how long the swipe takes in milliseconds`,
	Example: `  mobiletouch swipe 50 80 50 20 250`,
	Args:    exactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseIntArgs([]string{"startX", "startY", "endX", "endY", "duration"}, args)
		if err != nil {
			printJson(commands.NewErrorResponse(err))
			return err
		}

		req := commands.SwipeRequest{
			Device:     devicePath,
			StartX:     values[0],
			StartY:     values[1],
			EndX:       values[2],
			EndY:       values[3],
			DurationMs: values[4],
		}

		response := commands.SwipeCommand(cmd.Context(), req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

// exactArgs is cobra.ExactArgs with the usage text in the error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return commands.NewUsageError("accepts %d arg(s), received %d\n\n%s", n, len(args), cmd.UsageString())
		}
		return nil
	}
}

// parseIntArgs parses args as base-10 integers, naming the first bad one.
func parseIntArgs(names []string, args []string) ([]int, error) {
	values := make([]int, len(names))
	for i, name := range names {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, commands.NewUsageError("could not interpret parameter: '%s'", name)
		}
		values[i] = v
	}
	return values, nil
}

func init() {
	rootCmd.AddCommand(pinchCmd)
	rootCmd.AddCommand(swipeCmd)
}
