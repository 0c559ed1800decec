package cli

import (
	"fmt"

	"github.com/mobile-next/mobiletouch/commands"
	"github.com/mobile-next/mobiletouch/daemon"
	"github.com/mobile-next/mobiletouch/server"
	"github.com/mobile-next/mobiletouch/utils"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Commands for managing the mobiletouch JSON-RPC server.`,
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the mobiletouch server",
	Long:  `Serves pinch, swipe and device queries over JSON-RPC on /rpc and /ws.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := commands.Settings()

		listenAddr, _ := cmd.Flags().GetString("listen")
		if listenAddr == "" {
			listenAddr = cfg.Server.Listen
		}

		enableCORS := cfg.Server.CORS
		if cmd.Flags().Changed("cors") {
			enableCORS, _ = cmd.Flags().GetBool("cors")
		}
		isDaemon, _ := cmd.Flags().GetBool("daemon")

		if !daemon.IsChild() {
			if err := utils.CheckListenAddress(listenAddr); err != nil {
				return err
			}
		}

		if isDaemon && !daemon.IsChild() {
			if _, err := daemon.Daemonize(); err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Printf("Server daemon spawned, attempting to listen on %s\n", listenAddr)
			return nil
		}

		return server.StartServer(cmd.Context(), listenAddr, enableCORS)
	},
}

var serverKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop a running mobiletouch server",
	Long:  `Connects to the server and sends a shutdown command via JSON-RPC.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = commands.Settings().Server.Listen
		}

		if err := daemon.KillServer(addr); err != nil {
			return err
		}

		fmt.Printf("Server shutdown command sent successfully\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverKillCmd)

	serverStartCmd.Flags().String("listen", "", "Address to listen on (e.g., 'localhost:12000' or '0.0.0.0:13000')")
	serverStartCmd.Flags().Bool("cors", false, "Enable CORS support")
	serverStartCmd.Flags().BoolP("daemon", "d", false, "Run server in daemon mode (background)")

	serverKillCmd.Flags().String("listen", "", "Address of server to kill (default: server.listen from config)")
}
