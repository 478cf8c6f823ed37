// Lunitool is a terminal installer shell for Linux systems.
//
// It walks the user through language and keyboard selection into a main
// menu whose installation wizard collects a target disk and a hostname.
// Everything happens inside a full-screen terminal UI.
//
// Usage:
//
//	lunitool [command] [flags]
//
// Running without arguments launches the interactive shell.
// See 'lunitool --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lunitool/lunitool/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
	langFlag   string
	themeFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "lunitool",
	Short: "Linux Utility Tool installer shell",
	Long: `A terminal installer shell for Linux systems.

Guides through language and keyboard selection into a main menu with
the system installation wizard. Settings chosen in the shell are saved
to the configuration file on exit.

If no command is specified, the interactive shell will launch automatically.`,
	Version:      version.Full(),
	SilenceUsage: true,
	RunE:         runShell,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default is the OS config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default /var/log/lunitool.log)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Interface language for this run (de, en); saved only if changed in the shell")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Theme name for this run; saved only if changed in the shell")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
