package main

import (
	"fmt"
	"os"
	"runtime"

	"deedles.dev/pane"
	"github.com/spf13/cobra"
)

func init() {
	runtime.LockOSThread()
}

var root = &cobra.Command{
	Use:          "paneinfo",
	Short:        "Inspect the monitors and joysticks attached to the system",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the underlying library",
	RunE: func(cmd *cobra.Command, args []string) error {
		major, minor, rev := pane.Version()
		fmt.Printf("%v.%v.%v (%v)\n", major, minor, rev, pane.VersionString())
		return nil
	},
}

func init() {
	root.AddCommand(versionCmd)
}

// withPane wraps a command implementation in library setup and
// teardown. Commands run on the main thread thanks to the LockOSThread
// in init.
func withPane(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := pane.Init()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer pane.Terminate()

		return f(cmd, args)
	}
}

func main() {
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
