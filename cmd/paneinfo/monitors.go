package main

import (
	"fmt"

	"deedles.dev/pane"
	"github.com/spf13/cobra"
)

var allModes bool

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List connected monitors",
	RunE:  withPane(runMonitors),
}

func init() {
	monitorsCmd.Flags().BoolVar(&allModes, "modes", false, "list every supported video mode")
	root.AddCommand(monitorsCmd)
}

func runMonitors(cmd *cobra.Command, args []string) error {
	monitors := pane.Monitors()
	if len(monitors) == 0 {
		fmt.Println("no monitors connected")
		return nil
	}

	primary := pane.PrimaryMonitor()
	for _, m := range monitors {
		printMonitor(m, m.Equal(primary))
	}
	return nil
}

func printMonitor(m *pane.Monitor, primary bool) {
	name := m.Name()
	if primary {
		name += " (primary)"
	}
	fmt.Println(name)

	fmt.Printf("  current mode: %v\n", m.VideoMode())
	fmt.Printf("  position: %v\n", m.Pos())
	fmt.Printf("  work area: %v\n", m.WorkArea())
	pw, ph := m.PhysicalSize()
	fmt.Printf("  physical size: %vmm x %vmm\n", pw, ph)
	sx, sy := m.ContentScale()
	fmt.Printf("  content scale: %v x %v\n", sx, sy)

	if allModes {
		fmt.Println("  modes:")
		for _, mode := range m.VideoModes() {
			fmt.Printf("    %v\n", mode)
		}
	}
}
