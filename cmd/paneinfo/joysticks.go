package main

import (
	"fmt"
	"os"

	"deedles.dev/pane"
	"github.com/spf13/cobra"
)

var mappingsFile string

var joysticksCmd = &cobra.Command{
	Use:   "joysticks",
	Short: "List connected joysticks and gamepads",
	RunE:  withPane(runJoysticks),
}

func init() {
	joysticksCmd.Flags().StringVar(&mappingsFile, "mappings", "", "SDL gamepad mappings file to load first")
	root.AddCommand(joysticksCmd)
}

func runJoysticks(cmd *cobra.Command, args []string) error {
	if mappingsFile != "" {
		err := loadMappings(mappingsFile)
		if err != nil {
			return fmt.Errorf("load mappings: %w", err)
		}
	}

	joysticks := pane.Joysticks()
	if len(joysticks) == 0 {
		fmt.Println("no joysticks connected")
		return nil
	}

	for _, j := range joysticks {
		fmt.Printf("%v: %v\n", j, j.Name())
		fmt.Printf("  GUID: %v\n", j.GUID())
		fmt.Printf("  axes: %v, buttons: %v, hats: %v\n",
			len(j.Axes()), len(j.Buttons()), len(j.Hats()))
		if j.IsGamepad() {
			fmt.Printf("  gamepad: %v\n", j.GamepadName())
		}
	}
	return nil
}

func loadMappings(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return pane.UpdateGamepadMappings(file)
}
