package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/rollcall/internal/config"
	"github.com/alfredjeanlab/rollcall/internal/ui"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Manage named scanner profiles",
}

var deviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scanner profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := config.LoadDevices()
		if err != nil {
			return err
		}
		if len(devices.Devices) == 0 {
			fmt.Println("No device profiles. Add one with: rollcall device add <name> <port>")
			return nil
		}

		names := make([]string, 0, len(devices.Devices))
		for name := range devices.Devices {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			d := devices.Devices[name]
			marker := "  "
			if name == devices.Active {
				marker = ui.RenderPresent("* ")
			}
			fmt.Printf("%s%-16s %s @ %d baud\n", marker, name, d.Port, d.Baud)
		}
		return nil
	},
}

var deviceAddBaud int

var deviceAddCmd = &cobra.Command{
	Use:   "add <name> <port>",
	Short: "Add or update a scanner profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, port := args[0], args[1]

		devices, err := config.LoadDevices()
		if err != nil {
			return err
		}
		devices.Devices[name] = config.Device{Port: port, Baud: deviceAddBaud}
		if devices.Active == "" {
			devices.Active = name
		}
		if err := config.SaveDevices(devices); err != nil {
			return err
		}
		fmt.Printf("Saved profile %q (%s @ %d baud)\n", name, port, deviceAddBaud)
		return nil
	},
}

var deviceUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a profile the default for run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		devices, err := config.LoadDevices()
		if err != nil {
			return err
		}
		if _, ok := devices.Devices[name]; !ok {
			return fmt.Errorf("unknown device profile %q", name)
		}
		devices.Active = name
		if err := config.SaveDevices(devices); err != nil {
			return err
		}
		fmt.Printf("Active device profile is now %q\n", name)
		return nil
	},
}

var deviceRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a scanner profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		devices, err := config.LoadDevices()
		if err != nil {
			return err
		}
		if _, ok := devices.Devices[name]; !ok {
			return fmt.Errorf("unknown device profile %q", name)
		}
		delete(devices.Devices, name)
		if devices.Active == name {
			devices.Active = ""
		}
		if err := config.SaveDevices(devices); err != nil {
			return err
		}
		fmt.Printf("Removed profile %q\n", name)
		return nil
	},
}

func init() {
	deviceAddCmd.Flags().IntVar(&deviceAddBaud, "baud", 9600, "baud rate for this profile")

	deviceCmd.AddCommand(deviceListCmd)
	deviceCmd.AddCommand(deviceAddCmd)
	deviceCmd.AddCommand(deviceUseCmd)
	deviceCmd.AddCommand(deviceRemoveCmd)
}
