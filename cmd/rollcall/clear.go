package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/rollcall/internal/config"
	"github.com/alfredjeanlab/rollcall/internal/device"
	"github.com/alfredjeanlab/rollcall/internal/engine"
	"github.com/alfredjeanlab/rollcall/internal/roster"
)

var (
	clearYes    bool
	clearSensor bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every enrolled student",
	Long: `clear deletes the entire roster from storage. With --sensor it also
tells the scanner to wipe its fingerprint templates, so the stored IDs
cannot drift out of sync with the sensor's.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if !clearYes {
			fmt.Print("This will delete ALL student records. Continue? [y/N]: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read confirmation: %w", err)
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
			default:
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		students, err := st.Load(cmd.Context())
		if err != nil {
			return err
		}
		eng := engine.New(roster.NewFrom(students), st, consoleNotifier{}, nil, logger)
		if err := eng.ClearAll(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All student records deleted.")

		if clearSensor {
			port, baud, err := resolveDevice(cfg)
			if err != nil {
				return err
			}
			transport, err := device.OpenSerial(port, baud)
			if err != nil {
				return fmt.Errorf("open %s to wipe sensor: %w", port, err)
			}
			defer transport.Close()
			if err := device.SendClear(transport); err != nil {
				return err
			}
			fmt.Println("Sensor wipe command sent.")
		}
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")
	clearCmd.Flags().BoolVar(&clearSensor, "sensor", false, "also wipe templates from the scanner")
}
