package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/rollcall/internal/config"
	"github.com/alfredjeanlab/rollcall/internal/ui"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the persisted student roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
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

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(students)
		}
		ui.WriteRosterTable(os.Stdout, students)
		return nil
	},
}
