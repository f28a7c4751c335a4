package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/rollcall/internal/config"
	"github.com/alfredjeanlab/rollcall/internal/export"
	"github.com/alfredjeanlab/rollcall/internal/model"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roster to CSV or JSONL",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, write, err := exportTarget(exportFormat, exportOutput)
		if err != nil {
			return err
		}

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

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()

		if err := write(f, students); err != nil {
			return err
		}

		fmt.Printf("Data exported to %s\n", out)
		return nil
	},
}

// exportTarget resolves the output path and writer for a format. It runs
// before anything touches the filesystem, so a bad --format cannot leave an
// empty export file behind.
func exportTarget(format, output string) (string, func(io.Writer, []model.Student) error, error) {
	var (
		write       func(io.Writer, []model.Student) error
		defaultName string
	)
	switch format {
	case "csv":
		write, defaultName = export.WriteCSV, "attendance_data.csv"
	case "jsonl":
		write, defaultName = export.WriteJSONL, "attendance_data.jsonl"
	default:
		return "", nil, fmt.Errorf("unknown format %q (want csv or jsonl)", format)
	}
	if output == "" {
		output = defaultName
	}
	return output, write, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default attendance_data.<format>)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format: csv or jsonl")
}
