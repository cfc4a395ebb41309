package dsnscout

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsnscout/dsnscout/internal/detect"
	"github.com/dsnscout/dsnscout/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "detectors",
		Short: "List available language detectors",
		RunE: func(_ *cobra.Command, _ []string) error {
			detectors := detect.Default()
			if flagJSON {
				type row struct {
					Name       string   `json:"name"`
					Extensions []string `json:"extensions"`
					SkipDirs   []string `json:"skip_dirs,omitempty"`
				}
				rows := make([]row, 0, len(detectors))
				for _, d := range detectors {
					rows = append(rows, row{Name: d.Name, Extensions: d.Extensions, SkipDirs: d.SkipDirs})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			report.DetectorTable(os.Stdout, detectors)
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
