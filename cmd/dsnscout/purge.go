package dsnscout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dsnscout/dsnscout/internal/cache"
	"github.com/dsnscout/dsnscout/internal/project"
)

func init() {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove the cached DSN for a project",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(flagPath)
			if !flagNoGitRoot {
				abs = project.Root(abs)
			}
			if err := cache.Clear(abs); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "cache cleared for", abs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "project path")
	cmd.Flags().BoolVar(&flagNoGitRoot, "no-git-root", false, "use the given path as-is instead of the enclosing git root")
	rootCmd.AddCommand(cmd)
}
