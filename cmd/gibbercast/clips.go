package main

import (
	"fmt"

	"github.com/example/gibbercast/internal/voice"
	"github.com/spf13/cobra"
)

// newClipsCmd validates a clip directory before a render run: it loads every
// clip the way the renderer would and reports what it found.
func newClipsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "clips",
		Short: "Validate the voice clip pool and list its contents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeCfg

			if dir == "" {
				dir = cfg.Paths.ClipsDir
			}

			pool, err := voice.LoadPool(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d clips at %d Hz in %s\n", pool.Len(), pool.SampleRate(), dir)
			for _, clip := range pool.Clips() {
				fmt.Fprintf(out, "  %-30s %6.3fs\n", clip.Name, clip.Duration())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Clips directory (overrides config)")

	return cmd
}
