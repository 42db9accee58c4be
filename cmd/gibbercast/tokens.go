package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/gibbercast/internal/syllable"
	"github.com/example/gibbercast/internal/timing"
	"github.com/spf13/cobra"
)

// newTokensCmd inspects the tokenizer and synchronizer without touching the
// clip pool: every syllable gets the same fixed duration, so the schedule is
// fully deterministic.
func newTokensCmd() *cobra.Command {
	var text string
	var sampleDuration float64

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the token partition and a deterministic timing table as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeCfg

			input, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}
			if sampleDuration <= 0 {
				return fmt.Errorf("--sample-duration must be positive, got %v", sampleDuration)
			}

			tokens := syllable.Tokenize(input)
			events := timing.Synchronize(tokens, timing.FixedDuration(sampleDuration), timing.Options{
				ShortPause: cfg.Voice.ShortPause,
				LongPause:  cfg.Voice.LongPause,
			})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(timing.Sidecar{Tokens: tokens, Syllables: events})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to tokenize (if empty, read from stdin)")
	cmd.Flags().Float64Var(&sampleDuration, "sample-duration", 0.3, "Fixed per-syllable duration in seconds")

	return cmd
}
