package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/gibbercast/internal/audio"
	"github.com/example/gibbercast/internal/timing"
	"github.com/example/gibbercast/internal/voice"
	"github.com/spf13/cobra"
)

func newVoiceCmd() *cobra.Command {
	var text string
	var out string

	cmd := &cobra.Command{
		Use:   "voice",
		Short: "Render a gibberish voice track (WAV plus timing sidecar) from text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeCfg

			input, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}

			pool, err := voice.LoadPool(cfg.Paths.ClipsDir)
			if err != nil {
				return err
			}

			opts := voice.Options{
				Timing: timing.Options{
					ShortPause: cfg.Voice.ShortPause,
					LongPause:  cfg.Voice.LongPause,
				},
				SpeedJitter: cfg.Voice.SpeedJitter,
			}
			renderer := voice.NewRenderer(pool, newRand(cfg.Voice.Seed), opts)
			track := renderer.Render(input)

			wavData, err := audio.EncodeWAV(track.Samples, track.SampleRate)
			if err != nil {
				return fmt.Errorf("encode voice track: %w", err)
			}

			if out == "-" {
				if _, err := cmd.OutOrStdout().Write(wavData); err != nil {
					return err
				}
				return nil
			}

			if err := os.WriteFile(out, wavData, 0o644); err != nil {
				return fmt.Errorf("write voice track: %w", err)
			}
			sidecarPath := timing.SidecarPath(out)
			if err := timing.WriteSidecar(sidecarPath, track.Sidecar()); err != nil {
				return err
			}

			slog.Info("voice track rendered",
				slog.String("out", out),
				slog.String("sidecar", sidecarPath),
				slog.Int("tokens", len(track.Tokens)),
				slog.Int("syllables", len(track.Events)),
				slog.Float64("duration_s", track.Duration()),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to voice (if empty, read from stdin)")
	cmd.Flags().StringVar(&out, "out", "voice.wav", "Output WAV path ('-' for stdout, no sidecar)")

	return cmd
}

func readInputText(text string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	input := strings.TrimSpace(string(b))
	if input == "" {
		return "", fmt.Errorf("either provide --text or pipe text on stdin")
	}
	return input, nil
}
