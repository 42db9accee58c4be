package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/example/gibbercast/internal/timing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestReadInputText(t *testing.T) {
	t.Run("flag value wins", func(t *testing.T) {
		got, err := readInputText("Hoi", strings.NewReader("ignored"))
		if err != nil || got != "Hoi" {
			t.Fatalf("got (%q, %v), want (\"Hoi\", nil)", got, err)
		}
	})

	t.Run("falls back to stdin", func(t *testing.T) {
		got, err := readInputText("", strings.NewReader("  van stdin  "))
		if err != nil || got != "van stdin" {
			t.Fatalf("got (%q, %v), want (\"van stdin\", nil)", got, err)
		}
	})

	t.Run("empty everywhere errors", func(t *testing.T) {
		if _, err := readInputText("", strings.NewReader("   ")); err == nil {
			t.Fatal("expected error for empty input")
		}
	})
}

func TestTokensCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"tokens", "--text", "Hoi, wereld!", "--sample-duration", "0.3"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var sidecar timing.Sidecar
	if err := json.Unmarshal(out.Bytes(), &sidecar); err != nil {
		t.Fatalf("output is not valid sidecar JSON: %v\n%s", err, out.String())
	}

	if sidecar.Text() != "Hoi, wereld!" {
		t.Errorf("token join = %q, want original text", sidecar.Text())
	}
	if len(sidecar.Syllables) == 0 {
		t.Error("expected at least one timing event")
	}
	for i := 1; i < len(sidecar.Syllables); i++ {
		if sidecar.Syllables[i].Start <= sidecar.Syllables[i-1].Start {
			t.Errorf("event[%d] start %v not after event[%d]",
				i, sidecar.Syllables[i].Start, i-1)
		}
	}
}

func TestTokensCommand_rejectsNonPositiveDuration(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"tokens", "--text", "Hoi", "--sample-duration", "0"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for zero sample duration")
	}
}
