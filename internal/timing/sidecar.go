package timing

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Sidecar is the record persisted next to a rendered voice track so a
// subtitle renderer can replay the same schedule without recomputation.
// Joining Tokens reproduces the original text.
type Sidecar struct {
	Tokens    []string `json:"tokens"`
	Syllables []Event  `json:"syllables"`
}

// Text reconstructs the original input text from the token partition.
func (s Sidecar) Text() string {
	return strings.Join(s.Tokens, "")
}

// SidecarPath derives the sidecar filename from the voice track path:
// "voice.wav" becomes "voice_timing.json".
func SidecarPath(wavPath string) string {
	base := wavPath
	if idx := strings.LastIndex(base, "."); idx > strings.LastIndexByte(base, os.PathSeparator) {
		base = base[:idx]
	}
	return base + "_timing.json"
}

// WriteSidecar writes the sidecar as indented JSON.
func WriteSidecar(path string, s Sidecar) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode timing sidecar: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write timing sidecar: %w", err)
	}
	return nil
}

// LoadSidecar reads a sidecar written by WriteSidecar.
func LoadSidecar(path string) (Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sidecar{}, fmt.Errorf("read timing sidecar: %w", err)
	}
	var s Sidecar
	if err := json.Unmarshal(data, &s); err != nil {
		return Sidecar{}, fmt.Errorf("decode timing sidecar %q: %w", path, err)
	}
	return s, nil
}
