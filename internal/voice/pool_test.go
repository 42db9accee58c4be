package voice

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/gibbercast/internal/testutil"
)

func TestLoadPool(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteClip(t, dir, "ba.wav", 800, 8000)
	testutil.WriteClip(t, dir, "ka.wav", 400, 8000)
	// Non-WAV files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	pool, err := LoadPool(dir)
	if err != nil {
		t.Fatalf("LoadPool: %v", err)
	}

	if pool.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pool.Len())
	}
	if pool.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", pool.SampleRate())
	}

	clips := pool.Clips()
	if clips[0].Name != "ba.wav" || clips[1].Name != "ka.wav" {
		t.Errorf("clips not ordered by name: %q, %q", clips[0].Name, clips[1].Name)
	}
	if d := clips[0].Duration(); d != 0.1 {
		t.Errorf("ba.wav duration = %v, want 0.1", d)
	}
}

func TestLoadPool_emptyDirectory(t *testing.T) {
	_, err := LoadPool(t.TempDir())
	if !errors.Is(err, ErrNoClips) {
		t.Fatalf("err = %v, want ErrNoClips", err)
	}
}

func TestLoadPool_missingDirectory(t *testing.T) {
	_, err := LoadPool(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoadPool_mixedSampleRates(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteClip(t, dir, "a.wav", 800, 8000)
	testutil.WriteClip(t, dir, "b.wav", 800, 16000)

	_, err := LoadPool(dir)
	if err == nil {
		t.Fatal("expected error for mixed sample rates")
	}
}

func TestPool_pickReturnsEveryClipEventually(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteClip(t, dir, "a.wav", 100, 8000)
	testutil.WriteClip(t, dir, "b.wav", 200, 8000)
	testutil.WriteClip(t, dir, "c.wav", 300, 8000)

	pool, err := LoadPool(dir)
	if err != nil {
		t.Fatalf("LoadPool: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[pool.Pick(rng).Name] = true
	}
	if len(seen) != 3 {
		t.Errorf("picked %d distinct clips over 200 draws, want 3", len(seen))
	}
}
