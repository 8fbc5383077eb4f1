package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cabaliser.conf")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadParsesAllKeys(t *testing.T) {
	path := writeTemp(t, "max_qubits 1024\nworkers 8\nchunk_width 256\npandora_dsn postgres://localhost/cabaliser\ndebug TABLEAU, DECODE\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxQubits != 1024 || cfg.Workers != 8 || cfg.ChunkWidth != 256 {
		t.Fatalf("unexpected numeric fields: %+v", cfg)
	}
	if cfg.PandoraDSN != "postgres://localhost/cabaliser" {
		t.Fatalf("unexpected dsn: %q", cfg.PandoraDSN)
	}
	if len(cfg.DebugCategories) != 2 || cfg.DebugCategories[0] != "TABLEAU" || cfg.DebugCategories[1] != "DECODE" {
		t.Fatalf("unexpected debug categories: %v", cfg.DebugCategories)
	}
}

func TestLoadIgnoresCommentsAndBlankLines(t *testing.T) {
	path := writeTemp(t, "# a comment\n\nworkers 2\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 2 {
		t.Fatalf("workers: got %d, want 2", cfg.Workers)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeTemp(t, "bogus_key 1\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDefaultIsUsableStandalone(t *testing.T) {
	cfg := Default()
	if cfg.MaxQubits <= 0 || cfg.Workers <= 0 || cfg.ChunkWidth <= 0 {
		t.Fatalf("default config has non-positive field: %+v", cfg)
	}
}
