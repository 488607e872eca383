package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDir, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dir != "" {
		t.Errorf("Dir = %q, want empty", cfg.Dir)
	}
	if cfg.OpenPath() != OpenFile {
		t.Errorf("OpenPath() = %q, want %q", cfg.OpenPath(), OpenFile)
	}
	if cfg.DonePath() != DoneFile {
		t.Errorf("DonePath() = %q, want %q", cfg.DonePath(), DoneFile)
	}
	if cfg.EffectiveLogLevel() != "warn" {
		t.Errorf("EffectiveLogLevel() = %q, want warn", cfg.EffectiveLogLevel())
	}
}

func TestLoad_ProjectTOML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "todo.toml"), `
dir = "/var/tasks"
done_file = "finished.json"
log_level = "info"
quiet = true
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dir != "/var/tasks" {
		t.Errorf("Dir = %q, want /var/tasks", cfg.Dir)
	}
	if got, want := cfg.DonePath(), filepath.Join("/var/tasks", "finished.json"); got != want {
		t.Errorf("DonePath() = %q, want %q", got, want)
	}
	if got, want := cfg.OpenPath(), filepath.Join("/var/tasks", OpenFile); got != want {
		t.Errorf("OpenPath() = %q, want %q", got, want)
	}
	if !cfg.Quiet {
		t.Error("expected Quiet from config file")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_ExplicitYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	writeFile(t, path, "dir: /srv/todo\nopen_file: open.json\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := cfg.OpenPath(), filepath.Join("/srv/todo", "open.json"); got != want {
		t.Errorf("OpenPath() = %q, want %q", got, want)
	}
	if cfg.DoneFile != DoneFile {
		t.Errorf("DoneFile = %q, want default %q", cfg.DoneFile, DoneFile)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "dir = [unterminated")

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_UserConfigDir(t *testing.T) {
	clearEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	chdir(t, t.TempDir())

	if err := os.MkdirAll(filepath.Join(xdg, AppName), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(xdg, AppName, UserConfigFile), `dir = "/home/me/tasks"`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dir != "/home/me/tasks" {
		t.Errorf("Dir = %q, want /home/me/tasks", cfg.Dir)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "todo.toml"), `dir = "/from/file"`)
	t.Setenv(EnvDir, "/from/env")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dir != "/from/env" {
		t.Errorf("Dir = %q, want /from/env", cfg.Dir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got, want := DefaultConfigDir(), filepath.Join("/tmp/xdg", AppName); got != want {
		t.Errorf("DefaultConfigDir() = %q, want %q", got, want)
	}
}

func TestPath_AbsoluteFileName(t *testing.T) {
	cfg := New("/data")
	cfg.DoneFile = "/elsewhere/done.db"
	if cfg.DonePath() != "/elsewhere/done.db" {
		t.Errorf("DonePath() = %q, want absolute file name kept", cfg.DonePath())
	}
}

func TestEffectiveLogLevel_Debug(t *testing.T) {
	cfg := New("")
	cfg.LogLevel = "error"
	cfg.Debug = true
	if cfg.EffectiveLogLevel() != "debug" {
		t.Errorf("EffectiveLogLevel() = %q, want debug", cfg.EffectiveLogLevel())
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := New(dir)
	if err := cfg.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory %s to exist", dir)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
