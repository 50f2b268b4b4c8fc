package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "UPLOAD_MAX_FILE_SIZE", "SNAPSHOT_INTERVAL", "SNAPSHOT_DRIVER", "AUTH_PROTECT_DELETE", "UPLOAD_HOST"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Server.Port != "1134" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.Upload.MaxFileSize != 200*1024*1024 {
		t.Errorf("MaxFileSize = %d", cfg.Upload.MaxFileSize)
	}
	if cfg.Snapshot.Interval != 60*time.Second || cfg.Snapshot.Driver != "file" {
		t.Errorf("Snapshot = %+v", cfg.Snapshot)
	}
	if !cfg.Auth.ProtectDelete {
		t.Error("delete should be protected by default")
	}
	if cfg.Upload.Host != "catbox" {
		t.Errorf("Host = %q", cfg.Upload.Host)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SNAPSHOT_INTERVAL", "15")
	t.Setenv("UPLOAD_HOST_TIMEOUT", "2m")
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "1024")
	t.Setenv("AUTH_PROTECT_DELETE", "false")
	t.Setenv("UPLOAD_HOST", "FileIO")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadConfig()
	if cfg.Snapshot.Interval != 15*time.Second {
		t.Errorf("bare seconds: Interval = %v", cfg.Snapshot.Interval)
	}
	if cfg.Upload.HostTimeout != 2*time.Minute {
		t.Errorf("HostTimeout = %v", cfg.Upload.HostTimeout)
	}
	if cfg.Upload.MaxFileSize != 1024 || cfg.Auth.ProtectDelete || cfg.Upload.Host != "fileio" {
		t.Errorf("overrides not applied: %+v %+v", cfg.Upload, cfg.Auth)
	}
	if cfg.Snapshot.RedisDB != 0 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.Snapshot.RedisDB)
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := &Config{Auth: AuthConfig{APIKey: "  "}}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v", err)
	}
	cfg.Auth.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("err = %v", err)
	}
}

func TestLoadEnvFileKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("MEGA_EMAIL=file@example.com\nMEGA_PASSWORD=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MEGA_EMAIL", "env@example.com")
	t.Setenv("MEGA_PASSWORD", "")
	os.Unsetenv("MEGA_PASSWORD")

	LoadEnvFile(path)
	cfg := LoadConfig()
	if cfg.Drive.MegaEmail != "env@example.com" {
		t.Errorf("MegaEmail = %q", cfg.Drive.MegaEmail)
	}
	if cfg.Drive.MegaPassword != "from-file" {
		t.Errorf("MegaPassword = %q", cfg.Drive.MegaPassword)
	}
}

func TestEnsureDirs(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{
		Upload:   UploadConfig{TempDir: filepath.Join(root, "temp")},
		Snapshot: SnapshotConfig{Driver: "file", Path: filepath.Join(root, "data", "files.json")},
	}
	if err := cfg.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{"temp", "data"} {
		if info, err := os.Stat(filepath.Join(root, dir)); err != nil || !info.IsDir() {
			t.Errorf("%s not created", dir)
		}
	}
}
