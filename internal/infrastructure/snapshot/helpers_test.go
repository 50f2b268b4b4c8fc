package snapshot

import (
	"path/filepath"
	"testing"
	"time"

	"file-relay/internal/pkg/config"
)

const DefaultTestInterval = time.Hour

func testSnapshotConfig(t *testing.T, driver string) config.SnapshotConfig {
	t.Helper()
	return config.SnapshotConfig{
		Driver:   driver,
		Path:     filepath.Join(t.TempDir(), "files.json"),
		Interval: DefaultTestInterval,
	}
}
