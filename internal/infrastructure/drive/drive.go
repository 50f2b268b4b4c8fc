package drive

import (
	"fmt"

	"file-relay/internal/domain/repositories"
	"file-relay/internal/pkg/config"
)

// New builds the backend named by cfg.Backend. Both credentials of the
// chosen backend must be present.
func New(cfg config.DriveConfig) (repositories.Drive, error) {
	switch cfg.Backend {
	case "", "mega":
		if cfg.MegaEmail == "" || cfg.MegaPassword == "" {
			return nil, fmt.Errorf("MEGA_EMAIL and MEGA_PASSWORD must be set")
		}
		return NewMegaDrive(cfg.MegaEmail, cfg.MegaPassword), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET must be set")
		}
		if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
			return nil, fmt.Errorf("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY must be set")
		}
		return NewS3Drive(cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3EndpointURL), nil
	default:
		return nil, fmt.Errorf("unknown drive backend %q", cfg.Backend)
	}
}
