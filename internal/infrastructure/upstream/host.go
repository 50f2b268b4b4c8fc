package upstream

import (
	"fmt"

	"file-relay/internal/domain/repositories"
	"file-relay/internal/pkg/config"
	"file-relay/pkg/constants"
)

// New returns the upstream host named in cfg.Host.
func New(cfg config.UploadConfig) (repositories.UpstreamHost, error) {
	switch cfg.Host {
	case constants.HostCatbox, "":
		return NewCatbox(cfg.HostTimeout), nil
	case constants.HostFileIO:
		return NewFileIO(cfg.HostTimeout, cfg.FileIOExpires), nil
	default:
		return nil, fmt.Errorf("unknown upload host %q", cfg.Host)
	}
}
