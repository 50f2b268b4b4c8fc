package repositories

import (
	"context"
	"io"
)

// UpstreamHost uploads bytes to a third-party file host and returns the
// direct URL it serves them from.
type UpstreamHost interface {
	Name() string
	Upload(ctx context.Context, filename string, body io.Reader) (string, error)
}
