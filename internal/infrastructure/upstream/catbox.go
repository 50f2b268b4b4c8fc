package upstream

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"file-relay/pkg/errors"
)

const catboxURL = "https://catbox.moe/user/api.php"

// Catbox uploads anonymously to catbox.moe, which answers with the direct
// file URL as plain text.
type Catbox struct {
	BaseURL string
	client  *http.Client
}

func NewCatbox(timeout time.Duration) *Catbox {
	return &Catbox{
		BaseURL: catboxURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Catbox) Name() string { return "catbox.moe" }

func (c *Catbox) Upload(ctx context.Context, filename string, body io.Reader) (string, error) {
	resp, err := postMultipart(ctx, c.client, c.BaseURL,
		[]formField{{name: "reqtype", value: "fileupload"}},
		"fileToUpload", filename, body)
	if err != nil {
		return "", errors.ErrUpstreamTransport(c.Name(), err)
	}
	defer resp.Body.Close()

	text, err := readLimited(resp.Body)
	if err != nil {
		return "", errors.ErrInvalidResponse(c.Name(), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.ErrUpstream(http.StatusText(resp.StatusCode), text)
	}

	directURL := strings.TrimSpace(text)
	if !strings.HasPrefix(directURL, "https://") {
		return "", errors.ErrInvalidResponse(c.Name(), nil)
	}
	return directURL, nil
}
