package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"file-relay/pkg/errors"
)

const fileIOURL = "https://file.io"

// FileIO uploads to file.io. Files there expire (Expires, default "1y")
// or vanish after the first download, which the local index does not track.
type FileIO struct {
	BaseURL string
	Expires string
	client  *http.Client
}

type fileIOResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
	Link    string `json:"link"`
	Expires string `json:"expires"`
	Size    int64  `json:"size"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func NewFileIO(timeout time.Duration, expires string) *FileIO {
	if expires == "" {
		expires = "1y"
	}
	return &FileIO{
		BaseURL: fileIOURL,
		Expires: expires,
		client:  &http.Client{Timeout: timeout},
	}
}

func (f *FileIO) Name() string { return "file.io" }

func (f *FileIO) Upload(ctx context.Context, filename string, body io.Reader) (string, error) {
	resp, err := postMultipart(ctx, f.client, f.BaseURL,
		[]formField{{name: "expires", value: f.Expires}},
		"file", filename, body)
	if err != nil {
		return "", errors.ErrUpstreamTransport(f.Name(), err)
	}
	defer resp.Body.Close()

	text, err := readLimited(resp.Body)
	if err != nil {
		return "", errors.ErrInvalidResponse(f.Name(), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.ErrUpstream(http.StatusText(resp.StatusCode), text)
	}

	var data fileIOResponse
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return "", errors.ErrInvalidResponse(f.Name(), err)
	}
	if !data.Success {
		return "", errors.ErrUpstreamRejected(f.Name(), data.Message)
	}
	link := strings.TrimSpace(data.Link)
	if link == "" {
		return "", errors.ErrInvalidResponse(f.Name(), nil)
	}
	return link, nil
}
