package upstream

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

type formField struct {
	name  string
	value string
}

// postMultipart streams a multipart form to url. The file part is copied
// from body through a pipe, so the request never holds the file in memory.
func postMultipart(ctx context.Context, client *http.Client, url string, fields []formField, fileField, filename string, body io.Reader) (*http.Response, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(writer, fields, fileField, filename, body))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return client.Do(req)
}

func writeForm(writer *multipart.Writer, fields []formField, fileField, filename string, body io.Reader) error {
	for _, f := range fields {
		if err := writer.WriteField(f.name, f.value); err != nil {
			return err
		}
	}
	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, body); err != nil {
		return err
	}
	return writer.Close()
}

// readLimited reads at most 64 KiB of a response body; upstream replies are short.
func readLimited(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	return string(data), err
}
