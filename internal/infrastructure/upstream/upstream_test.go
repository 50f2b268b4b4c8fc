package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"file-relay/internal/pkg/config"
	"file-relay/pkg/errors"
)

type receivedForm struct {
	fields   map[string]string
	filename string
	content  string
}

// formServer answers every POST with status/reply and records the form it got.
func formServer(t *testing.T, fileField string, status int, reply string) (*httptest.Server, *receivedForm) {
	t.Helper()
	got := &receivedForm{fields: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		for k, v := range r.MultipartForm.Value {
			got.fields[k] = v[0]
		}
		f, hdr, err := r.FormFile(fileField)
		if err != nil {
			t.Errorf("missing file field %q: %v", fileField, err)
		} else {
			data, _ := io.ReadAll(f)
			got.filename = hdr.Filename
			got.content = string(data)
		}
		w.WriteHeader(status)
		io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestCatboxUpload(t *testing.T) {
	srv, got := formServer(t, "fileToUpload", http.StatusOK, "https://files.catbox.moe/abc123.mp4\n")
	c := NewCatbox(5 * time.Second)
	c.BaseURL = srv.URL

	url, err := c.Upload(context.Background(), "clip.mp4", strings.NewReader("0123456789"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://files.catbox.moe/abc123.mp4" {
		t.Errorf("url = %q", url)
	}
	if got.fields["reqtype"] != "fileupload" {
		t.Errorf("reqtype = %q", got.fields["reqtype"])
	}
	if got.filename != "clip.mp4" || got.content != "0123456789" {
		t.Errorf("file part = %q / %q", got.filename, got.content)
	}
}

func TestCatboxErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		reply   string
		code    string
		message string
	}{
		{"non success status", http.StatusPreconditionFailed, "No files given", errors.CodeUpstream, "Upload failed: Precondition Failed - No files given"},
		{"not a url", http.StatusOK, "error: something", errors.CodeInvalidResponse, "Invalid response from catbox.moe"},
		{"plain http url", http.StatusOK, "http://files.catbox.moe/x.mp4", errors.CodeInvalidResponse, "Invalid response from catbox.moe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := formServer(t, "fileToUpload", tt.status, tt.reply)
			c := NewCatbox(5 * time.Second)
			c.BaseURL = srv.URL

			_, err := c.Upload(context.Background(), "a.txt", strings.NewReader("x"))
			if !errors.HasCode(err, tt.code) {
				t.Fatalf("err = %v, want code %s", err, tt.code)
			}
			if msg := errors.Message(err); msg != tt.message {
				t.Errorf("message = %q, want %q", msg, tt.message)
			}
		})
	}
}

func TestFileIOUpload(t *testing.T) {
	srv, got := formServer(t, "file", http.StatusOK,
		`{"success":true,"key":"XyZ09","link":"https://file.io/XyZ09","expires":"2027-01-01","size":3,"name":"a.txt"}`)
	f := NewFileIO(5*time.Second, "")
	f.BaseURL = srv.URL

	url, err := f.Upload(context.Background(), "a.txt", strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://file.io/XyZ09" {
		t.Errorf("url = %q", url)
	}
	if got.fields["expires"] != "1y" {
		t.Errorf("expires = %q, want 1y", got.fields["expires"])
	}
}

func TestFileIOErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		reply  string
		code   string
	}{
		{"rejected", http.StatusOK, `{"success":false,"message":"quota exceeded"}`, errors.CodeUpstream},
		{"bad json", http.StatusOK, `<html>`, errors.CodeInvalidResponse},
		{"no link", http.StatusOK, `{"success":true}`, errors.CodeInvalidResponse},
		{"server error", http.StatusInternalServerError, `boom`, errors.CodeUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := formServer(t, "file", tt.status, tt.reply)
			f := NewFileIO(5*time.Second, "1w")
			f.BaseURL = srv.URL

			if _, err := f.Upload(context.Background(), "a.txt", strings.NewReader("x")); !errors.HasCode(err, tt.code) {
				t.Fatalf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestNewSelectsHost(t *testing.T) {
	for host, name := range map[string]string{"catbox": "catbox.moe", "fileio": "file.io", "": "catbox.moe"} {
		h, err := New(config.UploadConfig{Host: host, HostTimeout: time.Second})
		if err != nil {
			t.Fatalf("New(%q): %v", host, err)
		}
		if h.Name() != name {
			t.Errorf("New(%q).Name() = %q, want %q", host, h.Name(), name)
		}
	}
	if _, err := New(config.UploadConfig{Host: "dropbox"}); err == nil {
		t.Error("unknown host accepted")
	}
}
