package file_test

import (
	"reflect"
	"testing"

	"file-relay/pkg/file"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"mp4", "clip.mp4", file.TypeVideo},
		{"upper case", "CLIP.MOV", file.TypeVideo},
		{"ogg resolves to video", "track.ogg", file.TypeVideo},
		{"png", "a.png", file.TypeImage},
		{"svg", "logo.svg", file.TypeImage},
		{"flac", "song.flac", file.TypeAudio},
		{"txt", "a.txt", file.TypeDocument},
		{"docx", "report.docx", file.TypeDocument},
		{"unknown", "archive.zip", file.TypeOther},
		{"no extension", "Makefile", file.TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := file.Classify(tt.filename); got != tt.expected {
				t.Errorf("Classify(%q) = %q, want %q", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestDeriveID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://files.example/deadbeef.txt", "deadbeef"},
		{"https://files.catbox.moe/abc123.mp4\n", "abc123"},
		{"https://file.io/XyZ09", "XyZ09"},
		{"https://files.example/archive.tar.gz", "archive"},
		{"https://files.example/abc.png?download=1", "abc"},
		{"https://file.io/key/", "key"},
		{"https://files.example/abc.mp4#t=10", "abc"},
		{"https://", ""},
		{"https://files.catbox.moe/", ""},
		{"https://files.example/.hidden", ""},
		{"https://bad host/x.mp4", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := file.DeriveID(tt.url); got != tt.expected {
				t.Errorf("DeriveID(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 Bytes"},
		{10, "10 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{200 * 1024 * 1024, "200 MB"},
		{1288490189, "1.2 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := file.FormatBytes(tt.bytes, 2); got != tt.expected {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestSplitAndJoinPath(t *testing.T) {
	parts := file.SplitPath("//photos/2024//trip/")
	want := []string{"photos", "2024", "trip"}
	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("SplitPath = %v, want %v", parts, want)
	}
	if got := file.JoinPath("photos/", "/2024", "trip"); got != "/photos/2024/trip" {
		t.Errorf("JoinPath = %q", got)
	}
	if got := file.JoinPath(""); got != "/" {
		t.Errorf("JoinPath(\"\") = %q, want /", got)
	}
}
