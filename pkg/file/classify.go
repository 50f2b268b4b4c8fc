package file

import (
	"path/filepath"
	"strings"
)

const (
	TypeVideo    = "video"
	TypeImage    = "image"
	TypeAudio    = "audio"
	TypeDocument = "document"
	TypeOther    = "other"
)

// Checked in order, so an extension listed twice (.ogg) resolves to the first group.
var typeExtensions = []struct {
	fileType   string
	extensions []string
}{
	{TypeVideo, []string{".mp4", ".webm", ".ogg", ".mov", ".avi", ".mkv", ".m4v"}},
	{TypeImage, []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}},
	{TypeAudio, []string{".mp3", ".wav", ".ogg", ".m4a", ".flac"}},
	{TypeDocument, []string{".pdf", ".doc", ".docx", ".txt", ".md"}},
}

// Classify returns the coarse type of a file name by its extension.
func Classify(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return TypeOther
	}
	for _, group := range typeExtensions {
		for _, e := range group.extensions {
			if ext == e {
				return group.fileType
			}
		}
	}
	return TypeOther
}
