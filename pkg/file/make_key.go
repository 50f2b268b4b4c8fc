package file

import (
	"net/url"
	"strings"
)

// DeriveID turns a direct URL such as https://files.catbox.moe/abc123.mp4
// into the record identifier "abc123": the last path segment, cut at its
// first dot. A URL without a usable path segment yields "".
func DeriveID(directURL string) string {
	u, err := url.Parse(strings.TrimSpace(directURL))
	if err != nil {
		return ""
	}
	p := strings.TrimRight(u.Path, "/")
	segment := p[strings.LastIndex(p, "/")+1:]
	id, _, _ := strings.Cut(segment, ".")
	return id
}

// SplitPath breaks a slash separated remote path into its non-empty parts.
func SplitPath(p string) []string {
	raw := strings.Split(p, "/")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// JoinPath is the inverse of SplitPath and always yields a leading slash.
func JoinPath(parts ...string) string {
	return "/" + strings.Join(SplitPath(strings.Join(parts, "/")), "/")
}
