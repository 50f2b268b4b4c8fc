package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound("x"), http.StatusNotFound},
		{ErrUnauthorized(), http.StatusUnauthorized},
		{ErrMissingFile(nil), http.StatusBadRequest},
		{ErrFileTooLarge(10, 5), http.StatusRequestEntityTooLarge},
		{ErrUpstream("Bad Gateway", "oops"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound("y")), http.StatusNotFound},
		{stderrors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestMessage(t *testing.T) {
	if got := Message(ErrUpstream("Bad Gateway", "oops")); got != "Upload failed: Bad Gateway - oops" {
		t.Errorf("upstream message = %q", got)
	}
	if got := Message(ErrInternal(stderrors.New("db password leaked"))); got != "internal server error" {
		t.Errorf("internal message leaks cause: %q", got)
	}
	if got := Message(ErrConnect("mega", stderrors.New("bad login"))); got != "could not connect to mega: bad login" {
		t.Errorf("connect message = %q", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrNotFound("abc"))
	if !stderrors.Is(err, ErrNotFound("other")) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(err, ErrUnauthorized()) {
		t.Error("different codes must not match")
	}
	if !HasCode(err, CodeNotFound) {
		t.Error("HasCode(not_found) = false")
	}
}
