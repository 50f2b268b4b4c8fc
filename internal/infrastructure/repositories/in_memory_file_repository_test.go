package repositories

import (
	"sort"
	"sync"
	"testing"

	"file-relay/internal/domain/entities"
	"file-relay/pkg/errors"
)

func record(id string) entities.FileRecord {
	return entities.FileRecord{ID: id, Name: id + ".mp4", URL: "https://files.example/" + id + ".mp4", Size: 10, Type: "video"}
}

func TestInMemoryFileRepositoryPutGet(t *testing.T) {
	repo := NewInMemoryFileRepository()
	repo.Put(record("a"))

	got, err := repo.Get("a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got != record("a") {
		t.Errorf("got %+v, want %+v", *got, record("a"))
	}

	got.Name = "mutated"
	again, _ := repo.Get("a")
	if again.Name != "a.mp4" {
		t.Errorf("Get returned a shared pointer, stored name changed to %q", again.Name)
	}
}

func TestInMemoryFileRepositoryGetMissing(t *testing.T) {
	repo := NewInMemoryFileRepository()
	_, err := repo.Get("nope")
	if !errors.HasCode(err, errors.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestInMemoryFileRepositoryDeleteIsolated(t *testing.T) {
	repo := NewInMemoryFileRepository()
	repo.Put(record("a"))
	repo.Put(record("b"))

	if !repo.Delete("a") {
		t.Fatal("Delete(a) = false, want true")
	}
	if repo.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}
	if _, err := repo.Get("a"); err == nil {
		t.Error("a still present after delete")
	}
	if _, err := repo.Get("b"); err != nil {
		t.Errorf("b affected by deleting a: %v", err)
	}
	if repo.Len() != 1 {
		t.Errorf("Len = %d, want 1", repo.Len())
	}
}

func TestInMemoryFileRepositoryReplaceAll(t *testing.T) {
	repo := NewInMemoryFileRepository()
	repo.Put(record("old"))

	dup := record("b")
	dup.Name = "second.mp4"
	repo.ReplaceAll([]entities.FileRecord{record("a"), record("b"), dup})

	ids := make([]string, 0)
	for _, r := range repo.List() {
		ids = append(ids, r.ID)
	}
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("ids = %v, want [a b]", ids)
	}
	got, _ := repo.Get("b")
	if got.Name != "second.mp4" {
		t.Errorf("later duplicate should win, got %q", got.Name)
	}
}

func TestInMemoryFileRepositoryConcurrentAccess(t *testing.T) {
	repo := NewInMemoryFileRepository()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			repo.Put(record(string(rune('a' + i%26))))
		}(i)
		go func() {
			defer wg.Done()
			_ = repo.List()
		}()
	}
	wg.Wait()
	if repo.Len() != 26 {
		t.Errorf("Len = %d, want 26", repo.Len())
	}
}
