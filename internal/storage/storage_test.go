package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestPutGetRoundTrip(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.Put("k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Get = %s, want {\"a\":1}", got)
	}
}

func TestPutOverwrites(t *testing.T) {
	s, _ := openTestStore(t)

	s.Put("k", []byte("first"))
	s.Put("k", []byte("second"))

	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get = %s, want second", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Get("absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(absent) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, _ := openTestStore(t)

	s.Put("k", []byte("v"))
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
}

func TestDataSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Put("k", []byte("durable"))
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get("k")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != "durable" {
		t.Errorf("Get = %s, want durable", got)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") succeeded, want error")
	}
}
