package storage

import (
	"bytes"
	"errors"
	"testing"
)

func TestStores(t *testing.T) {
	file, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   file,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get("missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get missing key err = %v, want ErrNotFound", err)
			}

			if err := store.Set("doc", []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := store.Get("doc")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !bytes.Equal(got, []byte(`{"a":1}`)) {
				t.Errorf("Get = %q", got)
			}

			// Перезапись целиком
			if err := store.Set("doc", []byte(`{"b":2}`)); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			got, _ = store.Get("doc")
			if !bytes.Equal(got, []byte(`{"b":2}`)) {
				t.Errorf("Get after overwrite = %q", got)
			}

			if err := store.Remove("doc"); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if _, err := store.Get("doc"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get removed key err = %v, want ErrNotFound", err)
			}

			// Удаление несуществующего ключа не считается ошибкой
			if err := store.Remove("doc"); err != nil {
				t.Errorf("Remove missing key err = %v, want nil", err)
			}
		})
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	store := NewMemoryStore()

	value := []byte("original")
	store.Set("k", value)
	value[0] = 'X'

	got, err := store.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "original" {
		t.Errorf("stored value shares memory with caller: %q", got)
	}

	got[0] = 'Y'
	again, _ := store.Get("k")
	if string(again) != "original" {
		t.Errorf("returned value shares memory with store: %q", again)
	}
}
