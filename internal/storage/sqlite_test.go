package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "kharcha.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()

	if _, ok, err := kv.Get(ctx, "expenses"); err != nil || ok {
		t.Fatalf("missing key should be absent without error, ok=%v err=%v", ok, err)
	}

	if err := kv.Put(ctx, "expenses", `[]`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put(ctx, "expenses", `[{"id":"a"}]`); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if v, ok, _ := kv.Get(ctx, "expenses"); !ok || v != `[{"id":"a"}]` {
		t.Fatalf("expected upserted value, got %q ok=%v", v, ok)
	}

	if err := kv.Delete(ctx, "expenses"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "expenses"); ok {
		t.Fatalf("key should be gone after delete")
	}
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kharcha.db")

	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Put(ctx, "view", "analytics"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	kv, err = NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()
	if v, ok, _ := kv.Get(ctx, "view"); !ok || v != "analytics" {
		t.Fatalf("expected persisted value, got %q ok=%v", v, ok)
	}
}
