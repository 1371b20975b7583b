package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

func testRecord(hash, name string, created time.Time) Record {
	return Record{
		Hash:      hash,
		Name:      name,
		CreatedAt: created,
		Graph: ivm.Graph{
			Nodes: []ivm.Node{{ID: "a", Type: ivm.NodeTypeRepository}},
			Meta:  ivm.GraphMetadata{SchemaVersion: ivm.SchemaVersion, Name: name},
		},
	}
}

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := testRecord("abc", "demo", time.Now())
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "demo" || len(got.Graph.Nodes) != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.Save(ctx, testRecord("h", "first", time.Now()))
	_ = s.Save(ctx, testRecord("h", "second", time.Now()))

	got, _ := s.Get(ctx, "h")
	if got.Name != "second" {
		t.Errorf("name = %q, want replacement to win", got.Name)
	}

	recs, _ := s.List(ctx, 0)
	if len(recs) != 1 {
		t.Errorf("records = %d, want dedupe by hash", len(recs))
	}
}

func TestMemoryStoreListOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now()
	_ = s.Save(ctx, testRecord("a", "oldest", base.Add(-2*time.Hour)))
	_ = s.Save(ctx, testRecord("b", "middle", base.Add(-time.Hour)))
	_ = s.Save(ctx, testRecord("c", "newest", base))

	recs, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].Name != "newest" || recs[1].Name != "middle" {
		t.Errorf("order = [%s %s], want most recent first", recs[0].Name, recs[1].Name)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.Save(ctx, testRecord("x", "gone", time.Now()))
	if err := s.Delete(ctx, "x"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "x"); !errors.Is(err, ErrNotFound) {
		t.Error("record still present after delete")
	}

	// deleting a missing hash is not an error
	if err := s.Delete(ctx, "x"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}
