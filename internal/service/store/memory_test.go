package store

import (
	"testing"

	"sicet/internal/model"
)

func testDataset(id string) *model.Dataset {
	return model.NewDataset(id, nil, nil, nil, nil, nil, nil)
}

func TestStoreLifecycle(t *testing.T) {
	s := NewMemoryStore()

	if s.Dataset() != nil {
		t.Fatal("fresh store holds a dataset")
	}
	if _, _, ok := s.Status(); ok {
		t.Fatal("fresh store reports loaded")
	}

	d := testDataset("d1")
	r := &model.IngestReport{Filename: "book.xlsx"}
	s.SetDataset("book.xlsx", d, r)

	if s.Dataset() != d {
		t.Fatal("dataset not returned after set")
	}
	if s.Report() != r {
		t.Fatal("report not returned after set")
	}
	fileName, uploadedAt, ok := s.Status()
	if !ok || fileName != "book.xlsx" || uploadedAt.IsZero() {
		t.Fatalf("status = %q %v %v", fileName, uploadedAt, ok)
	}

	s.Clear()
	if s.Dataset() != nil {
		t.Fatal("dataset survives clear")
	}
}

func TestMemoization(t *testing.T) {
	s := NewMemoryStore()
	content := []byte("workbook bytes")
	hash := HashContent(content)

	if _, _, ok := s.Cached(hash); ok {
		t.Fatal("cache hit before memoize")
	}

	d := testDataset("d1")
	r := &model.IngestReport{}
	s.Memoize(hash, d, r)

	gotD, gotR, ok := s.Cached(hash)
	if !ok {
		t.Fatal("cache miss after memoize")
	}
	if gotD != d || gotR != r {
		t.Fatal("cache returned different pointers")
	}

	if _, _, ok := s.Cached(HashContent([]byte("other bytes"))); ok {
		t.Fatal("cache hit for different content")
	}
}

func TestHashContentStable(t *testing.T) {
	a := HashContent([]byte("same"))
	b := HashContent([]byte("same"))
	if a != b {
		t.Fatalf("hashes differ for identical content: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(a))
	}
	if a == HashContent([]byte("different")) {
		t.Fatal("hashes collide for different content")
	}
}
