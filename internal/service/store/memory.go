package store

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"sicet/internal/model"
)

// MemoryStore holds the dataset of the most recent ingestion plus a
// content-hash memo of previously parsed workbooks. Ingestion itself is a
// pure function; the cache lives here, outside the pipeline, keyed by the
// upload's bytes.
type MemoryStore struct {
	mu         sync.RWMutex
	dataset    *model.Dataset
	report     *model.IngestReport
	fileName   string
	uploadedAt time.Time
	memo       map[string]memoEntry
}

type memoEntry struct {
	dataset *model.Dataset
	report  *model.IngestReport
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		memo: make(map[string]memoEntry),
	}
}

// HashContent returns the memo key for an upload's raw bytes.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// SetDataset replaces the current dataset wholesale.
func (s *MemoryStore) SetDataset(fileName string, d *model.Dataset, r *model.IngestReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = d
	s.report = r
	s.fileName = fileName
	s.uploadedAt = time.Now()
}

// Dataset returns the current dataset, nil before the first upload.
func (s *MemoryStore) Dataset() *model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Report returns the current ingest report, nil before the first upload.
func (s *MemoryStore) Report() *model.IngestReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// Status reports the current upload's metadata.
func (s *MemoryStore) Status() (fileName string, uploadedAt time.Time, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fileName, s.uploadedAt, s.dataset != nil
}

// Cached returns the memoized result for a content hash.
func (s *MemoryStore) Cached(hash string) (*model.Dataset, *model.IngestReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.memo[hash]
	if !ok {
		return nil, nil, false
	}
	return e.dataset, e.report, true
}

// Memoize records an ingestion result under its content hash. Datasets are
// immutable, so serving the same pointer to later identical uploads is safe.
func (s *MemoryStore) Memoize(hash string, d *model.Dataset, r *model.IngestReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memo[hash] = memoEntry{dataset: d, report: r}
}

// Clear drops the current dataset and the memo cache.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = nil
	s.report = nil
	s.fileName = ""
	s.uploadedAt = time.Time{}
	s.memo = make(map[string]memoEntry)
}
