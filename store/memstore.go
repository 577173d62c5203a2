package store

import (
	"sync"

	"github.com/google/uuid"
)

// MemStore is a thread-safe in-memory document engine. It is the sole
// backing store for single-process deployments and the engine used by every
// repository test. Unique indexes are declared per collection at
// construction time and enforced under the write lock, so concurrent
// check-then-insert callers cannot both succeed.
type MemStore struct {
	mu      sync.RWMutex
	data    map[string][]Document
	indexes map[string][][]string // collection -> list of unique field sets
}

var _ Store = (*MemStore)(nil)

// NewMemStore initializes an empty engine with the given unique indexes,
// e.g. {"account": {{"email"}}, "membership": {{"org_id", "user_id"}}}.
func NewMemStore(uniqueIndexes map[string][][]string) *MemStore {
	if uniqueIndexes == nil {
		uniqueIndexes = make(map[string][][]string)
	}
	return &MemStore{
		data:    make(map[string][]Document),
		indexes: uniqueIndexes,
	}
}

func (m *MemStore) FindOne(collection string, filter Filter) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.data[collection] {
		if Matches(doc, filter) {
			return copyDocument(doc), nil
		}
	}
	return nil, ErrNoDocument
}

func (m *MemStore) Find(collection string, filter Filter, limit int) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]Document, 0)
	for _, doc := range m.data[collection] {
		if !Matches(doc, filter) {
			continue
		}
		results = append(results, copyDocument(doc))
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

func (m *MemStore) Insert(collection string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, fields := range m.indexes[collection] {
		if m.violatesUnique(collection, doc, fields) {
			return "", &DuplicateError{Collection: collection, Fields: fields}
		}
	}

	stored := copyDocument(doc)
	id := uuid.New().String()
	stored["_id"] = id
	m.data[collection] = append(m.data[collection], stored)
	return id, nil
}

func (m *MemStore) Update(collection, id string, patch Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.data[collection] {
		if doc["_id"] != id {
			continue
		}
		for k, v := range patch {
			if k == "_id" {
				continue
			}
			doc[k] = v
		}
		return nil
	}
	return ErrNoDocument
}

func (m *MemStore) Collections() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	return names, nil
}

// violatesUnique MUST be called while holding m.mu.
func (m *MemStore) violatesUnique(collection string, doc Document, fields []string) bool {
	for _, existing := range m.data[collection] {
		same := true
		for _, f := range fields {
			if existing[f] != doc[f] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}

// copyDocument shields callers from aliasing the stored maps and slices.
func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		switch t := v.(type) {
		case []string:
			out[k] = append([]string(nil), t...)
		case map[string]string:
			mc := make(map[string]string, len(t))
			for mk, mv := range t {
				mc[mk] = mv
			}
			out[k] = mc
		case []byte:
			out[k] = append([]byte(nil), t...)
		default:
			out[k] = v
		}
	}
	return out
}
