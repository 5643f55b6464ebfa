package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MKhiriev/health-portal/internal/adapter"
)

// fakeDocumentStore is an in-memory stand-in for the remote store. Any fn
// field left nil falls back to the in-memory behaviour.
type fakeDocumentStore struct {
	mu        sync.Mutex
	databases map[string]bool
	docs      map[string][]json.RawMessage
	nextID    int
	infoCalls int

	serverInformationFn func(ctx context.Context) (adapter.ServerInfo, error)
	databaseExistsFn    func(ctx context.Context, db string) (bool, error)
	createDatabaseFn    func(ctx context.Context, db string) error
	findFn              func(ctx context.Context, db string, query adapter.FindQuery) ([]json.RawMessage, error)
	postDocumentFn      func(ctx context.Context, db string, doc any) (adapter.DocumentResult, error)
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{
		databases: make(map[string]bool),
		docs:      make(map[string][]json.RawMessage),
	}
}

func (f *fakeDocumentStore) ServerInformation(ctx context.Context) (adapter.ServerInfo, error) {
	f.mu.Lock()
	f.infoCalls++
	f.mu.Unlock()

	if f.serverInformationFn != nil {
		return f.serverInformationFn(ctx)
	}
	return adapter.ServerInfo{CouchDB: "Welcome", Version: "3.3.3"}, nil
}

func (f *fakeDocumentStore) DatabaseExists(ctx context.Context, db string) (bool, error) {
	if f.databaseExistsFn != nil {
		return f.databaseExistsFn(ctx, db)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.databases[db], nil
}

func (f *fakeDocumentStore) CreateDatabase(ctx context.Context, db string) error {
	if f.createDatabaseFn != nil {
		return f.createDatabaseFn(ctx, db)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.databases[db] = true
	return nil
}

func (f *fakeDocumentStore) Find(ctx context.Context, db string, query adapter.FindQuery) ([]json.RawMessage, error) {
	if f.findFn != nil {
		return f.findFn(ctx, db, query)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []json.RawMessage
	for _, raw := range f.docs[db] {
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		if matches(doc, query.Selector) {
			out = append(out, raw)
			if query.Limit > 0 && len(out) == query.Limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeDocumentStore) PostDocument(ctx context.Context, db string, doc any) (adapter.DocumentResult, error) {
	if f.postDocumentFn != nil {
		return f.postDocumentFn(ctx, db, doc)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := "doc-" + string(rune('a'+f.nextID-1))

	raw, err := json.Marshal(doc)
	if err != nil {
		return adapter.DocumentResult{}, err
	}
	var m map[string]any
	if err = json.Unmarshal(raw, &m); err != nil {
		return adapter.DocumentResult{}, err
	}
	m["_id"] = id
	m["_rev"] = "1-x"
	raw, _ = json.Marshal(m)
	f.docs[db] = append(f.docs[db], raw)

	return adapter.DocumentResult{OK: true, ID: id, Rev: "1-x"}, nil
}

func (f *fakeDocumentStore) livenessCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.infoCalls
}

func matches(doc, selector map[string]any) bool {
	for key, want := range selector {
		if doc[key] != want {
			return false
		}
	}
	return true
}

// fakeProvider hands out a fixed document store, or an error.
type fakeProvider struct {
	docs      adapter.DocumentStore
	err       error
	available bool
	failures  []error
}

func (p *fakeProvider) Collection(_ context.Context, _ string) (adapter.DocumentStore, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.docs, nil
}

func (p *fakeProvider) ReportFailure(err error) {
	p.failures = append(p.failures, err)
}

func (p *fakeProvider) Available(_ context.Context) bool {
	return p.available
}
