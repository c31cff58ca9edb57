package replvars

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryToolStore is an in-memory ToolStore. It is intended for tests and
// for dry runs of the CLI; all data is lost when the process terminates.
// Plugin tables are modeled as row counts.
type MemoryToolStore struct {
	mu       sync.RWMutex
	options  map[string]string
	postMeta map[int64]map[string]string
	tables   map[string]int
	closed   bool
}

// MemoryToolStoreDriver opens MemoryToolStore instances.
type MemoryToolStoreDriver struct{}

func init() {
	RegisterToolStoreDriver(StoreDriverNameMemory, &MemoryToolStoreDriver{})
}

// Open creates a new MemoryToolStore. The DSN is ignored.
func (d *MemoryToolStoreDriver) Open(string, ToolsConfig) (ToolStore, error) {
	return NewMemoryToolStore(), nil
}

// NewMemoryToolStore creates an empty store with every plugin table present.
func NewMemoryToolStore() *MemoryToolStore {
	tables := make(map[string]int, len(PluginTables))
	for _, t := range PluginTables {
		tables[t] = 0
	}
	return &MemoryToolStore{
		options:  make(map[string]string),
		postMeta: make(map[int64]map[string]string),
		tables:   tables,
	}
}

// OptionNames implements ToolStore.
func (s *MemoryToolStore) OptionNames(ctx context.Context, substr string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	var names []string
	for name := range s.options {
		if strings.Contains(name, substr) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// DeleteOption implements ToolStore.
func (s *MemoryToolStore) DeleteOption(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}
	delete(s.options, name)
	return nil
}

// SetOption implements ToolStore.
func (s *MemoryToolStore) SetOption(ctx context.Context, name, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return &StoreError{Message: ErrMsgStoreEmptyOptionName}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}
	s.options[name] = value
	return nil
}

// Option returns an option value.
func (s *MemoryToolStore) Option(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.options[name]
	return v, ok
}

// TruncateTables implements ToolStore. All tables are checked before any is
// emptied.
func (s *MemoryToolStore) TruncateTables(ctx context.Context, tables ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}
	for _, t := range tables {
		if _, ok := s.tables[t]; !ok {
			return &StoreError{Message: ErrMsgStoreUnknownTable, Name: t}
		}
	}
	for _, t := range tables {
		s.tables[t] = 0
	}
	return nil
}

// SetRowCount sets the number of rows a table holds, creating it if needed.
func (s *MemoryToolStore) SetRowCount(table string, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables[table] = rows
}

// RowCount returns the number of rows in a table.
func (s *MemoryToolStore) RowCount(table string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tables[table]
}

// PostsWithMeta implements ToolStore.
func (s *MemoryToolStore) PostsWithMeta(ctx context.Context, key, value string) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	var ids []int64
	for id, meta := range s.postMeta {
		if v, ok := meta[key]; ok && v == value {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// SetPostMeta implements ToolStore.
func (s *MemoryToolStore) SetPostMeta(ctx context.Context, postID int64, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}
	meta, ok := s.postMeta[postID]
	if !ok {
		meta = make(map[string]string)
		s.postMeta[postID] = meta
	}
	meta[key] = value
	return nil
}

// PostMeta returns a post meta value.
func (s *MemoryToolStore) PostMeta(postID int64, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.postMeta[postID][key]
	return v, ok
}

// Close implements ToolStore.
func (s *MemoryToolStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
