package replvars

import (
	"context"
	"sort"
	"sync"
)

// ToolStore is the host data layer the maintenance tools operate on:
// the options table, post meta and the plugin's own tables.
type ToolStore interface {
	// OptionNames returns option names containing substr, sorted.
	OptionNames(ctx context.Context, substr string) ([]string, error)

	// DeleteOption removes an option. Deleting a missing option is a no-op.
	DeleteOption(ctx context.Context, name string) error

	// SetOption creates or replaces an option value.
	SetOption(ctx context.Context, name, value string) error

	// TruncateTables removes every row of the named tables. Names are
	// unprefixed; the store applies its table prefix.
	TruncateTables(ctx context.Context, tables ...string) error

	// PostsWithMeta returns the ids of posts whose meta key has value, sorted.
	PostsWithMeta(ctx context.Context, key, value string) ([]int64, error)

	// SetPostMeta creates or replaces a post meta value.
	SetPostMeta(ctx context.Context, postID int64, key, value string) error

	// Close releases the store's resources.
	Close() error
}

// ToolStoreDriver opens tool stores from a connection string.
type ToolStoreDriver interface {
	Open(dsn string, cfg ToolsConfig) (ToolStore, error)
}

// Tool store driver names
const (
	StoreDriverNameMemory   = "memory"
	StoreDriverNamePostgres = "postgres"
)

// Tool store driver registry
var (
	storeDriversMu sync.RWMutex
	storeDrivers   = make(map[string]ToolStoreDriver)
)

// RegisterToolStoreDriver registers a driver by name, typically from init().
// Panics on a nil driver or a duplicate name.
func RegisterToolStoreDriver(name string, driver ToolStoreDriver) {
	storeDriversMu.Lock()
	defer storeDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilStoreDriver)
	}
	if _, exists := storeDrivers[name]; exists {
		panic(ErrMsgStoreDriverRegistered + ": " + name)
	}
	storeDrivers[name] = driver
}

// OpenToolStore opens a store using cfg.Driver and cfg.DSN.
func OpenToolStore(cfg ToolsConfig) (ToolStore, error) {
	storeDriversMu.RLock()
	driver, ok := storeDrivers[cfg.Driver]
	storeDriversMu.RUnlock()

	if !ok {
		return nil, &StoreError{Message: ErrMsgStoreDriverNotFound, Name: cfg.Driver}
	}
	return driver.Open(cfg.DSN, cfg)
}

// ListToolStoreDrivers returns the registered driver names, sorted.
func ListToolStoreDrivers() []string {
	storeDriversMu.RLock()
	defer storeDriversMu.RUnlock()

	names := make([]string, 0, len(storeDrivers))
	for name := range storeDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Store error message constants
const (
	ErrMsgNilStoreDriver        = "tool store driver is nil"
	ErrMsgStoreDriverRegistered = "tool store driver already registered"
	ErrMsgStoreDriverNotFound   = "tool store driver not found"
	ErrMsgStoreClosed           = "tool store is closed"
	ErrMsgStoreUnknownTable     = "unknown table"
	ErrMsgStoreEmptyOptionName  = "option name cannot be empty"
)

// StoreError represents a tool store error.
type StoreError struct {
	Message string
	Name    string
	Cause   error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	msg := e.Message
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// NewStoreClosedError creates an error for operations on a closed store.
func NewStoreClosedError() error {
	return &StoreError{Message: ErrMsgStoreClosed}
}
