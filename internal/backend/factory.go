package backend

import (
	"fmt"

	applog "kharcha/internal/log"
	"kharcha/internal/storage"
)

// Factory creates snapshot backends based on configuration
type Factory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) *Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Factory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateBackend builds the KV store named by the config, together with
// the cleanup function the caller runs at shutdown.
func (f *Factory) CreateBackend(config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		kv, err := storage.NewSQLiteKV(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", applog.FieldBackend, config.Type, "db_path", config.SQLiteDBPath)
		return &Result{KV: kv, Cleanup: kv.Close}, nil

	case MemoryBackend:
		kv := storage.NewMemoryKV()
		f.logger.Info("Initialized memory backend", applog.FieldBackend, config.Type)
		return &Result{KV: kv, Cleanup: kv.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
