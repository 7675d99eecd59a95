package storage

import (
	"xmind2zentao/internal/config"
	"xmind2zentao/internal/domain"
)

// Storage persists and loads ZenTao import files.
type Storage interface {
	// Save replaces any file at path with the header and rows.
	Save(path string, rows []domain.Row) error
	// Load reads the data rows of an import file, header excluded.
	Load(path string) ([]domain.Row, error)
}

// CSVStorage stores rows as comma-separated values in the configured encoding.
type CSVStorage struct {
	cfg *config.Config
}

// NewCSVStorage returns a Storage that reads/writes CSV import files.
func NewCSVStorage(cfg *config.Config) *CSVStorage {
	return &CSVStorage{cfg: cfg}
}
