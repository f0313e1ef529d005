package storage

import (
	"time"

	"dtr/internal/config"
	"dtr/internal/domain"
)

// Storage persists and loads run results (consumed by the failures viewer).
type Storage interface {
	Save(stats domain.GlobalStats, failures []domain.CaseFailure, duration time.Duration) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output back (e.g. after resolved toggles).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file at the configured results path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage reading/writing the config's results path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
