package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dtr/internal/domain"
)

// Save writes the run's stats and failure records to the results file.
func (s *JSONStorage) Save(stats domain.GlobalStats, failures []domain.CaseFailure, duration time.Duration) error {
	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalCases:      stats.Total,
			PassedCases:     stats.Passed,
			FailedCases:     stats.Failed,
			PassRate:        stats.PassRate(),
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}
	return s.SaveOutput(&output)
}

// Load reads the last run's results from the results file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetResultsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the results file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
