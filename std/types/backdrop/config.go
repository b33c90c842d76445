package backdrop

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// WorkerConfig configures a trash Worker.
type WorkerConfig struct {
	// Name used to tag log lines of the worker
	Name string `json:"name"`
	// Number of drops after which the worker yields the processor
	BatchSize int `json:"batch_size"`
	// Log every batch at debug level
	LogBatches bool `json:"log_batches"`
}

// DefaultWorkerConfig returns the configuration of the default worker.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		Name:      "trash-worker",
		BatchSize: 256,
	}
}

// Validate checks the configuration for values the worker cannot run with.
func (c WorkerConfig) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch_size must be positive, got %d", ErrInvalidConfig, c.BatchSize)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidConfig)
	}
	return nil
}

// ParseWorkerConfig decodes YAML over the default configuration.
// Unknown keys are rejected; empty input yields the defaults.
func ParseWorkerConfig(data []byte) (WorkerConfig, error) {
	config := DefaultWorkerConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return config, config.Validate()
}
