package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyRepository is returned when a repository would hold no scenarios.
// It is surfaced at construction time so a game never starts without a puzzle.
var ErrEmptyRepository = errors.New("scenario repository is empty")

// #region repository

// Repository holds a fixed, non-empty scenario collection and selects from it
// uniformly at random, with replacement across games.
type Repository struct {
	scenarios []Scenario
	rng       *rand.Rand
}

// NewRepository validates the collection and wraps it in a Repository.
func NewRepository(scenarios []Scenario) (*Repository, error) {
	if len(scenarios) == 0 {
		return nil, ErrEmptyRepository
	}
	bank := make([]Scenario, len(scenarios))
	copy(bank, scenarios)
	return &Repository{
		scenarios: bank,
		rng:       rand.New(rand.NewSource(rand.Int63())),
	}, nil
}

// NewSeededRepository is NewRepository with a fixed seed, for deterministic tests.
func NewSeededRepository(scenarios []Scenario, seed int64) (*Repository, error) {
	repo, err := NewRepository(scenarios)
	if err != nil {
		return nil, err
	}
	repo.rng = rand.New(rand.NewSource(seed))
	return repo, nil
}

// Len returns the number of scenarios held.
func (r *Repository) Len() int {
	return len(r.scenarios)
}

// Select picks one scenario uniformly at random. No state carries across calls.
func (r *Repository) Select() Scenario {
	return r.scenarios[r.rng.Intn(len(r.scenarios))]
}

// #endregion repository

// #region yaml-bank

// LoadBank reads a YAML scenario bank from disk.
// The file is a list of {title, narrative, solution} entries.
func LoadBank(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}
	var bank []Scenario
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parse bank %s: %w", path, err)
	}
	return bank, nil
}

// #endregion yaml-bank
