package memory

import (
	"eventsBoard/internal/models"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"

	_ "embed"
)

//go:embed seed.yaml
var defaultSeed []byte

type SeedUser struct {
	models.User `yaml:",inline"`
	Password    string `yaml:"password"`
}

type Seed struct {
	Categories []models.Category `yaml:"categories"`
	Users      []SeedUser        `yaml:"users"`
	Events     []models.Event    `yaml:"events"`
}

// DefaultSeed returns the bundled demo data. Events are listed newest first.
func DefaultSeed() (Seed, error) {
	return parseSeed(defaultSeed)
}

func LoadSeed(path string) (Seed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}

	return parseSeed(b)
}

func parseSeed(b []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}

	for i, e := range s.Events {
		if e.Status == "" {
			s.Events[i].Status = models.StatusPending
		}
		if !s.Events[i].Status.Valid() {
			return Seed{}, fmt.Errorf("parse seed: event %q has invalid status %q", e.ID, e.Status)
		}
	}

	return s, nil
}
