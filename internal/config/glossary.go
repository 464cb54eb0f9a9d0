package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GlossaryConfig is the structure of the optional seed glossary YAML file.
// Teams keep their starter terms in version control and load them on first
// deploy or via the admin seed endpoint.
type GlossaryConfig struct {
	Terms []GlossaryTerm `yaml:"terms"`
}

// GlossaryTerm is one seed entry.
type GlossaryTerm struct {
	Name       string `yaml:"name"`
	Definition string `yaml:"definition"`
}

// LoadGlossary loads the seed glossary from the configured YAML file.
// Returns nil without error if the file doesn't exist; the file is optional.
func (c *Config) LoadGlossary() (*GlossaryConfig, error) {
	data, err := os.ReadFile(c.GlossaryFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var glossary GlossaryConfig
	if err := yaml.Unmarshal(data, &glossary); err != nil {
		return nil, fmt.Errorf("failed to parse glossary file %s: %w", c.GlossaryFile, err)
	}

	for i, term := range glossary.Terms {
		if term.Name == "" {
			return nil, fmt.Errorf("glossary file %s: term %d has no name", c.GlossaryFile, i+1)
		}
	}

	return &glossary, nil
}
