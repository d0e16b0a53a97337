package experiment

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigInvalid indicates a missing or inconsistent configuration
// field.
var ErrConfigInvalid = errors.New("experiment: invalid config")

// Pair names two genes.
type Pair struct {
	A string `yaml:"a" json:"a"`
	B string `yaml:"b" json:"b"`
}

// KnownRelations supplies training and evaluation pairs for the
// relatedness classifier.
type KnownRelations struct {
	Related    []Pair `yaml:"related" json:"related"`
	Unrelated  []Pair `yaml:"unrelated" json:"unrelated"`
	Test       []Pair `yaml:"test" json:"test"`
	TestLabels []bool `yaml:"test_labels" json:"test_labels"`
}

// Config drives one experiment run.
type Config struct {
	// DataPath locates the BioGRID interaction TSV.
	DataPath string `yaml:"data_path"`

	// PathwayPath optionally locates a gene→pathway TSV; required when
	// Pathways is non-empty.
	PathwayPath string `yaml:"pathway_path"`

	// Seed drives the oracle sampling.
	Seed uint64 `yaml:"seed"`

	// P1, P2 optionally override the sampling probabilities.
	P1 *float64 `yaml:"p1"`
	P2 *float64 `yaml:"p2"`

	// Parallelism bounds the build worker group; 0 means GOMAXPROCS.
	Parallelism int `yaml:"parallelism"`

	// Pathways lists the pathway names to aggregate ASPL over.
	Pathways []string `yaml:"pathways_to_analyze"`

	// Known, when present, enables the classifier stage.
	Known *KnownRelations `yaml:"known_relations"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("experiment: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and cross-field consistency.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("%w: data_path is required", ErrConfigInvalid)
	}
	if len(c.Pathways) > 0 && c.PathwayPath == "" {
		return fmt.Errorf("%w: pathway_path is required when pathways_to_analyze is set", ErrConfigInvalid)
	}
	if c.Known != nil {
		if len(c.Known.Related) == 0 || len(c.Known.Unrelated) == 0 {
			return fmt.Errorf("%w: known_relations needs related and unrelated pairs", ErrConfigInvalid)
		}
		if len(c.Known.Test) != len(c.Known.TestLabels) {
			return fmt.Errorf("%w: test and test_labels differ in length (%d vs %d)",
				ErrConfigInvalid, len(c.Known.Test), len(c.Known.TestLabels))
		}
	}
	return nil
}
