// Package config loads the scoring runs of the tfidf command.
// It uses koanf to read a YAML file; command-line flags override it.
package config

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/balzaczyy/goweight/core/search/weight"
)

// Default values for configuration.
const (
	DefaultScheme = weight.DefaultNormals
	DefaultSlope  = weight.DefaultSlope
	DefaultDelta  = weight.DefaultDelta
	DefaultFactor = 1.0
)

// Config describes one query term, the corpus it is scored against and
// the postings to score.
type Config struct {
	Scheme   string    `koanf:"scheme"` // normalization string, e.g. "Ptn"
	Slope    float64   `koanf:"slope"`
	Delta    float64   `koanf:"delta"`
	Factor   float64   `koanf:"factor"` // query-level normalization factor
	Stats    Stats     `koanf:"stats"`
	Postings []Posting `koanf:"postings"`
}

// Stats are the corpus statistics of the term.
type Stats struct {
	CollectionSize uint32  `koanf:"collection_size"`
	TermFreq       uint32  `koanf:"term_freq"`
	Wqf            uint32  `koanf:"wqf"`
	WdfMax         uint32  `koanf:"wdf_max"`
	DocLengthMin   uint32  `koanf:"doc_length_min"`
	DocLengthMax   uint32  `koanf:"doc_length_max"`
	AverageLength  float64 `koanf:"average_length"`
}

// Posting is one entry of the term's posting list.
type Posting struct {
	Doc         string `koanf:"doc"`
	Wdf         uint32 `koanf:"wdf"`
	DocLength   uint32 `koanf:"doc_length"`
	UniqueTerms uint32 `koanf:"unique_terms"`
}

// Default returns a configuration holding only defaults.
func Default() *Config {
	return &Config{
		Scheme: DefaultScheme,
		Slope:  DefaultSlope,
		Delta:  DefaultDelta,
		Factor: DefaultFactor,
		Stats:  Stats{Wqf: 1},
	}
}

// Load reads configFilePath over the defaults. An empty path yields the
// defaults.
func Load(configFilePath string) (*Config, error) {
	cfg := Default()
	if configFilePath == "" {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", configFilePath, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", configFilePath, err)
	}
	// Unmarshal only overwrites keys present in the file, but an
	// explicit zero wqf would silently zero every score.
	if k.Exists("stats.wqf") && cfg.Stats.Wqf == 0 {
		return nil, errors.New("config: stats.wqf must be positive")
	}
	return cfg, nil
}

// Statistics converts the configured statistics for weight.Snapshot.
func (s Stats) Statistics() *weight.Statistics {
	return &weight.Statistics{
		Docs:      s.CollectionSize,
		DocFreq:   s.TermFreq,
		QueryFreq: s.Wqf,
		MaxWdf:    s.WdfMax,
		MinLength: s.DocLengthMin,
		MaxLength: s.DocLengthMax,
		AvgLength: s.AverageLength,
	}
}

// Validate checks that the statistics need declares are consistent and
// that every posting lies within them, which MaxContribution relies on.
// Statistics the scheme never reads are not checked.
func (c *Config) Validate(need weight.StatFlags) error {
	var errs []error
	s := c.Stats
	if need.Has(weight.StatTermFreq|weight.StatCollectionSize) && s.TermFreq > s.CollectionSize {
		errs = append(errs, fmt.Errorf("term_freq %d exceeds collection_size %d", s.TermFreq, s.CollectionSize))
	}
	checkMin := need.Has(weight.StatDocLengthMin)
	checkMax := need.Has(weight.StatDocLengthMax)
	if checkMin && checkMax && s.DocLengthMin > s.DocLengthMax {
		errs = append(errs, fmt.Errorf("doc_length_min %d exceeds doc_length_max %d", s.DocLengthMin, s.DocLengthMax))
	}
	for i, p := range c.Postings {
		name := p.Doc
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if p.Wdf > s.WdfMax {
			errs = append(errs, fmt.Errorf("posting %s: wdf %d exceeds wdf_max %d", name, p.Wdf, s.WdfMax))
		}
		if checkMin && p.DocLength < s.DocLengthMin {
			errs = append(errs, fmt.Errorf("posting %s: doc_length %d below doc_length_min %d",
				name, p.DocLength, s.DocLengthMin))
		}
		if checkMax && p.DocLength > s.DocLengthMax {
			errs = append(errs, fmt.Errorf("posting %s: doc_length %d exceeds doc_length_max %d",
				name, p.DocLength, s.DocLengthMax))
		}
		if need.Has(weight.StatUniqueTerms) && p.UniqueTerms > p.DocLength {
			errs = append(errs, fmt.Errorf("posting %s: unique_terms %d exceeds doc_length %d",
				name, p.UniqueTerms, p.DocLength))
		}
	}
	return errors.Join(errs...)
}
