// Package config holds the runtime settings of the voyagedb command.
package config

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

const (
	defaultOutputDir     = "Resultados"
	defaultReferenceDate = "2023/10/01"
)

// Config aggregates the settings that are not positional arguments: where
// output files land and the date age computations are relative to.
type Config struct {
	OutputDir     string
	ReferenceDate string

	referenceDate types.Date
}

// Validate fills defaults and checks the configuration. The reference date
// is parsed here so later code can take it as a value.
func (cfg *Config) Validate() error {
	cfg.OutputDir = defaultIfEmpty(cfg.OutputDir, defaultOutputDir)
	cfg.ReferenceDate = defaultIfEmpty(cfg.ReferenceDate, defaultReferenceDate)
	if err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.OutputDir, validation.Required),
		validation.Field(&cfg.ReferenceDate, validation.Required, validation.By(checkDate)),
	); err != nil {
		return err
	}
	date, err := types.ParseDate(cfg.ReferenceDate)
	if err != nil {
		return fmt.Errorf("reference date: %w", err)
	}
	cfg.referenceDate = date
	return nil
}

// ReferenceDateValue returns the parsed reference date; Validate must have
// succeeded first.
func (cfg *Config) ReferenceDateValue() types.Date {
	return cfg.referenceDate
}

func checkDate(value interface{}) error {
	s, _ := value.(string)
	if _, err := types.ParseDate(s); err != nil {
		return fmt.Errorf("want YYYY/MM/DD: %w", err)
	}
	return nil
}

func defaultIfEmpty(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
