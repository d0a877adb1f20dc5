package query

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/store"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

var errBadArgs = errors.New("malformed query arguments")

// Env is what every query sees: the database and the reference date used
// for age computations.
type Env struct {
	DB            *store.Database
	ReferenceDate types.Date
}

// Definition packages one query type's operations. GenerateStats is
// optional; when present it runs once per type, over every instance of that
// type, before any of them executes.
type Definition struct {
	Parse         func(args []string) (any, error)
	GenerateStats func(env *Env, instances []*Instance) any
	Execute       func(env *Env, stats any, inst *Instance, w *Writer) error
}

// Catalogue is the immutable dispatch table, indexed by query type minus
// one.
var Catalogue = [10]Definition{
	{Parse: parseQ1, Execute: execQ1},
	{Parse: parseQ2, Execute: execQ2},
	{Parse: parseQ3, Execute: execQ3},
	{Parse: parseQ4, Execute: execQ4},
	{Parse: parseQ5, Execute: execQ5},
	{Parse: parseQ6, Execute: execQ6},
	{Parse: parseQ7, Execute: execQ7},
	{Parse: parseQ8, Execute: execQ8},
	{Parse: parseQ9, Execute: execQ9},
	{Parse: parseQ10, GenerateStats: statsQ10, Execute: execQ10},
}

// BuildStats runs each type's pre-aggregation across its instances. The
// returned slice is indexed by query type minus one.
func BuildStats(env *Env, instances []*Instance) []any {
	stats := make([]any, len(Catalogue))
	byType := make(map[int][]*Instance)
	for _, instance := range instances {
		if instance.Runnable() {
			byType[instance.Type] = append(byType[instance.Type], instance)
		}
	}
	for queryType, group := range byType {
		if generate := Catalogue[queryType-1].GenerateStats; generate != nil {
			stats[queryType-1] = generate(env, group)
		}
	}
	return stats
}

// RunScript executes every instance in source order, writing
// command<n>_output.txt files under outputDir. Unrunnable instances still
// get their (empty) output file so the numbering matches the script.
func RunScript(env *Env, instances []*Instance, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	stats := BuildStats(env, instances)
	for i, instance := range instances {
		path := filepath.Join(outputDir, fmt.Sprintf("command%d_output.txt", i+1))
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create query output: %w", err)
		}
		if instance.Runnable() {
			writer := NewWriter(file, instance.Formatted)
			execErr := Catalogue[instance.Type-1].Execute(env, stats[instance.Type-1], instance, writer)
			if execErr == nil {
				execErr = writer.Close()
			}
			if execErr != nil {
				file.Close()
				return fmt.Errorf("query %d (line %d): %w", instance.Type, instance.Line, execErr)
			}
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("close query output: %w", err)
		}
	}
	return nil
}

// Execute runs a single instance against already-built stats; used by the
// interactive session.
func Execute(env *Env, instance *Instance, w *Writer) error {
	if !instance.Runnable() {
		return errBadArgs
	}
	var stats any
	if generate := Catalogue[instance.Type-1].GenerateStats; generate != nil {
		stats = generate(env, []*Instance{instance})
	}
	return Catalogue[instance.Type-1].Execute(env, stats, instance, w)
}
