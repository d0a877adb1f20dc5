package query

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Instance is one parsed query-script line: its type (1..10, 0 when the
// prefix was unusable), the formatting flag from the trailing F, the 1-based
// source line and the type-specific parsed arguments. Args is nil when the
// arguments failed to parse; such instances execute as no-ops.
type Instance struct {
	Type      int
	Formatted bool
	Line      int
	Args      any
}

// Runnable reports whether the instance parsed well enough to execute.
func (inst *Instance) Runnable() bool {
	return inst.Type >= 1 && inst.Type <= len(Catalogue) && inst.Args != nil
}

// ParseScript reads one query per line. Every line yields an instance, even
// unusable ones, so output files keep their source-order numbering.
func ParseScript(r io.Reader) ([]*Instance, error) {
	var instances []*Instance
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		instances = append(instances, parseLine(scanner.Text(), lineNo))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return instances, nil
}

func parseLine(line string, lineNo int) *Instance {
	instance := &Instance{Line: lineNo}
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return instance
	}
	prefix := tokens[0]
	if strings.HasSuffix(prefix, "F") {
		instance.Formatted = true
		prefix = prefix[:len(prefix)-1]
	}
	queryType, err := strconv.Atoi(prefix)
	if err != nil || queryType < 1 || queryType > len(Catalogue) {
		return instance
	}
	instance.Type = queryType
	args, err := Catalogue[queryType-1].Parse(tokens[1:])
	if err != nil {
		return instance
	}
	instance.Args = args
	return instance
}

// Tokenize splits a script line on spaces, honouring space-delimited
// "..." quoting (no escapes).
func Tokenize(line string) []string {
	var tokens []string
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t' || line[i] == '\r') {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '"' {
			rest := line[i+1:]
			j := strings.IndexByte(rest, '"')
			if j < 0 {
				tokens = append(tokens, rest)
				break
			}
			tokens = append(tokens, rest[:j])
			i += j + 2
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' && line[j] != '\r' {
			j++
		}
		tokens = append(tokens, line[i:j])
		i = j
	}
	return tokens
}
