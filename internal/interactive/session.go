// Package interactive runs the voyagedb prompt: load a dataset, fire
// single queries at it, inspect the result on stdout.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/config"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/ingest"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/query"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/store"
)

const prompt = "voyagedb> "

const helpText = `Commands:
  load <dataset-dir>   ingest a dataset, replacing whatever is loaded
  run <query-line>     execute one query line and print its output
  status               show how many records are loaded
  help                 this text
  exit                 leave (Ctrl-D works too)

Query lines look exactly like script lines, e.g. "1 u1" or
"5F LIS "2023/10/01 00:00:00" "2023/10/31 23:59:59"".`

// Session holds the prompt state: one database, reloaded on every load
// command.
type Session struct {
	rl     *readline.Instance
	out    io.Writer
	cfg    *config.Config
	logger *zap.Logger
	db     *store.Database
	loaded bool
}

// New opens the readline prompt.
func New(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: "/tmp/voyagedb_history",
	})
	if err != nil {
		return nil, fmt.Errorf("readline init: %w", err)
	}
	return &Session{
		rl:     rl,
		out:    rl.Stdout(),
		cfg:    cfg,
		logger: logger,
		db:     store.New(logger),
	}, nil
}

// Run loops until exit or EOF. Command errors print and keep the loop
// going; only I/O failures end it.
func (s *Session) Run() error {
	defer s.rl.Close()
	for {
		line, err := s.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		done, err := s.dispatch(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if done {
			return nil
		}
	}
}

func (s *Session) dispatch(line string) (bool, error) {
	verb, rest := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		verb, rest = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch verb {
	case "load":
		if rest == "" {
			return false, errors.New("usage: load <dataset-dir>")
		}
		return false, s.load(rest)
	case "run":
		if rest == "" {
			return false, errors.New("usage: run <query-line>")
		}
		return false, s.runQuery(rest)
	case "status":
		fmt.Fprintf(s.out, "users: %d  flights: %d  reservations: %d\n",
			s.db.Users.Len(), s.db.Flights.Len(), s.db.Reservations.Len())
		return false, nil
	case "help":
		fmt.Fprintln(s.out, helpText)
		return false, nil
	case "exit", "quit":
		return true, nil
	}
	return false, fmt.Errorf("unknown command %q (try help)", verb)
}

func (s *Session) load(datasetDir string) error {
	s.db.Reset()
	result, err := ingest.Run(s.db, datasetDir, s.cfg.OutputDir, s.logger)
	if err != nil {
		return err
	}
	s.loaded = true
	fmt.Fprintf(s.out, "loaded %d users, %d flights, %d passengers, %d reservations (%d rows rejected)\n",
		result.Users.Read-result.Users.Rejected,
		result.Flights.Read-result.Flights.Rejected,
		result.Passengers.Read-result.Passengers.Rejected,
		result.Reservations.Read-result.Reservations.Rejected,
		result.Users.Rejected+result.Flights.Rejected+result.Passengers.Rejected+result.Reservations.Rejected)
	return nil
}

func (s *Session) runQuery(line string) error {
	if !s.loaded {
		return errors.New("no dataset loaded (use load first)")
	}
	instances, err := query.ParseScript(strings.NewReader(line))
	if err != nil {
		return err
	}
	if len(instances) != 1 || !instances[0].Runnable() {
		return errors.New("malformed query line")
	}
	env := &query.Env{DB: s.db, ReferenceDate: s.cfg.ReferenceDateValue()}
	w := query.NewBuffered(instances[0].Formatted)
	if err := query.Execute(env, instances[0], w); err != nil {
		return err
	}
	lines := w.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "(no results)")
		return nil
	}
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
	return nil
}
