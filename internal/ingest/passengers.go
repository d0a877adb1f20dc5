package ingest

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/csvdec"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/store"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

type passengerRow struct {
	userID string
	raw    []byte
}

// passengerLoader consumes passengers.csv, which the input contract
// guarantees is sorted by flight id. Rows are batched per flight and the
// batch is committed when the flight id changes or the stream ends: the
// flight's passenger count becomes the batch size, and an over-capacity
// batch invalidates the flight and diverts every row to the error stream.
type passengerLoader struct {
	db     *store.Database
	errs   *bufio.Writer
	logger *zap.Logger
	counts Counts

	lineFlight types.FlightID
	lineUser   string

	batchFlight types.FlightID
	batchActive bool
	batch       []passengerRow

	invalid []types.FlightID
}

func (l *passengerLoader) run(in io.Reader) error {
	reader := csvdec.DatasetReader{
		Grammar: csvdec.Grammar{Sep: fieldSep, Columns: []csvdec.ColumnFunc{
			l.colFlightID,
			l.colUserID,
		}},
		AfterLine: l.commit,
	}
	if err := reader.Read(in); err != nil {
		return err
	}
	return l.flush()
}

func (l *passengerLoader) colFlightID(field []byte, _ int) error {
	id, err := types.ParseFlightID(string(field))
	if err != nil {
		return err
	}
	if l.db.Flight(id) == nil {
		return store.ErrUnknownFlight
	}
	l.lineFlight = id
	return nil
}

func (l *passengerLoader) colUserID(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	userID := string(field)
	if l.db.User(userID) == nil {
		return store.ErrUnknownUser
	}
	l.lineUser = userID
	return nil
}

func (l *passengerLoader) commit(raw []byte, lineErr error) error {
	l.counts.Read++
	if lineErr != nil {
		l.counts.Rejected++
		return writeErrorLine(l.errs, raw)
	}
	if !l.batchActive || l.lineFlight != l.batchFlight {
		if err := l.flush(); err != nil {
			return err
		}
		l.batchFlight = l.lineFlight
		l.batchActive = true
	}
	// The raw line aliases the read buffer; the batch outlives it.
	l.batch = append(l.batch, passengerRow{
		userID: l.lineUser,
		raw:    append([]byte(nil), raw...),
	})
	return nil
}

// flush commits the pending batch: the passenger count is fixed to the
// batch size, then either every user gets the flight linked, or — when the
// batch exceeds the seats — the flight is invalidated and the whole batch
// goes to the error stream.
func (l *passengerLoader) flush() error {
	if !l.batchActive || len(l.batch) == 0 {
		return nil
	}
	flight := l.db.Flight(l.batchFlight)
	if err := l.db.Flights.SetPassengers(l.batchFlight, len(l.batch)); err != nil {
		return err
	}
	if len(l.batch) > flight.TotalSeats {
		l.db.InvalidateFlight(l.batchFlight)
		l.invalid = append(l.invalid, l.batchFlight)
		for _, row := range l.batch {
			l.counts.Rejected++
			if err := writeErrorLine(l.errs, row.raw); err != nil {
				return err
			}
		}
	} else {
		for _, row := range l.batch {
			if err := l.db.Users.LinkFlight(row.userID, l.batchFlight); err != nil {
				return err
			}
		}
	}
	l.batch = l.batch[:0]
	return nil
}

// reportInvalidFlights rewinds the flights stream and copies the original
// row of every invalidated flight to the flight error stream. Both the
// stream and the invalid list are ordered by flight id, so a single forward
// scan finds them all.
func (l *passengerLoader) reportInvalidFlights(flights io.ReadSeeker, flightErrs *bufio.Writer) error {
	if len(l.invalid) == 0 {
		return nil
	}
	if _, err := flights.Seek(0, io.SeekStart); err != nil {
		return err
	}
	reader := bufio.NewReader(flights)
	idx := 0
	prefix := l.invalid[idx].String() + string(fieldSep)
	for {
		line, err := reader.ReadString('\n')
		// Same terminator handling as the dataset reader, so the copied row
		// matches what the loaders would have echoed.
		trimmed := strings.TrimSuffix(line, "\n")
		trimmed = strings.TrimSuffix(trimmed, "\r")
		if strings.HasPrefix(trimmed, prefix) {
			if writeErr := writeErrorLine(flightErrs, []byte(trimmed)); writeErr != nil {
				return writeErr
			}
			idx++
			if idx == len(l.invalid) {
				return nil
			}
			prefix = l.invalid[idx].String() + string(fieldSep)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	l.logger.Warn("invalidated flights missing from flights stream",
		zap.Int("unreported", len(l.invalid)-idx))
	return nil
}
