package ingest

import (
	"bufio"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/csvdec"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/store"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

var errScheduleOrder = errors.New("arrival precedes departure")

// flightLoader parses flights.csv. The pilot, copilot and notes columns are
// validated only; the real-arrival column is checked against the real
// departure and then discarded.
type flightLoader struct {
	db      *store.Database
	errs    *bufio.Writer
	logger  *zap.Logger
	scratch model.Flight
	counts  Counts
}

func (l *flightLoader) run(in io.Reader) error {
	reader := csvdec.DatasetReader{
		Grammar: csvdec.Grammar{Sep: fieldSep, Columns: []csvdec.ColumnFunc{
			l.colID,
			l.colAirline,
			l.colPlaneModel,
			l.colTotalSeats,
			l.colOrigin,
			l.colDestination,
			l.colScheduledDeparture,
			l.colScheduledArrival,
			l.colRealDeparture,
			l.colRealArrival,
			l.colPilot,
			l.colCopilot,
			l.colNotes,
		}},
		BeforeLine: l.begin,
		AfterLine:  l.commit,
	}
	return reader.Read(in)
}

// begin resets the scratch dates so a rejected line cannot leak its values
// into the cross-field checks of the next one.
func (l *flightLoader) begin([]byte) {
	l.scratch = model.Flight{}
}

func (l *flightLoader) commit(raw []byte, lineErr error) error {
	l.counts.Read++
	if lineErr != nil {
		if errors.Is(lineErr, types.ErrNotNumeric) {
			l.logger.Warn("flight id is not numeric", zap.ByteString("row", raw))
		}
		l.counts.Rejected++
		return writeErrorLine(l.errs, raw)
	}
	l.db.AddFlight(&l.scratch)
	return nil
}

func (l *flightLoader) colID(field []byte, _ int) error {
	id, err := types.ParseFlightID(string(field))
	if err != nil {
		return err
	}
	l.scratch.ID = id
	return nil
}

func (l *flightLoader) colAirline(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.Airline = string(field)
	return nil
}

func (l *flightLoader) colPlaneModel(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.PlaneModel = string(field)
	return nil
}

func (l *flightLoader) colTotalSeats(field []byte, _ int) error {
	seats, err := types.ParseCount(string(field))
	if err != nil {
		return err
	}
	l.scratch.TotalSeats = seats
	return nil
}

func (l *flightLoader) colOrigin(field []byte, _ int) error {
	origin, err := types.ParseAirport(string(field))
	if err != nil {
		return err
	}
	l.scratch.Origin = origin
	return nil
}

func (l *flightLoader) colDestination(field []byte, _ int) error {
	destination, err := types.ParseAirport(string(field))
	if err != nil {
		return err
	}
	l.scratch.Destination = destination
	return nil
}

func (l *flightLoader) colScheduledDeparture(field []byte, _ int) error {
	departure, err := types.ParseTimestamp(string(field))
	if err != nil {
		return err
	}
	l.scratch.ScheduledDeparture = departure
	return nil
}

func (l *flightLoader) colScheduledArrival(field []byte, _ int) error {
	arrival, err := types.ParseTimestamp(string(field))
	if err != nil {
		return err
	}
	if arrival <= l.scratch.ScheduledDeparture {
		return errScheduleOrder
	}
	l.scratch.ScheduledArrival = arrival
	return nil
}

func (l *flightLoader) colRealDeparture(field []byte, _ int) error {
	departure, err := types.ParseTimestamp(string(field))
	if err != nil {
		return err
	}
	l.scratch.RealDeparture = departure
	return nil
}

// colRealArrival validates ordering against the real departure; the value
// itself is not stored.
func (l *flightLoader) colRealArrival(field []byte, _ int) error {
	arrival, err := types.ParseTimestamp(string(field))
	if err != nil {
		return err
	}
	if arrival < l.scratch.RealDeparture {
		return errScheduleOrder
	}
	return nil
}

func (l *flightLoader) colPilot(field []byte, _ int) error {
	return requireNonEmpty(field)
}

func (l *flightLoader) colCopilot(field []byte, _ int) error {
	return requireNonEmpty(field)
}

func (l *flightLoader) colNotes([]byte, int) error {
	return nil
}
