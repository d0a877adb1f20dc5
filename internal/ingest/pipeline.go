// Package ingest builds the database from a dataset directory. It opens the
// four input CSVs and the four error CSVs, runs the loaders in dependency
// order (users before flights and reservations, both before passengers) and
// segregates every rejected row, byte-exact, into the error file of its
// kind.
package ingest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/store"
)

const (
	usersFile        = "users.csv"
	flightsFile      = "flights.csv"
	passengersFile   = "passengers.csv"
	reservationsFile = "reservations.csv"

	usersErrorsFile        = "users_errors.csv"
	flightsErrorsFile      = "flights_errors.csv"
	passengersErrorsFile   = "passengers_errors.csv"
	reservationsErrorsFile = "reservations_errors.csv"

	usersHeader        = "id;name;email;phone_number;birth_date;sex;passport;country_code;address;account_creation;pay_method;account_status"
	flightsHeader      = "id;airline;plane_model;total_seats;origin;destination;schedule_departure_date;schedule_arrival_date;real_departure_date;real_arrival_date;pilot;copilot;notes"
	passengersHeader   = "flight_id;user_id"
	reservationsHeader = "id;user_id;hotel_id;hotel_name;hotel_stars;city_tax;address;begin_date;end_date;price_per_night;includes_breakfast;room_details;rating;comment"

	fieldSep = ';'
)

// Counts tracks one loader's data rows and how many it rejected.
type Counts struct {
	Read     int
	Rejected int
}

// Result aggregates the per-file counts of one run.
type Result struct {
	Users        Counts
	Flights      Counts
	Passengers   Counts
	Reservations Counts
}

// errorFile is one append-only reject stream, seeded with its canonical
// header.
type errorFile struct {
	file   *os.File
	writer *bufio.Writer
}

func newErrorFile(path, header string) (*errorFile, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create error file: %w", err)
	}
	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(header + "\n"); err != nil {
		file.Close()
		return nil, fmt.Errorf("write error header: %w", err)
	}
	return &errorFile{file: file, writer: writer}, nil
}

func (e *errorFile) close() error {
	flushErr := e.writer.Flush()
	closeErr := e.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

func writeErrorLine(w *bufio.Writer, raw []byte) error {
	if _, err := w.Write(raw); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// Run ingests the dataset under datasetDir into db, writing the error CSVs
// under outputDir. The database must be empty; ingestion is the only phase
// that mutates it.
func Run(db *store.Database, datasetDir, outputDir string, logger *zap.Logger) (Result, error) {
	log := logger.With(zap.String("run_id", uuid.NewString()))
	log.Info("dataset ingestion starting",
		zap.String("dataset_dir", datasetDir),
		zap.String("output_dir", outputDir))

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	var cleanups []func() error
	defer func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			_ = cleanups[i]()
		}
	}()

	open := func(name string) (*os.File, error) {
		file, err := os.Open(filepath.Join(datasetDir, name))
		if err != nil {
			return nil, fmt.Errorf("open dataset file: %w", err)
		}
		cleanups = append(cleanups, file.Close)
		return file, nil
	}
	openErrors := func(name, header string) (*errorFile, error) {
		errFile, err := newErrorFile(filepath.Join(outputDir, name), header)
		if err != nil {
			return nil, err
		}
		cleanups = append(cleanups, errFile.close)
		return errFile, nil
	}

	usersIn, err := open(usersFile)
	if err != nil {
		return Result{}, err
	}
	flightsIn, err := open(flightsFile)
	if err != nil {
		return Result{}, err
	}
	passengersIn, err := open(passengersFile)
	if err != nil {
		return Result{}, err
	}
	reservationsIn, err := open(reservationsFile)
	if err != nil {
		return Result{}, err
	}

	usersErrs, err := openErrors(usersErrorsFile, usersHeader)
	if err != nil {
		return Result{}, err
	}
	flightsErrs, err := openErrors(flightsErrorsFile, flightsHeader)
	if err != nil {
		return Result{}, err
	}
	passengersErrs, err := openErrors(passengersErrorsFile, passengersHeader)
	if err != nil {
		return Result{}, err
	}
	reservationsErrs, err := openErrors(reservationsErrorsFile, reservationsHeader)
	if err != nil {
		return Result{}, err
	}

	var result Result

	users := &userLoader{db: db, errs: usersErrs.writer}
	if err := users.run(usersIn); err != nil {
		return result, fmt.Errorf("load users: %w", err)
	}
	result.Users = users.counts
	log.Info("users loaded", zap.Int("rows", users.counts.Read), zap.Int("rejected", users.counts.Rejected))

	flights := &flightLoader{db: db, errs: flightsErrs.writer, logger: log}
	if err := flights.run(flightsIn); err != nil {
		return result, fmt.Errorf("load flights: %w", err)
	}
	result.Flights = flights.counts
	log.Info("flights loaded", zap.Int("rows", flights.counts.Read), zap.Int("rejected", flights.counts.Rejected))

	passengers := &passengerLoader{db: db, errs: passengersErrs.writer, logger: log}
	if err := passengers.run(passengersIn); err != nil {
		return result, fmt.Errorf("load passengers: %w", err)
	}
	if err := passengers.reportInvalidFlights(flightsIn, flightsErrs.writer); err != nil {
		return result, fmt.Errorf("report invalid flights: %w", err)
	}
	result.Passengers = passengers.counts
	log.Info("passengers loaded",
		zap.Int("rows", passengers.counts.Read),
		zap.Int("rejected", passengers.counts.Rejected),
		zap.Int("invalidated_flights", len(passengers.invalid)))

	reservations := &reservationLoader{db: db, errs: reservationsErrs.writer, logger: log}
	if err := reservations.run(reservationsIn); err != nil {
		return result, fmt.Errorf("load reservations: %w", err)
	}
	result.Reservations = reservations.counts
	log.Info("reservations loaded", zap.Int("rows", reservations.counts.Read), zap.Int("rejected", reservations.counts.Rejected))

	return result, nil
}
