package ingest

import (
	"bufio"
	"errors"
	"io"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/csvdec"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/store"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

var errEmptyField = errors.New("empty field")

func requireNonEmpty(field []byte) error {
	if len(field) == 0 {
		return errEmptyField
	}
	return nil
}

// userLoader parses users.csv into a per-line scratch record and commits
// each accepted line to the user manager.
type userLoader struct {
	db      *store.Database
	errs    *bufio.Writer
	scratch model.User
	counts  Counts
}

func (l *userLoader) run(in io.Reader) error {
	reader := csvdec.DatasetReader{
		Grammar: csvdec.Grammar{Sep: fieldSep, Columns: []csvdec.ColumnFunc{
			l.colID,
			l.colName,
			l.colEmail,
			l.colPhone,
			l.colBirthDate,
			l.colSex,
			l.colPassport,
			l.colCountry,
			l.colAddress,
			l.colCreatedAt,
			l.colPayMethod,
			l.colStatus,
		}},
		BeforeLine: l.begin,
		AfterLine:  l.commit,
	}
	return reader.Read(in)
}

// begin neutralises carry-over from the previous line.
func (l *userLoader) begin([]byte) {
	l.scratch = model.User{}
}

func (l *userLoader) commit(raw []byte, lineErr error) error {
	l.counts.Read++
	if lineErr != nil {
		l.counts.Rejected++
		return writeErrorLine(l.errs, raw)
	}
	l.db.AddUser(&l.scratch)
	return nil
}

func (l *userLoader) colID(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.ID = string(field)
	return nil
}

func (l *userLoader) colName(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.Name = string(field)
	return nil
}

func (l *userLoader) colEmail(field []byte, _ int) error {
	email := string(field)
	if err := types.ValidateEmail(email); err != nil {
		return err
	}
	l.scratch.Email = email
	return nil
}

func (l *userLoader) colPhone(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.Phone = string(field)
	return nil
}

func (l *userLoader) colBirthDate(field []byte, _ int) error {
	date, err := types.ParseDate(string(field))
	if err != nil {
		return err
	}
	l.scratch.BirthDate = date
	return nil
}

func (l *userLoader) colSex(field []byte, _ int) error {
	sex, err := types.ParseSex(string(field))
	if err != nil {
		return err
	}
	l.scratch.Sex = sex
	return nil
}

func (l *userLoader) colPassport(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.Passport = string(field)
	return nil
}

func (l *userLoader) colCountry(field []byte, _ int) error {
	country, err := types.ParseCountry(string(field))
	if err != nil {
		return err
	}
	l.scratch.CountryCode = country
	return nil
}

func (l *userLoader) colAddress(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.Address = string(field)
	return nil
}

func (l *userLoader) colCreatedAt(field []byte, _ int) error {
	created, err := types.ParseTimestamp(string(field))
	if err != nil {
		return err
	}
	// Nobody opens an account before being born.
	if created.Date() < l.scratch.BirthDate {
		return types.ErrInvalidTimestamp
	}
	l.scratch.CreatedAt = created
	return nil
}

func (l *userLoader) colPayMethod(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.PayMethod = string(field)
	return nil
}

func (l *userLoader) colStatus(field []byte, _ int) error {
	status, err := types.ParseAccountStatus(string(field))
	if err != nil {
		return err
	}
	l.scratch.Status = status
	return nil
}
