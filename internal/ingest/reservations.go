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

var errStayOrder = errors.New("end date not after begin date")

// reservationLoader parses reservations.csv. Users must already be loaded:
// the user id column resolves against the user manager and an unknown user
// rejects the row.
type reservationLoader struct {
	db      *store.Database
	errs    *bufio.Writer
	logger  *zap.Logger
	scratch model.Reservation
	counts  Counts
}

func (l *reservationLoader) run(in io.Reader) error {
	reader := csvdec.DatasetReader{
		Grammar: csvdec.Grammar{Sep: fieldSep, Columns: []csvdec.ColumnFunc{
			l.colID,
			l.colUserID,
			l.colHotelID,
			l.colHotelName,
			l.colStars,
			l.colCityTax,
			l.colAddress,
			l.colBegin,
			l.colEnd,
			l.colPrice,
			l.colBreakfast,
			l.colRoomDetails,
			l.colRating,
			l.colComment,
		}},
		BeforeLine: l.begin,
		AfterLine:  l.commit,
	}
	return reader.Read(in)
}

func (l *reservationLoader) begin([]byte) {
	l.scratch = model.Reservation{}
}

func (l *reservationLoader) commit(raw []byte, lineErr error) error {
	l.counts.Read++
	if lineErr != nil {
		if errors.Is(lineErr, types.ErrNotNumeric) {
			l.logger.Warn("reservation id is not numeric", zap.ByteString("row", raw))
		}
		l.counts.Rejected++
		return writeErrorLine(l.errs, raw)
	}
	if _, err := l.db.AddReservation(&l.scratch); err != nil {
		return err
	}
	return nil
}

func (l *reservationLoader) colID(field []byte, _ int) error {
	id, err := types.ParseReservationID(string(field))
	if err != nil {
		return err
	}
	l.scratch.ID = id
	return nil
}

func (l *reservationLoader) colUserID(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	userID := string(field)
	if l.db.User(userID) == nil {
		return store.ErrUnknownUser
	}
	l.scratch.UserID = userID
	return nil
}

func (l *reservationLoader) colHotelID(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.HotelID = string(field)
	return nil
}

func (l *reservationLoader) colHotelName(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.HotelName = string(field)
	return nil
}

func (l *reservationLoader) colStars(field []byte, _ int) error {
	stars, err := types.ParseCount(string(field))
	if err != nil {
		return err
	}
	if stars < 1 || stars > 5 {
		return types.ErrInvalidRating
	}
	l.scratch.Stars = stars
	return nil
}

func (l *reservationLoader) colCityTax(field []byte, _ int) error {
	tax, err := types.ParseCount(string(field))
	if err != nil {
		return err
	}
	l.scratch.CityTax = tax
	return nil
}

func (l *reservationLoader) colAddress(field []byte, _ int) error {
	if err := requireNonEmpty(field); err != nil {
		return err
	}
	l.scratch.Address = string(field)
	return nil
}

func (l *reservationLoader) colBegin(field []byte, _ int) error {
	begin, err := types.ParseDate(string(field))
	if err != nil {
		return err
	}
	l.scratch.Begin = begin
	return nil
}

func (l *reservationLoader) colEnd(field []byte, _ int) error {
	end, err := types.ParseDate(string(field))
	if err != nil {
		return err
	}
	if end <= l.scratch.Begin {
		return errStayOrder
	}
	l.scratch.End = end
	return nil
}

func (l *reservationLoader) colPrice(field []byte, _ int) error {
	price, err := types.ParsePositive(string(field))
	if err != nil {
		return err
	}
	l.scratch.PricePerNight = price
	return nil
}

func (l *reservationLoader) colBreakfast(field []byte, _ int) error {
	breakfast, err := types.ParseBreakfast(string(field))
	if err != nil {
		return err
	}
	l.scratch.Breakfast = breakfast
	return nil
}

func (l *reservationLoader) colRoomDetails(field []byte, _ int) error {
	l.scratch.RoomDetails = string(field)
	return nil
}

func (l *reservationLoader) colRating(field []byte, _ int) error {
	rating, err := types.ParseRating(string(field))
	if err != nil {
		return err
	}
	l.scratch.Rating = rating
	return nil
}

func (l *reservationLoader) colComment(field []byte, _ int) error {
	l.scratch.Comment = string(field)
	return nil
}
