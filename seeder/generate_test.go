package seeder_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-coursework/seeder"
)

var (
	phonePattern = regexp.MustCompile(`^\+380[0-9]{9}$`)
	groupPattern = regexp.MustCompile(`^Группа-(1[0-9]{2}|200)$`)
	fixedNow     = time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)
)

func newGenerator(seed uint64) seeder.Generator {
	return seeder.NewGenerator(gofakeit.New(seed), func() time.Time { return fixedNow })
}

func Test_Books_RespectColumnConstraints(t *testing.T) {
	books := newGenerator(42).Books(200)

	require.Len(t, books, 200)

	for _, book := range books {
		assert.NotEmpty(t, book.Author)
		assert.NotEmpty(t, book.Title)
		assert.LessOrEqual(t, len([]rune(book.Author)), 100)
		assert.LessOrEqual(t, len([]rune(book.Title)), 200)
		assert.Contains(t, []string{seeder.SectionTechnical, seeder.SectionFiction, seeder.SectionEconomic}, book.Section)
		assert.Contains(t, []string{seeder.TypeManual, seeder.TypeBook, seeder.TypePeriodical}, book.Type)
		assert.GreaterOrEqual(t, book.PublicationYear, 2000)
		assert.LessOrEqual(t, book.PublicationYear, 2024)
		assert.GreaterOrEqual(t, book.PagesCount, 50)
		assert.LessOrEqual(t, book.PagesCount, 800)
		assert.GreaterOrEqual(t, book.Price, 100.0)
		assert.LessOrEqual(t, book.Price, 1500.0)
		assert.InDelta(t, book.Price, float64(int64(book.Price*100+0.5))/100, 1e-9)
		assert.GreaterOrEqual(t, book.CopiesCount, 1)
		assert.LessOrEqual(t, book.CopiesCount, 10)
	}
}

func Test_Books_LoanDaysFollowSectionAndType(t *testing.T) {
	for _, book := range newGenerator(7).Books(200) {
		switch {
		case book.Section == seeder.SectionFiction:
			assert.Equal(t, seeder.TypeBook, book.Type)
			assert.Equal(t, 30, book.MaxLoanDays)
		case book.Type == seeder.TypePeriodical:
			assert.Equal(t, 14, book.MaxLoanDays)
		default:
			assert.Equal(t, 21, book.MaxLoanDays)
		}
	}
}

func Test_Readers_RespectColumnConstraints(t *testing.T) {
	readers := newGenerator(42).Readers(200)

	require.Len(t, readers, 200)

	for _, reader := range readers {
		assert.NotEmpty(t, reader.LastName)
		assert.NotEmpty(t, reader.FirstName)
		assert.Regexp(t, phonePattern, reader.Phone)
		assert.Regexp(t, groupPattern, reader.GroupName)
		assert.NotEmpty(t, reader.Address)
		assert.GreaterOrEqual(t, reader.Course, 1)
		assert.LessOrEqual(t, reader.Course, 4)
	}
}

func Test_Loans_ReferenceOnlyGivenIDsWithinTwoMonths(t *testing.T) {
	// arrange
	readerIDs := []int64{1, 2, 3}
	bookIDs := []int64{10, 11}
	earliest := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// act
	loans, err := newGenerator(42).Loans(100, readerIDs, bookIDs)

	// assert
	require.NoError(t, err)
	require.Len(t, loans, 100)

	for _, loan := range loans {
		assert.Contains(t, readerIDs, loan.ReaderTicketNumber)
		assert.Contains(t, bookIDs, loan.BookInventoryNumber)
		assert.False(t, loan.LoanDate.Before(earliest), loan.LoanDate)
		assert.False(t, loan.LoanDate.After(today), loan.LoanDate)
		assert.Equal(t, loan.LoanDate, time.Date(loan.LoanDate.Year(), loan.LoanDate.Month(), loan.LoanDate.Day(), 0, 0, 0, 0, time.UTC))
	}
}

func Test_Loans_NeedTargets(t *testing.T) {
	_, err := newGenerator(1).Loans(11, nil, []int64{1})
	assert.ErrorIs(t, err, seeder.ErrNoLoanTargets)

	_, err = newGenerator(1).Loans(11, []int64{1}, nil)
	assert.ErrorIs(t, err, seeder.ErrNoLoanTargets)
}

func Test_Generator_IsDeterministicForASeed(t *testing.T) {
	assert.Equal(t, newGenerator(99).Books(5), newGenerator(99).Books(5))
	assert.Equal(t, newGenerator(99).Readers(5), newGenerator(99).Readers(5))
}
