package seeder

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Row counts of one seeding run.
const (
	DefaultBookCount   = 14
	DefaultReaderCount = 9
	DefaultLoanCount   = 11
)

const (
	minPublicationYear = 2000
	maxPublicationYear = 2024
	minPages           = 50
	maxPages           = 800
	minPrice           = 100.0
	maxPrice           = 1500.0
	minCopies          = 1
	maxCopies          = 10
	minCourse          = 1
	maxCourse          = 4
	minGroup           = 100
	maxGroup           = 200
	minPhoneOperator   = 50
	maxPhoneOperator   = 99
	minPhoneSubscriber = 1000000
	maxPhoneSubscriber = 9999999

	fictionLoanDays    = 30
	periodicalLoanDays = 14
	defaultLoanDays    = 21
	loanWindowMonths   = 2
)

// ErrNoLoanTargets is returned when loans are generated without books or readers to reference.
var ErrNoLoanTargets = errors.New("loans need at least one book and one reader")

var (
	sections = []string{SectionTechnical, SectionFiction, SectionEconomic}
	types    = []string{TypeManual, TypeBook, TypePeriodical}
)

// Faker is the subset of gofakeit's *Faker the generator draws from.
type Faker interface {
	Name() string
	FirstName() string
	LastName() string
	City() string
	BookTitle() string
	Phrase() string
	IntRange(min, max int) int
	Float64Range(min, max float64) float64
	DateRange(start, end time.Time) time.Time
	RandomString(values []string) string
}

// BookRow is one books insert.
type BookRow struct {
	Author          string  `db:"author"`
	Title           string  `db:"title"`
	Section         string  `db:"section"`
	PublicationYear int     `db:"publication_year"`
	PagesCount      int     `db:"pages_count"`
	Price           float64 `db:"price"`
	Type            string  `db:"type"`
	CopiesCount     int     `db:"copies_count"`
	MaxLoanDays     int     `db:"max_loan_days"`
}

// ReaderRow is one readers insert.
type ReaderRow struct {
	LastName  string `db:"last_name"`
	FirstName string `db:"first_name"`
	Phone     string `db:"phone"`
	Address   string `db:"address"`
	Course    int    `db:"course"`
	GroupName string `db:"group_name"`
}

// LoanRow is one bookloans insert.
type LoanRow struct {
	LoanDate            time.Time `db:"loan_date"`
	ReaderTicketNumber  int64     `db:"reader_ticket_number"`
	BookInventoryNumber int64     `db:"book_inventory_number"`
}

// Generator produces synthetic rows.
type Generator struct {
	faker Faker
	now   func() time.Time
}

// NewGenerator creates a Generator drawing from faker. Loan dates are relative to now().
func NewGenerator(faker Faker, now func() time.Time) Generator {
	return Generator{faker: faker, now: now}
}

// Books generates n books. Fiction is always a plain book lent for 30 days;
// other sections get a random type, lent for 14 days when periodical and 21 days otherwise.
func (g Generator) Books(n int) []BookRow {
	books := make([]BookRow, 0, n)

	for range n {
		section := g.faker.RandomString(sections)

		var bookType, title string
		var maxDays int

		if section == SectionFiction {
			bookType = TypeBook
			maxDays = fictionLoanDays
			title = g.faker.BookTitle()
		} else {
			bookType = g.faker.RandomString(types)
			maxDays = defaultLoanDays
			if bookType == TypePeriodical {
				maxDays = periodicalLoanDays
			}
			title = g.faker.Phrase()
		}

		books = append(books, BookRow{
			Author:          g.faker.Name(),
			Title:           title,
			Section:         section,
			PublicationYear: g.faker.IntRange(minPublicationYear, maxPublicationYear),
			PagesCount:      g.faker.IntRange(minPages, maxPages),
			Price:           math.Round(g.faker.Float64Range(minPrice, maxPrice)*100) / 100,
			Type:            bookType,
			CopiesCount:     g.faker.IntRange(minCopies, maxCopies),
			MaxLoanDays:     maxDays,
		})
	}

	return books
}

// Readers generates n readers with phones matching +380XXXXXXXXX.
func (g Generator) Readers(n int) []ReaderRow {
	readers := make([]ReaderRow, 0, n)

	for range n {
		phone := fmt.Sprintf(
			"+380%d%d",
			g.faker.IntRange(minPhoneOperator, maxPhoneOperator),
			g.faker.IntRange(minPhoneSubscriber, maxPhoneSubscriber),
		)

		readers = append(readers, ReaderRow{
			LastName:  g.faker.LastName(),
			FirstName: g.faker.FirstName(),
			Phone:     phone,
			Address:   g.faker.City(),
			Course:    g.faker.IntRange(minCourse, maxCourse),
			GroupName: fmt.Sprintf("Группа-%d", g.faker.IntRange(minGroup, maxGroup)),
		})
	}

	return readers
}

// Loans generates n loans, each referencing one of readerIDs and one of bookIDs,
// dated within the last two months.
func (g Generator) Loans(n int, readerIDs, bookIDs []int64) ([]LoanRow, error) {
	if len(readerIDs) == 0 || len(bookIDs) == 0 {
		return nil, ErrNoLoanTargets
	}

	today := truncateToDay(g.now())
	earliest := today.AddDate(0, -loanWindowMonths, 0)

	loans := make([]LoanRow, 0, n)

	for range n {
		loans = append(loans, LoanRow{
			LoanDate:            truncateToDay(g.faker.DateRange(earliest, today)),
			ReaderTicketNumber:  readerIDs[g.faker.IntRange(0, len(readerIDs)-1)],
			BookInventoryNumber: bookIDs[g.faker.IntRange(0, len(bookIDs)-1)],
		})
	}

	return loans, nil
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
