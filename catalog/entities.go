package catalog

import (
	"fmt"
	"time"
)

// Book is one row of the books table.
type Book struct {
	InventoryNumber int64
	Author          string
	Title           string
	Section         *string
	PublicationYear *int
	PagesCount      *int
	Price           *float64
	Type            *string
	CopiesCount     *int
	MaxLoanDays     *int
}

// String renders "<title> (<author>)".
func (b Book) String() string {
	return fmt.Sprintf("%s (%s)", b.Title, b.Author)
}

// Reader is one row of the readers table.
type Reader struct {
	TicketNumber int64
	LastName     string
	FirstName    string
	Phone        *string
	Address      *string
	Course       *int
	GroupName    *string
}

// String renders "<last> <first> (<group>)".
func (r Reader) String() string {
	return fmt.Sprintf("%s %s (%s)", r.LastName, r.FirstName, Display(r.GroupName))
}

// Loan is one row of the bookloans table with its reader and book resolved.
type Loan struct {
	ID       int64
	LoanDate time.Time
	Reader   Reader
	Book     Book
}

// String renders "Loan #<id>".
func (l Loan) String() string {
	return fmt.Sprintf("Loan #%d", l.ID)
}

// ReturnDate is the loan date plus the book's maximum loan days. It is false when the book has no limit.
func (l Loan) ReturnDate() (time.Time, bool) {
	if l.Book.MaxLoanDays == nil {
		return time.Time{}, false
	}

	return l.LoanDate.AddDate(0, 0, *l.Book.MaxLoanDays), true
}

// Snapshot is the complete content of the catalog at one point in time.
type Snapshot struct {
	Books   []Book
	Readers []Reader
	Loans   []Loan
}

// Display renders a nullable value, using "None" for nil like the admin pages do.
func Display[T any](value *T) string {
	if value == nil {
		return "None"
	}

	return fmt.Sprint(*value)
}

// DisplayPrice renders a nullable price with two decimals.
func DisplayPrice(price *float64) string {
	if price == nil {
		return "None"
	}

	return fmt.Sprintf("%.2f", *price)
}
