package postgresengine

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	dialectPostgres = "postgres"

	aliasLoans   = "bl"
	aliasReaders = "r"
	aliasBooks   = "b"

	colInventoryNumber = "inventory_number"
	colAuthor          = "author"
	colTitle           = "title"
	colSection         = "section"
	colPublicationYear = "publication_year"
	colPagesCount      = "pages_count"
	colPrice           = "price"
	colType            = "type"
	colCopiesCount     = "copies_count"
	colMaxLoanDays     = "max_loan_days"

	colReaderTicketNumber = "reader_ticket_number"
	colLastName           = "last_name"
	colFirstName          = "first_name"
	colPhone              = "phone"
	colAddress            = "address"
	colCourse             = "course"
	colGroupName          = "group_name"

	colLoanID              = "loan_id"
	colLoanDate            = "loan_date"
	colBookInventoryNumber = "book_inventory_number"
)

var (
	bookColumns = []string{
		colInventoryNumber, colAuthor, colTitle, colSection, colPublicationYear,
		colPagesCount, colPrice, colType, colCopiesCount, colMaxLoanDays,
	}

	readerColumns = []string{
		colReaderTicketNumber, colLastName, colFirstName, colPhone, colAddress, colCourse, colGroupName,
	}
)

func qualified(alias string, columns []string) []any {
	selected := make([]any, 0, len(columns))
	for _, column := range columns {
		selected = append(selected, goqu.T(alias).Col(column))
	}

	return selected
}

func unqualified(columns []string) []any {
	selected := make([]any, 0, len(columns))
	for _, column := range columns {
		selected = append(selected, goqu.C(column))
	}

	return selected
}

func (s Store) buildBooksQuery() (string, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(s.tables.Books).
		Select(unqualified(bookColumns)...).
		Order(goqu.C(colInventoryNumber).Asc()).
		ToSQL()

	return sqlQuery, err
}

func (s Store) buildReadersQuery() (string, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(s.tables.Readers).
		Select(unqualified(readerColumns)...).
		Order(goqu.C(colReaderTicketNumber).Asc()).
		ToSQL()

	return sqlQuery, err
}

// buildLoansQuery selects every loan followed by the columns of its reader and its book.
func (s Store) buildLoansQuery() (string, error) {
	selected := []any{goqu.T(aliasLoans).Col(colLoanID), goqu.T(aliasLoans).Col(colLoanDate)}
	selected = append(selected, qualified(aliasReaders, readerColumns)...)
	selected = append(selected, qualified(aliasBooks, bookColumns)...)

	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(goqu.T(s.tables.Loans).As(aliasLoans)).
		Join(
			goqu.T(s.tables.Readers).As(aliasReaders),
			goqu.On(joinOn(aliasLoans, colReaderTicketNumber, aliasReaders, colReaderTicketNumber)),
		).
		Join(
			goqu.T(s.tables.Books).As(aliasBooks),
			goqu.On(joinOn(aliasLoans, colBookInventoryNumber, aliasBooks, colInventoryNumber)),
		).
		Select(selected...).
		Order(goqu.T(aliasLoans).Col(colLoanID).Asc()).
		ToSQL()

	return sqlQuery, err
}

func joinOn(leftAlias, leftColumn, rightAlias, rightColumn string) exp.Expression {
	return goqu.T(leftAlias).Col(leftColumn).Eq(goqu.T(rightAlias).Col(rightColumn))
}
