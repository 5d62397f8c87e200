package seeder

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	dialectPostgres = "postgres"

	aliasBooks   = "b"
	aliasReaders = "r"
	aliasLoans   = "bl"

	yearThreshold = 2001
)

// Report is one fixed reporting query.
type Report struct {
	Description string
	Query       *goqu.SelectDataset
}

// SQL renders the report query with its arguments interpolated.
func (r Report) SQL() (string, error) {
	sqlQuery, _, err := r.Query.ToSQL()
	return sqlQuery, err
}

func col(alias, column string) exp.IdentifierExpression {
	return goqu.T(alias).Col(column)
}

func countType(bookType string) exp.SQLFunctionExpression {
	return goqu.COUNT(goqu.Case().When(goqu.C("type").Eq(bookType), 1))
}

// Reports returns the six reports in the order they are run.
func Reports() []Report {
	dialect := goqu.Dialect(dialectPostgres)

	loansWithBooks := dialect.
		From(goqu.T(TableLoans).As(aliasLoans)).
		Join(goqu.T(TableBooks).As(aliasBooks), goqu.On(col(aliasLoans, "book_inventory_number").Eq(col(aliasBooks, pkBooks))))

	return []Report{
		{
			Description: "1. Books published after 2001, ordered by title.",
			Query: dialect.From(TableBooks).
				Select("inventory_number", "title", "author", "publication_year").
				Where(goqu.C("publication_year").Gt(yearThreshold)).
				Order(goqu.C("title").Asc()),
		},
		{
			Description: "2. Number of books of each type.",
			Query: dialect.From(TableBooks).
				Select(goqu.C("type"), goqu.COUNT(goqu.Star()).As("quantity")).
				GroupBy(goqu.C("type")).
				Order(goqu.C("type").Asc()),
		},
		{
			Description: "3. Readers who borrowed manuals, ordered by last name.",
			Query: dialect.From(goqu.T(TableReaders).As(aliasReaders)).
				Join(goqu.T(TableLoans).As(aliasLoans), goqu.On(col(aliasReaders, pkReaders).Eq(col(aliasLoans, pkReaders)))).
				Join(goqu.T(TableBooks).As(aliasBooks), goqu.On(col(aliasLoans, "book_inventory_number").Eq(col(aliasBooks, pkBooks)))).
				Select(col(aliasReaders, "last_name"), col(aliasReaders, "first_name"), col(aliasReaders, "group_name")).
				Distinct().
				Where(col(aliasBooks, "type").Eq(TypeManual)).
				Order(col(aliasReaders, "last_name").Asc()),
		},
		{
			Description: "4. Books of the section '" + SectionTechnical + "'.",
			Query: dialect.From(TableBooks).
				Select("title", "author", "section", "price").
				Where(goqu.C("section").Eq(SectionTechnical)).
				Order(goqu.C(pkBooks).Asc()),
		},
		{
			Description: "5. Return date of every loaned book.",
			Query: loansWithBooks.
				Select(
					col(aliasBooks, "title"),
					col(aliasLoans, "loan_date"),
					col(aliasBooks, "max_loan_days"),
					goqu.L("? + ?", col(aliasLoans, "loan_date"), col(aliasBooks, "max_loan_days")).As("return_date"),
				).
				Order(col(aliasLoans, pkLoans).Asc()),
		},
		{
			Description: "6. Manuals, books and periodicals per section.",
			Query: dialect.From(TableBooks).
				Select(
					goqu.C("section"),
					countType(TypeManual).As("manuals"),
					countType(TypeBook).As("books"),
					countType(TypePeriodical).As("periodicals"),
				).
				GroupBy(goqu.C("section")).
				Order(goqu.C("section").Asc()),
		},
	}
}

// tableDumpQuery selects every row of table ordered by its primary key.
func tableDumpQuery(table, primaryKey string) (string, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(table).
		Order(goqu.C(primaryKey).Asc()).
		ToSQL()

	return sqlQuery, err
}

// idsQuery selects the primary keys of table in ascending order.
func idsQuery(table, primaryKey string) (string, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(table).
		Select(goqu.C(primaryKey)).
		Order(goqu.C(primaryKey).Asc()).
		ToSQL()

	return sqlQuery, err
}
