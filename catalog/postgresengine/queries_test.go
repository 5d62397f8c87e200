package postgresengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildBooksQuery(t *testing.T) {
	store := Store{tables: DefaultTableNames()}

	sqlQuery, err := store.buildBooksQuery()

	require.NoError(t, err)
	assert.Equal(
		t,
		`SELECT "inventory_number", "author", "title", "section", "publication_year", "pages_count", `+
			`"price", "type", "copies_count", "max_loan_days" FROM "books" ORDER BY "inventory_number" ASC`,
		sqlQuery,
	)
}

func Test_BuildReadersQuery_UsesConfiguredTable(t *testing.T) {
	store := Store{tables: TableNames{Books: "b", Readers: "students", Loans: "l"}}

	sqlQuery, err := store.buildReadersQuery()

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `FROM "students"`)
	assert.Contains(t, sqlQuery, `ORDER BY "reader_ticket_number" ASC`)
}

func Test_BuildLoansQuery_JoinsReadersAndBooks(t *testing.T) {
	store := Store{tables: DefaultTableNames()}

	sqlQuery, err := store.buildLoansQuery()

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `SELECT "bl"."loan_id", "bl"."loan_date", "r"."reader_ticket_number"`)
	assert.Contains(t, sqlQuery, `FROM "bookloans" AS "bl"`)
	assert.Contains(t, sqlQuery, `INNER JOIN "readers" AS "r" ON ("bl"."reader_ticket_number" = "r"."reader_ticket_number")`)
	assert.Contains(t, sqlQuery, `INNER JOIN "books" AS "b" ON ("bl"."book_inventory_number" = "b"."inventory_number")`)
	assert.Contains(t, sqlQuery, `ORDER BY "bl"."loan_id" ASC`)
}
