package seeder_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-coursework/seeder"
)

func reportSQL(t *testing.T, index int) string {
	t.Helper()

	reports := seeder.Reports()
	require.Len(t, reports, 6)

	sqlQuery, err := reports[index].SQL()
	require.NoError(t, err)

	return sqlQuery
}

func Test_Report_BooksAfter2001(t *testing.T) {
	assert.Equal(
		t,
		`SELECT "inventory_number", "title", "author", "publication_year" FROM "books" `+
			`WHERE ("publication_year" > 2001) ORDER BY "title" ASC`,
		reportSQL(t, 0),
	)
}

func Test_Report_CountPerType(t *testing.T) {
	sqlQuery := reportSQL(t, 1)

	assert.Contains(t, sqlQuery, `COUNT(*) AS "quantity"`)
	assert.Contains(t, sqlQuery, `GROUP BY "type"`)
}

func Test_Report_ReadersOfManuals(t *testing.T) {
	sqlQuery := reportSQL(t, 2)

	assert.True(t, strings.HasPrefix(sqlQuery, `SELECT DISTINCT "r"."last_name", "r"."first_name", "r"."group_name"`))
	assert.Contains(t, sqlQuery, `WHERE ("b"."type" = 'посібник')`)
	assert.Contains(t, sqlQuery, `ORDER BY "r"."last_name" ASC`)
}

func Test_Report_TechnicalSection(t *testing.T) {
	assert.Contains(t, reportSQL(t, 3), `WHERE ("section" = 'технічна')`)
}

func Test_Report_ReturnDate(t *testing.T) {
	assert.Contains(t, reportSQL(t, 4), `"bl"."loan_date" + "b"."max_loan_days" AS "return_date"`)
}

func Test_Report_CrossTab(t *testing.T) {
	sqlQuery := reportSQL(t, 5)

	assert.Contains(t, sqlQuery, `WHEN ("type" = 'посібник') THEN 1 END) AS "manuals"`)
	assert.Contains(t, sqlQuery, `WHEN ("type" = 'книга') THEN 1 END) AS "books"`)
	assert.Contains(t, sqlQuery, `WHEN ("type" = 'періодичне видання') THEN 1 END) AS "periodicals"`)
	assert.Contains(t, sqlQuery, `GROUP BY "section"`)
}

func Test_RenderTable_KeepsHeaderCase(t *testing.T) {
	var out bytes.Buffer

	err := seeder.RenderTable(&out, seeder.Tabular{
		Columns: []string{"title", "quantity"},
		Rows:    [][]any{{[]byte("Кобзар"), int64(3)}},
	}, false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "title")
	assert.Contains(t, out.String(), "quantity")
	assert.NotContains(t, out.String(), "TITLE")
	assert.Contains(t, out.String(), "Кобзар")
}

func Test_FormatCell(t *testing.T) {
	assert.Equal(t, "", seeder.FormatCell(nil))
	assert.Equal(t, "123.45", seeder.FormatCell([]byte("123.45")))
	assert.Equal(t, "2024-03-01", seeder.FormatCell(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-01T10:30:00Z", seeder.FormatCell(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "7", seeder.FormatCell(int64(7)))
	assert.Equal(t, "2.5", seeder.FormatCell(2.5))
}
