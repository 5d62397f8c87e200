package web_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-coursework/catalog"
	"github.com/AntonStoeckl/library-coursework/catalog/web"
	"github.com/AntonStoeckl/library-coursework/testutil/helper"
)

type fakeStore struct {
	snapshot catalog.Snapshot
	err      error
}

func (f fakeStore) Snapshot(_ context.Context) (catalog.Snapshot, error) {
	return f.snapshot, f.err
}

func ptr[T any](v T) *T { return &v }

func sampleSnapshot() catalog.Snapshot {
	book := catalog.Book{
		InventoryNumber: 1,
		Author:          "Іван Франко",
		Title:           "Захар Беркут",
		Section:         ptr("художня"),
		PublicationYear: ptr(2010),
		Price:           ptr(250.5),
		Type:            ptr("книга"),
		MaxLoanDays:     ptr(30),
	}
	reader := catalog.Reader{TicketNumber: 4, LastName: "Коваль", FirstName: "Марія", GroupName: ptr("Группа-120")}

	return catalog.Snapshot{
		Books:   []catalog.Book{book},
		Readers: []catalog.Reader{reader},
		Loans: []catalog.Loan{{
			ID:       9,
			LoanDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			Reader:   reader,
			Book:     book,
		}},
	}
}

func serve(t *testing.T, store web.SnapshotStore, method, target string, options ...web.Option) *httptest.ResponseRecorder {
	t.Helper()

	server, err := web.NewServer(store, options...)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(method, target, nil))

	return recorder
}

func Test_Index_ListsAllRowsAndResolvesLoans(t *testing.T) {
	// act
	response := serve(t, fakeStore{snapshot: sampleSnapshot()}, http.MethodGet, "/", web.WithHeading("Каталог"))

	// assert
	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "text/html; charset=utf-8", response.Header().Get("Content-Type"))
	assert.NotEmpty(t, response.Header().Get("X-Request-ID"))

	body := response.Body.String()
	assert.Contains(t, body, "<h1>Каталог</h1>")
	assert.Contains(t, body, "Захар Беркут")
	assert.Contains(t, body, "250.50")
	assert.Contains(t, body, "Коваль Марія (Группа-120)")
	assert.Contains(t, body, "Loan #9")
	assert.Contains(t, body, "Захар Беркут (Іван Франко)")
	assert.Contains(t, body, "2024-05-02")
	assert.Contains(t, body, "2024-06-01")
	assert.Contains(t, body, "None", "missing page count renders as None")
}

func Test_Index_EmptyCatalog(t *testing.T) {
	response := serve(t, fakeStore{}, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "<h1>Library catalog</h1>")
	assert.Contains(t, response.Body.String(), "No loans.")
}

func Test_Index_StoreFailureIs500(t *testing.T) {
	// setup
	logHandler := helper.NewTestLogHandler(false)

	// act
	response := serve(
		t,
		fakeStore{err: errors.Join(catalog.ErrQueryingFailed, errors.New("connection refused"))},
		http.MethodGet,
		"/",
		web.WithLogger(slog.New(logHandler)),
	)

	// assert
	assert.Equal(t, http.StatusInternalServerError, response.Code)
	assert.NotContains(t, response.Body.String(), "connection refused")
	assert.Len(t, logHandler.RecordsAtLevel(slog.LevelError), 1)
}

func Test_Index_EscapesHTML(t *testing.T) {
	snapshot := catalog.Snapshot{Books: []catalog.Book{{InventoryNumber: 1, Title: "<script>x</script>", Author: "a"}}}

	response := serve(t, fakeStore{snapshot: snapshot}, http.MethodGet, "/")

	assert.NotContains(t, response.Body.String(), "<script>x</script>")
	assert.Contains(t, response.Body.String(), "&lt;script&gt;")
}

func Test_Routes(t *testing.T) {
	store := fakeStore{snapshot: sampleSnapshot()}

	health := serve(t, store, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "ok", strings.TrimSpace(health.Body.String()))

	assert.Equal(t, http.StatusMethodNotAllowed, serve(t, store, http.MethodPost, "/").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, store, http.MethodGet, "/books").Code)
}

func Test_Handler_KeepsIncomingRequestID(t *testing.T) {
	server, err := web.NewServer(fakeStore{})
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	request.Header.Set("X-Request-ID", "abc-123")
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, "abc-123", recorder.Header().Get("X-Request-ID"))
}

func Test_NewServer_RequiresStore(t *testing.T) {
	_, err := web.NewServer(nil)

	assert.ErrorIs(t, err, catalog.ErrNilDatabaseConnection)
}
