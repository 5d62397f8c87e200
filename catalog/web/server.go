// Package web serves the catalog index page.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-coursework/catalog"
)

const (
	defaultHeading = "Library catalog"
	headerRequest  = "X-Request-ID"
	dateLayout     = time.DateOnly

	logMsgSnapshotFailed = "loading catalog failed"
	logMsgRenderFailed   = "rendering index failed"
	logMsgRequestServed  = "request served"
	logAttrError         = "error"
	logAttrRequestID     = "request_id"
	logAttrMethod        = "method"
	logAttrPath          = "path"
	logAttrStatus        = "status"
	logAttrDurationMS    = "duration_ms"
)

//go:embed templates/index.html
var templateFS embed.FS

// Logger interface for request and failure logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SnapshotStore provides the catalog content.
type SnapshotStore interface {
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
}

// Server renders the catalog listings.
type Server struct {
	store   SnapshotStore
	heading string
	logger  Logger
	index   *template.Template
}

// Option defines a functional option for configuring Server.
type Option func(*Server)

// WithHeading sets the page heading. An empty heading keeps the default.
func WithHeading(heading string) Option {
	return func(s *Server) {
		if heading != "" {
			s.heading = heading
		}
	}
}

// WithLogger sets the logger for the Server.
func WithLogger(logger Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

type indexPage struct {
	Heading string
	catalog.Snapshot
}

// NewServer creates a Server reading from store.
func NewServer(store SnapshotStore, options ...Option) (*Server, error) {
	if store == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	index, err := template.New("index.html").Funcs(template.FuncMap{
		"display":    displayAny,
		"price":      catalog.DisplayPrice,
		"date":       func(t time.Time) string { return t.Format(dateLayout) },
		"returnDate": returnDate,
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	s := &Server{store: store, heading: defaultHeading, index: index}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

// Handler returns the routes: GET / and GET /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", handleHealth)

	return s.withRequestID(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.logError(r, logMsgSnapshotFailed, err)
		http.Error(w, "catalog is unavailable", http.StatusInternalServerError)

		return
	}

	var page bytes.Buffer
	if err = s.index.Execute(&page, indexPage{Heading: s.heading, Snapshot: snapshot}); err != nil {
		s.logError(r, logMsgRenderFailed, err)
		http.Error(w, "catalog is unavailable", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = page.WriteTo(w) // client went away
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestID tags every response with a request id and logs the request at debug level.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequest)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(headerRequest, requestID)
		}
		w.Header().Set(headerRequest, requestID)

		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		if s.logger != nil {
			s.logger.Debug(
				logMsgRequestServed,
				logAttrRequestID, requestID,
				logAttrMethod, r.Method,
				logAttrPath, r.URL.Path,
				logAttrStatus, recorder.status,
				logAttrDurationMS, time.Since(start).Milliseconds(),
			)
		}
	})
}

func (s *Server) logError(r *http.Request, msg string, err error) {
	if s.logger != nil {
		s.logger.Error(msg, logAttrError, err.Error(), logAttrRequestID, r.Header.Get(headerRequest))
	}
}

func displayAny(value any) string {
	switch v := value.(type) {
	case *string:
		return catalog.Display(v)
	case *int:
		return catalog.Display(v)
	default:
		return catalog.Display(&v)
	}
}

func returnDate(loan catalog.Loan) string {
	date, ok := loan.ReturnDate()
	if !ok {
		return "None"
	}

	return date.Format(dateLayout)
}
