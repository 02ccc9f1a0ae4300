package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/fwojciec/rentscout"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Server defaults.
const (
	DefaultAddr          = ":3001"
	DefaultMaxConcurrent = 8
	DefaultRate          = 2.0
	DefaultBurst         = 4
	ShutdownTimeout      = 5 * time.Second
)

// maxRequestBody bounds decoded request bodies.
const maxRequestBody = 1 << 20

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	rentscout.EINVALID:   http.StatusBadRequest,
	rentscout.ENOCONTENT: http.StatusBadRequest,
	rentscout.ENOTFOUND:  http.StatusNotFound,
	rentscout.EFETCH:     http.StatusInternalServerError,
	rentscout.EINTERNAL:  http.StatusInternalServerError,
}

// Server exposes the scrape pipeline and the listing store over HTTP.
type Server struct {
	router   *http.ServeMux
	handler  http.Handler
	validate *validator.Validate
	sem      *semaphore.Weighted
	limiter  *rate.Limiter
	logger   *slog.Logger

	scraper  rentscout.Scraper
	listings rentscout.ListingService
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithMaxConcurrent caps in-flight scrapes. Requests over the cap get 503.
// Zero disables the cap.
func WithMaxConcurrent(n int64) ServerOption {
	return func(s *Server) {
		s.sem = nil
		if n > 0 {
			s.sem = semaphore.NewWeighted(n)
		}
	}
}

// WithRateLimit limits scrape requests to rps per second with the given
// burst. Requests over the limit get 429. Zero rps disables the limit.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		s.limiter = nil
		if rps > 0 {
			if burst < 1 {
				burst = 1
			}
			s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithLogger sets the logger for failed requests.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server with the default admission limits.
func NewServer(scraper rentscout.Scraper, listings rentscout.ListingService, opts ...ServerOption) *Server {
	s := &Server{
		router:   http.NewServeMux(),
		validate: newValidator(),
		logger:   slog.New(slog.DiscardHandler),
		scraper:  scraper,
		listings: listings,
	}
	WithMaxConcurrent(DefaultMaxConcurrent)(s)
	WithRateLimit(DefaultRate, DefaultBurst)(s)
	for _, opt := range opts {
		opt(s)
	}

	s.router.HandleFunc("GET /healthz", s.handleHealth)
	s.router.HandleFunc("POST /scrape", s.handleScrape)
	s.router.HandleFunc("GET /listings", s.handleListListings)
	s.router.HandleFunc("POST /listings", s.handleCreateListing)
	s.router.HandleFunc("GET /listings/{id}", s.handleGetListing)
	s.router.HandleFunc("PATCH /listings/{id}", s.handleUpdateListing)
	s.router.HandleFunc("DELETE /listings/{id}", s.handleDeleteListing)
	s.handler = cors(s.router)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// envelope is the body of every response.
type envelope struct {
	Success  bool   `json:"success"`
	Data     any    `json:"data,omitempty"`
	Fallback *bool  `json:"fallback,omitempty"`
	Error    string `json:"error,omitempty"`
}

type scrapeRequest struct {
	URL string `json:"url" validate:"required"`
}

type createListingRequest struct {
	URL string `json:"url" validate:"required,url"`
	rentscout.ExtractionResult
	HasApplied bool   `json:"hasApplied"`
	Notes      string `json:"notes" validate:"max=4000"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.Error(w, r, err)
		return
	}

	if s.limiter != nil && !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "too many requests, try again shortly")
		return
	}
	if s.sem != nil {
		if !s.sem.TryAcquire(1) {
			writeError(w, http.StatusServiceUnavailable, "server busy, try again shortly")
			return
		}
		defer s.sem.Release(1)
	}

	result, err := s.scraper.ScrapeAndExtract(r.Context(), req.URL)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: result, Fallback: &result.Degraded})
}

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	listings, err := s.listings.FindListings(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: listings})
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := s.decode(w, r, &req); err != nil {
		s.Error(w, r, err)
		return
	}

	listing := rentscout.NewListing(req.URL, &req.ExtractionResult)
	listing.HasApplied = req.HasApplied
	listing.Notes = req.Notes
	if err := s.listings.CreateListing(r.Context(), listing); err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: listing})
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := s.listings.FindListingByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: listing})
}

func (s *Server) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	var upd rentscout.ListingUpdate
	if err := s.decode(w, r, &upd); err != nil {
		s.Error(w, r, err)
		return
	}

	listing, err := s.listings.UpdateListing(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: listing})
}

func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	if err := s.listings.DeleteListing(r.Context(), r.PathValue("id")); err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

// Error writes the failure envelope for err. Internal errors are logged and
// their details withheld.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := rentscout.ErrorCode(err), rentscout.ErrorMessage(err)
	status, ok := codes[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if code == rentscout.EINTERNAL {
		s.logger.Error("http error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeError(w, status, message)
}

// decode reads a JSON body into v and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(v); err != nil {
		return rentscout.Errorf(rentscout.EINVALID, "invalid JSON body")
	}
	if reflect.Indirect(reflect.ValueOf(v)).Kind() != reflect.Struct {
		return nil
	}
	if err := s.validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return rentscout.Errorf(rentscout.EINVALID, "invalid request")
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return rentscout.Errorf(rentscout.EINVALID, "%s required", fe.Field())
	case "url":
		return rentscout.Errorf(rentscout.EINVALID, "%s must be a valid URL", fe.Field())
	}
	return rentscout.Errorf(rentscout.EINVALID, "%s is invalid", fe.Field())
}

// cors allows browser clients on any origin and answers preflight requests.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
