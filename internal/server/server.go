package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"vivopizza/internal/domain"
	"vivopizza/internal/metrics"
	"vivopizza/internal/services"
	"vivopizza/internal/validation"
	apperrors "vivopizza/pkg/errors"
)

// maxBodyBytes bounds the inquiry request body; a maximal valid inquiry is
// well under 16KiB.
const maxBodyBytes = 64 << 10

// InquiryService is the inquiry behavior the HTTP layer needs.
type InquiryService interface {
	Create(ctx context.Context, p *domain.InquiryPayload) (*domain.InquiryResult, error)
	Regions(ctx context.Context) []string
}

// HealthService is the liveness behavior the HTTP layer needs.
type HealthService interface {
	Check(ctx context.Context) *services.HealthResult
	Diagnostic(ctx context.Context) *services.DiagnosticResult
}

// Server exposes the inquiry and health services over HTTP.
type Server struct {
	inquiries InquiryService
	health    HealthService
}

// New creates a new HTTP server for the given services.
func New(inquiries InquiryService, health HealthService) *Server {
	return &Server{inquiries: inquiries, health: health}
}

// Mount registers the routes on mux.
func (s *Server) Mount(mux goahttp.Muxer) {
	mux.Handle(http.MethodGet, "/", s.handleCheck)
	mux.Handle(http.MethodGet, "/health", s.handleCheck)
	mux.Handle(http.MethodGet, "/regions", s.handleRegions)
	mux.Handle(http.MethodGet, "/test", s.handleDiagnostic)
	mux.Handle(http.MethodPost, "/inquiry", s.handleCreateInquiry)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	encode(r.Context(), w, http.StatusOK, s.health.Check(r.Context()))
}

func (s *Server) handleDiagnostic(w http.ResponseWriter, r *http.Request) {
	encode(r.Context(), w, http.StatusOK, s.health.Diagnostic(r.Context()))
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	encode(r.Context(), w, http.StatusOK, s.inquiries.Regions(r.Context()))
}

func (s *Server) handleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var body domain.InquiryPayload
	if err := decodeInquiry(r, &body); err != nil {
		if apperrors.IsValidation(err) {
			metrics.RecordInquirySubmission(metrics.OutcomeInvalid)
		}
		encodeError(ctx, w, err)
		return
	}

	res, err := s.inquiries.Create(ctx, &body)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}
	encode(ctx, w, http.StatusOK, res)
}

// decodeInquiry decodes the request body into p. The body must hold exactly
// one JSON value.
func decodeInquiry(r *http.Request, p *domain.InquiryPayload) error {
	dec := goahttp.RequestDecoder(r)
	if err := dec.Decode(p); err != nil {
		return validation.FromDecodeError(p, err)
	}
	if jd, ok := dec.(*json.Decoder); ok {
		var extra json.RawMessage
		if err := jd.Decode(&extra); !errors.Is(err, io.EOF) {
			return apperrors.Wrap(apperrors.ErrCodeBadRequest, "request body must hold a single JSON object", err)
		}
	}
	return nil
}

func encode(ctx context.Context, w http.ResponseWriter, status int, v any) {
	enc := goahttp.ResponseEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		log.Printf("[ERROR] failed to encode response: %v", err)
	}
}
