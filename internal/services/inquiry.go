package services

import (
	"context"
	"errors"
	"log"

	"vivopizza/internal/clock"
	"vivopizza/internal/database"
	"vivopizza/internal/domain"
	"vivopizza/internal/metrics"
	"vivopizza/internal/validation"
	apperrors "vivopizza/pkg/errors"
)

// errNoID is reported when the store accepts a document without assigning an
// identifier.
var errNoID = errors.New("no ID returned from database")

// InquiryService implements the inquiry service
type InquiryService struct {
	store   database.DocumentStore
	regions domain.Regions
	clock   clock.Clock
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(store database.DocumentStore, regions domain.Regions, clk clock.Clock) *InquiryService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &InquiryService{
		store:   store,
		regions: regions,
		clock:   clk,
	}
}

// Create validates the submission, stamps it with status "new" and the
// creation time, and writes exactly one document to the inquiry collection.
//
// Validation failures are returned as *errors.ValidationError before any
// side effect; store failures (including a missing identifier) as a storage
// AppError.
func (s *InquiryService) Create(ctx context.Context, p *domain.InquiryPayload) (*domain.InquiryResult, error) {
	inquiry, err := validation.ValidateInquiry(p)
	if err != nil {
		log.Printf("[INQUIRY] Create failed: validation error: %v", err)
		metrics.RecordInquirySubmission(metrics.OutcomeInvalid)
		return nil, err
	}

	log.Printf("[INQUIRY] Create request: email=%s, event_date=%s, guests=%d", inquiry.Email, inquiry.EventDate, inquiry.Guests)

	inquiry.Enrich(s.clock.Now())

	stored, err := s.store.CreateDocument(ctx, domain.InquiryCollection, inquiry.Document())
	if err != nil {
		log.Printf("[INQUIRY] Create failed: database error: %v", err)
		metrics.RecordInquirySubmission(metrics.OutcomeFailed)
		return nil, apperrors.Storage("failed to store inquiry", err)
	}

	id := stored.ID()
	if id == "" {
		log.Printf("[INQUIRY] Create failed: %v", errNoID)
		metrics.RecordInquirySubmission(metrics.OutcomeFailed)
		return nil, apperrors.Storage("failed to store inquiry", errNoID)
	}

	log.Printf("[INQUIRY] Create successful: id=%s, email=%s", id, inquiry.Email)
	metrics.RecordInquirySubmission(metrics.OutcomeReceived)

	return &domain.InquiryResult{
		ID:     id,
		Status: domain.StatusReceived,
	}, nil
}

// Regions returns the configured service areas in order.
func (s *InquiryService) Regions(ctx context.Context) []string {
	return s.regions.List()
}
