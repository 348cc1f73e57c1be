// Package requests implements the buyer-request side of the vault: listing,
// fulfillment candidates, and the one-way fulfillment transition.
package requests

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"evidence-vault/internal/domain"
	"evidence-vault/internal/notify"
	"evidence-vault/internal/platform/metrics"
	"evidence-vault/internal/storage"
	pkgerrors "evidence-vault/pkg/errors"
	"evidence-vault/pkg/requestcontext"
)

// FulfillMethod selects how a request is satisfied.
type FulfillMethod string

const (
	MethodUseExisting FulfillMethod = "useExisting"
	MethodCreateNew   FulfillMethod = "createNew"
)

// FulfillmentSession holds the transient state of one fulfillment dialog.
// Exactly one of the two method-specific field groups is consulted.
type FulfillmentSession struct {
	Method      FulfillMethod
	EvidenceID  string
	NewDocName  string
	NewDocNotes string
}

// Stats summarizes the request list for the overview cards.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
	Fulfilled int `json:"fulfilled"`
}

// Service coordinates the fulfillment workflow across the two stores.
type Service struct {
	requests storage.RequestStore
	evidence storage.EvidenceStore
	notifier *notify.Publisher
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

func NewService(requests storage.RequestStore, evidence storage.EvidenceStore, notifier *notify.Publisher, m *metrics.Metrics) *Service {
	return &Service{
		requests: requests,
		evidence: evidence,
		notifier: notifier,
		metrics:  m,
		tracer:   otel.Tracer("evidence-vault/requests"),
	}
}

// List returns all requests in seed order.
func (s *Service) List(ctx context.Context) ([]domain.BuyerRequest, error) {
	return s.requests.List(ctx)
}

// Get returns one request or a not_found error.
func (s *Service) Get(ctx context.Context, id string) (domain.BuyerRequest, error) {
	return s.requests.FindByID(ctx, id)
}

// Stats counts requests by status.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Total: len(all)}
	for _, req := range all {
		switch req.Status {
		case domain.RequestStatusPending:
			stats.Pending++
		case domain.RequestStatusOverdue:
			stats.Overdue++
		case domain.RequestStatusFulfilled:
			stats.Fulfilled++
		}
	}
	return stats, nil
}

// Matches returns the fulfillment candidates for a request: approved evidence
// of the requested document type. An empty result does not block the
// create-new path.
func (s *Service) Matches(ctx context.Context, requestID string) ([]domain.Evidence, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	all, err := s.evidence.List(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Evidence, 0)
	for _, ev := range all {
		if ev.DocType == req.DocType && ev.Status == domain.EvidenceStatusApproved {
			matches = append(matches, ev)
		}
	}
	return matches, nil
}

// Fulfill runs the fulfillment workflow. Validation fails closed: nothing is
// written unless the session is complete and the request is still open. On
// success exactly the targeted request changes, then the notification fires.
func (s *Service) Fulfill(ctx context.Context, requestID string, session FulfillmentSession) (domain.BuyerRequest, error) {
	ctx, span := s.tracer.Start(ctx, "requests.Fulfill",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
			attribute.String("fulfill.method", string(session.Method)),
		))
	defer span.End()

	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return domain.BuyerRequest{}, err
	}
	if !req.Open() {
		return domain.BuyerRequest{}, pkgerrors.New(pkgerrors.CodeConflict, "request already fulfilled")
	}

	switch session.Method {
	case MethodUseExisting:
		if session.EvidenceID == "" {
			return domain.BuyerRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "selection required: please select an existing document from the vault")
		}
		ev, err := s.evidence.FindByID(ctx, session.EvidenceID)
		if err != nil {
			return domain.BuyerRequest{}, err
		}
		if ev.DocType != req.DocType || ev.Status != domain.EvidenceStatusApproved {
			return domain.BuyerRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "selected document does not match the requested type")
		}
		req.FulfilledWith = ev.ID
	case MethodCreateNew:
		if strings.TrimSpace(session.NewDocName) == "" {
			return domain.BuyerRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "document name required: please enter a name for the new document")
		}
		// The create-new path records intent only; no evidence record is
		// minted. Flagged to product, preserved as shipped.
		req.FulfilledWith = domain.FulfilledWithNewDocument
	default:
		return domain.BuyerRequest{}, pkgerrors.New(pkgerrors.CodeBadRequest, "unknown fulfillment method")
	}

	req.Status = domain.RequestStatusFulfilled
	if err := s.requests.Update(ctx, req); err != nil {
		return domain.BuyerRequest{}, err
	}

	if s.metrics != nil {
		s.metrics.RequestsFulfilled.Inc()
	}
	_ = s.notifier.Emit(ctx, notify.Notification{
		Time:        requestcontext.Now(ctx),
		Title:       "Request fulfilled",
		Description: fmt.Sprintf("Successfully fulfilled request for %s.", req.DocType),
	})
	return req, nil
}
