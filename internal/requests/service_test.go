package requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"evidence-vault/internal/domain"
	"evidence-vault/internal/notify"
	"evidence-vault/internal/storage"
	pkgerrors "evidence-vault/pkg/errors"
	"evidence-vault/pkg/requestcontext"
)

type FulfillmentSuite struct {
	suite.Suite
	evidence *storage.InMemoryEvidenceStore
	requests *storage.InMemoryRequestStore
	sink     *notify.InMemorySink
	service  *Service
}

func TestFulfillmentSuite(t *testing.T) {
	suite.Run(t, new(FulfillmentSuite))
}

func (s *FulfillmentSuite) SetupTest() {
	s.evidence = storage.NewInMemoryEvidenceStore()
	s.requests = storage.NewInMemoryRequestStore()
	storage.Seed(s.evidence, s.requests)
	s.sink = notify.NewInMemorySink()
	s.service = NewService(s.requests, s.evidence, notify.NewPublisher(s.sink), nil)
}

func (s *FulfillmentSuite) ctx() context.Context {
	now, err := time.Parse(domain.DateLayout, "2025-01-02")
	s.Require().NoError(err)
	return requestcontext.WithTime(context.Background(), now)
}

func (s *FulfillmentSuite) snapshot() []domain.BuyerRequest {
	all, err := s.requests.List(context.Background())
	s.Require().NoError(err)
	return all
}

func (s *FulfillmentSuite) TestStats() {
	stats, err := s.service.Stats(s.ctx())
	s.Require().NoError(err)
	s.Equal(Stats{Total: 6, Pending: 4, Overdue: 1, Fulfilled: 1}, stats)
}

func (s *FulfillmentSuite) TestMatches() {
	s.Run("approved evidence of the requested type", func() {
		// req-001 wants a SOC 2 Type II Report; ev-002 is the approved one.
		matches, err := s.service.Matches(s.ctx(), "req-001")
		s.Require().NoError(err)
		s.Require().Len(matches, 1)
		s.Equal("ev-002", matches[0].ID)
	})

	s.Run("pending evidence is not a candidate", func() {
		// req-006 wants a Data Processing Agreement; ev-003 matches the type
		// but is still pending review.
		matches, err := s.service.Matches(s.ctx(), "req-006")
		s.Require().NoError(err)
		s.Empty(matches)
	})

	s.Run("unknown request", func() {
		_, err := s.service.Matches(s.ctx(), "req-999")
		s.True(pkgerrors.Is(err, pkgerrors.CodeNotFound))
	})
}

func (s *FulfillmentSuite) TestFulfillValidation() {
	before := s.snapshot()

	s.Run("useExisting without a selection", func() {
		_, err := s.service.Fulfill(s.ctx(), "req-001", FulfillmentSession{Method: MethodUseExisting})
		s.True(pkgerrors.Is(err, pkgerrors.CodeValidation))
	})

	s.Run("createNew with a whitespace name", func() {
		_, err := s.service.Fulfill(s.ctx(), "req-001", FulfillmentSession{
			Method:     MethodCreateNew,
			NewDocName: "   ",
		})
		s.True(pkgerrors.Is(err, pkgerrors.CodeValidation))
	})

	s.Run("unknown method", func() {
		_, err := s.service.Fulfill(s.ctx(), "req-001", FulfillmentSession{Method: "magic"})
		s.True(pkgerrors.Is(err, pkgerrors.CodeBadRequest))
	})

	s.Run("mismatched evidence type", func() {
		// ev-001 is approved but it's an ISO certificate, not the SOC 2 report
		// req-001 asks for.
		_, err := s.service.Fulfill(s.ctx(), "req-001", FulfillmentSession{
			Method:     MethodUseExisting,
			EvidenceID: "ev-001",
		})
		s.True(pkgerrors.Is(err, pkgerrors.CodeValidation))
	})

	s.Run("store untouched and no notification", func() {
		s.Equal(before, s.snapshot(), "failed validation must never mutate the store")
		events, err := s.sink.List(context.Background())
		s.NoError(err)
		s.Empty(events)
	})
}

func (s *FulfillmentSuite) TestFulfillUseExisting() {
	req, err := s.service.Fulfill(s.ctx(), "req-001", FulfillmentSession{
		Method:     MethodUseExisting,
		EvidenceID: "ev-002",
	})
	s.Require().NoError(err)
	s.Equal(domain.RequestStatusFulfilled, req.Status)
	s.Equal("ev-002", req.FulfilledWith)

	// Exactly the targeted request changed.
	for _, other := range s.snapshot() {
		if other.ID == "req-001" {
			s.Equal(domain.RequestStatusFulfilled, other.Status)
			continue
		}
		switch other.ID {
		case "req-002":
			s.Equal(domain.RequestStatusFulfilled, other.Status, "req-002 was seeded fulfilled")
		case "req-003":
			s.Equal(domain.RequestStatusOverdue, other.Status)
		default:
			s.Equal(domain.RequestStatusPending, other.Status)
		}
	}

	events, err := s.sink.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal("Request fulfilled", events[0].Title)
	s.Equal("Successfully fulfilled request for SOC 2 Type II Report.", events[0].Description)
}

func (s *FulfillmentSuite) TestFulfillCreateNew() {
	req, err := s.service.Fulfill(s.ctx(), "req-003", FulfillmentSession{
		Method:     MethodCreateNew,
		NewDocName: "Pen Test Report Q1 2025",
	})
	s.Require().NoError(err)
	s.Equal(domain.RequestStatusFulfilled, req.Status)
	s.Equal(domain.FulfilledWithNewDocument, req.FulfilledWith)

	// The create-new path records the sentinel only; the vault gains nothing.
	all, err := s.evidence.List(context.Background())
	s.Require().NoError(err)
	s.Len(all, 8)
}

func (s *FulfillmentSuite) TestFulfillIsTerminal() {
	_, err := s.service.Fulfill(s.ctx(), "req-002", FulfillmentSession{
		Method:     MethodUseExisting,
		EvidenceID: "ev-001",
	})
	s.True(pkgerrors.Is(err, pkgerrors.CodeConflict), "fulfilled requests accept no further transitions")
}
