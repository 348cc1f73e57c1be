package vault

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
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

// Defaults used when an upload carries no file descriptor. The demo captures
// only the file's name and size; bytes are never stored.
const (
	defaultFileSize = "1.2 MB"
	defaultFileName = "document.pdf"
)

// FileDescriptor is what the upload surface knows about a chosen file.
type FileDescriptor struct {
	Name      string
	SizeBytes int64
}

// UploadSession holds the transient state of one upload dialog. It is
// discarded after a successful submission.
type UploadSession struct {
	Notes      string
	ExpiryDate *string
	File       *FileDescriptor
}

// Service exposes the vault read model and the version-upload workflow. The
// clock and acting identity come from the request context, keeping the
// workflow deterministic under test.
type Service struct {
	store    storage.EvidenceStore
	notifier *notify.Publisher
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

func NewService(store storage.EvidenceStore, notifier *notify.Publisher, m *metrics.Metrics) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		metrics:  m,
		tracer:   otel.Tracer("evidence-vault/vault"),
	}
}

// ListResult carries the filtered view plus the state that produced it.
type ListResult struct {
	Items      []domain.Evidence
	Filters    FilterState
	HasFilters bool
}

// List applies the filter state to the full collection at the request-scoped
// now, preserving seed order.
func (s *Service) List(ctx context.Context, f FilterState) (ListResult, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Items:      f.Apply(records, requestcontext.Now(ctx)),
		Filters:    f,
		HasFilters: f.HasActive(),
	}, nil
}

// Get returns one record or a not_found error.
func (s *Service) Get(ctx context.Context, id string) (domain.Evidence, error) {
	return s.store.FindByID(ctx, id)
}

// AppendVersion runs the upload workflow: validate, construct the next
// version, prepend it as the new latest, and advance LastUpdated. Validation
// failures never touch the store.
func (s *Service) AppendVersion(ctx context.Context, evidenceID string, session UploadSession) (domain.Evidence, error) {
	ctx, span := s.tracer.Start(ctx, "vault.AppendVersion",
		trace.WithAttributes(attribute.String("evidence.id", evidenceID)))
	defer span.End()

	if strings.TrimSpace(session.Notes) == "" {
		return domain.Evidence{}, pkgerrors.New(pkgerrors.CodeValidation, "notes required: please add notes describing this version")
	}

	ev, err := s.store.FindByID(ctx, evidenceID)
	if err != nil {
		return domain.Evidence{}, err
	}

	now := requestcontext.Now(ctx)
	version := domain.EvidenceVersion{
		ID:         uuid.NewString(),
		Version:    len(ev.Versions) + 1,
		UploadedAt: now,
		UploadedBy: requestcontext.Actor(ctx),
		Notes:      session.Notes,
		FileSize:   defaultFileSize,
		FileName:   defaultFileName,
	}
	if session.File != nil {
		version.FileSize = FormatFileSize(session.File.SizeBytes)
		if session.File.Name != "" {
			version.FileName = session.File.Name
		}
	}

	ev.Versions = append([]domain.EvidenceVersion{version}, ev.Versions...)
	ev.LastUpdated = now
	if err := s.store.Update(ctx, ev); err != nil {
		return domain.Evidence{}, err
	}

	if s.metrics != nil {
		s.metrics.VersionsUploaded.Inc()
	}
	_ = s.notifier.Emit(ctx, notify.Notification{
		Time:        now,
		Title:       "Version uploaded",
		Description: fmt.Sprintf("Version %d has been added successfully.", version.Version),
	})
	return ev, nil
}

// BuildPack validates a selection against the currently visible set and
// records the pack action. IDs that fell out of view since they were selected
// simply don't count; an effectively empty selection is rejected.
func (s *Service) BuildPack(ctx context.Context, f FilterState, ids []string) (SelectionSummary, error) {
	result, err := s.List(ctx, f)
	if err != nil {
		return SelectionSummary{}, err
	}
	visibleIDs := make([]string, len(result.Items))
	for i, ev := range result.Items {
		visibleIDs[i] = ev.ID
	}

	selection := NewSelection()
	for _, id := range ids {
		selection.Toggle(id, true)
	}
	summary := selection.Summary(visibleIDs)
	if summary.Count == 0 {
		return SelectionSummary{}, pkgerrors.New(pkgerrors.CodeValidation, "no visible documents selected")
	}

	if s.metrics != nil {
		s.metrics.PacksCreated.Inc()
	}
	plural := ""
	if summary.Count > 1 {
		plural = "s"
	}
	_ = s.notifier.Emit(ctx, notify.Notification{
		Time:        requestcontext.Now(ctx),
		Title:       "Added to pack",
		Description: fmt.Sprintf("%d document%s selected for pack", summary.Count, plural),
	})
	return summary, nil
}

// FormatFileSize renders a byte count the way the upload dialog displays it.
func FormatFileSize(bytes int64) string {
	return fmt.Sprintf("%.1f MB", float64(bytes)/1024/1024)
}
