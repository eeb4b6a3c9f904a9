package incident

import (
	"context"
	"strings"

	"go-guardconsole/internal/daterange"
	incidenterrors "go-guardconsole/internal/incident/errors"
	"go-guardconsole/internal/query"
	"go-guardconsole/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=incident_service.go -destination=mock/incident_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, view daterange.ViewKind, date string, f Filter, force bool) (ListResponse, error)
	AttachFile(ctx context.Context, incidentID string, u Upload) (Attachment, error)
}

const MaxAttachmentBytes = 10 << 20

type service struct {
	repo    Repository
	queries *query.Client
	logger  *zap.Logger
}

func NewService(repo Repository, queries *query.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("incident.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("incident.service")
	}
	return &service{repo: repo, queries: queries, logger: l}
}

func (s *service) List(ctx context.Context, view daterange.ViewKind, date string, f Filter, force bool) (ListResponse, error) {
	w, err := daterange.ResolveString(view, date)
	if err != nil {
		return ListResponse{}, err
	}

	key := query.Key("incidents", f.ClientID, f.Severity, w.CacheKey())
	incidents, err := query.Fetch(ctx, s.queries, key, force, func(ctx context.Context) ([]Incident, error) {
		return s.repo.FindByWindow(ctx, w, f)
	})
	if err != nil {
		return ListResponse{}, err
	}

	log := contextutil.GetLogger(ctx, s.logger)
	out := make([]Incident, 0, len(incidents))
	bySeverity := make(map[string]int)
	for _, inc := range incidents {
		ok, err := w.ContainsDate(inc.OccurredAt)
		if err != nil {
			log.Warn("incident with unreadable date skipped",
				zap.String("incident_id", inc.ID),
				zap.String("occurred_at", inc.OccurredAt),
			)
			continue
		}
		if !ok {
			continue
		}
		out = append(out, inc)
		bySeverity[inc.Severity]++
	}

	return ListResponse{
		View:       string(view),
		StartDate:  w.StartDate(),
		EndDate:    w.EndDate(),
		Incidents:  out,
		BySeverity: bySeverity,
	}, nil
}

// AttachFile uploads u to the incident and drops the cached incident lists,
// which carry attachment counts.
func (s *service) AttachFile(ctx context.Context, incidentID string, u Upload) (Attachment, error) {
	incidentID = strings.TrimSpace(incidentID)
	if incidentID == "" || strings.ContainsAny(incidentID, "/?#") {
		return Attachment{}, incidenterrors.ErrInvalidIncidentID
	}
	if len(u.Content) == 0 {
		return Attachment{}, incidenterrors.ErrEmptyAttachment
	}
	if len(u.Content) > MaxAttachmentBytes {
		return Attachment{}, incidenterrors.ErrAttachmentTooLarge
	}

	log := contextutil.GetLogger(ctx, s.logger)
	att, err := s.repo.UploadAttachment(ctx, incidentID, u)
	if err != nil {
		log.Error("upload incident attachment failed",
			zap.String("incident_id", incidentID),
			zap.String("filename", u.Filename),
			zap.Error(err),
		)
		return Attachment{}, err
	}

	if _, err := s.queries.Cache().InvalidatePrefix(ctx, "incidents:"); err != nil {
		log.Warn("drop cached incident lists failed", zap.Error(err))
	}
	log.Info("incident attachment uploaded",
		zap.String("incident_id", incidentID),
		zap.String("attachment_id", att.ID),
		zap.Int("bytes", len(u.Content)),
	)
	return att, nil
}
