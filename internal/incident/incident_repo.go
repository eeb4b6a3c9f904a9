package incident

import (
	"context"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/httpclient"
)

//go:generate mockgen -source=incident_repo.go -destination=mock/incident_repo_mock.go -package=mock
type Repository interface {
	FindByWindow(ctx context.Context, w daterange.Window, f Filter) ([]Incident, error)
	UploadAttachment(ctx context.Context, incidentID string, u Upload) (Attachment, error)
}

type repository struct {
	core *httpclient.Client
}

func NewRepository(core *httpclient.Client) Repository {
	return &repository{core: core}
}

// FindByWindow lists incidents; the incidents endpoint takes fromDate/toDate.
func (r *repository) FindByWindow(ctx context.Context, w daterange.Window, f Filter) ([]Incident, error) {
	params := w.QueryParams(daterange.StyleFromTo)
	if f.Severity != "" {
		params.Set("severity", f.Severity)
	}
	if f.ClientID != "" {
		params.Set("clientId", f.ClientID)
	}

	var env httpclient.Envelope[[]Incident]
	if err := r.core.Get(ctx, "/incidents", params, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []Incident{}, nil
	}
	return env.Data, nil
}

// UploadAttachment posts the file as multipart form data; the policy drops
// the JSON content type so the boundary survives.
func (r *repository) UploadAttachment(ctx context.Context, incidentID string, u Upload) (Attachment, error) {
	form := httpclient.NewFormData().AddFile("file", u.Filename, u.Content)
	if u.Caption != "" {
		form.AddField("caption", u.Caption)
	}

	var env httpclient.Envelope[Attachment]
	if err := r.core.Post(ctx, "/incidents/"+incidentID+"/attachments", form, &env); err != nil {
		return Attachment{}, err
	}
	return env.Data, nil
}
