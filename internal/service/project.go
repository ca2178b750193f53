package service

import (
	"context"
	"io"

	"github.com/crucial707/folio-api/internal/assets"
	"github.com/crucial707/folio-api/internal/errs"
	"github.com/crucial707/folio-api/internal/metrics"
	"github.com/crucial707/folio-api/internal/models"
)

type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (models.Project, error)
	Create(ctx context.Context, in models.NewProject) (models.Project, error)
	Update(ctx context.Context, id string, fields map[string]any) (models.Project, error)
	SetImage(ctx context.Context, id, imageURL string) (models.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProjectService runs project CRUD against the store and image uploads
// against the asset host.
type ProjectService struct {
	store    ProjectStore
	uploader assets.Uploader
}

func NewProjectService(store ProjectStore, uploader assets.Uploader) *ProjectService {
	return &ProjectService{store: store, uploader: uploader}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.store.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (models.Project, error) {
	return s.store.GetByID(ctx, id)
}

// Create persists a new project. favorite and image are always reset by the store.
func (s *ProjectService) Create(ctx context.Context, in models.NewProject) (models.Project, error) {
	return s.store.Create(ctx, in)
}

func (s *ProjectService) Update(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return models.Project{}, errs.InvalidInput("no fields to update")
	}
	return s.store.Update(ctx, id, fields)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// AttachImage uploads body and stores the returned URL on the project.
// The project must exist before anything is uploaded.
func (s *ProjectService) AttachImage(ctx context.Context, id, contentType string, body io.Reader) (models.Project, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return models.Project{}, err
	}

	imageURL, err := s.uploader.Upload(ctx, "project-"+id, contentType, body)
	if err != nil {
		metrics.IncImageUploads("error")
		return models.Project{}, errs.Upload(err)
	}
	metrics.IncImageUploads("success")

	return s.store.SetImage(ctx, id, imageURL)
}
