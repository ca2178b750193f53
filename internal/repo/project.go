package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/crucial707/folio-api/internal/errs"
	"github.com/crucial707/folio-api/internal/models"
	"github.com/google/uuid"
)

// ========================
// REPOSITORY STRUCT
// ========================

// ProjectRepo stores projects as jsonb documents keyed by uuid.
type ProjectRepo struct {
	DB *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{DB: db}
}

// projectDoc is the stored document; the id lives in its own column.
type projectDoc struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Languages   []string `json:"languages"`
	Github      string   `json:"github"`
	Favorite    bool     `json:"favorite"`
	Image       *string  `json:"image"`
}

func scanProject(row interface{ Scan(...any) error }) (models.Project, error) {
	var (
		id  string
		raw []byte
		doc projectDoc
	)
	if err := row.Scan(&id, &raw); err != nil {
		return models.Project{}, err
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Project{}, err
	}
	if doc.Languages == nil {
		doc.Languages = []string{}
	}
	return models.Project{
		ID:          id,
		Name:        doc.Name,
		URL:         doc.URL,
		Description: doc.Description,
		Languages:   doc.Languages,
		Github:      doc.Github,
		Favorite:    doc.Favorite,
		Image:       doc.Image,
	}, nil
}

func notFoundOr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	return errs.Store(op, err)
}

// ========================
// CREATE PROJECT
// ========================

// Create stores a new document with favorite=false and no image, then reads
// it back so the caller sees what was persisted.
func (r *ProjectRepo) Create(ctx context.Context, in models.NewProject) (models.Project, error) {
	langs := in.Languages
	if langs == nil {
		langs = []string{}
	}
	raw, err := json.Marshal(projectDoc{
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
		Languages:   langs,
		Github:      in.Github,
	})
	if err != nil {
		return models.Project{}, errs.Store("encode project", err)
	}

	id := uuid.NewString()
	if _, err := r.DB.ExecContext(ctx,
		`INSERT INTO projects (id, doc) VALUES ($1, $2)`,
		id, raw,
	); err != nil {
		return models.Project{}, errs.Store("insert project", err)
	}

	return r.GetByID(ctx, id)
}

// ========================
// GET PROJECT BY ID
// ========================

// GetByID returns errs.ErrNotFound for unknown or malformed ids.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Project{}, errs.ErrNotFound
	}
	p, err := scanProject(r.DB.QueryRowContext(ctx,
		`SELECT id, doc FROM projects WHERE id = $1`,
		id,
	))
	if err != nil {
		return models.Project{}, notFoundOr("get project", err)
	}
	return p, nil
}

// ========================
// LIST ALL PROJECTS
// ========================

// List returns every project in insertion order.
func (r *ProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, doc FROM projects ORDER BY seq`)
	if err != nil {
		return nil, errs.Store("list projects", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, errs.Store("scan project", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Store("list projects", err)
	}
	return projects, nil
}

// ========================
// UPDATE PROJECT BY ID
// ========================

// Update overwrites the top-level keys in fields and keeps the rest of the document.
func (r *ProjectRepo) Update(ctx context.Context, id string, fields map[string]any) (models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Project{}, errs.ErrNotFound
	}
	patch, err := json.Marshal(fields)
	if err != nil {
		return models.Project{}, errs.Store("encode patch", err)
	}
	p, err := scanProject(r.DB.QueryRowContext(ctx,
		`UPDATE projects SET doc = doc || $2::jsonb WHERE id = $1 RETURNING id, doc`,
		id, patch,
	))
	if err != nil {
		return models.Project{}, notFoundOr("update project", err)
	}
	return p, nil
}

// ========================
// SET PROJECT IMAGE
// ========================

func (r *ProjectRepo) SetImage(ctx context.Context, id, imageURL string) (models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Project{}, errs.ErrNotFound
	}
	p, err := scanProject(r.DB.QueryRowContext(ctx,
		`UPDATE projects SET doc = jsonb_set(doc, '{image}', to_jsonb($2::text)) WHERE id = $1 RETURNING id, doc`,
		id, imageURL,
	))
	if err != nil {
		return models.Project{}, notFoundOr("set project image", err)
	}
	return p, nil
}

// ========================
// DELETE PROJECT BY ID
// ========================

// Delete fails with errs.ErrNotFound when no row was removed.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errs.ErrNotFound
	}
	result, err := r.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return errs.Store("delete project", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errs.Store("delete project", err)
	}
	if rows == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Ping reports whether the store is reachable.
func (r *ProjectRepo) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
