package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/crucial707/folio-api/internal/errs"
	"github.com/crucial707/folio-api/internal/models"
	"github.com/google/uuid"
)

// memProjects is an in-memory ProjectStore with the same not-found rules as
// the postgres repo.
type memProjects struct {
	mu    sync.Mutex
	order []string
	docs  map[string]models.Project
}

func newMemProjects() *memProjects {
	return &memProjects{docs: make(map[string]models.Project)}
}

func (m *memProjects) List(ctx context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Project{}
	for _, id := range m.order {
		if p, ok := m.docs[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProjects) GetByID(ctx context.Context, id string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.docs[id]
	if !ok {
		return models.Project{}, errs.ErrNotFound
	}
	return p, nil
}

func (m *memProjects) Create(ctx context.Context, in models.NewProject) (models.Project, error) {
	m.mu.Lock()
	id := uuid.NewString()
	langs := in.Languages
	if langs == nil {
		langs = []string{}
	}
	m.docs[id] = models.Project{
		ID: id, Name: in.Name, URL: in.URL, Description: in.Description,
		Languages: langs, Github: in.Github,
	}
	m.order = append(m.order, id)
	m.mu.Unlock()
	return m.GetByID(ctx, id)
}

func (m *memProjects) Update(ctx context.Context, id string, fields map[string]any) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.docs[id]
	if !ok {
		return models.Project{}, errs.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "url":
			p.URL = v.(string)
		case "description":
			p.Description = v.(string)
		case "languages":
			p.Languages = v.([]string)
		case "github":
			p.Github = v.(string)
		case "favorite":
			p.Favorite = v.(bool)
		}
	}
	m.docs[id] = p
	return p, nil
}

func (m *memProjects) SetImage(ctx context.Context, id, imageURL string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.docs[id]
	if !ok {
		return models.Project{}, errs.ErrNotFound
	}
	p.Image = &imageURL
	m.docs[id] = p
	return p, nil
}

func (m *memProjects) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

type fakeUploader struct {
	calls int
	url   string
	err   error
	body  string
}

func (f *fakeUploader) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	f.calls++
	b, _ := io.ReadAll(body)
	f.body = string(b)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type memUsers map[string]models.User

func (m memUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := m[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

type failingUsers struct{}

func (failingUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, errs.Store("get user by username", errors.New("connection refused"))
}
