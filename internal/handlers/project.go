package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/crucial707/folio-api/internal/middleware"
	"github.com/crucial707/folio-api/internal/models"
	"github.com/crucial707/folio-api/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ImageField is the multipart field the image route reads.
const ImageField = "image-raw"

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

type ProjectHandler struct {
	Projects *service.ProjectService
	Log      *zap.Logger
}

func (h *ProjectHandler) actor(r *http.Request) zap.Field {
	id, _ := middleware.GetUserID(r.Context())
	return zap.String("user_id", id)
}

// ==========================
// List Projects
// ==========================
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.List(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// ==========================
// Get Project By ID
// ==========================
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.Projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"project": p})
}

// ==========================
// Create Project
// ==========================

// CreateProject ignores any favorite or image in the body; new projects
// always start unfavorited and without an image.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var input models.NewProject
	if !decodeAndValidate(w, r, &input) {
		return
	}

	p, err := h.Projects.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	h.Log.Info("project created", zap.String("project_id", p.ID), h.actor(r))
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "project created",
		"project": p,
	})
}

// ==========================
// Update Project
// ==========================
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var patch models.ProjectPatch
	if !decodeAndValidate(w, r, &patch) {
		return
	}

	p, err := h.Projects.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	h.Log.Info("project updated", zap.String("project_id", p.ID), h.actor(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "project updated",
		"project": p,
	})
}

// ==========================
// Delete Project
// ==========================
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Projects.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	h.Log.Info("project deleted", zap.String("project_id", id), h.actor(r))
	writeJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}

// ==========================
// Upload Project Image
// ==========================

// UploadImage reads the image-raw multipart file, checks that its bytes look
// like an image and hands it to the uploader. The returned URL is stored on
// the project.
func (h *ProjectHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile(ImageField)
	if err != nil {
		switch {
		case middleware.IsBodyTooLarge(err):
			JSONError(w, "request body too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, http.ErrMissingFile):
			JSONError(w, ImageField+" file is required", http.StatusBadRequest)
		default:
			JSONError(w, "invalid multipart form", http.StatusBadRequest)
		}
		return
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		JSONError(w, "could not read image", http.StatusBadRequest)
		return
	}
	contentType := http.DetectContentType(head[:n])
	if n == 0 || !strings.HasPrefix(contentType, "image/") {
		JSONError(w, "file is not an image", http.StatusBadRequest)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	p, err := h.Projects.AttachImage(r.Context(), chi.URLParam(r, "id"), contentType, file)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	h.Log.Info("project image uploaded",
		zap.String("project_id", p.ID),
		zap.String("content_type", contentType),
		h.actor(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "image uploaded",
		"project": p,
	})
}
