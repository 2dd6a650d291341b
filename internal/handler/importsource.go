package handler

import (
	"net/http"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/importsource"
	"github.com/osse101/CardBinder_Go/internal/logger"
)

// ImportSourceRequest carries import source fields for create and update.
type ImportSourceRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	URL     string `json:"url" validate:"required,url,max=500"`
	Kind    string `json:"kind" validate:"required,sourcekind"`
	Enabled bool   `json:"enabled"`
}

// HandleCreateImportSource handles registering an upstream feed
// @Summary Create import source
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ImportSourceRequest true "Source details"
// @Success 201 {object} domain.ImportSource
// @Failure 400 {object} ValidationErrorResponse
// @Router /admin/import-sources [post]
func HandleCreateImportSource(svc importsource.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ImportSourceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create import source"); err != nil {
			return
		}

		created, err := svc.CreateSource(r.Context(), req.Name, req.URL, req.Kind, req.Enabled)
		if err != nil {
			respondServiceError(w, r, "Create import source", err)
			return
		}

		log.Info("Import source registered", "source_id", created.ID)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListImportSources handles listing registered feeds
// @Summary List import sources
// @Tags admin
// @Produce json
// @Success 200 {array} domain.ImportSource
// @Failure 500 {object} ErrorResponse
// @Router /admin/import-sources [get]
func HandleListImportSources(svc importsource.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sources, err := svc.ListSources(r.Context())
		if err != nil {
			respondServiceError(w, r, "List import sources", err)
			return
		}
		if sources == nil {
			sources = []domain.ImportSource{}
		}
		respondJSON(w, http.StatusOK, sources)
	}
}

// HandleUpdateImportSource handles updating a registered feed
// @Summary Update import source
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Source ID"
// @Param request body ImportSourceRequest true "Source details"
// @Success 200 {object} domain.ImportSource
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/import-sources/{id} [put]
func HandleUpdateImportSource(svc importsource.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sourceID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		var req ImportSourceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update import source"); err != nil {
			return
		}

		updated, err := svc.UpdateSource(r.Context(), sourceID, req.Name, req.URL, req.Kind, req.Enabled)
		if err != nil {
			respondServiceError(w, r, "Update import source", err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteImportSource handles removing a registered feed
// @Summary Delete import source
// @Tags admin
// @Produce json
// @Param id path int true "Source ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/import-sources/{id} [delete]
func HandleDeleteImportSource(svc importsource.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sourceID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		if err := svc.DeleteSource(r.Context(), sourceID); err != nil {
			respondServiceError(w, r, "Delete import source", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Import source deleted"})
	}
}
