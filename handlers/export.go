package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"wealthgenie/backend/middleware"
	"wealthgenie/backend/models"
	"wealthgenie/backend/services"
)

// ExportHandler serves the export dialog's download request.
type ExportHandler struct {
	svc *services.ExportService
}

func NewExportHandler(svc *services.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

type exportRequest struct {
	Format  models.ExportFormat  `json:"format"`
	Options models.ExportOptions `json:"options"`
}

// Export handles POST /export: renders the selected report format and
// streams it back as a named attachment.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		http.Error(w, "Unauthorized: No user ID found", http.StatusUnauthorized)
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Format == "" {
		req.Format = models.FormatXLSX
	}
	if !req.Format.Valid() {
		http.Error(w, fmt.Sprintf("unsupported export format %q", req.Format), http.StatusBadRequest)
		return
	}
	if !req.Options.Any() {
		http.Error(w, "at least one data selection is required", http.StatusBadRequest)
		return
	}

	token := middleware.GetAccessTokenFromContext(r)
	result, err := h.svc.Export(r.Context(), token, req.Options, req.Format)
	if err != nil {
		log.Printf("Export failed for user %s: %v", userID, err)
		switch {
		case errors.Is(err, services.ErrNoSelection):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, services.ErrExportInProgress):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, services.ErrFetchFailed):
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			http.Error(w, "Failed to export data", http.StatusInternalServerError)
		}
		return
	}

	log.Printf("User %s exported %s", userID, result.FileName)

	w.Header().Set("Content-Type", result.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	if _, err := w.Write(result.Data); err != nil {
		log.Printf("Error streaming export to user %s: %v", userID, err)
	}
}
