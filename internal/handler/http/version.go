package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
)

// getServerVersion answers GET /api/version with the plain-text version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
