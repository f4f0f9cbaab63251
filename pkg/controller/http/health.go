package http

import (
	"net/http"

	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/domain/types"
)

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	status := &model.HealthStatus{
		Status:  "healthy",
		Service: "buildgate",
		Version: types.Version,
	}

	writeJSON(w, http.StatusOK, status)
}
