package controller

import "net/http"

// Root handles GET /api as a liveness check.
type Root struct{}

func (Root) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeMessage(r.Context(), w, http.StatusOK, "Origenes API is running")
}
