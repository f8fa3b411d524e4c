package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
)

// DashboardStats handles GET /api/dashboard/stats and GET /api/auth/stats.
type DashboardStats struct {
	Command *command.GetDashboardStats
}

func (c DashboardStats) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := c.Command.Execute(ctx, command.Empty{})
	if err != nil {
		writeError(ctx, w, err, "fetch dashboard stats")
		return
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}
