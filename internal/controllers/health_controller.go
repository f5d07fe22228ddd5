package controllers

import (
	"net/http"

	"github.com/neluchetraru/prop-track/internal/app"
	"github.com/neluchetraru/prop-track/internal/dtos"
	"github.com/neluchetraru/prop-track/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// Probe the only external dependency.
	if err := c.app.DB.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("property-service unhealthy")
		utils.RespondError(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Service unhealthy",
			nil,
			err,
		)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
