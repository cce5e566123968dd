package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fairlink/careerfair-api/internal/core/ports"
)

// JobHandler handles HTTP requests for the public job catalog.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /api/jobs.
//
// @Summary      List active job opportunities
// @Tags         jobs
// @Produce      json
// @Success      200  {array}  ports.JobListing
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []ports.JobListing{}
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /api/jobs/:jobId.
//
// @Summary      Get an active job opportunity
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job opportunity id"
// @Success      200    {object}  ports.JobListing
// @Failure      404    {object}  map[string]string
// @Router       /api/jobs/{jobId} [get]
func (h *JobHandler) Get(c echo.Context) error {
	jobID, err := pathID(c, "jobId")
	if err != nil {
		return err
	}
	job, err := h.service.Get(c.Request().Context(), jobID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}
