package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fairlink/careerfair-api/internal/api/metrics"
	"github.com/fairlink/careerfair-api/internal/core/domain"
	"github.com/fairlink/careerfair-api/internal/core/ports"
	"github.com/fairlink/careerfair-api/internal/infrastructure/filestore"
)

// ResumeHandler handles HTTP requests for resume submission and review.
type ResumeHandler struct {
	service ports.ResumeService
}

func NewResumeHandler(service ports.ResumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// SubmitToBooth handles POST /api/resumes/submit.
//
// @Summary      Submit a resume to a company booth
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume          formData  file    true  "Resume file (PDF, DOC, DOCX; 5 MiB max)"
// @Param        userId          formData  string  true  "Submitting user id"
// @Param        companyBoothId  formData  string  true  "Target booth id"
// @Success      201  {object}  submittedResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/resumes/submit [post]
func (h *ResumeHandler) SubmitToBooth(c echo.Context) error {
	file, err := readResumeFile(c)
	if err != nil {
		return submitError(c, err)
	}

	id, err := h.service.SubmitToBooth(c.Request().Context(), ports.SubmitResumeInput{
		UserID:  c.FormValue("userId"),
		BoothID: c.FormValue("companyBoothId"),
		File:    file,
	})
	if err != nil {
		return submitError(c, err)
	}

	metrics.SubmissionsTotal.WithLabelValues("booth").Inc()
	metrics.UploadSizeBytes.Observe(float64(file.Size))
	return c.JSON(http.StatusCreated, submittedResponse{
		Message: "Resume submitted successfully",
		ID:      id,
	})
}

// SubmitToJob handles POST /api/resumes/submit-job.
//
// @Summary      Submit a resume to a job opportunity
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume            formData  file    true   "Resume file (PDF, DOC, DOCX; 5 MiB max)"
// @Param        userId            formData  string  true   "Submitting user id"
// @Param        jobOpportunityId  formData  string  true   "Target job opportunity id"
// @Param        coverLetter       formData  string  false  "Optional cover letter"
// @Success      201  {object}  submittedResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/resumes/submit-job [post]
func (h *ResumeHandler) SubmitToJob(c echo.Context) error {
	file, err := readResumeFile(c)
	if err != nil {
		return submitError(c, err)
	}

	id, err := h.service.SubmitToJob(c.Request().Context(), ports.SubmitResumeInput{
		UserID:      c.FormValue("userId"),
		JobID:       c.FormValue("jobOpportunityId"),
		CoverLetter: c.FormValue("coverLetter"),
		File:        file,
	})
	if err != nil {
		return submitError(c, err)
	}

	metrics.SubmissionsTotal.WithLabelValues("job").Inc()
	metrics.UploadSizeBytes.Observe(float64(file.Size))
	return c.JSON(http.StatusCreated, submittedResponse{
		Message: "Resume submitted successfully",
		ID:      id,
	})
}

// ListForUser handles GET /api/resumes/user/:userId.
//
// @Summary      List a user's submitted resumes
// @Tags         resumes
// @Produce      json
// @Param        userId  path      int  true  "User id"
// @Success      200     {array}   ports.SubmittedResume
// @Failure      400     {object}  map[string]string
// @Router       /api/resumes/user/{userId} [get]
func (h *ResumeHandler) ListForUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	resumes, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if resumes == nil {
		resumes = []ports.SubmittedResume{}
	}
	return c.JSON(http.StatusOK, resumes)
}

// ListForJob handles GET /api/resumes/job/:jobId (employer view).
//
// @Summary      List resumes received by a job opportunity
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      int  true  "Job opportunity id"
// @Success      200    {array}   ports.ReceivedResume
// @Failure      403    {object}  map[string]string
// @Router       /api/resumes/job/{jobId} [get]
func (h *ResumeHandler) ListForJob(c echo.Context) error {
	jobID, err := pathID(c, "jobId")
	if err != nil {
		return err
	}
	by, err := ctxRequester(c)
	if err != nil {
		return err
	}
	resumes, err := h.service.ListForJob(c.Request().Context(), jobID, by)
	if err != nil {
		return err
	}
	if resumes == nil {
		resumes = []ports.ReceivedResume{}
	}
	return c.JSON(http.StatusOK, resumes)
}

// ListForBooth handles GET /api/resumes/booth/:boothId (employer view).
//
// @Summary      List resumes received by a company booth
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        boothId  path      int  true  "Company booth id"
// @Success      200      {array}   ports.ReceivedResume
// @Failure      403      {object}  map[string]string
// @Router       /api/resumes/booth/{boothId} [get]
func (h *ResumeHandler) ListForBooth(c echo.Context) error {
	boothID, err := pathID(c, "boothId")
	if err != nil {
		return err
	}
	by, err := ctxRequester(c)
	if err != nil {
		return err
	}
	resumes, err := h.service.ListForBooth(c.Request().Context(), boothID, by)
	if err != nil {
		return err
	}
	if resumes == nil {
		resumes = []ports.ReceivedResume{}
	}
	return c.JSON(http.StatusOK, resumes)
}

// SetStatus handles PUT /api/resumes/:resumeId/status.
//
// @Summary      Update a resume's review status
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resumeId  path      int               true  "Resume id"
// @Param        body      body      setStatusRequest  true  "New status"
// @Success      200       {object}  messageResponse
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/resumes/{resumeId}/status [put]
func (h *ResumeHandler) SetStatus(c echo.Context) error {
	resumeID, err := pathID(c, "resumeId")
	if err != nil {
		return err
	}
	by, err := ctxRequester(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetStatus(c.Request().Context(), resumeID, req.Status, by); err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Resume status updated successfully"})
}

// readResumeFile pulls the "resume" part out of the multipart form. A missing
// part maps to ErrFileRequired; an oversized part is caught here with a
// limited reader so the handler never buffers more than the limit.
func readResumeFile(c echo.Context) (*ports.FileUpload, error) {
	fh, err := c.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, domain.ErrFileRequired
		}
		return nil, fmt.Errorf("read form file: %w", err)
	}
	if fh.Size > filestore.MaxFileSize {
		return nil, domain.ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	content, err := readAtMost(src, filestore.MaxFileSize)
	if err != nil {
		return nil, err
	}
	return &ports.FileUpload{
		Name:    fh.Filename,
		Size:    int64(len(content)),
		Content: content,
	}, nil
}

// readAtMost reads the whole part but fails once it exceeds the limit, even
// when the multipart header understates the size.
func readAtMost(src multipart.File, limit int64) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(content)) > limit {
		return nil, domain.ErrFileTooLarge
	}
	return content, nil
}

// submitError records the rejection reason before handing the error to the
// central error handler.
func submitError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrFileRequired):
		metrics.SubmissionErrorsTotal.WithLabelValues("missing_file").Inc()
	case errors.Is(err, domain.ErrFileType):
		metrics.SubmissionErrorsTotal.WithLabelValues("file_type").Inc()
	case errors.Is(err, domain.ErrFileTooLarge):
		metrics.SubmissionErrorsTotal.WithLabelValues("file_too_large").Inc()
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.SubmissionErrorsTotal.WithLabelValues("invalid_input").Inc()
	default:
		metrics.SubmissionErrorsTotal.WithLabelValues("store_failed").Inc()
	}
	return err
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
