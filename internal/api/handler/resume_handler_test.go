package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fairlink/careerfair-api/internal/api"
	"github.com/fairlink/careerfair-api/internal/api/handler"
	"github.com/fairlink/careerfair-api/internal/core/domain"
	"github.com/fairlink/careerfair-api/internal/core/ports"
)

type stubResumeService struct {
	submitBoothFn func(ctx context.Context, in ports.SubmitResumeInput) (int64, error)
	submitJobFn   func(ctx context.Context, in ports.SubmitResumeInput) (int64, error)
	setStatusFn   func(ctx context.Context, resumeID int64, status string, by ports.Requester) error
	listUserFn    func(ctx context.Context, userID int64) ([]ports.SubmittedResume, error)
	listJobFn     func(ctx context.Context, jobID int64, by ports.Requester) ([]ports.ReceivedResume, error)
	listBoothFn   func(ctx context.Context, boothID int64, by ports.Requester) ([]ports.ReceivedResume, error)
}

func (s *stubResumeService) SubmitToBooth(ctx context.Context, in ports.SubmitResumeInput) (int64, error) {
	return s.submitBoothFn(ctx, in)
}

func (s *stubResumeService) SubmitToJob(ctx context.Context, in ports.SubmitResumeInput) (int64, error) {
	return s.submitJobFn(ctx, in)
}

func (s *stubResumeService) SetStatus(ctx context.Context, resumeID int64, status string, by ports.Requester) error {
	return s.setStatusFn(ctx, resumeID, status, by)
}

func (s *stubResumeService) ListForUser(ctx context.Context, userID int64) ([]ports.SubmittedResume, error) {
	return s.listUserFn(ctx, userID)
}

func (s *stubResumeService) ListForJob(ctx context.Context, jobID int64, by ports.Requester) ([]ports.ReceivedResume, error) {
	return s.listJobFn(ctx, jobID, by)
}

func (s *stubResumeService) ListForBooth(ctx context.Context, boothID int64, by ports.Requester) ([]ports.ReceivedResume, error) {
	return s.listBoothFn(ctx, boothID, by)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop(), false)
	return e
}

// multipartBody builds a multipart form with the given fields plus an
// optional "resume" file part.
func multipartBody(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		part, err := w.CreateFormFile("resume", fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestSubmitToBooth_Created(t *testing.T) {
	e := newTestEcho()
	stub := &stubResumeService{
		submitBoothFn: func(_ context.Context, in ports.SubmitResumeInput) (int64, error) {
			if in.UserID != "7" || in.BoothID != "3" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.File == nil || in.File.Name != "cv.pdf" {
				t.Fatalf("file not passed through: %+v", in.File)
			}
			return 11, nil
		},
	}
	h := handler.NewResumeHandler(stub)

	body, contentType := multipartBody(t, map[string]string{
		"userId":         "7",
		"companyBoothId": "3",
	}, "cv.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/submit", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitToBooth(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Resume submitted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["id"] != float64(11) {
		t.Fatalf("unexpected id: %v", resp["id"])
	}
}

func TestSubmitToJob_Created(t *testing.T) {
	e := newTestEcho()
	stub := &stubResumeService{
		submitJobFn: func(_ context.Context, in ports.SubmitResumeInput) (int64, error) {
			if in.JobID != "3" || in.CoverLetter != "Hello" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return 12, nil
		},
	}
	h := handler.NewResumeHandler(stub)

	body, contentType := multipartBody(t, map[string]string{
		"userId":           "7",
		"jobOpportunityId": "3",
		"coverLetter":      "Hello",
	}, "cv.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/submit-job", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitToJob(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestSubmit_MissingFilePart(t *testing.T) {
	e := newTestEcho()
	h := handler.NewResumeHandler(&stubResumeService{})

	body, contentType := multipartBody(t, map[string]string{
		"userId":         "7",
		"companyBoothId": "3",
	}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/submit", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitToBooth(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "resume file is required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubmit_ServiceValidationError(t *testing.T) {
	e := newTestEcho()
	stub := &stubResumeService{
		submitBoothFn: func(_ context.Context, _ ports.SubmitResumeInput) (int64, error) {
			return 0, domain.ErrInvalidInput
		},
	}
	h := handler.NewResumeHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"userId": "7"}, "cv.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/submit", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitToBooth(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListForUser_EmptyIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubResumeService{
		listUserFn: func(_ context.Context, userID int64) ([]ports.SubmittedResume, error) {
			if userID != 5 {
				t.Fatalf("unexpected user id %d", userID)
			}
			return nil, nil
		},
	}
	h := handler.NewResumeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/resumes/user/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("5")

	if err := h.ListForUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestSetStatus_OK(t *testing.T) {
	e := newTestEcho()
	stub := &stubResumeService{
		setStatusFn: func(_ context.Context, resumeID int64, status string, by ports.Requester) error {
			if resumeID != 9 || status != "accepted" || by.UserID != 50 {
				t.Fatalf("unexpected args: id=%d status=%s by=%+v", resumeID, status, by)
			}
			return nil
		},
	}
	h := handler.NewResumeHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/resumes/9/status", strings.NewReader(`{"status":"accepted"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("resumeId")
	c.SetParamValues("9")
	c.Set("role", domain.RoleEmployer)
	c.Set("userId", int64(50))
	c.Set("isAdmin", false)

	if err := h.SetStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Resume status updated successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	e := newTestEcho()
	stub := &stubResumeService{
		setStatusFn: func(_ context.Context, _ int64, _ string, _ ports.Requester) error {
			return domain.ErrInvalidStatus
		},
	}
	h := handler.NewResumeHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/resumes/9/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("resumeId")
	c.SetParamValues("9")
	c.Set("role", domain.RoleEmployer)
	c.Set("userId", int64(50))

	if err := h.SetStatus(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSetStatus_MissingClaims(t *testing.T) {
	e := newTestEcho()
	h := handler.NewResumeHandler(&stubResumeService{})

	req := httptest.NewRequest(http.MethodPut, "/api/resumes/9/status", strings.NewReader(`{"status":"accepted"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("resumeId")
	c.SetParamValues("9")

	if err := h.SetStatus(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestListForJob_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubResumeService{
		listJobFn: func(_ context.Context, _ int64, _ ports.Requester) ([]ports.ReceivedResume, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := handler.NewResumeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/resumes/job/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("jobId")
	c.SetParamValues("3")
	c.Set("role", domain.RoleEmployer)
	c.Set("userId", int64(99))

	if err := h.ListForJob(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
