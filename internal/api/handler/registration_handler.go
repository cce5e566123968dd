package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fairlink/careerfair-api/internal/api/metrics"
	"github.com/fairlink/careerfair-api/internal/core/ports"
)

// RegistrationHandler handles HTTP requests for career-fair registrations.
type RegistrationHandler struct {
	service ports.RegistrationService
}

func NewRegistrationHandler(service ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

type registerRequest struct {
	UserID       string `json:"userId"`
	CareerFairID string `json:"careerFairId"`
}

// Register handles POST /api/registrations.
//
// @Summary      Register a user for a career fair
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration"
// @Success      201   {object}  submittedResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/registrations [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" || req.CareerFairID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID and Career Fair ID are required")
	}
	userID, err := strconv.ParseInt(req.UserID, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}
	fairID, err := strconv.ParseInt(req.CareerFairID, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid career fair ID")
	}

	id, err := h.service.Register(c.Request().Context(), userID, fairID)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, submittedResponse{
		Message: "Registered successfully",
		ID:      id,
	})
}

// ListForUser handles GET /api/registrations/user/:userId.
//
// @Summary      List a user's career fair registrations
// @Tags         registrations
// @Produce      json
// @Param        userId  path     int  true  "User id"
// @Success      200     {array}  ports.UserRegistration
// @Router       /api/registrations/user/{userId} [get]
func (h *RegistrationHandler) ListForUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	regs, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if regs == nil {
		regs = []ports.UserRegistration{}
	}
	return c.JSON(http.StatusOK, regs)
}

// ListForFair handles GET /api/registrations/fair/:fairId.
//
// @Summary      List registrants of a career fair
// @Tags         registrations
// @Produce      json
// @Param        fairId  path     int  true  "Career fair id"
// @Success      200     {array}  ports.FairRegistration
// @Router       /api/registrations/fair/{fairId} [get]
func (h *RegistrationHandler) ListForFair(c echo.Context) error {
	fairID, err := pathID(c, "fairId")
	if err != nil {
		return err
	}
	regs, err := h.service.ListForFair(c.Request().Context(), fairID)
	if err != nil {
		return err
	}
	if regs == nil {
		regs = []ports.FairRegistration{}
	}
	return c.JSON(http.StatusOK, regs)
}
