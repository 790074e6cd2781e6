package handler

import (
	"bytes"
	"encoding/json"
	"errors"

	"job-assist/internal/delivery/http/dto"
	"job-assist/internal/delivery/http/middleware"
	"job-assist/internal/pkg/response"
	"job-assist/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

type upsertProfileRequest struct {
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	ExperienceYears   *int     `json:"experience_years"`
	Location          *string  `json:"location"`
	Bio               *string  `json:"bio"`
	Skills            []string `json:"skills"`
	SalaryMin         *int     `json:"salary_min"`
	SalaryMax         *int     `json:"salary_max"`
	PreferredWorkType *string  `json:"preferred_work_type"`
	AvailabilityDate  *string  `json:"availability_date"`
	ProfileCompleted  *bool    `json:"profile_completed"`
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("", h.Get)
	r.Post("", h.Upsert)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	prof, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	data := map[string]any{"profile": nil}
	if prof != nil {
		data["profile"] = dto.NewProfileResponse(*prof)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ProfileHandler) Upsert(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	email, _ := c.Locals(middleware.CtxEmailKey).(string)

	// Unknown fields are rejected rather than silently dropped; the record
	// shape is closed.
	var req upsertProfileRequest
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	prof, err := h.uc.Upsert(c.Context(), userID, email, usecase.UpsertProfileInput{
		Name:              req.Name,
		Role:              req.Role,
		ExperienceYears:   req.ExperienceYears,
		Location:          req.Location,
		Bio:               req.Bio,
		Skills:            req.Skills,
		SalaryMin:         req.SalaryMin,
		SalaryMax:         req.SalaryMax,
		PreferredWorkType: req.PreferredWorkType,
		AvailabilityDate:  req.AvailabilityDate,
		ProfileCompleted:  req.ProfileCompleted,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	data := map[string]any{
		"message": "Profile saved successfully",
		"profile": dto.NewProfileResponse(prof),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return middleware.NewAppError(
			fiber.StatusBadRequest,
			verr.Error(),
			map[string]any{"fields": verr.Fields},
			err,
		)
	}
	if errors.Is(err, usecase.ErrProfileConflict) {
		return middleware.NewAppError(fiber.StatusConflict, "Profile was modified concurrently", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
