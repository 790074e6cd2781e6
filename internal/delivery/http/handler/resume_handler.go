package handler

import (
	"encoding/json"
	"errors"

	"job-assist/internal/delivery/http/dto"
	"job-assist/internal/delivery/http/middleware"
	"job-assist/internal/pkg/response"
	"job-assist/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ResumeHandler struct {
	uc *usecase.ResumeUsecase
}

type attachResumeRequest struct {
	FileURL    string          `json:"file_url"`
	ParsedJSON json.RawMessage `json:"parsed_json"`
}

func NewResumeHandler(uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("", h.List)
	r.Post("", h.Attach)
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	recs, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.ResumeResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.NewResumeResponse(r))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ResumeHandler) Attach(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req attachResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	rec, err := h.uc.Attach(c.Context(), userID, usecase.AttachResumeInput{
		FileURL:    req.FileURL,
		ParsedJSON: req.ParsedJSON,
	})
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			return middleware.NewAppError(fiber.StatusBadRequest, verr.Error(), map[string]any{"fields": verr.Fields}, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeResponse(rec))
}
