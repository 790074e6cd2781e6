package handler

import (
	"errors"
	"strconv"

	"job-assist/internal/delivery/http/dto"
	"job-assist/internal/delivery/http/middleware"
	"job-assist/internal/pkg/response"
	"job-assist/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc *usecase.JobFeedUsecase
}

func NewJobHandler(uc *usecase.JobFeedUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("", h.ListRecent)
}

func (h *JobHandler) ListRecent(c fiber.Ctx) error {
	limit := queryInt(c, "limit", 10)
	offset := queryInt(c, "offset", 0)

	jobs, err := h.uc.ListRecent(c.Context(), usecase.JobFeedParams{Limit: limit, Offset: offset})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid pagination", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.JobFeedResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dto.NewJobFeedResponse(j))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func queryInt(c fiber.Ctx, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
