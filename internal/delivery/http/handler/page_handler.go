package handler

import (
	"job-assist/internal/gate"

	"github.com/gofiber/fiber/v3"
)

// PageHandler serves minimal stubs for the routed pages. The real rendering
// layer lives elsewhere; what matters here is that a request only reaches one
// of these after the route guard has allowed it.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.page("Home"))
	r.Get(gate.LoginPath, h.page("Log in"))
	r.Get(gate.SignupPath, h.page("Sign up"))
	r.Get(gate.DashboardPath, h.page("Dashboard"))
	r.Get(gate.ProfileSetupPath, h.page("Profile setup"))
}

func (h *PageHandler) page(title string) fiber.Handler {
	body := "<!doctype html><html><head><title>" + title + "</title></head><body><h1>" + title + "</h1></body></html>"
	return func(c fiber.Ctx) error {
		c.Type("html")
		return c.SendString(body)
	}
}
