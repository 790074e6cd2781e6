package app

import (
	"fmt"
	"log"
	"strings"

	"job-assist/internal/config"
	"job-assist/internal/delivery/http/middleware"
	"job-assist/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(container *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: container.Config.App.AppName,
	})

	registerGlobalMiddleware(f, container)
	routes.Register(f, container.Config, container.DB, container.Completion, container.Hub, container.Logger)

	return &App{Fiber: f, Container: container}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go container.Hub.Run()

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, container *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(container.Logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
