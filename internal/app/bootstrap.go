package app

import (
	"fmt"
	"strings"

	"task-allocation/internal/config"
	"task-allocation/internal/delivery/http/handler"
	"task-allocation/internal/delivery/http/middleware"
	"task-allocation/internal/delivery/http/routes"
	"task-allocation/internal/delivery/http/view"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, c *Container) (*App, error) {
	engine, err := view.NewEngine()
	if err != nil {
		return nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
		Views:   engine,
	})

	registerGlobalMiddleware(f, cfg, c)
	registerRoutes(f, cfg, c)

	return &App{Fiber: f}, nil
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app, err := New(cfg, c)
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, cfg config.Config, c *Container) {
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewSessionMiddleware(c.Tokens, c.Users, cfg.Session.CookieName, c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, cfg config.Config, c *Container) {
	registry := &routes.Registry{
		Health:     handler.NewHealthHandler(),
		Auth:       handler.NewAuthHandler(c.Auth, c.Tokens, cfg.Session.CookieName, cfg.Session.TTL, c.Logger),
		Role:       handler.NewRoleHandler(c.Auth, c.Logger),
		Supervisor: handler.NewSupervisorHandler(c.Supervisor, c.Logger),
		Employee:   handler.NewEmployeeHandler(c.Employee, c.Logger),
	}
	registry.Register(f)
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
