package handler

import (
	"errors"
	"log"
	"time"

	"task-allocation/internal/domain/user"
	"task-allocation/internal/pkg/token"
	"task-allocation/internal/usecase"
	"task-allocation/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler owns the sign-up, sign-in and sign-out flows. After either
// sign-up or sign-in the user always lands on role selection; the role
// query parameter is only carried through for the role router.
type AuthHandler struct {
	uc         auth.AuthUsecase
	tokens     token.Service
	cookieName string
	sessionTTL time.Duration
	logger     *log.Logger
}

func NewAuthHandler(uc auth.AuthUsecase, tokens token.Service, cookieName string, sessionTTL time.Duration, logger *log.Logger) *AuthHandler {
	return &AuthHandler{
		uc:         uc,
		tokens:     tokens,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/sign-in", h.SignInPage)
	app.Post("/sign-in", h.SignIn)
	app.Get("/sign-up", h.SignUpPage)
	app.Post("/sign-up", h.SignUp)
	app.Post("/sign-out", h.SignOut)
}

type signInPage struct {
	Title string
	Error string
	Role  string
	Email string
}

type signUpPage struct {
	Title     string
	Error     string
	Email     string
	FirstName string
}

func (h *AuthHandler) SignInPage(c fiber.Ctx) error {
	return c.Render("sign_in", signInPage{Title: "Sign In", Role: c.Query("role")})
}

func (h *AuthHandler) SignIn(c fiber.Ctx) error {
	email := c.FormValue("email")

	u, err := h.uc.Login(c.Context(), auth.LoginInput{
		Email:    email,
		Password: c.FormValue("password"),
	})
	if err != nil {
		msg := "Something went wrong. Please try again."
		if errors.Is(err, auth.ErrInvalidCredentials) {
			msg = "Invalid email or password."
		} else if h.logger != nil {
			h.logger.Printf("sign-in failed: %v", err)
		}
		return c.Render("sign_in", signInPage{Title: "Sign In", Error: msg, Role: c.Query("role"), Email: email})
	}

	if err := h.issueSession(c, u); err != nil {
		if h.logger != nil {
			h.logger.Printf("session issue failed: %v", err)
		}
		return c.Render("sign_in", signInPage{Title: "Sign In", Error: "Something went wrong. Please try again.", Role: c.Query("role"), Email: email})
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To(afterAuthPath(c.Query("role")))
}

func (h *AuthHandler) SignUpPage(c fiber.Ctx) error {
	return c.Render("sign_up", signUpPage{Title: "Sign Up"})
}

func (h *AuthHandler) SignUp(c fiber.Ctx) error {
	email := c.FormValue("email")
	firstName := c.FormValue("first_name")

	u, err := h.uc.Register(c.Context(), auth.RegisterInput{
		Email:     email,
		FirstName: firstName,
		Password:  c.FormValue("password"),
	})
	if err != nil {
		msg := "Something went wrong. Please try again."
		switch {
		case errors.Is(err, auth.ErrEmailAlreadyRegistered):
			msg = "That email is already registered."
		case errors.Is(err, auth.ErrInvalidInput):
			msg = "Enter a valid email and a password of at least 8 characters."
		default:
			if h.logger != nil {
				h.logger.Printf("sign-up failed: %v", err)
			}
		}
		return c.Render("sign_up", signUpPage{Title: "Sign Up", Error: msg, Email: email, FirstName: firstName})
	}

	if err := h.issueSession(c, u); err != nil {
		if h.logger != nil {
			h.logger.Printf("session issue failed: %v", err)
		}
		return c.Redirect().Status(fiber.StatusSeeOther).To("/sign-in")
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To(usecase.PathRoleSelection)
}

func (h *AuthHandler) SignOut(c fiber.Ctx) error {
	c.ClearCookie(h.cookieName)
	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

func (h *AuthHandler) issueSession(c fiber.Ctx, u user.User) error {
	tok, err := h.tokens.GenerateSessionToken(u.ID, u.Email)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// afterAuthPath keeps the role hint alive across the fixed post-auth
// redirect so the role router can still see it.
func afterAuthPath(roleParam string) string {
	if _, ok := user.ParseRole(roleParam); ok {
		return usecase.PathRoleSelection + "?role=" + roleParam
	}
	return usecase.PathRoleSelection
}
