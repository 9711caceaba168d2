package middleware

import (
	"errors"
	"log"

	"task-allocation/internal/domain/user"
	"task-allocation/internal/pkg/token"

	"github.com/gofiber/fiber/v3"
)

const ctxUserKey = "session_user"

// SessionMiddleware resolves the session cookie to a user record and makes
// it available to handlers. Requests without a valid session pass through
// signed out; nothing is rejected here.
type SessionMiddleware struct {
	tokens     token.Service
	users      user.Repository
	cookieName string
	logger     *log.Logger
}

func NewSessionMiddleware(tokens token.Service, users user.Repository, cookieName string, logger *log.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:     tokens,
		users:      users,
		cookieName: cookieName,
		logger:     logger,
	}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := c.Cookies(m.cookieName)
		if raw == "" {
			return c.Next()
		}

		claims, err := m.tokens.ValidateToken(raw)
		if err != nil {
			// Expired or tampered cookie; treat as signed out.
			c.ClearCookie(m.cookieName)
			return c.Next()
		}

		u, err := m.users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			if m.logger != nil && !errors.Is(err, user.ErrNotFound) {
				m.logger.Printf("session user load failed: %v", err)
			}
			return c.Next()
		}

		c.Locals(ctxUserKey, u)
		return c.Next()
	}
}

// SessionUser returns the signed-in user for this request, if any.
func SessionUser(c fiber.Ctx) (user.User, bool) {
	u, ok := c.Locals(ctxUserKey).(user.User)
	return u, ok
}
