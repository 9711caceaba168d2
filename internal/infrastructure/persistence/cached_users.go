package persistence

import (
	"context"
	"time"

	"task-allocation/internal/domain/user"
	"task-allocation/internal/infrastructure/cache"

	"github.com/google/uuid"
)

const userCacheTTL = 60 * time.Second

// CachedUsers decorates a user.Repository with a short-lived cache of
// GetByID lookups, which run on every authenticated request. Writes
// invalidate the cached record so a role change is visible immediately.
type CachedUsers struct {
	inner user.Repository
	store cache.Store
}

func NewCachedUsers(inner user.Repository, store cache.Store) *CachedUsers {
	return &CachedUsers{inner: inner, store: store}
}

func userKey(id uuid.UUID) string {
	return "user:" + id.String()
}

func (c *CachedUsers) Create(ctx context.Context, u user.User) error {
	return c.inner.Create(ctx, u)
}

func (c *CachedUsers) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	var cached user.User
	if hit, err := c.store.GetJSON(ctx, userKey(id), &cached); err == nil && hit {
		return cached, nil
	}

	u, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	// Password hashes stay out of the cache; GetByID callers never need them.
	u.PasswordHash = ""
	_ = c.store.SetJSON(ctx, userKey(id), u, userCacheTTL)
	return u, nil
}

func (c *CachedUsers) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return c.inner.GetByEmail(ctx, email)
}

func (c *CachedUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return c.inner.ExistsByEmail(ctx, email)
}

func (c *CachedUsers) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	if err := c.inner.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	_ = c.store.Delete(ctx, userKey(id))
	return nil
}
