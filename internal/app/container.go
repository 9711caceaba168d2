package app

import (
	"context"
	"log"
	"os"
	"time"

	"task-allocation/internal/config"
	"task-allocation/internal/database"
	dbpostgres "task-allocation/internal/database/postgres"
	"task-allocation/internal/domain/user"
	"task-allocation/internal/infrastructure/cache"
	"task-allocation/internal/infrastructure/persistence"
	userpostgres "task-allocation/internal/infrastructure/persistence/postgres"
	"task-allocation/internal/pkg/token"
	"task-allocation/internal/taskapi"
	"task-allocation/internal/usecase"
	"task-allocation/internal/usecase/auth"
)

// Container wires the application graph: storage, session state, the
// external task API client and the usecases the handlers sit on.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	redis *cache.Redis
	Cache cache.Store

	Users   user.Repository
	Tokens  token.Service
	TaskAPI taskapi.Client

	Auth       auth.AuthUsecase
	Supervisor usecase.SupervisorDashboardUsecase
	Employee   usecase.EmployeeDashboardUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Session state prefers Redis so view state survives restarts; a
	// process-local store is good enough when Redis is down.
	var store cache.Store
	rds := cache.NewRedis(cfg.Redis, logger)
	if rds != nil {
		store = rds
	} else {
		store = cache.NewMemory()
	}

	users := persistence.NewCachedUsers(userpostgres.NewUserRepository(db), store)
	tokens := token.NewHMACService(cfg.Session.Secret, cfg.Session.TTL)

	api, err := taskapi.NewClient(cfg.TaskAPI.BaseURL, cfg.TaskAPI.Timeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	viewState := usecase.NewSessionViewState(store, cfg.Session.TTL)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		redis:      rds,
		Cache:      store,
		Users:      users,
		Tokens:     tokens,
		TaskAPI:    api,
		Auth:       auth.NewService(users),
		Supervisor: usecase.NewSupervisorDashboardUsecase(api, viewState, logger),
		Employee:   usecase.NewEmployeeDashboardUsecase(api, viewState, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.redis != nil {
		_ = c.redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
