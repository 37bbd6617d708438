package cmd

import (
	"context"
	"errors"
	"fmt"

	"parceltracker/internal/adapters/in/http"
	"parceltracker/internal/adapters/out/cache"
	"parceltracker/internal/adapters/out/memory"
	"parceltracker/internal/adapters/out/postgres"
	"parceltracker/internal/adapters/out/postgres/guestrepo"
	"parceltracker/internal/adapters/out/postgres/parcelrepo"
	"parceltracker/internal/core/application/caching"
	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/jobs"
	"parceltracker/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	logger *zap.Logger
	clock  clock.Clock

	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	guests     ports.GuestRepository
	parcels    ports.ParcelRepository

	redisClient *redis.Client
	memoryCache *cache.MemoryCache
	coordinator *caching.Coordinator
}

// NewCompositionRoot connects the configured storage and cache drivers.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *zap.Logger) (*CompositionRoot, error) {
	return NewCompositionRootWithClock(ctx, cfg, logger, clock.NewSystem())
}

func NewCompositionRootWithClock(ctx context.Context, cfg Config, logger *zap.Logger, clk clock.Clock) (*CompositionRoot, error) {
	c := &CompositionRoot{cfg: cfg, logger: logger, clock: clk}

	switch cfg.StorageDriver {
	case StoragePostgres:
		db, err := postgres.Open(cfg.Postgres())
		if err != nil {
			return nil, err
		}
		c.gormDB = db
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		c.guests = guestrepo.NewGormGuestRepository(db)
		c.parcels = parcelrepo.NewGormParcelRepository(db)
	case StorageMemory:
		store := memory.NewStore()
		c.uowFactory = store.NewUnitOfWorkFactory()
		c.guests = store.GuestRepository()
		c.parcels = store.ParcelRepository()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	var backend ports.Cache
	switch cfg.CacheDriver {
	case CacheMemory:
		c.memoryCache = cache.NewMemoryCache(cfg.CacheTTL)
		backend = c.memoryCache
	case CacheRedis:
		c.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisCache := cache.NewRedisCache(c.redisClient, "parceltracker:", cfg.CacheTTL)
		if err := redisCache.Ping(ctx); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		backend = redisCache
	default:
		_ = c.Close()
		return nil, fmt.Errorf("unknown cache driver %q", cfg.CacheDriver)
	}
	c.coordinator = caching.NewCoordinator(backend, logger)

	return c, nil
}

// Migrate prepares the schema. The memory driver has nothing to migrate.
func (c *CompositionRoot) Migrate(ctx context.Context) error {
	if c.gormDB == nil {
		return nil
	}
	return postgres.Migrate(ctx, c.gormDB)
}

func (c *CompositionRoot) Close() error {
	var errList []error
	if c.redisClient != nil {
		errList = append(errList, c.redisClient.Close())
	}
	if c.gormDB != nil {
		sqlDB, err := c.gormDB.DB()
		if err != nil {
			errList = append(errList, err)
		} else {
			errList = append(errList, sqlDB.Close())
		}
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) guestUoWFactory() commands.GuestUoWFactory {
	return FuncGuestUoWFactory(func() commands.GuestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateGuestCommandHandler() commands.CreateGuestCommandHandler {
	return commands.NewCreateGuestCommandHandler(c.guestUoWFactory(), c.clock, c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateUpdateGuestCommandHandler() commands.UpdateGuestCommandHandler {
	return commands.NewUpdateGuestCommandHandler(c.guestUoWFactory(), c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateDeleteGuestCommandHandler() commands.DeleteGuestCommandHandler {
	return commands.NewDeleteGuestCommandHandler(c.fullUoWFactory(), c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateCheckOutGuestCommandHandler() commands.CheckOutGuestCommandHandler {
	return commands.NewCheckOutGuestCommandHandler(c.fullUoWFactory(), c.clock, c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.fullUoWFactory(), c.clock, c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	return commands.NewUpdateParcelCommandHandler(c.parcelUoWFactory(), c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory(), c.coordinator, c.logger)
}

func (c *CompositionRoot) CreatePickUpParcelCommandHandler() commands.PickUpParcelCommandHandler {
	return commands.NewPickUpParcelCommandHandler(c.parcelUoWFactory(), c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateGetGuestQueryHandler() queries.GetGuestQueryHandler {
	return queries.NewGetGuestQueryHandler(c.guests, c.coordinator)
}

func (c *CompositionRoot) CreateListGuestsQueryHandler() queries.ListGuestsQueryHandler {
	return queries.NewListGuestsQueryHandler(c.guests, c.coordinator)
}

func (c *CompositionRoot) CreateSearchGuestsQueryHandler() queries.SearchGuestsQueryHandler {
	return queries.NewSearchGuestsQueryHandler(c.guests)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.parcels, c.coordinator)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.parcels, c.coordinator)
}

func (c *CompositionRoot) CreateSearchParcelsQueryHandler() queries.SearchParcelsQueryHandler {
	return queries.NewSearchParcelsQueryHandler(c.parcels)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateGuest:   c.CreateCreateGuestCommandHandler(),
		UpdateGuest:   c.CreateUpdateGuestCommandHandler(),
		DeleteGuest:   c.CreateDeleteGuestCommandHandler(),
		CheckOutGuest: c.CreateCheckOutGuestCommandHandler(),
		GetGuest:      c.CreateGetGuestQueryHandler(),
		ListGuests:    c.CreateListGuestsQueryHandler(),
		SearchGuests:  c.CreateSearchGuestsQueryHandler(),

		CreateParcel:  c.CreateCreateParcelCommandHandler(),
		UpdateParcel:  c.CreateUpdateParcelCommandHandler(),
		DeleteParcel:  c.CreateDeleteParcelCommandHandler(),
		PickUpParcel:  c.CreatePickUpParcelCommandHandler(),
		GetParcel:     c.CreateGetParcelQueryHandler(),
		ListParcels:   c.CreateListParcelsQueryHandler(),
		SearchParcels: c.CreateSearchParcelsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	return http.NewRouter(ctx, c.CreateServer(), http.RouterConfig{
		DebugErrors: c.cfg.DebugErrors,
		Now:         c.clock.Now,
	}, c.logger)
}

// CreateJobManager schedules the unclaimed parcel report, plus the expiry
// sweep when the cache lives in process memory.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var list []jobs.Job
	if c.memoryCache != nil && c.cfg.CacheTTL > 0 {
		list = append(list, jobs.NewCacheSweepJob(c.memoryCache, c.cfg.CacheSweepSchedule, c.logger))
	}
	list = append(list, jobs.NewUnclaimedParcelReportJob(
		c.CreateSearchParcelsQueryHandler(),
		c.clock,
		c.cfg.ParcelReminderAge,
		c.cfg.ParcelReminderSchedule,
		c.logger,
	))
	return jobs.NewJobManager(list...)
}

type FuncGuestUoWFactory func() commands.GuestUoW

func (f FuncGuestUoWFactory) Create() commands.GuestUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
