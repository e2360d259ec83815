package cmd

import (
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/rediscache"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      *rediscache.Cache
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	var cache *rediscache.Cache
	if redisClient != nil {
		cache = rediscache.NewCache(redisClient)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
	}
}

func (c *CompositionRoot) CreateSubmitSellerRequestCommandHandler() commands.SubmitSellerRequestCommandHandler {
	var f commands.SellerRequestUoWFactory = FuncSellerRequestUoWFactory(func() commands.SellerRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitSellerRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveSellerRequestCommandHandler() commands.ApproveSellerRequestCommandHandler {
	var f commands.OnboardingUoWFactory = FuncOnboardingUoWFactory(func() commands.OnboardingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveSellerRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectSellerRequestCommandHandler() commands.RejectSellerRequestCommandHandler {
	var f commands.SellerRequestUoWFactory = FuncSellerRequestUoWFactory(func() commands.SellerRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectSellerRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifySellerCommandHandler() commands.VerifySellerCommandHandler {
	var f commands.SellerUoWFactory = FuncSellerUoWFactory(func() commands.SellerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifySellerCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderPaidCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllSellersQueryHandler() queries.GetAllSellersQueryHandler {
	var cache queries.Cache
	if c.cache != nil {
		cache = c.cache
	}
	return queries.NewGetAllSellersQueryHandler(c.gormDB, cache)
}

func (c *CompositionRoot) CreateGetSellerByUserQueryHandler() queries.GetSellerByUserQueryHandler {
	return queries.NewGetSellerByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingSellerRequestsQueryHandler() queries.GetPendingSellerRequestsQueryHandler {
	return queries.NewGetPendingSellerRequestsQueryHandler(c.gormDB)
}

type FuncSellerRequestUoWFactory func() commands.SellerRequestUoW

func (f FuncSellerRequestUoWFactory) Create() commands.SellerRequestUoW {
	return f()
}

type FuncOnboardingUoWFactory func() commands.OnboardingUoW

func (f FuncOnboardingUoWFactory) Create() commands.OnboardingUoW {
	return f()
}

type FuncSellerUoWFactory func() commands.SellerUoW

func (f FuncSellerUoWFactory) Create() commands.SellerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
