package cmd

import (
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderRoundUoWFactory = FuncOrderRoundUoWFactory(func() commands.OrderRoundUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f, c.configs.MaxStopsPerRound)
}

func (c *CompositionRoot) CreateAddOrderToRoundCommandHandler() commands.AddOrderToRoundCommandHandler {
	var f commands.OrderRoundUoWFactory = FuncOrderRoundUoWFactory(func() commands.OrderRoundUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderToRoundCommandHandler(f, c.configs.MaxStopsPerRound)
}

func (c *CompositionRoot) CreateClaimSuggestedRoundCommandHandler() commands.ClaimSuggestedRoundCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimSuggestedRoundCommandHandler(f, c.configs.MaxStopsPerRound, time.Now)
}

func (c *CompositionRoot) CreateStartRoundCommandHandler() commands.StartRoundCommandHandler {
	var f commands.RoundUoWFactory = FuncRoundUoWFactory(func() commands.RoundUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRoundCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateMarkStopDeliveredCommandHandler() commands.MarkStopDeliveredCommandHandler {
	var f commands.RoundUoWFactory = FuncRoundUoWFactory(func() commands.RoundUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkStopDeliveredCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateReleaseStopCommandHandler() commands.ReleaseStopCommandHandler {
	var f commands.OrderRoundUoWFactory = FuncOrderRoundUoWFactory(func() commands.OrderRoundUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseStopCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseRoundCommandHandler() commands.ReleaseRoundCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseRoundCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateExpireSuggestionsCommandHandler() commands.ExpireSuggestionsCommandHandler {
	var f commands.SuggestionUoWFactory = FuncSuggestionUoWFactory(func() commands.SuggestionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireSuggestionsCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateGetEligibleWorkQueryHandler() queries.GetEligibleWorkQueryHandler {
	return queries.NewGetEligibleWorkQueryHandler(c.gormDB, c.configs.EligibilityWindow, time.Now)
}

func (c *CompositionRoot) CreateGetDriverRoundQueryHandler() queries.GetDriverRoundQueryHandler {
	return queries.NewGetDriverRoundQueryHandler(c.gormDB)
}

type FuncOrderRoundUoWFactory func() commands.OrderRoundUoW

func (f FuncOrderRoundUoWFactory) Create() commands.OrderRoundUoW {
	return f()
}

type FuncRoundUoWFactory func() commands.RoundUoW

func (f FuncRoundUoWFactory) Create() commands.RoundUoW {
	return f()
}

type FuncSuggestionUoWFactory func() commands.SuggestionUoW

func (f FuncSuggestionUoWFactory) Create() commands.SuggestionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
