package cmd

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	httpserver "tradematch/internal/adapters/in/http"
	"tradematch/internal/adapters/out/notify/amqpnotify"
	"tradematch/internal/adapters/out/notify/push"
	"tradematch/internal/adapters/out/postgres"
	"tradematch/internal/core/application/usecases/commands"
	"tradematch/internal/core/application/usecases/queries"
	"tradematch/internal/core/domain/services"
	"tradematch/internal/core/ports"
	"tradematch/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	dispatcher *commands.Dispatcher
	logger     *slog.Logger

	closers []func()
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if config.CandidateLimit <= 0 {
		config.CandidateLimit = defaultCandidateLimit
	}
	if config.ListLimit <= 0 {
		config.ListLimit = defaultListLimit
	}

	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	notifier, err := root.createNotifier()
	if err != nil {
		return nil, err
	}
	root.notifier = notifier

	dispatcher, err := commands.NewDispatcher(notifier, logger)
	if err != nil {
		return nil, err
	}
	root.dispatcher = dispatcher

	return root, nil
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() {
	for _, closer := range c.closers {
		closer()
	}
}

func (c *CompositionRoot) createNotifier() (ports.Notifier, error) {
	switch c.config.NotifyMode {
	case "amqp":
		publisher, err := amqpnotify.NewPublisher(c.config.AmqpURL, c.config.AmqpExchange)
		if err != nil {
			return nil, fmt.Errorf("create amqp notifier: %w", err)
		}
		c.closers = append(c.closers, publisher.Close)
		return publisher, nil
	case "push", "":
		client, err := push.NewClient(c.config.PushGatewayURL, c.config.PushToken)
		if err != nil {
			return nil, fmt.Errorf("create push notifier: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown notify mode %q", c.config.NotifyMode)
	}
}

func (c *CompositionRoot) CreateRegisterWorkerCommandHandler() commands.RegisterWorkerCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateSetWorkerAvailabilityCommandHandler() commands.SetWorkerAvailabilityCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetWorkerAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateSetWorkerActiveCommandHandler() commands.SetWorkerActiveCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetWorkerActiveCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() (commands.CreateOrderCommandHandler, error) {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewMatcher(), c.dispatcher, c.config.CandidateLimit)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() (commands.AcceptOrderCommandHandler, error) {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateGetWorkersQueryHandler() queries.GetWorkersQueryHandler {
	return queries.NewGetWorkersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerQueryHandler() queries.GetWorkerQueryHandler {
	return queries.NewGetWorkerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindCandidatesQueryHandler() queries.FindCandidatesQueryHandler {
	return queries.NewFindCandidatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnclaimedBacklogQueryHandler() queries.GetUnclaimedBacklogQueryHandler {
	return queries.NewGetUnclaimedBacklogQueryHandler(c.gormDB)
}

// CreateJobManager wires all scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetUnclaimedBacklogQueryHandler(), c.logger)
}

// CreateHTTPServer wires the JSON API over all use case handlers.
func (c *CompositionRoot) CreateHTTPServer() (*httpserver.Server, error) {
	createOrderHandler, err := c.CreateCreateOrderCommandHandler()
	if err != nil {
		return nil, err
	}

	acceptOrderHandler, err := c.CreateAcceptOrderCommandHandler()
	if err != nil {
		return nil, err
	}

	return httpserver.NewServer(
		c.CreateRegisterWorkerCommandHandler(),
		c.CreateSetWorkerAvailabilityCommandHandler(),
		c.CreateSetWorkerActiveCommandHandler(),
		createOrderHandler,
		acceptOrderHandler,
		c.CreateGetWorkersQueryHandler(),
		c.CreateGetWorkerQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateFindCandidatesQueryHandler(),
		c.config.ListLimit,
		c.config.CandidateLimit,
	), nil
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
