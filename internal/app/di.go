package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	goredis "github.com/redis/go-redis/v9"

	"github.com/AdrianoSaraivaa/sgp/internal/config"
	"github.com/AdrianoSaraivaa/sgp/internal/converter"
	"github.com/AdrianoSaraivaa/sgp/internal/layout"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	ordrepo "github.com/AdrianoSaraivaa/sgp/internal/repository/order"
	partrepo "github.com/AdrianoSaraivaa/sgp/internal/repository/part"
	prodrepo "github.com/AdrianoSaraivaa/sgp/internal/repository/product"
	roprepo "github.com/AdrianoSaraivaa/sgp/internal/repository/rop"
	routerepo "github.com/AdrianoSaraivaa/sgp/internal/repository/route"
	serialrepo "github.com/AdrianoSaraivaa/sgp/internal/repository/serial"
	visitrepo "github.com/AdrianoSaraivaa/sgp/internal/repository/visit"
	"github.com/AdrianoSaraivaa/sgp/internal/service/board"
	resconsumer "github.com/AdrianoSaraivaa/sgp/internal/service/consumer/result"
	"github.com/AdrianoSaraivaa/sgp/internal/service/ledger"
	reoproducer "github.com/AdrianoSaraivaa/sgp/internal/service/producer/reorder"
	"github.com/AdrianoSaraivaa/sgp/internal/service/production"
	"github.com/AdrianoSaraivaa/sgp/internal/service/rop"
	"github.com/AdrianoSaraivaa/sgp/internal/service/route"
	"github.com/AdrianoSaraivaa/sgp/internal/service/scan"
	"github.com/AdrianoSaraivaa/sgp/internal/service/serial"
	thttp "github.com/AdrianoSaraivaa/sgp/internal/transport/http/line/v1"
	"github.com/AdrianoSaraivaa/sgp/platform/closer"
	"github.com/AdrianoSaraivaa/sgp/platform/db/migrator"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka/consumer"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka/middleware"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka/producer"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type Converter interface {
	TestResultToModel(data []byte) (model.ExternalResult, error)
	ReorderNoticeToRecord(n model.ReorderNotice) ([]byte, error)
}

type ResultConsumer interface {
	RunTestResultConsume(ctx context.Context) error
}

type OrderRepository interface {
	scan.OrderRepository
	production.OrderRepository
	board.OrderRepository
}

type VisitRepository interface {
	scan.VisitRepository
	board.VisitRepository
}

type PartRepository interface {
	ledger.PartRepository
	rop.PartRepository
}

type Ledger interface {
	scan.Ledger
	production.Ledger
	rop.CapacityReader
}

type ScanService interface {
	thttp.ScanService
	resconsumer.ResultApplier
}

type RopService interface {
	scan.RopTracker
	thttp.NeedsService
}

type LineHandler interface {
	Routes(r chi.Router)
}

type RouteService interface {
	scan.RouteResolver
	thttp.RouteService
}

type SerialService interface {
	production.SerialGenerator
	thttp.SerialService
}

type di struct {
	dbPool    *pgxpool.Pool
	txManager *pg.TxManager
	migrator  *migrator.Migrator

	redisClient *goredis.Client
	routeCache  route.RouteCache

	layout *layout.Layout

	orderRepo   OrderRepository
	visitRepo   VisitRepository
	partRepo    PartRepository
	productRepo ledger.ProductRepository
	ropRepo     rop.RopRepository
	routeRepo   route.RouteRepository
	serialStore serial.CounterStore

	consumerGroup       sarama.ConsumerGroup
	testResultsConsumer kafka.Consumer
	resultConsumer      ResultConsumer

	syncProducer    sarama.SyncProducer
	reorderProducer kafka.Producer
	reorderSender   rop.ReorderSender

	conv Converter

	routeService      RouteService
	ledgerService     Ledger
	ropService        RopService
	serialService     SerialService
	scanService       ScanService
	productionService thttp.ProductionService
	boardService      thttp.BoardService

	handler LineHandler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) TxManager(ctx context.Context) *pg.TxManager {
	if d.txManager == nil {
		d.txManager = pg.NewTxManager(d.DBPool(ctx))
	}

	return d.txManager
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) RedisClient(ctx context.Context) *goredis.Client {
	if d.redisClient == nil {
		cfg := config.C().Redis

		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		closer.AddNamed("Redis client", func(ctx context.Context) error {
			return client.Close()
		})

		if err := client.Ping(ctx).Err(); err != nil {
			panic(fmt.Sprintf("failed to ping redis %s: %v\n", cfg.Addr(), err))
		}

		d.redisClient = client
	}

	return d.redisClient
}

func (d *di) RouteCache(ctx context.Context) route.RouteCache {
	if d.routeCache == nil {
		cfg := config.C().Redis
		if cfg.Enabled() {
			d.routeCache = routerepo.NewRedisCache(d.RedisClient(ctx), cfg.RouteTTL())
		} else {
			logger.Info(ctx, "REDIS_ADDR is empty, route cache disabled")
			d.routeCache = routerepo.NewNoopCache()
		}
	}

	return d.routeCache
}

func (d *di) Layout(ctx context.Context) *layout.Layout {
	if d.layout == nil {
		path := config.C().Line.LayoutPath()
		if path == "" {
			d.layout = layout.Default()
			return d.layout
		}

		l, err := layout.Load(path)
		if err != nil {
			panic(fmt.Sprintf("failed to load line layout %s: %v\n", path, err))
		}
		logger.Info(ctx, "line layout loaded",
			logger.String("path", path),
			logger.Strings("stations", l.IDs()),
		)

		d.layout = l
	}

	return d.layout
}

func (d *di) OrderRepository(_ context.Context) OrderRepository {
	if d.orderRepo == nil {
		d.orderRepo = ordrepo.NewOrderRepository()
	}

	return d.orderRepo
}

func (d *di) VisitRepository(_ context.Context) VisitRepository {
	if d.visitRepo == nil {
		d.visitRepo = visitrepo.NewVisitRepository()
	}

	return d.visitRepo
}

func (d *di) PartRepository(_ context.Context) PartRepository {
	if d.partRepo == nil {
		d.partRepo = partrepo.NewPartRepository()
	}

	return d.partRepo
}

func (d *di) ProductRepository(_ context.Context) ledger.ProductRepository {
	if d.productRepo == nil {
		d.productRepo = prodrepo.NewProductRepository()
	}

	return d.productRepo
}

func (d *di) RopRepository(_ context.Context) rop.RopRepository {
	if d.ropRepo == nil {
		d.ropRepo = roprepo.NewRopRepository()
	}

	return d.ropRepo
}

func (d *di) RouteRepository(_ context.Context) route.RouteRepository {
	if d.routeRepo == nil {
		d.routeRepo = routerepo.NewRouteRepository()
	}

	return d.routeRepo
}

func (d *di) SerialStore(_ context.Context) serial.CounterStore {
	if d.serialStore == nil {
		d.serialStore = serialrepo.NewFileStore(config.C().Line.SerialDir())
	}

	return d.serialStore
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.TestResultsConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) TestResultsConsumer(ctx context.Context) kafka.Consumer {
	if d.testResultsConsumer == nil {
		d.testResultsConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.TestResultsTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.testResultsConsumer
}

func (d *di) ResultConsumer(ctx context.Context) ResultConsumer {
	if d.resultConsumer == nil {
		d.resultConsumer = resconsumer.NewResultConsumer(
			d.TestResultsConsumer(ctx),
			d.KafkaConverter(ctx),
			d.ScanService(ctx),
		)
	}

	return d.resultConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ReorderProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) ReorderProducer(ctx context.Context) kafka.Producer {
	if d.reorderProducer == nil {
		d.reorderProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.ReorderTopic(),
			logger.L(),
		)
	}

	return d.reorderProducer
}

func (d *di) ReorderSender(ctx context.Context) rop.ReorderSender {
	if d.reorderSender == nil {
		d.reorderSender = reoproducer.NewReorderProducer(
			d.ReorderProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.reorderSender
}

func (d *di) RouteService(ctx context.Context) RouteService {
	if d.routeService == nil {
		d.routeService = route.NewRouteService(
			d.TxManager(ctx).Pool(),
			d.RouteRepository(ctx),
			d.RouteCache(ctx),
			d.Layout(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.routeService
}

func (d *di) LedgerService(ctx context.Context) Ledger {
	if d.ledgerService == nil {
		d.ledgerService = ledger.NewLedgerService(
			d.PartRepository(ctx),
			d.ProductRepository(ctx),
		)
	}

	return d.ledgerService
}

func (d *di) RopService(ctx context.Context) RopService {
	if d.ropService == nil {
		d.ropService = rop.NewRopService(
			d.TxManager(ctx).Pool(),
			d.RopRepository(ctx),
			d.PartRepository(ctx),
			d.LedgerService(ctx),
			d.ReorderSender(ctx),
			config.C().Line.ReorderRecipients(),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.ropService
}

func (d *di) SerialService(ctx context.Context) SerialService {
	if d.serialService == nil {
		d.serialService = serial.NewSerialService(
			d.TxManager(ctx).Pool(),
			d.SerialStore(ctx),
			d.ProductRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.serialService
}

func (d *di) ScanService(ctx context.Context) ScanService {
	if d.scanService == nil {
		cfg := config.C()

		d.scanService = scan.NewScanService(
			d.TxManager(ctx),
			d.OrderRepository(ctx),
			d.VisitRepository(ctx),
			d.RouteService(ctx),
			d.LedgerService(ctx),
			d.RopService(ctx),
			d.Layout(ctx),
			scan.Options{
				Cooldown:     cfg.Line.DebounceCooldown(),
				RejectPolicy: cfg.Line.RejectPolicy(),
				ReadTimeout:  cfg.Server.DBReadTimeout(),
			},
		)
	}

	return d.scanService
}

func (d *di) ProductionService(ctx context.Context) thttp.ProductionService {
	if d.productionService == nil {
		d.productionService = production.NewProductionService(
			d.TxManager(ctx),
			d.OrderRepository(ctx),
			d.VisitRepository(ctx),
			d.LedgerService(ctx),
			d.RopService(ctx),
			d.SerialService(ctx),
		)
	}

	return d.productionService
}

func (d *di) BoardService(ctx context.Context) thttp.BoardService {
	if d.boardService == nil {
		d.boardService = board.NewBoardService(
			d.TxManager(ctx).Pool(),
			d.OrderRepository(ctx),
			d.VisitRepository(ctx),
			d.RouteService(ctx),
			d.Layout(ctx),
			config.C().Line.BoardDoneWindow(),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.boardService
}

func (d *di) LineHandler(ctx context.Context) LineHandler {
	if d.handler == nil {
		d.handler = thttp.NewLineHandler(
			d.ScanService(ctx),
			d.ProductionService(ctx),
			d.BoardService(ctx),
			d.RopService(ctx),
			d.RouteService(ctx),
			d.SerialService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
