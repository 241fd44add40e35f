package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nhossain/bistro-server/internal/config"
	"github.com/nhossain/bistro-server/internal/events"
	"github.com/nhossain/bistro-server/internal/httpserver"
	"github.com/nhossain/bistro-server/internal/logging"
	auth "github.com/nhossain/bistro-server/internal/middleware/auth"
	loggingmw "github.com/nhossain/bistro-server/internal/middleware/logging"
	"github.com/nhossain/bistro-server/internal/payments"
	"github.com/nhossain/bistro-server/internal/repo"
	"github.com/nhossain/bistro-server/internal/search"
	"github.com/nhossain/bistro-server/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.AccessTokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET not set")
	}

	logger := logging.New(cfg.LogLevel).With("service", "bistro-server")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := repo.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	db := client.Database(cfg.DBName)

	usersRepo := repo.NewUsers(db)
	menuRepo := repo.NewMenu(db)
	reviewsRepo := repo.NewReviews(db)
	cartsRepo := repo.NewCarts(db)
	paymentsRepo := repo.NewPayments(db)
	statsRepo := repo.NewStats(db)

	tokens := &service.TokenService{Secret: []byte(cfg.AccessTokenSecret)}
	guard := &auth.Guard{Tokens: tokens, Users: usersRepo}
	stripeClient := payments.NewStripeClient(cfg.StripeSecretKey)

	var producer *events.Producer
	var publisher httpserver.EventPublisher
	if cfg.KafkaAddress != "" {
		producer = events.NewProducer(cfg.KafkaAddress, cfg.EventsTopic)
		publisher = producer
	}

	menuHandler := &httpserver.MenuHTTP{Store: menuRepo, Events: publisher}
	if cfg.ESUrl != "" {
		es, err := search.NewClient(cfg.ESUrl, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		menuHandler.Searcher = &search.MenuIndex{ES: es, Index: cfg.ESMenuIndex}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		Guard:          guard,
		AuthHandler:    &httpserver.AuthHTTP{Tokens: tokens},
		UserHandler:    &httpserver.UserHTTP{Store: usersRepo, Events: publisher},
		MenuHandler:    menuHandler,
		ReviewHandler:  &httpserver.ReviewHTTP{Store: reviewsRepo},
		CartHandler:    &httpserver.CartHTTP{Store: cartsRepo},
		PaymentHandler: &httpserver.PaymentHTTP{
			Store:   paymentsRepo,
			Carts:   cartsRepo,
			Intents: stripeClient,
			Events:  publisher,
		},
		StatsHandler: &httpserver.StatsHTTP{Store: statsRepo},
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("restaurant server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	if producer != nil {
		_ = producer.Close()
	}
	_ = client.Disconnect(shutdownCtx)

	log.Println("restaurant server stopped")
}
