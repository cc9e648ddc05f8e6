// CaterQuest — маркетплейс еды: продавцы, меню, заказы, отзывы и чат.
//
//	@title        CaterQuest API
//	@version      1.0
//	@description  HTTP API маркетплейса еды.
//	@BasePath     /
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/caterquest/caterquest/docs"
	"github.com/caterquest/caterquest/internal/app"
	"github.com/caterquest/caterquest/internal/config"
	"github.com/caterquest/caterquest/internal/handlers"
	"github.com/caterquest/caterquest/internal/telemetry"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if addr, dsn := config.ParseFlags(); addr != nil || dsn != "" {
		if addr != nil {
			cfg.Server.Host = addr.Host
			cfg.Server.Port = addr.Port
		}
		if dsn != "" {
			cfg.Database.DSN = dsn
		}
	}

	providers, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown error: %v", err)
		}
	}()

	a, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	if err := a.Init(); err != nil {
		return err
	}
	defer a.Close()

	h := handlers.NewHandler(handlers.Deps{
		Users:      a.Storage,
		Menus:      a.Storage,
		Orders:     a.Storage,
		Ratings:    a.Storage,
		Catalog:    a.Catalog,
		Sessions:   a.Sessions,
		Notifier:   a.Producer,
		Registry:   a.Registry,
		ReadPolicy: a.ReadPolicy(),
		BcryptCost: cfg.Auth.BcryptCost,
	})

	r := chi.NewRouter()
	config.SetupMiddlewares(r)

	r.Get("/healthz", h.HealthHandler)
	r.Post("/register", h.RegisterHandler)
	r.Post("/login", h.LoginHandler)

	if providers.MetricsHandler != nil {
		r.Handle(cfg.Telemetry.MetricsPath, providers.MetricsHandler)
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Все остальные маршруты требуют действующую сессию.
	r.Group(func(r chi.Router) {
		r.Use(a.Sessions.Middleware)

		r.Post("/logout", h.LogoutHandler)

		r.Get("/vendors", h.VendorsHandler)
		r.Post("/vendors/{vendor_id}/review", h.ReviewHandler)

		r.Post("/orders", h.PlaceOrderHandler)
		r.Get("/orders/customer", h.CustomerOrdersHandler)
		r.Get("/orders", h.VendorOrdersHandler)
		r.Put("/orders/{order_id}", h.OrderStatusHandler)

		r.Get("/menu", h.MenuListHandler)
		r.Post("/menu", h.MenuAddHandler)
		r.Put("/menu/{menu_id}", h.MenuUpdateHandler)

		r.Get("/chat/rooms", h.ChatRoomsHandler)
		r.Get("/chat/events", h.ChatEventsHandler)
		r.Post("/chat/send", h.ChatSendHandler)
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      otelhttp.NewHandler(r, "http.server"),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Println("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
