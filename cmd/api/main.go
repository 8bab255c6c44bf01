package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	"storefront/internal/notify"
	categoryrepo "storefront/internal/repository/category"
	"storefront/internal/repository/kv"
	orderrepo "storefront/internal/repository/order"
	productrepo "storefront/internal/repository/product"
	"storefront/internal/seed"
	cartsvc "storefront/internal/service/cart"
	categorysvc "storefront/internal/service/category"
	"storefront/internal/service/checkout"
	productsvc "storefront/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()

	var (
		productRepo  productrepo.Repository
		categoryRepo categoryrepo.Repository
		kvStore      kv.Store
		pinger       httpserver.Pinger
	)
	if cfg.DBConnString == "" {
		logger.Printf("DB_DSN not set, using in-memory storage with the built-in catalog")
		productRepo = productrepo.NewMemory(seed.Products(), logger)
		categoryRepo = categoryrepo.NewMemory(seed.Categories())
		kvStore = kv.NewMemory()
	} else {
		dbpool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer dbpool.Close()
		productRepo = productrepo.NewPostgres(dbpool, logger)
		categoryRepo = categoryrepo.NewPostgres(dbpool)
		kvStore = kv.NewPostgres(dbpool, logger)
		pinger = dbpool
	}

	notifier := notify.NewLogger(logger)
	cartStore := cartsvc.New(ctx, kvStore,
		cartsvc.WithStorageKey(cfg.CartStorageKey),
		cartsvc.WithNotifier(notifier),
		cartsvc.WithLogger(logger),
	)
	productService := productsvc.New(productRepo, notifier, logger)
	categoryService := categorysvc.New(categoryRepo)
	checkoutService := checkout.New(cartStore, orderrepo.NewMemory(),
		checkout.WithDelay(cfg.OrderDelay),
		checkout.WithNotifier(notifier),
		checkout.WithLogger(logger),
	)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pinger, httpserver.Deps{
		ProductSvc:         productService,
		CategorySvc:        categoryService,
		CartSvc:            cartStore,
		CheckoutSvc:        checkoutService,
		PriceRangeMaxCents: cfg.PriceRangeMaxCents(),
		AllowedOrigins:     cfg.CORSAllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
