package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/service"
)

type services struct {
	catalog *service.CatalogService
	filter  *service.FilterService
	cart    *service.CartService
	theme   service.ThemeService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	stateStore storage.StateStore
	services   services
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	stateStore, err := storage.NewStateStore(app.ctx, app.cfg.StateDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.stateStore = stateStore
}

func (app *App) initCoreServices() {
	catalogFetcher := catalog.NewHTTPCatalog(
		app.cfg.Catalog.ProductsURL,
		app.cfg.Catalog.CategoriesURL,
		app.cfg.Catalog.FetchTimeout,
	)

	catalogService := service.NewCatalogService(catalogFetcher)
	catalogService.Refresh(app.ctx)

	app.services.catalog = catalogService
	app.services.filter = service.NewFilterService(catalogService)
	app.services.cart = service.NewCartService(
		app.ctx, catalogService, app.stateStore,
	)
	app.services.theme = service.NewThemeService(app.stateStore)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterStorefront(
		mux, app.services.filter, app.services.filter, app.services.catalog,
	)
	httphandler.RegisterCart(mux, app.services.cart)
	httphandler.RegisterTheme(mux, app.services.theme)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.stateStore.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
