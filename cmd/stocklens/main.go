package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/stocklens/stocklens-mobile/internal/api"
	"github.com/stocklens/stocklens-mobile/internal/app"
	"github.com/stocklens/stocklens-mobile/internal/detail"
	"github.com/stocklens/stocklens-mobile/internal/nav"
	"github.com/stocklens/stocklens-mobile/internal/observability"
	"github.com/stocklens/stocklens-mobile/internal/scan"
	"github.com/stocklens/stocklens-mobile/internal/stub"
	"github.com/stocklens/stocklens-mobile/internal/view"
)

// autoGrant approves the camera prompt; the terminal demo has no dialog.
type autoGrant struct{}

func (autoGrant) RequestCameraPermission(context.Context) (bool, error) {
	return true, nil
}

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	productFlag := flag.String("product", "", "product ID to open; defaults to the first seeded product")
	scanFlag := flag.String("scan", "", "simulate a barcode scan with this payload after the detail screen settles")
	flag.Parse()

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)
	metrics := observability.NewMetrics()

	group, ctx := errgroup.WithContext(ctx)

	productID := *productFlag
	if cfg.StubEnabled {
		repo := stub.NewRepository()
		seeded, err := stub.Seed(repo)
		if err != nil {
			logger.Error("seed stub catalog", slog.Any("error", err))
			os.Exit(1)
		}
		if productID == "" {
			productID = seeded[0]
		}

		router := app.NewRouter(app.RouterParams{
			Logger:   logger,
			Config:   cfg,
			Products: stub.NewHandler(logger, repo),
			Metrics:  metrics,
		})
		server := &http.Server{
			Handler:      router,
			ReadTimeout:  cfg.StubReadTimeout,
			WriteTimeout: cfg.StubWriteTimeout,
		}
		listener, err := net.Listen("tcp", cfg.StubAddr)
		if err != nil {
			logger.Error("listen stub api", slog.String("addr", cfg.StubAddr), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("stub product api listening", slog.String("addr", listener.Addr().String()))

		group.Go(func() error {
			if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		group.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	if productID == "" {
		logger.Error("no product id: pass -product or enable the stub")
		os.Exit(1)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger, api.WithMetrics(metrics))
	engine, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	navigator := nav.NewStack(nav.Route{
		Name:   nav.ScreenProductDetail,
		Params: nav.Params{ProductID: productID},
	})

	session := detail.NewSession(client, navigator, logger, func(v detail.View) {
		fmt.Println("----")
		if err := engine.RenderDetail(os.Stdout, v); err != nil {
			logger.Error("render detail", slog.Any("error", err))
		}
	})
	session.Start(ctx, productID)
	session.Wait()

	if payload := *scanFlag; payload != "" {
		runScanFlow(ctx, cfg, client, navigator, logger, payload)
	}

	session.Close()
	stop()
	if err := group.Wait(); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("done")
}

// runScanFlow pushes the scanner screen, simulates one scan and resolves
// the payload to a product through the API, the way the list screen wires
// the scanner in the app.
func runScanFlow(ctx context.Context, cfg *app.Config, client *api.Client, navigator *nav.Stack, logger *slog.Logger, payload string) {
	onScan := func(code string) {
		product, err := client.LookupBarcode(ctx, code)
		if err != nil {
			logger.Warn("barcode lookup failed", slog.String("code", code), slog.Any("error", err))
			return
		}
		logger.Info("barcode resolved",
			slog.String("code", code), slog.String("product", product.Name))
	}

	navigator.Push(nav.Route{
		Name:   nav.ScreenBarcodeScanner,
		Params: nav.Params{OnScan: onScan},
	})
	gate := scan.NewGate(cfg.Platform, autoGrant{}, logger)
	scanner := scan.NewSession(gate, navigator, onScan, logger)
	if state := scanner.Mount(ctx); state != scan.PermissionGranted {
		logger.Warn("camera permission not granted", slog.String("state", state.String()))
		scanner.HandleClose()
		return
	}
	scanner.HandleScan(payload)
}
