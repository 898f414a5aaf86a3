package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/minhtp/sobanhang/internal/config"
	"github.com/minhtp/sobanhang/internal/database"
	"github.com/minhtp/sobanhang/internal/extraction"
	extractionStore "github.com/minhtp/sobanhang/internal/extraction/store"
	sobanhangHttp "github.com/minhtp/sobanhang/internal/http"
	extractionHandler "github.com/minhtp/sobanhang/internal/http/extraction"
	ledgerHandler "github.com/minhtp/sobanhang/internal/http/ledger"
	orderHandler "github.com/minhtp/sobanhang/internal/http/order"
	productHandler "github.com/minhtp/sobanhang/internal/http/product"
	stockHandler "github.com/minhtp/sobanhang/internal/http/stock"
	"github.com/minhtp/sobanhang/internal/ledger"
	ledgerStore "github.com/minhtp/sobanhang/internal/ledger/store"
	"github.com/minhtp/sobanhang/internal/order"
	orderStore "github.com/minhtp/sobanhang/internal/order/store"
	"github.com/minhtp/sobanhang/internal/product"
	productStore "github.com/minhtp/sobanhang/internal/product/store"
	"github.com/minhtp/sobanhang/internal/stock"
	stockStore "github.com/minhtp/sobanhang/internal/stock/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		stockService   = stock.NewService(stockStore.New(db))
		productService = product.NewService(productStore.New(db), stockService)
		ledgerService  = ledger.NewService(ledgerStore.New(db))
		orderService   = order.NewService(orderStore.New(db), stockService, productStore.New(db))
		matcher        = extraction.NewMatcher(extractionStore.New(db))
		extractor      = extraction.NewClient(cfg.Extraction.Endpoint, cfg.Extraction.APIKey)
	)

	var (
		productH    = productHandler.NewHandler(productService)
		stockH      = stockHandler.NewHandler(stockService)
		ledgerH     = ledgerHandler.NewHandler(ledgerService)
		orderH      = orderHandler.NewHandler(orderService)
		extractionH = extractionHandler.NewHandler(extractor, matcher)
	)

	router := sobanhangHttp.New(cfg.Auth.Secret, productH, stockH, ledgerH, orderH, extractionH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
