// Command cli is a one-shot converter for the terminal.
//
// Usage:
//
//	cli convert <amount> <from> <to>
//	cli currencies
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	infracache "github.com/mihirand/fxconvert/infra/cache"
	infraprovider "github.com/mihirand/fxconvert/infra/provider"
	"github.com/mihirand/fxconvert/pkg/config"
	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
	"github.com/mihirand/fxconvert/pkg/service/conversion"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	registry := currency.NewRegistry()
	source := infraprovider.NewCachedExchangeRateProvider(
		infraprovider.NewExchangeRateAPIProvider(cfg.Exchange, logger),
		infracache.NewMemoryCache(),
		cfg.Exchange.CacheTTL,
		logger,
	)
	svc := conversion.New(source, registry, nil, logger)

	switch os.Args[1] {
	case "convert":
		if len(os.Args) < 5 {
			fmt.Println("Usage: cli convert <amount> <from> <to>")
			os.Exit(1)
		}
		req := domain.ConversionRequest{
			Amount: os.Args[2],
			From:   currency.Code(os.Args[3]),
			To:     currency.Code(os.Args[4]),
		}
		result, err := svc.Convert(context.Background(), req)
		if err != nil {
			color.Red("Conversion failed: %v", err)
			os.Exit(1)
		}
		color.Green("%s %s = %s %s (rate %v)",
			result.Amount, result.From, result.Result, result.To, result.Rate)
	case "currencies":
		for _, meta := range registry.List() {
			fmt.Printf("%s  %-18s %s\n", meta.Code, meta.Name, meta.Symbol)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands: convert <amount> <from> <to>, currencies")
}
