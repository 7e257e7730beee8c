package main

// One-shot analysis from the command line, printing the full report as JSON:
//   go run ./cmd/analyze -url https://example.com -locale sv

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/AthlasSoftware/leadmagnet/internal/analysis"
	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
	"github.com/AthlasSoftware/leadmagnet/internal/page"
	"github.com/AthlasSoftware/leadmagnet/internal/pagespeed"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/config"
)

func main() {
	var (
		targetURL = flag.String("url", "", "page URL to analyze")
		locale    = flag.String("locale", "", "report language (en or sv)")
		localOnly = flag.Bool("local-only", false, "skip the PageSpeed Insights audit")
		timeout   = flag.Duration("timeout", 2*time.Minute, "overall deadline")
	)
	flag.Parse()

	if *targetURL == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -url <page> [-locale en|sv] [-local-only]")
		os.Exit(2)
	}

	cfg := config.Load()
	if *locale == "" {
		*locale = cfg.DefaultLocale
	}

	var audit analysis.AuditProvider
	if !*localOnly {
		audit = pagespeed.NewClient(cfg.PSIAPIKey)
	}
	engine := analysis.NewEngine(
		page.NewFetcher(cfg.FetchTimeout),
		page.NewProbe(),
		audit,
		i18n.NewCatalog(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := engine.Analyze(ctx, *targetURL, analysis.Options{
		Locale:    *locale,
		LocalOnly: *localOnly,
	})
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}
