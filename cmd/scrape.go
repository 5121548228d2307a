package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"lawscraper/internal/config"
	"lawscraper/internal/docstore"
	"lawscraper/internal/scraper"
	"lawscraper/pkg/logger"
	"lawscraper/pkg/scrapeprovider/firecrawl"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scrapeCommand constructs the 'scrape' subcommand that runs a single crawl
// from the command line and prints the resulting report as JSON.
func scrapeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Runs a one-off crawl and prints the report as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			URL, _ := cmd.Flags().GetString("url")
			limit, _ := cmd.Flags().GetInt("limit")
			links, _ := cmd.Flags().GetBool("links")

			provider := firecrawl.New(
				&http.Client{Timeout: cfg.Firecrawl.Timeout},
				cfg.Firecrawl.APIKey,
				cfg.Firecrawl.BaseURL,
			)
			store := docstore.New(docstore.NewOptions(cfg))
			scr := scraper.New(provider, store, scraper.NewOptions(cfg))

			var limitArg *int
			if cmd.Flags().Changed("limit") {
				limitArg = &limit
			}

			req, err := scr.Validate(URL, limitArg, links)
			if err != nil {
				logger.Fatal(ctx, "invalid scrape request", zap.Error(err))
			}

			report, err := scr.Crawl(ctx, req)
			if err != nil {
				logger.Fatal(ctx, "crawl failed", zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				logger.Fatal(ctx, "could not encode report", zap.Error(err))
			}

			if !report.Success {
				fmt.Fprintln(os.Stderr, report.Message)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().String("url", "", "Page to scrape, must be under the allowed domain")
	cmd.Flags().Int("limit", 0, "Maximum number of pages to scrape, including the root page")
	cmd.Flags().Bool("links", true, "Follow links discovered on the root page")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
