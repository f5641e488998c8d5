// quote-batch registers a set of vendor quote documents as one comparison
// and runs the pipeline synchronously, printing the resulting matrix.
//
// Usage:
//
//	quote-batch -title "Q3 steel order" fileA.txt fileB.txt fileC.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/harshmriduhash/iq-procure-assist/internal/aggregate"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/docs"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/lifecycle"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm/gateway"
	"github.com/harshmriduhash/iq-procure-assist/internal/memo"
	"github.com/harshmriduhash/iq-procure-assist/internal/notify"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
	"github.com/harshmriduhash/iq-procure-assist/internal/utils"
)

func main() {
	title := flag.String("title", "", "comparison title (required)")
	withMemo := flag.Bool("memo", false, "also generate the approval memo")
	flag.Parse()

	if *title == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: quote-batch -title TITLE [-memo] FILE...")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Processing.ProcessTimeout)
	defer cancel()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, logger)

	var files []entity.QuoteFile
	for _, arg := range flag.Args() {
		abs, err := filepath.Abs(arg)
		if err != nil {
			log.Fatalf("resolving %s: %v", arg, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			log.Fatalf("stat %s: %v", arg, err)
		}
		files = append(files, entity.QuoteFile{
			Filename:    filepath.Base(abs),
			StoragePath: abs,
			FileSize:    info.Size(),
		})
	}

	repo := repository.NewComparisonRepository(entc, logger)
	hub := notify.NewHub(logger)
	client := gateway.NewClient(gateway.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Lenient:     true,
	}, logger)
	ctrl := lifecycle.NewController(logger, lifecycle.Config{
		StaleClaimAfter: cfg.Processing.StaleClaimAfter,
	}, repo, docs.NewFSSource(logger, cfg.Processing.MaxDocBytes), client, hub)

	start := time.Now()
	rec, err := ctrl.Submit(ctx, *title, files)
	if err != nil {
		log.Fatalf("submit: %v", err)
	}
	rec, err = ctrl.Advance(ctx, rec.ID)
	if err != nil {
		log.Fatalf("process: %v", err)
	}

	printMatrix(rec)
	fmt.Printf("\nprocessed %d documents in %s (comparison %s)\n",
		len(files), time.Since(start).Round(time.Millisecond), rec.ID)

	if *withMemo && !rec.DataAbsent() {
		memoSvc := memo.NewService(repo, client, hub, logger)
		rec, err = memoSvc.Generate(ctx, rec.ID)
		if err != nil {
			log.Fatalf("memo: %v", err)
		}
		fmt.Println("\n--- approval memo ---")
		fmt.Println(*rec.Memo)
	}
}

func printMatrix(rec *entity.Comparison) {
	if rec.DataAbsent() {
		fmt.Println("no pricing data found in the submitted documents")
		return
	}
	res := aggregate.Aggregate(rec.Items)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "ITEM")
	for _, v := range rec.Vendors {
		fmt.Fprintf(w, "\t%s", v.Name)
	}
	fmt.Fprintln(w, "\tBEST")
	for i, item := range rec.Items {
		fmt.Fprint(w, item.Name)
		for slot := range rec.Vendors {
			if cents, ok := item.PricesByVendor[slot]; ok {
				fmt.Fprintf(w, "\t$%s", utils.CentsToDollars(cents))
			} else {
				fmt.Fprint(w, "\tN/A")
			}
		}
		if st := res.PerItem[i]; st.MinCents != nil {
			fmt.Fprintf(w, "\t$%s\n", utils.CentsToDollars(*st.MinCents))
		} else {
			fmt.Fprintln(w, "\tN/A")
		}
	}
	fmt.Fprintf(w, "TOTAL\t")
	for range rec.Vendors {
		fmt.Fprint(w, "\t")
	}
	fmt.Fprintf(w, "$%s\n", utils.CentsToDollars(rec.TotalCents))
	_ = w.Flush()
}
