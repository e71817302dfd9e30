package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/its-jojoo/camxuc/internal/adapter/storage/sqlite"
	"github.com/its-jojoo/camxuc/internal/config"
	"github.com/its-jojoo/camxuc/internal/core"
)

type ExportRecord struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Normalized string  `json:"normalized_text"`
	Sentiment  string  `json:"sentiment"`
	Score      float64 `json:"score"`
	CreatedAt  string  `json:"created_at"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("camxucctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "camxuc.config.json", "config file path")
		envFile    = fs.String("env", ".env", "dotenv file path")
		dbPath     = fs.String("db", "", "sqlite db path (overrides config and CAMXUC_DB)")
		out        = fs.String("out", "camxuc-export.json", "output json file path")
		limit      = fs.Int("limit", 5000, "max records to export")
		sentiment  = fs.String("sentiment", "ALL", "export only ALL | POSITIVE | NEUTRAL | NEGATIVE")
		stats      = fs.Bool("stats", false, "print per-label counts instead of exporting")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	filter, ok := core.ParseSentiment(*sentiment)
	if !ok {
		fmt.Fprintf(stderr, "invalid -sentiment %q\n", *sentiment)
		return 2
	}

	cfg, err := config.Resolve(*configPath, *envFile, os.Getenv)
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}
	if *dbPath != "" {
		cfg.Storage.Path = *dbPath
	}

	st, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(stderr, "db open error: %v\n", err)
		return 1
	}
	defer st.Close()

	ctx := context.Background()

	if *stats {
		by, err := st.CountBySentiment(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "count error: %v\n", err)
			return 1
		}
		total := 0
		for _, s := range core.Sentiments {
			fmt.Fprintf(stdout, "%-9s %d\n", s, by[s])
			total += by[s]
		}
		fmt.Fprintf(stdout, "%-9s %d\n", "TOTAL", total)
		return 0
	}

	recs, err := st.ListRecent(ctx, *limit, filter)
	if err != nil {
		fmt.Fprintf(stderr, "list error: %v\n", err)
		return 1
	}

	b, err := sonic.ConfigStd.MarshalIndent(toExport(recs), "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "encode error: %v\n", err)
		return 1
	}
	if err := os.WriteFile(*out, append(b, '\n'), 0o644); err != nil {
		fmt.Fprintf(stderr, "write output error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "exported", len(recs), "records to", *out)
	return 0
}

func toExport(recs []core.Record) []ExportRecord {
	export := make([]ExportRecord, 0, len(recs))
	for _, r := range recs {
		export = append(export, ExportRecord{
			ID:         r.ID,
			Text:       r.Text,
			Normalized: r.Normalized,
			Sentiment:  string(r.Sentiment),
			Score:      r.Score,
			CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return export
}
