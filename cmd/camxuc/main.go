package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/its-jojoo/camxuc/internal/adapter/classifier"
	"github.com/its-jojoo/camxuc/internal/adapter/segment"
	"github.com/its-jojoo/camxuc/internal/adapter/storage"
	"github.com/its-jojoo/camxuc/internal/adapter/storage/memory"
	"github.com/its-jojoo/camxuc/internal/adapter/storage/sqlite"
	"github.com/its-jojoo/camxuc/internal/config"
	"github.com/its-jojoo/camxuc/internal/core"
	"github.com/its-jojoo/camxuc/internal/render"
	"github.com/its-jojoo/camxuc/internal/usecase/classify"
	"github.com/its-jojoo/camxuc/internal/usecase/history"
)

const commands = "Commands: classify <text> | paste | history [ALL|POSITIVE|NEUTRAL|NEGATIVE] | more | search <q> | count | help | quit"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("camxuc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "camxuc.config.json", "config file path")
		envFile    = fs.String("env", ".env", "dotenv file path")
		dbPath     = fs.String("db", "", "sqlite db path (overrides config)")
		backend    = fs.String("classifier", "", "classifier backend: huggingface | openai")
		model      = fs.String("model", "", "classifier model name")
		noColor    = fs.Bool("no-color", false, "disable ANSI colors")
		text       = fs.String("text", "", "classify one sentence and exit")
	)
	if err := fs.Parse(args); err != nil {
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
	if *backend != "" {
		cfg.Classifier.Backend = *backend
	}
	if *model != "" {
		cfg.Classifier.Model = *model
	}
	if *noColor {
		off := false
		cfg.UI.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	store, closeStore, err := openStore(cfg.Storage)
	if err != nil {
		logger.Error("open store", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path, "err", err)
		return 1
	}
	defer closeStore()

	clf := classifier.NewLimited(
		classifier.NewLazy(classifierFactory(cfg.Classifier), logger),
		cfg.Classifier.RatePerSecond,
		cfg.Classifier.Burst,
	)
	svc := classify.New(clf, segment.Default(), store, classify.Config{
		MaxRecords: cfg.Storage.MaxRecords,
	}, logger)

	app := &app{
		svc:      svc,
		store:    store,
		pager:    history.NewPager(store, cfg.History.PageSize, cfg.History.Increment),
		search:   history.New(store),
		out:      stdout,
		opt:      render.Options{Color: *cfg.UI.Color},
		minRunes: cfg.UI.MinRunes,
	}

	ctx := context.Background()

	if *text != "" {
		if !app.submit(ctx, *text) {
			return 1
		}
		return 0
	}

	fmt.Fprintln(stdout, "camxuc: phân loại cảm xúc tiếng Việt")
	fmt.Fprintln(stdout, commands)
	fmt.Fprintln(stdout, "Tip: any line that is not a command is classified as-is.")

	sc := bufio.NewScanner(stdin)

	for {
		fmt.Fprint(stdout, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		cmd, arg := splitCmd(line)

		switch cmd {
		case "quit", "exit":
			return 0

		case "help":
			fmt.Fprintln(stdout, commands)

		case "classify":
			app.submit(ctx, arg)

		case "paste":
			fmt.Fprint(stdout, "(paste) ")
			if !sc.Scan() {
				return 0
			}
			app.submit(ctx, sc.Text())

		case "history":
			f, ok := core.ParseSentiment(arg)
			if !ok {
				fmt.Fprintln(stdout, "usage: history [ALL|POSITIVE|NEUTRAL|NEGATIVE]")
				continue
			}
			app.pager.SetFilter(f)
			app.showHistory(ctx)

		case "more":
			app.pager.More()
			app.showHistory(ctx)

		case "search":
			if arg == "" {
				fmt.Fprintln(stdout, "usage: search <text>")
				continue
			}
			recs, err := app.search.Search(ctx, arg, history.Options{Sentiment: app.pager.Filter()})
			if err != nil {
				fmt.Fprintln(stdout, "error:", err)
				continue
			}
			if err := render.History(app.out, recs, app.opt); err != nil {
				fmt.Fprintln(stdout, "error:", err)
			}

		case "count":
			app.count(ctx)

		default:
			app.submit(ctx, line)
		}
	}

	if err := sc.Err(); err != nil {
		fmt.Fprintln(stderr, "stdin error:", err)
		return 1
	}
	return 0
}

type app struct {
	svc      *classify.Service
	store    storage.Store
	pager    *history.Pager
	search   *history.Service
	out      io.Writer
	opt      render.Options
	minRunes int
}

// submit classifies and stores one sentence, printing the outcome. It
// reports whether a result was produced.
func (a *app) submit(ctx context.Context, raw string) bool {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		fmt.Fprintln(a.out, "❗ Câu nhập vào đang trống. Vui lòng nhập nội dung.")
		return false
	case utf8.RuneCountInString(trimmed) < a.minRunes:
		fmt.Fprintf(a.out, "⚠ Câu hơi ngắn, vui lòng nhập câu rõ nghĩa hơn (>= %d ký tự).\n", a.minRunes)
		return false
	}

	res, _, err := a.svc.Submit(ctx, raw)
	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return false
	}
	if err := render.Result(a.out, res, a.opt); err != nil {
		fmt.Fprintln(os.Stderr, "render error:", err)
		return false
	}
	return true
}

func (a *app) showHistory(ctx context.Context) {
	recs, err := a.pager.Load(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	if err := render.History(a.out, recs, a.opt); err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	if a.pager.HasMore(len(recs)) {
		fmt.Fprintln(a.out, "(more: type 'more' to load older entries)")
	}
}

func (a *app) count(ctx context.Context) {
	n, err := a.store.Count(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	by, err := a.store.CountBySentiment(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	fmt.Fprintf(a.out, "%d (POSITIVE %d, NEUTRAL %d, NEGATIVE %d)\n",
		n, by[core.SentimentPositive], by[core.SentimentNeutral], by[core.SentimentNegative])
}

func userMessage(err error) string {
	var cerr *core.ClassifierError
	switch {
	case errors.Is(err, core.ErrEmptyInput):
		return "❗ Câu nhập vào rỗng."
	case errors.Is(err, core.ErrInvalidLanguage):
		return "❗ Câu nhập vào không giống tiếng Việt hoặc không có nghĩa rõ ràng."
	case errors.As(err, &cerr):
		return "Đã xảy ra lỗi kỹ thuật khi phân loại: " + cerr.Err.Error()
	default:
		return "Đã xảy ra lỗi kỹ thuật khi phân loại: " + err.Error()
	}
}

func openStore(cfg config.StorageConfig) (storage.Store, func() error, error) {
	if cfg.Backend == config.StorageMemory {
		return memory.New(), func() error { return nil }, nil
	}
	st, err := sqlite.Open(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	return st, st.Close, nil
}

func classifierFactory(cfg config.ClassifierConfig) classifier.Factory {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return func(ctx context.Context) (classifier.Classifier, error) {
		switch cfg.Backend {
		case config.BackendOpenAI:
			return classifier.NewOpenAI(classifier.OpenAIConfig{
				APIKey:  cfg.APIKey,
				BaseURL: cfg.BaseURL,
				Model:   cfg.Model,
				Timeout: timeout,
			})
		default:
			return &classifier.HuggingFace{
				BaseURL: cfg.BaseURL,
				Model:   cfg.Model,
				Token:   cfg.APIKey,
				Timeout: timeout,
			}, nil
		}
	}
}

func splitCmd(s string) (cmd, arg string) {
	parts := strings.Fields(s)
	cmd = strings.ToLower(parts[0])
	if len(parts) > 1 {
		arg = strings.TrimSpace(s[len(parts[0]):])
	}
	return cmd, arg
}
