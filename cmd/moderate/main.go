package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"iffy-moderation/config"
	"iffy-moderation/pkg/iffy"
	"iffy-moderation/pkg/log"
)

// Exit codes.
const (
	exitClean   = 0
	exitFlagged = 1
	exitError   = 2
)

type imageFlags []string

func (f *imageFlags) String() string     { return strings.Join(*f, ",") }
func (f *imageFlags) Set(v string) error { *f = append(*f, v); return nil }

func main() {
	os.Exit(run())
}

func run() int {
	var images imageFlags
	flag.Var(&images, "image", "image URL to moderate (repeatable)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: moderate [-image URL]... [text...]")
		fmt.Fprintln(os.Stderr, "Example: moderate -image https://example.com/a.png \"caption text\"")
		flag.PrintDefaults()
	}
	flag.Parse()

	content := buildContent(strings.Join(flag.Args(), " "), images)
	if len(content) == 0 {
		flag.Usage()
		return exitError
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return exitError
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := iffy.New(iffy.Config{
		APIKey:     cfg.Iffy.APIKey,
		BaseURL:    cfg.Iffy.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Iffy.Timeout},
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Iffy client: %v", err)
		return exitError
	}

	res := client.Moderate(ctx, content)
	return report(ctx, res, os.Stdout, logger)
}

func buildContent(text string, images []string) []iffy.Content {
	var content []iffy.Content
	if strings.TrimSpace(text) != "" {
		content = append(content, iffy.Text(text))
	}
	for _, u := range images {
		content = append(content, iffy.ImageURL(u))
	}
	return content
}

func report(ctx context.Context, res iffy.Result, w io.Writer, logger log.Logger) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	switch r := res.(type) {
	case *iffy.Verdict:
		if err := enc.Encode(r); err != nil {
			logger.Errorf(ctx, "failed to write verdict: %v", err)
			return exitError
		}
		if r.Flagged() {
			return exitFlagged
		}
		return exitClean
	case *iffy.ServerError:
		if err := enc.Encode(map[string]any{"error": map[string]any{"message": r.Message, "status": r.StatusCode}}); err != nil {
			logger.Errorf(ctx, "failed to write server error: %v", err)
		}
		return exitError
	default:
		logger.Errorf(ctx, "moderation request failed: %v", iffy.ResultError(res))
		return exitError
	}
}
