package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dop251/goja"
	"github.com/google/uuid"

	"github.com/mstolbov/ytstats"
	"github.com/mstolbov/ytstats/internal/config"
	"github.com/mstolbov/ytstats/internal/network"
	"github.com/mstolbov/ytstats/logger"
	"github.com/mstolbov/ytstats/script"
)

type App struct {
	Config *config.Config
	Logger logger.Logger
	Client *ytstats.Client
}

// New wires config, logger, HTTP client and the stats client. It fails
// before any network call when the API key is absent.
func New(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	l := logger.NewLogrusLogger(cfg.Logging()).WithField("run_id", uuid.NewString())

	apiKey, err := cfg.APIKey()
	if err != nil {
		return nil, err
	}

	httpClient := network.SetupHTTPClient(network.NewDefaultHTTPClientConfig(cfg.HTTP()), l)

	client, err := ytstats.NewClient(
		apiKey,
		ytstats.WithHTTPClient(httpClient),
		ytstats.WithLogger(l),
	)
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Logger: l,
		Client: client,
	}, nil
}

func (a *App) Run(ctx context.Context, scriptPath string, args []string) error {
	if scriptPath != "" {
		return a.runScript(scriptPath)
	}
	if len(args) != 1 {
		return errors.New("usage: ytstats [-config file] [-script file.js] <video-url>")
	}
	return a.printStats(ctx, args[0])
}

func (a *App) printStats(ctx context.Context, rawURL string) error {
	stats, err := a.Client.GetStats(ctx, rawURL)
	if err != nil {
		return err
	}

	fmt.Printf("Video:     %s\n", stats.VideoID)
	fmt.Printf("Title:     %s\n", stats.Title)
	if stats.ChannelTitle != "" {
		fmt.Printf("Channel:   %s\n", stats.ChannelTitle)
	}
	if !stats.PublishedAt.IsZero() {
		fmt.Printf("Published: %s\n", stats.PublishedAt.Format(time.DateOnly))
	}
	fmt.Printf("Views:     %s\n", formatCount(stats.ViewCount))
	fmt.Printf("Likes:     %s\n", formatCount(stats.LikeCount))
	fmt.Printf("Comments:  %s\n", formatCount(stats.CommentCount))
	return nil
}

func formatCount(v *uint64) string {
	if v == nil {
		return "disabled"
	}
	return strconv.FormatUint(*v, 10)
}

func (a *App) runScript(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	rt := goja.New()
	if err := script.Enable(rt, a.Client, a.Logger); err != nil {
		return err
	}
	if err := rt.Set("print", func(args ...any) {
		fmt.Println(args...)
	}); err != nil {
		return err
	}

	if _, err := rt.RunScript(path, string(src)); err != nil {
		return fmt.Errorf("script failed: %w", err)
	}
	return nil
}
