package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hsejin314/eos-zmq-plugin/internal/chain"
	"github.com/hsejin314/eos-zmq-plugin/internal/metrics"
	"github.com/hsejin314/eos-zmq-plugin/internal/streamer"
	"github.com/hsejin314/eos-zmq-plugin/internal/zmqsender"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	SenderBind  string        `long:"zmq-sender-bind" env:"EOS_ZMQ_SENDER_BIND" description:"ZMQ PUSH socket bind address; empty disables the sidecar" default:"tcp://127.0.0.1:5556"`
	FeedAddr    string        `long:"feed-addr" env:"EOS_ZMQ_FEED_ADDR" description:"node callback feed address (host:port), or '-' to read stdin" default:"-"`
	ChainAPIURL string        `long:"chain-api-url" env:"EOS_ZMQ_CHAIN_API_URL" description:"nodeos chain API base URL" default:"http://127.0.0.1:8888"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"EOS_ZMQ_HTTP_TIMEOUT" description:"HTTP timeout for chain API requests" default:"30s"`
	MetricsAddr string        `long:"metrics-addr" env:"EOS_ZMQ_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Blacklist   []string      `long:"blacklist" env:"EOS_ZMQ_BLACKLIST" env-delim:"," description:"contract:action pairs suppressed entirely (default eosio:onblock, blocktwitter:tweet)"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("eos zmq sidecar failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.SenderBind == "" {
		logger.Warn("zmq-sender-bind not specified, sidecar disabled")
		return nil
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	blacklist := streamer.DefaultBlacklist()
	if len(cfg.Blacklist) > 0 {
		parsed, err := streamer.ParseBlacklist(cfg.Blacklist)
		if err != nil {
			return fmt.Errorf("parse blacklist: %w", err)
		}
		blacklist = parsed
	}

	logger.Info("binding ZMQ PUSH socket", zap.String("bind", cfg.SenderBind))
	sender, err := zmqsender.NewSender(cfg.SenderBind)
	if err != nil {
		return fmt.Errorf("init sender: %w", err)
	}
	defer func() {
		if err := sender.Close(); err != nil {
			logger.Error("failed to close sender socket", zap.Error(err))
		}
	}()

	client, err := chain.NewClient(cfg.ChainAPIURL, cfg.HTTPTimeout, metrics.NewChainClient())
	if err != nil {
		return fmt.Errorf("init chain client: %w", err)
	}

	svc, err := streamer.New(streamer.Config{
		Sender:     sender,
		State:      client,
		Serializer: client,
		Blacklist:  blacklist,
		Metrics:    metrics.NewStreamer(),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("init streamer: %w", err)
	}

	var feed *chain.Feed
	if cfg.FeedAddr == "-" {
		feed = chain.NewFeed(os.Stdin, logger)
	} else {
		feed = chain.NewDialFeed(cfg.FeedAddr, logger)
	}
	svc.Attach(feed, feed, feed)

	return feed.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
