// Command eos-zmq-tail connects a PULL socket to a running sidecar and
// prints every decoded frame, one JSON line per message. Debugging aid.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hsejin314/eos-zmq-plugin/internal/zmqsender"
	"github.com/jessevdk/go-flags"
	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

type config struct {
	Connect string `long:"connect" env:"EOS_ZMQ_TAIL_CONNECT" description:"sidecar PUSH socket address" default:"tcp://127.0.0.1:5556"`
}

func main() {
	cfg := config{}

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

	if err := run(cfg, logger); err != nil {
		logger.Fatal("eos zmq tail failed", zap.Error(err))
	}
}

func run(cfg config, logger *zap.Logger) error {
	socket, err := zmq4.NewSocket(zmq4.PULL)
	if err != nil {
		return fmt.Errorf("create pull socket: %w", err)
	}
	defer socket.Close()

	if err := socket.Connect(cfg.Connect); err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Connect, err)
	}
	logger.Info("connected, waiting for frames", zap.String("addr", cfg.Connect))

	for {
		frame, err := socket.RecvBytes(0)
		if err != nil {
			return fmt.Errorf("recv frame: %w", err)
		}
		msgType, opts, payload, err := zmqsender.DecodeFrame(frame)
		if err != nil {
			logger.Warn("skip malformed frame", zap.Int("len", len(frame)), zap.Error(err))
			continue
		}
		fmt.Printf("%s opts=%d %s\n", msgType, opts, payload)
	}
}
