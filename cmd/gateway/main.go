// Command gateway runs the HTTP + WebSocket front-end over a fresh
// matching engine, with graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mkhoshkam/matchbook/engine"
	"github.com/mkhoshkam/matchbook/internal/config"
	"github.com/mkhoshkam/matchbook/internal/eventbus"
	"github.com/mkhoshkam/matchbook/internal/gateway"
	"github.com/mkhoshkam/matchbook/internal/logging"
)

func main() {
	cfg := config.LoadGatewayConfig()
	logger := logging.MustNew(false)
	defer logger.Sync()

	eng := engine.NewEngine(engine.WithLogger(logger))
	gw := gateway.New(eng, gateway.Config{Logger: logger, SnapshotDepth: cfg.SnapshotDepth})

	stop := make(chan struct{})
	go gw.Hub().Run(stop)

	busCtx, busCancel := context.WithCancel(context.Background())
	defer busCancel()
	if pub, err := eventbus.NewPublisher(cfg.NATSURL, logger); err != nil {
		logger.Warn("eventbus disabled: could not reach NATS", zap.Error(err))
	} else {
		defer pub.Close()
		go pub.Run(busCtx, eng)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: gw.Router(),
	}

	go func() {
		logger.Sugar().Infof("gateway listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("gateway: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	close(stop)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
