package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"evidence-vault/internal/notify"
	"evidence-vault/internal/platform/config"
	"evidence-vault/internal/platform/httpserver"
	"evidence-vault/internal/platform/logger"
	"evidence-vault/internal/platform/metrics"
	"evidence-vault/internal/requests"
	"evidence-vault/internal/storage"
	httptransport "evidence-vault/internal/transport/http"
	"evidence-vault/internal/vault"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New()
	m := metrics.New()

	evidenceStore := storage.NewInMemoryEvidenceStore()
	requestStore := storage.NewInMemoryRequestStore()
	storage.Seed(evidenceStore, requestStore)

	// Notifications land in the in-memory sink synchronously (the read API
	// depends on write-then-notify ordering); a broker mirror, when
	// configured, drains through a background worker.
	memorySink := notify.NewInMemorySink()
	sinks := notify.Fanout{memorySink}
	inbox := make(notify.ChannelSink, 64)

	var kafkaSink *notify.KafkaSink
	if len(cfg.NotifyBrokers) > 0 {
		kafkaSink, err = notify.NewKafkaSink(cfg.NotifyBrokers, cfg.NotifyTopic)
		if err != nil {
			log.Error("kafka sink unavailable", "error", err.Error())
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sinks = append(sinks, inbox)
	}
	notifier := notify.NewPublisher(sinks)

	vaultSvc := vault.NewService(evidenceStore, notifier, m)
	requestSvc := requests.NewService(requestStore, evidenceStore, notifier, m)

	handler := httptransport.NewHandler(log, vaultSvc, requestSvc, memorySink)
	router := httptransport.NewRouter(handler, m, cfg.ActorName)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting evidence-vault", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if kafkaSink != nil {
		worker := notify.NewWorker(kafkaSink, inbox)
		g.Go(func() error {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}
