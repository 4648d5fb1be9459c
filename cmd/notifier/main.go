package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlazareva/education-platform/internal/config"
	"github.com/mlazareva/education-platform/internal/lib/rabbitmq"
	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/lib/smtp"
	"github.com/mlazareva/education-platform/internal/services/notifier"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("starting notifier", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := rabbitmq.Connect(cfg.URLRabbit, 5, 3*time.Second)
	if err != nil {
		logger.Error("failed to connect to RabbitMQ", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		_ = conn.Close()
	}()

	queues := rabbitmq.GetPaymentQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		logger.Error("failed to setup RabbitMQ channel", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		_ = ch.Close()
	}()

	transport := smtp.NewTransport(cfg, logger)
	service := notifier.NewNotifierService(transport, logger)

	if err := rabbitmq.ConsumerMessage(ctx, ch, queues[0].QueueName, service.SendPaymentReceipt); err != nil {
		logger.Error("failed to start consumer", sl.Err(err))
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("notifier stopped gracefully")
}
