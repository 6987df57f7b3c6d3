package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/intwaza/online-marketplace/internal/mailer"
	"github.com/intwaza/online-marketplace/internal/queue"
	"github.com/intwaza/online-marketplace/internal/repository"
	"github.com/intwaza/online-marketplace/internal/worker"
	"github.com/intwaza/online-marketplace/pkg/config"
	"github.com/intwaza/online-marketplace/pkg/db"
	"github.com/intwaza/online-marketplace/pkg/mq"
	"github.com/intwaza/online-marketplace/pkg/obs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	shutdown := obs.InitTracer("marketplace-worker")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	gdb := db.Open(cfg.PGDSN)

	mail := mailer.NewSMTP(mailer.Config{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		User:        cfg.SMTPUser,
		Pass:        cfg.SMTPPass,
		From:        cfg.SMTPFrom,
		FrontendURL: cfg.FrontendURL,
	})

	consumer, err := mq.NewConsumer(cfg.RabbitURL, cfg.MQExchange, cfg.OrderQueue,
		[]string{queue.RKOrderPlaced, queue.RKOrderStatus}, cfg.OrderPrefetch)
	if err != nil {
		log.Fatalf("connect rabbitmq: %v", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	msgs, err := consumer.Deliveries(ctx)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	proc := worker.NewProcessor(
		repository.NewProductRepo(gdb),
		repository.NewOrderRepo(gdb),
		mail,
	)

	log.Printf("[worker] consuming queue %s", cfg.OrderQueue)
	if err := proc.Run(ctx, msgs); err != nil {
		log.Fatalf("worker: %v", err)
	}
	log.Printf("[worker] shutting down")
}
