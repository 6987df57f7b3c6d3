package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/intwaza/online-marketplace/internal/gateway"
	"github.com/intwaza/online-marketplace/internal/httpapi"
	"github.com/intwaza/online-marketplace/internal/mailer"
	"github.com/intwaza/online-marketplace/internal/repository"
	"github.com/intwaza/online-marketplace/internal/service"
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

	shutdown := obs.InitTracer("marketplace-api")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	gdb := db.Open(cfg.PGDSN)
	if err := repository.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	users := repository.NewUserRepo(gdb)
	stores := repository.NewStoreRepo(gdb)
	categories := repository.NewCategoryRepo(gdb)
	products := repository.NewProductRepo(gdb)
	orders := repository.NewOrderRepo(gdb)
	payments := repository.NewPaymentRepo(gdb)
	reviews := repository.NewReviewRepo(gdb)

	mail := mailer.NewSMTP(mailer.Config{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		User:        cfg.SMTPUser,
		Pass:        cfg.SMTPPass,
		From:        cfg.SMTPFrom,
		FrontendURL: cfg.FrontendURL,
	})

	pub, err := mq.NewPublisher(cfg.RabbitURL, cfg.MQExchange)
	if err != nil {
		log.Fatalf("connect rabbitmq: %v", err)
	}
	defer pub.Close()

	var gw gateway.Gateway
	switch cfg.PaymentDriver {
	case "omise":
		gw, err = gateway.NewOmise(cfg.OmisePublicKey, cfg.OmiseSecretKey)
		if err != nil {
			log.Fatalf("init omise gateway: %v", err)
		}
	default:
		gw = gateway.NewMock()
	}

	tokenTTL := time.Duration(cfg.JWTExpireMin) * time.Minute

	authSvc := service.NewAuthSvc(users, mail, cfg.AdminEmail, tokenTTL)
	userSvc := service.NewUserSvc(users)
	storeSvc := service.NewStoreSvc(stores)
	categorySvc := service.NewCategorySvc(categories)
	productSvc := service.NewProductSvc(products, stores, categories)
	orderSvc := service.NewOrderSvc(orders, products, stores, pub)
	paymentSvc := service.NewPaymentSvc(payments, orders, gw)
	reviewSvc := service.NewReviewSvc(reviews, products, orders)

	if err := authSvc.SeedAdmin(context.Background(), cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
		log.Printf("seed admin: %v", err)
	}

	r := httpapi.NewRouter(httpapi.Handlers{
		Auth:     httpapi.NewAuthHandler(authSvc),
		Users:    httpapi.NewUserHandler(userSvc),
		Stores:   httpapi.NewStoreHandler(storeSvc),
		Category: httpapi.NewCategoryHandler(categorySvc),
		Products: httpapi.NewProductHandler(productSvc),
		Orders:   httpapi.NewOrderHandler(orderSvc),
		Payments: httpapi.NewPaymentHandler(paymentSvc),
		Reviews:  httpapi.NewReviewHandler(reviewSvc),
	})

	log.Printf("[api] listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
