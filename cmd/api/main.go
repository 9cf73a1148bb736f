package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-mailer/internal/infra/database"
	"github.com/xavierca1/ligue-mailer/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-mailer/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-mailer/internal/infra/mail"
	"github.com/xavierca1/ligue-mailer/internal/infra/queue"
	"github.com/xavierca1/ligue-mailer/internal/infra/report"
	"github.com/xavierca1/ligue-mailer/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	reportSink, err := report.NewFilesystemSink(envOr("REPORTS_DIR", "./reports"))
	if err != nil {
		log.Fatal(err)
	}

	// 1. Repositories
	listRepo := database.NewListRepository(db)
	subscriberRepo := database.NewSubscriberRepository(db)

	// 2. Adapters
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	sender := mail.NewSMTPSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
		envOr("MAIL_TEMPLATE", "templates/campaign.html"),
	)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// 3. UseCases
	createListUC := usecase.NewCreateListUseCase(listRepo)
	importUC := usecase.NewImportSubscribersUseCase(listRepo, subscriberRepo, reportSink)
	sendCampaignUC := usecase.NewSendCampaignUseCase(listRepo, subscriberRepo, sender)
	unsubscribeUC := usecase.NewUnsubscribeUseCase(subscriberRepo)

	// 4. Worker (consumes queued campaign jobs)
	worker := queue.NewWorker(rabbitMQ.Ch, sendCampaignUC)
	go worker.Start(queue.QueueName)

	// 5. Handlers
	listHandler := handlers.NewListHandler(createListUC, listRepo)
	subscriberHandler := handlers.NewSubscriberHandler(importUC, unsubscribeUC, envOr("UPLOAD_DIR", "./tmp/uploads"))
	campaignHandler := handlers.NewCampaignHandler(sendCampaignUC, producer)
	reportHandler := handlers.NewReportHandler(reportSink)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/lists", listHandler.Create)
		r.Get("/lists", listHandler.List)
		r.Get("/lists/{listID}", listHandler.Get)
		r.Post("/lists/{listID}/subscribers", subscriberHandler.Import)
		r.Post("/lists/{listID}/campaigns", campaignHandler.Send)
		r.Get("/unsubscribe/{subscriberID}", subscriberHandler.Unsubscribe)
		r.Get("/reports/{name}", reportHandler.Download)
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("mailer API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
