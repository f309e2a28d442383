package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devportfolio/backend/internal/handler"
	"github.com/devportfolio/backend/internal/logging"
	"github.com/devportfolio/backend/internal/repository"
	"github.com/devportfolio/backend/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "devportfolio"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		slog.Warn("ADMIN_PASSWORD is not set; admin endpoints accept requests without the header")
	}

	frontendURL := os.Getenv("FRONTEND_URL")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := repository.Connect(ctx, mongoURI)
	cancel()
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	slog.Info("connected to MongoDB", "db", dbName)

	db := client.Database(dbName)
	projectRepo := repository.NewMongoProjectRepository(db)
	contactRepo := repository.NewMongoContactRepository(db)
	projectService := service.NewProjectService(projectRepo)
	contactService := service.NewContactService(contactRepo)

	h := handler.New(frontendURL)
	projectHandler := handler.NewProjectHandler(projectService)
	contactHandler := handler.NewContactHandler(contactService)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler.Routes(h, projectHandler, contactHandler, adminPassword),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
