// Command stub serves an in-memory medicine API and task queue for local
// runs and load tests of the reminder service.
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medicine-reminder/loadtest/internal/stub"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	stub.NewHandler(stub.NewStorage()).Register(r)

	slog.Info("starting stub server", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("stub server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
