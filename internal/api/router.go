package api

import (
	"log"
	"net/http"

	_ "github.com/rohits-web03/quickdrop/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/quickdrop/internal/api/handlers"
	"github.com/rohits-web03/quickdrop/internal/api/middleware"
	"github.com/rohits-web03/quickdrop/internal/config"
	"github.com/rs/cors"
)

func SetupRouter(store handlers.LogStore) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	logs := handlers.NewLogHandler(store)

	mainMux.HandleFunc("GET /api/health", handlers.Health)
	mainMux.HandleFunc("GET /api/logs", logs.ListLogs)
	mainMux.HandleFunc("POST /api/logs", logs.CreateLog)

	mainMux.HandleFunc("GET /dashboard", logs.Dashboard)
	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
