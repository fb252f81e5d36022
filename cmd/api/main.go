package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bibapi/internal/bib"
	"bibapi/internal/config"
	"bibapi/internal/httpx"
	"bibapi/internal/platform/ils"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst).TrustProxies(cfg.TrustedProxies...)
	defer rateLimiter.Close()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(cfg, rateLimiter),
		ReadHeaderTimeout: 5 * time.Second,
		// A fetch walks every member link with retries; leave room for it.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s (endpoint=%s)", cfg.Addr, cfg.EndpointURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func newRouter(cfg config.Config, rateLimiter *httpx.RateLimitMiddleware) http.Handler {
	client := ils.NewClient(ils.Options{
		EndpointURL:   cfg.EndpointURL,
		APIKey:        cfg.APIKey,
		Format:        cfg.Format,
		Timeout:       cfg.Timeout,
		RPS:           cfg.RPS,
		MaxAttempts:   cfg.MaxAttempts,
		BackoffFactor: cfg.BackoffFactor,
	})
	fetcher := bib.NewFetcher(bib.NewILSClient(client), bib.FetcherConfig{
		Verbose:       cfg.Verbose,
		StrictPayload: cfg.StrictPayload,
	})
	recordHandler := bib.NewHTTPHandler(bib.NewService(fetcher))

	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/{$}", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet: rateLimiter.Middleware(http.HandlerFunc(recordHandler.Page)),
	}))
	router.Handle("/v1/records", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet: rateLimiter.Middleware(http.HandlerFunc(recordHandler.List)),
	}))

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware,
	)
}
