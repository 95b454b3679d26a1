/*
main.go - Wage engine server entrypoint

PURPOSE:
  Wires the SQLite stores, holiday calendar and engine behind the HTTP API
  and runs the server with graceful shutdown.

CONFIGURATION (flags, with env fallback):
  -port  PORT     Listen port            (default 8080)
  -db    DB_PATH  SQLite database file   (default wage.db)

A .env file in the working directory is loaded if present.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vaktlogg/wage-engine/api"
	"github.com/vaktlogg/wage-engine/calendar"
	"github.com/vaktlogg/wage-engine/engine"
	"github.com/vaktlogg/wage-engine/store/sqlite"
	"github.com/vaktlogg/wage-engine/wage"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	port := flag.String("port", envOr("PORT", "8080"), "listen port")
	dbPath := flag.String("db", envOr("DB_PATH", "wage.db"), "SQLite database file")
	flag.Parse()

	st, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer st.Close()

	cal := calendar.New()
	eng := engine.New(st, st, st, cal, wage.DefaultCalcPolicy())
	handler := api.NewHandler(eng, cal)

	srv := &http.Server{
		Addr:    ":" + *port,
		Handler: api.NewRouter(handler),
	}

	go func() {
		log.Printf("wage engine listening on :%s (db %s)", *port, *dbPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
