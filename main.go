package main

import (
	diagram "Towbar/internal/calc/diagram"
	autodesign "Towbar/internal/calc/premium/autodesign"
	batch "Towbar/internal/calc/premium/batch"
	exporter "Towbar/internal/calc/premium/exporter"
	importer "Towbar/internal/calc/premium/importer"
	recommend "Towbar/internal/calc/premium/recommend"
	report "Towbar/internal/calc/report"
	tongue "Towbar/internal/calc/tongue"
	httpx "Towbar/internal/httpx"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router) {
	limiter := httpx.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	tongueH := &tongue.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	exportH := &exporter.Handler{}
	recommendH := &recommend.Handler{}
	autoH := &autodesign.Handler{}

	api.HandleFunc("/tools/tongue/calc", tongueH.Calc).Methods("POST")
	api.HandleFunc("/tools/tongue/diagram", reportH.Diagram).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/batch/tongue", batchH.Tongue).Methods("POST")
	api.HandleFunc("/tools/import/tongue", importH.Tongue).Methods("POST")
	api.HandleFunc("/tools/export/tongue", exportH.Tongue).Methods("POST")
	api.HandleFunc("/tools/recommend/ballast", recommendH.Ballast).Methods("POST")
	api.HandleFunc("/tools/autodesign/axle", autoH.Axle).Methods("POST")

	api.HandleFunc("/tools/tongue/layout", func(w http.ResponseWriter, r *http.Request) {
		var input tongue.Config
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		res, err := tongue.Calculate(input)
		if err != nil {
			http.Error(w, "Calculation error", http.StatusBadRequest)
			return
		}
		lay, err := diagram.Build(input, res)
		if err != nil {
			http.Error(w, "Calculation error", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(lay)
	}).Methods("POST")

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./static/main"
	}
	mux.PathPrefix("/").
		Handler(http.FileServer(http.Dir(staticDir)))
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using process environment")
	}
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	mux := mux.NewRouter()
	log.Println("Starting server on", addr)
	HandleList(mux)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
