package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/brewgator/sats-units/internal/config"
	"github.com/brewgator/sats-units/internal/logconfig"
	"github.com/brewgator/sats-units/pkg/units"
)

type Server struct {
	formatter *units.Formatter
	router    *mux.Router
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var (
		port  = flag.String("port", cfg.Port, "Port to serve on")
		host  = flag.String("host", cfg.Host, "Host to serve on")
		debug = flag.Bool("debug", cfg.Debug, "Enable debug logging")
	)
	flag.Parse()
	cfg.Host, cfg.Port, cfg.Debug = *host, *port, *debug

	logconfig.Configure(cfg.Debug)

	server := NewServer(units.NewFormatter(cfg.Locale))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	handler := c.Handler(server.router)

	log.WithFields(log.Fields{
		"addr":   cfg.Addr(),
		"locale": cfg.Locale.String(),
	}).Info("Units API starting")

	log.Fatal(http.ListenAndServe(cfg.Addr(), handler))
}

func NewServer(formatter *units.Formatter) *Server {
	s := &Server{
		formatter: formatter,
		router:    mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(logRequests)

	api := s.router.PathPrefix("/api").Subrouter()

	// Conversion endpoints
	api.HandleFunc("/convert/from-sats", s.handleFromSats).Methods("GET")
	api.HandleFunc("/convert/to-sats", s.handleToSats).Methods("GET")
	api.HandleFunc("/convert", s.handleConvert).Methods("GET")
	api.HandleFunc("/format", s.handleFormat).Methods("GET")

	// Health check
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) handleFromSats(w http.ResponseWriter, r *http.Request) {
	sats := r.URL.Query().Get("sats")
	if err := units.ValidateSats(sats); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	numeric, err := units.FromSatsNumeric(sats)
	if err != nil {
		log.Warnf("handleFromSats: %v", err)
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, APIResponse{Success: true, Data: map[string]interface{}{
		"sats":    sats,
		"bitcoin": units.FromSats(sats),
		"numeric": numeric,
	}})
}

func (s *Server) handleToSats(w http.ResponseWriter, r *http.Request) {
	bitcoin := r.URL.Query().Get("bitcoin")
	if bitcoin == "" {
		s.writeError(w, http.StatusBadRequest, "Missing bitcoin parameter")
		return
	}

	s.writeJSON(w, APIResponse{Success: true, Data: map[string]interface{}{
		"bitcoin": bitcoin,
		"sats":    units.ToSats(bitcoin),
	}})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := units.ParseDenomination(q.Get("from"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := units.ParseDenomination(q.Get("to"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := units.Convert(q.Get("value"), from, to)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, APIResponse{Success: true, Data: map[string]interface{}{
		"value":  q.Get("value"),
		"from":   from.String(),
		"to":     to.String(),
		"result": result,
	}})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	if value == "" {
		s.writeError(w, http.StatusBadRequest, "Missing value parameter")
		return
	}

	s.writeJSON(w, APIResponse{Success: true, Data: map[string]interface{}{
		"value":     value,
		"formatted": s.formatter.Format(value),
	}})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now(),
		},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("Failed to encode JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error:   message,
	}); err != nil {
		log.Errorf("Failed to encode error response (status %d, message %q): %v", status, message, err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": fmt.Sprint(time.Since(start)),
		}).Debug("request")
	})
}
