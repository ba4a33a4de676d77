package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"calcmcp/config"
	"calcmcp/metrics"
	"calcmcp/models"
	"calcmcp/service/calculator"
)

type WebInterface struct {
	service  *calculator.Service
	cfg      *config.Config
	upgrader websocket.Upgrader
}

func NewWebInterface(service *calculator.Service, cfg *config.Config) *WebInterface {
	return &WebInterface{
		service: service,
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Middleware для метрик
func metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrapper для захвата статус кода
		wrapped := &responseWriter{ResponseWriter: w, statusCode: 200}

		next(wrapped, r)

		duration := time.Since(start).Seconds()

		metrics.HttpRequestsTotal.WithLabelValues(
			r.Method,
			r.URL.Path,
			strconv.Itoa(wrapped.statusCode),
		).Inc()

		metrics.HttpRequestDuration.WithLabelValues(
			r.Method,
			r.URL.Path,
		).Observe(duration)
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

type claims struct {
	Username string `json:"sub"`
	jwt.RegisteredClaims
}

func (w *WebInterface) createToken(username string) (string, error) {
	c := claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(60 * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(w.cfg.JWTSecret))
}

func (w *WebInterface) verifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(w.cfg.JWTSecret), nil
	})

	if err != nil {
		return "", err
	}

	if c, ok := token.Claims.(*claims); ok && token.Valid {
		return c.Username, nil
	}

	return "", fmt.Errorf("invalid token")
}

func (w *WebInterface) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(wr http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || len(authHeader) < 8 {
			http.Error(wr, "Missing authorization header", http.StatusUnauthorized)
			return
		}

		tokenString := authHeader[7:]
		username, err := w.verifyToken(tokenString)
		if err != nil {
			http.Error(wr, "Invalid token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("X-Username", username)
		next(wr, r)
	}
}

func (w *WebInterface) Start(addr string) error {
	mux := http.NewServeMux()

	// API routes с метриками
	mux.HandleFunc("/api/login", metricsMiddleware(w.handleLogin))
	mux.HandleFunc("/api/calculate", metricsMiddleware(w.authMiddleware(w.handleCalculate)))
	mux.HandleFunc("/api/history", metricsMiddleware(w.handleHistory))
	mux.HandleFunc("/api/clear-history", metricsMiddleware(w.authMiddleware(w.handleClearHistory)))

	// WebSocket для живых вычислений
	mux.HandleFunc("/ws", w.handleWebSocket)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	mux.HandleFunc("/health", func(wr http.ResponseWriter, r *http.Request) {
		wr.WriteHeader(http.StatusOK)
		wr.Write([]byte("OK"))
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(mux)

	log.Printf("Web интерфейс запущен на %s", addr)
	return http.ListenAndServe(addr, handler)
}

func (w *WebInterface) handleLogin(wr http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(wr, "only POST", http.StatusBadRequest)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(wr, "invalid body", http.StatusBadRequest)
		return
	}

	if req.Username != w.cfg.Username || req.Password != w.cfg.Password {
		http.Error(wr, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := w.createToken(req.Username)
	if err != nil {
		http.Error(wr, "token generation failed", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(wr).Encode(models.LoginResponse{Token: token})
}

func (w *WebInterface) handleCalculate(wr http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(wr, "only POST", http.StatusBadRequest)
		return
	}

	var req models.CalculateRequest
	json.NewDecoder(r.Body).Decode(&req)

	result, err := w.service.Calculate(req.Expression)
	if err != nil {
		wr.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(wr).Encode(models.ErrorResponse{Error: calculator.FormatError(err)})
		return
	}

	json.NewEncoder(wr).Encode(models.CalculateResponse{Result: result})
}

func (w *WebInterface) handleHistory(wr http.ResponseWriter, _ *http.Request) {
	commands := w.service.GetLastCommands(10)
	json.NewEncoder(wr).Encode(commands)
}

func (w *WebInterface) handleClearHistory(wr http.ResponseWriter, _ *http.Request) {
	count := w.service.ClearHistory()
	json.NewEncoder(wr).Encode(map[string]int{"cleared": count})
}

// handleWebSocket - цикл живых вычислений: клиент шлет выражения,
// сервер отвечает результатом на каждое
func (w *WebInterface) handleWebSocket(wr http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if _, err := w.verifyToken(token); err != nil {
		http.Error(wr, "Invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := w.upgrader.Upgrade(wr, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	metrics.ActiveWebSocketConnections.Inc()
	defer metrics.ActiveWebSocketConnections.Dec()

	for {
		var req models.CalculateRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		result, err := w.service.Calculate(req.Expression)
		if err != nil {
			if err := conn.WriteJSON(models.ErrorResponse{Error: calculator.FormatError(err)}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(models.CalculateResponse{Result: result}); err != nil {
			return
		}
	}
}
