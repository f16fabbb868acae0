package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/session"
	"fintrack/internal/store"
	appweb "fintrack/web"
)

type Server struct {
	http.Server
	templates *template.Template

	expWriter store.ExpenseWriter
	expLister store.ExpenseLister

	settings *session.Settings
	budgets  core.BudgetTable
	brackets core.BracketTable

	rateLimiter *rateLimiter

	// Derived-data caches, invalidated whenever an expense is appended.
	snapshotCache *cache.LRUCache[core.BudgetSnapshot]
	logCache      *cache.LRUCache[core.ExpenseLog]
	cacheManager  *cache.Manager

	shutdownOnce sync.Once
}

// Simple in-memory rate limiter
type rateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	lastRequest time.Time
	requests    int
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientInfo),
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

// startCleanup runs periodic cleanup to remove stale client entries
func (rl *rateLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries removes client entries older than 10 minutes
func (rl *rateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		if rl.stopCleanup != nil {
			close(rl.stopCleanup)
		}
	})
}

func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]

	if !exists {
		rl.clients[clientIP] = &clientInfo{
			lastRequest: now,
			requests:    1,
		}
		return true
	}

	// Reset counter if more than 1 minute has passed
	if now.Sub(client.lastRequest) > time.Minute {
		client.requests = 1
		client.lastRequest = now
		return true
	}

	// Allow up to 60 requests per minute
	client.requests++
	client.lastRequest = now

	return client.requests <= 60
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, ew store.ExpenseWriter, lr store.ExpenseLister,
	settings *session.Settings, budgets core.BudgetTable, brackets core.BracketTable) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		expWriter:     ew,
		expLister:     lr,
		settings:      settings,
		budgets:       budgets,
		brackets:      brackets,
		rateLimiter:   newRateLimiter(),
		snapshotCache: cache.NewLRUCache[core.BudgetSnapshot](100, 5*time.Minute),
		logCache:      cache.NewLRUCache[core.ExpenseLog](10, 5*time.Minute),
		cacheManager:  cache.NewManager(),
	}

	s.cacheManager.Register(s.snapshotCache)
	s.cacheManager.Register(s.logCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.withSecurityHeaders(s.handleIndex))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/expenses", s.withSecurityHeaders(s.handleCreateExpense))
	mux.HandleFunc("/settings", s.withSecurityHeaders(s.handleUpdateSettings))
	// UI partials
	mux.HandleFunc("/ui/overview", s.withSecurityHeaders(s.handleOverview))
	mux.HandleFunc("/ui/budget", s.withSecurityHeaders(s.handleBudgetTable))
	mux.HandleFunc("/ui/savings", s.withSecurityHeaders(s.handleSavings))
	mux.HandleFunc("/ui/expenses", s.withSecurityHeaders(s.handleExpenseList))
	// Chart data
	mux.HandleFunc("/api/trend", s.withSecurityHeaders(s.handleTrend))
	mux.HandleFunc("/api/distribution", s.withSecurityHeaders(s.handleDistribution))
	mux.HandleFunc("/api/savings-chart", s.withSecurityHeaders(s.handleSavingsChart))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.cacheManager != nil {
			s.cacheManager.Stop()
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withSecurityHeaders adds security headers, rate limiting, and request logging to responses
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Extract client IP (considering proxies)
		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		// Rate limit mutations only
		if r.Method == http.MethodPost && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' https://unpkg.com https://cdn.jsdelivr.net 'unsafe-eval'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

type ctxKeyRequestID struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

const logCacheKey = "all"

func snapshotCacheKey(m core.Month) string {
	return strconv.Itoa(m.Year) + "-" + strconv.Itoa(m.Month)
}

// invalidateDerived drops every cached aggregate after an append.
func (s *Server) invalidateDerived(m core.Month) {
	s.snapshotCache.Delete(snapshotCacheKey(m))
	s.logCache.Delete(logCacheKey)
}

// getLog returns a point-in-time copy of the expense log, cached briefly.
func (s *Server) getLog(ctx context.Context) (core.ExpenseLog, error) {
	if log, found := s.logCache.Get(logCacheKey); found {
		slog.DebugContext(ctx, "Expense log cache hit", "count", log.Len())
		return log, nil
	}

	cctx, cancel := context.WithTimeout(ctx, 7*time.Second)
	defer cancel()
	log, err := s.expLister.Snapshot(cctx)
	if err != nil {
		return core.ExpenseLog{}, err
	}

	s.logCache.Set(logCacheKey, log)
	return log, nil
}

// getBudgetSnapshot evaluates the month's budget, cached per year-month.
func (s *Server) getBudgetSnapshot(ctx context.Context, asOf core.Month) (core.BudgetSnapshot, error) {
	key := snapshotCacheKey(asOf)
	if snap, found := s.snapshotCache.Get(key); found {
		slog.DebugContext(ctx, "Budget snapshot cache hit", "year", asOf.Year, "month", asOf.Month)
		return snap, nil
	}

	log, err := s.getLog(ctx)
	if err != nil {
		return core.BudgetSnapshot{}, err
	}

	snap := core.EvaluateBudget(log, s.budgets, asOf)
	s.snapshotCache.Set(key, snap)
	return snap, nil
}
