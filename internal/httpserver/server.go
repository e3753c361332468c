// internal/httpserver/server.go
//
// HTTP server wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request
//     IDs, per-client rate limiting).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session endpoints: POST /session/new,
//     POST /session/{id}/feedback, GET /session/{id}/suggest,
//     DELETE /session/{id}.
//
// Notes:
//   - The solver core stays pure; this layer only decodes requests, loads
//     the session from the store, and threads values through the core.
//   - When JWT_SECRET is set, session endpoints require the token issued at
//     session creation (see auth.go). With no secret the API is open, which
//     is the development default.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/lexio/wordle-assist/internal/solver"
	"github.com/lexio/wordle-assist/internal/store"
)

const (
	defaultSuggestions = 4
	maxSuggestions     = 50
)

// Server bundles router, session store, dictionary snapshot, and the
// commonality oracle.
type Server struct {
	r      *chi.Mux
	store  store.Store
	dict   []string
	oracle solver.Commonality
	secret string // JWT secret; empty disables session tokens

	limMu    sync.Mutex
	limiters map[string]*rate.Limiter
}

// New constructs a Server, installs middleware, and registers routes.
// dict is the dictionary snapshot every new session starts from; oracle is
// the commonality lookup used for suggestions.
func New(st store.Store, dict []string, oracle solver.Commonality) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		store:    st,
		dict:     dict,
		oracle:   oracle,
		secret:   os.Getenv("JWT_SECRET"),
		limiters: make(map[string]*rate.Limiter),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS
	s.r.Use(s.rateLimit)                     // per-client token bucket

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-assist","endpoints":["/health","POST /session/new","POST /session/{id}/feedback","GET /session/{id}/suggest","DELETE /session/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"dictionary": len(s.dict)})
	})

	// Session endpoints. Creation is open; the rest require the session
	// token when a secret is configured.
	s.r.Post("/session/new", s.handleNewSession)
	s.r.Route("/session/{id}", func(r chi.Router) {
		r.Use(s.withSessionToken())
		r.Post("/feedback", s.handleFeedback)
		r.Get("/suggest", s.handleSuggest)
		r.Delete("/", s.handleDelete)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getLimiter returns a rate limiter for the given key (usually client IP).
func (s *Server) getLimiter(key string) *rate.Limiter {
	s.limMu.Lock()
	defer s.limMu.Unlock()
	if lim, ok := s.limiters[key]; ok {
		return lim
	}
	rps := 20
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_RPS")); err == nil && v > 0 {
		rps = v
	}
	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 2*rps)
	s.limiters[key] = lim
	return lim
}

// rateLimit enforces per-client request rates using a token bucket.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.getLimiter(r.RemoteAddr).Allow() {
			http.Error(w, `{"error":"rate_limited"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SESSIONS -----------------------------------

// newSessionRes is the payload for POST /session/new.
type newSessionRes struct {
	SessionID  string `json:"sessionId"`
	Token      string `json:"token,omitempty"`
	Candidates int    `json:"candidates"`
}

// handleNewSession starts a solver session over the dictionary snapshot and
// issues a session token when a secret is configured.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := solver.NewSession(s.dict)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	res := newSessionRes{SessionID: sess.ID, Candidates: len(sess.Candidates)}
	if s.secret != "" {
		tok, _, err := s.signSessionToken(sess.ID)
		if err != nil {
			log.Error().Err(err).Msg("sign session token")
			http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
			return
		}
		res.Token = tok
	}
	log.Info().Str("sessionId", sess.ID).Int("candidates", res.Candidates).Msg("session started")
	_ = json.NewEncoder(w).Encode(res)
}

// feedbackReq/Res payloads for POST /session/{id}/feedback.
// Feedback uses the wire encoding: '-' absent, 'y' present, 'g' correct.
type feedbackReq struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}
type feedbackRes struct {
	Remaining int  `json:"remaining"`
	Exhausted bool `json:"exhausted"`
}

// handleFeedback narrows a session's candidate set with one observation.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	fb, err := solver.ParseFeedback(req.Feedback)
	if err != nil {
		writeInvalidInput(w, err)
		return
	}
	remaining, err := sess.Apply(req.Guess, fb)
	if err != nil {
		if errors.Is(err, solver.ErrInvalidInput) {
			writeInvalidInput(w, err)
			return
		}
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("apply feedback")
		http.Error(w, `{"error":"apply_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("sessionId", sess.ID).
		Str("guess", req.Guess).
		Str("feedback", fb.String()).
		Int("remaining", remaining).
		Msg("feedback applied")
	_ = json.NewEncoder(w).Encode(feedbackRes{Remaining: remaining, Exhausted: sess.Exhausted()})
}

// suggestRes is the payload for GET /session/{id}/suggest.
type suggestRes struct {
	Suggestions []solver.ScoredWord `json:"suggestions"`
	Remaining   int                 `json:"remaining"`
}

// handleSuggest ranks the session's current candidates and returns the top
// k (?k=N, default 4, capped). An exhausted session yields an empty list.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	k := defaultSuggestions
	if v := r.URL.Query().Get("k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, `{"error":"invalid_input","detail":"k must be an integer"}`, http.StatusBadRequest)
			return
		}
		k = n
	}
	if k > maxSuggestions {
		k = maxSuggestions
	}

	_ = json.NewEncoder(w).Encode(suggestRes{
		Suggestions: sess.Suggest(s.oracle, k),
		Remaining:   len(sess.Candidates),
	})
}

// handleDelete abandons a session.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	log.Info().Str("sessionId", id).Msg("session abandoned")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// writeInvalidInput reports a caller contract violation with the offending
// detail, never a 500.
func writeInvalidInput(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":  "invalid_input",
		"detail": err.Error(),
	})
}
