// internal/httpserver/server.go
//
// HTTP wiring for the quintle API server.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Validation failures map to stable error codes so clients can re-prompt
//     the same turn without parsing message text.
//   - The solution is never present in a response while a game is in play.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/quintle/quintle/internal/game"
	"github.com/quintle/quintle/internal/store"
	"github.com/quintle/quintle/internal/words"
)

// Server bundles the router, the session store, and the dictionary.
type Server struct {
	r      *chi.Mux
	store  store.Store
	dict   *words.Dictionary
	origin string
}

// New constructs a Server, installs middleware, and registers routes.
// origin is the single CORS origin allowed to call the API.
func New(st store.Store, dict *words.Dictionary, origin string) *Server {
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, origin: origin}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"quintle","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.dict.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleState)

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

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Solution string `json:"solution"` // optional fixed solution (testing)
}
type newGameRes struct {
	GameID string `json:"gameId"`
}

// handleNewGame creates a new in-memory session. An invalid explicit
// solution rejects the request; there is no silent fallback to a random word.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	sess, err := game.New(s.dict, req.Solution)
	if err != nil {
		http.Error(w, `{"error":"invalid_solution"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Guess         game.Guess  `json:"guess"`
	Status        game.Status `json:"status"`
	Turn          int         `json:"turn"`
	WrongLetters  string      `json:"wrongLetters"`
	UnusedLetters string      `json:"unusedLetters"`
	Message       string      `json:"message,omitempty"` // set once terminal
}

// handleGuess applies one guess to a stored session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	g, status, err := sess.SubmitGuess(req.Guess)
	if err != nil {
		code, httpStatus := errorCode(err)
		http.Error(w, `{"error":"`+code+`"}`, httpStatus)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	res := guessRes{
		Guess:         g,
		Status:        status,
		Turn:          sess.Turn(),
		WrongLetters:  sess.WrongLetters(),
		UnusedLetters: sess.UnusedLetters(),
	}
	if status != game.StatusPlaying {
		res.Message = sess.EndMessage(status, sess.Turn())
	}
	_ = json.NewEncoder(w).Encode(res)
}

// stateRes payload for GET /game/{id}.
type stateRes struct {
	GameID        string       `json:"gameId"`
	Status        game.Status  `json:"status"`
	Turn          int          `json:"turn"`
	History       []game.Guess `json:"history"`
	WrongLetters  string       `json:"wrongLetters"`
	UnusedLetters string       `json:"unusedLetters"`
	Solution      string       `json:"solution,omitempty"` // set once terminal
}

// handleState renders the full display data for one session.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(stateRes{
		GameID:        sess.ID,
		Status:        sess.Status(),
		Turn:          sess.Turn(),
		History:       sess.History(),
		WrongLetters:  sess.WrongLetters(),
		UnusedLetters: sess.UnusedLetters(),
		Solution:      sess.Reveal(),
	})
}

// errorCode maps engine errors to stable API codes and HTTP statuses.
func errorCode(err error) (string, int) {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		return "wrong_length", http.StatusBadRequest
	case errors.Is(err, game.ErrUnknownWord):
		return "unknown_word", http.StatusBadRequest
	case errors.Is(err, game.ErrDuplicateGuess):
		return "duplicate_guess", http.StatusBadRequest
	case errors.Is(err, game.ErrGameOver):
		return "game_over", http.StatusConflict
	default:
		return "internal", http.StatusInternalServerError
	}
}
