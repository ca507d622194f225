package xword

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	maxDocumentSize = 1 << 20  // 1 MB of JSON
	maxUploadSize   = 10 << 20 // 10 MB per photo
)

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// rateLimiter is a simple per-IP token bucket rate limiter.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*bucket
	rate     int           // tokens per interval
	interval time.Duration // refill interval
}

type bucket struct {
	tokens   int
	lastSeen time.Time
}

func newRateLimiter(rate int, interval time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*bucket),
		rate:     rate,
		interval: interval,
	}
	// Cleanup stale entries every minute.
	go func() {
		for {
			time.Sleep(time.Minute)
			rl.mu.Lock()
			for ip, b := range rl.visitors {
				if time.Since(b.lastSeen) > 5*time.Minute {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &bucket{tokens: rl.rate - 1, lastSeen: time.Now()}
		return true
	}

	// Refill tokens based on elapsed time.
	elapsed := time.Since(b.lastSeen)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		b.tokens += refill * rl.rate
		if b.tokens > rl.rate {
			b.tokens = rl.rate
		}
		b.lastSeen = time.Now()
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Server exposes the conversion pipeline and the puzzle library over HTTP.
type Server struct {
	mux      *http.ServeMux
	store    *Store
	gemini   *GeminiClient
	sse      *Broadcaster
	uploadRL *rateLimiter
	imageRL  *rateLimiter
}

// NewServer creates a configured HTTP server. gemini may be nil, which
// disables the photo extraction endpoint.
func NewServer(store *Store, gemini *GeminiClient) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		store:    store,
		gemini:   gemini,
		sse:      NewBroadcaster(),
		uploadRL: newRateLimiter(30, time.Minute), // 30 documents/min per IP
		imageRL:  newRateLimiter(5, time.Minute),  // 5 photos/min per IP
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/puzzles", s.handleCreatePuzzle)
	s.mux.HandleFunc("POST /api/puzzles/image", s.handleCreateFromImage)
	s.mux.HandleFunc("GET /api/puzzles", s.handleListPuzzles)
	s.mux.HandleFunc("GET /api/puzzles/{id}", s.handleGetPuzzle)
	s.mux.HandleFunc("GET /api/events", s.handleEvents)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	s.mux.ServeHTTP(w, r)
}

// POST /api/puzzles — convert an uploaded source document and save it.
func (s *Server) handleCreatePuzzle(w http.ResponseWriter, r *http.Request) {
	if !s.uploadRL.allow(r.RemoteAddr) {
		jsonError(w, "too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)
	var doc Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		jsonError(w, "request body must be a JSON puzzle document", http.StatusBadRequest)
		return
	}

	puzzle, err := ParseDocument(&doc)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.store.SavePuzzle(puzzle)
	s.announce(puzzle)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(puzzle)
}

// POST /api/puzzles/image — upload a photo, transcribe with Gemini, then
// run the result through the same conversion pipeline as a document upload.
func (s *Server) handleCreateFromImage(w http.ResponseWriter, r *http.Request) {
	if !s.imageRL.allow(r.RemoteAddr) {
		jsonError(w, "too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	if s.gemini == nil {
		jsonError(w, "photo extraction not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(w, "photo too large (max 10 MB)", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, "field 'image' is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !allowedMIME[mimeType] {
		jsonError(w, "accepted formats: JPEG or PNG", http.StatusBadRequest)
		return
	}

	imageData, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, "could not read the photo", http.StatusInternalServerError)
		return
	}

	doc, err := s.gemini.ExtractDocument(r.Context(), imageData, mimeType)
	if err != nil {
		log.Error("gemini extraction failed", "err", err)
		jsonError(w, "could not transcribe the puzzle photo", http.StatusInternalServerError)
		return
	}

	puzzle, err := ParseDocument(doc)
	if err != nil {
		log.Warn("extracted document rejected", "err", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.store.SavePuzzle(puzzle)
	s.announce(puzzle)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(puzzle)
}

// GET /api/puzzles — list all puzzles.
func (s *Server) handleListPuzzles(w http.ResponseWriter, _ *http.Request) {
	puzzles := s.store.ListPuzzles()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(puzzles)
}

// GET /api/puzzles/{id} — get a single puzzle.
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	puzzle := s.store.GetPuzzle(r.PathValue("id"))
	if puzzle == nil {
		jsonError(w, "puzzle not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(puzzle)
}

// GET /api/events — SSE stream of library events.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	s.sse.ServeSSE(w, r, func(c *client) {
		// Send the current library size on connect.
		evt, _ := json.Marshal(map[string]any{
			"type":  "library_state",
			"count": len(s.store.ListPuzzles()),
		})
		c.ch <- string(evt)
	})
}

// announce broadcasts a puzzle_added event to SSE clients.
func (s *Server) announce(p *Puzzle) {
	evt, _ := json.Marshal(map[string]string{
		"type":  "puzzle_added",
		"id":    p.ID,
		"title": p.Title,
	})
	s.sse.Broadcast(string(evt))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
