package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"cargoways/internal/game"
	"cargoways/internal/models"

	"github.com/go-chi/chi/v5"
)

// Server wraps one engine in a mutex for per-session HTTP access. The engine
// itself is single-threaded; this guard is the embedding layer's concern.
type Server struct {
	mu     sync.Mutex
	engine *game.Engine
	hub    *Hub
}

// New constructs the HTTP router wired to the game engine.
func New(engine *game.Engine) http.Handler {
	s := &Server{engine: engine, hub: NewHub()}
	go s.hub.Run()

	r := chi.NewRouter()
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/state", s.handleState)
	r.Get("/models", s.handleModels)
	r.Get("/reachability", s.handleReachability)
	r.Post("/advance", s.handleAdvance)
	r.Post("/execute", s.handleExecute)
	r.Post("/planes/buy", s.handleBuyPlane)
	r.Post("/planes/{id}/sell", s.handleSellPlane)
	r.Post("/planes/{id}/refuel", s.handleRefuel)
	r.Post("/planes/{id}/maintenance", s.handleMaintenance)
	r.Post("/planes/{id}/depart", s.handleDepart)
	r.Post("/orders/load", s.handleLoadOrders)
	r.Post("/orders/unload", s.handleUnloadOrders)
	r.Post("/orders/unload_all", s.handleUnloadAll)
	r.Post("/save", s.handleSave)
	r.Post("/load", s.handleLoad)
	r.Get("/ws", s.handleWS)

	return r
}

// broadcastLocked pushes the current observation to every websocket
// subscriber. Callers hold s.mu.
func (s *Server) broadcastLocked() {
	obs := s.engine.Observe()
	data, err := json.Marshal(obs)
	if err != nil {
		return
	}
	s.hub.Broadcast <- data
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ServeWs(s.hub, w, r)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	obs := s.engine.Observe()
	s.mu.Unlock()
	writeJSON(w, obs)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := s.engine.ListModels()
	s.mu.Unlock()
	writeJSON(w, list)
}

func (s *Server) handleReachability(w http.ResponseWriter, r *http.Request) {
	plane, ok1 := queryInt(r, "plane")
	dest, ok2 := queryInt(r, "dest")
	if !ok1 || !ok2 {
		writeJSONError(w, http.StatusBadRequest, "plane and dest query params required")
		return
	}
	s.mu.Lock()
	result, err := s.engine.PlaneReachability(plane, dest)
	s.mu.Unlock()
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hours uint64 `json:"hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Hours == 0 {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.mu.Lock()
	s.engine.Advance(models.GameTime(req.Hours))
	obs := s.engine.Observe()
	s.broadcastLocked()
	s.mu.Unlock()
	writeJSON(w, obs)
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Command string `json:"command"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Command == "" {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.mu.Lock()
	output, err := s.engine.Execute(req.Command)
	if err == nil {
		s.broadcastLocked()
	}
	log := s.engine.DrainLog()
	s.mu.Unlock()
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, map[string]any{"output": output, "log": log})
}

func (s *Server) handleBuyPlane(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Model   string `json:"model"`
		Airport int    `json:"airport_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Model == "" {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.withEngine(w, func() error {
		return s.engine.BuyPlane(req.Model, req.Airport)
	})
}

func (s *Server) handleSellPlane(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "bad plane id")
		return
	}
	s.mu.Lock()
	refund, err := s.engine.SellPlane(id)
	if err == nil {
		s.broadcastLocked()
	}
	s.mu.Unlock()
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, map[string]float64{"refund": refund})
}

func (s *Server) handleRefuel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "bad plane id")
		return
	}
	s.withEngine(w, func() error { return s.engine.RefuelPlane(id) })
}

func (s *Server) handleMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "bad plane id")
		return
	}
	s.withEngine(w, func() error { return s.engine.MaintenanceOnAirplane(id) })
}

func (s *Server) handleDepart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "bad plane id")
		return
	}
	var req struct {
		Dest int `json:"dest"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.withEngine(w, func() error { return s.engine.DepartPlane(id, req.Dest) })
}

func (s *Server) handleLoadOrders(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Orders []int `json:"orders"`
		Plane  int   `json:"plane_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Orders) == 0 {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.withEngine(w, func() error { return s.engine.LoadOrders(req.Orders, req.Plane) })
}

func (s *Server) handleUnloadOrders(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Orders []int `json:"orders"`
		Plane  int   `json:"plane_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Orders) == 0 {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.withEngine(w, func() error { return s.engine.UnloadOrders(req.Orders, req.Plane) })
}

func (s *Server) handleUnloadAll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Plane int `json:"plane_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.withEngine(w, func() error { return s.engine.UnloadAll(req.Plane) })
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.mu.Lock()
	err := s.engine.SaveGame(req.Name)
	s.mu.Unlock()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, map[string]string{"saved": req.Name})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	loaded, err := game.LoadGame(req.Name)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	*s.engine = *loaded
	obs := s.engine.Observe()
	s.broadcastLocked()
	s.mu.Unlock()
	writeJSON(w, obs)
}

// withEngine runs a mutating action and responds with the fresh observation
// on success.
func (s *Server) withEngine(w http.ResponseWriter, action func() error) {
	s.mu.Lock()
	err := action()
	var obs any
	if err == nil {
		obs = s.engine.Observe()
		s.broadcastLocked()
	}
	s.mu.Unlock()
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, obs)
}

// ===== helpers =====

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func pathInt(r *http.Request, key string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil {
		return 0, false
	}
	return v, true
}

func queryInt(r *http.Request, key string) (int, bool) {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0, false
	}
	return v, true
}
