package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"qgatesim/circuit"
	"qgatesim/quantum"
)

// runRequest is the circuit submission body. Either Source (textual
// format) or NumQubits+Ops may be supplied; Source wins when both are
// present.
type runRequest struct {
	NumQubits int          `json:"num_qubits,omitempty"`
	Ops       []circuit.Op `json:"ops,omitempty"`
	Source    string       `json:"source,omitempty"`
	Shots     int          `json:"shots"`
	Seed      *uint64      `json:"seed,omitempty"`
}

type runResponse struct {
	RunID         string             `json:"run_id"`
	NumQubits     int                `json:"num_qubits"`
	Frequencies   map[string]float64 `json:"frequencies"`
	Probabilities []float64          `json:"probabilities"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRunCircuit(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	var c *circuit.Circuit
	if req.Source != "" {
		parsed, err := circuit.Parse(req.Source)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err)
			return
		}
		c = parsed
	} else {
		c = &circuit.Circuit{NumQubits: req.NumQubits, Ops: req.Ops}
		if err := c.Validate(); err != nil {
			s.respondError(w, http.StatusBadRequest, err)
			return
		}
	}

	if c.NumQubits > s.cfg.MaxQubits {
		s.respondError(w, http.StatusBadRequest,
			fmt.Errorf("register of %d qubits exceeds the configured cap of %d", c.NumQubits, s.cfg.MaxQubits))
		return
	}
	if req.Shots <= 0 || req.Shots > s.cfg.MaxShots {
		s.respondError(w, http.StatusBadRequest,
			fmt.Errorf("shots must be in 1..%d, got %d", s.cfg.MaxShots, req.Shots))
		return
	}

	state, err := c.Run()
	if err != nil {
		s.respondSimError(w, err)
		return
	}

	freqs, err := s.sample(state, req.Shots, req.Seed)
	if err != nil {
		s.respondSimError(w, err)
		return
	}

	runID := uuid.NewString()
	s.log.Info().
		Str("run_id", runID).
		Int("qubits", c.NumQubits).
		Int("ops", len(c.Ops)).
		Int("shots", req.Shots).
		Msg("Circuit executed")

	s.respondJSON(w, http.StatusOK, runResponse{
		RunID:         runID,
		NumQubits:     c.NumQubits,
		Frequencies:   freqs,
		Probabilities: state.Probabilities(),
	})
}

func (s *Server) handleBell(w http.ResponseWriter, r *http.Request) {
	shots := 1024
	if v := r.URL.Query().Get("shots"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid shots %q", v))
			return
		}
		shots = n
	}
	if shots <= 0 || shots > s.cfg.MaxShots {
		s.respondError(w, http.StatusBadRequest,
			fmt.Errorf("shots must be in 1..%d, got %d", s.cfg.MaxShots, shots))
		return
	}

	var seed *uint64
	if v := r.URL.Query().Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid seed %q", v))
			return
		}
		seed = &n
	}

	state := quantum.CreateBellState()
	freqs, err := s.sample(state, shots, seed)
	if err != nil {
		s.respondSimError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, runResponse{
		RunID:         uuid.NewString(),
		NumQubits:     state.NumQubits,
		Frequencies:   freqs,
		Probabilities: state.Probabilities(),
	})
}

func (s *Server) sample(state *quantum.StateVector, shots int, seed *uint64) (map[string]float64, error) {
	if seed != nil {
		return quantum.NewSampler(*seed).Measure(state, shots)
	}
	return state.Measure(shots)
}

// respondSimError maps simulator error classes onto HTTP status codes.
func (s *Server) respondSimError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, quantum.ErrInvalidArgument) ||
		errors.Is(err, quantum.ErrDimensionMismatch) ||
		errors.Is(err, quantum.ErrNonUnitaryGate) {
		status = http.StatusBadRequest
	}
	s.respondError(w, status, err)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("Request failed")
	} else {
		s.log.Warn().Err(err).Msg("Request rejected")
	}
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}
