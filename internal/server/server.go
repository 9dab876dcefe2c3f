package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"

	"wot-tracker/internal/constants"
	"wot-tracker/internal/live"
	"wot-tracker/internal/replay"
	"wot-tracker/internal/service"

	"github.com/rs/zerolog"
)

type Server struct {
	replaySvc *service.ReplayService
	statsSvc  *service.StatsService
	hub       *live.Hub
	logger    zerolog.Logger
}

func New(replaySvc *service.ReplayService, statsSvc *service.StatsService, hub *live.Hub, logger zerolog.Logger) *Server {
	return &Server{replaySvc: replaySvc, statsSvc: statsSvc, hub: hub, logger: logger}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/replays", s.handleUploadReplay)
	mux.HandleFunc("GET /api/replays", s.handleListReplays)
	mux.HandleFunc("GET /api/replays/{id}", s.handleGetReplay)
	mux.HandleFunc("GET /api/players/{nickname}/stats", s.handlePlayerStats)
	mux.HandleFunc("GET /api/live", s.hub.ServeWS)
	return mux
}

// handleUploadReplay accepts a multipart upload under the "replay" field,
// parses it and returns the stored battle.
func (s *Server) handleUploadReplay(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid multipart upload")
		return
	}

	file, header, err := r.FormFile("replay")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "missing \"replay\" file field")
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "upload-*.wotreplay")
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		s.writeInternalError(w, r, err)
		return
	}

	stored, err := s.replaySvc.Process(r.Context(), header.Filename, tmp.Name())
	if err != nil {
		s.writeParseError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleGetReplay(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	rep, participants, err := s.replaySvc.Get(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		s.writeError(w, r, http.StatusNotFound, "replay not found")
		return
	}
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"replay":       rep,
		"participants": participants,
	})
}

func (s *Server) handleListReplays(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	replays, err := s.replaySvc.ListRecent(r.Context(), player, limit)
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"replays": replays})
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	refresh := r.URL.Query().Get("refresh") == "true"

	stats, err := s.statsSvc.PlayerStats(r.Context(), nickname, refresh)
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, stats)
}

// writeParseError translates the replay package's named conditions into
// user-facing messages; anything else is a format-compatibility bug and
// stays a 500.
func (s *Server) writeParseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, replay.ErrNoBattleData):
		s.writeError(w, r, http.StatusUnprocessableEntity,
			"this file has no usable battle data, did you quit before the match ended?")
	case errors.Is(err, replay.ErrAmbiguousAccount):
		s.writeError(w, r, http.StatusUnprocessableEntity,
			"couldn't tell which account this replay belongs to")
	default:
		s.writeInternalError(w, r, err)
	}
}

func (s *Server) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	s.writeError(w, r, http.StatusInternalServerError, "internal error")
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
