package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mcoot/snakegame-go/internal/api/middleware"
	"github.com/mcoot/snakegame-go/internal/api/request"
	"github.com/mcoot/snakegame-go/internal/api/response"
	"github.com/mcoot/snakegame-go/internal/services/score"
)

// ScoreHandler handles score submission and leaderboard endpoints
type ScoreHandler struct {
	scores *score.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scores *score.Service) *ScoreHandler {
	return &ScoreHandler{
		scores: scores,
	}
}

// Submit handles POST /api/scores
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Score == nil {
		WriteError(w, NewInvalidRequestError("score is required"))
		return
	}

	entry, err := h.scores.Submit(r.Context(), user, *req.Score)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ScoreEntryFromEntry(entry))
}

// Leaderboard handles GET /api/scores
func (h *ScoreHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.scores.Leaderboard(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	scores := make([]response.ScoreEntry, len(entries))
	for i, e := range entries {
		scores[i] = response.ScoreEntryFromEntry(e)
	}

	response.JSON(w, http.StatusOK, response.LeaderboardResponse{Scores: scores})
}
