package health

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/dalemusser/thirtydays/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks. Client is nil
// when view logging does not use the database.
type Handler struct {
	Client     *mongo.Client
	LessonsDir string
	Log        *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(client *mongo.Client, lessonsDir string, logger *zap.Logger) *Handler {
	return &Handler{
		Client:     client,
		LessonsDir: lessonsDir,
		Log:        logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Lessons  string `json:"lessons"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "lessons":"present", "database":"connected" }
//
// A missing lessons directory is reported but is not a failure: it is
// the valid "nothing published yet" state. A Mongo ping failure (when a
// client is configured) returns 503.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Lessons: "present",
	}

	if _, err := os.Stat(h.LessonsDir); err != nil {
		resp.Lessons = "absent"
	}

	if h.Client == nil {
		resp.Database = "disabled"
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	resp.Database = "connected"
	_ = json.NewEncoder(w).Encode(resp)
}
