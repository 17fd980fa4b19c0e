package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/showsplit/showsplit/app/feed"
)

type Handler struct {
	runner *feed.Runner
}

func NewHandler(runner *feed.Runner) *Handler {
	return &Handler{runner: runner}
}

// GetFeed serves the generated XML for one show slug (or "all-shows").
// A trailing ".xml" is accepted so the static-file URLs keep working.
func (h *Handler) GetFeed(c *gin.Context) {
	slug := strings.TrimSuffix(c.Param("slug"), ".xml")
	if slug == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	result := h.runner.Last()
	if result == nil {
		c.Header("Retry-After", "30")
		c.Status(http.StatusServiceUnavailable)
		return
	}

	document, ok := result.Feeds[slug]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, document)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	result := h.runner.Last()
	status := gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if result != nil {
		status["last_run"] = result.RanAt.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, status)
}

// GetStats exposes the diagnostics counters from the last run.
func (h *Handler) GetStats(c *gin.Context) {
	result := h.runner.Last()
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"runs": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"last_run":        result.RanAt.UTC().Format(time.RFC3339),
		"items_total":     result.Stats.ItemsTotal,
		"items_skipped":   result.Stats.Skipped,
		"episodes":        result.Stats.Episodes,
		"shows":           result.Stats.Shows,
		"unsorted":        result.Stats.Unsorted,
		"auto_registered": result.Stats.AutoRegistered,
	})
}
