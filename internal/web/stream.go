package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/scramble"
)

// scrambleItems returns the titles a stream can rotate through.
func (s *Server) scrambleItems(list string) ([]string, bool) {
	switch list {
	case "roles":
		return s.site.Profile.Roles, true
	case "projects":
		return s.site.Projects.Titles(), true
	}
	return nil, false
}

// streamScramble pushes scramble frames to the browser as server-sent events.
// Every connection gets its own controller, torn down when the client leaves.
// ?from=n seeds the display with item n so switching items dissolves it first.
func (s *Server) streamScramble(c *gin.Context) {
	items, ok := s.scrambleItems(c.Param("list"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown list"})
		return
	}
	start, err := strconv.Atoi(c.DefaultQuery("start", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	auto := c.DefaultQuery("hold", "1") != "0"

	opts := append(s.cfg.Scramble.Options(), scramble.WithAutoAdvance(auto))
	if from := c.Query("from"); from != "" && len(items) > 0 {
		i, err := strconv.Atoi(from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return
		}
		// the title shown before this stream dissolves first
		n := len(items)
		opts = append(opts, scramble.WithInitialText(items[((i%n)+n)%n]))
	}

	ctx := c.Request.Context()
	if limit := s.cfg.Scramble.StreamLimit; limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	emit, frames := scramble.Latest(32)
	ctrl := scramble.NewController(items, emit, opts...)
	ctrl.StartAt(start)
	defer ctrl.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	for {
		select {
		case <-ctx.Done():
			// tell the client not to reconnect when the limit ran out
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.SSEvent("end", gin.H{"index": ctrl.Index()})
				c.Writer.Flush()
			}
			return
		case f := <-frames:
			c.SSEvent("frame", f)
			c.Writer.Flush()
		}
	}
}
