package web

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/card"
	"github.com/Zachkp/portfolio/internal/content"
)

// projectView is the project card with its navigation.
type projectView struct {
	content.Project
	Index     int
	Prev      int
	Next      int
	Total     int
	From      int    // project shown before this one, -1 on first render
	FromTitle string // stays on display until the stream dissolves it
	Stack     []content.StackCard
}

func (s *Server) project(i int) projectView {
	p := s.site.Projects
	i = p.Wrap(i)
	return projectView{
		Project: p[i],
		Index:   i,
		Prev:    p.Prev(i),
		Next:    p.Next(i),
		Total:   len(p),
		From:    -1,
		Stack:   p.Stack(i),
	}
}

// Home page route
func (s *Server) home(c *gin.Context) {
	data := gin.H{
		"profile":  s.site.Profile,
		"skills":   s.site.Skills,
		"timeline": s.site.FullTimeline(),
		"year":     s.now().Year(),
	}
	if len(s.site.Projects) > 0 {
		data["project"] = s.project(0)
	}
	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) timelineContent(c *gin.Context) {
	c.HTML(http.StatusOK, "timeline-content.html", gin.H{
		"timeline": s.site.FullTimeline(),
	})
}

// Work experience content
func (s *Server) workContent(c *gin.Context) {
	var entries content.Timeline
	for _, e := range s.site.FullTimeline().Experiences() {
		entries = append(entries, e)
	}
	c.HTML(http.StatusOK, "timeline-content.html", gin.H{"timeline": entries})
}

// Education content
func (s *Server) educationContent(c *gin.Context) {
	var entries content.Timeline
	for _, e := range s.site.Timeline.Education() {
		entries = append(entries, e)
	}
	c.HTML(http.StatusOK, "timeline-content.html", gin.H{"timeline": entries})
}

// Project card fragment, swapped in by the prev/next buttons
func (s *Server) projectCard(c *gin.Context) {
	if len(s.site.Projects) == 0 {
		c.Status(http.StatusNotFound)
		return
	}
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	view := s.project(i)
	if from := c.Query("from"); from != "" {
		f, err := strconv.Atoi(from)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		view.From = s.site.Projects.Wrap(f)
		view.FromTitle = s.site.Projects[view.From].Title
	}
	c.HTML(http.StatusOK, "project-card.html", view)
}

// Share image for link previews, rendered once
func (s *Server) shareCard(c *gin.Context) {
	s.cardOnce.Do(func() {
		p := s.site.Profile
		s.cardPNG, s.cardErr = card.Render(card.Card{
			Title:    p.Name,
			Subtitle: p.Headline,
			Footer:   p.Tagline,
		})
		if s.cardErr != nil {
			log.Printf("Error rendering share card: %v", s.cardErr)
		}
	})
	if s.cardErr != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", s.cardPNG)
}

func (s *Server) resume(c *gin.Context) {
	path := s.site.Profile.Resume
	if path == "" {
		c.Status(http.StatusNotFound)
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(path)
}
