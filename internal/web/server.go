// Package web serves the portfolio: the page, its HTMX fragments, the
// scramble frame stream, the contact form and the admin pages.
package web

import (
	"embed"
	"html/template"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	cfg    *config.Config
	site   *content.Site
	store  *store.Store
	mailer mailer.Sender
	admin  *admin
	now    func() time.Time

	cardOnce sync.Once
	cardPNG  []byte
	cardErr  error
}

func New(cfg *config.Config, site *content.Site, st *store.Store, sender mailer.Sender) *Server {
	return &Server{
		cfg:    cfg,
		site:   site,
		store:  st,
		mailer: sender,
		admin:  newAdmin(cfg, st),
		now:    time.Now,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	r.Use(s.admin.visitorTrackingMiddleware())

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.GET("/", s.home)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.contact)
	r.GET("/timeline-content", s.timelineContent)
	r.GET("/work-content", s.workContent)
	r.GET("/education-content", s.educationContent)
	r.GET("/projects/:index", s.projectCard)
	r.GET("/scramble/:list", s.streamScramble)
	r.GET("/og.png", s.shareCard)
	r.GET("/resume", s.resume)

	s.admin.setupRoutes(r)
	return r
}
