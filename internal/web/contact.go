package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/store"
)

const (
	contactSuccess = "Thank you for your message! I'll get back to you soon."
	contactFailure = "Sorry, there was an error sending your message. Please try again later."
	contactInvalid = "Please enter your name, a valid email address and a message."
)

type contactRequest struct {
	Name    string `form:"fullName" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Message string `form:"message" binding:"required,max=5000"`
}

// HTMX contact form endpoint - returns just the form HTML
func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

// Handle contact form submission with HTMX. Delivery failures show a
// retry-later message; nothing is retried automatically.
func (s *Server) contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contactInvalid})
		return
	}

	ctx := c.Request.Context()
	saved, err := s.store.SaveMessage(ctx, req.Name, req.Email, req.Message, s.now())
	if err != nil {
		log.Printf("Error storing contact message: %v", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	sendErr := s.mailer.Send(sendCtx, mailer.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})

	if saved.ID != "" {
		status := store.StatusSent
		if sendErr != nil {
			status = store.StatusFailed
		}
		if err := s.store.MarkMessage(ctx, saved.ID, status); err != nil {
			log.Printf("Error updating message %s: %v", saved.ID, err)
		}
	}

	if sendErr != nil {
		log.Printf("Contact form delivery failed: %v", sendErr)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contactFailure})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": contactSuccess})
}
