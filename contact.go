package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// contactForm mirrors the fields of templates/contact.html.
type contactForm struct {
	Name    string `form:"fullName" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

// submitContact pretends to send the message: valid input waits out the
// configured delay and always succeeds. Nothing leaves the server.
func (s *site) submitContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email and a message.",
		})
		return
	}

	timer := time.NewTimer(s.cfg.ContactDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-c.Request.Context().Done():
		return
	}

	n := s.contacts.Add(1)
	log.Printf("Contact form submitted (%d this run)", n)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
