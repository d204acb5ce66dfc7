package main

import (
	"context"
	"log"
	"net/http"
	"sync/atomic"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/store"
)

// site is everything the handlers share.
type site struct {
	cfg      config.Config
	scores   *store.Store
	sessions *sessions
	admin    *adminAuth
	contacts atomic.Int64
}

func newSite(cfg config.Config, scores *store.Store) *site {
	return &site{
		cfg:      cfg,
		scores:   scores,
		sessions: newSessions(cfg.MaxSessions),
		admin:    newAdminAuth(),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	scores, err := store.Open(context.Background(), cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer scores.Close()

	r := setupRouter(newSite(cfg, scores))
	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func setupRouter(s *site) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", homePage())
	})

	// HTMX fragments
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})
	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "timeline.html", timelinePage("Work"))
	})
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "timeline.html", timelinePage("Education"))
	})

	r.POST("/contact", s.submitContact)

	r.GET("/api/highscore", func(c *gin.Context) {
		high, err := s.scores.HighScore(c.Request.Context())
		if err != nil {
			log.Printf("Error reading high score: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read high score"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"highScore": high})
	})

	// Live canvases
	r.GET("/ws/:scene", s.streamScene)

	setupAdminRoutes(r, s)
	return r
}
