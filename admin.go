// admin.go - token-cookie admin for live canvases and the high score
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	Sessions           SessionStats `json:"sessions"`
	HighScore          int          `json:"high_score"`
	ContactSubmissions int64        `json:"contact_submissions"`
}

// adminAuth holds the per-process login token and the salt used to hash
// client addresses in logs.
type adminAuth struct {
	token string
	salt  string
}

func newAdminAuth() *adminAuth {
	a := &adminAuth{
		token: generateAdminToken(),
		salt:  generateAdminToken(),
	}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.token)
	}
	return a
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address so logs never carry the raw address
func (a *adminAuth) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Middleware to check admin authentication
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *site) adminStats(c *gin.Context) (*AdminStats, error) {
	high, err := s.scores.HighScore(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return &AdminStats{
		Sessions:           s.sessions.stats(),
		HighScore:          high,
		ContactSubmissions: s.contacts.Load(),
	}, nil
}

func credentialsMatch(user, pass, wantUser, wantPass string) bool {
	u := subtle.ConstantTimeCompare([]byte(user), []byte(wantUser))
	p := subtle.ConstantTimeCompare([]byte(pass), []byte(wantPass))
	return u&p == 1
}

// Setup all admin routes
func setupAdminRoutes(r *gin.Engine, s *site) {
	auth := s.admin

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if credentialsMatch(username, password, s.cfg.AdminUsername, s.cfg.AdminPassword) {
			// Set secure cookie (24 hours)
			c.SetCookie("admin_token", auth.token, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", auth.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
		} else {
			log.Printf("Failed admin login attempt from %s", auth.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
		}
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", auth.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(auth.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	// Admin API endpoints for HTMX/AJAX
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Wipe the stored high score
	adminGroup.POST("/highscore/reset", func(c *gin.Context) {
		if err := s.scores.ResetHighScore(c.Request.Context()); err != nil {
			log.Printf("Error resetting high score: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset high score"})
			return
		}
		log.Printf("High score reset by admin from %s", auth.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "High score reset"})
	})

	// Admin statistics export
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Set headers for file download
		c.Header("Content-Type", "application/json")
		c.Header("Content-Disposition", "attachment; filename=folio-stats.json")

		log.Printf("Admin stats exported by %s", auth.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
