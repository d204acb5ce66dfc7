package main

import (
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
)

// homePage is the template data for index.html.
func homePage() gin.H {
	return gin.H{
		"aboutMeContent": content.AboutMe,
		"projects":       content.Projects,
		"skills":         content.Skills,
		"testimonials":   content.Testimonials,
		"stats":          content.Stats,
		"joke":           content.Jokes[0],
		"jokes":          content.Jokes,
		"palettes":       paletteNames(),
		"modes":          modeNames(),
	}
}

func timelinePage(kind string) gin.H {
	entries := content.Work
	if kind == "Education" {
		entries = content.Education
	}
	return gin.H{
		"kind":    kind,
		"entries": entries,
	}
}
