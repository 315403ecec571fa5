package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/drafts"
	"github.com/Zachkp/portfolio/internal/finder"
)

const homeTopSkills = 6

func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page("/", "", gin.H{
		"Highlights": s.highlights.Synthesize(),
		"TopSkills":  s.portfolio.TopSkills(homeTopSkills),
		"Featured":   s.portfolio.FeaturedProjects(),
	}))
}

func (s *Server) handleAbout(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", s.page("/about", "About", gin.H{
		"Skills": s.portfolio.Skills,
	}))
}

func (s *Server) handleExperience(c *gin.Context) {
	c.HTML(http.StatusOK, "experience.html", s.page("/experience", "Experience", gin.H{
		"Experience": s.portfolio.Experience,
		"Volunteer":  s.portfolio.Volunteer,
	}))
}

func (s *Server) handleEducation(c *gin.Context) {
	c.HTML(http.StatusOK, "education.html", s.page("/education", "Education", gin.H{
		"Education":      s.portfolio.Education,
		"Certifications": s.portfolio.Certifications,
	}))
}

// handleProjects renders the searchable list. It reads the same query
// parameters as /api/projects so results are shareable by URL.
func (s *Server) handleProjects(c *gin.Context) {
	query := c.Query("q")
	var filters finder.FilterSet
	if err := c.ShouldBindQuery(&filters); err != nil {
		s.renderError(c, http.StatusBadRequest, "Invalid search filters")
		return
	}

	projects := s.finder.Find(query, filters)
	s.metrics.Searches.Inc()
	s.metrics.SearchResults.Observe(float64(len(projects)))

	c.HTML(http.StatusOK, "projects.html", s.page("/projects", "Projects", gin.H{
		"Query":    query,
		"Filters":  filters,
		"Options":  s.filterOptions(),
		"Projects": projects,
	}))
}

func (s *Server) handleProject(c *gin.Context) {
	project, ok := s.portfolio.ProjectBySlug(c.Param("slug"))
	if !ok {
		s.renderError(c, http.StatusNotFound, "Project not found")
		return
	}
	c.HTML(http.StatusOK, "project.html", s.page("/projects", project.Title, gin.H{
		"Project": project,
	}))
}

func (s *Server) handleContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", s.page("/contact", "Contact", gin.H{
		"Intents": drafts.Intents,
	}))
}

type filterOptions struct {
	Categories []string         `json:"categories"`
	TechStacks []string         `json:"techStacks"`
	Years      []int            `json:"years"`
	Statuses   []content.Status `json:"statuses"`
}

func (s *Server) filterOptions() filterOptions {
	return filterOptions{
		Categories: s.portfolio.Categories(),
		TechStacks: s.portfolio.AllTechStacks(),
		Years:      s.portfolio.Years(),
		Statuses:   s.portfolio.Statuses(),
	}
}
