// Package server wires the portfolio queries, chat, drafts and contact relay
// into a gin router.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/chatbot"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/drafts"
	"github.com/Zachkp/portfolio/internal/finder"
	"github.com/Zachkp/portfolio/internal/highlights"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/web"
)

// Options carries everything the router needs. Analytics may be nil, in
// which case visits are not recorded and /api/stats reports unavailable.
type Options struct {
	Portfolio content.Portfolio
	Chat      *chatbot.Service
	Contact   *contact.Service
	Analytics *analytics.Store
	Metrics   *metrics.Metrics

	// ContactRatePerMinute bounds submissions per client IP.
	ContactRatePerMinute int

	Now func() time.Time
}

type Server struct {
	portfolio   content.Portfolio
	finder      *finder.Finder
	highlights  *highlights.Synthesizer
	matcher     *chatbot.Matcher
	chat        *chatbot.Service
	drafts      *drafts.Generator
	contact     *contact.Service
	analytics   *analytics.Store
	metrics     *metrics.Metrics
	contactRate *ipLimiter
	now         func() time.Time

	router *gin.Engine
}

// New builds the router. Templates are parsed here so a broken template
// fails at startup rather than on first request. The Metrics instance must
// not be shared between servers.
func New(opts Options) (s *Server, err error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.ContactRatePerMinute <= 0 {
		opts.ContactRatePerMinute = 5
	}

	matcher := chatbot.NewMatcher(opts.Portfolio)
	if opts.Chat == nil {
		opts.Chat = chatbot.NewService(matcher, 30*time.Minute, chatbot.NoDelay)
	}

	s = &Server{
		portfolio:   opts.Portfolio,
		finder:      finder.New(opts.Portfolio.Projects),
		highlights:  highlights.New(opts.Portfolio, opts.Now),
		matcher:     matcher,
		chat:        opts.Chat,
		drafts:      drafts.NewGenerator(opts.Portfolio.Personal.FirstName),
		contact:     opts.Contact,
		analytics:   opts.Analytics,
		metrics:     opts.Metrics,
		contactRate: newIPLimiter(opts.ContactRatePerMinute, limiterIdleTTL),
		now:         opts.Now,
	}

	s.metrics.RegisterGauge("portfolio_chat_sessions", "Live chat sessions", func() float64 {
		return float64(s.chat.Count())
	})

	tmpl, err := parseTemplates(s.now)
	if err != nil {
		err = errors.Wrap(err, "failed to parse templates")
		return s, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), s.instrument())
	r.SetHTMLTemplate(tmpl)

	if s.analytics != nil {
		r.Use(analytics.NewTracker(s.analytics).Middleware())
	}

	r.StaticFS("/static", http.FS(web.Static()))
	r.Static("/images", "./images")

	r.GET("/", s.handleHome)
	r.GET("/about", s.handleAbout)
	r.GET("/experience", s.handleExperience)
	r.GET("/education", s.handleEducation)
	r.GET("/projects", s.handleProjects)
	r.GET("/projects/:slug", s.handleProject)
	r.GET("/contact", s.handleContactPage)

	api := r.Group("/api")
	{
		api.GET("/projects", s.handleFindProjects)
		api.GET("/projects/suggestions", s.handleSuggest)
		api.GET("/projects/filters", s.handleFilterOptions)
		api.GET("/highlights", s.handleHighlights)

		api.POST("/chat/sessions", s.handleStartChat)
		api.GET("/chat/sessions/:id", s.handleGetChat)
		api.POST("/chat/sessions/:id/messages", s.handleAsk)
		api.POST("/chat/answer", s.handleAnswer)

		api.POST("/drafts", s.handleDraft)
		api.POST("/contact", s.rateLimit(s.contactRate), s.handleContact)
		api.GET("/stats", s.handleStats)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		s.renderError(c, http.StatusNotFound, "Page not found")
	})

	s.router = r
	return s, err
}

// Handler exposes the router for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer wraps the router in an http.Server listening on port.
func (s *Server) HTTPServer(port string) *http.Server {
	logrus.WithField("port", port).Info("server listening")
	return &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
