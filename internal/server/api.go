package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Zachkp/portfolio/internal/chatbot"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/drafts"
	"github.com/Zachkp/portfolio/internal/finder"
	"github.com/Zachkp/portfolio/internal/highlights"
)

func (s *Server) handleFindProjects(c *gin.Context) {
	var filters finder.FilterSet
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters"})
		return
	}

	matches := s.finder.Search(c.Query("q"), filters)
	s.metrics.Searches.Inc()
	s.metrics.SearchResults.Observe(float64(len(matches)))

	c.JSON(http.StatusOK, gin.H{
		"query":   c.Query("q"),
		"count":   len(matches),
		"results": matches,
	})
}

func (s *Server) handleSuggest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": s.finder.Suggest(c.Query("q"))})
}

func (s *Server) handleFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, s.filterOptions())
}

func (s *Server) handleHighlights(c *gin.Context) {
	items := s.highlights.Synthesize()
	c.JSON(http.StatusOK, gin.H{
		"highlights": items,
		"text":       highlights.FormatBullets(items),
	})
}

type chatSession struct {
	ID       string            `json:"id"`
	Messages []chatbot.Message `json:"messages"`
}

type questionRequest struct {
	Question string `json:"question" form:"question"`
}

func (s *Server) handleStartChat(c *gin.Context) {
	sess := s.chat.Start()
	c.JSON(http.StatusCreated, chatSession{
		ID:       sess.ID,
		Messages: sess.Messages(),
	})
}

func (s *Server) handleGetChat(c *gin.Context) {
	sess, ok := s.chat.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat session not found"})
		return
	}
	c.JSON(http.StatusOK, chatSession{
		ID:       sess.ID,
		Messages: sess.Messages(),
	})
}

func (s *Server) handleAsk(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := s.chat.Ask(c.Request.Context(), c.Param("id"), req.Question)
	switch {
	case err == nil:
	case errors.Is(err, chatbot.ErrEmptyQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a question."})
		return
	case errors.Is(err, chatbot.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "chat session not found"})
		return
	case errors.Is(err, chatbot.ErrSessionFull):
		c.JSON(http.StatusConflict, gin.H{"error": "This conversation is full. Please start a new one."})
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client went away during the pacing delay.
		c.Status(http.StatusServiceUnavailable)
		return
	default:
		logrus.WithError(err).Error("chat ask failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "chat unavailable"})
		return
	}

	s.metrics.ChatQuestions.WithLabelValues(string(reply.Intent)).Inc()
	c.JSON(http.StatusOK, reply)
}

func (s *Server) handleAnswer(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp := s.matcher.Answer(req.Question)
	s.metrics.ChatQuestions.WithLabelValues(string(resp.Type)).Inc()
	c.JSON(http.StatusOK, resp)
}

type draftRequest struct {
	Intent  string `json:"intent" form:"intent"`
	Company string `json:"company" form:"company"`
}

func (s *Server) handleDraft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft := s.drafts.Draft(req.Intent, drafts.Details{Company: req.Company})
	s.metrics.DraftsGenerated.WithLabelValues(string(draft.Intent)).Inc()
	c.JSON(http.StatusOK, draft)
}

func (s *Server) handleContact(c *gin.Context) {
	if s.contact == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": contact.UserMessage(contact.ErrNotConfigured)})
		return
	}

	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := s.contact.Submit(c.Request.Context(), form)
	var invalid contact.ValidationErrors
	switch {
	case err == nil:
		s.metrics.ContactOutcomes.WithLabelValues("sent").Inc()
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Thank you! Your message has been sent.",
		})
	case errors.As(err, &invalid):
		s.metrics.ContactOutcomes.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"errors":  invalid,
		})
	default:
		s.metrics.ContactOutcomes.WithLabelValues("failed").Inc()
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   contact.UserMessage(err),
		})
	}
}

func (s *Server) handleStats(c *gin.Context) {
	if s.analytics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
		return
	}

	stats, err := s.analytics.Stats(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to load visitor stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats unavailable"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
