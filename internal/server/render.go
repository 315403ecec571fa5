package server

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zachkp/portfolio/internal/chatbot"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/web"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderMarkdown converts trusted content markdown to HTML. Raw HTML in the
// source is dropped by goldmark's default renderer.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		logrus.WithError(err).Warn("markdown conversion failed")
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func parseTemplates(now func() time.Time) (*template.Template, error) {
	funcs := template.FuncMap{
		"markdown": renderMarkdown,
		"truncate": content.TruncateText,
		"join":     strings.Join,
		"duration": func(start, end string) string {
			return content.Duration(start, end, now())
		},
		"contains": func(list []string, v string) bool {
			for _, item := range list {
				if strings.EqualFold(item, v) {
					return true
				}
			}
			return false
		},
	}

	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return nil, err
	}
	return template.New("").Funcs(funcs).ParseFS(sub, "*.html")
}

// page returns the data every layout template reads, merged with extra.
func (s *Server) page(active, title string, extra gin.H) gin.H {
	data := gin.H{
		"Site":               s.portfolio.Site,
		"Nav":                s.portfolio.Navigation,
		"Personal":           s.portfolio.Personal,
		"Active":             active,
		"Title":              title,
		"Year":               s.now().Year(),
		"SuggestedQuestions": chatbot.SuggestedQuestions,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (s *Server) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", s.page("", http.StatusText(status), gin.H{
		"Status":  status,
		"Message": message,
	}))
}
