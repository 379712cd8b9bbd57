package api

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/youruser/sgmapp/internal/config"
	"github.com/youruser/sgmapp/internal/domain"
	imagepkg "github.com/youruser/sgmapp/internal/image"
	"github.com/youruser/sgmapp/internal/session"
)

var errBadRequest = errors.New("bad request")

// Server holds the UI session: the settings store and the dialog state.
type Server struct {
	mu      sync.Mutex
	cfg     config.Config
	cfgPath string

	dialog *session.DialogState
}

func NewServer(cfg config.Config, cfgPath string) *Server {
	return &Server{cfg: cfg, cfgPath: cfgPath, dialog: &session.DialogState{}}
}

// config returns a copy that handlers may read freely.
func (s *Server) config() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cfg
	c.OverlayTemplates = append(config.TemplateList(nil), s.cfg.OverlayTemplates...)
	return c
}

// updateConfig applies fn and persists the whole config; the in-memory copy
// only changes when the save succeeds.
func (s *Server) updateConfig(fn func(*config.Config)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cfg
	next.OverlayTemplates = append(config.TemplateList(nil), s.cfg.OverlayTemplates...)
	fn(&next)
	if s.cfgPath != "" {
		if err := next.Save(s.cfgPath); err != nil {
			return err
		}
	}
	s.cfg = next
	return nil
}

func (s *Server) overlayParams() imagepkg.OverlayParams {
	c := s.config()
	return imagepkg.OverlayParams{
		Template:        config.ResolveTemplate(c.DefaultTemplate()),
		Resolution:      c.Resolution(),
		BuildResolution: c.BuildResolution(),
		Offset:          c.BuildPosition(),
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidResolution),
		errors.Is(err, domain.ErrInvalidOffset),
		imagepkg.IsInvalidSpec(err):
		return http.StatusBadRequest
	case imagepkg.IsImageDecode(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON decodes the request body into v. Malformed bodies are answered
// with 400 and bindJSON reports false.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		abortWith(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for endpoints whose body may be omitted.
func bindOptionalJSON(c *gin.Context, v any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, v)
}

func abortWith(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}
