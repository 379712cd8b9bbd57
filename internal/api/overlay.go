package api

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/sgmapp/internal/assets"
	"github.com/youruser/sgmapp/internal/config"
	"github.com/youruser/sgmapp/internal/domain"
	imagepkg "github.com/youruser/sgmapp/internal/image"
)

// specFromForm builds an OverlayBuildSpec from form fields; anything not
// given falls back to the stored defaults.
func (s *Server) specFromForm(c *gin.Context) (imagepkg.OverlayBuildSpec, error) {
	cfg := s.config()
	spec := imagepkg.OverlayBuildSpec{
		Template:        config.ResolveTemplate(c.DefaultPostForm("template", cfg.DefaultTemplate())),
		Destination:     c.PostForm("destination"),
		Resolution:      cfg.Resolution(),
		BuildResolution: cfg.BuildResolution(),
		Offset:          cfg.BuildPosition(),
	}

	var err error
	if v := c.PostForm("resolution"); v != "" {
		if spec.Resolution, err = domain.ParseResolution(v); err != nil {
			return spec, err
		}
	}
	if v := c.PostForm("build_resolution"); v != "" {
		if spec.BuildResolution, err = domain.ParseResolution(v); err != nil {
			return spec, err
		}
	}
	if spec.Offset.X, err = intField(c, "x", spec.Offset.X); err != nil {
		return spec, err
	}
	if spec.Offset.Y, err = intField(c, "y", spec.Offset.Y); err != nil {
		return spec, err
	}

	spec.Foreground, err = s.loadForeground(c)
	return spec, err
}

func intField(c *gin.Context, name string, def int) (int, error) {
	v := strings.TrimSpace(c.PostForm(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidOffset, name, v)
	}
	return n, nil
}

// loadForeground takes an uploaded file, a local path or a URL, in that
// order. No foreground at all is left for Validate to reject.
func (s *Server) loadForeground(c *gin.Context) (image.Image, error) {
	if fh, err := c.FormFile("foreground"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return imagepkg.DecodeImage(fh.Filename, b)
	}
	if p := c.PostForm("foreground_path"); p != "" {
		img, err := imagepkg.LoadImage(p)
		if err != nil {
			return nil, err
		}
		s.dialog.Remember(p)
		return img, nil
	}
	if u := c.PostForm("foreground_url"); u != "" {
		return imagepkg.DownloadImage(u)
	}
	return nil, nil
}

func (s *Server) previewHandler(c *gin.Context) {
	spec, err := s.specFromForm(c)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	canvas, err := imagepkg.Preview(spec)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	b, err := imagepkg.EncodePNG(canvas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (s *Server) buildHandler(c *gin.Context) {
	spec, err := s.specFromForm(c)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if err := imagepkg.BuildOverlay(spec); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": spec.Destination})
}

func (s *Server) autoBuildHandler(c *gin.Context) {
	folder, ok := s.folderFrom(c)
	if !ok {
		return
	}
	p := s.overlayParams()
	if p.Template == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no overlay template configured"})
		return
	}
	c.JSON(http.StatusOK, imagepkg.AutoBuildOverlays(assets.Scan(folder), p))
}

// boxSmallAutoHandler builds missing small box images regardless of the
// use_box_image_for_box_small setting.
func (s *Server) boxSmallAutoHandler(c *gin.Context) {
	folder, ok := s.folderFrom(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, imagepkg.AutoBuildSmallBoxes(assets.Scan(folder), s.config().BoxSmallBounds()))
}

// overlayDefaultsHandler stores the builder's current geometry and template.
func (s *Server) overlayDefaultsHandler(c *gin.Context) {
	var req struct {
		BuildResolution string `json:"build_resolution" binding:"required"`
		X               int    `json:"x"`
		Y               int    `json:"y"`
		Template        string `json:"template"`
	}
	if !bindJSON(c, &req) {
		return
	}
	build, err := domain.ParseResolution(req.BuildResolution)
	if err != nil {
		abortWith(c, err)
		return
	}
	if !build.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "build resolution must be at least 1x1"})
		return
	}
	err = s.updateConfig(func(cfg *config.Config) {
		cfg.SetOverlayDefaults(build, domain.Offset{X: req.X, Y: req.Y}, req.Template)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.config())
}

func (s *Server) templatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": s.config().TemplateChoices()})
}
