package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/sgmapp/internal/assets"
	"github.com/youruser/sgmapp/internal/config"
	imagepkg "github.com/youruser/sgmapp/internal/image"
	"github.com/youruser/sgmapp/internal/util"
)

type folderRequest struct {
	Folder string `json:"folder"`
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// folderFrom reads {"folder": ...}, falling back to the last opened folder.
func (s *Server) folderFrom(c *gin.Context) (string, bool) {
	var req folderRequest
	if !bindOptionalJSON(c, &req) {
		return "", false
	}
	if req.Folder == "" {
		req.Folder = s.config().LastGameFolder
	}
	return req.Folder, true
}

// scan classifies a folder, remembers it for the next session and, when
// enabled, builds missing overlays and small boxes before answering with a
// fresh scan.
func (s *Server) scanHandler(c *gin.Context) {
	folder, ok := s.folderFrom(c)
	if !ok {
		return
	}
	res := assets.Scan(folder)

	if util.IsDir(folder) {
		s.dialog.Remember(folder)
		err := s.updateConfig(func(cfg *config.Config) { cfg.LastGameFolder = folder })
		if err != nil {
			log.Println("failed to save last game folder:", err)
		}
	}

	out := gin.H{"folder": res.Folder, "count": res.Len(), "games": res.Games}
	cfg := s.config()
	rebuilt := false
	if cfg.AutoBuildOverlay && cfg.DefaultTemplate() != "" {
		rep := imagepkg.AutoBuildOverlays(res, s.overlayParams())
		logFailures("overlay", rep)
		rebuilt = rebuilt || len(rep.Built) > 0
		out["auto_build"] = rep
	}
	if cfg.UseBoxImageForBoxSmall {
		rep := imagepkg.AutoBuildSmallBoxes(res, cfg.BoxSmallBounds())
		logFailures("small box", rep)
		rebuilt = rebuilt || len(rep.Built) > 0
		out["auto_box_small"] = rep
	}
	if rebuilt {
		res = assets.Scan(folder)
		out["count"], out["games"] = res.Len(), res.Games
	}
	c.JSON(http.StatusOK, out)
}

func logFailures(what string, rep imagepkg.AutoBuildReport) {
	for _, f := range rep.Failed {
		log.Printf("auto-build %s for %q failed: %s", what, f.Basename, f.Error)
	}
}

func (s *Server) checkHandler(c *gin.Context) {
	folder, ok := s.folderFrom(c)
	if !ok {
		return
	}
	res := assets.Scan(folder)
	warnings := assets.CheckAll(res, s.config().CheckOptions())
	c.JSON(http.StatusOK, gin.H{"folder": res.Folder, "count": len(warnings), "games": warnings})
}

func (s *Server) filterHandler(c *gin.Context) {
	var req struct {
		Folder string `json:"folder"`
		assets.FilterOptions
	}
	if !bindOptionalJSON(c, &req) {
		return
	}
	if req.Folder == "" {
		req.Folder = s.config().LastGameFolder
	}
	if req.Check == (assets.CheckOptions{}) {
		req.Check = s.config().CheckOptions()
	}
	res := assets.Scan(req.Folder)
	out := assets.Filter(res.Games, req.FilterOptions)
	c.JSON(http.StatusOK, gin.H{"folder": res.Folder, "count": len(out), "games": out})
}

func (s *Server) exportHandler(c *gin.Context) {
	folder, ok := s.folderFrom(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, assets.ExportText(assets.Scan(folder)))
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := imagepkg.DefaultQRSize
	if sizeStr := c.Query("size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// qrSaveHandler writes <basename>_qrcode.png next to the game's other assets.
func qrSaveHandler(c *gin.Context) {
	var req struct {
		Folder   string `json:"folder" binding:"required"`
		Basename string `json:"basename" binding:"required"`
		Text     string `json:"text" binding:"required"`
		Size     int    `json:"size"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if !util.IsDir(req.Folder) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "folder does not exist"})
		return
	}
	p, err := imagepkg.SaveQRCode(req.Folder, req.Basename, req.Text, req.Size)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": p})
}

func (s *Server) startDirHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dir": s.dialog.StartDir(c.Query("fallback"))})
}

func (s *Server) rememberHandler(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	s.dialog.Remember(req.Path)
	c.JSON(http.StatusOK, gin.H{"dir": s.dialog.LastDir()})
}
