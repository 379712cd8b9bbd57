package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/youruser/sgmapp/internal/assets"
	"github.com/youruser/sgmapp/internal/domain"
	"github.com/youruser/sgmapp/internal/util"
)

const DefaultFileName = "sgm.json"

const (
	DefaultOverlayResolution      = "175x279"
	DefaultOverlayBuildResolution = "175x279"
	DefaultOverlayBuildPosition   = "0,0"
	DefaultBoxSmallResolution     = "200x200"
)

// Config is the persisted settings file. The scanner and composer only read
// the few overlay and check fields; the rest belongs to the UI.
type Config struct {
	LastGameFolder           string       `json:"last_game_folder"`
	OverlayResolution        string       `json:"overlay_resolution"`
	OverlayBuildResolution   string       `json:"overlay_build_resolution"`
	OverlayBuildPosition     string       `json:"overlay_build_position"`
	OverlayTemplates         TemplateList `json:"overlay_templates"`
	DesiredMaxBaseFileLength int          `json:"desired_max_base_file_length"`
	DesiredNumberOfSnaps     int          `json:"desired_number_of_snaps"`
	AutoBuildOverlay         bool         `json:"auto_build_overlay"`
	UseBoxImageForBoxSmall   bool         `json:"use_box_image_for_box_small"`
	BoxSmallResolution       string       `json:"box_small_resolution"`
}

// Error wraps a config file that exists but cannot be read or parsed.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %q: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func Default() Config {
	return Config{
		OverlayResolution:      DefaultOverlayResolution,
		OverlayBuildResolution: DefaultOverlayBuildResolution,
		OverlayBuildPosition:   DefaultOverlayBuildPosition,
		OverlayTemplates:       TemplateList{},
		BoxSmallResolution:     DefaultBoxSmallResolution,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return Config{}, &Error{Path: path, Err: err}
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return Config{}, &Error{Path: path, Err: err}
	}
	if err := c.Validate(); err != nil {
		return Config{}, &Error{Path: path, Err: err}
	}
	c.normalize()
	return c, nil
}

// Save writes the whole config, replacing the file atomically.
func (c Config) Save(path string) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, append(b, '\n')); err != nil {
		return &Error{Path: path, Err: err}
	}
	return nil
}

// Validate checks that the stored overlay geometry parses.
func (c Config) Validate() error {
	if _, err := domain.ParseResolution(c.OverlayResolution); err != nil {
		return fmt.Errorf("overlay_resolution: %w", err)
	}
	if _, err := domain.ParseResolution(c.OverlayBuildResolution); err != nil {
		return fmt.Errorf("overlay_build_resolution: %w", err)
	}
	if _, err := domain.ParseOffset(c.OverlayBuildPosition); err != nil {
		return fmt.Errorf("overlay_build_position: %w", err)
	}
	small, err := domain.ParseResolution(c.BoxSmallResolution)
	if err != nil {
		return fmt.Errorf("box_small_resolution: %w", err)
	}
	if !small.Valid() {
		return fmt.Errorf("box_small_resolution: %w: %s", domain.ErrInvalidResolution, small)
	}
	return nil
}

func (c *Config) normalize() {
	c.DesiredNumberOfSnaps = min(max(c.DesiredNumberOfSnaps, 0), 3)
	c.DesiredMaxBaseFileLength = max(c.DesiredMaxBaseFileLength, 0)
	c.OverlayTemplates = dedupePaths(c.OverlayTemplates)
}

// Resolution, BuildResolution and BuildPosition fall back to the defaults
// when the stored value does not parse.

func (c Config) Resolution() domain.Resolution {
	return parseResolutionOr(c.OverlayResolution, DefaultOverlayResolution)
}

func (c Config) BuildResolution() domain.Resolution {
	return parseResolutionOr(c.OverlayBuildResolution, DefaultOverlayBuildResolution)
}

// BoxSmallBounds is the box a generated small box image must fit inside.
func (c Config) BoxSmallBounds() domain.Resolution {
	if r := parseResolutionOr(c.BoxSmallResolution, DefaultBoxSmallResolution); r.Valid() {
		return r
	}
	r, _ := domain.ParseResolution(DefaultBoxSmallResolution)
	return r
}

func (c Config) BuildPosition() domain.Offset {
	o, err := domain.ParseOffset(c.OverlayBuildPosition)
	if err != nil {
		return domain.Offset{}
	}
	return o
}

func (c Config) CheckOptions() assets.CheckOptions {
	return assets.CheckOptions{
		MaxBaseLength: c.DesiredMaxBaseFileLength,
		ExpectedSnaps: c.DesiredNumberOfSnaps,
	}
}

// SetOverlayDefaults stores the current builder geometry and, when template
// is not empty, makes it the default template.
func (c *Config) SetOverlayDefaults(build domain.Resolution, pos domain.Offset, template string) {
	c.OverlayBuildResolution = build.String()
	c.OverlayBuildPosition = pos.String()
	if template != "" {
		c.SetDefaultTemplate(template)
	}
}

func parseResolutionOr(s, fallback string) domain.Resolution {
	r, err := domain.ParseResolution(s)
	if err != nil {
		r, _ = domain.ParseResolution(fallback)
	}
	return r
}
