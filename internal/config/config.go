package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"pool-diagram/internal/diagram"
	"pool-diagram/internal/export"
	"pool-diagram/internal/postprocess"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir"`
	SceneDir   string `json:"scene_dir"`
	TextureDir string `json:"texture_dir"`
	OutputDir  string `json:"output_dir"`

	// Render settings
	Format         string            `json:"format"`
	PixelsPerInch  float64           `json:"pixels_per_inch"`
	Supersample    int               `json:"supersample"`
	Workers        int               `json:"workers"`
	Felt           string            `json:"felt"`
	FeltTileInches float64           `json:"felt_tile_inches"`
	HideNumbers    bool              `json:"hide_numbers"`
	Colors         map[string]string `json:"colors"`

	// Output layout
	Orientation string `json:"orientation"` // portrait, portrait-foot, landscape or mirrored
	Thumbnail   int    `json:"thumbnail"`   // square thumbnail size in pixels, 0 for none
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnv loads .env style files into the process environment. Missing
// files are not an error; variables already set are left alone.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: env %s: %w", f, err)
		}
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneDir      string
	OutputDir     string
	Format        string
	PixelsPerInch float64
	Supersample   int
	Workers       int
}

// Resolve fills in empty fields. CLI flags take priority when
// non-zero/non-empty, then the file, then POOLDIAGRAM_* environment
// variables, then built-in defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneDir != "" {
		c.SceneDir = flags.SceneDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.PixelsPerInch > 0 {
		c.PixelsPerInch = flags.PixelsPerInch
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Environment fills what is still empty
	c.BaseDir = orEnv(c.BaseDir, "POOLDIAGRAM_BASE_DIR")
	c.SceneDir = orEnv(c.SceneDir, "POOLDIAGRAM_SCENE_DIR")
	c.TextureDir = orEnv(c.TextureDir, "POOLDIAGRAM_TEXTURE_DIR")
	c.OutputDir = orEnv(c.OutputDir, "POOLDIAGRAM_OUTPUT_DIR")
	c.Format = orEnv(c.Format, "POOLDIAGRAM_FORMAT")
	c.Felt = orEnv(c.Felt, "POOLDIAGRAM_FELT")
	if c.Workers <= 0 {
		c.Workers = envInt("POOLDIAGRAM_WORKERS")
	}
	if c.Supersample <= 0 {
		c.Supersample = envInt("POOLDIAGRAM_SUPERSAMPLE")
	}

	// Resolve relative paths against base dir
	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}
	c.SceneDir = under(c.BaseDir, c.SceneDir, "scenes")
	c.TextureDir = under(c.BaseDir, c.TextureDir, "textures")
	c.OutputDir = under(c.BaseDir, c.OutputDir, "diagrams")

	// Defaults for render settings
	if c.Format == "" {
		c.Format = "png"
	}
	if c.PixelsPerInch <= 0 {
		c.PixelsPerInch = diagram.StandardPixelsPerInch
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Orientation == "" {
		c.Orientation = "portrait"
	}
	if c.FeltTileInches <= 0 {
		c.FeltTileInches = 12
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks names against known sets and resolution against the
// renderer limits. Zero values are allowed; Resolve fills them.
func (c *Config) Validate() error {
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := postprocess.ParseOrientation(c.Orientation); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.PixelsPerInch < 0 || c.PixelsPerInch > diagram.MaxPixelsPerInch || math.IsNaN(c.PixelsPerInch) {
		return fmt.Errorf("config: pixels per inch %v outside (0, %v]", c.PixelsPerInch, diagram.MaxPixelsPerInch)
	}
	if c.Supersample < 0 || c.Supersample > diagram.MaxSupersample {
		return fmt.Errorf("config: supersample %d outside [1, %d]", c.Supersample, diagram.MaxSupersample)
	}
	if ppi := c.PixelsPerInch * float64(max(c.Supersample, 1)); ppi > diagram.MaxPixelsPerInch {
		return fmt.Errorf("config: pixels per inch %v times supersample %d exceeds %v", c.PixelsPerInch, c.Supersample, diagram.MaxPixelsPerInch)
	}
	if c.Thumbnail < 0 {
		return fmt.Errorf("config: thumbnail size %d", c.Thumbnail)
	}
	st := diagram.DefaultStyle()
	if err := st.Override(c.Colors); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Orient returns the parsed orientation, Portrait if it does not parse.
func (c *Config) Orient() postprocess.Orientation {
	o, _ := postprocess.ParseOrientation(c.Orientation)
	return o
}

// OutputFormat returns the parsed output format, PNG if it does not parse.
func (c *Config) OutputFormat() export.Format {
	f, err := export.ParseFormat(c.Format)
	if err != nil {
		return export.PNG
	}
	return f
}

// RenderOptions builds renderer options from the config. Color overrides
// that fail to parse are skipped; Validate reports them.
func (c *Config) RenderOptions() diagram.Options {
	st := diagram.DefaultStyle()
	for k, v := range c.Colors {
		st.Override(map[string]string{k: v})
	}
	st.FeltTileInches = c.FeltTileInches
	st.HideNumbers = c.HideNumbers
	return diagram.Options{
		PixelsPerInch: c.PixelsPerInch,
		Supersample:   c.Supersample,
		Style:         st,
	}
}

func under(base, p, def string) string {
	if p == "" {
		return filepath.Join(base, def)
	}
	if !filepath.IsAbs(p) {
		return filepath.Join(base, p)
	}
	return p
}

func orEnv(v, key string) string {
	if v != "" {
		return v
	}
	return os.Getenv(key)
}

func envInt(key string) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return 0
}
