package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pool-diagram/internal/batch"
	"pool-diagram/internal/config"
	"pool-diagram/internal/table"
	"pool-diagram/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	envFile := flag.String("env", ".env", "Path to .env file with POOLDIAGRAM_* defaults")
	sceneDir := flag.String("scenes", "", "Directory of YAML scenes (default: scenes)")
	outputDir := flag.String("output", "", "Output directory (default: diagrams)")
	format := flag.String("format", "", "Output format: png, webp or tga (default: png)")
	ppi := flag.Float64("ppi", 0, "Pixels per inch (default: 10; ppi times supersample at most 80)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Render only first N scenes for testing")
	listTables := flag.Bool("tables", false, "List table presets and exit")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if *listTables {
		for _, name := range table.PresetNames() {
			t, _ := table.Preset(name)
			fmt.Printf("%-12s %s x %s, %s per diamond\n", name, t.Width(), t.Length(), t.DiamondLength())
		}
		return
	}

	if err := config.LoadEnv(*envFile); err != nil {
		log.Error("loading env", "err", err)
		os.Exit(1)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Error("loading config", "err", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneDir:      *sceneDir,
		OutputDir:     *outputDir,
		Format:        *format,
		PixelsPerInch: *ppi,
		Supersample:   *supersample,
		Workers:       *workers,
	})
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "err", err)
		os.Exit(1)
	}

	// Scenes from the command line, else everything in the scene dir
	paths := flag.Args()
	if len(paths) == 0 {
		var err error
		paths, err = batch.FindScenes(cfg.SceneDir)
		if err != nil {
			log.Error("listing scenes", "err", err)
			os.Exit(1)
		}
	}

	// Limit for testing
	if *testN > 0 && *testN < len(paths) {
		paths = paths[:*testN]
	}

	if len(paths) == 0 {
		fmt.Println("No scenes to render.")
		os.Exit(0)
	}

	// Build texture index
	texIndex := texture.BuildIndex(cfg.TextureDir)
	texCache := texture.NewCache(texIndex)
	log.Debug("textures indexed", "dir", cfg.TextureDir, "count", texIndex.Len())

	log.Info("rendering",
		"scenes", len(paths),
		"workers", cfg.Workers,
		"format", cfg.Format,
		"ppi", cfg.PixelsPerInch,
		"supersample", cfg.Supersample,
		"output", cfg.OutputDir,
	)

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.OutputFormat(),
		Options:     cfg.RenderOptions(),
		Felt:        cfg.Felt,
		Textures:    texCache,
		Orientation: cfg.Orient(),
		Thumbnail:   cfg.Thumbnail,
		Workers:     cfg.Workers,
		Logger:      log,
	}

	results := batch.Run(batchCfg, paths)

	// Count results
	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
		}
	}

	log.Info("done",
		"rendered", success,
		"failed", failed,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		log.Warn("manifest write failed", "err", err)
	} else {
		log.Info("manifest written", "path", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
