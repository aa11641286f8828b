package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"pool-diagram/internal/diagram"
	"pool-diagram/internal/export"
	"pool-diagram/internal/postprocess"
	"pool-diagram/internal/scenefile"
	"pool-diagram/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      export.Format
	Options     diagram.Options
	Felt        string           // default felt texture name, may be empty
	Textures    texture.Resolver // nil disables felt textures
	Orientation postprocess.Orientation
	Thumbnail   int // square thumbnail size, 0 for none
	Workers     int
	Logger      *slog.Logger
	Progress    time.Duration // zero means every 2s
}

// Result holds the outcome of rendering one scene file.
type Result struct {
	Source    string
	Name      string
	Title     string
	Table     string
	Game      string
	Balls     int
	Image     string // relative to OutputDir
	Thumbnail string
	Warnings  []string
	Success   bool
	Error     string
}

// FindScenes lists the YAML files directly inside dir, sorted by name.
func FindScenes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	var paths []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Run renders all scene files using a worker pool. Results are in input order.
func Run(cfg Config, paths []string) []Result {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	every := cfg.Progress
	if every <= 0 {
		every = 2 * time.Second
	}

	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "per_sec", fmt.Sprintf("%.1f", float64(p)/elapsed))
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processScene(cfg, paths[idx])
				if r := results[idx]; !r.Success {
					log.Warn("scene failed", "file", r.Source, "err", r.Error)
				} else if len(r.Warnings) > 0 {
					log.Warn("scene rendered with warnings", "file", r.Source, "warnings", strings.Join(r.Warnings, "; "))
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processScene(cfg Config, path string) Result {
	res := Result{Source: path}

	s, err := scenefile.Load(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	g := s.State
	res.Name = s.Name
	res.Title = s.Title
	res.Table = g.Table.Name()
	res.Game = g.Type.String()
	res.Balls = len(g.Balls)

	opts := cfg.Options
	if err := opts.Style.Override(s.Colors); err != nil {
		res.Error = err.Error()
		return res
	}
	felt := s.Felt
	if felt == "" {
		felt = cfg.Felt
	}
	if felt != "" && cfg.Textures != nil {
		tex, err := cfg.Textures.Resolve(felt)
		if err != nil {
			res.Warnings = append(res.Warnings, err.Error())
		} else {
			opts.Style.FeltTexture = tex
		}
	}

	// Advisory checks never stop a render
	if err := g.Validate(); err != nil {
		res.Warnings = append(res.Warnings, strings.Split(err.Error(), "\n")...)
	}
	for _, i := range g.IllegalBalls() {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s is not legal in %s", g.Balls[i], g.Type))
	}

	img := cfg.Orientation.Apply(g.Draw2DDiagram(opts))

	file := s.Name + cfg.Format.Ext()
	if err := export.WriteFile(filepath.Join(cfg.OutputDir, file), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Image = file

	if cfg.Thumbnail > 0 {
		thumb := s.Name + ".thumb" + cfg.Format.Ext()
		if err := export.WriteFile(filepath.Join(cfg.OutputDir, thumb), postprocess.Fit(img, cfg.Thumbnail), cfg.Format); err != nil {
			res.Error = err.Error()
			return res
		}
		res.Thumbnail = thumb
	}
	res.Success = true
	return res
}
