// Package config loads the YAML settings shared by the command-line tool:
// graph representation, frontier kind, search limits, logging and metrics.
//
// Decoding is strict: unknown keys are rejected. Fields left out keep the
// values from Default. Every loaded Config is validated before it is
// returned; Validate failures wrap ErrInvalid.
//
// Example file:
//
//	representation: matrix
//	frontier: heap
//	search:
//	  max_depth: 4
//	  max_distance: 250
//	  heuristic_scale: 0.01
//	log:
//	  level: debug
//	  format: json
//	metrics:
//	  enabled: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathgraph/bfs"
	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/dfs"
	"github.com/katalvlaran/pathgraph/frontier"
	"github.com/katalvlaran/pathgraph/heuristic"
	"github.com/katalvlaran/pathgraph/shortest"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root of the YAML document.
type Config struct {
	Representation string  `yaml:"representation"`
	Frontier       string  `yaml:"frontier"`
	Search         Search  `yaml:"search"`
	Log            Log     `yaml:"log"`
	Metrics        Metrics `yaml:"metrics"`
}

// Search holds traversal and search limits.
type Search struct {
	// MaxDepth bounds BFS and DFS depth; 0 means unbounded.
	MaxDepth int `yaml:"max_depth"`
	// MaxDistance caps Dijkstra and A* costs; nil means unbounded.
	MaxDistance *float64 `yaml:"max_distance,omitempty"`
	// EdgeThreshold turns edges at or above it into walls; nil means none.
	EdgeThreshold *float64 `yaml:"edge_threshold,omitempty"`
	// HeuristicScale multiplies the spatial A* estimate.
	HeuristicScale float64 `yaml:"heuristic_scale"`
}

// Log selects the slog level and handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Metrics toggles the Prometheus collector.
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration: adjacency lists, a B-tree
// frontier, no limits, heuristic.DefaultScale, info-level text logs and
// metrics off.
func Default() Config {
	return Config{
		Representation: core.AdjacencyList.String(),
		Frontier:       frontier.KindTree.String(),
		Search:         Search{HeuristicScale: heuristic.DefaultScale},
		Log:            Log{Level: "info", Format: FormatText},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if _, err := core.ParseRepresentation(c.Representation); err != nil {
		return fmt.Errorf("%w: representation: %w", ErrInvalid, err)
	}
	if _, err := frontier.ParseKind(c.Frontier); err != nil {
		return fmt.Errorf("%w: frontier: %w", ErrInvalid, err)
	}
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("%w: search.max_depth must be ≥ 0, got %d", ErrInvalid, c.Search.MaxDepth)
	}
	if d := c.Search.MaxDistance; d != nil && (*d < 0 || math.IsNaN(*d)) {
		return fmt.Errorf("%w: search.max_distance must be ≥ 0, got %g", ErrInvalid, *d)
	}
	if t := c.Search.EdgeThreshold; t != nil && !(*t > 0) {
		return fmt.Errorf("%w: search.edge_threshold must be > 0, got %g", ErrInvalid, *t)
	}
	if s := c.Search.HeuristicScale; s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: search.heuristic_scale must be finite and ≥ 0, got %g", ErrInvalid, s)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if f := strings.ToLower(c.Log.Format); f != FormatText && f != FormatJSON {
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalid, FormatText, FormatJSON, c.Log.Format)
	}

	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}

	return lvl, nil
}

// Logger builds a slog.Logger writing to w with the configured level and format.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(c.Log.Format) == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

// GraphOptions returns the core options for the configured representation.
// Call Validate first; an unparsable name falls back to adjacency lists.
func (c Config) GraphOptions() []core.GraphOption {
	r, _ := core.ParseRepresentation(c.Representation)

	return []core.GraphOption{core.WithRepresentation(r)}
}

// ShortestOptions translates the search section into shortest options.
// log and obs may be nil.
func (c Config) ShortestOptions(log *slog.Logger, obs core.Observer) []shortest.Option {
	kind, _ := frontier.ParseKind(c.Frontier)
	opts := []shortest.Option{
		shortest.WithFrontier(kind),
		shortest.WithLogger(log),
		shortest.WithObserver(obs),
	}
	if c.Search.MaxDistance != nil {
		opts = append(opts, shortest.WithMaxDistance(*c.Search.MaxDistance))
	}
	if c.Search.EdgeThreshold != nil {
		opts = append(opts, shortest.WithEdgeThreshold(*c.Search.EdgeThreshold))
	}

	return opts
}

// BFSOptions translates the search section into bfs options.
func (c Config) BFSOptions(log *slog.Logger, obs core.Observer) []bfs.Option {
	return []bfs.Option{
		bfs.WithMaxDepth(c.Search.MaxDepth),
		bfs.WithLogger(log),
		bfs.WithObserver(obs),
	}
}

// DFSOptions translates the search section into dfs options.
func (c Config) DFSOptions(log *slog.Logger, obs core.Observer) []dfs.Option {
	return []dfs.Option{
		dfs.WithMaxDepth(c.Search.MaxDepth),
		dfs.WithLogger(log),
		dfs.WithObserver(obs),
	}
}
