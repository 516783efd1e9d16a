// Package config holds process-wide settings for touchfwd.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Debug enables debug logging.
var Debug bool

// Default values for the serve command.
const (
	DefaultPort             = 5001
	DefaultBind             = "0.0.0.0"
	DefaultReadChunk        = 1024
	DefaultMaxBuffer        = 64 << 10
	DefaultGeometryProvider = "xrandr"
	DefaultInjector         = "robotgo"
)

var (
	// ErrInvalidOffset is returned when an offset string is not of the form "x,y".
	ErrInvalidOffset = errors.New("invalid offset format, expected \"x,y\"")
	// ErrMissingDisplay is returned when no display name was configured.
	ErrMissingDisplay = errors.New("display name is required")
)

// Offset is a fixed translation applied to incoming coordinates.
type Offset struct {
	X, Y int
}

func (o Offset) String() string { return fmt.Sprintf("%d,%d", o.X, o.Y) }

// ParseOffset parses a literal "x,y" offset.
func ParseOffset(s string) (Offset, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Offset{}, fmt.Errorf("%w: %q: %v", ErrInvalidOffset, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Offset{}, fmt.Errorf("%w: %q: %v", ErrInvalidOffset, s, err)
	}
	return Offset{X: x, Y: y}, nil
}

// Serve is the configuration of the input handler server.
type Serve struct {
	Display          string        `yaml:"display"`
	XDisplay         string        `yaml:"x_display"`
	Bind             string        `yaml:"bind"`
	Port             int           `yaml:"port"`
	Offset           string        `yaml:"offset"`
	GeometryProvider string        `yaml:"geometry_provider"`
	Injector         string        `yaml:"injector"`
	ReadChunk        int           `yaml:"read_chunk"`
	MaxBuffer        int           `yaml:"max_buffer"`
	MaxSessions      int           `yaml:"max_sessions"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
}

// NewServe returns a Serve populated with defaults.
func NewServe() *Serve {
	return &Serve{
		XDisplay:         os.Getenv("DISPLAY"),
		Bind:             DefaultBind,
		Port:             DefaultPort,
		GeometryProvider: DefaultGeometryProvider,
		Injector:         DefaultInjector,
		ReadChunk:        DefaultReadChunk,
		MaxBuffer:        DefaultMaxBuffer,
	}
}

// LoadFile overlays the YAML file at path onto s. Keys missing from the file
// keep their current value.
func (s *Serve) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Addr returns the listen address.
func (s *Serve) Addr() string {
	return fmt.Sprintf("%s:%d", s.Bind, s.Port)
}

// ExplicitOffset returns the configured offset override, if any.
func (s *Serve) ExplicitOffset() (*Offset, error) {
	if s.Offset == "" {
		return nil, nil
	}
	o, err := ParseOffset(s.Offset)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Validate checks the configuration before anything is bound.
func (s *Serve) Validate() error {
	if s.Display == "" {
		return ErrMissingDisplay
	}
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("port %d out of range", s.Port)
	}
	if s.ReadChunk <= 0 {
		return fmt.Errorf("read chunk must be positive, got %d", s.ReadChunk)
	}
	// A full chunk plus the largest possible leftover must fit.
	if s.MaxBuffer < s.ReadChunk+8 {
		return fmt.Errorf("max buffer %d must be at least read chunk + 8 (%d)", s.MaxBuffer, s.ReadChunk+8)
	}
	if s.MaxSessions < 0 {
		return fmt.Errorf("max sessions must not be negative, got %d", s.MaxSessions)
	}
	if _, err := s.ExplicitOffset(); err != nil {
		return err
	}
	return nil
}
