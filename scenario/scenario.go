// Package scenario loads field of view scenarios from YAML files and
// runs them.
//
// A scenario describes a text map, an origin, and a radius, and
// optionally the expected result of computing the field of view. For
// example:
//
//	name: pillars
//	radius: 1
//	map: |
//	  .....
//	  .#.#.
//	  .....
//	expect: |
//	  ?...?
//	  ?#x#?
//	  ?...?
//
// If no origin is given, the center of the map is used.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"deedles.dev/xfov"
	"deedles.dev/xfov/geom"
	"deedles.dev/xfov/grid"
	"gopkg.in/yaml.v3"
)

const (
	// Unseen marks cells that are not visible in the output of Run.
	Unseen = '?'

	// Self marks the origin in the output of Run.
	Self = 'x'

	// DefaultOpaque is the set of glyphs that block sight if a
	// scenario does not specify its own.
	DefaultOpaque = "#"
)

// ErrMismatch is returned by Check when a scenario's result differs
// from what it expects.
var ErrMismatch = errors.New("result does not match expectation")

// Scenario is a single field of view query against a text map.
type Scenario struct {
	Name   string  `yaml:"name"`
	Radius int     `yaml:"radius"`
	Origin *Origin `yaml:"origin"`
	Opaque string  `yaml:"opaque"`
	Map    string  `yaml:"map"`
	Expect string  `yaml:"expect"`

	grid *grid.Grid[rune]
}

// Origin is the cell that a scenario looks from.
type Origin struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (o Origin) Point() geom.Point[int] {
	return geom.Pt(o.X, o.Y)
}

// DecodeFile decodes the scenario in the file at path.
func DecodeFile(path string) (*Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads, validates, and decodes a scenario.
func Decode(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var doc any
	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	err = validate(doc)
	if err != nil {
		return nil, err
	}

	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	err = s.init()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) init() error {
	g, err := grid.Parse(s.Map)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	s.grid = g

	if s.Opaque == "" {
		s.Opaque = DefaultOpaque
	}
	if s.Origin == nil {
		c := g.Rect.Center()
		s.Origin = &Origin{X: c.X, Y: c.Y}
	}
	if !g.In(s.Start()) {
		return fmt.Errorf("%w: origin %v is outside of the %vx%v map", ErrInvalid, s.Start(), g.Rect.Dx(), g.Rect.Dy())
	}

	return nil
}

// Grid returns the parsed map.
func (s *Scenario) Grid() *grid.Grid[rune] { return s.grid }

// Start returns the origin as a point.
func (s *Scenario) Start() geom.Point[int] {
	return s.Origin.Point()
}

// Blocks reports whether the glyph c blocks sight.
func (s *Scenario) Blocks(c rune) bool {
	return strings.ContainsRune(s.Opaque, c)
}

// Visit computes the field of view described by the scenario.
func (s *Scenario) Visit(sink xfov.Sink[int]) error {
	return xfov.Visit(s.Start(), s.grid.Bounds(), s.Radius, grid.Opacity(s.grid, s.Blocks), sink)
}

// Run computes the field of view and returns a copy of the map in
// which cells that were not seen are replaced with Unseen and the
// origin with Self.
func (s *Scenario) Run() (*grid.Grid[rune], error) {
	out := grid.New(s.grid.Bounds(), rune(Unseen))
	start := s.Start()

	err := s.Visit(xfov.SinkFunc[int](func(p geom.Point[int]) error {
		c := s.grid.At(p)
		if p == start {
			c = Self
		}
		out.Set(p, c)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Check runs the scenario and compares the result with Expect. It
// returns an error wrapping ErrMismatch if they differ.
func (s *Scenario) Check() error {
	got, err := s.Run()
	if err != nil {
		return err
	}
	return s.Compare(got)
}

// Compare compares got, as returned by Run, with Expect. It returns an
// error wrapping ErrMismatch if they differ.
func (s *Scenario) Compare(got *grid.Grid[rune]) error {
	want, err := grid.Parse(s.Expect)
	if err != nil {
		return fmt.Errorf("expect: %w", err)
	}

	if want.Rect != got.Rect {
		return fmt.Errorf("%w: expected a %v map, got %v", ErrMismatch, want.Rect, got.Rect)
	}
	if grid.Format(want) != grid.Format(got) {
		return fmt.Errorf("%w: expected\n%v\ngot\n%v", ErrMismatch, grid.Format(want), grid.Format(got))
	}
	return nil
}
