// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene builds World instances from YAML scene descriptions: the
// object list (geometry + material), the camera, and top-level render
// parameters. Scene construction and demo presets are an external
// adapter to the rendering core, grounded on gazed-vu/load/shd.go's
// yaml.v3-backed config struct (string keys mapped through small
// lookup tables into concrete Go values).
package scene

import (
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/ehwan/raytracing/camera"
	"github.com/ehwan/raytracing/geom"
	"github.com/ehwan/raytracing/material"
	"github.com/ehwan/raytracing/render"
)

//go:embed presets.yaml
var presetsYAML []byte

// Config is the top-level YAML document: render parameters, camera, and
// the object list.
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Threads     int     `yaml:"threads"`
	MaxBounce   float32 `yaml:"max_bounce"`
	ShootCount  int     `yaml:"shoot_count"`
	Seed        int64   `yaml:"seed"`
	CameraSpec  cameraSpec   `yaml:"camera"`
	Objects     []objectSpec `yaml:"objects"`
}

type cameraSpec struct {
	Position [3]float32 `yaml:"position"`
	Pitch    float32    `yaml:"pitch"`
	Yaw      float32    `yaml:"yaw"`
	Roll     float32    `yaml:"roll"`
	FOV      float32    `yaml:"fov"`
	Aspect   float32    `yaml:"aspect"`
	Near     float32    `yaml:"near"`
}

type geometrySpec struct {
	Kind   string     `yaml:"kind"` // sphere, plane, triangle
	Center [3]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`
	Point  [3]float32 `yaml:"point"`
	Normal [3]float32 `yaml:"normal"`
	P0     [3]float32 `yaml:"p0"`
	P1     [3]float32 `yaml:"p1"`
	P2     [3]float32 `yaml:"p2"`
}

type materialSpec struct {
	Kind        string       `yaml:"kind"` // mirror, fuzzy_mirror, diffuse, refraction, light, checker, multiply_checker_diffuse
	Color       [3]float32   `yaml:"color"`
	ColorB      [3]float32   `yaml:"color_b"`
	Fuzziness   float32      `yaml:"fuzziness"`
	SampleCount int          `yaml:"sample_count"`
	Index       float32      `yaml:"index"`
	Scale       float32      `yaml:"scale"`
	Of          *materialSpec `yaml:"of"` // inner material for Multiply(checker, of)
}

type objectSpec struct {
	Geometry geometrySpec `yaml:"geometry"`
	Material materialSpec `yaml:"material"`
}

// Presets returns the named built-in demo scenes bundled with the binary.
func Presets() (map[string]Config, error) {
	var presets map[string]Config
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		err = fmt.Errorf("scene: parsing presets: %w", err)
		slog.Error("scene load failed", "error", err)
		return nil, err
	}
	return presets, nil
}

// Load parses a Config from raw YAML bytes.
func Load(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		err = fmt.Errorf("scene: parsing scene: %w", err)
		slog.Error("scene load failed", "error", err)
		return Config{}, err
	}
	return cfg, nil
}

// Build constructs a fully wired World from the Config: allocates the
// framebuffer, sets up the camera, and inserts every described object.
func (c Config) Build() (*render.World, error) {
	w := &render.World{MaxBounce: c.MaxBounce, ShootCount: c.ShootCount}
	w.Init(c.Width, c.Height, c.Threads, c.Seed)

	eye := camera.NewEyeAngle()
	eye.Position = vec(c.CameraSpec.Position)
	eye.SetAngle(c.CameraSpec.Pitch, c.CameraSpec.Yaw, c.CameraSpec.Roll)
	eye.SetPerspective(c.CameraSpec.FOV, c.CameraSpec.Aspect, c.CameraSpec.Near)
	w.Camera = eye

	for _, obj := range c.Objects {
		g, err := buildGeometry(obj.Geometry)
		if err != nil {
			return nil, err
		}
		m, err := buildMaterial(obj.Material)
		if err != nil {
			return nil, err
		}
		w.Insert(render.Object{Geometry: g, Material: m})
	}
	return w, nil
}

func vec(a [3]float32) geom.Vector { return geom.V(a[0], a[1], a[2]) }

func buildGeometry(s geometrySpec) (geom.Geometry, error) {
	switch s.Kind {
	case "sphere":
		return geom.Sphere{Center: vec(s.Center), Radius: s.Radius}, nil
	case "plane":
		return geom.Plane{Point: vec(s.Point), Normal: vec(s.Normal).Unit()}, nil
	case "triangle":
		return geom.Triangle{
			P0: vec(s.P0), P1: vec(s.P1), P2: vec(s.P2),
			N0: vec(s.Normal), N1: vec(s.Normal), N2: vec(s.Normal),
		}, nil
	default:
		return nil, fmt.Errorf("scene: unknown geometry kind %q", s.Kind)
	}
}

func buildMaterial(s materialSpec) (material.Material, error) {
	switch s.Kind {
	case "mirror":
		return material.Mirror{Color: vec(s.Color)}, nil
	case "fuzzy_mirror":
		return material.FuzzyMirror{Color: vec(s.Color), Fuzziness: s.Fuzziness, SampleCount: s.SampleCount}, nil
	case "diffuse":
		return material.Diffuse{Color: vec(s.Color), SampleCount: s.SampleCount}, nil
	case "refraction":
		return material.Refraction{Color: vec(s.Color), Index: s.Index}, nil
	case "light":
		return material.LightSource{Color: vec(s.Color)}, nil
	case "checker":
		return material.Checker{ColorA: vec(s.Color), ColorB: vec(s.ColorB), Scale: s.Scale}, nil
	case "multiply_checker_diffuse":
		if s.Of == nil {
			return nil, fmt.Errorf("scene: multiply_checker_diffuse requires \"of\"")
		}
		inner, err := buildMaterial(*s.Of)
		if err != nil {
			return nil, err
		}
		checker := material.Checker{ColorA: vec(s.Color), ColorB: vec(s.ColorB), Scale: s.Scale}
		return material.Multiply{R1: checker, R2: inner}, nil
	default:
		return nil, fmt.Errorf("scene: unknown material kind %q", s.Kind)
	}
}
