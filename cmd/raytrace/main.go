// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command raytrace is the batch driver: it loads a scene preset or a
// user-supplied YAML file, runs a fixed number of progressive passes,
// rebalancing between them, and writes the accumulated framebuffer as a
// PNG. Dispatch and flag handling follow gazed-vu/eg/eg.go's
// tag-table-lookup shape; the output-parameter struct follows
// gazed-vu/config.go's functional-options Config.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ehwan/raytracing/imageio"
	"github.com/ehwan/raytracing/scene"
)

// runConfig holds the attributes Attr functions below may override.
type runConfig struct {
	presetName string
	sceneFile  string
	outputPath string
	passes     int
	alpha      bool
}

var runDefaults = runConfig{
	presetName: "single_light_sphere",
	outputPath: "out.png",
	passes:     1,
	alpha:      false,
}

// Attr configures a run. For use with newRunConfig.
type Attr func(*runConfig)

func Preset(name string) Attr    { return func(c *runConfig) { c.presetName = name } }
func SceneFile(path string) Attr { return func(c *runConfig) { c.sceneFile = path } }
func Output(path string) Attr    { return func(c *runConfig) { c.outputPath = path } }
func Passes(n int) Attr          { return func(c *runConfig) { c.passes = n } }
func Alpha(enabled bool) Attr    { return func(c *runConfig) { c.alpha = enabled } }

func newRunConfig(attrs ...Attr) runConfig {
	c := runDefaults
	for _, attr := range attrs {
		attr(&c)
	}
	return c
}

func main() {
	presetName := flag.String("preset", runDefaults.presetName, "built-in scene preset name")
	sceneFile := flag.String("scene", "", "path to a YAML scene file (overrides -preset)")
	output := flag.String("o", runDefaults.outputPath, "output PNG path")
	passes := flag.Int("passes", runDefaults.passes, "number of progressive render passes")
	alpha := flag.Bool("alpha", runDefaults.alpha, "write an alpha channel")
	list := flag.Bool("list", false, "list built-in presets and exit")
	flag.Parse()

	if *list {
		listPresets()
		return
	}

	cfg := newRunConfig(
		Preset(*presetName),
		SceneFile(*sceneFile),
		Output(*output),
		Passes(*passes),
		Alpha(*alpha),
	)

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func listPresets() {
	presets, err := scene.Presets()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Presets are:")
	for name := range presets {
		fmt.Printf("   %s\n", name)
	}
}

func run(cfg runConfig) error {
	sceneCfg, err := loadScene(cfg)
	if err != nil {
		return err
	}

	world, err := sceneCfg.Build()
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}

	for i := 0; i < cfg.passes; i++ {
		world.Render()
		if i < cfg.passes-1 {
			world.Rebalance()
		}
	}

	f, err := os.Create(cfg.outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	buf := world.GetImageBuffer(cfg.alpha)
	if err := imageio.WritePNG(f, buf, world.Width(), world.Height(), cfg.alpha); err != nil {
		return fmt.Errorf("writing PNG: %w", err)
	}
	return nil
}

func loadScene(cfg runConfig) (scene.Config, error) {
	if cfg.sceneFile != "" {
		data, err := os.ReadFile(cfg.sceneFile)
		if err != nil {
			return scene.Config{}, fmt.Errorf("reading scene file: %w", err)
		}
		return scene.Load(data)
	}

	presets, err := scene.Presets()
	if err != nil {
		return scene.Config{}, err
	}
	sceneCfg, ok := presets[cfg.presetName]
	if !ok {
		return scene.Config{}, fmt.Errorf("unknown preset %q (use -list to see available presets)", cfg.presetName)
	}
	return sceneCfg, nil
}
