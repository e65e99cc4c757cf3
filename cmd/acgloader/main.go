/*
acgloader loads an AmbientCG material from a local pack directory and prints
what the loader resolved: selected resolution, attached texture slots and the
UV transform. With -watch it stays running and reloads the material whenever
its files change on disk.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spaghettifunk/ambientcg"
	"github.com/spaghettifunk/ambientcg/assets"
	"github.com/spaghettifunk/ambientcg/config"
	"github.com/spaghettifunk/ambientcg/core"
	"github.com/spaghettifunk/ambientcg/math"
	"github.com/spaghettifunk/ambientcg/resources"
	"github.com/spaghettifunk/ambientcg/systems"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional TOML config file")
		name       = flag.String("name", "", "material name, e.g. Bricks090")
		subfolder  = flag.String("subfolder", "", "subfolder below the materials root")
		resolution = flag.String("resolution", "2K", "requested resolution tier (1K..16K)")
		uvScale    = flag.String("uv-scale", "", "uv scale as \"x,y\", empty for the default transform")
		watch      = flag.Bool("watch", false, "watch the materials root and reload on changes")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		core.SetLevel("debug")
	}
	if *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			core.LogFatal(err.Error())
		}
	}

	res, err := ambientcg.ParseResolution(*resolution)
	if err != nil {
		core.LogFatal(err.Error())
	}

	material := &ambientcg.Material{
		Name:       *name,
		Subfolder:  *subfolder,
		Resolution: res,
	}
	if *uvScale != "" {
		scale, err := parseScale(*uvScale)
		if err != nil {
			core.LogFatal(err.Error())
		}
		material.UVScale = &scale
	}

	textures, err := systems.NewTextureSystem(&systems.TextureSystemConfig{MaxTextureCount: 1024})
	if err != nil {
		core.LogFatal(err.Error())
	}
	materials, err := systems.NewMaterialSystem(&systems.MaterialSystemConfig{MaxMaterialCount: 256})
	if err != nil {
		core.LogFatal(err.Error())
	}

	loader, err := ambientcg.NewLoader(cfg,
		assets.NewFileSource(cfg.MaterialsPath),
		assets.NewImageDecoder(),
		textures,
		materials,
	)
	if err != nil {
		core.LogFatal(err.Error())
	}

	loaded, err := loader.Load(material)
	if err != nil {
		core.LogFatal(err.Error())
	}
	report(loaded)

	if !*watch {
		return
	}

	manager, err := assets.NewAssetManager()
	if err != nil {
		core.LogFatal(err.Error())
	}
	defer manager.Close()
	if err := manager.Initialize(cfg.MaterialsPath); err != nil {
		core.LogFatal(err.Error())
	}

	core.LogInfo("watching %s", cfg.MaterialsPath)
	for packDir := range manager.Invalidations() {
		// Only reload when the change touches a pack of this material.
		if !strings.HasPrefix(filepath.Base(packDir), material.Name+"_") {
			continue
		}
		core.LogInfo("%s changed, reloading", packDir)
		materials.Invalidate(material.Name)
		loaded, err := loader.Load(material)
		if err != nil {
			core.LogError(err.Error())
			continue
		}
		report(loaded)
	}
}

func parseScale(s string) (math.Vec2, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return math.Vec2{}, fmt.Errorf("uv scale must be \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return math.Vec2{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return math.Vec2{}, err
	}
	return math.Vec2{X: float32(x), Y: float32(y)}, nil
}

func report(m *resources.Material) {
	core.LogInfo("material %s (id %d, generation %d)", m.Name, m.ID, m.Generation)
	for _, entry := range []struct {
		label string
		tm    *resources.TextureMap
	}{
		{"base colour", m.BaseColourMap},
		{"normal", m.NormalMap},
		{"metallic/roughness", m.MetallicRoughnessMap},
		{"occlusion", m.OcclusionMap},
		{"thickness", m.ThicknessMap},
	} {
		if entry.tm == nil {
			core.LogInfo("  %-18s <none>", entry.label)
			continue
		}
		t := entry.tm.Texture
		core.LogInfo("  %-18s %s %dx%d (%d channels)", entry.label, t.Name, t.Width, t.Height, t.ChannelCount)
	}
	core.LogInfo("  uv transform       x-axis (%g, %g) y-axis (%g, %g)",
		m.UVTransform.XAxis.X, m.UVTransform.XAxis.Y,
		m.UVTransform.YAxis.X, m.UVTransform.YAxis.Y)
}
