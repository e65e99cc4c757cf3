package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/ambientcg/core"
	"github.com/spaghettifunk/ambientcg/resources"
)

type MaterialSystemConfig struct {
	/** @brief The maximum number of materials that can be built at once. */
	MaxMaterialCount uint32
}

/**
 * @brief An in-memory material registry. Builds materials from loader
 * output and tracks them by name with reference counts. Invalidate bumps a
 * material's generation, signalling consumers to re-acquire it after its
 * source files changed on disk.
 */
type MaterialSystem struct {
	Config *MaterialSystemConfig

	mutex     sync.Mutex
	nextID    uint32
	materials map[string]*resources.Material
	refCounts map[string]uint64
}

func NewMaterialSystem(config *MaterialSystemConfig) (*MaterialSystem, error) {
	if config.MaxMaterialCount == 0 {
		err := fmt.Errorf("func NewMaterialSystem - config.MaxMaterialCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	return &MaterialSystem{
		Config:    config,
		materials: make(map[string]*resources.Material),
		refCounts: make(map[string]uint64),
	}, nil
}

// BuildMaterial assembles a material from the loader's configuration.
// Rebuilding an existing name replaces its maps and bumps the generation.
func (ms *MaterialSystem) BuildMaterial(cfg *resources.MaterialConfig) (*resources.Material, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("func BuildMaterial - material name is required")
	}

	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if m, exists := ms.materials[cfg.Name]; exists {
		applyConfig(m, cfg)
		m.Generation++
		ms.refCounts[cfg.Name]++
		return m, nil
	}

	if uint32(len(ms.materials)) >= ms.Config.MaxMaterialCount {
		return nil, fmt.Errorf("material table full (max %d), cannot build %s", ms.Config.MaxMaterialCount, cfg.Name)
	}

	m := &resources.Material{
		ID:   ms.nextID,
		Name: cfg.Name,
	}
	ms.nextID++
	applyConfig(m, cfg)
	ms.materials[cfg.Name] = m
	ms.refCounts[cfg.Name] = 1
	return m, nil
}

// Acquire returns the material built under name, bumping its reference
// count.
func (ms *MaterialSystem) Acquire(name string) (*resources.Material, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	m, exists := ms.materials[name]
	if !exists {
		return nil, fmt.Errorf("no material built under %s", name)
	}
	ms.refCounts[name]++
	return m, nil
}

// Release drops one reference to the named material, evicting it when the
// count reaches zero.
func (ms *MaterialSystem) Release(name string) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	count, exists := ms.refCounts[name]
	if !exists {
		core.LogWarn("func Release called for unknown material %s", name)
		return
	}
	count--
	if count > 0 {
		ms.refCounts[name] = count
		return
	}
	delete(ms.materials, name)
	delete(ms.refCounts, name)
}

// Invalidate bumps the generation of the named material, typically in
// response to an asset manager invalidation event. Unknown names are
// ignored, packs on disk that were never loaded are none of our business.
func (ms *MaterialSystem) Invalidate(name string) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if m, exists := ms.materials[name]; exists {
		m.Generation++
		core.LogDebug("material %s invalidated, generation %d", name, m.Generation)
	}
}

func applyConfig(m *resources.Material, cfg *resources.MaterialConfig) {
	m.BaseColourMap = cfg.BaseColourMap
	m.NormalMap = cfg.NormalMap
	m.MetallicRoughnessMap = cfg.MetallicRoughnessMap
	m.OcclusionMap = cfg.OcclusionMap
	m.ThicknessMap = cfg.ThicknessMap
	m.Metallic = cfg.Metallic
	m.PerceptualRoughness = cfg.PerceptualRoughness
	m.UVTransform = cfg.UVTransform
}
