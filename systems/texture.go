package systems

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/ambientcg/core"
	"github.com/spaghettifunk/ambientcg/resources"
)

type TextureSystemConfig struct {
	/** @brief The maximum number of textures that can be registered at once. */
	MaxTextureCount uint32
}

type textureReference struct {
	referenceCount uint64
	handle         uint32
}

/**
 * @brief An in-memory texture registry. Keeps registered textures in a
 * fixed-size table with name lookups and reference counts. Re-registering
 * an existing name replaces its data and bumps the generation, which is how
 * hot-reloaded materials update in place.
 */
type TextureSystem struct {
	Config *TextureSystemConfig

	mutex sync.Mutex
	// Array of registered textures.
	registeredTextures []*resources.Texture
	// Table for texture lookups by name.
	registeredTextureTable map[string]*textureReference
}

func NewTextureSystem(config *TextureSystemConfig) (*TextureSystem, error) {
	if config.MaxTextureCount == 0 {
		err := fmt.Errorf("func NewTextureSystem - config.MaxTextureCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}

	ts := &TextureSystem{
		Config:                 config,
		registeredTextures:     make([]*resources.Texture, config.MaxTextureCount),
		registeredTextureTable: make(map[string]*textureReference),
	}

	// Invalidate all textures in the array.
	for i := uint32(0); i < config.MaxTextureCount; i++ {
		ts.registeredTextures[i] = &resources.Texture{
			ID:         resources.InvalidID,
			Generation: resources.InvalidID,
		}
	}

	return ts, nil
}

// RegisterTexture stores the image under the given name and returns the
// texture. An empty name is given a generated one, used for images
// synthesized at load time that have no source file.
func (ts *TextureSystem) RegisterTexture(name string, img *resources.ImageData, sampler resources.SamplerOptions) (*resources.Texture, error) {
	if img == nil || len(img.Pixels) == 0 {
		return nil, fmt.Errorf("func RegisterTexture - image must not be empty")
	}
	if name == "" {
		name = uuid.New().String()
	}

	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	if ref, exists := ts.registeredTextureTable[name]; exists {
		t := ts.registeredTextures[ref.handle]
		t.Width = img.Width
		t.Height = img.Height
		t.ChannelCount = img.ChannelCount
		t.InternalData = img
		t.Generation++
		ref.referenceCount++
		core.LogDebug("texture %s re-registered, generation %d", name, t.Generation)
		return t, nil
	}

	for i := uint32(0); i < ts.Config.MaxTextureCount; i++ {
		t := ts.registeredTextures[i]
		if t.ID != resources.InvalidID {
			continue
		}
		t.ID = i
		t.Name = name
		t.Width = img.Width
		t.Height = img.Height
		t.ChannelCount = img.ChannelCount
		t.Generation = 0
		t.InternalData = img
		ts.registeredTextureTable[name] = &textureReference{referenceCount: 1, handle: i}
		return t, nil
	}

	return nil, fmt.Errorf("texture table full (max %d), cannot register %s", ts.Config.MaxTextureCount, name)
}

// Acquire returns the texture registered under name, bumping its reference
// count.
func (ts *TextureSystem) Acquire(name string) (*resources.Texture, error) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	ref, exists := ts.registeredTextureTable[name]
	if !exists {
		return nil, fmt.Errorf("no texture registered under %s", name)
	}
	ref.referenceCount++
	return ts.registeredTextures[ref.handle], nil
}

// Release drops one reference to the named texture, freeing its table slot
// when the count reaches zero.
func (ts *TextureSystem) Release(name string) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	ref, exists := ts.registeredTextureTable[name]
	if !exists {
		core.LogWarn("func Release called for unknown texture %s", name)
		return
	}
	ref.referenceCount--
	if ref.referenceCount > 0 {
		return
	}
	t := ts.registeredTextures[ref.handle]
	t.ID = resources.InvalidID
	t.Generation = resources.InvalidID
	t.Name = ""
	t.InternalData = nil
	delete(ts.registeredTextureTable, name)
}
