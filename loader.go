package ambientcg

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/ambientcg/config"
	"github.com/spaghettifunk/ambientcg/core"
	"github.com/spaghettifunk/ambientcg/math"
	"github.com/spaghettifunk/ambientcg/resources"
)

// ByteSource supplies raw file bytes for asset paths relative to the
// materials root. ReadBytes reports an absent file with ErrNotFound.
type ByteSource interface {
	ReadBytes(path string) ([]byte, error)
	Exists(path string) bool
}

// ImageDecoder is the codec collaborator. DecodeChannel decodes a source
// into a single-channel grayscale buffer, DecodeImage into an interleaved
// multi-channel image.
type ImageDecoder interface {
	DecodeChannel(data []byte) (*resources.ChannelBuffer, error)
	DecodeImage(data []byte) (*resources.ImageData, error)
}

// TextureRegistry is the host's GPU/asset registry. An empty name asks the
// registry to generate one; ownership of the image transfers on success.
type TextureRegistry interface {
	RegisterTexture(name string, img *resources.ImageData, sampler resources.SamplerOptions) (*resources.Texture, error)
}

// MaterialRegistry builds the final material from registered textures.
type MaterialRegistry interface {
	BuildMaterial(cfg *resources.MaterialConfig) (*resources.Material, error)
}

/**
 * @brief Drives a single material load: resolution negotiation, per-slot
 * byte reads, decoding, roughness/metalness packing and registration with
 * the host registries. Holds no per-load state; concurrent loads are
 * independent.
 */
type Loader struct {
	config    *config.Config
	source    ByteSource
	decoder   ImageDecoder
	textures  TextureRegistry
	materials MaterialRegistry
}

func NewLoader(cfg *config.Config, source ByteSource, decoder ImageDecoder, textures TextureRegistry, materials MaterialRegistry) (*Loader, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if source == nil || decoder == nil || textures == nil || materials == nil {
		err := fmt.Errorf("func NewLoader - source, decoder, textures and materials collaborators must all be set")
		core.LogError(err.Error())
		return nil, err
	}
	return &Loader{
		config:    cfg,
		source:    source,
		decoder:   decoder,
		textures:  textures,
		materials: materials,
	}, nil
}

// Load loads the material at the scale stored in the descriptor, or at the
// host default (identity UV transform) when the descriptor carries none.
func (l *Loader) Load(m *Material) (*resources.Material, error) {
	if m.UVScale != nil {
		return l.LoadWithUVScale(m, *m.UVScale)
	}
	return l.LoadWithUVScale(m, math.Vec2{})
}

// LoadWithUVScale loads the material at an explicit UV scale, which always
// wins over the descriptor's own UVScale field. A zero scale means the host
// default identity transform.
func (l *Loader) LoadWithUVScale(m *Material, uvScale math.Vec2) (*resources.Material, error) {
	res, err := l.resolve(m)
	if err != nil {
		return nil, err
	}

	// Read and decode everything before touching a registry, so a failed
	// load never leaves a partially registered material behind.
	rough, err := l.decodeChannelSlot(m, res, SlotRoughness)
	if err != nil {
		return nil, err
	}
	metal, err := l.decodeChannelSlot(m, res, SlotMetalness)
	if err != nil {
		return nil, err
	}

	var packed *resources.ImageData
	if rough != nil || metal != nil {
		packed, err = PackRoughnessMetallic(rough, metal)
		if err != nil {
			return nil, fmt.Errorf("material %s (%s): %w", m.Name, res, err)
		}
	} else {
		// A material may legitimately carry neither map; the slot is
		// simply not attached.
		core.LogDebug("material %s has no roughness or metalness maps, skipping combined map", m.Name)
	}

	type passthrough struct {
		slot Slot
		use  resources.TextureUse
		img  *resources.ImageData
	}
	slots := []passthrough{
		{slot: SlotColor, use: resources.TextureUseMapBaseColour},
		{slot: SlotNormalGL, use: resources.TextureUseMapNormal},
		{slot: SlotAmbientOcclusion, use: resources.TextureUseMapOcclusion},
		{slot: SlotDisplacement, use: resources.TextureUseMapThickness},
	}
	for i := range slots {
		img, err := l.decodeImageSlot(m, res, slots[i].slot)
		if err != nil {
			return nil, err
		}
		slots[i].img = img
	}

	sampler := resources.RepeatSampler()
	cfg := &resources.MaterialConfig{
		Name:                m.Name,
		Metallic:            l.config.Metallic,
		PerceptualRoughness: l.config.PerceptualRoughness,
		UVTransform:         uvTransform(uvScale),
	}

	for _, s := range slots {
		if s.img == nil {
			continue
		}
		texture, err := l.textures.RegisterTexture(m.PackName(res)+"_"+string(s.slot), s.img, sampler)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %s of material %s: %w", ErrRegistrationFailure, s.slot, m.Name, err)
		}
		tm := &resources.TextureMap{Texture: texture, Use: s.use, Sampler: sampler}
		switch s.use {
		case resources.TextureUseMapBaseColour:
			cfg.BaseColourMap = tm
		case resources.TextureUseMapNormal:
			cfg.NormalMap = tm
		case resources.TextureUseMapOcclusion:
			cfg.OcclusionMap = tm
		case resources.TextureUseMapThickness:
			cfg.ThicknessMap = tm
		}
	}
	if packed != nil {
		// Generated at runtime, no source path: let the registry name it.
		texture, err := l.textures.RegisterTexture("", packed, sampler)
		if err != nil {
			return nil, fmt.Errorf("%w: combined metallic/roughness map of material %s: %w", ErrRegistrationFailure, m.Name, err)
		}
		cfg.MetallicRoughnessMap = &resources.TextureMap{
			Texture: texture,
			Use:     resources.TextureUseMapMetallicRoughness,
			Sampler: sampler,
		}
	}

	material, err := l.materials.BuildMaterial(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: material %s: %w", ErrRegistrationFailure, m.Name, err)
	}
	core.LogDebug("loaded material %s at %s", m.Name, res)
	return material, nil
}

// resolve picks the resolution tier the load will read from.
func (l *Loader) resolve(m *Material) (Resolution, error) {
	if !l.config.ResolutionNegotiation {
		if !l.source.Exists(m.Dir(m.Resolution)) {
			return m.Resolution, fmt.Errorf("%w: material %s at %s (negotiation disabled)",
				ErrResolutionUnavailable, m.Name, m.Resolution)
		}
		return m.Resolution, nil
	}
	res, err := NegotiateResolution(m.Resolution, func(r Resolution) bool {
		return l.source.Exists(m.Dir(r))
	})
	if err != nil {
		return m.Resolution, fmt.Errorf("material %s: %w", m.Name, err)
	}
	if res != m.Resolution {
		core.LogInfo("material %s not available at %s, using %s", m.Name, m.Resolution, res)
	}
	return res, nil
}

// readSlot returns the slot's bytes, or (nil, nil) when the file does not
// exist. Every slot is optional in an AmbientCG pack.
func (l *Loader) readSlot(m *Material, res Resolution, slot Slot) ([]byte, string, error) {
	p := m.SlotPath(res, slot)
	data, err := l.source.ReadBytes(p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, p, nil
		}
		return nil, p, fmt.Errorf("read slot %s of material %s (%s): %w", slot, m.Name, p, err)
	}
	return data, p, nil
}

func (l *Loader) decodeChannelSlot(m *Material, res Resolution, slot Slot) (*resources.ChannelBuffer, error) {
	data, p, err := l.readSlot(m, res, slot)
	if err != nil || data == nil {
		return nil, err
	}
	cb, err := l.decoder.DecodeChannel(data)
	if err != nil {
		return nil, fmt.Errorf("%w: slot %s of material %s (%s): %w", ErrDecodeFailure, slot, m.Name, p, err)
	}
	return cb, nil
}

func (l *Loader) decodeImageSlot(m *Material, res Resolution, slot Slot) (*resources.ImageData, error) {
	data, p, err := l.readSlot(m, res, slot)
	if err != nil || data == nil {
		return nil, err
	}
	img, err := l.decoder.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: slot %s of material %s (%s): %w", ErrDecodeFailure, slot, m.Name, p, err)
	}
	return img, nil
}

func uvTransform(scale math.Vec2) math.Affine2 {
	if scale == (math.Vec2{}) {
		return math.Affine2Identity()
	}
	return math.Affine2FromScale(scale)
}
