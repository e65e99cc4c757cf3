package resources

import "github.com/spaghettifunk/ambientcg/math"

/** @brief An invalid identifier, used for unregistered textures and materials. */
const InvalidID uint32 = 0xFFFFFFFF

/**
 * @brief A single-channel, row-major grid of byte samples, as produced by
 * decoding a grayscale source image (roughness or metalness map). Consumed
 * once by the channel packer and not retained.
 */
type ChannelBuffer struct {
	/** @brief The width of the buffer in samples. */
	Width uint32
	/** @brief The height of the buffer in samples. */
	Height uint32
	/** @brief The samples, len == Width*Height. */
	Pixels []uint8
}

// At returns the sample at (x, y). No bounds check beyond the slice's own.
func (cb *ChannelBuffer) At(x, y uint32) uint8 {
	return cb.Pixels[y*cb.Width+x]
}

/**
 * @brief A decoded, interleaved multi-channel image ready for registration
 * with a texture registry.
 */
type ImageData struct {
	/** @brief The number of channels per pixel. */
	ChannelCount uint8
	/** @brief The width of the image. */
	Width uint32
	/** @brief The height of the image. */
	Height uint32
	/** @brief The pixel data, len == Width*Height*ChannelCount. */
	Pixels []uint8
}

/** @brief Represents supported texture filtering modes. */
type TextureFilter int

const (
	TextureFilterModeNearest TextureFilter = 0x0
	TextureFilterModeLinear  TextureFilter = 0x1
)

type TextureRepeat int

const (
	TextureRepeatRepeat         TextureRepeat = 0x1
	TextureRepeatMirroredRepeat TextureRepeat = 0x2
	TextureRepeatClampToEdge    TextureRepeat = 0x3
	TextureRepeatClampToBorder  TextureRepeat = 0x4
)

/** @brief Sampler state requested when registering a texture. */
type SamplerOptions struct {
	FilterMin TextureFilter
	FilterMag TextureFilter
	RepeatU   TextureRepeat
	RepeatV   TextureRepeat
}

// RepeatSampler returns the sampler options used for every texture of a
// tiling material: linear filtering, repeat addressing on both axes.
func RepeatSampler() SamplerOptions {
	return SamplerOptions{
		FilterMin: TextureFilterModeLinear,
		FilterMag: TextureFilterModeLinear,
		RepeatU:   TextureRepeatRepeat,
		RepeatV:   TextureRepeatRepeat,
	}
}

/**
 * @brief Represents a registered texture. InternalData is owned by the
 * registry backend and maps to its GPU-side resources.
 */
type Texture struct {
	/** @brief The unique texture identifier. */
	ID uint32
	/** @brief The texture Width. */
	Width uint32
	/** @brief The texture Height. */
	Height uint32
	/** @brief The number of channels in the texture. */
	ChannelCount uint8
	/** @brief The texture Generation. Incremented every time the data is reloaded. */
	Generation uint32
	/** @brief The texture Name. */
	Name string
	/** @brief Backend-owned data for this texture. */
	InternalData interface{}
}

/** @brief A collection of texture uses within a PBR material. */
type TextureUse int

const (
	/** @brief An unknown use. This is default, but should never actually be used. */
	TextureUseUnknown TextureUse = 0x00
	/** @brief The texture is used as a base colour (albedo) map. */
	TextureUseMapBaseColour TextureUse = 0x01
	/** @brief The texture is used as a normal map. */
	TextureUseMapNormal TextureUse = 0x02
	/** @brief The texture is used as a combined metallic/roughness map. */
	TextureUseMapMetallicRoughness TextureUse = 0x03
	/** @brief The texture is used as an ambient occlusion map. */
	TextureUseMapOcclusion TextureUse = 0x04
	/** @brief The texture is used as a thickness (displacement) map. */
	TextureUseMapThickness TextureUse = 0x05
)

/**
 * @brief A structure which maps a texture, use and sampler state.
 */
type TextureMap struct {
	/** @brief A pointer to a Texture. */
	Texture *Texture
	/** @brief The use of the texture within the material. */
	Use TextureUse
	/** @brief The sampler state the texture was registered with. */
	Sampler SamplerOptions
}

/**
 * @brief Material configuration assembled by the loader and handed to a
 * material registry to build a material from.
 */
type MaterialConfig struct {
	/** @brief The name of the material. */
	Name string
	/** @brief The base colour texture map, if any. */
	BaseColourMap *TextureMap
	/** @brief The normal texture map, if any. */
	NormalMap *TextureMap
	/** @brief The combined metallic/roughness texture map, if any. */
	MetallicRoughnessMap *TextureMap
	/** @brief The ambient occlusion texture map, if any. */
	OcclusionMap *TextureMap
	/** @brief The thickness texture map, if any. */
	ThicknessMap *TextureMap
	/** @brief The metallic factor multiplied with the metallic channel. */
	Metallic float32
	/** @brief The perceptual roughness factor multiplied with the roughness channel. */
	PerceptualRoughness float32
	/** @brief The UV transform applied to all maps of the material. */
	UVTransform math.Affine2
}

/**
 * @brief A built material: the loader's final output. Lifetime is owned by
 * the registry that built it.
 */
type Material struct {
	/** @brief The material id. */
	ID uint32
	/** @brief The material generation. Incremented every time the material is changed. */
	Generation uint32
	/** @brief The material name. */
	Name string
	/** @brief The base colour texture map. */
	BaseColourMap *TextureMap
	/** @brief The normal texture map. */
	NormalMap *TextureMap
	/** @brief The combined metallic/roughness texture map. */
	MetallicRoughnessMap *TextureMap
	/** @brief The ambient occlusion texture map. */
	OcclusionMap *TextureMap
	/** @brief The thickness texture map. */
	ThicknessMap *TextureMap
	/** @brief The metallic factor. */
	Metallic float32
	/** @brief The perceptual roughness factor. */
	PerceptualRoughness float32
	/** @brief The UV transform applied to all maps of the material. */
	UVTransform math.Affine2
}
