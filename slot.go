package ambientcg

/**
 * @brief A texture slot within a material, named exactly as in the file
 * names of AmbientCG JPG downloads.
 */
type Slot string

const (
	SlotAmbientOcclusion Slot = "AmbientOcclusion"
	SlotColor            Slot = "Color"
	SlotDisplacement     Slot = "Displacement"
	SlotMetalness        Slot = "Metalness"
	SlotNormalGL         Slot = "NormalGL"
	SlotRoughness        Slot = "Roughness"
)

// Slots lists every slot the loader probes for, in the order they are read.
var Slots = []Slot{
	SlotAmbientOcclusion,
	SlotColor,
	SlotDisplacement,
	SlotMetalness,
	SlotNormalGL,
	SlotRoughness,
}
