package ambientcg

import (
	"fmt"
	"path"

	"github.com/spaghettifunk/ambientcg/math"
)

/**
 * @brief Describes one AmbientCG material to load: its identity, an
 * optional subfolder under the materials root, the requested resolution and
 * an optional UV scale. Pure value type; constructing one never touches the
 * filesystem. Descriptors are typically kept in a package-level table.
 */
type Material struct {
	/** @brief The material name, e.g. "Bricks090". */
	Name string
	/** @brief Optional path below the materials root the pack lives in. */
	Subfolder string
	/** @brief The requested resolution tier. */
	Resolution Resolution
	/** @brief Optional UV scale the material is rendered at. Nil means the host default (identity). */
	UVScale *math.Vec2
}

// PackName returns the name of the download this material comes in, which is
// both the directory name and the prefix of every file inside it. AmbientCG
// JPG packs are named "{name}_{resolution}-JPG".
func (m *Material) PackName(res Resolution) string {
	return fmt.Sprintf("%s_%s-JPG", m.Name, res)
}

// Dir returns the pack directory for the given resolution, relative to the
// materials root, including the descriptor's subfolder when set. Paths are
// slash-separated asset paths; byte sources map them to OS paths.
func (m *Material) Dir(res Resolution) string {
	if m.Subfolder != "" {
		return path.Join(m.Subfolder, m.PackName(res))
	}
	return m.PackName(res)
}

// SlotPath returns the path of one texture slot file at the given
// resolution, relative to the materials root. The layout is the one
// AmbientCG ships: "{pack}/{pack}_{Slot}.jpg".
func (m *Material) SlotPath(res Resolution, slot Slot) string {
	return path.Join(m.Dir(res), fmt.Sprintf("%s_%s.jpg", m.PackName(res), slot))
}
