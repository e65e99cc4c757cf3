package ambientcg_test

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/ambientcg"
	"github.com/spaghettifunk/ambientcg/assets"
	"github.com/spaghettifunk/ambientcg/config"
	"github.com/spaghettifunk/ambientcg/math"
	"github.com/spaghettifunk/ambientcg/resources"
	"github.com/spaghettifunk/ambientcg/systems"
)

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writePack lays out an AmbientCG pack directory the way the downloads ship.
func writePack(t *testing.T, root, subfolder, name string, res ambientcg.Resolution, slots ...ambientcg.Slot) {
	t.Helper()
	pack := name + "_" + res.String() + "-JPG"
	dir := filepath.Join(root, filepath.FromSlash(subfolder), pack)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, slot := range slots {
		writeJPEG(t, filepath.Join(dir, pack+"_"+string(slot)+".jpg"), 8, 8)
	}
}

func newLoader(t *testing.T, root string) (*ambientcg.Loader, *systems.TextureSystem, *systems.MaterialSystem) {
	t.Helper()
	textures, err := systems.NewTextureSystem(&systems.TextureSystemConfig{MaxTextureCount: 64})
	if err != nil {
		t.Fatal(err)
	}
	materials, err := systems.NewMaterialSystem(&systems.MaterialSystemConfig{MaxMaterialCount: 16})
	if err != nil {
		t.Fatal(err)
	}
	loader, err := ambientcg.NewLoader(config.Default(),
		assets.NewFileSource(root),
		assets.NewImageDecoder(),
		textures,
		materials,
	)
	if err != nil {
		t.Fatal(err)
	}
	return loader, textures, materials
}

func TestLoadFromDiskNegotiatesDown(t *testing.T) {
	root := t.TempDir()
	writePack(t, root, "walls", "Bricks01", ambientcg.ResolutionOneK,
		ambientcg.SlotRoughness, ambientcg.SlotMetalness)
	writePack(t, root, "walls", "Bricks01", ambientcg.ResolutionTwoK,
		ambientcg.SlotColor, ambientcg.SlotRoughness, ambientcg.SlotMetalness)

	loader, _, _ := newLoader(t, root)
	m := &ambientcg.Material{
		Name:       "Bricks01",
		Subfolder:  "walls",
		Resolution: ambientcg.ResolutionFourK,
		UVScale:    &math.Vec2{X: 8, Y: 8},
	}
	loaded, err := loader.Load(m)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.BaseColourMap == nil || loaded.BaseColourMap.Texture.Name != "Bricks01_2K-JPG_Color" {
		t.Fatalf("expected the 2K base colour texture, got %+v", loaded.BaseColourMap)
	}
	if loaded.MetallicRoughnessMap == nil {
		t.Fatal("expected a combined metallic/roughness map")
	}
	tex := loaded.MetallicRoughnessMap.Texture
	if tex.Width != 8 || tex.Height != 8 || tex.ChannelCount != 3 {
		t.Fatalf("combined map is %dx%d with %d channels", tex.Width, tex.Height, tex.ChannelCount)
	}
	if got, want := loaded.UVTransform, math.Affine2FromScale(math.Vec2{X: 8, Y: 8}); got != want {
		t.Fatalf("uv transform = %+v, want %+v", got, want)
	}
	// maps without source files stay unattached
	if loaded.NormalMap != nil || loaded.OcclusionMap != nil || loaded.ThicknessMap != nil {
		t.Fatal("unexpected maps attached")
	}
}

func TestLoadFromDiskNoTier(t *testing.T) {
	root := t.TempDir()
	writePack(t, root, "", "Bricks01", ambientcg.ResolutionEightK, ambientcg.SlotColor)

	loader, textures, _ := newLoader(t, root)
	m := &ambientcg.Material{Name: "Bricks01", Resolution: ambientcg.ResolutionFourK}

	_, err := loader.Load(m)
	if !errors.Is(err, ambientcg.ErrResolutionUnavailable) {
		t.Fatalf("expected ErrResolutionUnavailable, got %v", err)
	}
	if _, err := textures.Acquire("Bricks01_8K-JPG_Color"); err == nil {
		t.Fatal("nothing may have been registered")
	}
}

func TestLoadFromDiskOnlyRoughness(t *testing.T) {
	root := t.TempDir()
	writePack(t, root, "", "Planks02", ambientcg.ResolutionOneK, ambientcg.SlotRoughness)

	loader, _, _ := newLoader(t, root)
	loaded, err := loader.Load(&ambientcg.Material{Name: "Planks02", Resolution: ambientcg.ResolutionOneK})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.MetallicRoughnessMap == nil {
		t.Fatal("a lone roughness map must still produce the combined map")
	}
	img, ok := loaded.MetallicRoughnessMap.Texture.InternalData.(*resources.ImageData)
	if !ok {
		t.Fatal("expected the registry to hold the packed image")
	}
	// no metalness source: every blue sample carries the non-metallic fill
	for i := 0; i < int(img.Width*img.Height); i++ {
		if img.Pixels[i*3+2] != ambientcg.MetallicFill {
			t.Fatalf("pixel %d: blue = %#x, want %#x", i, img.Pixels[i*3+2], ambientcg.MetallicFill)
		}
	}
}
