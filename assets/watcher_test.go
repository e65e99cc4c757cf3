package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/ambientcg"
)

func TestAssetManagerIndexesSlotFiles(t *testing.T) {
	root := t.TempDir()
	packDir := filepath.Join(root, "Bricks090_1K-JPG")
	if err := os.Mkdir(packDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"Bricks090_1K-JPG_Color.jpg",
		"Bricks090_1K-JPG_Roughness.jpg",
		"README.txt", // not a slot file
	} {
		if err := os.WriteFile(filepath.Join(packDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	am, err := NewAssetManager()
	if err != nil {
		t.Fatalf("NewAssetManager: %v", err)
	}
	defer am.Close()

	if err := am.Initialize(root); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	slots := am.Slots(packDir)
	if len(slots) != 2 {
		t.Fatalf("indexed %d slot files, want 2", len(slots))
	}
	seen := map[ambientcg.Slot]bool{}
	for _, info := range slots {
		seen[info.Slot] = true
	}
	if !seen[ambientcg.SlotColor] || !seen[ambientcg.SlotRoughness] {
		t.Fatalf("unexpected slots %v", seen)
	}
}

func TestSlotFromPath(t *testing.T) {
	tests := []struct {
		path string
		slot ambientcg.Slot
		ok   bool
	}{
		{"m/Bricks090_2K-JPG/Bricks090_2K-JPG_Roughness.jpg", ambientcg.SlotRoughness, true},
		{"m/Bricks090_2K-JPG/Bricks090_2K-JPG_NormalGL.jpg", ambientcg.SlotNormalGL, true},
		{"m/Bricks090_2K-JPG/Bricks090_2K-JPG_Preview.jpg", "", false},
		{"m/Bricks090_2K-JPG/notes.txt", "", false},
	}
	for _, tt := range tests {
		slot, ok := slotFromPath(tt.path)
		if ok != tt.ok || slot != tt.slot {
			t.Errorf("slotFromPath(%q) = %q, %v; want %q, %v", tt.path, slot, ok, tt.slot, tt.ok)
		}
	}
}
