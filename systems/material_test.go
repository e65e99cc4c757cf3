package systems

import (
	"testing"

	"github.com/spaghettifunk/ambientcg/resources"
)

func TestMaterialSystemBuildAndAcquire(t *testing.T) {
	ms, err := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 4})
	if err != nil {
		t.Fatalf("NewMaterialSystem: %v", err)
	}

	m, err := ms.BuildMaterial(&resources.MaterialConfig{Name: "Bricks090", Metallic: 1})
	if err != nil {
		t.Fatalf("BuildMaterial: %v", err)
	}
	if m.Name != "Bricks090" || m.Generation != 0 {
		t.Fatalf("unexpected material %+v", m)
	}

	got, err := ms.Acquire("Bricks090")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got != m {
		t.Fatal("Acquire returned a different material")
	}

	if _, err := ms.BuildMaterial(&resources.MaterialConfig{}); err == nil {
		t.Fatal("expected an error for an unnamed material")
	}
}

func TestMaterialSystemRebuildBumpsGeneration(t *testing.T) {
	ms, _ := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 4})

	first, _ := ms.BuildMaterial(&resources.MaterialConfig{Name: "Bricks090"})
	second, err := ms.BuildMaterial(&resources.MaterialConfig{Name: "Bricks090", Metallic: 0.5})
	if err != nil {
		t.Fatalf("BuildMaterial: %v", err)
	}
	if second != first {
		t.Fatal("rebuilding must update in place")
	}
	if second.Generation != 1 || second.Metallic != 0.5 {
		t.Fatalf("unexpected material %+v", second)
	}
}

func TestMaterialSystemInvalidate(t *testing.T) {
	ms, _ := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 4})

	m, _ := ms.BuildMaterial(&resources.MaterialConfig{Name: "Bricks090"})
	ms.Invalidate("Bricks090")
	if m.Generation != 1 {
		t.Fatalf("Generation = %d, want 1", m.Generation)
	}
	// unknown names are a no-op
	ms.Invalidate("nope")
}

func TestMaterialSystemReleaseEvicts(t *testing.T) {
	ms, _ := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 1})

	ms.BuildMaterial(&resources.MaterialConfig{Name: "Bricks090"})
	ms.Release("Bricks090")
	if _, err := ms.Acquire("Bricks090"); err == nil {
		t.Fatal("expected the material to be evicted")
	}
	if _, err := ms.BuildMaterial(&resources.MaterialConfig{Name: "Other"}); err != nil {
		t.Fatalf("BuildMaterial after eviction: %v", err)
	}
}
