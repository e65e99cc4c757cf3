/*
Package ambientcg loads AmbientCG material packs straight from their
distribution layout, no manual file conversions required.

A material is described by a value, typically kept in a package-level table:

	var Example000 = ambientcg.Material{
		Name:       "Example000",
		Subfolder:  "some/path/to/resource",
		Resolution: ambientcg.ResolutionOneK,
		// the uv scale the material is rendered at; materials repeat.
		// nil means the host default transform is used when loading.
		UVScale: &math.Vec2{X: 8, Y: 8},
	}

	var Example001 = ambientcg.Material{
		Name:      "Example001",
		Subfolder: "some/path/to/resource",
		// Resolution negotiates down to a smaller tier if 16K is not on
		// disk, so packs can ship only a subset of tiers.
		Resolution: ambientcg.ResolutionSixteenK,
	}

A Loader drives the whole pipeline against four small collaborator
interfaces (byte source, image decoder, texture registry, material
registry); the assets and systems subpackages provide filesystem and
in-memory implementations:

	loader, err := ambientcg.NewLoader(config.Default(),
		assets.NewFileSource("materials"),
		assets.NewImageDecoder(),
		textureSystem,
		materialSystem,
	)
	material, err := loader.Load(&Example000)

	// overrides the UV scale stored in the descriptor
	material, err = loader.LoadWithUVScale(&Example001, math.Vec2{X: 2, Y: 2})

Roughness/metallic maps are constructed at load time, with roughness data
and metallic data going in the green and blue channels respectively of a
generated map. Only JPEG packs are decoded by the baseline codec.
*/
package ambientcg
