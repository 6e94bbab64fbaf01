package levfile_test

import (
	"testing"

	"github.com/levtools/levfile"
)

func testAttributes() levfile.Attributes {
	return levfile.Attributes{
		Flags:            0x0305,
		AdditiveLighting: true,
		Color:            levfile.Color{R: 1, G: 0.5, B: 0.25, A: 1},
		Specular:         levfile.Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
		Power:            16,
		ShadingMode:      2,
		DepthWrite:       true,
		DepthComparison:  4,
		Blend:            true,
		BlendModes:       levfile.BlendModes{Source: 5, Destination: 6},
		AlphaTest:        true,
		AlphaTestMode:    levfile.AlphaTestMode{Comparison: 7, Reference: 0.5},
		Owner:            42,
		ColorBufferWrite: 0xF,
		UseMatrices:      [5]bool{true, false, true, false, false},
		Generators:       [5]int32{1, 2, 3, 4, 5},
		UVSets:           [5]uint32{0, 1, 0, 1, 0},
		TextureHashes:    [5]uint32{0xDEAD, 0xBEEF, 0, 0, 0},
		EnvmapType:       1,
		PlanarSheerEnvmapDistance: 100,
	}
}

func TestAttributes_StructuralHash(t *testing.T) {
	a := testAttributes()
	b := testAttributes()

	if a.StructuralHash() != b.StructuralHash() {
		t.Error("equal attribute blocks produced different hashes")
	}
	if a.StructuralHash() != a.StructuralHash() {
		t.Error("hash is not a pure function of the receiver")
	}
}

func TestAttributes_StructuralHashSensitivity(t *testing.T) {
	base := testAttributes()
	h := base.StructuralHash()

	mutations := []func(*levfile.Attributes){
		func(a *levfile.Attributes) { a.Flags++ },
		func(a *levfile.Attributes) { a.AdditiveLighting = false },
		func(a *levfile.Attributes) { a.Color.G = 0.75 },
		func(a *levfile.Attributes) { a.Power = 17 },
		func(a *levfile.Attributes) { a.DepthWrite = false },
		func(a *levfile.Attributes) { a.BlendModes.Destination = 7 },
		func(a *levfile.Attributes) { a.AlphaTestMode.Reference = 0.25 },
		func(a *levfile.Attributes) { a.Owner = 43 },
		func(a *levfile.Attributes) { a.UseMatrices[1] = true },
		func(a *levfile.Attributes) { a.Generators[4] = 6 },
		func(a *levfile.Attributes) { a.UVSets[0] = 2 },
		func(a *levfile.Attributes) { a.TextureHashes[2] = 1 },
		func(a *levfile.Attributes) { a.EnvmapType = 2 },
		func(a *levfile.Attributes) { a.PlanarSheerEnvmapDistance = 99 },
	}

	for i, mutate := range mutations {
		a := testAttributes()
		mutate(&a)
		if a.StructuralHash() == h {
			t.Errorf("mutation %d did not change the hash", i)
		}
	}
}
