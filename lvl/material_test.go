package lvl

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestChunkMaterial_ReadFromEmptySlots(t *testing.T) {
	uvSets := [5]uint32{3, 1, 4, 1, 5}
	payload := materialPayload(uvSets)

	c := ChunkMaterial{Kind: Materials}
	n, err := c.ReadFrom(bytes.NewReader(payload.b))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if n != int64(len(payload.b)) {
		t.Errorf("expected %d bytes consumed, got %d", len(payload.b), n)
	}

	if len(c.Materials) != 1 {
		t.Fatal("expected 1 material, got:", len(c.Materials))
	}
	m := c.Materials[0]
	for i, tex := range m.Textures {
		if tex != nil {
			t.Errorf("expected slot %d to be empty", i)
		}
	}
	if m.Attributes.UVSets != uvSets {
		t.Error("unexpected UV sets:", m.Attributes.UVSets)
	}
	if m.Attributes.TextureHashes != [5]uint32{} {
		t.Error("expected zero texture hashes:", m.Attributes.TextureHashes)
	}

	a := &m.Attributes
	if a.Flags != 0x0305 || !a.AdditiveLighting || a.Power != 16 || a.ShadingMode != 2 {
		t.Error("unexpected attribute prefix:", a)
	}
	if !a.Blend || a.BlendModes.Source != 5 || a.BlendModes.Destination != 6 {
		t.Error("unexpected blend attributes:", a.BlendModes)
	}
	if !a.AlphaTest || a.AlphaTestMode.Comparison != 7 || a.AlphaTestMode.Reference != 0.5 {
		t.Error("unexpected alpha test attributes:", a.AlphaTestMode)
	}
	if !a.DepthWrite || a.DepthComparison != 4 {
		t.Error("unexpected depth attributes")
	}
	if m.MaterialHash != 0xFEEDBEEF || a.Owner != 42 || a.ColorBufferWrite != 0xF {
		t.Error("unexpected identity attributes")
	}
	if a.Generators != [5]int32{0, 1, 2, 3, 4} {
		t.Error("unexpected generators:", a.Generators)
	}
	if a.EnvmapType != 1 || a.PlanarSheerEnvmapDistance != 100 {
		t.Error("unexpected envmap attributes")
	}
}

// texturedMaterialPayload builds a material payload whose first slot holds
// a texture and whose remaining four slots are empty.
func texturedMaterialPayload() *wire {
	w := new(wire).
		u32(0).u32(0).i32(0).
		color(0, 0, 0, 0).color(0, 0, 0, 0).
		f32(0).i32(0).
		i32(0).i32(0).i32(0).
		i32(0).i32(0).f32(0).
		i32(0).i32(0).
		u32(1).u32(2).u32(3)

	// Slot 0: occupied. Code points carry junk in their high bytes, which
	// the decoder must discard.
	w.u32(9).i32(3)
	w.u32(0xFFFFFF00 | 's').u32(0x1200 | 'k').u32(0xABCD0000 | 'y')
	w.i32(21).i32(2).i32(1) // format, filter, address
	w.name("m1")
	w.color(0.5, 0.5, 0.5, 1)
	w.u32(0xC0FFEE)

	for i := 0; i < 4; i++ {
		w.u32(0).i32(0)
	}

	// One of the five transform slots is present.
	w.i32(1)
	for i := 0; i < 16; i++ {
		w.f32(float32(i))
	}
	for i := 0; i < 4; i++ {
		w.i32(0)
	}

	for i := 0; i < 5; i++ {
		w.i32(0)
	}
	return w.i32(0).f32(0)
}

func TestChunkMaterial_ReadFromTexturedSlot(t *testing.T) {
	payload := texturedMaterialPayload()

	c := ChunkMaterial{Kind: Materials}
	n, err := c.ReadFrom(bytes.NewReader(payload.b))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if n != int64(len(payload.b)) {
		t.Errorf("expected %d bytes consumed, got %d", len(payload.b), n)
	}

	if len(c.Materials) != 1 {
		t.Fatal("expected 1 material, got:", len(c.Materials))
	}
	m := c.Materials[0]
	tex := m.Textures[0]
	if tex == nil {
		t.Fatal("expected slot 0 to hold a texture")
	}
	if tex.Name != "sky" {
		t.Errorf("expected name %q, got %q", "sky", tex.Name)
	}
	if tex.MaskName != "m1" {
		t.Errorf("expected mask name %q, got %q", "m1", tex.MaskName)
	}
	if tex.UVSet != 9 || tex.Format != 21 || tex.Filter != 2 || tex.Address != 1 {
		t.Error("unexpected texture codes:", tex)
	}
	if tex.Hash != 0xC0FFEE {
		t.Error("unexpected texture hash:", tex.Hash)
	}
	for i := 1; i < 5; i++ {
		if m.Textures[i] != nil {
			t.Errorf("expected slot %d to be empty", i)
		}
	}

	a := &m.Attributes
	if a.UVSets[0] != 9 || a.TextureHashes[0] != 0xC0FFEE {
		t.Error("slot 0 not mirrored into per-slot arrays")
	}
	if a.UseMatrices != [5]bool{true, false, false, false, false} {
		t.Error("unexpected transform presence:", a.UseMatrices)
	}
}

func TestChunkMaterial_ReadFromSequence(t *testing.T) {
	first := materialPayload([5]uint32{3, 1, 4, 1, 5})
	second := texturedMaterialPayload()
	payload := new(wire).raw(first.b).raw(second.b)

	c := ChunkMaterial{Kind: Materials}
	n, err := c.ReadFrom(bytes.NewReader(payload.b))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if n != int64(len(payload.b)) {
		t.Errorf("expected %d bytes consumed, got %d", len(payload.b), n)
	}
	if len(c.Materials) != 2 {
		t.Fatal("expected 2 materials, got:", len(c.Materials))
	}
	if c.Materials[0].MaterialHash != 0xFEEDBEEF {
		t.Error("unexpected first material hash:", c.Materials[0].MaterialHash)
	}
	tex := c.Materials[1].Textures[0]
	if tex == nil || tex.Name != "sky" {
		t.Error("unexpected second material texture:", tex)
	}
}

func TestChunkMaterial_ReadFromSingleRecordKind(t *testing.T) {
	// The MaterialObj form decodes one record and leaves trailing bytes
	// unread.
	payload := materialPayload([5]uint32{}).u32(0xDEAD)

	c := ChunkMaterial{Kind: MaterialObj}
	n, err := c.ReadFrom(bytes.NewReader(payload.b))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if n != int64(len(payload.b)-4) {
		t.Errorf("expected %d bytes consumed, got %d", len(payload.b)-4, n)
	}
	if len(c.Materials) != 1 {
		t.Error("expected 1 material, got:", len(c.Materials))
	}
}

func TestChunkMaterial_ReadFromEmptyPayload(t *testing.T) {
	c := ChunkMaterial{Kind: Materials}
	n, err := c.ReadFrom(bytes.NewReader(nil))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if n != 0 || len(c.Materials) != 0 {
		t.Error("expected an empty record sequence")
	}

	// An empty MaterialObj payload is missing its one record.
	c = ChunkMaterial{Kind: MaterialObj}
	if _, err := c.ReadFrom(bytes.NewReader(nil)); !errors.Is(err, io.EOF) {
		t.Error("expected short-read error, got:", err)
	}
}

func TestChunkMaterial_ReadFromTruncatedSecondRecord(t *testing.T) {
	first := materialPayload([5]uint32{})
	second := materialPayload([5]uint32{})
	payload := new(wire).raw(first.b).raw(second.b)

	c := ChunkMaterial{Kind: Materials}
	_, err := c.ReadFrom(bytes.NewReader(payload.b[:len(payload.b)-2]))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected short-read error, got:", err)
	}
}

func TestChunkMaterial_ReadFromNegativeMaskLength(t *testing.T) {
	w := new(wire).
		u32(0).u32(0).i32(0).
		color(0, 0, 0, 0).color(0, 0, 0, 0).
		f32(0).i32(0).
		i32(0).i32(0).i32(0).
		i32(0).i32(0).f32(0).
		i32(0).i32(0).
		u32(0).u32(0).u32(0)
	w.u32(0).i32(1).u32('a')
	w.i32(0).i32(0).i32(0)
	w.i32(-2) // mask name length

	c := ChunkMaterial{Kind: Materials}
	_, err := c.ReadFrom(bytes.NewReader(w.b))
	var lerr LengthError
	if !errors.As(err, &lerr) {
		t.Fatal("expected LengthError, got:", err)
	}
	if lerr.Length != -2 {
		t.Error("unexpected length in error:", lerr.Length)
	}
	if len(c.Materials) != 0 {
		t.Error("expected no partial material")
	}
}

func TestChunkMaterial_ReadFromTruncated(t *testing.T) {
	payload := materialPayload([5]uint32{})
	c := ChunkMaterial{Kind: Materials}
	_, err := c.ReadFrom(bytes.NewReader(payload.b[:len(payload.b)-2]))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected short-read error, got:", err)
	}
	if len(c.Materials) != 0 {
		t.Error("expected no partial material")
	}
}

func TestChunkMaterial_StructuralHashFromTwoCursors(t *testing.T) {
	payload := texturedMaterialPayload()

	var a, b ChunkMaterial
	if _, err := a.ReadFrom(bytes.NewReader(payload.b)); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, err := b.ReadFrom(bytes.NewReader(payload.b)); err != nil {
		t.Fatal("unexpected error:", err)
	}

	ha := a.Materials[0].Attributes.StructuralHash()
	hb := b.Materials[0].Attributes.StructuralHash()
	if ha != hb {
		t.Errorf("identical byte sequences hashed differently: %08X != %08X", ha, hb)
	}
}
