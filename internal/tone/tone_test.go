package tone

import (
	"errors"
	"testing"
)

func TestShapeOf(t *testing.T) {
	const noteCount = 4
	names := []string{"sphere", "cube", "tetra"}
	for tn := 0; tn < ShapeCount*noteCount; tn++ {
		got := ShapeOf(tn, noteCount).String()
		want := names[tn/noteCount]
		if got != want {
			t.Errorf("ShapeOf(%d) = %s, want %s", tn, got, want)
		}
	}
}

func TestScaleMonotonic(t *testing.T) {
	const total = 21
	prev := Scale(0, total)
	if prev != 3 {
		t.Errorf("Scale(0) = %v, want 3", prev)
	}
	for tn := 1; tn < total; tn++ {
		s := Scale(tn, total)
		if s >= prev {
			t.Errorf("Scale(%d) = %v, not below Scale(%d) = %v", tn, s, tn-1, prev)
		}
		prev = s
	}
	if prev != 1 {
		t.Errorf("Scale(%d) = %v, want 1", total-1, prev)
	}
}

func TestScaleSingleNote(t *testing.T) {
	if got := Scale(0, 1); got != 3 {
		t.Errorf("Scale(0, 1) = %v, want 3", got)
	}
}

func TestTextureRoundTrip(t *testing.T) {
	for _, noteCount := range []int{1, 3, 7} {
		for tn := 0; tn < ShapeCount*noteCount; tn++ {
			id := TextureID(tn, noteCount)
			order := TextureOrder(tn, noteCount)
			if got := FromTexture(id, order, noteCount); got != tn {
				t.Errorf("FromTexture(%d, %d, %d) = %d, want %d", id, order, noteCount, got, tn)
			}
		}
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name       string
		tone       int
		noteCount  int
		totalNotes int
		shape      string
		textureID  int
		order      int
		scale      float32
	}{
		{"lowest sphere", 0, 3, 9, "sphere", 0, 0, 3},
		{"cube order two", 5, 3, 9, "cube", 1, 2, 1.75},
		{"highest tetra", 8, 3, 9, "tetra", 2, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShapeOf(tt.tone, tt.noteCount).String(); got != tt.shape {
				t.Errorf("shape = %s, want %s", got, tt.shape)
			}
			if got := TextureID(tt.tone, tt.noteCount); got != tt.textureID {
				t.Errorf("textureID = %d, want %d", got, tt.textureID)
			}
			if got := TextureOrder(tt.tone, tt.noteCount); got != tt.order {
				t.Errorf("textureOrder = %d, want %d", got, tt.order)
			}
			if got := Scale(tt.tone, tt.totalNotes); got != tt.scale {
				t.Errorf("scale = %v, want %v", got, tt.scale)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		tone      int
		noteCount int
		ok        bool
	}{
		{0, 3, true},
		{8, 3, true},
		{9, 3, false},
		{-1, 3, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		err := Validate(tt.tone, tt.noteCount)
		if tt.ok && err != nil {
			t.Errorf("Validate(%d, %d) = %v, want nil", tt.tone, tt.noteCount, err)
		}
		if !tt.ok {
			var invalid *InvalidToneError
			if !errors.As(err, &invalid) {
				t.Errorf("Validate(%d, %d) = %v, want InvalidToneError", tt.tone, tt.noteCount, err)
			} else if invalid.Tone != tt.tone {
				t.Errorf("InvalidToneError.Tone = %d, want %d", invalid.Tone, tt.tone)
			}
		}
	}
}

func TestShapeNames(t *testing.T) {
	textures := map[Shape]string{
		ShapeSphere: "circles",
		ShapeCube:   "squares",
		ShapeTetra:  "triangles",
	}
	for s, want := range textures {
		if got := s.TextureName(); got != want {
			t.Errorf("%s.TextureName() = %s, want %s", s, got, want)
		}
		parsed, err := ParseShape(s.String())
		if err != nil || parsed != s {
			t.Errorf("ParseShape(%s) = %v, %v", s, parsed, err)
		}
	}
	if _, err := ParseShape("dodecahedron"); err == nil {
		t.Error("expected error for unknown shape")
	}
	if Shape(7).Valid() {
		t.Error("Shape(7) should not be valid")
	}
}
