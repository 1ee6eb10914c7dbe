package components

import (
	"strings"
	"testing"
)

func TestArtGenerate(t *testing.T) {
	art := NewArt().Generate()

	lines := strings.Split(art, "\n")
	if len(lines) != len(logoLines) {
		t.Fatalf("Generate() produced %d lines, want %d", len(lines), len(logoLines))
	}
	if strings.Contains(art, "  ") {
		t.Error("blank runs should be textured with filler characters")
	}
	if !strings.Contains(art, "$$") {
		t.Error("logo glyphs should survive texturing")
	}
}
