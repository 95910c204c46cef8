package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestRun_RendersOffsetComposite(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.png")
	ov := filepath.Join(dir, "overlay.png")
	out := filepath.Join(dir, "out.png")
	writePNG(t, base, 8, 8, color.RGBA{R: 200, A: 255})
	writePNG(t, ov, 8, 8, color.RGBA{B: 200, A: 255})

	var stdout, stderr bytes.Buffer
	code := run([]string{"-base", base, "-overlay", ov, "-dx", "4", "-opacity", "100", "-interp", "nearest", "-out", out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if strings.TrimSpace(stdout.String()) != out {
		t.Fatalf("stdout = %q", stdout.String())
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Fatalf("viewport should default to base size, got %v", img.Bounds())
	}
	r, _, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 200 || b != 0 {
		t.Fatalf("left half should show base")
	}
	r, _, b, _ = img.At(6, 1).RGBA()
	if r != 0 || b>>8 != 200 {
		t.Fatalf("right half should show overlay")
	}
}

func TestRun_RejectsBadArguments(t *testing.T) {
	cases := [][]string{
		{"-overlay", "b.png", "-out", "o.png"},
		{"-base", "a.png", "-overlay", "b.png", "-out", "o.png", "-opacity", "120"},
		{"-base", "a.png", "-overlay", "b.png", "-out", "o.jpg"},
		{"-base", "a.png", "-overlay", "b.png", "-out", "o.png", "-interp", "cubic"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != 2 {
			t.Fatalf("args %v: exit %d, want 2", args, code)
		}
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-base", filepath.Join(dir, "nope.png"), "-overlay", filepath.Join(dir, "nope2.png"), "-out", filepath.Join(dir, "o.png")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}
