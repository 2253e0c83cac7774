package quill

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func encodeTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestProcessImageResizesWideImages(t *testing.T) {
	src := encodeTestJPEG(t, 1600, 1200)
	_, w, h, err := processImage(bytes.NewReader(src))
	if err != nil {
		t.Fatalf("processImage: %v", err)
	}
	if w != 800 || h != 600 {
		t.Errorf("resized to %dx%d, want 800x600", w, h)
	}
}

func TestProcessImageKeepsSmallImages(t *testing.T) {
	src := encodeTestJPEG(t, 400, 300)
	_, w, h, err := processImage(bytes.NewReader(src))
	if err != nil {
		t.Fatalf("processImage: %v", err)
	}
	if w != 400 || h != 300 {
		t.Errorf("dimensions changed to %dx%d, want 400x300", w, h)
	}
}

func TestCopyStatic(t *testing.T) {
	staticDir := t.TempDir()
	outDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(staticDir, "robots-extra.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(staticDir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "img", "photo.jpg"), encodeTestJPEG(t, 1000, 500), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyStatic(staticDir, outDir); err != nil {
		t.Fatalf("CopyStatic: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "robots-extra.txt"))
	if err != nil || string(data) != "hi" {
		t.Errorf("plain file not copied verbatim: %v %q", err, data)
	}

	f, err := os.Open(filepath.Join(outDir, "img", "photo.jpg"))
	if err != nil {
		t.Fatalf("processed image missing: %v", err)
	}
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode processed image: %v", err)
	}
	if cfg.Width != 800 {
		t.Errorf("processed image width = %d, want 800", cfg.Width)
	}
}

func TestCopyStaticMissingDir(t *testing.T) {
	if err := CopyStatic(filepath.Join(t.TempDir(), "nope"), t.TempDir()); err != nil {
		t.Errorf("missing static dir must not be an error: %v", err)
	}
}
