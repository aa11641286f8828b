package texture

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ftrvxmtrx/tga"
)

func writeImage(t *testing.T, path string, w, h int, c color.NRGBA, encode func(io.Writer, image.Image) error) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writePNG(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	writeImage(t, path, w, h, c, png.Encode)
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	green := color.NRGBA{R: 0x10, G: 0x80, B: 0x30, A: 0xff}
	writePNG(t, filepath.Join(dir, "felt.png"), 2, 2, green)
	writeImage(t, filepath.Join(dir, "speed.TGA"), 3, 2, green, tga.Encode)

	tests := []struct {
		file string
		w, h int
	}{
		{"felt.png", 2, 2},
		{"speed.TGA", 3, 2},
	}
	for _, tt := range tests {
		img, err := LoadTexture(filepath.Join(dir, tt.file))
		if err != nil {
			t.Errorf("%s: %v", tt.file, err)
			continue
		}
		if img.Bounds().Dx() != tt.w || img.Bounds().Dy() != tt.h {
			t.Errorf("%s: bounds = %v", tt.file, img.Bounds())
		}
		if got := img.NRGBAAt(1, 1); got != green {
			t.Errorf("%s: pixel = %v, want %v", tt.file, got, green)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, "felt.bmp"), []byte("BM"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTexture(filepath.Join(dir, "felt.bmp")); err == nil {
		t.Error("expected unknown extension error")
	}
}

func TestIndex(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Worsted.png"), 2, 2, color.NRGBA{A: 255})
	writePNG(t, filepath.Join(dir, "cloth", "napped.png"), 2, 2, color.NRGBA{A: 255})
	if err := os.WriteFile(filepath.Join(dir, "worsted.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	idx := BuildIndex(dir)
	if idx.Len() != 2 {
		t.Errorf("Len = %d, want 2", idx.Len())
	}
	p, ok := idx.ResolvePath("WORSTED")
	if !ok || filepath.Ext(p) != ".png" {
		t.Errorf("worsted = %q, %v", p, ok)
	}
	if _, ok := idx.ResolvePath(`felts\napped.tga`); !ok {
		t.Error("napped not resolved by stem")
	}
	if _, ok := idx.ResolvePath("speed"); ok {
		t.Error("resolved a missing texture")
	}
	if BuildIndex("").Len() != 0 {
		t.Error("empty dir should give empty index")
	}
}

func TestCache(t *testing.T) {
	dir := t.TempDir()
	green := color.NRGBA{R: 0x10, G: 0x80, B: 0x30, A: 0xff}
	writePNG(t, filepath.Join(dir, "felt.png"), 4, 3, green)
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCache(BuildIndex(dir))

	var wg sync.WaitGroup
	imgs := make([]*image.NRGBA, 8)
	for i := range imgs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			img, err := c.Resolve("felt")
			if err != nil {
				t.Error(err)
			}
			imgs[i] = img
		}(i)
	}
	wg.Wait()
	for _, img := range imgs {
		if img != imgs[0] {
			t.Fatal("cache returned different images")
		}
	}
	if imgs[0] == nil {
		t.Fatal("no image")
	}
	if imgs[0].Bounds().Dx() != 4 || imgs[0].NRGBAAt(1, 1) != green {
		t.Errorf("decoded %v, pixel %v", imgs[0].Bounds(), imgs[0].NRGBAAt(1, 1))
	}

	if _, err := c.Resolve("broken"); err == nil {
		t.Error("expected decode error")
	}
	if _, err := c.Resolve("missing"); err == nil {
		t.Error("expected not found error")
	}
}
