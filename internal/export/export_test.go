package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 12; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 30), B: 0x40, A: 0xff})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"png":   PNG,
		".PNG":  PNG,
		"webp":  WebP,
		" tga ": TGA,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
	if WebP.Ext() != ".webp" {
		t.Errorf("ext = %s", WebP.Ext())
	}
}

func TestEncodeMagic(t *testing.T) {
	img := testImage()

	var buf bytes.Buffer
	if err := Encode(&buf, img, PNG); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("png header = %q", buf.Bytes()[:8])
	}

	buf.Reset()
	if err := Encode(&buf, img, WebP); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) < 12 || string(b[:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Errorf("webp header = %q", b[:12])
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	img := testImage()
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		WebP: func(b *bytes.Buffer) (image.Image, error) { return nativewebp.Decode(b) },
		TGA:  func(b *bytes.Buffer) (image.Image, error) { return tga.Decode(b) },
	}
	for f, decode := range decoders {
		var buf bytes.Buffer
		if err := Encode(&buf, img, f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		out, err := decode(&buf)
		if err != nil {
			t.Fatalf("%s: decode: %v", f, err)
		}
		if out.Bounds().Size() != img.Bounds().Size() {
			t.Errorf("%s: size %v, want %v", f, out.Bounds().Size(), img.Bounds().Size())
			continue
		}
		// all three are lossless
		for _, p := range []image.Point{{0, 0}, {11, 6}, {5, 3}} {
			got := color.NRGBAModel.Convert(out.At(p.X, p.Y)).(color.NRGBA)
			if got != img.NRGBAAt(p.X, p.Y) {
				t.Errorf("%s: pixel %v = %v, want %v", f, p, got, img.NRGBAAt(p.X, p.Y))
			}
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.png")
	if err := WriteFile(path, testImage(), PNG); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty file")
	}
}
