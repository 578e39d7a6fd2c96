package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"
	"testing/fstest"

	"github.com/automoto/survivor/assets/manifest"
)

func encodeGIF(t *testing.T, frames ...*image.Paletted) []byte {
	t.Helper()
	g := &gif.GIF{Config: image.Config{Width: 4, Height: 4}}
	for _, f := range frames {
		g.Image = append(g.Image, f)
		g.Delay = append(g.Delay, 10)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeGIFFramesComposites(t *testing.T) {
	palette := color.Palette{color.Transparent, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}}

	full := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
	for i := range full.Pix {
		full.Pix[i] = 1
	}
	patch := image.NewPaletted(image.Rect(1, 1, 2, 2), palette)
	patch.Pix[0] = 2

	frames, err := DecodeGIFFrames(bytes.NewReader(encodeGIF(t, full, patch)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(frames))
	}
	if b := frames[1].Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("frame bounds = %v, want full canvas", b)
	}

	tests := []struct {
		name  string
		frame int
		x, y  int
		want  color.RGBA
	}{
		{"first frame", 0, 1, 1, color.RGBA{R: 255, A: 255}},
		{"patched pixel", 1, 1, 1, color.RGBA{B: 255, A: 255}},
		{"kept pixel", 1, 3, 3, color.RGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		r, g, b, a := frames[tt.frame].At(tt.x, tt.y).RGBA()
		got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
		if got != tt.want {
			t.Fatalf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDecodeGIFFramesRejectsGarbage(t *testing.T) {
	if _, err := DecodeGIFFrames(bytes.NewReader([]byte("not a gif"))); err == nil {
		t.Fatal("expected an error")
	}
}

func TestImageLoaderMissingFiles(t *testing.T) {
	l := NewImageLoader(fstest.MapFS{})
	if _, err := l.LoadFrames("image/player.gif"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if img := l.Image("image/bullet.png"); img != nil {
		t.Fatal("missing image should be nil")
	}
	if !l.failed["image/bullet.png"] {
		t.Fatal("failure should be remembered")
	}

	s := l.LoadSprites(manifest.Default())
	if s.Background != nil || len(s.Player) != 0 || len(s.Enemies[3]) != 0 || s.Items[1] != nil {
		t.Fatal("every sprite should fall back to nil")
	}
}
