package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/automoto/survivor/assets/manifest"
	"github.com/automoto/survivor/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteSet holds every image the survival scene draws. A nil image means the
// file was missing and the renderer draws a shape instead.
type SpriteSet struct {
	Player      []*ebiten.Image
	Background  *ebiten.Image
	Bullet      *ebiten.Image
	EnemyBullet *ebiten.Image
	Shield      *ebiten.Image
	Enemies     map[sim.EnemyKind][]*ebiten.Image
	Items       map[sim.ItemKind]*ebiten.Image
}

// ImageLoader reads images from an asset root and caches them by path.
type ImageLoader struct {
	fsys   fs.FS
	cache  map[string][]*ebiten.Image
	failed map[string]bool
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:   fsys,
		cache:  make(map[string][]*ebiten.Image),
		failed: make(map[string]bool),
	}
}

// LoadFrames returns every frame of the image at path. Still images have one
// frame; GIFs have one per animation frame.
func (l *ImageLoader) LoadFrames(path string) ([]*ebiten.Image, error) {
	if frames, ok := l.cache[path]; ok {
		return frames, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	var frames []*ebiten.Image
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		imgs, err := DecodeGIFFrames(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode gif %s: %w", path, err)
		}
		for _, img := range imgs {
			frames = append(frames, ebiten.NewImageFromImage(img))
		}
	} else {
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create image from bytes for %s: %w", path, err)
		}
		frames = []*ebiten.Image{img}
	}

	l.cache[path] = frames
	return frames, nil
}

// Image returns the first frame at path, or nil if it cannot be loaded. Each
// failing path is logged once.
func (l *ImageLoader) Image(path string) *ebiten.Image {
	frames := l.Frames(path)
	if len(frames) == 0 {
		return nil
	}
	return frames[0]
}

// Frames is LoadFrames with failures logged once and reported as nil.
func (l *ImageLoader) Frames(path string) []*ebiten.Image {
	if path == "" || l.failed[path] {
		return nil
	}
	frames, err := l.LoadFrames(path)
	if err != nil {
		l.failed[path] = true
		log.Printf("Warning: %v", err)
		return nil
	}
	return frames
}

// LoadSprites resolves every image the manifest names.
func (l *ImageLoader) LoadSprites(m manifest.Manifest) *SpriteSet {
	s := &SpriteSet{
		Player:      l.Frames(m.Images.Player),
		Background:  l.Image(m.Images.Background),
		Bullet:      l.Image(m.Images.Bullet),
		EnemyBullet: l.Image(m.Images.EnemyBullet),
		Shield:      l.Image(m.Images.Shield),
		Enemies:     make(map[sim.EnemyKind][]*ebiten.Image),
		Items:       make(map[sim.ItemKind]*ebiten.Image),
	}

	for _, kind := range []sim.EnemyKind{sim.EnemyBasic, sim.EnemyDasher, sim.EnemyBoss} {
		var frames []*ebiten.Image
		for _, path := range m.Images.Enemies[kind.String()] {
			if img := l.Image(path); img != nil {
				frames = append(frames, img)
			}
		}
		s.Enemies[kind] = frames
	}
	for _, kind := range sim.ItemKinds {
		s.Items[kind] = l.Image(m.Images.Items[kind.String()])
	}
	return s
}

// DecodeGIFFrames decodes an animated GIF into full-size frames, compositing
// each partial frame over the previous one.
func DecodeGIFFrames(r io.Reader) ([]image.Image, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)

	frames := make([]image.Image, 0, len(g.Image))
	for i, frame := range g.Image {
		prev := image.NewRGBA(bounds)
		draw.Draw(prev, bounds, canvas, bounds.Min, draw.Src)

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		snapshot := image.NewRGBA(bounds)
		draw.Draw(snapshot, bounds, canvas, bounds.Min, draw.Src)
		frames = append(frames, snapshot)

		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				draw.Draw(canvas, frame.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				canvas = prev
			}
		}
	}
	return frames, nil
}
