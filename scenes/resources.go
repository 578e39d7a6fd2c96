package scenes

import (
	"io/fs"
	"sync"

	"github.com/automoto/survivor/assets"
	"github.com/automoto/survivor/assets/manifest"
)

// Resources is shared by every scene for the life of the window.
type Resources struct {
	FS       fs.FS
	Manifest manifest.Manifest
	// Seed fixes each run's randomness; 0 picks a new seed per run.
	Seed int64

	sprites *assets.SpriteSet
	once    sync.Once
}

func NewResources(fsys fs.FS, m manifest.Manifest, seed int64) *Resources {
	return &Resources{FS: fsys, Manifest: m, Seed: seed}
}

// Sprites decodes the manifest's images on first use.
func (r *Resources) Sprites() *assets.SpriteSet {
	r.once.Do(func() {
		r.sprites = assets.NewImageLoader(r.FS).LoadSprites(r.Manifest)
	})
	return r.sprites
}
