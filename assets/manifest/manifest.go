package manifest

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// FileName is the manifest's name inside the asset root.
const FileName = "assets.yaml"

// Manifest maps logical asset names to files under the asset root.
type Manifest struct {
	Images Images            `yaml:"images"`
	Sounds map[string]string `yaml:"sounds"`
}

type Images struct {
	Player      string              `yaml:"player"`
	Background  string              `yaml:"background"`
	Bullet      string              `yaml:"bullet"`
	EnemyBullet string              `yaml:"enemyBullet"`
	Shield      string              `yaml:"shield"`
	Enemies     map[string][]string `yaml:"enemies"`
	Items       map[string]string   `yaml:"items"`
}

func Default() Manifest {
	return Manifest{
		Images: Images{
			Player:      "image/player.gif",
			Background:  "image/bgimg.png",
			Bullet:      "image/bullet.png",
			EnemyBullet: "image/boss_bullet.png",
			Shield:      "image/shield.png",
			Enemies: map[string][]string{
				"basic":  frames("image/enemy1_%d.png", 4),
				"dasher": frames("image/enemy2_%d.png", 4),
				"boss":   frames("image/enemy_boss%d.png", 4),
			},
			Items: map[string]string{
				"heal":   "image/item_hp.png",
				"speed":  "image/item_speed.png",
				"power":  "image/item_power.png",
				"shield": "image/item_shield.png",
			},
		},
		Sounds: map[string]string{
			"bgm":        "sound/bgm.ogg",
			"fire":       "sound/bullet.ogg",
			"item":       "sound/item.ogg",
			"shieldUp":   "sound/shieldUp.ogg",
			"shieldDown": "sound/shieldDown.ogg",
			"lose":       "sound/lose.ogg",
		},
	}
}

func frames(pattern string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(pattern, i+1)
	}
	return out
}

// Load reads name from fsys over the defaults, so a partial manifest only
// overrides what it lists. A missing file is not an error.
func Load(fsys fs.FS, name string) (Manifest, error) {
	m := Default()
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("failed to read manifest %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Default(), fmt.Errorf("failed to parse manifest %s: %w", name, err)
	}
	return m, nil
}
