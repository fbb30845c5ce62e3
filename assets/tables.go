// Package assets holds the embedded content tables and the depth palette.
package assets

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed monsters.yaml items.yaml
var dataFS embed.FS

// MonsterEntry is one row of the monster spawn table.
type MonsterEntry struct {
	Name     string `yaml:"name"`
	Glyph    string `yaml:"glyph"`
	HP       int    `yaml:"hp"`
	Power    int    `yaml:"power"`
	Defense  int    `yaml:"defense"`
	XP       int    `yaml:"xp"`
	Sight    int    `yaml:"sight"`
	Weight   int    `yaml:"weight"`
	MinDepth int    `yaml:"min_depth"`
}

// ItemEntry is one row of the item spawn table. Kind is "potion" or "rune".
type ItemEntry struct {
	Name      string `yaml:"name"`
	Glyph     string `yaml:"glyph"`
	Kind      string `yaml:"kind"`
	Magnitude int    `yaml:"magnitude"`
	Radius    int    `yaml:"radius"`
	Weight    int    `yaml:"weight"`
	MinDepth  int    `yaml:"min_depth"`
}

// Monsters and Items are the full tables, loaded at init.
var (
	Monsters []MonsterEntry
	Items    []ItemEntry
)

func init() {
	var m struct {
		Monsters []MonsterEntry `yaml:"monsters"`
	}
	mustLoad("monsters.yaml", &m)
	Monsters = m.Monsters

	var i struct {
		Items []ItemEntry `yaml:"items"`
	}
	mustLoad("items.yaml", &i)
	Items = i.Items
}

// mustLoad reads and unmarshals an embedded YAML file, panicking on error.
// The tables are compiled into the binary, so a failure here is a build
// defect, not a runtime condition.
func mustLoad(filename string, out any) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		panic(fmt.Sprintf("assets: read %s: %v", filename, err))
	}
	if err := yaml.Unmarshal(content, out); err != nil {
		panic(fmt.Sprintf("assets: parse %s: %v", filename, err))
	}
}

// MonstersForDepth returns the monster entries eligible at the given depth.
func MonstersForDepth(depth int) []MonsterEntry {
	var out []MonsterEntry
	for _, e := range Monsters {
		if e.MinDepth <= depth {
			out = append(out, e)
		}
	}
	return out
}

// ItemsForDepth returns the item entries eligible at the given depth.
func ItemsForDepth(depth int) []ItemEntry {
	var out []ItemEntry
	for _, e := range Items {
		if e.MinDepth <= depth {
			out = append(out, e)
		}
	}
	return out
}
