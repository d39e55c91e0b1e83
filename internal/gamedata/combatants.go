package gamedata

// HeroDef defines the playable hero loaded from YAML.
type HeroDef struct {
	ID      string   `yaml:"id"`      // Unique identifier (e.g., "knight")
	Name    string   `yaml:"name"`    // Display name
	Glyph   string   `yaml:"glyph"`   // Single character for rendering
	Color   string   `yaml:"color"`   // Hex color code
	Health  int      `yaml:"health"`  // Base health
	Attack  int      `yaml:"attack"`  // Base attack power
	Defense int      `yaml:"defense"` // Base defense value
	Speed   float64  `yaml:"speed"`   // Distance per update
	Items   []string `yaml:"items"`   // Item IDs the hero starts with, equipped
}

// GlyphRune returns the glyph as a rune for rendering.
func (h *HeroDef) GlyphRune() rune {
	return glyphRune(h.Glyph)
}

// EnemyDef defines an enemy type loaded from YAML.
type EnemyDef struct {
	ID         string   `yaml:"id"`         // Unique identifier (e.g., "wisp")
	Name       string   `yaml:"name"`       // Display name
	Glyph      string   `yaml:"glyph"`      // Single character for rendering
	Color      string   `yaml:"color"`      // Hex color code
	Health     int      `yaml:"health"`     // Base health
	Attack     int      `yaml:"attack"`     // Base attack power
	Defense    int      `yaml:"defense"`    // Base defense value
	Speed      float64  `yaml:"speed"`      // Distance per update
	Capacities []string `yaml:"capacities"` // Capacity IDs
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	return glyphRune(e.Glyph)
}

// HeroesFile represents the structure of heroes.yaml.
type HeroesFile struct {
	Heroes []HeroDef `yaml:"heroes"`
}

// EnemiesFile represents the structure of enemies.yaml.
type EnemiesFile struct {
	Enemies []EnemyDef `yaml:"enemies"`
}

// LoadHeroes loads hero definitions from the embedded heroes.yaml file.
func LoadHeroes() ([]HeroDef, error) {
	file, err := Load[HeroesFile]("heroes.yaml")
	if err != nil {
		return nil, err
	}
	return file.Heroes, nil
}

// LoadEnemies loads enemy definitions from the embedded enemies.yaml file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
