package gamedata

// StatDef is a stat delta granted by an item while equipped.
type StatDef struct {
	Stat  string `yaml:"stat"` // max_health, attack, defense or speed
	Delta int    `yaml:"delta"`
}

// ItemDef defines an item loaded from YAML.
type ItemDef struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Kind       string    `yaml:"kind"` // main_weapon, secondary_weapon or trinket
	Stats      []StatDef `yaml:"stats"`
	Capacities []string  `yaml:"capacities"` // Capacity IDs granted to the owner
}

// ItemsFile represents the structure of items.yaml.
type ItemsFile struct {
	Items []ItemDef `yaml:"items"`
}

// LoadItems loads item definitions from the embedded items.yaml file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.yaml")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
