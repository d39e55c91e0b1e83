package gamedata

// PointDef is an authored coordinate. Values are kept as numbers so that
// malformed maps can be reported instead of silently truncated.
type PointDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpawnDef places an enemy in a room. X and Y are fractions of the room size.
type SpawnDef struct {
	Enemy string  `yaml:"enemy"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// RoomDef describes one room of a dungeon.
type RoomDef struct {
	X       float64    `yaml:"x"`
	Y       float64    `yaml:"y"`
	Seed    int64      `yaml:"seed,omitempty"` // 0 means derived from the game seed
	Enemies []SpawnDef `yaml:"enemies"`
	Loot    []string   `yaml:"loot"` // Item IDs
}

// DungeonDef is a fully authored dungeon map.
type DungeonDef struct {
	ID    string    `yaml:"id"`
	Name  string    `yaml:"name"`
	Hero  string    `yaml:"hero"` // Hero definition ID
	Start PointDef  `yaml:"start"`
	Rooms []RoomDef `yaml:"rooms"`
}

// DungeonsFile represents the structure of dungeons.yaml.
type DungeonsFile struct {
	Dungeons []DungeonDef `yaml:"dungeons"`
}

// LoadDungeons loads dungeon definitions from the embedded dungeons.yaml file.
func LoadDungeons() ([]DungeonDef, error) {
	file, err := Load[DungeonsFile]("dungeons.yaml")
	if err != nil {
		return nil, err
	}
	return file.Dungeons, nil
}
