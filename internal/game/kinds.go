package game

// SnakeKind is the cosmetic snake type a player picks in the menu.
type SnakeKind int

const (
	SnakeNormal SnakeKind = iota
	SnakeDog
	SnakeTank
	SnakeCat
	SnakeDragon
	SnakeRobot
	SnakeShark
	SnakeFire
	SnakeIce
	SnakeRainbow
	SnakeZombie
	SnakeNinja
	SnakePirate
	SnakeAlien
	SnakeCandy
	SnakeGold
	SnakeSkeleton
	SnakeLava
	SnakeElectric
	SnakeDiamond
	snakeKindCount
)

// SnakeColors is a (main, dark, belly) colour triple.
type SnakeColors struct {
	Main, Dark, Belly RGB
}

type snakeKindInfo struct {
	id     string
	name   string
	colors [MaxPlayers]SnakeColors
}

var snakeKinds = [snakeKindCount]snakeKindInfo{
	SnakeNormal: {"normal", "Normal", [2]SnakeColors{
		{RGB{80, 200, 80}, RGB{50, 150, 50}, RGB{100, 220, 100}},
		{RGB{80, 130, 220}, RGB{50, 90, 170}, RGB{110, 160, 240}},
	}},
	SnakeDog: {"dog", "Dog", [2]SnakeColors{
		{RGB{180, 130, 70}, RGB{140, 95, 45}, RGB{210, 170, 100}},
		{RGB{200, 150, 90}, RGB{160, 110, 55}, RGB{230, 180, 120}},
	}},
	SnakeTank: {"tank", "Tank", [2]SnakeColors{
		{RGB{100, 120, 80}, RGB{70, 85, 55}, RGB{130, 150, 110}},
		{RGB{90, 100, 120}, RGB{65, 75, 95}, RGB{120, 130, 150}},
	}},
	SnakeCat: {"cat", "Cat", [2]SnakeColors{
		{RGB{180, 140, 180}, RGB{140, 100, 140}, RGB{210, 175, 210}},
		{RGB{200, 170, 130}, RGB{160, 130, 90}, RGB{230, 200, 165}},
	}},
	SnakeDragon: {"dragon", "Dragon", [2]SnakeColors{
		{RGB{180, 50, 50}, RGB{130, 30, 30}, RGB{210, 80, 60}},
		{RGB{50, 100, 180}, RGB{30, 70, 130}, RGB{80, 130, 210}},
	}},
	SnakeRobot: {"robot", "Robot", [2]SnakeColors{
		{RGB{160, 165, 175}, RGB{110, 115, 125}, RGB{190, 195, 205}},
		{RGB{175, 160, 140}, RGB{125, 110, 95}, RGB{205, 190, 175}},
	}},
	SnakeShark: {"shark", "Shark", [2]SnakeColors{
		{RGB{100, 115, 135}, RGB{70, 80, 100}, RGB{145, 160, 180}},
		{RGB{120, 105, 135}, RGB{85, 70, 100}, RGB{155, 140, 175}},
	}},
	SnakeFire: {"fire", "Fire", [2]SnakeColors{
		{RGB{230, 120, 30}, RGB{180, 80, 15}, RGB{255, 170, 60}},
		{RGB{230, 50, 30}, RGB{180, 30, 15}, RGB{255, 90, 60}},
	}},
	SnakeIce: {"ice", "Ice", [2]SnakeColors{
		{RGB{140, 195, 235}, RGB{95, 155, 205}, RGB{185, 220, 250}},
		{RGB{175, 215, 235}, RGB{135, 180, 205}, RGB{210, 238, 250}},
	}},
	SnakeRainbow: {"rainbow", "Rainbow", [2]SnakeColors{
		{RGB{255, 100, 100}, RGB{200, 60, 60}, RGB{255, 150, 150}},
		{RGB{100, 100, 255}, RGB{60, 60, 200}, RGB{150, 150, 255}},
	}},
	SnakeZombie: {"zombie", "Zombie", [2]SnakeColors{
		{RGB{115, 140, 85}, RGB{78, 100, 55}, RGB{148, 170, 112}},
		{RGB{130, 115, 140}, RGB{90, 78, 100}, RGB{162, 148, 170}},
	}},
	SnakeNinja: {"ninja", "Ninja", [2]SnakeColors{
		{RGB{50, 40, 65}, RGB{30, 22, 42}, RGB{78, 65, 90}},
		{RGB{40, 50, 65}, RGB{22, 30, 42}, RGB{65, 78, 90}},
	}},
	SnakePirate: {"pirate", "Pirate", [2]SnakeColors{
		{RGB{140, 80, 48}, RGB{100, 52, 28}, RGB{178, 112, 75}},
		{RGB{150, 58, 48}, RGB{108, 35, 28}, RGB{188, 88, 75}},
	}},
	SnakeAlien: {"alien", "Alien", [2]SnakeColors{
		{RGB{70, 220, 95}, RGB{42, 170, 62}, RGB{110, 248, 135}},
		{RGB{95, 175, 220}, RGB{62, 135, 170}, RGB{135, 208, 248}},
	}},
	SnakeCandy: {"candy", "Candy", [2]SnakeColors{
		{RGB{238, 135, 178}, RGB{198, 98, 138}, RGB{255, 178, 208}},
		{RGB{135, 198, 238}, RGB{98, 158, 198}, RGB{178, 228, 255}},
	}},
	SnakeGold: {"gold", "Gold", [2]SnakeColors{
		{RGB{218, 178, 48}, RGB{178, 138, 28}, RGB{248, 208, 78}},
		{RGB{198, 198, 208}, RGB{158, 158, 168}, RGB{228, 228, 238}},
	}},
	SnakeSkeleton: {"skeleton", "Skeleton", [2]SnakeColors{
		{RGB{218, 212, 198}, RGB{168, 162, 148}, RGB{238, 232, 222}},
		{RGB{198, 208, 218}, RGB{148, 158, 168}, RGB{222, 232, 238}},
	}},
	SnakeLava: {"lava", "Lava", [2]SnakeColors{
		{RGB{78, 38, 28}, RGB{48, 22, 14}, RGB{118, 58, 38}},
		{RGB{58, 38, 48}, RGB{34, 22, 28}, RGB{88, 58, 68}},
	}},
	SnakeElectric: {"electric", "Electric", [2]SnakeColors{
		{RGB{238, 218, 58}, RGB{198, 178, 38}, RGB{255, 238, 98}},
		{RGB{58, 178, 238}, RGB{38, 138, 198}, RGB{98, 208, 255}},
	}},
	SnakeDiamond: {"diamond", "Diamond", [2]SnakeColors{
		{RGB{158, 218, 238}, RGB{118, 178, 208}, RGB{198, 238, 252}},
		{RGB{218, 158, 218}, RGB{178, 118, 178}, RGB{238, 198, 238}},
	}},
}

// SnakeKindCount is the number of selectable snake kinds.
const SnakeKindCount = int(snakeKindCount)

func (k SnakeKind) Valid() bool { return k >= 0 && k < snakeKindCount }

// ID is the persisted identifier.
func (k SnakeKind) ID() string {
	if !k.Valid() {
		return snakeKinds[SnakeNormal].id
	}
	return snakeKinds[k].id
}

func (k SnakeKind) String() string {
	if !k.Valid() {
		return snakeKinds[SnakeNormal].name
	}
	return snakeKinds[k].name
}

// Colors returns the colour triple for the given player slot.
func (k SnakeKind) Colors(player int) SnakeColors {
	if !k.Valid() {
		k = SnakeNormal
	}
	return snakeKinds[k].colors[clamp(player, 0, MaxPlayers-1)]
}

// SquareHead reports whether the kind is drawn with a square head.
func (k SnakeKind) SquareHead() bool { return k == SnakeTank || k == SnakeRobot }

// Cycle steps delta kinds forward or backward, wrapping.
func (k SnakeKind) Cycle(delta int) SnakeKind {
	n := int(snakeKindCount)
	return SnakeKind(((int(k)+delta)%n + n) % n)
}

// ParseSnakeKind maps a persisted identifier back to a kind. Unknown ids
// fall back to SnakeNormal with ok=false.
func ParseSnakeKind(id string) (SnakeKind, bool) {
	for k := SnakeKind(0); k < snakeKindCount; k++ {
		if snakeKinds[k].id == id {
			return k, true
		}
	}
	return SnakeNormal, false
}
