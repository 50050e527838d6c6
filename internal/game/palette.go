package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{
		R: uint8(clamp(int(c.R)+dr, 0, 255)),
		G: uint8(clamp(int(c.G)+dg, 0, 255)),
		B: uint8(clamp(int(c.B)+db, 0, 255)),
	}
}

// Palette holds the colours hosts use for non-snake entities.
var Palette = struct {
	Grass           RGB
	GrassAlt        RGB
	Ruin            RGB
	RuinEdge        RGB
	Tree            RGB
	TreeTrunk       RGB
	Food            RGB
	BonusFood       RGB
	Invincible      RGB
	MegaFood        RGB
	Coin            RGB
	Bill            RGB
	Bullet          RGB
	Dog             RGB
	DogDark         RGB
	InvincibleFlash RGB
}{
	Grass:           RGB{34, 85, 34},
	GrassAlt:        RGB{40, 95, 40},
	Ruin:            RGB{120, 110, 100},
	RuinEdge:        RGB{85, 78, 70},
	Tree:            RGB{30, 130, 50},
	TreeTrunk:       RGB{100, 70, 40},
	Food:            RGB{220, 50, 50},
	BonusFood:       RGB{255, 200, 0},
	Invincible:      RGB{0, 200, 255},
	MegaFood:        RGB{255, 0, 255},
	Coin:            RGB{255, 215, 0},
	Bill:            RGB{85, 200, 85},
	Bullet:          RGB{255, 100, 50},
	Dog:             RGB{140, 90, 50},
	DogDark:         RGB{90, 55, 30},
	InvincibleFlash: RGB{255, 255, 255},
}

// FoodColor returns the draw colour for a food kind.
func FoodColor(k FoodKind) RGB {
	switch k {
	case FoodBonus:
		return Palette.BonusFood
	case FoodInvincible:
		return Palette.Invincible
	case FoodMega:
		return Palette.MegaFood
	}
	return Palette.Food
}
