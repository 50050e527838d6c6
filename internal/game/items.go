package game

type FoodKind int

const (
	FoodNormal     FoodKind = iota
	FoodBonus               // 3 points, short-lived
	FoodInvincible          // grants InvincibleTime ticks
	FoodMega                // 100 points, timed spawns
)

func (k FoodKind) Points() int {
	switch k {
	case FoodNormal:
		return 1
	case FoodBonus:
		return 3
	case FoodInvincible:
		return 0
	case FoodMega:
		return 100
	}
	return 0
}

// Lifetime in ticks; 0 means the food never expires.
func (k FoodKind) Lifetime() int {
	switch k {
	case FoodNormal:
		return 0
	case FoodBonus:
		return BonusFoodLifetime
	case FoodInvincible:
		return InvincibleFoodLifetime
	case FoodMega:
		return MegaFoodLifetime
	}
	return 0
}

func (k FoodKind) String() string {
	switch k {
	case FoodNormal:
		return "normal"
	case FoodBonus:
		return "bonus"
	case FoodInvincible:
		return "invincible"
	case FoodMega:
		return "mega"
	}
	return "unknown"
}

type Food struct {
	Kind FoodKind
	Pos  Cell
	Age  int
}

func (f *Food) Expired() bool {
	lt := f.Kind.Lifetime()
	return lt > 0 && f.Age >= lt
}

type Coin struct {
	Pos Cell
	Age int
}

func (c *Coin) Expired() bool { return c.Age >= CoinLifetime }

// Bill is a money bill worth BillValue coins.
type Bill struct {
	Pos Cell
	Age int
}

func (b *Bill) Expired() bool { return b.Age >= BillLifetime }
