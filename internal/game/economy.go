package game

// Wallet is one player's persistent purse and loadout.
type Wallet struct {
	Coins int
	Ammo  int
	Power int
	Gun   GunKind
	Snake SnakeKind
}

type Wallets [MaxPlayers]Wallet

// Store persists wallets and highscores. Loads never fail: a missing or
// unreadable record yields defaults.
type Store interface {
	LoadWallets() Wallets
	SaveWallets(Wallets) error
	LoadHighscores() Highscores
	SaveHighscores(Highscores) error
}

// Normalize clamps counters to zero and replaces unknown kinds.
func (w *Wallet) Normalize() {
	w.Coins = max(w.Coins, 0)
	w.Ammo = max(w.Ammo, 0)
	w.Power = max(w.Power, 0)
	if w.Gun < GunNone || w.Gun > GunVacuum {
		w.Gun = GunNone
	}
	if !w.Snake.Valid() {
		w.Snake = SnakeNormal
	}
}

func (w *Wallet) spend(price int) bool {
	if w.Coins < price {
		return false
	}
	w.Coins -= price
	return true
}

func (w *Wallet) BuyAmmo() bool {
	if !w.spend(AmmoPrice) {
		return false
	}
	w.Ammo += AmmoAmount
	return true
}

func (w *Wallet) BuyPower() bool {
	if !w.spend(PowerPrice) {
		return false
	}
	w.Power += PowerAmount
	return true
}

// BuyGun replaces the owned gun. Buying the gun already owned is a no-op.
func (w *Wallet) BuyGun(g GunKind) bool {
	if g == GunNone || g == w.Gun {
		return false
	}
	if !w.spend(g.Price()) {
		return false
	}
	w.Gun = g
	return true
}
