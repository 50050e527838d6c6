package game

type EventType int

const (
	EventFoodEaten   EventType = iota // Data: FoodKind
	EventFoodSpawned                  // Data: FoodKind
	EventCoinPicked                   // Data: coins gained
	EventShot                         // Data: GunKind
	EventVacuum
	EventRuinDestroyed
	EventEnemySpawned
	EventEnemyKilled
	EventSnakeDied
	EventRoundOver
	EventPurchase // Data: coins spent
	EventMenuSelect
)

// Event is delivered after the tick that produced it. Player is -1 when no
// player is involved.
type Event struct {
	Type   EventType
	Pos    Cell
	Player int
	Data   int
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
	all      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.all = append(eb.all, fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range eb.all {
		fn(e)
	}
}
