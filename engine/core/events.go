package core

// Event represents a game event
type Event struct {
	Type   EventType
	Tick   uint64
	Entity EntityID // subject of the event
	Other  EntityID // counterpart (shooter, target), if any
	Part   Part
	Amount float64
}

type EventType uint16

const (
	EvtProjectileFired EventType = iota
	EvtProjectileExpired
	EvtEnemyHit
	EvtEnemyDestroyed
	EvtEnemyRemoved
	EvtVehicleDamaged
	EvtVehicleDestroyed
	EvtVehicleRemoved
	EvtActiveVehicleChanged
	EvtHeatRayCharging
	EvtHeatRayFiring
	EvtHeatRayIdle
	EvtPauseToggled
	EvtVictory
	EvtDefeat
)

var eventNames = [...]string{
	EvtProjectileFired:      "projectile_fired",
	EvtProjectileExpired:    "projectile_expired",
	EvtEnemyHit:             "enemy_hit",
	EvtEnemyDestroyed:       "enemy_destroyed",
	EvtEnemyRemoved:         "enemy_removed",
	EvtVehicleDamaged:       "vehicle_damaged",
	EvtVehicleDestroyed:     "vehicle_destroyed",
	EvtVehicleRemoved:       "vehicle_removed",
	EvtActiveVehicleChanged: "active_vehicle_changed",
	EvtHeatRayCharging:      "heat_ray_charging",
	EvtHeatRayFiring:        "heat_ray_firing",
	EvtHeatRayIdle:          "heat_ray_idle",
	EvtPauseToggled:         "pause_toggled",
	EvtVictory:              "victory",
	EvtDefeat:               "defeat",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EventBus dispatches events to listeners. A nil bus drops everything.
type EventBus struct {
	listeners map[EventType][]EventHandler
	any       []EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// OnAny registers a handler for every event type
func (eb *EventBus) OnAny(h EventHandler) {
	eb.any = append(eb.any, h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	eb.queue = append(eb.queue, e)
}

// Dispatch processes all queued events. Handlers may emit; those events
// are delivered in the same call.
func (eb *EventBus) Dispatch() {
	if eb == nil {
		return
	}
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
		for _, h := range eb.any {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	if eb == nil {
		return 0
	}
	return len(eb.queue)
}
