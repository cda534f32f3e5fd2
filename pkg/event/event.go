// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted    Type = "game_started"
	GamePaused     Type = "game_paused"
	GameResumed    Type = "game_resumed"
	GameEnded      Type = "game_ended"
	EnemySpawned   Type = "enemy_spawned"
	EnemyDestroyed Type = "enemy_destroyed"
	BulletFired    Type = "bullet_fired"
	ScoreChanged   Type = "score_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers. Handlers run
// synchronously on the publishing goroutine, so a handler must not
// call back into a publisher that publishes while holding a lock.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// EnemyEvent contains information about enemy-related events
type EnemyEvent struct {
	BaseEvent
	EnemyID   uint64
	Archetype string
}

// NewEnemyEvent creates a new enemy event
func NewEnemyEvent(eventType Type, source interface{}, enemyID uint64, archetype string) *EnemyEvent {
	return &EnemyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EnemyID:   enemyID,
		Archetype: archetype,
	}
}

// ScoreEvent reports a score change and the delta that caused it
type ScoreEvent struct {
	BaseEvent
	Score int
	Delta int
}

// NewScoreEvent creates a new score event
func NewScoreEvent(source interface{}, score, delta int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: ScoreChanged,
			Source:    source,
		},
		Score: score,
		Delta: delta,
	}
}

// GameOverEvent carries the final score of a finished session
type GameOverEvent struct {
	BaseEvent
	FinalScore int
}

// NewGameOverEvent creates a new game-over event
func NewGameOverEvent(source interface{}, finalScore int) *GameOverEvent {
	return &GameOverEvent{
		BaseEvent: BaseEvent{
			EventType: GameEnded,
			Source:    source,
		},
		FinalScore: finalScore,
	}
}

// BulletEvent reports a fired bullet and its owner side
type BulletEvent struct {
	BaseEvent
	BulletID   uint64
	FromPlayer bool
}

// NewBulletEvent creates a new bullet event
func NewBulletEvent(source interface{}, bulletID uint64, fromPlayer bool) *BulletEvent {
	return &BulletEvent{
		BaseEvent: BaseEvent{
			EventType: BulletFired,
			Source:    source,
		},
		BulletID:   bulletID,
		FromPlayer: fromPlayer,
	}
}
