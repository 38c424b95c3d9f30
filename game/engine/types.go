package engine

// Peg identifies one of the three towers
type Peg string

const (
	PegA Peg = "A"
	PegB Peg = "B"
	PegC Peg = "C"

	// GoalPeg is the tower that must hold every disk to win
	GoalPeg = PegC

	// Validation constants
	MinDisks     = 3
	MaxDisks     = 10
	DefaultDisks = 3
)

// Pegs lists the towers in display order
var Pegs = []Peg{PegA, PegB, PegC}

// Move is a single relocation of a top disk
type Move struct {
	Src  Peg `json:"src"`
	Dest Peg `json:"dest"`
}

// GameState is a serializable snapshot of an engine
type GameState struct {
	N          int           `json:"n"`
	Step       int           `json:"step"`
	LastAction string        `json:"last_action"`
	Towers     map[Peg][]int `json:"towers"`

	// Derived helper views (not required for core game logic)
	Optimal int  `json:"optimal"`
	Won     bool `json:"won"`
	CanUndo bool `json:"can_undo"`
	CanRedo bool `json:"can_redo"`
}

// EventType classifies engine notifications
type EventType string

const (
	EventMove    EventType = "move"
	EventUndo    EventType = "undo"
	EventRedo    EventType = "redo"
	EventInvalid EventType = "invalid"
	EventNoop    EventType = "noop"
	EventWin     EventType = "win"
	EventReset   EventType = "reset"
	EventSolve   EventType = "solve"
)

// Event is sent to the engine observer after each mutation
type Event struct {
	Type    EventType
	Move    Move
	Step    int
	Message string
}

// Observer receives engine events. It runs synchronously inside the
// mutating call and may read the engine but must not mutate it.
type Observer func(e *GameEngine, ev Event)
