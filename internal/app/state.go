package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goperceptron/internal/config"
	"github.com/philipparndt/goperceptron/pkg/session"
	"github.com/philipparndt/goperceptron/pkg/watcher"
	"github.com/rs/zerolog"
)

// ChartState holds the session and where its surface sits in the window
type ChartState struct {
	session     *session.Session
	unsubscribe func()
	sink        *eventSink
	origin      rl.Vector2 // Top-left corner of the chart surface
	bounds      rl.Rectangle
}

// InteractionState holds mouse state for click vs drag detection
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseDown    bool
	onChart      bool
	dragging     bool // A drag gesture has been forwarded to the session
	brushing     bool
	brush        BrushSelection
}

// ScenarioState holds the replay script and its reload flag
type ScenarioState struct {
	path        string
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool
}

// UIState holds UI-related state
type UIState struct {
	brushBounds rl.Rectangle
	showHelp    bool
}

// App is the raylib front-end
type App struct {
	Config      config.Config
	Chart       ChartState
	Interaction InteractionState
	Scenario    ScenarioState
	UI          UIState
	log         zerolog.Logger
}
