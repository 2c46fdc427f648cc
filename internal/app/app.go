package app

import (
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/diegok/pingpong/internal/audio"
	"github.com/diegok/pingpong/internal/config"
	"github.com/diegok/pingpong/internal/game"
	"github.com/diegok/pingpong/internal/ui"
)

// App is the main application controller. It owns the terminal, the frame
// clock and the game session, and is the session's event listener.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	theme    *ui.Theme
	sounds   *audio.Sounds
	session  *game.Session
	pointer  ui.Pointer

	sessionID string
	start     time.Time

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		theme:  &ui.Theme{},
		sounds: &audio.Sounds{},
		quit:   make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes audio and the screen, sets up signal handling, and runs
// the frame loop until the player quits.
func (a *App) Run() error {
	if !a.cfg.Mute {
		sounds, err := audio.Init()
		if err != nil {
			// Game works without sound
			log.Printf("audio disabled: %v", err)
		}
		a.sounds = sounds
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.sounds.Close()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.attach(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// attach wires a screen and a fresh session into the app
func (a *App) attach(screen *ui.Screen) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, a.theme)
	a.session = game.NewSession(rand.New(rand.NewSource(time.Now().UnixNano())), a)
	a.start = time.Now()
}

// mainLoop is the main event loop that handles all input and frame ticks.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	a.render()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case <-ticker.C:
			a.session.Tick(a.now())
			a.render()
		}
	}
}

// now is the frame timestamp in milliseconds since the app started
func (a *App) now() float64 {
	return float64(time.Since(a.start)) / float64(time.Millisecond)
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		w, h := a.screen.Size()
		pe, ok := a.pointer.Handle(ev, ui.CourtLayout(w, h))
		if ok && pe.Kind != ui.TouchEnd {
			a.session.PointerMoved(pe.Fraction)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.render()
	}

	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ui.KeyToAction(ev.Key(), ev.Rune()) {
	case ui.ActionQuit:
		return true
	case ui.ActionConfirm:
		if a.session.Overlay().Visible {
			a.session.Start()
		}
	case ui.ActionUp:
		a.session.NudgePlayer(-ui.KeyStep)
	case ui.ActionDown:
		a.session.NudgePlayer(ui.KeyStep)
	}
	return false
}

func (a *App) render() {
	a.renderer.Render(a.session.Snapshot())
}

// OnStart tags the new game with a session id for the log
func (a *App) OnStart() {
	a.sessionID = uuid.NewString()
	log.Printf("session %s: started", a.sessionID)
}

// OnBounce rotates the colour theme and plays the matching sound
func (a *App) OnBounce(b game.Bounce) {
	a.theme.Shift()
	if b.Paddle {
		a.sounds.PaddleHit()
	} else {
		a.sounds.WallBounce()
	}
}

func (a *App) OnPoint(scorer game.Side, playerScore, computerScore int) {
	log.Printf("session %s: %s scores (%d-%d)", a.sessionID, scorer, playerScore, computerScore)
	if playerScore < game.MaxScore && computerScore < game.MaxScore {
		a.sounds.Point()
	}
}

func (a *App) OnGameOver(playerScore, computerScore int) {
	log.Printf("session %s: game over (%d-%d)", a.sessionID, playerScore, computerScore)
	a.sounds.GameOver()
}

// stop signals every loop to exit
func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.sounds.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
