package demo

import (
	"log"

	"github.com/younwookim/screenstack/internal/application/input"
	"github.com/younwookim/screenstack/internal/application/menu"
	"github.com/younwookim/screenstack/internal/application/screen"
	"github.com/younwookim/screenstack/internal/infrastructure/audio"
	"github.com/younwookim/screenstack/internal/infrastructure/config"
)

// Flow builds and connects the demo's screens on top of a screen manager.
type Flow struct {
	manager *screen.Manager
	cfg     config.TransitionsConfig
	sounds  *audio.Player
	quit    func()
}

// NewFlow creates the demo flow. sounds may be nil; quit is called when the
// user confirms exit from the main menu.
func NewFlow(m *screen.Manager, cfg config.TransitionsConfig, sounds *audio.Player, quit func()) *Flow {
	return &Flow{manager: m, cfg: cfg, sounds: sounds, quit: quit}
}

// Start pushes the initial stack: backdrop plus main menu.
func (f *Flow) Start() error {
	if err := f.manager.AddScreen(NewBackgroundScreen(), input.PlayerAny); err != nil {
		return err
	}
	return f.manager.AddScreen(f.mainMenu(), input.PlayerAny)
}

func (f *Flow) mainMenu() *menu.Screen {
	ms := menu.NewScreen("SCREEN STACK DEMO", f.sounds)
	ms.SetTransitionDurations(f.cfg.MenuOn, f.cfg.MenuOff)

	ms.AddEntry(menu.NewEntry("Play", func(p input.PlayerIndex) {
		if err := ActivateLoading(f.manager, p, f.gameplay(p)); err != nil {
			log.Printf("demo: start gameplay: %v", err)
		}
	}))
	ms.AddEntry(menu.NewEntry("Exit", func(p input.PlayerIndex) {
		f.confirmExit(p)
	}))
	ms.Cancelled = func(p input.PlayerIndex) {
		f.confirmExit(p)
	}
	return ms
}

func (f *Flow) confirmExit(p input.PlayerIndex) {
	mb := NewMessageBox("Are you sure you want to exit?", f.cfg.PopupOn, f.cfg.PopupOff)
	mb.Accepted = func(input.PlayerIndex) { f.quit() }
	if err := f.manager.AddScreen(mb, p); err != nil {
		log.Printf("demo: exit confirmation: %v", err)
	}
}

// gameplay creates the gameplay screen controlled by the player that chose
// Play, with a pause menu wired to it.
func (f *Flow) gameplay(p input.PlayerIndex) *GameplayScreen {
	g := NewGameplayScreen(f.cfg.GameplayOn, f.cfg.GameplayOff)
	g.Paused = func(pauser input.PlayerIndex) {
		if err := f.manager.AddScreen(f.pauseMenu(), pauser); err != nil {
			log.Printf("demo: open pause menu: %v", err)
		}
	}
	return g
}

func (f *Flow) pauseMenu() *menu.Screen {
	pm := menu.NewScreen("PAUSED", f.sounds)
	pm.SetPopup(true)
	pm.SetTransitionDurations(f.cfg.PopupOn, f.cfg.PopupOff)

	pm.AddEntry(menu.NewEntry("Resume", func(input.PlayerIndex) {
		pm.Exit()
	}))
	pm.AddEntry(menu.NewEntry("Quit Game", func(p input.PlayerIndex) {
		mb := NewMessageBox("Quit this game?", f.cfg.PopupOn, f.cfg.PopupOff)
		mb.Accepted = func(input.PlayerIndex) {
			if err := ActivateLoading(f.manager, input.PlayerAny,
				NewBackgroundScreen(), f.mainMenu()); err != nil {
				log.Printf("demo: return to menu: %v", err)
			}
		}
		if err := f.manager.AddScreen(mb, p); err != nil {
			log.Printf("demo: quit confirmation: %v", err)
		}
	}))
	return pm
}
