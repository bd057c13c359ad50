package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic Intents
type Machine struct {
	// Last observed button mask, for press/release edge derivation
	buttons tcell.ButtonMask
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses a terminal event and returns intents
// A single mouse event can carry both motion and a button edge
func (m *Machine) Process(ev tcell.Event) []Intent {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		return []Intent{{Type: IntentResize}}
	case *tcell.EventKey:
		return m.processKey(tev)
	case *tcell.EventMouse:
		return m.processMouse(tev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) []Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return []Intent{{Type: IntentQuit}}
	case tcell.KeyEscape:
		return []Intent{{Type: IntentPauseToggle}}
	case tcell.KeyLeft:
		return []Intent{{Type: IntentLookLeft}}
	case tcell.KeyRight:
		return []Intent{{Type: IntentLookRight}}
	case tcell.KeyUp:
		return []Intent{{Type: IntentLookUp}}
	case tcell.KeyDown:
		return []Intent{{Type: IntentLookDown}}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return []Intent{{Type: IntentQuit}}
		case 'm':
			return []Intent{{Type: IntentToggleMute}}
		case 'h':
			return []Intent{{Type: IntentLookLeft}}
		case 'l':
			return []Intent{{Type: IntentLookRight}}
		case 'k':
			return []Intent{{Type: IntentLookUp}}
		case 'j':
			return []Intent{{Type: IntentLookDown}}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) []Intent {
	x, y := ev.Position()
	intents := []Intent{{Type: IntentPointerMove, X: x, Y: y}}

	buttons := ev.Buttons() & ^tcell.ButtonMask(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight)
	pressed := buttons & ^m.buttons
	released := m.buttons & ^buttons
	m.buttons = buttons

	if pressed&tcell.Button1 != 0 {
		intents = append(intents, Intent{Type: IntentPrimaryDown, X: x, Y: y})
	}
	if released&tcell.Button1 != 0 {
		intents = append(intents, Intent{Type: IntentPrimaryUp, X: x, Y: y})
	}
	if pressed&tcell.Button2 != 0 {
		intents = append(intents, Intent{Type: IntentSecondaryDown, X: x, Y: y})
	}

	return intents
}
