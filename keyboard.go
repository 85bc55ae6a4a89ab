package sapling

// Key identifies a non-character keyboard key. Printable input arrives as
// TextEntered events instead.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Letter keys are reported for shortcut handling; the characters they
	// produce arrive separately as TextEntered.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Shift reports whether the shift modifier is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Ctrl reports whether the control modifier is held.
func (m Modifiers) Ctrl() bool { return m&ModCtrl != 0 }

// Alt reports whether the alt modifier is held.
func (m Modifiers) Alt() bool { return m&ModAlt != 0 }

// Meta reports whether the meta (command/windows) modifier is held.
func (m Modifiers) Meta() bool { return m&ModMeta != 0 }
