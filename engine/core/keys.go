package core

import "strconv"

// Key identifies a keyboard key independent of the platform layer.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

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

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

var keyNames = [...]string{
	KeyUnknown:    "Unknown",
	KeyEscape:     "Escape",
	KeySpace:      "Space",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyDelete:     "Delete",
	KeyInsert:     "Insert",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyLeft:       "Left",
	KeyRight:      "Right",
	KeyUp:         "Up",
	KeyDown:       "Down",
	KeyLeftShift:  "LeftShift",
	KeyRightShift: "RightShift",
	KeyLeftCtrl:   "LeftCtrl",
	KeyRightCtrl:  "RightCtrl",
	KeyLeftAlt:    "LeftAlt",
	KeyRightAlt:   "RightAlt",
	KeyLeftSuper:  "LeftSuper",
	KeyRightSuper: "RightSuper",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= 0 && int(k) < len(keyNames) && keyNames[k] != "":
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// KeySet is a read-only set of keys.
type KeySet struct{ m map[Key]struct{} }

func newKeySet(src map[Key]struct{}) KeySet {
	if len(src) == 0 {
		return KeySet{}
	}
	m := make(map[Key]struct{}, len(src))
	for k := range src {
		m[k] = struct{}{}
	}
	return KeySet{m: m}
}

func (s KeySet) Has(k Key) bool {
	_, ok := s.m[k]
	return ok
}

func (s KeySet) Len() int { return len(s.m) }

// Keys returns the members in ascending order.
func (s KeySet) Keys() []Key {
	out := make([]Key, 0, len(s.m))
	for k := Key(0); k < keyCount; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
