// Package virtualkeyboard is an example consumer of this module's core
// stack: it drives zwp_virtual_keyboard_manager_v1 and
// zwp_virtual_keyboard_v1 over a bound wlclient.Connection. It is not
// part of the core library — wire.Interface/Encoder/Decoder, idpool
// and registry are — this package just shows one way to use them.
package virtualkeyboard

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/bnema/wlwire/idpool"
	"github.com/bnema/wlwire/protocol/vinput"
	"github.com/bnema/wlwire/wlclient"
)

// Key constants (Linux input event codes), carried over unchanged from
// the values every evdev-based virtual keyboard protocol expects.
const (
	KeyReserved   = 0
	KeyEsc        = 1
	Key1          = 2
	Key2          = 3
	Key3          = 4
	Key4          = 5
	Key5          = 6
	Key6          = 7
	Key7          = 8
	Key8          = 9
	Key9          = 10
	Key0          = 11
	KeyMinus      = 12
	KeyEqual      = 13
	KeyBackspace  = 14
	KeyTab        = 15
	KeyQ          = 16
	KeyW          = 17
	KeyE          = 18
	KeyR          = 19
	KeyT          = 20
	KeyY          = 21
	KeyU          = 22
	KeyI          = 23
	KeyO          = 24
	KeyP          = 25
	KeyLeftBrace  = 26
	KeyRightBrace = 27
	KeyEnter      = 28
	KeyLeftCtrl   = 29
	KeyA          = 30
	KeyS          = 31
	KeyD          = 32
	KeyF          = 33
	KeyG          = 34
	KeyH          = 35
	KeyJ          = 36
	KeyK          = 37
	KeyL          = 38
	KeySemicolon  = 39
	KeyApostrophe = 40
	KeyGrave      = 41
	KeyLeftShift  = 42
	KeyBackslash  = 43
	KeyZ          = 44
	KeyX          = 45
	KeyC          = 46
	KeyV          = 47
	KeyB          = 48
	KeyN          = 49
	KeyM          = 50
	KeyComma      = 51
	KeyDot        = 52
	KeySlash      = 53
	KeyRightShift = 54
	KeyLeftAlt    = 56
	KeySpace      = 57
	KeyLeftMeta   = 125
	KeyRightMeta  = 126
)

// Keymap format constants, per zwp_virtual_keyboard_v1.keymap.
const (
	KeymapFormatNoKeymap = 0
	KeymapFormatXKBV1    = 1
)

// Key state constants, per zwp_virtual_keyboard_v1.key.
const (
	KeyStateReleased = 0
	KeyStatePressed  = 1
)

// Modifier bitmask constants, in the XKB modifier-mask layout used by
// the mods_depressed, mods_latched and mods_locked fields.
const (
	ModShift = 1 << 0
	ModCaps  = 1 << 1
	ModCtrl  = 1 << 2
	ModAlt   = 1 << 3
	ModNum   = 1 << 4
	ModMod3  = 1 << 5
	ModLogo  = 1 << 6
	ModMod5  = 1 << 7
)

// Manager wraps a bound zwp_virtual_keyboard_manager_v1 object.
type Manager struct {
	conn     *wlclient.Connection
	pool     *idpool.Pool
	objectID uint32
}

// NewManager wraps an already-bound zwp_virtual_keyboard_manager_v1
// object id (as returned by registry.RegisterGlobals).
func NewManager(conn *wlclient.Connection, pool *idpool.Pool, objectID uint32) *Manager {
	return &Manager{conn: conn, pool: pool, objectID: objectID}
}

// CreateVirtualKeyboard is zwp_virtual_keyboard_manager_v1.create_virtual_keyboard.
func (m *Manager) CreateVirtualKeyboard(seat uint32) (*Keyboard, error) {
	id := m.pool.Create()
	if err := m.conn.Send(m.objectID, vinput.CreateVirtualKeyboard{Seat: seat, ID: id}); err != nil {
		m.pool.Destroy(id)
		return nil, err
	}
	return &Keyboard{conn: m.conn, pool: m.pool, objectID: id}, nil
}

// Keyboard wraps a bound zwp_virtual_keyboard_v1 object.
type Keyboard struct {
	conn     *wlclient.Connection
	pool     *idpool.Pool
	objectID uint32
}

// Keymap is zwp_virtual_keyboard_v1.keymap: hands the compositor an
// XKB keymap over a shared-memory fd.
func (k *Keyboard) Keymap(format uint32, fd int, size uint32) error {
	return k.conn.Send(k.objectID, vinput.Keymap{Format: format, Fd: fd, Size: size})
}

// Key is zwp_virtual_keyboard_v1.key.
func (k *Keyboard) Key(time, key, state uint32) error {
	return k.conn.Send(k.objectID, vinput.Key{Time: time, Key: key, State: state})
}

// KeyPress presses key at the given timestamp.
func (k *Keyboard) KeyPress(time, key uint32) error {
	return k.Key(time, key, KeyStatePressed)
}

// KeyRelease releases key at the given timestamp.
func (k *Keyboard) KeyRelease(time, key uint32) error {
	return k.Key(time, key, KeyStateReleased)
}

// Modifiers is zwp_virtual_keyboard_v1.modifiers.
func (k *Keyboard) Modifiers(modsDepressed, modsLatched, modsLocked, group uint32) error {
	return k.conn.Send(k.objectID, vinput.Modifiers{
		ModsDepressed: modsDepressed,
		ModsLatched:   modsLatched,
		ModsLocked:    modsLocked,
		Group:         group,
	})
}

// Destroy is zwp_virtual_keyboard_v1.destroy and recycles the object id.
func (k *Keyboard) Destroy() error {
	err := k.conn.Send(k.objectID, vinput.DestroyVirtualKeyboard{})
	k.pool.Destroy(k.objectID)
	return err
}

// CreateDefaultKeymap writes a minimal XKB keymap to a temp file and
// returns a duplicated fd (valid independent of the temp file's own
// lifetime) plus its size, ready for Keyboard.Keymap.
func CreateDefaultKeymap() (fd int, size uint32, err error) {
	const keymap = `xkb_keymap {
	xkb_keycodes  { include "evdev+aliases(qwerty)"	};
	xkb_types     { include "complete"	};
	xkb_compat    { include "complete"	};
	xkb_symbols   { include "pc+us+inet(evdev)"	};
	xkb_geometry  { include "pc(pc105)"	};
};`

	file, err := os.CreateTemp("", "keymap-*.xkb")
	if err != nil {
		return -1, 0, err
	}
	defer file.Close()

	if _, err := file.WriteString(keymap); err != nil {
		return -1, 0, err
	}

	dup, err := unix.Dup(int(file.Fd()))
	if err != nil {
		return -1, 0, err
	}
	return dup, uint32(len(keymap)), nil
}

// TypeKey performs a complete key press and release at the given
// timestamp.
func TypeKey(k *Keyboard, time, key uint32) error {
	if err := k.KeyPress(time, key); err != nil {
		return err
	}
	return k.KeyRelease(time, key)
}

// TypeString types text by converting it to key events, one TypeKey
// call per supported ASCII character; unsupported runes are skipped.
func TypeString(k *Keyboard, time uint32, text string) error {
	for _, char := range text {
		key, needsShift := charToKey(char)
		if key == 0 {
			continue
		}
		if needsShift {
			if err := k.KeyPress(time, KeyLeftShift); err != nil {
				return err
			}
		}
		if err := TypeKey(k, time, key); err != nil {
			if needsShift {
				k.KeyRelease(time, KeyLeftShift)
			}
			return err
		}
		if needsShift {
			if err := k.KeyRelease(time, KeyLeftShift); err != nil {
				return err
			}
		}
	}
	return nil
}

// charToKey converts a rune to its evdev key code and whether Shift
// must be held, for the basic ASCII range.
func charToKey(char rune) (uint32, bool) {
	letterKeys := [26]uint32{
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
	}
	switch char {
	case ' ':
		return KeySpace, false
	case '!':
		return Key1, true
	case '@':
		return Key2, true
	case '#':
		return Key3, true
	case '$':
		return Key4, true
	case '%':
		return Key5, true
	case '^':
		return Key6, true
	case '&':
		return Key7, true
	case '*':
		return Key8, true
	case '(':
		return Key9, true
	case ')':
		return Key0, true
	case '-':
		return KeyMinus, false
	case '_':
		return KeyMinus, true
	case '=':
		return KeyEqual, false
	case '+':
		return KeyEqual, true
	case '[':
		return KeyLeftBrace, false
	case '{':
		return KeyLeftBrace, true
	case ']':
		return KeyRightBrace, false
	case '}':
		return KeyRightBrace, true
	case '\\':
		return KeyBackslash, false
	case '|':
		return KeyBackslash, true
	case ';':
		return KeySemicolon, false
	case ':':
		return KeySemicolon, true
	case '\'':
		return KeyApostrophe, false
	case '"':
		return KeyApostrophe, true
	case '`':
		return KeyGrave, false
	case '~':
		return KeyGrave, true
	case ',':
		return KeyComma, false
	case '<':
		return KeyComma, true
	case '.':
		return KeyDot, false
	case '>':
		return KeyDot, true
	case '/':
		return KeySlash, false
	case '?':
		return KeySlash, true
	case '\t':
		return KeyTab, false
	case '\n':
		return KeyEnter, false
	case '0':
		return Key0, false
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return Key1 + uint32(char-'1'), false
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
		'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		return letterKeys[char-'a'], false
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
		'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		return letterKeys[char-'A'], true
	default:
		return 0, false
	}
}

// PressModifiers presses the keys named by a ModXxx bitmask.
func PressModifiers(k *Keyboard, time, modifiers uint32) error {
	if modifiers&ModShift != 0 {
		if err := k.KeyPress(time, KeyLeftShift); err != nil {
			return err
		}
	}
	if modifiers&ModCtrl != 0 {
		if err := k.KeyPress(time, KeyLeftCtrl); err != nil {
			return err
		}
	}
	if modifiers&ModAlt != 0 {
		if err := k.KeyPress(time, KeyLeftAlt); err != nil {
			return err
		}
	}
	if modifiers&ModLogo != 0 {
		if err := k.KeyPress(time, KeyLeftMeta); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseModifiers releases the keys named by a ModXxx bitmask.
func ReleaseModifiers(k *Keyboard, time, modifiers uint32) error {
	if modifiers&ModShift != 0 {
		if err := k.KeyRelease(time, KeyLeftShift); err != nil {
			return err
		}
	}
	if modifiers&ModCtrl != 0 {
		if err := k.KeyRelease(time, KeyLeftCtrl); err != nil {
			return err
		}
	}
	if modifiers&ModAlt != 0 {
		if err := k.KeyRelease(time, KeyLeftAlt); err != nil {
			return err
		}
	}
	if modifiers&ModLogo != 0 {
		if err := k.KeyRelease(time, KeyLeftMeta); err != nil {
			return err
		}
	}
	return nil
}

// KeyCombo performs a key combination (e.g. Ctrl+C): press modifiers,
// tap key, release modifiers.
func KeyCombo(k *Keyboard, time, modifiers, key uint32) error {
	if err := PressModifiers(k, time, modifiers); err != nil {
		return err
	}
	if err := TypeKey(k, time, key); err != nil {
		ReleaseModifiers(k, time, modifiers)
		return err
	}
	return ReleaseModifiers(k, time, modifiers)
}
