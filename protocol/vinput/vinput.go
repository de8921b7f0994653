// Package vinput catalogs and encodes the three virtual-input
// protocol families the teacher's consumer packages bind against:
// wlr-virtual-pointer, the virtual-keyboard protocol, and
// pointer-constraints. Wire-level fixed-point arguments (surface
// coordinates, scroll deltas) are plain i32 fields per the Wayland
// wire format's 24.8 fixed-point convention — Fixed below converts at
// the boundary, the same way it's converted everywhere else in this
// module.
package vinput

import "github.com/bnema/wlwire/wire"

// Fixed is a Wayland 24.8 fixed-point number.
type Fixed int32

// FixedFromFloat64 converts a float64 to Fixed.
func FixedFromFloat64(v float64) Fixed { return Fixed(v * 256.0) }

// Float64 converts Fixed back to float64.
func (f Fixed) Float64() float64 { return float64(f) / 256.0 }

// --- zwlr_virtual_pointer_manager_v1 ---

var VirtualPointerManagerInterface = &wire.Interface{
	Name:    "zwlr_virtual_pointer_manager_v1",
	Version: 2,
	Requests: []wire.Op{
		{Name: "create_virtual_pointer", Fields: []wire.Field{
			{Name: "seat", Kind: wire.KindU32},
			{Name: "id", Kind: wire.KindU32},
		}},
		{Name: "create_virtual_pointer_with_output", Fields: []wire.Field{
			{Name: "seat", Kind: wire.KindU32},
			{Name: "output", Kind: wire.KindU32},
			{Name: "id", Kind: wire.KindU32},
		}},
	},
}

// CreateVirtualPointer is zwlr_virtual_pointer_manager_v1.create_virtual_pointer.
// Seat is 0 when no specific seat object is bound (the protocol treats
// a null seat as "use the default").
type CreateVirtualPointer struct {
	Seat uint32
	ID   uint32
}

func (CreateVirtualPointer) Opcode() uint16 { return 0 }
func (r CreateVirtualPointer) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Seat)
	e.PutUint32(r.ID)
	return nil
}

// --- zwlr_virtual_pointer_v1 ---

var VirtualPointerInterface = &wire.Interface{
	Name:    "zwlr_virtual_pointer_v1",
	Version: 2,
	Requests: []wire.Op{
		{Name: "motion", Fields: []wire.Field{
			{Name: "time", Kind: wire.KindU32},
			{Name: "dx", Kind: wire.KindI32},
			{Name: "dy", Kind: wire.KindI32},
		}},
		{Name: "motion_absolute", Fields: []wire.Field{
			{Name: "time", Kind: wire.KindU32},
			{Name: "x", Kind: wire.KindU32},
			{Name: "y", Kind: wire.KindU32},
			{Name: "x_extent", Kind: wire.KindU32},
			{Name: "y_extent", Kind: wire.KindU32},
		}},
		{Name: "button", Fields: []wire.Field{
			{Name: "time", Kind: wire.KindU32},
			{Name: "button", Kind: wire.KindU32},
			{Name: "state", Kind: wire.KindEnum},
		}},
		{Name: "axis", Fields: []wire.Field{
			{Name: "time", Kind: wire.KindU32},
			{Name: "axis", Kind: wire.KindEnum},
			{Name: "value", Kind: wire.KindI32},
		}},
		{Name: "frame", Fields: nil},
		{Name: "axis_source", Fields: []wire.Field{{Name: "axis_source", Kind: wire.KindEnum}}},
		{Name: "axis_stop", Fields: []wire.Field{
			{Name: "time", Kind: wire.KindU32},
			{Name: "axis", Kind: wire.KindEnum},
		}},
		{Name: "axis_discrete", Fields: []wire.Field{
			{Name: "time", Kind: wire.KindU32},
			{Name: "axis", Kind: wire.KindEnum},
			{Name: "value", Kind: wire.KindI32},
			{Name: "discrete", Kind: wire.KindI32},
		}},
		{Name: "destroy", Fields: nil},
	},
}

type Motion struct {
	Time   uint32
	Dx, Dy Fixed
}

func (Motion) Opcode() uint16 { return 0 }
func (r Motion) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Time)
	e.PutInt32(int32(r.Dx))
	e.PutInt32(int32(r.Dy))
	return nil
}

type MotionAbsolute struct {
	Time             uint32
	X, Y             uint32
	XExtent, YExtent uint32
}

func (MotionAbsolute) Opcode() uint16 { return 1 }
func (r MotionAbsolute) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Time)
	e.PutUint32(r.X)
	e.PutUint32(r.Y)
	e.PutUint32(r.XExtent)
	e.PutUint32(r.YExtent)
	return nil
}

type Button struct {
	Time   uint32
	Button uint32
	State  uint32
}

func (Button) Opcode() uint16 { return 2 }
func (r Button) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Time)
	e.PutUint32(r.Button)
	e.PutEnum(r.State)
	return nil
}

type Axis struct {
	Time  uint32
	Axis  uint32
	Value Fixed
}

func (Axis) Opcode() uint16 { return 3 }
func (r Axis) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Time)
	e.PutEnum(r.Axis)
	e.PutInt32(int32(r.Value))
	return nil
}

type Frame struct{}

func (Frame) Opcode() uint16                { return 4 }
func (Frame) EncodeArgs(*wire.Encoder) error { return nil }

type AxisSource struct{ Source uint32 }

func (AxisSource) Opcode() uint16 { return 5 }
func (r AxisSource) EncodeArgs(e *wire.Encoder) error {
	e.PutEnum(r.Source)
	return nil
}

type AxisStop struct {
	Time uint32
	Axis uint32
}

func (AxisStop) Opcode() uint16 { return 6 }
func (r AxisStop) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Time)
	e.PutEnum(r.Axis)
	return nil
}

type AxisDiscrete struct {
	Time     uint32
	Axis     uint32
	Value    Fixed
	Discrete int32
}

func (AxisDiscrete) Opcode() uint16 { return 7 }
func (r AxisDiscrete) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Time)
	e.PutEnum(r.Axis)
	e.PutInt32(int32(r.Value))
	e.PutInt32(r.Discrete)
	return nil
}

type DestroyVirtualPointer struct{}

func (DestroyVirtualPointer) Opcode() uint16                { return 8 }
func (DestroyVirtualPointer) EncodeArgs(*wire.Encoder) error { return nil }

// --- zwp_virtual_keyboard_manager_v1 ---

var VirtualKeyboardManagerInterface = &wire.Interface{
	Name:    "zwp_virtual_keyboard_manager_v1",
	Version: 1,
	Requests: []wire.Op{
		{Name: "create_virtual_keyboard", Fields: []wire.Field{
			{Name: "seat", Kind: wire.KindU32},
			{Name: "id", Kind: wire.KindU32},
		}},
	},
}

type CreateVirtualKeyboard struct {
	Seat uint32
	ID   uint32
}

func (CreateVirtualKeyboard) Opcode() uint16 { return 0 }
func (r CreateVirtualKeyboard) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Seat)
	e.PutUint32(r.ID)
	return nil
}

// --- zwp_virtual_keyboard_v1 ---

var VirtualKeyboardInterface = &wire.Interface{
	Name:    "zwp_virtual_keyboard_v1",
	Version: 1,
	Requests: []wire.Op{
		{Name: "keymap", Fields: []wire.Field{
			{Name: "format", Kind: wire.KindEnum},
			{Name: "fd", Kind: wire.KindFd},
			{Name: "size", Kind: wire.KindU32},
		}},
		{Name: "key", Fields: []wire.Field{
			{Name: "time", Kind: wire.KindU32},
			{Name: "key", Kind: wire.KindU32},
			{Name: "state", Kind: wire.KindEnum},
		}},
		{Name: "modifiers", Fields: []wire.Field{
			{Name: "mods_depressed", Kind: wire.KindU32},
			{Name: "mods_latched", Kind: wire.KindU32},
			{Name: "mods_locked", Kind: wire.KindU32},
			{Name: "group", Kind: wire.KindU32},
		}},
		{Name: "destroy", Fields: nil},
	},
}

// Keymap is zwp_virtual_keyboard_v1.keymap: hands the compositor an
// XKB keymap over a shared-memory fd, per the spec.md codec's fd
// transfer path.
type Keymap struct {
	Format uint32
	Fd     int
	Size   uint32
}

func (Keymap) Opcode() uint16 { return 0 }
func (r Keymap) EncodeArgs(e *wire.Encoder) error {
	e.PutEnum(r.Format)
	e.PutFd(r.Fd)
	e.PutUint32(r.Size)
	return nil
}

type Key struct {
	Time  uint32
	Key   uint32
	State uint32
}

func (Key) Opcode() uint16 { return 1 }
func (r Key) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Time)
	e.PutUint32(r.Key)
	e.PutEnum(r.State)
	return nil
}

type Modifiers struct {
	ModsDepressed uint32
	ModsLatched   uint32
	ModsLocked    uint32
	Group         uint32
}

func (Modifiers) Opcode() uint16 { return 2 }
func (r Modifiers) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.ModsDepressed)
	e.PutUint32(r.ModsLatched)
	e.PutUint32(r.ModsLocked)
	e.PutUint32(r.Group)
	return nil
}

type DestroyVirtualKeyboard struct{}

func (DestroyVirtualKeyboard) Opcode() uint16                { return 3 }
func (DestroyVirtualKeyboard) EncodeArgs(*wire.Encoder) error { return nil }

// --- zwp_pointer_constraints_v1 ---

var PointerConstraintsInterface = &wire.Interface{
	Name:    "zwp_pointer_constraints_v1",
	Version: 1,
	Requests: []wire.Op{
		{Name: "destroy", Fields: nil},
		{Name: "lock_pointer", Fields: []wire.Field{
			{Name: "id", Kind: wire.KindU32},
			{Name: "surface", Kind: wire.KindU32},
			{Name: "pointer", Kind: wire.KindU32},
			{Name: "region", Kind: wire.KindU32},
			{Name: "lifetime", Kind: wire.KindEnum},
		}},
		{Name: "confine_pointer", Fields: []wire.Field{
			{Name: "id", Kind: wire.KindU32},
			{Name: "surface", Kind: wire.KindU32},
			{Name: "pointer", Kind: wire.KindU32},
			{Name: "region", Kind: wire.KindU32},
			{Name: "lifetime", Kind: wire.KindEnum},
		}},
	},
}

// Lifetime values for lock_pointer/confine_pointer.
const (
	LifetimeOneshot    uint32 = 1
	LifetimePersistent uint32 = 2
)

type LockPointer struct {
	ID       uint32
	Surface  uint32
	Pointer  uint32
	Region   uint32 // 0 means null: the whole surface
	Lifetime uint32
}

func (LockPointer) Opcode() uint16 { return 1 }
func (r LockPointer) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.ID)
	e.PutUint32(r.Surface)
	e.PutUint32(r.Pointer)
	e.PutUint32(r.Region)
	e.PutEnum(r.Lifetime)
	return nil
}

type ConfinePointer struct {
	ID       uint32
	Surface  uint32
	Pointer  uint32
	Region   uint32
	Lifetime uint32
}

func (ConfinePointer) Opcode() uint16 { return 2 }
func (r ConfinePointer) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.ID)
	e.PutUint32(r.Surface)
	e.PutUint32(r.Pointer)
	e.PutUint32(r.Region)
	e.PutEnum(r.Lifetime)
	return nil
}

// --- zwp_locked_pointer_v1 ---

var LockedPointerInterface = &wire.Interface{
	Name:    "zwp_locked_pointer_v1",
	Version: 1,
	Requests: []wire.Op{
		{Name: "destroy", Fields: nil},
		{Name: "set_cursor_position_hint", Fields: []wire.Field{
			{Name: "surface_x", Kind: wire.KindI32},
			{Name: "surface_y", Kind: wire.KindI32},
		}},
		{Name: "set_region", Fields: []wire.Field{{Name: "region", Kind: wire.KindU32}}},
	},
	Events: []wire.Op{
		{Name: "locked", Fields: nil},
		{Name: "unlocked", Fields: nil},
	},
}

type SetCursorPositionHint struct{ SurfaceX, SurfaceY Fixed }

func (SetCursorPositionHint) Opcode() uint16 { return 1 }
func (r SetCursorPositionHint) EncodeArgs(e *wire.Encoder) error {
	e.PutInt32(int32(r.SurfaceX))
	e.PutInt32(int32(r.SurfaceY))
	return nil
}

type DestroyLockedPointer struct{}

func (DestroyLockedPointer) Opcode() uint16                { return 0 }
func (DestroyLockedPointer) EncodeArgs(*wire.Encoder) error { return nil }

// --- zwp_confined_pointer_v1 ---

var ConfinedPointerInterface = &wire.Interface{
	Name:    "zwp_confined_pointer_v1",
	Version: 1,
	Requests: []wire.Op{
		{Name: "destroy", Fields: nil},
		{Name: "set_region", Fields: []wire.Field{{Name: "region", Kind: wire.KindU32}}},
	},
	Events: []wire.Op{
		{Name: "confined", Fields: nil},
		{Name: "unconfined", Fields: nil},
	},
}

type DestroyConfinedPointer struct{}

func (DestroyConfinedPointer) Opcode() uint16                { return 0 }
func (DestroyConfinedPointer) EncodeArgs(*wire.Encoder) error { return nil }
