// Package desktop catalogs and encodes the desktop-shell interfaces a
// minimal Wayland client binds beyond the bootstrap set: wl_compositor,
// the wl_shm family, wl_surface, wl_seat, and xdg-shell's wm_base/
// surface/toplevel trio. It exercises the codec's string, POD and
// fd-argument paths beyond what wl_display/wl_registry alone can
// (spec.md's "no rendering" Non-goal excludes surface compositing
// logic — only the wire messages live here).
package desktop

import "github.com/bnema/wlwire/wire"

// CompositorInterface describes wl_compositor.
var CompositorInterface = &wire.Interface{
	Name:    "wl_compositor",
	Version: 6,
	Requests: []wire.Op{
		{Name: "create_surface", Fields: []wire.Field{{Name: "id", Kind: wire.KindU32}}},
		{Name: "create_region", Fields: []wire.Field{{Name: "id", Kind: wire.KindU32}}},
	},
}

// ShmInterface describes wl_shm.
var ShmInterface = &wire.Interface{
	Name:    "wl_shm",
	Version: 1,
	Requests: []wire.Op{
		{Name: "create_pool", Fields: []wire.Field{
			{Name: "id", Kind: wire.KindU32},
			{Name: "fd", Kind: wire.KindFd},
			{Name: "size", Kind: wire.KindI32},
		}},
	},
	Events: []wire.Op{
		{Name: "format", Fields: []wire.Field{{Name: "format", Kind: wire.KindEnum}}},
	},
}

// ShmPoolInterface describes wl_shm_pool.
var ShmPoolInterface = &wire.Interface{
	Name:    "wl_shm_pool",
	Version: 1,
	Requests: []wire.Op{
		{Name: "create_buffer", Fields: []wire.Field{
			{Name: "id", Kind: wire.KindU32},
			{Name: "offset", Kind: wire.KindI32},
			{Name: "width", Kind: wire.KindI32},
			{Name: "height", Kind: wire.KindI32},
			{Name: "stride", Kind: wire.KindI32},
			{Name: "format", Kind: wire.KindEnum},
		}},
		{Name: "destroy", Fields: nil},
		{Name: "resize", Fields: []wire.Field{{Name: "size", Kind: wire.KindI32}}},
	},
}

// BufferInterface describes wl_buffer.
var BufferInterface = &wire.Interface{
	Name:    "wl_buffer",
	Version: 1,
	Requests: []wire.Op{
		{Name: "destroy", Fields: nil},
	},
	Events: []wire.Op{
		{Name: "release", Fields: nil},
	},
}

// SurfaceInterface describes wl_surface.
var SurfaceInterface = &wire.Interface{
	Name:    "wl_surface",
	Version: 6,
	Requests: []wire.Op{
		{Name: "destroy", Fields: nil},
		{Name: "attach", Fields: []wire.Field{
			{Name: "buffer", Kind: wire.KindU32},
			{Name: "x", Kind: wire.KindI32},
			{Name: "y", Kind: wire.KindI32},
		}},
		{Name: "damage", Fields: []wire.Field{
			{Name: "x", Kind: wire.KindI32},
			{Name: "y", Kind: wire.KindI32},
			{Name: "width", Kind: wire.KindI32},
			{Name: "height", Kind: wire.KindI32},
		}},
		{Name: "frame", Fields: []wire.Field{{Name: "callback", Kind: wire.KindU32}}},
		{Name: "set_opaque_region", Fields: []wire.Field{{Name: "region", Kind: wire.KindU32}}},
		{Name: "set_input_region", Fields: []wire.Field{{Name: "region", Kind: wire.KindU32}}},
		{Name: "commit", Fields: nil},
	},
	Events: []wire.Op{
		{Name: "enter", Fields: []wire.Field{{Name: "output", Kind: wire.KindU32}}},
		{Name: "leave", Fields: []wire.Field{{Name: "output", Kind: wire.KindU32}}},
	},
}

// SeatInterface describes wl_seat. Events only: the virtual-input
// protocols bind against a seat global without decoding anything else
// it emits, so no request encoders are generated for it.
var SeatInterface = &wire.Interface{
	Name:    "wl_seat",
	Version: 9,
	Events: []wire.Op{
		{Name: "capabilities", Fields: []wire.Field{{Name: "capabilities", Kind: wire.KindBitfield}}},
		{Name: "name", Fields: []wire.Field{{Name: "name", Kind: wire.KindString}}},
	},
}

// XdgWmBaseInterface describes xdg_wm_base.
var XdgWmBaseInterface = &wire.Interface{
	Name:    "xdg_wm_base",
	Version: 6,
	Requests: []wire.Op{
		{Name: "destroy", Fields: nil},
		{Name: "create_positioner", Fields: []wire.Field{{Name: "id", Kind: wire.KindU32}}},
		{Name: "get_xdg_surface", Fields: []wire.Field{
			{Name: "id", Kind: wire.KindU32},
			{Name: "surface", Kind: wire.KindU32},
		}},
		{Name: "pong", Fields: []wire.Field{{Name: "serial", Kind: wire.KindU32}}},
	},
	Events: []wire.Op{
		{Name: "ping", Fields: []wire.Field{{Name: "serial", Kind: wire.KindU32}}},
	},
}

// XdgSurfaceInterface describes xdg_surface.
var XdgSurfaceInterface = &wire.Interface{
	Name:    "xdg_surface",
	Version: 6,
	Requests: []wire.Op{
		{Name: "destroy", Fields: nil},
		{Name: "get_toplevel", Fields: []wire.Field{{Name: "id", Kind: wire.KindU32}}},
		{Name: "get_popup", Fields: []wire.Field{
			{Name: "id", Kind: wire.KindU32},
			{Name: "parent", Kind: wire.KindU32},
			{Name: "positioner", Kind: wire.KindU32},
		}},
		{Name: "set_window_geometry", Fields: []wire.Field{
			{Name: "x", Kind: wire.KindI32},
			{Name: "y", Kind: wire.KindI32},
			{Name: "width", Kind: wire.KindI32},
			{Name: "height", Kind: wire.KindI32},
		}},
		{Name: "ack_configure", Fields: []wire.Field{{Name: "serial", Kind: wire.KindU32}}},
	},
	Events: []wire.Op{
		{Name: "configure", Fields: []wire.Field{{Name: "serial", Kind: wire.KindU32}}},
	},
}

// XdgToplevelInterface describes xdg_toplevel.
var XdgToplevelInterface = &wire.Interface{
	Name:    "xdg_toplevel",
	Version: 6,
	Requests: []wire.Op{
		{Name: "destroy", Fields: nil},
		{Name: "set_parent", Fields: []wire.Field{{Name: "parent", Kind: wire.KindU32}}},
		{Name: "set_title", Fields: []wire.Field{{Name: "title", Kind: wire.KindString}}},
		{Name: "set_app_id", Fields: []wire.Field{{Name: "app_id", Kind: wire.KindString}}},
	},
	Events: []wire.Op{
		{Name: "configure", Fields: []wire.Field{
			{Name: "width", Kind: wire.KindI32},
			{Name: "height", Kind: wire.KindI32},
			{Name: "states", Kind: wire.KindArray},
		}},
		{Name: "close", Fields: nil},
	},
}

// --- wl_compositor requests ---

// CreateSurface is wl_compositor.create_surface.
type CreateSurface struct{ ID uint32 }

func (CreateSurface) Opcode() uint16 { return 0 }
func (r CreateSurface) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.ID)
	return nil
}

// --- wl_shm requests ---

// CreatePool is wl_shm.create_pool: hand the compositor a shared-memory
// fd and the pool id it should be known as. The fd argument rides the
// same sendmsg's ancillary data (spec.md §8 boundary scenario 6).
type CreatePool struct {
	ID   uint32
	Fd   int
	Size int32
}

func (CreatePool) Opcode() uint16 { return 0 }
func (r CreatePool) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.ID)
	e.PutFd(r.Fd)
	e.PutInt32(r.Size)
	return nil
}

// --- wl_shm_pool requests ---

// CreateBuffer is wl_shm_pool.create_buffer.
type CreateBuffer struct {
	ID     uint32
	Offset int32
	Width  int32
	Height int32
	Stride int32
	Format uint32
}

func (CreateBuffer) Opcode() uint16 { return 0 }
func (r CreateBuffer) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.ID)
	e.PutInt32(r.Offset)
	e.PutInt32(r.Width)
	e.PutInt32(r.Height)
	e.PutInt32(r.Stride)
	e.PutEnum(r.Format)
	return nil
}

// --- wl_surface requests ---

// Attach is wl_surface.attach.
type Attach struct {
	Buffer uint32
	X, Y   int32
}

func (Attach) Opcode() uint16 { return 1 }
func (r Attach) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Buffer)
	e.PutInt32(r.X)
	e.PutInt32(r.Y)
	return nil
}

// Damage is wl_surface.damage.
type Damage struct{ X, Y, Width, Height int32 }

func (Damage) Opcode() uint16 { return 2 }
func (r Damage) EncodeArgs(e *wire.Encoder) error {
	e.PutInt32(r.X)
	e.PutInt32(r.Y)
	e.PutInt32(r.Width)
	e.PutInt32(r.Height)
	return nil
}

// Commit is wl_surface.commit.
type Commit struct{}

func (Commit) Opcode() uint16                { return 6 }
func (Commit) EncodeArgs(*wire.Encoder) error { return nil }

// --- xdg_wm_base requests ---

// GetXdgSurface is xdg_wm_base.get_xdg_surface.
type GetXdgSurface struct {
	ID      uint32
	Surface uint32
}

func (GetXdgSurface) Opcode() uint16 { return 2 }
func (r GetXdgSurface) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.ID)
	e.PutUint32(r.Surface)
	return nil
}

// Pong is xdg_wm_base.pong.
type Pong struct{ Serial uint32 }

func (Pong) Opcode() uint16 { return 3 }
func (r Pong) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Serial)
	return nil
}

// --- xdg_surface requests ---

// GetToplevel is xdg_surface.get_toplevel.
type GetToplevel struct{ ID uint32 }

func (GetToplevel) Opcode() uint16 { return 1 }
func (r GetToplevel) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.ID)
	return nil
}

// AckConfigure is xdg_surface.ack_configure.
type AckConfigure struct{ Serial uint32 }

func (AckConfigure) Opcode() uint16 { return 4 }
func (r AckConfigure) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Serial)
	return nil
}

// --- xdg_toplevel requests ---

// SetTitle is xdg_toplevel.set_title.
type SetTitle struct{ Title string }

func (SetTitle) Opcode() uint16 { return 2 }
func (r SetTitle) EncodeArgs(e *wire.Encoder) error {
	return e.PutString(r.Title)
}

// --- events ---

// PingEvent is xdg_wm_base.ping.
type PingEvent struct{ Serial uint32 }

// DecodePingEvent decodes an xdg_wm_base.ping event body.
func DecodePingEvent(d *wire.Decoder) (PingEvent, error) {
	serial, err := d.Uint32()
	if err != nil {
		return PingEvent{}, err
	}
	return PingEvent{Serial: serial}, nil
}

// ConfigureEvent is xdg_surface.configure.
type ConfigureEvent struct{ Serial uint32 }

// DecodeConfigureEvent decodes an xdg_surface.configure event body.
func DecodeConfigureEvent(d *wire.Decoder) (ConfigureEvent, error) {
	serial, err := d.Uint32()
	if err != nil {
		return ConfigureEvent{}, err
	}
	return ConfigureEvent{Serial: serial}, nil
}

// ToplevelConfigureEvent is xdg_toplevel.configure.
type ToplevelConfigureEvent struct {
	Width, Height int32
	States        []byte
}

// DecodeToplevelConfigureEvent decodes an xdg_toplevel.configure event body.
func DecodeToplevelConfigureEvent(d *wire.Decoder) (ToplevelConfigureEvent, error) {
	var ev ToplevelConfigureEvent
	var err error
	if ev.Width, err = d.Int32(); err != nil {
		return ToplevelConfigureEvent{}, err
	}
	if ev.Height, err = d.Int32(); err != nil {
		return ToplevelConfigureEvent{}, err
	}
	if ev.States, err = d.Array(); err != nil {
		return ToplevelConfigureEvent{}, err
	}
	return ev, nil
}

// FormatEvent is wl_shm.format.
type FormatEvent struct{ Format uint32 }

// DecodeFormatEvent decodes a wl_shm.format event body.
func DecodeFormatEvent(d *wire.Decoder) (FormatEvent, error) {
	format, err := d.Enum(nil)
	if err != nil {
		return FormatEvent{}, err
	}
	return FormatEvent{Format: format}, nil
}
