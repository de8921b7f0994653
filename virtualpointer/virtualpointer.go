// Package virtualpointer is an example consumer of this module's core
// stack: it drives zwlr_virtual_pointer_manager_v1 and
// zwlr_virtual_pointer_v1 over a bound wlclient.Connection.
package virtualpointer

import (
	"time"

	"github.com/bnema/wlwire/idpool"
	"github.com/bnema/wlwire/protocol/vinput"
	"github.com/bnema/wlwire/wlclient"
)

// Button constants (Linux input event codes for mouse buttons).
const (
	BtnLeft   = 0x110
	BtnRight  = 0x111
	BtnMiddle = 0x112
	BtnSide   = 0x113
	BtnExtra  = 0x114
)

// ButtonState mirrors wl_pointer.button_state.
type ButtonState uint32

const (
	ButtonStateReleased ButtonState = 0
	ButtonStatePressed  ButtonState = 1
)

// Axis mirrors wl_pointer.axis.
type Axis uint32

const (
	AxisVertical   Axis = 0
	AxisHorizontal Axis = 1
)

// AxisSource mirrors wl_pointer.axis_source.
type AxisSource uint32

const (
	AxisSourceWheel      AxisSource = 0
	AxisSourceFinger     AxisSource = 1
	AxisSourceContinuous AxisSource = 2
	AxisSourceWheelTilt  AxisSource = 3
)

// Manager wraps a bound zwlr_virtual_pointer_manager_v1 object.
type Manager struct {
	conn     *wlclient.Connection
	pool     *idpool.Pool
	objectID uint32
}

// NewManager wraps an already-bound zwlr_virtual_pointer_manager_v1
// object id (as returned by registry.RegisterGlobals).
func NewManager(conn *wlclient.Connection, pool *idpool.Pool, objectID uint32) *Manager {
	return &Manager{conn: conn, pool: pool, objectID: objectID}
}

// CreatePointer is zwlr_virtual_pointer_manager_v1.create_virtual_pointer.
// seat may be 0 to use the compositor's default.
func (m *Manager) CreatePointer(seat uint32) (*Pointer, error) {
	id := m.pool.Create()
	if err := m.conn.Send(m.objectID, vinput.CreateVirtualPointer{Seat: seat, ID: id}); err != nil {
		m.pool.Destroy(id)
		return nil, err
	}
	return &Pointer{conn: m.conn, pool: m.pool, objectID: id}, nil
}

// Pointer wraps a bound zwlr_virtual_pointer_v1 object.
type Pointer struct {
	conn     *wlclient.Connection
	pool     *idpool.Pool
	objectID uint32
}

func timeMs(t time.Time) uint32 { return uint32(t.UnixMilli()) }

// Motion is zwlr_virtual_pointer_v1.motion: a relative movement.
func (p *Pointer) Motion(t time.Time, dx, dy float64) error {
	return p.conn.Send(p.objectID, vinput.Motion{
		Time: timeMs(t),
		Dx:   vinput.FixedFromFloat64(dx),
		Dy:   vinput.FixedFromFloat64(dy),
	})
}

// MotionAbsolute is zwlr_virtual_pointer_v1.motion_absolute.
func (p *Pointer) MotionAbsolute(t time.Time, x, y, xExtent, yExtent uint32) error {
	return p.conn.Send(p.objectID, vinput.MotionAbsolute{
		Time: timeMs(t), X: x, Y: y, XExtent: xExtent, YExtent: yExtent,
	})
}

// Button is zwlr_virtual_pointer_v1.button.
func (p *Pointer) Button(t time.Time, button uint32, state ButtonState) error {
	return p.conn.Send(p.objectID, vinput.Button{Time: timeMs(t), Button: button, State: uint32(state)})
}

// Axis is zwlr_virtual_pointer_v1.axis: a scroll delta.
func (p *Pointer) Axis(t time.Time, axis Axis, value float64) error {
	return p.conn.Send(p.objectID, vinput.Axis{
		Time: timeMs(t), Axis: uint32(axis), Value: vinput.FixedFromFloat64(value),
	})
}

// Frame is zwlr_virtual_pointer_v1.frame: terminates a batch of motion/
// button/axis requests.
func (p *Pointer) Frame() error {
	return p.conn.Send(p.objectID, vinput.Frame{})
}

// AxisSource is zwlr_virtual_pointer_v1.axis_source.
func (p *Pointer) AxisSource(source AxisSource) error {
	return p.conn.Send(p.objectID, vinput.AxisSource{Source: uint32(source)})
}

// AxisStop is zwlr_virtual_pointer_v1.axis_stop.
func (p *Pointer) AxisStop(t time.Time, axis Axis) error {
	return p.conn.Send(p.objectID, vinput.AxisStop{Time: timeMs(t), Axis: uint32(axis)})
}

// AxisDiscrete is zwlr_virtual_pointer_v1.axis_discrete.
func (p *Pointer) AxisDiscrete(t time.Time, axis Axis, value float64, discrete int32) error {
	return p.conn.Send(p.objectID, vinput.AxisDiscrete{
		Time: timeMs(t), Axis: uint32(axis), Value: vinput.FixedFromFloat64(value), Discrete: discrete,
	})
}

// Destroy is zwlr_virtual_pointer_v1.destroy and recycles the object id.
func (p *Pointer) Destroy() error {
	err := p.conn.Send(p.objectID, vinput.DestroyVirtualPointer{})
	p.pool.Destroy(p.objectID)
	return err
}

// MoveRelative moves the pointer by (dx, dy) and emits a frame.
func (p *Pointer) MoveRelative(dx, dy float64) error {
	if err := p.Motion(time.Now(), dx, dy); err != nil {
		return err
	}
	return p.Frame()
}

// click presses and releases button, followed by a frame.
func (p *Pointer) click(button uint32) error {
	now := time.Now()
	if err := p.Button(now, button, ButtonStatePressed); err != nil {
		return err
	}
	if err := p.Button(now, button, ButtonStateReleased); err != nil {
		return err
	}
	return p.Frame()
}

// LeftClick clicks the left mouse button.
func (p *Pointer) LeftClick() error { return p.click(BtnLeft) }

// RightClick clicks the right mouse button.
func (p *Pointer) RightClick() error { return p.click(BtnRight) }

// MiddleClick clicks the middle mouse button.
func (p *Pointer) MiddleClick() error { return p.click(BtnMiddle) }

// ScrollVertical scrolls vertically by amount and emits a frame.
func (p *Pointer) ScrollVertical(amount float64) error {
	if err := p.Axis(time.Now(), AxisVertical, amount); err != nil {
		return err
	}
	return p.Frame()
}

// ScrollHorizontal scrolls horizontally by amount and emits a frame.
func (p *Pointer) ScrollHorizontal(amount float64) error {
	if err := p.Axis(time.Now(), AxisHorizontal, amount); err != nil {
		return err
	}
	return p.Frame()
}
