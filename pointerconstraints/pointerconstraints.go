// Package pointerconstraints is an example consumer of this module's
// core stack: it drives zwp_pointer_constraints_v1, zwp_locked_pointer_v1
// and zwp_confined_pointer_v1 over a bound wlclient.Connection.
package pointerconstraints

import (
	"github.com/bnema/wlwire/idpool"
	"github.com/bnema/wlwire/protocol/vinput"
	"github.com/bnema/wlwire/wire"
	"github.com/bnema/wlwire/wlclient"
)

// Lifetime constants for lock_pointer/confine_pointer.
const (
	LifetimeOneshot    = vinput.LifetimeOneshot
	LifetimePersistent = vinput.LifetimePersistent
)

// ErrorAlreadyConstrained is zwp_pointer_constraints_v1.error.already_constrained:
// the compositor rejects a second constraint on a surface that already has one.
const ErrorAlreadyConstrained = 1

// Manager wraps a bound zwp_pointer_constraints_v1 object.
type Manager struct {
	conn     *wlclient.Connection
	pool     *idpool.Pool
	objectID uint32
}

// NewManager wraps an already-bound zwp_pointer_constraints_v1 object id
// (as returned by registry.RegisterGlobals).
func NewManager(conn *wlclient.Connection, pool *idpool.Pool, objectID uint32) *Manager {
	return &Manager{conn: conn, pool: pool, objectID: objectID}
}

// LockPointer is zwp_pointer_constraints_v1.lock_pointer. region may be 0
// to constrain to the whole surface.
func (m *Manager) LockPointer(surface, pointer, region uint32, lifetime uint32) (*LockedPointer, error) {
	id := m.pool.Create()
	req := vinput.LockPointer{ID: id, Surface: surface, Pointer: pointer, Region: region, Lifetime: lifetime}
	if err := m.conn.Send(m.objectID, req); err != nil {
		m.pool.Destroy(id)
		return nil, err
	}
	return &LockedPointer{conn: m.conn, pool: m.pool, objectID: id}, nil
}

// ConfinePointer is zwp_pointer_constraints_v1.confine_pointer. region may
// be 0 to confine to the whole surface.
func (m *Manager) ConfinePointer(surface, pointer, region uint32, lifetime uint32) (*ConfinedPointer, error) {
	id := m.pool.Create()
	req := vinput.ConfinePointer{ID: id, Surface: surface, Pointer: pointer, Region: region, Lifetime: lifetime}
	if err := m.conn.Send(m.objectID, req); err != nil {
		m.pool.Destroy(id)
		return nil, err
	}
	return &ConfinedPointer{conn: m.conn, pool: m.pool, objectID: id}, nil
}

// Destroy is zwp_pointer_constraints_v1.destroy. It does not recycle the
// manager's own object id: the manager is a long-lived bound global, not
// an object this package allocated.
func (m *Manager) Destroy() error {
	return m.conn.Send(m.objectID, destroyManager{})
}

// destroyManager encodes zwp_pointer_constraints_v1.destroy, a bare
// request with no arguments.
type destroyManager struct{}

func (destroyManager) Opcode() uint16                { return 0 }
func (destroyManager) EncodeArgs(*wire.Encoder) error { return nil }

// LockedPointer wraps a bound zwp_locked_pointer_v1 object.
type LockedPointer struct {
	conn     *wlclient.Connection
	pool     *idpool.Pool
	objectID uint32
}

// SetCursorPositionHint is zwp_locked_pointer_v1.set_cursor_position_hint.
func (l *LockedPointer) SetCursorPositionHint(x, y float64) error {
	return l.conn.Send(l.objectID, vinput.SetCursorPositionHint{
		SurfaceX: vinput.FixedFromFloat64(x),
		SurfaceY: vinput.FixedFromFloat64(y),
	})
}

// SetRegion is zwp_locked_pointer_v1.set_region. region may be 0 to clear
// a previously-set region.
func (l *LockedPointer) SetRegion(region uint32) error {
	return l.conn.Send(l.objectID, lockedSetRegion{Region: region})
}

// lockedSetRegion encodes zwp_locked_pointer_v1.set_region (opcode 2:
// after destroy and set_cursor_position_hint).
type lockedSetRegion struct{ Region uint32 }

func (lockedSetRegion) Opcode() uint16 { return 2 }
func (r lockedSetRegion) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Region)
	return nil
}

// Destroy is zwp_locked_pointer_v1.destroy and recycles the object id.
func (l *LockedPointer) Destroy() error {
	err := l.conn.Send(l.objectID, vinput.DestroyLockedPointer{})
	l.pool.Destroy(l.objectID)
	return err
}

// ConfinedPointer wraps a bound zwp_confined_pointer_v1 object.
type ConfinedPointer struct {
	conn     *wlclient.Connection
	pool     *idpool.Pool
	objectID uint32
}

// SetRegion is zwp_confined_pointer_v1.set_region. region may be 0 to
// clear a previously-set region.
func (c *ConfinedPointer) SetRegion(region uint32) error {
	return c.conn.Send(c.objectID, confinedSetRegion{Region: region})
}

// confinedSetRegion encodes zwp_confined_pointer_v1.set_region (opcode 1:
// after destroy).
type confinedSetRegion struct{ Region uint32 }

func (confinedSetRegion) Opcode() uint16 { return 1 }
func (r confinedSetRegion) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Region)
	return nil
}

// Destroy is zwp_confined_pointer_v1.destroy and recycles the object id.
func (c *ConfinedPointer) Destroy() error {
	err := c.conn.Send(c.objectID, vinput.DestroyConfinedPointer{})
	c.pool.Destroy(c.objectID)
	return err
}
