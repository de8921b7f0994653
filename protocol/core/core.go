// Package core implements the three interfaces every Wayland
// connection bootstraps with — wl_display, wl_registry, wl_callback —
// as hand-written request/event records over the wire package. This
// is the per-message half of C2 (spec.md §4.2): one Encodable type per
// request, one decode function per event, rather than a reflective
// descriptor interpreter.
package core

import "github.com/bnema/wlwire/wire"

// DisplayInterface describes wl_display for catalog lookups (C1).
var DisplayInterface = &wire.Interface{
	Name:    "wl_display",
	Version: 1,
	Requests: []wire.Op{
		{Name: "sync", Fields: []wire.Field{{Name: "callback", Kind: wire.KindU32}}},
		{Name: "get_registry", Fields: []wire.Field{{Name: "registry", Kind: wire.KindU32}}},
	},
	Events: []wire.Op{
		{Name: "error", Fields: []wire.Field{
			{Name: "object_id", Kind: wire.KindU32},
			{Name: "code", Kind: wire.KindU32},
			{Name: "message", Kind: wire.KindString},
		}},
		{Name: "delete_id", Fields: []wire.Field{{Name: "id", Kind: wire.KindU32}}},
	},
}

// RegistryInterface describes wl_registry.
var RegistryInterface = &wire.Interface{
	Name:    "wl_registry",
	Version: 1,
	Requests: []wire.Op{
		{Name: "bind", Fields: []wire.Field{
			{Name: "name", Kind: wire.KindU32},
			{Name: "interface", Kind: wire.KindString},
			{Name: "version", Kind: wire.KindU32},
			{Name: "id", Kind: wire.KindU32},
		}},
	},
	Events: []wire.Op{
		{Name: "global", Fields: []wire.Field{
			{Name: "name", Kind: wire.KindU32},
			{Name: "interface", Kind: wire.KindString},
			{Name: "version", Kind: wire.KindU32},
		}},
		// global_remove carries the departing global's name, resolving
		// the Open Question spec.md leaves about its schema: the
		// compositor does not repeat the interface string, only the
		// numeric name it originally advertised it under.
		{Name: "global_remove", Fields: []wire.Field{{Name: "name", Kind: wire.KindU32}}},
	},
}

// CallbackInterface describes wl_callback, used for both
// wl_display.sync replies and frame callbacks.
var CallbackInterface = &wire.Interface{
	Name:    "wl_callback",
	Version: 1,
	Events: []wire.Op{
		{Name: "done", Fields: []wire.Field{{Name: "callback_data", Kind: wire.KindU32}}},
	},
}

// --- wl_display requests ---

// Sync is wl_display.sync: request a callback delivered once every
// prior request has been processed, to implement a roundtrip barrier.
type Sync struct{ Callback uint32 }

func (Sync) Opcode() uint16 { return 0 }
func (r Sync) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Callback)
	return nil
}

// GetRegistry is wl_display.get_registry: bind the singleton registry
// object that the compositor advertises globals through.
type GetRegistry struct{ Registry uint32 }

func (GetRegistry) Opcode() uint16 { return 1 }
func (r GetRegistry) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Registry)
	return nil
}

// --- wl_display events ---

// ErrorEvent is wl_display.error: a fatal protocol error raised by the
// compositor against one of the client's objects.
type ErrorEvent struct {
	ObjectID uint32
	Code     uint32
	Message  string
}

// DecodeErrorEvent decodes a wl_display.error event body.
func DecodeErrorEvent(d *wire.Decoder) (ErrorEvent, error) {
	var ev ErrorEvent
	var err error
	if ev.ObjectID, err = d.Uint32(); err != nil {
		return ErrorEvent{}, err
	}
	if ev.Code, err = d.Uint32(); err != nil {
		return ErrorEvent{}, err
	}
	if ev.Message, err = d.String(); err != nil {
		return ErrorEvent{}, err
	}
	return ev, nil
}

// DeleteIDEvent is wl_display.delete_id: the compositor confirms an
// object id is free for the client to recycle via idpool.
type DeleteIDEvent struct{ ID uint32 }

// DecodeDeleteIDEvent decodes a wl_display.delete_id event body.
func DecodeDeleteIDEvent(d *wire.Decoder) (DeleteIDEvent, error) {
	id, err := d.Uint32()
	if err != nil {
		return DeleteIDEvent{}, err
	}
	return DeleteIDEvent{ID: id}, nil
}

// --- wl_registry requests ---

// Bind is wl_registry.bind: instantiate a global the compositor
// advertised, at or below the version it offered.
type Bind struct {
	Name      uint32
	Interface string
	Version   uint32
	ID        uint32
}

func (Bind) Opcode() uint16 { return 0 }
func (r Bind) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.Name)
	if err := e.PutString(r.Interface); err != nil {
		return err
	}
	e.PutUint32(r.Version)
	e.PutUint32(r.ID)
	return nil
}

// --- wl_registry events ---

// GlobalEvent is wl_registry.global: one compositor-advertised global.
type GlobalEvent struct {
	Name      uint32
	Interface string
	Version   uint32
}

// DecodeGlobalEvent decodes a wl_registry.global event body.
func DecodeGlobalEvent(d *wire.Decoder) (GlobalEvent, error) {
	var ev GlobalEvent
	var err error
	if ev.Name, err = d.Uint32(); err != nil {
		return GlobalEvent{}, err
	}
	if ev.Interface, err = d.String(); err != nil {
		return GlobalEvent{}, err
	}
	if ev.Version, err = d.Uint32(); err != nil {
		return GlobalEvent{}, err
	}
	return ev, nil
}

// GlobalRemoveEvent is wl_registry.global_remove: a previously
// advertised global is no longer available.
type GlobalRemoveEvent struct{ Name uint32 }

// DecodeGlobalRemoveEvent decodes a wl_registry.global_remove event body.
func DecodeGlobalRemoveEvent(d *wire.Decoder) (GlobalRemoveEvent, error) {
	name, err := d.Uint32()
	if err != nil {
		return GlobalRemoveEvent{}, err
	}
	return GlobalRemoveEvent{Name: name}, nil
}

// --- wl_callback events ---

// DoneEvent is wl_callback.done: the callback fired, with protocol-
// specific data (a serial for sync, a timestamp for frame callbacks).
type DoneEvent struct{ CallbackData uint32 }

// DecodeDoneEvent decodes a wl_callback.done event body.
func DecodeDoneEvent(d *wire.Decoder) (DoneEvent, error) {
	data, err := d.Uint32()
	if err != nil {
		return DoneEvent{}, err
	}
	return DoneEvent{CallbackData: data}, nil
}
