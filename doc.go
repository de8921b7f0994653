// Package wlwire implements the client side of the Wayland wire
// protocol: a binary message codec, an object-ID allocator, a
// Unix-socket transport carrying ancillary file descriptors, and a
// registry bootstrap handshake, independent of any one set of
// compositor interfaces.
//
// # Packages
//
// wire defines the codec primitives (Encoder, Decoder, Interface,
// Encodable) and the library's error taxonomy.
//
// idpool allocates and recycles Wayland object ids.
//
// wlclient dials the compositor's Unix socket, resolves it from
// WAYLAND_DISPLAY/XDG_RUNTIME_DIR, and moves messages (with any
// attached fds) to and from the wire.
//
// registry drives the wl_display.get_registry / wl_display.sync
// handshake that binds a set of required globals before a client does
// anything else.
//
// protocol/core, protocol/desktop and protocol/vinput catalog the
// interfaces, requests and events for the core desktop protocol and
// for the virtual-input/pointer-constraints family, as plain codec
// types with no transport logic of their own.
//
// virtualkeyboard, virtualpointer and pointerconstraints are example
// consumers built on the packages above — not part of the core
// library, just one way to use it.
//
// # Basic usage
//
//	conn, err := wlclient.Connect(socketPath)
//	pool := idpool.New()
//	globals, err := registry.RegisterGlobals(conn, pool, []registry.Requirement{
//		{Interface: "zwlr_virtual_pointer_manager_v1", MinVersion: 1},
//	})
//	mgr := virtualpointer.NewManager(conn, pool, globals["zwlr_virtual_pointer_manager_v1"].ObjectID)
//	pointer, err := mgr.CreatePointer(0)
//	pointer.LeftClick()
//
// The tests of virtualkeyboard, virtualpointer and pointerconstraints
// exercise this stack end to end over a socketpair.
package wlwire
