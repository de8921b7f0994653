package wlclient

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/bnema/wlwire/wire"
)

// defaultDisplayName is used when WAYLAND_DISPLAY is unset, per
// spec.md §6.1.
const defaultDisplayName = "wayland-0"

// DefaultSocketPath resolves the compositor socket path from the
// environment, per spec.md §6.1: XDG_RUNTIME_DIR is required; an
// absolute WAYLAND_DISPLAY is used verbatim, otherwise it (or the
// "wayland-0" default) is joined onto XDG_RUNTIME_DIR.
func DefaultSocketPath() (string, error) {
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = defaultDisplayName
	}
	if filepath.IsAbs(display) {
		return display, nil
	}

	runDir := os.Getenv("XDG_RUNTIME_DIR")
	if runDir == "" {
		return "", wire.NewError(wire.KindIO, "wlclient.DefaultSocketPath", errXDGRuntimeDirUnset)
	}
	return filepath.Join(runDir, display), nil
}

var errXDGRuntimeDirUnset = errors.New("XDG_RUNTIME_DIR not set")
