package values

import (
	"fmt"
	"strings"
)

// RenderBackend selects the graphics API used by a launched application.
// The zero value is RendererD3D11, the default backend.
type RenderBackend uint8

const (
	RendererD3D11 RenderBackend = iota
	RendererVulkan
	RendererOpenGL
)

// DefaultRenderBackend is used when a profile does not pick one.
const DefaultRenderBackend = RendererD3D11

// AllRenderBackends lists every backend in declaration order.
func AllRenderBackends() []RenderBackend {
	return []RenderBackend{RendererD3D11, RendererVulkan, RendererOpenGL}
}

// ParseRenderBackend converts a name into a backend. Matching is case insensitive
// and an empty string yields DefaultRenderBackend.
func ParseRenderBackend(s string) (RenderBackend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultRenderBackend, nil
	case "d3d11":
		return RendererD3D11, nil
	case "vulkan":
		return RendererVulkan, nil
	case "opengl":
		return RendererOpenGL, nil
	default:
		return 0, fmt.Errorf("invalid render backend: %s", s)
	}
}

func (r RenderBackend) String() string {
	switch r {
	case RendererD3D11:
		return "d3d11"
	case RendererVulkan:
		return "vulkan"
	case RendererOpenGL:
		return "opengl"
	default:
		return fmt.Sprintf("renderer(%d)", uint8(r))
	}
}

// DisplayName returns the conventional spelling of the API name.
func (r RenderBackend) DisplayName() string {
	switch r {
	case RendererD3D11:
		return "Direct3D 11"
	case RendererVulkan:
		return "Vulkan"
	case RendererOpenGL:
		return "OpenGL"
	default:
		return r.String()
	}
}

// Validate returns an error if the backend is outside the closed set
func (r RenderBackend) Validate() error {
	switch r {
	case RendererD3D11, RendererVulkan, RendererOpenGL:
		return nil
	default:
		return fmt.Errorf("invalid render backend: %d", uint8(r))
	}
}

// MarshalText implements encoding.TextMarshaler
func (r RenderBackend) MarshalText() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *RenderBackend) UnmarshalText(data []byte) error {
	parsed, err := ParseRenderBackend(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
