package source

import (
	"image"

	"github.com/google/uuid"
)

// Role tags which comparison slot a resource fills.
type Role int

const (
	RoleBase Role = iota
	RoleOverlay
)

func (r Role) String() string {
	switch r {
	case RoleBase:
		return "base"
	case RoleOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Roles lists the two slots in display order.
var Roles = [...]Role{RoleBase, RoleOverlay}

// ImageResource is a decoded image handed to the core. It is immutable once
// created; uploading a new file for the same role produces a new resource.
type ImageResource struct {
	ID        uuid.UUID
	Role      Role
	Image     image.Image
	Name      string // file name or capture label
	Size      int64  // encoded size in bytes, 0 for captures
	MediaType string
}

// NewResource wraps img with a fresh ID.
func NewResource(role Role, img image.Image, name string, size int64, mediaType string) *ImageResource {
	return &ImageResource{ID: uuid.New(), Role: role, Image: img, Name: name, Size: size, MediaType: mediaType}
}

// Bounds returns the image bounds or an empty rectangle for a nil resource.
func (r *ImageResource) Bounds() image.Rectangle {
	if r == nil || r.Image == nil {
		return image.Rectangle{}
	}
	return r.Image.Bounds()
}

// Result is delivered by the Loader once a load attempt finishes.
// Exactly one of Resource and Err is set.
type Result struct {
	Role     Role
	Source   string
	Resource *ImageResource
	Err      error
}
