// Package assets uploads project images to an external host and returns the
// URL to store on the project.
package assets

import (
	"context"
	"io"
	"strings"
)

// Uploader stores one image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}

// Profile is the delivery transform applied to every uploaded image.
type Profile struct {
	DPR        string
	Width      string
	Crop       string
	Responsive bool
}

// DefaultProfile: auto device-pixel-ratio, responsive auto width, scale crop.
var DefaultProfile = Profile{DPR: "auto", Width: "auto", Crop: "scale", Responsive: true}

// Transformation renders the profile as a Cloudinary transformation string,
// e.g. "c_scale,dpr_auto,w_auto". Width is only emitted for responsive profiles.
func (p Profile) Transformation() string {
	var parts []string
	if p.Crop != "" {
		parts = append(parts, "c_"+p.Crop)
	}
	if p.DPR != "" {
		parts = append(parts, "dpr_"+p.DPR)
	}
	if p.Responsive && p.Width != "" {
		parts = append(parts, "w_"+p.Width)
	}
	return strings.Join(parts, ",")
}
