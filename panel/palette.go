package panel

import (
	"errors"
	"fmt"

	"github.com/gogpu/certgen/canvas"
)

// ErrMissingRole is returned when a palette lacks a role a layout needs.
var ErrMissingRole = errors.New("panel: palette is missing a required role")

// Role names one color slot of a Palette.
type Role string

const (
	// RolePanel outlines the outer panel.
	RolePanel Role = "panel"
	// RoleAccent outlines the information boxes.
	RoleAccent Role = "accent"
	// RoleSoft fills the information boxes.
	RoleSoft Role = "soft"
	// RoleHeader fills the table header bar.
	RoleHeader Role = "header"
	// RoleLine draws the table frame and dividers.
	RoleLine Role = "line"
)

// Palette maps roles to colors. Each variant supplies its own.
type Palette map[Role]canvas.Color

// Require checks that every role is present.
func (p Palette) Require(roles ...Role) error {
	for _, r := range roles {
		if _, ok := p[r]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingRole, r)
		}
	}
	return nil
}
