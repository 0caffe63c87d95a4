package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/linedrawer/common"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrUnknownColor = errors.New("config: unknown color")

// ParseColor accepts a colornames entry ("red", "cornflowerblue") or a hex
// value in the form #rgb, #rrggbb or #rrggbbaa. Hex alpha is straight alpha;
// the result is premultiplied.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrUnknownColor)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
	}
	return common.Premultiply(color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}), nil
}

// Color is a color that unmarshals from a YAML string.
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

func colorOrZero(name string) color.RGBA {
	c, _ := ParseColor(name)
	return c
}
