package domain

import (
	"database/sql/driver"
	"fmt"
)

// Color identifies one of the two sides of a game. The zero value is Black so
// composite structures can be zero-initialized; business logic must never
// read the zero value as a chosen side.
type Color int

const (
	ColorBlack Color = iota
	ColorWhite
)

func (c Color) Opposite() Color {
	if c == ColorBlack {
		return ColorWhite
	}
	return ColorBlack
}

func (c Color) String() string {
	if c == ColorWhite {
		return "w"
	}
	return "b"
}

// ParseColor decodes the canonical one-character encoding. Any other token is
// an error, never a silent default.
func ParseColor(s string) (Color, error) {
	switch s {
	case "b":
		return ColorBlack, nil
	case "w":
		return ColorWhite, nil
	default:
		return ColorBlack, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) Value() (driver.Value, error) {
	return c.String(), nil
}

func (c *Color) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return c.UnmarshalText([]byte(v))
	case []byte:
		return c.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Color", src)
	}
}
