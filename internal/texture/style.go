package texture

import "fmt"

// Style selects the surface algorithm for a planet texture.
type Style int

const (
	Gas Style = iota
	Rocky
	Ocean
)

func (s Style) String() string {
	switch s {
	case Gas:
		return "gas"
	case Rocky:
		return "rocky"
	case Ocean:
		return "ocean"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}
