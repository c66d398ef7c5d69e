// Package session classifies the running graphical session.
package session

import (
	"fmt"
	"os"
	"strings"
)

type Kind int

const (
	KindUndefined = Kind(iota)
	KindWayland
	KindX11
	KindMacos
	endOfKind
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindWayland:
		return "wayland"
	case KindX11:
		return "x11"
	case KindMacos:
		return "macos"
	default:
		return fmt.Sprintf("unknown_%d", int(k))
	}
}

// ParseKind is case-insensitive; it returns KindUndefined for unknown values.
func ParseKind(s string) Kind {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KindUndefined; k < endOfKind; k++ {
		if k.String() == s {
			return k
		}
	}
	return KindUndefined
}

const EnvSessionType = "XDG_SESSION_TYPE"

// Detect never fails: any non-Wayland value of XDG_SESSION_TYPE is treated
// as X11, and an unset variable falls back to the platform default.
func Detect(lookupEnv func(string) (string, bool)) Kind {
	value, ok := lookupEnv(EnvSessionType)
	if !ok {
		return defaultKind
	}
	if strings.EqualFold(value, "wayland") {
		return KindWayland
	}
	return KindX11
}

func DetectFromEnv() Kind {
	return Detect(os.LookupEnv)
}
