// Package desktop resolves which screenshot tool family to use in a session.
package desktop

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindUndefined = Kind(iota)
	KindGNOME
	KindKDE
	KindSway
	KindGeneric
	KindMacos
	endOfKind
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindGNOME:
		return "gnome"
	case KindKDE:
		return "kde"
	case KindSway:
		return "sway"
	case KindGeneric:
		return "generic"
	case KindMacos:
		return "macos"
	default:
		return fmt.Sprintf("unknown_%d", int(k))
	}
}

func ParseKind(s string) Kind {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KindUndefined; k < endOfKind; k++ {
		if k.String() == s {
			return k
		}
	}
	return KindUndefined
}
