package types

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Kind is the requested screenshot mode.
type Kind int

const (
	KindUndefined = Kind(iota)
	KindArea
	KindWindow
	KindFull
	endOfKind
)

var _ pflag.Value = (*Kind)(nil)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindArea:
		return "area"
	case KindWindow:
		return "window"
	case KindFull:
		return "full"
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

func (k *Kind) Set(s string) error {
	parsed := ParseKind(s)
	if parsed == KindUndefined {
		return fmt.Errorf("unknown screenshot kind '%s', expected one of: area, window, full", s)
	}
	*k = parsed
	return nil
}

func (k *Kind) Type() string {
	return "screenshot-kind"
}
