//go:build darwin
// +build darwin

package session

const defaultKind = KindMacos
