//go:build !darwin
// +build !darwin

package session

const defaultKind = KindX11
