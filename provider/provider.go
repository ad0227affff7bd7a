// Package provider contains translation backends.
package provider

import "github.com/hanscan/hanscan"

// Provider is the interface translation backends implement.
// It is an alias to avoid import cycles.
type Provider = hanscan.Provider
