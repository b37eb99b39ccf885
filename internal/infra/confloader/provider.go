// Package confloader provides the configuration loading mechanism.
package confloader

import "errors"

// ErrReadBytesNotSupported is returned when ReadBytes is called on a map
// provider.
var ErrReadBytesNotSupported = errors.New("confloader: ReadBytes not supported by map provider, use Read() instead")

// mapProvider is a koanf provider that serves configuration from a map.
// koanf calls Read() for map-shaped providers; ReadBytes exists only to
// satisfy the interface.
type mapProvider map[string]any

// ReadBytes returns an error as the map provider has no byte form.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read returns the configuration map.
func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
