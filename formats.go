/*
 * formats.go, part of molcore.
 *
 *
 * Copyright 2025 The molcore Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chem

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Registry selects a Format for a file, by extension or, failing that, by
// sniffing the content. Formats are tried in registration order.
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats []Format
}

// NewRegistry returns a Registry with the given formats.
func NewRegistry(formats ...Format) *Registry {
	R := new(Registry)
	R.formats = append(R.formats, formats...)
	return R
}

// DefaultRegistry knows the XYZ, MDL molfile/SDF and PDB formats.
var DefaultRegistry = NewRegistry(&XYZ{}, &MOL{}, &PDB{})

// Register adds f to the registry. Formats registered later have
// lower priority.
func (R *Registry) Register(f Format) {
	R.mu.Lock()
	defer R.mu.Unlock()
	R.formats = append(R.formats, f)
}

// Formats returns the names of the registered formats, in order.
func (R *Registry) Formats() []string {
	R.mu.RLock()
	defer R.mu.RUnlock()
	return R.names()
}

// ForName returns the first format that can handle the file name or
// extension given. It returns an UnsupportedFormat *Error if there is none.
func (R *Registry) ForName(name string) (Format, error) {
	R.mu.RLock()
	defer R.mu.RUnlock()
	for _, f := range R.formats {
		if f.CanHandle(name) {
			return f, nil
		}
	}
	return nil, NewError(UnsupportedFormat, "no format registered for %q (known: %s)", name, strings.Join(R.names(), ", "))
}

// Detect chooses the format for a file, first by its name and, if name is empty or
// no format handles it, by asking each Sniffer format about the content.
// It returns an UnsupportedFormat *Error if no format matches.
func (R *Registry) Detect(name, text string) (Format, error) {
	if name != "" {
		if f, err := R.ForName(name); err == nil {
			return f, nil
		}
	}
	R.mu.RLock()
	defer R.mu.RUnlock()
	for _, f := range R.formats {
		if s, ok := f.(Sniffer); ok && s.Sniff(text) {
			return f, nil
		}
	}
	if name != "" {
		return nil, NewError(UnsupportedFormat, "%q doesn't match any known format (known: %s)", name, strings.Join(R.names(), ", "))
	}
	return nil, NewError(UnsupportedFormat, "content doesn't match any known format (known: %s)", strings.Join(R.names(), ", "))
}

// Parse detects the format of text, using name if not empty, and parses it.
func (R *Registry) Parse(name, text string) (*Molecule, error) {
	f, err := R.Detect(name, text)
	if err != nil {
		return nil, errDecorate(err, "Registry.Parse")
	}
	mol, err := f.Parse(text)
	return mol, errDecorate(err, "Registry.Parse")
}

// Writer returns the first format that can handle name and can also write molecules.
func (R *Registry) Writer(name string) (Writer, error) {
	R.mu.RLock()
	defer R.mu.RUnlock()
	for _, f := range R.formats {
		if w, ok := f.(Writer); ok && f.CanHandle(name) {
			return w, nil
		}
	}
	return nil, NewError(UnsupportedFormat, "no writable format registered for %q", name)
}

// must be called with the lock held.
func (R *Registry) names() []string {
	ret := make([]string, 0, len(R.formats))
	for _, f := range R.formats {
		ret = append(ret, f.Name())
	}
	return ret
}

// Parse parses text with the DefaultRegistry. name is a file name or extension used
// to choose the format, if empty, the format is detected from the content.
func Parse(name, text string) (*Molecule, error) {
	return DefaultRegistry.Parse(name, text)
}

// newID calls f, or uuid.New if f is nil.
func newID(f func() uuid.UUID) uuid.UUID {
	if f == nil {
		return uuid.New()
	}
	return f()
}
