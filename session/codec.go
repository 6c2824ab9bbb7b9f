/*
 * codec.go, part of molcore.
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

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	chem "github.com/rmera/molcore"
	"github.com/rmera/molcore/chemjson"
)

// codec encodes and decodes the persisted form of a molecule.
type codec struct {
	name      string
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var codecs = map[string]codec{
	".json":    {"json", json.Marshal, json.Unmarshal},
	".msgpack": {"msgpack", msgpack.Marshal, msgpack.Unmarshal},
	".mpk":     {"msgpack", msgpack.Marshal, msgpack.Unmarshal},
}

// codecFor returns the codec for the session file name, and whether the
// file is zstd-compressed.
func codecFor(name string) (codec, bool, error) {
	n := strings.ToLower(name)
	compressed := false
	for _, z := range []string{".zst", ".zstd"} {
		if strings.HasSuffix(n, z) {
			n = strings.TrimSuffix(n, z)
			compressed = true
			break
		}
	}
	c, ok := codecs[filepath.Ext(n)]
	if !ok {
		return c, false, chem.NewError(chem.UnsupportedFormat, "session files must end in .json, .msgpack or .mpk, optionally followed by .zst or .zstd").WithFileName(name)
	}
	return c, compressed, nil
}

// IsSessionFile reports whether name has the extension of a session file, so
// Save and Load can handle it.
func IsSessionFile(name string) bool {
	_, _, err := codecFor(name)
	return err == nil
}

// Marshal encodes mol in the session format given by name, which is
// only used for its extension.
func Marshal(name string, mol *chem.Molecule) ([]byte, error) {
	c, compressed, err := codecFor(name)
	if err != nil {
		return nil, err
	}
	data, err := c.marshal(chemjson.FromMolecule(mol))
	if err != nil {
		return nil, fmt.Errorf("session.Marshal: %s: %w", c.name, err)
	}
	if compressed {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("session.Marshal: %w", err)
		}
		defer enc.Close()
		data = enc.EncodeAll(data, nil)
	}
	return data, nil
}

// Unmarshal decodes a molecule in the session format given by name. Identities
// absent from the data are generated with newID, if given, or randomly.
func Unmarshal(name string, data []byte, newID ...func() uuid.UUID) (*chem.Molecule, error) {
	c, compressed, err := codecFor(name)
	if err != nil {
		return nil, err
	}
	if compressed {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("session.Unmarshal: %w", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, chem.WrapError(chem.FileReadError, err, "couldn't decompress session").WithFileName(name)
		}
	}
	rec := new(chemjson.Molecule)
	if err := c.unmarshal(data, rec); err != nil {
		return nil, chem.WrapError(chem.InvalidFormat, err, "malformed %s session", c.name).WithFileName(name)
	}
	mol, err := rec.ToMolecule(newID...)
	if err != nil {
		var e *chem.Error
		if errors.As(err, &e) {
			e.WithFileName(name)
		}
		return nil, err
	}
	return mol, nil
}

// Save writes mol to the session file name. The format is chosen by the extension:
// .json or .msgpack (.mpk), optionally followed by .zst for zstd compression.
// The file is replaced atomically, so a failed save leaves the previous one intact.
func Save(name string, mol *chem.Molecule) error {
	data, err := Marshal(name, mol)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("session.Save: %w", err)
	}
	defer os.Remove(tmp.Name()) //no-op after a successful rename
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("session.Save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session.Save: %w", err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("session.Save: %w", err)
	}
	return nil
}

// Load reads the molecule in the session file name. See Save for the formats, and
// Unmarshal for newID. Errors are *chem.Error with the file name set.
func Load(name string, newID ...func() uuid.UUID) (*chem.Molecule, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, chem.WrapError(chem.FileReadError, err, "couldn't read session").WithFileName(name)
	}
	return Unmarshal(name, data, newID...)
}
