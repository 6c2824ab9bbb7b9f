/*
 * files.go, part of molcore.
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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// decompressor returns a function that decompresses the data of the named file, according to
// its extension, or nil if the file is not compressed.
func decompressor(name string) func(io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) }
	case ".zst", ".zstd":
		return func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		}
	}
	return nil
}

// ReadText reads all the content of r, decompressing it if name has the gz, zst or zstd
// extension. The content must be valid UTF-8. Any failure returns a FileReadError *Error.
func ReadText(r io.Reader, name string) (string, error) {
	if dec := decompressor(name); dec != nil {
		d, err := dec(r)
		if err != nil {
			return "", WrapError(FileReadError, err, "couldn't decompress").WithFileName(name)
		}
		defer d.Close()
		r = d
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", WrapError(FileReadError, err, "couldn't read").WithFileName(name)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) //UTF-8 BOM
	if !utf8.Valid(data) {
		return "", NewError(FileReadError, "content is not valid UTF-8 text").WithFileName(name)
	}
	return string(data), nil
}

// Read reads a molecule from r. name is the name of the file the data comes
// from, and is used to choose the format and the decompression, if any. If name
// doesn't identify a format, the format is detected from the content.
func (R *Registry) Read(r io.Reader, name string) (*Molecule, error) {
	text, err := ReadText(r, name)
	if err != nil {
		return nil, errDecorate(err, "Registry.Read")
	}
	l := Logger().With("file", name)
	mol, err := R.Parse(filepath.Base(name), text)
	if err != nil {
		l.Debug("parse failed", "error", err)
		return nil, errDecorate(errWithFile(err, name), "Registry.Read")
	}
	l.Debug("molecule read", "atoms", mol.Len(), "bonds", mol.NBonds())
	return mol, nil
}

// FileRead reads the molecule in the file called name. Compressed files (gz, zst) are
// decompressed, and the format is chosen from the extension that precedes the
// compression one, or from the content. Errors are *Error with the file name set.
func (R *Registry) FileRead(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, WrapError(FileReadError, err, "couldn't open file").WithFileName(name)
	}
	defer f.Close()
	mol, err := R.Read(f, name)
	return mol, errDecorate(err, "Registry.FileRead")
}

// Read reads a molecule from r with the DefaultRegistry. See Registry.Read.
func Read(r io.Reader, name string) (*Molecule, error) {
	return DefaultRegistry.Read(r, name)
}

// FileRead reads the molecule in the file called name with the DefaultRegistry.
// See Registry.FileRead.
func FileRead(name string) (*Molecule, error) {
	return DefaultRegistry.FileRead(name)
}

// FileWrite writes mol to the file called name, in the format given by its extension.
// The file is compressed if the name ends in gz, zst or zstd.
func FileWrite(name string, mol *Molecule) error {
	w, err := DefaultRegistry.Writer(filepath.Base(name))
	if err != nil {
		return errDecorate(errWithFile(err, name), "FileWrite")
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("FileWrite: %w", err)
	}
	var out io.Writer = f
	var comp io.WriteCloser
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		comp = gzip.NewWriter(f)
	case ".zst", ".zstd":
		comp, err = zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("FileWrite: %w", err)
		}
	}
	if comp != nil {
		out = comp
	}
	err = w.Write(out, mol)
	if comp != nil {
		if cerr := comp.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("FileWrite: %w", err)
	}
	return nil
}
