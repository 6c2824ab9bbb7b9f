/*
 * session_test.go, part of molcore.
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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/molcore"
)

const waterXYZ = "3\nwater\nO 0 0 0\nH 0.96 0 0\nH -0.24 0.93 0\n"

func formaldehyde(Te *testing.T) *chem.Molecule {
	Te.Helper()
	atoms := []chem.Atom{
		chem.NewAtom("C", chem.Vec3{0, 0, 0}),
		chem.NewAtom("O", chem.Vec3{1.2, 0, 0}),
		chem.NewAtom("H", chem.Vec3{-0.55, 0.95, 0}),
		chem.NewAtom("H", chem.Vec3{-0.55, -0.95, 0}),
	}
	bonds := []chem.Bond{chem.NewBond(0, 1, 2), chem.NewBond(0, 2, 1), chem.NewBond(0, 3, 1)}
	mol, err := chem.NewMolecule(atoms, bonds)
	require.NoError(Te, err)
	return mol
}

func writeFile(Te *testing.T, dir, name, content string) string {
	Te.Helper()
	name = filepath.Join(dir, name)
	require.NoError(Te, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestSaveLoad(Te *testing.T) {
	mol := formaldehyde(Te)
	dir := Te.TempDir()
	for _, name := range []string{"s.json", "s.msgpack", "s.mpk", "s.json.zst", "S.MSGPACK.ZST"} {
		Te.Run(name, func(Te *testing.T) {
			name := filepath.Join(dir, name)
			require.NoError(Te, Save(name, mol))
			back, err := Load(name)
			require.NoError(Te, err)
			assert.Equal(Te, mol.ID(), back.ID())
			if diff := cmp.Diff(mol.Atoms(), back.Atoms()); diff != "" {
				Te.Errorf("atoms differ (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(mol.Bonds(), back.Bonds()); diff != "" {
				Te.Errorf("bonds differ (-want +got):\n%s", diff)
			}
		})
	}
	//no temporary files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(Te, err)
	assert.Len(Te, entries, 5)
}

func TestMarshalFormats(Te *testing.T) {
	mol := formaldehyde(Te)
	js, err := Marshal("a.json", mol)
	require.NoError(Te, err)
	assert.True(Te, bytes.HasPrefix(js, []byte(`{"id":"`)))
	mp, err := Marshal("a.mpk", mol)
	require.NoError(Te, err)
	assert.NotEqual(Te, js, mp)
	zst, err := Marshal("a.json.zst", mol)
	require.NoError(Te, err)
	assert.NotEqual(Te, js, zst)

	_, err = Marshal("a.xyz", mol)
	assert.ErrorIs(Te, err, chem.UnsupportedFormat)
	//a json session is not msgpack.
	_, err = Unmarshal("a.mpk", js)
	assert.ErrorIs(Te, err, chem.InvalidFormat)
	_, err = Unmarshal("a.json.zst", js)
	assert.ErrorIs(Te, err, chem.FileReadError)
}

func TestIsSessionFile(Te *testing.T) {
	for name, want := range map[string]bool{
		"a.json": true, "a.mpk": true, "a.msgpack.zst": true, "a.json.zstd": true, "A.JSON.ZSTD": true,
		"a.xyz": false, "a.json.gz": false, "a.zstd": false, "json": false,
	} {
		assert.Equal(Te, want, IsSessionFile(name), name)
	}
}

func TestLoadErrors(Te *testing.T) {
	dir := Te.TempDir()
	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(Te, err, chem.FileReadError)

	bad := writeFile(Te, dir, "bad.json", `{"atoms": [{"symbol": "C", "position": [0, 0, 0]}], "bonds": [{"atom1Index": 0, "atom2Index": 3, "order": 1}]}`)
	_, err = Load(bad)
	assert.ErrorIs(Te, err, chem.InvalidFormat)
	var e *chem.Error
	require.True(Te, errors.As(err, &e))
	assert.Equal(Te, bad, e.FileName())
}

func TestWorkspaceLoad(Te *testing.T) {
	dir := Te.TempDir()
	good := writeFile(Te, dir, "water.xyz", waterXYZ)
	bad := writeFile(Te, dir, "bad.xyz", "3\nComment\nC 0 0 0\nO 1 0 0\n")
	var logs bytes.Buffer
	W := NewWorkspace(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	assert.Nil(Te, W.Current())

	mol, err := W.Load(context.Background(), good)
	require.NoError(Te, err)
	assert.Same(Te, mol, W.Current())
	assert.Equal(Te, good, W.Source())
	assert.NoError(Te, W.LastError())

	_, err = W.Load(context.Background(), bad)
	require.Error(Te, err)
	assert.ErrorIs(Te, err, chem.InvalidFormat)
	assert.Contains(Te, err.Error(), "expected 3, found 2")
	//the failed load leaves the previous molecule untouched.
	assert.Same(Te, mol, W.Current())
	assert.Equal(Te, good, W.Source())
	assert.Equal(Te, err, W.LastError())
	assert.Contains(Te, logs.String(), "keeping the current molecule")

	_, err = W.Load(context.Background(), filepath.Join(dir, "missing.xyz"))
	assert.ErrorIs(Te, err, chem.FileReadError)
	_, err = W.Load(context.Background(), writeFile(Te, dir, "a.cif", "data_a\n"))
	assert.ErrorIs(Te, err, chem.UnsupportedFormat)
	assert.Same(Te, mol, W.Current())

	W.Clear()
	assert.Nil(Te, W.Current())
	assert.Equal(Te, "", W.Source())
	assert.NoError(Te, W.LastError())
}

func TestWorkspaceCancel(Te *testing.T) {
	dir := Te.TempDir()
	good := writeFile(Te, dir, "water.xyz", waterXYZ)
	W := NewWorkspace()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	release := make(chan struct{})
	defer close(release)
	_, err := W.run(ctx, good, func() (*chem.Molecule, error) {
		<-release
		return chem.FileRead(good)
	})
	assert.ErrorIs(Te, err, context.Canceled)
	assert.Nil(Te, W.Current())

	ctx, cancel2 := context.WithTimeout(context.Background(), time.Minute)
	defer cancel2()
	mol, err := W.Load(ctx, good)
	require.NoError(Te, err)
	assert.Equal(Te, 3, mol.Len())
}

func TestWorkspaceOverlappingLoads(Te *testing.T) {
	W := NewWorkspace()
	newer, err := chem.XYZParse(waterXYZ)
	require.NoError(Te, err)
	older := formaldehyde(Te)

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := W.run(context.Background(), "old.xyz", func() (*chem.Molecule, error) {
			close(started)
			<-release
			return older, nil
		})
		done <- err
	}()
	<-started
	got, err := W.run(context.Background(), "new.xyz", func() (*chem.Molecule, error) { return newer, nil })
	require.NoError(Te, err)
	assert.Same(Te, newer, got)
	close(release)
	assert.ErrorIs(Te, <-done, ErrSuperseded)
	assert.Same(Te, newer, W.Current())
	assert.Equal(Te, "new.xyz", W.Source())
	assert.NoError(Te, W.LastError())

	//a Clear also wins over a load started before it.
	release = make(chan struct{})
	started = make(chan struct{})
	go func() {
		_, err := W.run(context.Background(), "old.xyz", func() (*chem.Molecule, error) {
			close(started)
			<-release
			return older, nil
		})
		done <- err
	}()
	<-started
	W.Clear()
	close(release)
	assert.ErrorIs(Te, <-done, ErrSuperseded)
	assert.Nil(Te, W.Current())
}

func TestWorkspaceSaveRestore(Te *testing.T) {
	dir := Te.TempDir()
	W := NewWorkspace()
	assert.ErrorIs(Te, W.Save(filepath.Join(dir, "s.json")), ErrEmpty)
	mol, err := W.Load(context.Background(), writeFile(Te, dir, "water.xyz", waterXYZ))
	require.NoError(Te, err)
	session := filepath.Join(dir, "s.msgpack.zst")
	require.NoError(Te, W.Save(session))

	W2 := NewWorkspace()
	back, err := W2.Restore(context.Background(), session)
	require.NoError(Te, err)
	assert.Equal(Te, mol.ID(), back.ID())
	assert.Equal(Te, mol.Atoms(), W2.Current().Atoms())
	assert.Equal(Te, session, W2.Source())

	_, err = W2.Restore(context.Background(), writeFile(Te, dir, "broken.json", "{"))
	assert.ErrorIs(Te, err, chem.InvalidFormat)
	assert.Same(Te, back, W2.Current())
}

func TestWorkspaceRegistry(Te *testing.T) {
	dir := Te.TempDir()
	name := writeFile(Te, dir, "water.xyz", waterXYZ)
	W := NewWorkspace(WithRegistry(chem.NewRegistry(&chem.PDB{})))
	_, err := W.Load(context.Background(), name)
	assert.ErrorIs(Te, err, chem.UnsupportedFormat)
}

func TestLoadAll(Te *testing.T) {
	dir := Te.TempDir()
	var names []string
	for i := 1; i <= 6; i++ {
		text := strings.Repeat("He 0 0 0\n", i)
		names = append(names, writeFile(Te, dir, string(rune('a'+i))+".xyz", strings.Join([]string{string(rune('0' + i)), "helium"}, "\n")+"\n"+text))
	}
	W := NewWorkspace()
	mols, err := W.LoadAll(context.Background(), names)
	require.NoError(Te, err)
	require.Len(Te, mols, 6)
	for i, m := range mols {
		assert.Equal(Te, i+1, m.Len())
	}
	assert.Nil(Te, W.Current(), "LoadAll must not change the current molecule")

	names = append(names, writeFile(Te, dir, "bad.xyz", "2\nc\nHe 0 0 0\n"))
	_, err = W.LoadAll(context.Background(), names)
	assert.ErrorIs(Te, err, chem.InvalidFormat)

	mols, err = W.LoadAll(context.Background(), nil)
	require.NoError(Te, err)
	assert.Empty(Te, mols)
}
