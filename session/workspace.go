/*
 * workspace.go, part of molcore.
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
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	chem "github.com/rmera/molcore"
)

// Workspace holds the molecule a program is working on. Loads run on their own
// goroutine and only replace the current molecule when they succeed, so a failed
// load never clears or corrupts the molecule already loaded.
// A Workspace is safe for concurrent use.
type Workspace struct {
	mu       sync.RWMutex
	current  *chem.Molecule
	source   string
	lastErr  error
	registry *chem.Registry
	logger   *slog.Logger
	gen      uint64 //incremented by each Load, Restore and Clear.
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithRegistry sets the registry used to read structure files. The default is
// chem.DefaultRegistry.
func WithRegistry(r *chem.Registry) Option {
	return func(W *Workspace) { W.registry = r }
}

// WithLogger sets the logger of the workspace. By default, the logger carried
// by the context of each call is used, see chem.LoggerFrom.
func WithLogger(l *slog.Logger) Option {
	return func(W *Workspace) { W.logger = l }
}

// NewWorkspace returns an empty Workspace.
func NewWorkspace(opts ...Option) *Workspace {
	W := &Workspace{registry: chem.DefaultRegistry}
	for _, o := range opts {
		o(W)
	}
	return W
}

func (W *Workspace) log(ctx context.Context) *slog.Logger {
	if W.logger != nil {
		return W.logger
	}
	return chem.LoggerFrom(ctx)
}

// Current returns the current molecule, or nil if there is none.
func (W *Workspace) Current() *chem.Molecule {
	W.mu.RLock()
	defer W.mu.RUnlock()
	return W.current
}

// Source returns the name of the file the current molecule was read from.
func (W *Workspace) Source() string {
	W.mu.RLock()
	defer W.mu.RUnlock()
	return W.source
}

// LastError returns the error of the last Load or Restore, or nil if it succeeded.
func (W *Workspace) LastError() error {
	W.mu.RLock()
	defer W.mu.RUnlock()
	return W.lastErr
}

// Clear removes the current molecule.
func (W *Workspace) Clear() {
	W.mu.Lock()
	defer W.mu.Unlock()
	W.gen++
	W.current = nil
	W.source = ""
	W.lastErr = nil
}

type result struct {
	mol *chem.Molecule
	err error
}

// ErrSuperseded is returned by a Load or Restore whose result was discarded
// because a later Load, Restore or Clear was started before it finished.
var ErrSuperseded = errors.New("session: load superseded by a later one")

// run calls load on a new goroutine and, if it succeeds before ctx is done and no
// later load or Clear was started meanwhile, makes its molecule the current one.
func (W *Workspace) run(ctx context.Context, name string, load func() (*chem.Molecule, error)) (*chem.Molecule, error) {
	l := W.log(ctx).With("file", name)
	W.mu.Lock()
	W.gen++
	gen := W.gen
	W.mu.Unlock()
	ch := make(chan result, 1)
	go func() {
		mol, err := load()
		ch <- result{mol, err}
	}()
	var res result
	select {
	case <-ctx.Done():
		res.err = ctx.Err()
	case res = <-ch:
	}
	W.mu.Lock()
	defer W.mu.Unlock()
	if gen != W.gen {
		if res.err == nil {
			res.err = ErrSuperseded
		}
		l.Info("load superseded, result discarded", "error", res.err)
		return nil, res.err
	}
	W.lastErr = res.err
	if res.err != nil {
		l.Warn("load failed, keeping the current molecule", "error", res.err)
		return nil, res.err
	}
	W.current = res.mol
	W.source = name
	l.Info("molecule loaded", "atoms", res.mol.Len(), "bonds", res.mol.NBonds(), "formula", chem.Formula(res.mol))
	return res.mol, nil
}

// Load reads the structure file name and, if that succeeds, makes it the
// current molecule, which is also returned. If ctx is done before the file is
// read, Load returns ctx.Err() and the result of the read is discarded.
// When loads overlap, only the one started last can change the workspace,
// the earlier ones return ErrSuperseded if they succeed.
func (W *Workspace) Load(ctx context.Context, name string) (*chem.Molecule, error) {
	return W.run(ctx, name, func() (*chem.Molecule, error) {
		return W.registry.FileRead(name)
	})
}

// Restore reads the session file name, written by Save, and, if that
// succeeds, makes it the current molecule. Identities are preserved.
func (W *Workspace) Restore(ctx context.Context, name string) (*chem.Molecule, error) {
	return W.run(ctx, name, func() (*chem.Molecule, error) {
		return Load(name)
	})
}

// ErrEmpty is returned when saving a Workspace without a molecule.
var ErrEmpty = errors.New("session: no molecule loaded")

// Save writes the current molecule to the session file name. See the Save function.
func (W *Workspace) Save(name string) error {
	mol := W.Current()
	if mol == nil {
		return ErrEmpty
	}
	return Save(name, mol)
}

// LoadAll reads all the structure files in names, in parallel, and returns the
// molecules in the same order. It doesn't change the current molecule. On the
// first failure, the remaining reads are abandoned and the error is returned.
func (W *Workspace) LoadAll(ctx context.Context, names []string) ([]*chem.Molecule, error) {
	mols := make([]*chem.Molecule, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mol, err := W.registry.FileRead(name)
			if err != nil {
				return err
			}
			mols[i] = mol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		W.log(ctx).Warn("parallel load failed", "files", len(names), "error", err)
		return nil, err
	}
	return mols, nil
}
