/*
 * root.go, part of molcore.
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

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	chem "github.com/rmera/molcore"
	"github.com/rmera/molcore/session"
)

var rootCmd = &cobra.Command{
	Use:   "molinfo",
	Short: "Molecular structure file tool",
	Long: "molinfo reads XYZ, MDL molfile/SDF and PDB files, optionally compressed with gzip or zstd,\n" +
		"prints information about them, converts them between formats and plots their distances.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolP("assign-bonds", "b", false, "Assign bonds from distances to molecules without bonds")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("assign_bonds", rootCmd.PersistentFlags().Lookup("assign-bonds"))
}

func initConfig() {
	viper.SetEnvPrefix("MOLINFO")
	viper.AutomaticEnv()
}

// setupLogging sends the library logs to the standard error of the command.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	chem.SetLogger(logger)
	cmd.SetContext(chem.WithLogger(cmd.Context(), logger))
	return nil
}

// loadAll reads the structure files in names, assigning bonds if requested.
func loadAll(cmd *cobra.Command, names []string) ([]*chem.Molecule, error) {
	W := session.NewWorkspace()
	mols, err := W.LoadAll(cmd.Context(), names)
	if err != nil {
		return nil, err
	}
	if !viper.GetBool("assign_bonds") {
		return mols, nil
	}
	for i, mol := range mols {
		if mol.NBonds() > 0 {
			continue
		}
		if mols[i], err = chem.AssignBonds(mol); err != nil {
			return nil, err
		}
		chem.LoggerFrom(cmd.Context()).Debug("bonds assigned", "file", names[i], "bonds", mols[i].NBonds())
	}
	return mols, nil
}

// isSession reports whether name is a session file rather than a structure file.
func isSession(name string) bool {
	return session.IsSessionFile(name)
}
