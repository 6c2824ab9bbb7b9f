/*
 * handy.go, part of molcore.
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
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Formula returns the molecular formula of mol in the Hill system: carbon first,
// hydrogen second and the rest in alphabetical order. If there is no carbon, all
// the elements go in alphabetical order. Symbols are normalized, so "CL" and "Cl"
// count as the same element.
func Formula(mol Atomer) string {
	count := make(map[string]int)
	for i := 0; i < mol.Len(); i++ {
		count[NormalSymbol(mol.Atom(i).Symbol)]++
	}
	symbols := make([]string, 0, len(count))
	for s := range count {
		symbols = append(symbols, s)
	}
	_, hasC := count["C"]
	sort.Slice(symbols, func(i, j int) bool {
		if hasC {
			ri, rj := hillRank(symbols[i]), hillRank(symbols[j])
			if ri != rj {
				return ri < rj
			}
		}
		return symbols[i] < symbols[j]
	})
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
		if n := count[s]; n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

func hillRank(s string) int {
	switch s {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}

// compression suffixes that are stripped before matching a format.
var compressedExt = []string{".gz", ".zst", ".zstd"}

// extension returns the lowercase extension of name, including the leading dot,
// after removing a compression suffix. A bare extension without the dot, such
// as "xyz", is returned as ".xyz".
func extension(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range compressedExt {
		if strings.HasSuffix(name, c) && len(name) > len(c) {
			name = strings.TrimSuffix(name, c)
			break
		}
	}
	ext := filepath.Ext(name)
	if ext == "" && name != "" && !strings.ContainsAny(name, `/\`) {
		return "." + name
	}
	return ext
}

func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
