/*
 * plotutils.go, part of molcore.
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

package chemplot

import (
	"image/color"
	"math"
)

// Some internal convenience functions.

// iHVS2RGB takes hue (0-360), v and s (0-1), returns r,g,b (0-255).
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

// colors returns the color number key of a set of steps colors, going
// from red to violet, with some of the greens skipped.
func colors(key, steps int) color.RGBA {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	r, g, b := iHVS2RGB(h, 1.0, 1.0)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
