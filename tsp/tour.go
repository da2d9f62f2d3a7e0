// Package tsp - tour utilities on point sequences.
//
// Helpers:
//   - reverseSegment: in-place reversal of T[i..k] (the 2-opt primitive).
//   - rotate: cyclic shift so that T[off] becomes the first point.
//   - Canonical: rotate a tour to start at its lowest point, direction fixed.
//
// Design: no logging, no panics on user input; O(n) time, O(1) extra space
// unless a copy is returned.
package tsp

import "github.com/katalvlaran/somtsp/geom"

// reverseSegment reverses t[i..k] in place. Out-of-order indices are a no-op.
func reverseSegment(t geom.Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}

// rotate returns a copy of t starting at position off.
func rotate(t geom.Tour, off int) geom.Tour {
	var n = len(t)
	out := make(geom.Tour, n)
	if n == 0 {
		return out
	}
	off = ((off % n) + n) % n
	copy(out, t[off:])
	copy(out[n-off:], t[:off])
	return out
}

// Canonical returns a copy of t rotated to start at its lowest (Y, then X)
// point and oriented so that the second point precedes the last one in the
// same order. Two tours describing the same cycle have equal canonical forms.
func Canonical(t geom.Tour) geom.Tour {
	var n = len(t)
	if n == 0 {
		return geom.Tour{}
	}
	var (
		low = 0
		i   int
	)
	for i = 1; i < n; i++ {
		if less(t[i], t[low]) {
			low = i
		}
	}
	out := rotate(t, low)
	if n > 2 && less(out[n-1], out[1]) {
		reverseSegment(out, 1, n-1)
	}
	return out
}

func less(p, q geom.Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}
