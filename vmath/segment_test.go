package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name           string
		a1, a2, b1, b2 Vec2
		want           bool
	}{
		{"crossing perpendicular", V2(0, 0), V2(2, 0), V2(1, 1), V2(1, -1), true},
		{"colinear disjoint diagonal", V2(0, 0), V2(1, 1), V2(2, 2), V2(3, 3), false},
		{"crossing diagonals", V2(0, 0), V2(4, 4), V2(4, 0), V2(0, 4), true},
		{"touching at shared endpoint", V2(1, 1), V2(2, 2), V2(2, 2), V2(4, 2), true},
		{"identical segments", V2(1, 1), V2(3, 3), V2(1, 1), V2(3, 3), true},
		{"colinear overlapping horizontal", V2(1, 1), V2(4, 1), V2(2, 1), V2(5, 1), true},
		{"parallel horizontal", V2(0, 0), V2(3, 0), V2(0, 1), V2(3, 1), false},
		{"colinear touching at endpoint", V2(0, 0), V2(3, 0), V2(3, 0), V2(6, 0), true},
		{"colinear vertical touching", V2(2, 1), V2(2, 4), V2(2, 4), V2(2, 6), true},
		{"colinear disjoint horizontal", V2(0, 0), V2(2, 0), V2(3, 0), V2(5, 0), false},
		{"colinear overlapping offset", V2(1, 2), V2(5, 2), V2(3, 2), V2(7, 2), true},
		{"endpoint meets endpoint angled", V2(0, 0), V2(2, 0), V2(2, 0), V2(3, 1), true},
		{"colinear diagonal overlapping", V2(0, 0), V2(5, 5), V2(3, 3), V2(8, 8), true},
		{"degenerate point on segment", V2(1, 1), V2(1, 1), V2(0, 0), V2(2, 2), true},
		{"degenerate point off segment", V2(5, 5), V2(5, 5), V2(0, 0), V2(2, 2), false},
		{"colinear vertical overlapping", V2(2, 0), V2(2, 5), V2(2, 2), V2(2, 7), true},
		{"disjoint non-parallel", V2(0, 0), V2(2, 2), V2(3, 1), V2(5, 2), false},
		{"crossing diagonals negative coords", V2(-1, 3), V2(3, -1), V2(-1, -1), V2(3, 3), true},
		{"vertical beside horizontal", V2(0, 0), V2(2, 0), V2(3, 1), V2(3, -1), false},
		{"vertical through horizontal", V2(0, 0), V2(2, 0), V2(1, 1), V2(1, -1), true},
		{"diagonal through triangle side", V2(0, 3), V2(3, 0), V2(1, 0), V2(2, 2), true},
		{"fractional crossing", V2(10.5, 10.5), V2(20.5, 20.5), V2(20.0, 15.0), V2(15.0, 20.0), true},
		{"fractional near-parallel disjoint", V2(14.3, 16.8), V2(26.6, 31.2), V2(27.7, 33.3), V2(50.0, 66.1), false},
		{"fractional perpendicular crossing", V2(10.0, 11.0), V2(30.0, 11.0), V2(15.5, 9.5), V2(15.5, 25.0), true},
		{"fractional diagonal crossing", V2(12.2, 33.4), V2(22.2, 13.4), V2(11.0, 11.0), V2(33.0, 33.0), true},
		{"fractional colinear disjoint", V2(10.0, 10.0), V2(15.0, 15.0), V2(16.0, 17.0), V2(22.0, 23.0), false},
		{"fractional endpoint on segment", V2(20.5, 20.5), V2(30.5, 30.5), V2(25.5, 25.5), V2(48.5, 25.5), true},
		{"fractional disjoint short", V2(23.7, 28.9), V2(37.4, 22.1), V2(25.5, 20.0), V2(26.6, 12.0), false},
		{"fractional disjoint steep", V2(33.3, 11.1), V2(22.2, 39.9), V2(25.5, 25.5), V2(30.0, 11.2), false},
		{"fractional colinear overlapping", V2(11.1, 22.2), V2(33.3, 22.2), V2(22.2, 22.2), V2(44.4, 22.2), true},
		{"fractional crossing steep", V2(18.8, 15.5), V2(32.2, 27.7), V2(20.0, 12.0), V2(24.0, 30.0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SegmentsIntersect(tc.a1, tc.a2, tc.b1, tc.b2))
			// Argument order must not matter
			require.Equal(t, tc.want, SegmentsIntersect(tc.b1, tc.b2, tc.a1, tc.a2))
		})
	}
}

func TestReflectAcrossBorder(t *testing.T) {
	cases := []struct {
		name            string
		lastPos, newPos Vec2
		b1, b2          Vec2
		v               Vec2
		want            Vec2
	}{
		{"vertical drop onto horizontal border", V2(2, 1), V2(2, -1), V2(-100, 0), V2(100, 0), V2(0, -2), V2(0, 2)},
		{"diagonal onto raised horizontal border", V2(5, 6), V2(7, 4), V2(-50, 5), V2(50, 5), V2(2, -2), V2(2, 2)},
		{"horizontal onto vertical border", V2(-1, 5), V2(1, 5), V2(0, 0), V2(0, 10), V2(2, 0), V2(-2, 0)},
		{"diagonal onto vertical border", V2(9, 7), V2(11, 9), V2(10, 0), V2(10, 20), V2(2, 2), V2(-2, 2)},
		{"perpendicular onto diagonal border", V2(7, 5), V2(5, 7), V2(0, 0), V2(10, 10), V2(-2, 2), V2(2, -2)},
		{"motion along diagonal border", V2(2, 2), V2(4, 4), V2(0, 0), V2(10, 10), V2(2, 2), V2(2, 2)},
		{"perpendicular onto falling diagonal", V2(2, -6), V2(7, -1), V2(0, 0), V2(10, -10), V2(5, 5), V2(-5, -5)},
		{"shallow onto horizontal border", V2(7, 11), V2(10, 9), V2(0, 10), V2(20, 10), V2(3, -2), V2(3, 2)},
		{"shallow onto vertical border", V2(4, 2), V2(6, 3), V2(5, 0), V2(5, 10), V2(2, 1), V2(-2, 1)},
		{"zero motion zero velocity", V2(3, 4), V2(3, 4), V2(2, 2), V2(4, 6), V2(0, 0), V2(0, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ReflectAcrossBorder(tc.lastPos, tc.newPos, tc.b1, tc.b2, tc.v)
			assert.InDelta(t, tc.want.X, got.X, 1e-3)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-3)
			// Reflection preserves speed
			assert.InDelta(t, tc.v.Magnitude(), got.Magnitude(), 1e-3)
		})
	}
}
