package raster

import (
	"testing"

	"github.com/gogpu/pixed"
)

func TestNewDash(t *testing.T) {
	if d := NewDash(); d != nil {
		t.Errorf("NewDash() = %v, want nil", d)
	}
	if d := NewDash(0, 0); d != nil {
		t.Errorf("NewDash(0, 0) = %v, want nil", d)
	}
	d := NewDash(5, -3)
	if d.Array[1] != 3 {
		t.Errorf("negative length = %v, want 3", d.Array[1])
	}
	if got := NewDash(5).PatternLength(); got != 10 {
		t.Errorf("PatternLength() = %v, want 10", got)
	}
}

func TestDashNormalizedOffset(t *testing.T) {
	tests := []struct {
		offset, want float64
	}{
		{0, 0},
		{3, 3},
		{13, 3},
		{-3, 7},
	}
	for _, tt := range tests {
		d := NewDash(5, 5).WithOffset(tt.offset)
		if got := d.NormalizedOffset(); got != tt.want {
			t.Errorf("NormalizedOffset(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestDashNilSafe(t *testing.T) {
	var d *Dash
	if d.IsDashed() {
		t.Error("nil dash reports dashed")
	}
	if d.WithOffset(3) != nil {
		t.Error("WithOffset on nil dash != nil")
	}
}

func TestDashSplit(t *testing.T) {
	pts := []pixed.PointF{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 4}}
	pieces := NewDash(3, 1).split(pts)

	// Path length 10 with a 4-unit cycle: on [0,3], [4,7], [8,10].
	if len(pieces) != 3 {
		t.Fatalf("split() = %d pieces, want 3", len(pieces))
	}
	// The second dash turns the corner.
	if got := len(pieces[1]); got != 3 {
		t.Errorf("corner dash has %d points, want 3", got)
	}
	last := pieces[2][len(pieces[2])-1]
	if last != (pixed.PointF{X: 6, Y: 4}) {
		t.Errorf("last point = %v, want (6,4)", last)
	}
}

func TestDashSplitOffset(t *testing.T) {
	pts := []pixed.PointF{{X: 0, Y: 0}, {X: 10, Y: 0}}
	pieces := NewDash(2, 2).WithOffset(2).split(pts)
	// Starts in a gap: on [2,4] and [6,8].
	if len(pieces) < 2 || pieces[0][0].X != 2 {
		t.Fatalf("split() = %v, want first dash at x=2", pieces)
	}
}
