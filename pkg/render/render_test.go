package render

import (
	"image/color"
	"testing"

	"go-lane-defense/pkg/geom"
)

func TestRecorderCounts(t *testing.T) {
	var r Recorder
	r.Clear(geom.Rect{W: 900, H: 600})
	r.FillRect(geom.Rect{W: 10, H: 10}, color.Black)
	r.FillRect(geom.Rect{W: 10, H: 10}, color.Black)
	r.Text("Score: 1", 35, 70, 15, AlignLeft, color.White)

	if got := r.Count(OpFillRect); got != 2 {
		t.Errorf("Count(fill_rect) = %d, want 2", got)
	}
	if !r.HasText("Score: 1") {
		t.Error("HasText(Score: 1) = false")
	}
	r.Reset()
	if len(r.Calls) != 0 {
		t.Errorf("len(Calls) after Reset = %d, want 0", len(r.Calls))
	}
}

func TestAnchorX(t *testing.T) {
	tests := []struct {
		align Align
		want  float64
	}{
		{AlignLeft, 100},
		{AlignCenter, 80},
		{AlignRight, 60},
	}
	for _, tt := range tests {
		if got := AnchorX(100, 40, tt.align); got != tt.want {
			t.Errorf("AnchorX(align=%d) = %v, want %v", tt.align, got, tt.want)
		}
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	want := color.RGBA{100, 50, 25, 255}
	if got != want {
		t.Errorf("DarkenColor = %v, want %v", got, want)
	}
}

func TestToRGBA(t *testing.T) {
	if got := ToRGBA(color.White); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("ToRGBA(White) = %v", got)
	}
}
