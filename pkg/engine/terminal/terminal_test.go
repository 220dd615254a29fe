package terminal

import (
	"errors"
	"testing"
)

func fixed(cols, rows int, err error) Measurer {
	return func() (int, int, error) { return cols, rows, err }
}

func TestMeasure_FallsBack(t *testing.T) {
	tests := []struct {
		name string
		m    Measurer
		want Size
	}{
		{"terminal", fixed(120, 40, nil), Size{Cols: 120, Rows: 40}},
		{"not a terminal", fixed(0, 0, errors.New("inappropriate ioctl")), Size{Cols: FallbackCols, Rows: FallbackRows}},
		{"empty size", fixed(0, 40, nil), Size{Cols: FallbackCols, Rows: FallbackRows}},
	}
	for _, tt := range tests {
		if got := Measure(tt.m); got != tt.want {
			t.Errorf("%s: Measure() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestSize_Viewport(t *testing.T) {
	tests := []struct {
		size               Size
		wantRows, wantCols int
	}{
		{Size{Cols: 80, Rows: 24}, 9, 39},
		{Size{Cols: 120, Rows: 50}, 35, 59},
		{Size{Cols: 10, Rows: 10}, 7, 9}, // clamped to the minimum
	}
	for _, tt := range tests {
		rows, cols := tt.size.Viewport(2, 15, 7, 9)
		if rows != tt.wantRows || cols != tt.wantCols {
			t.Errorf("%+v.Viewport() = %dx%d, want %dx%d", tt.size, rows, cols, tt.wantRows, tt.wantCols)
		}
	}
}
