package metrics

import (
	"math"
	"reflect"
	"testing"
)

func TestShapeSeries(t *testing.T) {
	input := []CategoryValue{
		{Name: "lazer", Value: 25},
		{Name: "casa", Value: 75.004},
		{Name: "vazio", Value: 0},
	}

	got := ShapeSeries(input)

	want := ChartSeries{
		Entries: []SeriesEntry{
			{Name: "casa", Value: 75, Percentage: 75},
			{Name: "lazer", Value: 25, Percentage: 25},
			{Name: "vazio", Value: 0, Percentage: 0},
		},
		Total: 100,
		Empty: false,
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShapeSeries() = %+v, want %+v", got, want)
	}

	if input[0].Name != "lazer" || input[1].Value != 75.004 {
		t.Error("ShapeSeries modified its input")
	}
}

func TestShapeSeriesIsIdempotent(t *testing.T) {
	input := []CategoryValue{
		{Name: "a", Value: 10.555},
		{Name: "b", Value: 33.333},
		{Name: "c", Value: 33.333},
	}

	first := ShapeSeries(input)
	second := ShapeSeries(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("ShapeSeries() not idempotent: %+v vs %+v", first, second)
	}

	if first.Entries[0].Name != "b" || first.Entries[1].Name != "c" {
		t.Errorf("equal values lost their order: %+v", first.Entries)
	}
}

func TestShapeSeriesEmpty(t *testing.T) {
	for _, input := range [][]CategoryValue{nil, {}} {
		got := ShapeSeries(input)
		if !got.Empty || got.Total != 0 || len(got.Entries) != 0 {
			t.Errorf("ShapeSeries(%v) = %+v, want empty state", input, got)
		}
		if got.Entries == nil {
			t.Error("ShapeSeries() entries = nil, want empty slice")
		}
	}
}

func TestShapeSeriesZeroTotal(t *testing.T) {
	got := ShapeSeries([]CategoryValue{{Name: "a", Value: 0}, {Name: "b", Value: 0}})

	if got.Empty {
		t.Error("Empty = true with entries present")
	}
	for _, e := range got.Entries {
		if e.Percentage != 0 {
			t.Errorf("%s percentage = %v, want 0", e.Name, e.Percentage)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1},
		{1.006, 1.01},
		{-2.349, -2.35},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestShapeTrendRoundsEveryField(t *testing.T) {
	got := ShapeTrend([]MonthTrend{{Month: "2025-01", Income: 10.004, Expenses: 3.336, Tithing: 1.001, Net: 5.667}})

	want := []MonthTrend{{Month: "2025-01", Income: 10, Expenses: 3.34, Tithing: 1, Net: 5.67}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShapeTrend() = %+v, want %+v", got, want)
	}
}
