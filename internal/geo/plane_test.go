package geo

import "testing"

func TestDistance(t *testing.T) {
	if got := Distance(Point{0, 0}, Point{3, 4}); got != 5 {
		t.Fatalf("Distance = %v, want 5", got)
	}
	if got := Distance(Point{10, 20}, Point{10, 20}); got != 0 {
		t.Fatalf("zero distance expected, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		in, want Point
	}{
		{Point{-5, 300}, Point{0, 300}},
		{Point{1005, 700}, Point{1000, 600}},
		{Point{500, -0.1}, Point{500, 0}},
		{Point{250, 320}, Point{250, 320}},
	}
	for _, c := range cases {
		if got := CityBounds.Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestContains_Boundary(t *testing.T) {
	if !CityBounds.Contains(Point{1000, 600}) || !CityBounds.Contains(Point{0, 0}) {
		t.Fatalf("edges should be inside")
	}
	if CityBounds.Contains(Point{150, 750}) {
		t.Fatalf("point below the map should be outside")
	}
}
