package motion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

func TestRotateAroundPivotIdentity(t *testing.T) {
	pivots := []mgl32.Vec3{{0, 0, 0}, {1, 2, 3}, {-4.5, 0.25, 100}}
	for _, p := range pivots {
		for deg := float32(-720); deg <= 720; deg += 15 {
			if got := RotateAroundPivot(p, p, deg); got != p {
				t.Errorf("RotateAroundPivot(%v, %v, %v) = %v, want %v", p, p, deg, got, p)
			}
		}
	}
}

func TestRotateAroundPivot(t *testing.T) {
	tests := []struct {
		name    string
		point   mgl32.Vec3
		pivot   mgl32.Vec3
		degrees float32
		want    mgl32.Vec3
	}{
		{"quarter turn forward to right", mgl32.Vec3{0, 0, -1}, mgl32.Vec3{}, 90, mgl32.Vec3{1, 0, 0}},
		{"half turn", mgl32.Vec3{0, 0, -1}, mgl32.Vec3{}, 180, mgl32.Vec3{0, 0, 1}},
		{"keeps height", mgl32.Vec3{0, 7, -1}, mgl32.Vec3{0, 2, 0}, 270, mgl32.Vec3{-1, 7, 0}},
		{"offset pivot", mgl32.Vec3{5, 0, 4}, mgl32.Vec3{5, 0, 5}, 90, mgl32.Vec3{6, 0, 5}},
		{"wraps past 360", mgl32.Vec3{0, 0, -1}, mgl32.Vec3{}, 450, mgl32.Vec3{1, 0, 0}},
		{"negative is counterclockwise", mgl32.Vec3{0, 0, -1}, mgl32.Vec3{}, -90, mgl32.Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateAroundPivot(tt.point, tt.pivot, tt.degrees)
			if !vecNear(got, tt.want, 1e-5) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got.Y() != tt.point.Y() {
				t.Errorf("Y changed from %v to %v", tt.point.Y(), got.Y())
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{180, 180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{540, 180},
		{-540, -180},
		{725, 5},
		{-3605, -5},
		{45.5, 45.5},
	}

	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.want {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAngleRangeAndCongruence(t *testing.T) {
	for a := float32(-5000); a <= 5000; a += 7.25 {
		n := NormalizeAngle(a)
		if n < -180 || n > 180 {
			t.Fatalf("NormalizeAngle(%v) = %v, out of range", a, n)
		}
		if r := math.Remainder(float64(a-n), 360); math.Abs(r) > 1e-3 {
			t.Fatalf("NormalizeAngle(%v) = %v, not congruent (remainder %v)", a, n, r)
		}
	}
}

func TestNormalizeAngleNonFinite(t *testing.T) {
	for _, in := range []float32{float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN())} {
		if got := NormalizeAngle(in); !math.IsNaN(float64(got)) {
			t.Errorf("NormalizeAngle(%v) = %v, want NaN", in, got)
		}
	}
}

func TestRotateAroundPivotQuarterTurnsAreExact(t *testing.T) {
	point := mgl32.Vec3{0, 1, -2.5}
	want := map[float32]mgl32.Vec3{
		0:   {0, 1, -2.5},
		90:  {2.5, 1, 0},
		180: {0, 1, 2.5},
		270: {-2.5, 1, 0},
		-90: {-2.5, 1, 0},
	}

	for deg, w := range want {
		if got := RotateAroundPivot(point, mgl32.Vec3{}, deg); got != w {
			t.Errorf("RotateAroundPivot(%v) = %v, want exactly %v", deg, got, w)
		}
	}
}
