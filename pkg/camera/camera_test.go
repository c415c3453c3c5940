package camera

import (
	"errors"
	"math"
	"testing"

	"lifeview/pkg/core"
)

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Resize(700, 500)
	return c
}

func TestScreenToGridInvertsGridToScreen(t *testing.T) {
	c := newTestCamera(t)
	states := []struct {
		zoom, panX, panY float64
	}{
		{1, 0, 0},
		{0.25, 0, 0},
		{10, 0, 0},
		{2.5, 0.3, -0.7},
		{0.37, -1.9, 2.2},
		{7.77, 0.001, 0.999},
	}
	for _, st := range states {
		c.SetZoom(st.zoom)
		c.SetPan(st.panX, st.panY)
		for gy := -3; gy <= 1003; gy += 47 {
			for gx := -3; gx <= 1003; gx += 53 {
				sx, sy := c.GridToScreen(float64(gx), float64(gy))
				x, y := c.ScreenToGrid(sx, sy)
				if x != gx || y != gy {
					t.Fatalf("zoom=%g pan=(%g,%g): (%d,%d) -> screen (%g,%g) -> (%d,%d)",
						st.zoom, st.panX, st.panY, gx, gy, sx, sy, x, y)
				}
			}
		}
	}
}

func TestScreenToGridRoundsWithinHalfCell(t *testing.T) {
	c := newTestCamera(t)
	c.SetZoom(4)
	c.SetPan(0.1, -0.2)
	sx, sy := c.GridToScreen(12, 34)
	// Anything within just under half a cell (2 px at zoom 4) maps back.
	for _, d := range []float64{-1.99, -1, 0, 1, 1.99} {
		if x, y := c.ScreenToGrid(sx+d, sy-d); x != 12 || y != 34 {
			t.Fatalf("offset %g px mapped to (%d,%d)", d, x, y)
		}
	}
	if x, _ := c.ScreenToGrid(sx+2.01, sy); x != 13 {
		t.Fatalf("just past half a cell should select the neighbour, got x=%d", x)
	}
}

func TestViewMatchesGridToScreen(t *testing.T) {
	c := newTestCamera(t)
	c.SetZoom(3)
	c.PanKey(1, -2)
	for _, p := range [][2]float64{{0, 0}, {1, 1}, {-5, 17.5}, {999, 3}} {
		wx, wy := c.GridToScreen(p[0], p[1])
		gx, gy := Apply(c.View(), p[0], p[1])
		if math.Abs(wx-gx) > 1e-9 || math.Abs(wy-gy) > 1e-9 {
			t.Fatalf("View maps %v to (%g,%g), GridToScreen gives (%g,%g)", p, gx, gy, wx, wy)
		}
	}
}

func TestProjectionMapsViewportCorners(t *testing.T) {
	c := newTestCamera(t)
	cases := []struct {
		sx, sy, nx, ny float64
	}{
		{0, 0, -1, 1},
		{700, 500, 1, -1},
		{350, 250, 0, 0},
	}
	for _, tc := range cases {
		nx, ny := Apply(c.Projection(), tc.sx, tc.sy)
		if math.Abs(nx-tc.nx) > 1e-12 || math.Abs(ny-tc.ny) > 1e-12 {
			t.Fatalf("screen (%g,%g) -> ndc (%g,%g), expected (%g,%g)", tc.sx, tc.sy, nx, ny, tc.nx, tc.ny)
		}
	}
}

func TestRenderTransformNeverStale(t *testing.T) {
	c := newTestCamera(t)
	check := func(label string) {
		t.Helper()
		m := c.RenderTransform()
		for _, p := range [][2]float64{{0, 0}, {10, 20}, {-3, 400}} {
			sx, sy := c.GridToScreen(p[0], p[1])
			wantX, wantY := Apply(c.Projection(), sx, sy)
			gotX, gotY := Apply(m, p[0], p[1])
			if math.Abs(gotX-wantX) > 1e-9 || math.Abs(gotY-wantY) > 1e-9 {
				t.Fatalf("%s: render transform maps %v to (%g,%g), expected (%g,%g)", label, p, gotX, gotY, wantX, wantY)
			}
		}
	}
	check("initial")
	c.ZoomBy(5)
	check("zoom")
	c.PanBy(120, -40)
	check("pan")
	c.Resize(1920, 1080)
	check("resize")
	c.ZoomKey(-1)
	c.PanKey(0, 1)
	check("keys")
}

func TestZoomClamped(t *testing.T) {
	c := newTestCamera(t)
	cfg := c.Config()
	for i := 0; i < 1000; i++ {
		c.ZoomBy(1e6)
		if c.Zoom() > cfg.ZoomMax {
			t.Fatalf("zoom %g exceeded max %g", c.Zoom(), cfg.ZoomMax)
		}
	}
	if c.Zoom() != cfg.ZoomMax {
		t.Fatalf("zoom=%g, expected max", c.Zoom())
	}
	c.ZoomBy(-math.MaxFloat64)
	if c.Zoom() != cfg.ZoomMin {
		t.Fatalf("zoom=%g, expected min", c.Zoom())
	}
	c.ZoomBy(math.Inf(1))
	if c.Zoom() != cfg.ZoomMax {
		t.Fatalf("zoom=%g after +Inf, expected max", c.Zoom())
	}
	c.ZoomBy(math.NaN())
	if c.Zoom() != cfg.ZoomMax {
		t.Fatalf("NaN delta changed zoom to %g", c.Zoom())
	}
	for i := 0; i < 500; i++ {
		c.ZoomKey(-1)
	}
	if c.Zoom() != cfg.ZoomMin {
		t.Fatalf("zoom=%g after key zoom out, expected min", c.Zoom())
	}
}

func TestZoomByScalesWithScrollSpeed(t *testing.T) {
	c := newTestCamera(t)
	c.ZoomBy(2)
	want := 1 + 2*c.Config().ScrollSpeed
	if math.Abs(c.Zoom()-want) > 1e-12 {
		t.Fatalf("zoom=%g, expected %g", c.Zoom(), want)
	}
}

func TestResizeKeepsPanAndZoom(t *testing.T) {
	c := newTestCamera(t)
	c.SetZoom(2)
	c.SetPan(0.5, -0.25)
	c.Resize(1024, 768)
	if c.Zoom() != 2 {
		t.Fatalf("zoom=%g after resize", c.Zoom())
	}
	if x, y := c.Pan(); x != 0.5 || y != -0.25 {
		t.Fatalf("pan=(%g,%g) after resize", x, y)
	}
	if w, h := c.HalfExtent(); w != 512 || h != 384 {
		t.Fatalf("half extent=(%g,%g)", w, h)
	}
	c.Resize(0, -5)
	if w, h := c.HalfExtent(); w != 0.5 || h != 0.5 {
		t.Fatalf("degenerate resize half extent=(%g,%g)", w, h)
	}
}

func TestPanUsesHalfExtent(t *testing.T) {
	c := newTestCamera(t)
	c.PanBy(100, 50)
	x, y := c.Pan()
	if math.Abs(x-0.1) > 1e-12 || math.Abs(y-0.05) > 1e-12 {
		t.Fatalf("pan=(%g,%g)", x, y)
	}
	// Half extent is (350, 250), so the grid origin shifts by (35, 12.5) px.
	sx, sy := c.GridToScreen(0, 0)
	if math.Abs(sx-35) > 1e-9 || math.Abs(sy-12.5) > 1e-9 {
		t.Fatalf("origin drawn at (%g,%g)", sx, sy)
	}
	c.PanBy(math.NaN(), 1)
	if nx, ny := c.Pan(); nx != x || ny != y {
		t.Fatal("NaN pan delta should be ignored")
	}
}

func TestDefaultCameraMapsOriginToOrigin(t *testing.T) {
	c := newTestCamera(t)
	if x, y := c.ScreenToGrid(0, 0); x != 0 || y != 0 {
		t.Fatalf("(0,0) -> (%d,%d)", x, y)
	}
	if x, y := c.ScreenToGrid(10.4, 3.6); x != 10 || y != 4 {
		t.Fatalf("(10.4,3.6) -> (%d,%d)", x, y)
	}
}

func TestNewRejectsInvalidZoomBounds(t *testing.T) {
	bad := []Config{
		{ZoomMin: 2, ZoomMax: 1},
		{ZoomMin: 0, ZoomMax: 1},
		{ZoomMin: -1, ZoomMax: 1},
		{ZoomMin: math.NaN(), ZoomMax: 1},
	}
	for _, cfg := range bad {
		if _, err := New(cfg); !errors.Is(err, core.ErrInvalidZoomBounds) {
			t.Fatalf("New(%+v) err=%v", cfg, err)
		}
	}
	c, err := New(Config{ZoomMin: 2, ZoomMax: 2})
	if err != nil {
		t.Fatal(err)
	}
	if c.Zoom() != 2 {
		t.Fatalf("initial zoom %g should be clamped into [2,2]", c.Zoom())
	}
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(map[string]string{"zoom_min": "0.5", "zoom_max": "4", "scroll_speed": "0.2"})
	if err != nil {
		t.Fatal(err)
	}
	if c.ZoomMin != 0.5 || c.ZoomMax != 4 || c.ScrollSpeed != 0.2 {
		t.Fatalf("unexpected config %+v", c)
	}
	if _, err := FromMap(map[string]string{"zoom_min": "5", "zoom_max": "4"}); !errors.Is(err, core.ErrInvalidZoomBounds) {
		t.Fatalf("err=%v", err)
	}
	if _, err := FromMap(map[string]string{"pan_speed": "fast"}); err == nil {
		t.Fatal("expected parse error")
	}
}
