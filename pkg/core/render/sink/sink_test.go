package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/matzehuels/plakat/pkg/core/grid"
	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/core/random"
	"github.com/matzehuels/plakat/pkg/core/render"
	"github.com/matzehuels/plakat/pkg/core/render/fill"
	"github.com/matzehuels/plakat/pkg/core/typeset"
	"github.com/matzehuels/plakat/pkg/fonts"
)

// testLayout is a hand-built poster: one title and one full-width rect.
func testLayout() poster.Layout {
	return poster.Layout{
		Width:   400,
		Height:  320,
		Grid:    grid.New(320, 32),
		Variant: poster.VariantEpisode,
		Texts: []poster.TextOp{
			{Element: poster.KindTitle, Text: "R&D", X: 0, Y: 50, Font: fonts.HeavySlanted, Size: 20},
		},
		Rects: []poster.RectOp{
			{Role: poster.RoleSection, X: 0, Y: 80, W: 400, H: 30},
		},
	}
}

type op struct {
	kind string
	text string
}

type recorder struct {
	ops []op
}

func (r *recorder) Clear(color.Color) { r.ops = append(r.ops, op{kind: "clear"}) }
func (r *recorder) DrawText(text string, _, _ float64, _ fonts.Style, _ float64, _ color.Color) error {
	r.ops = append(r.ops, op{kind: "text", text: text})
	return nil
}
func (r *recorder) DrawRect(render.Rect, color.Color) { r.ops = append(r.ops, op{kind: "rect"}) }
func (r *recorder) DrawLine(_, _, _, _, _ float64, _ color.Color) {
	r.ops = append(r.ops, op{kind: "line"})
}
func (r *recorder) DrawImageRegion(image.Image, render.Rect, render.Rect) error {
	r.ops = append(r.ops, op{kind: "image"})
	return nil
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func TestDrawOrder(t *testing.T) {
	l, err := poster.Generate(poster.Input{
		Width: 400, Height: 320, Rows: 32, Episode: "e1", Title: "hi", Quote: "ok",
	}, typeset.Approx{CharWidth: 0.5}, random.NewSequence())
	if err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	if err := Draw(l, rec, WithGrid(true)); err != nil {
		t.Fatal(err)
	}

	if rec.ops[0].kind != "clear" {
		t.Errorf("first op = %s, want clear", rec.ops[0].kind)
	}
	var kinds []string
	for _, o := range rec.ops[1:] {
		if len(kinds) == 0 || kinds[len(kinds)-1] != o.kind {
			kinds = append(kinds, o.kind)
		}
	}
	if got := strings.Join(kinds, ","); got != "text,rect,line" {
		t.Errorf("op order = %s, want text,rect,line", got)
	}
	if got := rec.count("text"); got != len(l.Texts) {
		t.Errorf("texts = %d, want %d", got, len(l.Texts))
	}
	if got := rec.count("rect"); got != len(l.Rects) {
		t.Errorf("rects = %d, want %d", got, len(l.Rects))
	}
	if got := rec.count("line"); got != 33 {
		t.Errorf("grid lines = %d, want 33", got)
	}
}

func TestDrawImageFill(t *testing.T) {
	rec := &recorder{}
	img := fill.NewImage(image.NewNRGBA(image.Rect(0, 0, 10, 10)), color.White)
	if err := Draw(testLayout(), rec, WithFill(img)); err != nil {
		t.Fatal(err)
	}
	if rec.count("image") != 1 || rec.count("rect") != 0 {
		t.Errorf("images=%d rects=%d, want 1 and 0", rec.count("image"), rec.count("rect"))
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testLayout(), WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 320 {
		t.Fatalf("bounds = %v, want 400x320", b)
	}

	r, g, b, _ := img.At(200, 95).RGBA()
	if r>>8 != 0xE9 || g>>8 != 0x30 || b>>8 != 0x36 {
		t.Errorf("rect pixel = %02x%02x%02x, want e93036", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(200, 300).RGBA()
	if r>>8 != 0xff || g>>8 != 0xff || b>>8 != 0xff {
		t.Errorf("background pixel = %02x%02x%02x, want white", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGConcurrent(t *testing.T) {
	const n = 8
	want, err := RenderPNG(testLayout(), WithScale(1))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([][]byte, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = RenderPNG(testLayout(), WithScale(1))
		}()
	}
	wg.Wait()

	for i := range n {
		if errs[i] != nil {
			t.Fatalf("render %d: %v", i, errs[i])
		}
		if !bytes.Equal(results[i], want) {
			t.Errorf("render %d differs from a sequential render", i)
		}
	}
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG(testLayout())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 800 || cfg.Height != 640 {
		t.Errorf("size = %dx%d, want 800x640 at default scale", cfg.Width, cfg.Height)
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := RenderSVG(testLayout(), WithGrid(true))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(data)

	for _, want := range []string{
		`viewBox="0 0 4000 3200"`,
		"@font-face",
		"Plakat Heavy Slanted",
		"R&amp;D",
		"fill:#e93036",
		"fill:#ffffff",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if got := strings.Count(s, "<rect"); got != 2 {
		t.Errorf("rect count = %d, want 2 (background + section)", got)
	}
	if got := strings.Count(s, "<line"); got != 33 {
		t.Errorf("line count = %d, want 33", got)
	}
	if strings.Contains(s, "Plakat Regular") {
		t.Error("unused font embedded")
	}
}

func TestRenderSVGImageFill(t *testing.T) {
	img := fill.NewImage(image.NewNRGBA(image.Rect(0, 0, 20, 20)), color.White)
	data, err := RenderSVG(testLayout(), WithFill(img))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("data:image/png;base64,")) {
		t.Error("image fill not embedded")
	}
	if !bytes.Contains(data, []byte(`preserveAspectRatio="none"`)) {
		t.Error("image should stretch to its rect")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	l := testLayout()
	data, err := RenderJSON(l)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ReadJSON(data)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.Width != l.Width || got.Grid != l.Grid || len(got.Texts) != 1 || len(got.Rects) != 1 {
		t.Errorf("round trip = %+v", got)
	}
	if got.Texts[0].Font != fonts.HeavySlanted {
		t.Errorf("font = %q", got.Texts[0].Font)
	}

	if _, err := ReadJSON([]byte(`{"width": 0}`)); err == nil {
		t.Error("expected error for empty canvas")
	}
	if _, err := ReadJSON([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
