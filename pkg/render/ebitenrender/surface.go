// Package ebitenrender draws on an *ebiten.Image.
package ebitenrender

import (
	"fmt"
	"image"
	"image/color"

	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts caches one face per pixel size, all built from the embedded Go font.
type Fonts struct {
	tt    *opentype.Font
	faces map[int]font.Face
}

func NewFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Fonts{tt: tt, faces: make(map[int]font.Face)}, nil
}

// Face returns the face for size, building it on first use.
func (f *Fonts) Face(size int) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.tt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %dpx: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Surface adapts an ebiten image to render.Surface. Target is swapped
// every frame by the host.
type Surface struct {
	Target     *ebiten.Image
	Background color.Color
	fonts      *Fonts
}

var _ render.Surface = (*Surface)(nil)

func NewSurface(fonts *Fonts, background color.Color) *Surface {
	return &Surface{fonts: fonts, Background: background}
}

func (s *Surface) Clear(r geom.Rect) {
	region := image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
	sub, ok := s.Target.SubImage(region).(*ebiten.Image)
	if !ok {
		return
	}
	if s.Background == nil {
		sub.Clear()
		return
	}
	sub.Fill(s.Background)
}

func (s *Surface) FillRect(r geom.Rect, c color.Color) {
	vector.DrawFilledRect(s.Target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *Surface) StrokeRect(r geom.Rect, c color.Color) {
	vector.StrokeRect(s.Target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}

func (s *Surface) FillCircle(cx, cy, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.Target, float32(cx), float32(cy), float32(radius), c, true)
}

func (s *Surface) Text(str string, x, y float64, size int, align render.Align, c color.Color) {
	face, err := s.fonts.Face(size)
	if err != nil {
		return
	}
	width := float64(font.MeasureString(face, str).Ceil())
	left := render.AnchorX(x, width, align)
	text.Draw(s.Target, str, face, int(left), int(y), c)
}
