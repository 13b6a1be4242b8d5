// Package analysis derives a stable pseudo face analysis from image bytes.
// The same bytes always yield the same result. No vision model is involved.
package analysis

import (
	"crypto/sha256"
	"fmt"
	"math"
	"strconv"

	"rhea-backend/domain"
)

type (
	Classifier interface {
		Classify(image []byte) (domain.AnalysisResult, error)
	}

	HashClassifier struct{}
)

func NewHashClassifier() Classifier {
	return &HashClassifier{}
}

func (c *HashClassifier) Classify(image []byte) (domain.AnalysisResult, error) {
	if len(image) == 0 {
		return domain.AnalysisResult{}, fmt.Errorf("%w: empty image", domain.ErrInvalidInput)
	}
	return analyzeSeed(Seed(image)), nil
}

// Seed folds the first eight SHA-256 bytes into a signed 32-bit accumulator
// and returns its absolute value. Only bytes 4..7 survive the fold.
func Seed(image []byte) int64 {
	sum := sha256.Sum256(image)
	var h int32
	for i := 0; i < 8; i++ {
		h = h<<8 | int32(sum[i])
	}
	s := int64(h)
	if s < 0 {
		s = -s
	}
	return s
}

// lcg uses the Numerical Recipes constants over 2^32.
type lcg struct {
	state uint64
}

func newLCG(seed int64) *lcg {
	return &lcg{state: uint64(seed)}
}

func (g *lcg) next() float64 {
	g.state = (g.state*1664525 + 1013904223) % (1 << 32)
	return float64(g.state) / (1 << 32)
}

func (g *lcg) pick(n int) int {
	return int(g.next() * float64(n))
}

func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// analyzeSeed consumes draws in a fixed order; reordering changes every result.
func analyzeSeed(seed int64) domain.AnalysisResult {
	g := newLCG(seed)

	shape := FaceShapes[g.pick(len(FaceShapes))]
	undertone := Undertones[g.pick(len(Undertones))]
	styles := hairstyles[shape]
	style := styles[g.pick(len(styles))]
	confidence := round2(0.75 + g.next()*0.20)

	details := domain.AnalysisDetails{
		FaceWidthRatio:    round2(0.6 + g.next()*0.3),
		JawlineProminence: round2(0.3 + g.next()*0.5),
		ForeheadHeight:    round2(0.4 + g.next()*0.3),
		CheekboneWidth:    round2(0.5 + g.next()*0.35),
		ColorTemperature:  undertone,
		ProcessingMode:    domain.ProcessingModeDeterministic,
		ImageHash:         imageHash(seed),
	}

	tips := tipsByShape[shape]
	return domain.AnalysisResult{
		FaceShape:        shape,
		SkinUndertone:    undertone,
		RecommendedStyle: style,
		Confidence:       confidence,
		AnalysisDetails:  details,
		StylingTips: domain.StylingTips{
			HairstyleDos:         clone(tips.dos),
			HairstyleDonts:       clone(tips.donts),
			ColorRecommendations: clone(colorsByUndertone[undertone]),
		},
	}
}

func imageHash(seed int64) string {
	h := strconv.FormatInt(seed, 36)
	if len(h) > 12 {
		h = h[:12]
	}
	return h
}
