package analysis

var (
	FaceShapes = []string{"oval", "round", "square", "heart", "diamond", "oblong"}
	Undertones = []string{"warm", "cool", "neutral"}
)

var hairstyles = map[string][]string{
	"oval": {
		"Layered bob with side-swept bangs",
		"Long waves with subtle highlights",
		"Textured pixie cut",
		"Shoulder-length shag",
	},
	"round": {
		"Long layers with side part",
		"Angular bob with height at crown",
		"Asymmetric pixie cut",
		"Sleek high ponytail",
	},
	"square": {
		"Soft waves past shoulders",
		"Side-swept long bangs",
		"Layered lob with movement",
		"Textured shoulder-length cut",
	},
	"heart": {
		"Chin-length bob with soft curls",
		"Long layers starting at cheekbones",
		"Side-parted waves",
		"Textured lob with wispy ends",
	},
	"diamond": {
		"Side-swept bangs with layers",
		"Shoulder-length waves",
		"Voluminous bob",
		"Long layers with side part",
	},
	"oblong": {
		"Blunt bangs with layers",
		"Chin-length bob with volume",
		"Textured waves at shoulders",
		"Layered cut with side-swept fringe",
	},
}

type shapeTips struct {
	dos   []string
	donts []string
}

var tipsByShape = map[string]shapeTips{
	"oval": {
		dos:   []string{"Most styles work well", "Experiment with different lengths"},
		donts: []string{"Avoid covering your balanced features"},
	},
	"round": {
		dos:   []string{"Add height at crown", "Keep sides sleek"},
		donts: []string{"Avoid blunt bangs", "Skip chin-length bobs"},
	},
	"square": {
		dos:   []string{"Add soft waves", "Try side parts"},
		donts: []string{"Avoid blunt cuts", "Skip center parts"},
	},
	"heart": {
		dos:   []string{"Add width at jawline", "Try chin-length cuts"},
		donts: []string{"Avoid volume at crown", "Skip very short styles"},
	},
	"diamond": {
		dos:   []string{"Add width at forehead and chin", "Try side-swept styles"},
		donts: []string{"Avoid center parts", "Skip slicked-back styles"},
	},
	"oblong": {
		dos:   []string{"Add width with layers", "Try bangs"},
		donts: []string{"Avoid long straight styles", "Skip high updos"},
	},
}

var colorsByUndertone = map[string][]string{
	"warm":    {"Golden blonde", "Caramel", "Copper", "Rich brown"},
	"cool":    {"Ash blonde", "Platinum", "Cool brown", "Black"},
	"neutral": {"Neutral brown", "Beige blonde", "Auburn", "Espresso"},
}

// Hairstyles returns the recommendations for a face shape, or nil for an unknown one.
func Hairstyles(faceShape string) []string {
	return clone(hairstyles[faceShape])
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
