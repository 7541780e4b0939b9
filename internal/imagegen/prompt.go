package imagegen

import (
	"fmt"
	"strings"
)

// PromptFields are the content fields prompt synthesis consumes. Destination
// is the only required field; everything else tightens the result when
// present.
type PromptFields struct {
	Title            string
	Content          string
	Destination      string
	Tags             []string
	Neighborhoods    []string
	RecommendedSpots []string
	BestTimes        string
}

// SynthesizedPrompt is the immutable output of Synthesize.
type SynthesizedPrompt struct {
	Text    string
	AltText string
}

// maxVisualElements caps how many concrete nouns from the content make it
// into the inclusion clause.
const maxVisualElements = 4

// placeNouns are the title words that name a concrete place. A title match
// outranks recommended spots and neighborhoods during place resolution.
var placeNouns = map[string]bool{
	"market": true, "street": true, "plaza": true, "square": true,
	"park": true, "museum": true, "cathedral": true, "bridge": true,
	"palace": true, "fort": true,
}

// visualKeywords are the content tokens that count as concrete, photographable
// subjects.
var visualKeywords = map[string]bool{
	"market": true, "stalls": true, "vendor": true, "awning": true,
	"bread": true, "cheese": true, "cobblestone": true, "street": true,
	"river": true, "harbor": true, "canal": true, "beach": true,
	"coast": true, "cliffs": true, "bay": true, "bridge": true,
	"park": true, "museum": true, "cathedral": true, "neon": true,
	"food": true, "people": true, "buildings": true, "trees": true,
	"flowers": true, "fountain": true, "statue": true, "arches": true,
	"stone": true, "walls": true, "battlements": true,
}

var defaultVisualElements = []string{"buildings", "people", "street"}

// temporalRule classifies best_times text into a time-of-day or season
// bucket. Rules are evaluated in order and the first keyword hit wins; an
// empty bucket means the matched keyword itself names the bucket.
type temporalRule struct {
	keywords []string
	bucket   string
}

var temporalRules = []temporalRule{
	{keywords: []string{"morning", "early", "dawn", "sunrise"}, bucket: "morning"},
	{keywords: []string{"sunset", "evening", "golden hour", "dusk"}, bucket: "sunset"},
	{keywords: []string{"night", "late"}, bucket: "night"},
	{keywords: []string{"winter", "spring", "summer", "autumn", "fall"}},
}

const defaultTemporalBucket = "daytime"

// perspectiveRule maps content keywords to a composition clause. First
// matching rule wins; contentRuleDefault applies when nothing matches.
type perspectiveRule struct {
	keywords []string
	outcome  string
}

var perspectiveRules = []perspectiveRule{
	{
		keywords: []string{"market", "street", "food", "neon", "vendor"},
		outcome:  "street-level, 24–35mm wide-angle; people mid-ground, leading lines",
	},
	{
		keywords: []string{"river", "harbor", "canal", "beach", "coast", "cliffs", "bay"},
		outcome:  "elevated vantage, 35–50mm; foreground anchor, sweeping background",
	},
}

const defaultPerspective = "eye-level, 35mm; center-weighted subject"

const (
	lightingWarm     = "warm cinematic side-light, soft shadows; natural colors"
	lightingAmbient  = "ambient city light; natural colors"
	lightingDaylight = "soft daylight; natural balanced colors"
)

const styleAnchor = "documentary travel photo captured on a full-frame camera, 35mm lens, f/5.6, 1/250s, ISO 200; " +
	"realistic depth of field, subtle sensor noise, natural color grading, minimal post-processing"

const baseNegatives = "AVOID: no text overlays, no watermarks, no logos, no billboards, no heavy HDR, no anime, " +
	"no illustration, no digital painting, no concept art, no CGI, no 3D render, no matte painting, " +
	"no stylized look, no fisheye, avoid motion blur"

const architectureNegatives = ", no fantasy architecture, accurate real-world materials and proportions"

var architectureKeywords = []string{"tower", "castle", "palace", "cathedral", "fort", "citadel"}

// Synthesize derives the image prompt and alt text from the content fields.
// It is pure and total: any input with a non-empty destination produces a
// usable prompt.
func Synthesize(fields PromptFields) SynthesizedPrompt {
	place := resolvePlace(fields)
	bucket := temporalBucket(fields.BestTimes)
	elements := visualElements(fields.Content)
	perspective := perspectiveFor(fields.Content)
	lighting := lightingFor(bucket)

	negatives := baseNegatives
	placeLower := strings.ToLower(place)
	for _, word := range architectureKeywords {
		if strings.Contains(placeLower, word) {
			negatives += architectureNegatives
			break
		}
	}

	text := fmt.Sprintf("%s; %s; %s; %s; %s; photorealistic, sharp focus, high detail. Must include: %s. %s.",
		place, bucket, perspective, lighting, styleAnchor,
		strings.Join(elements, ", "), negatives)

	altCount := len(elements)
	if altCount > 3 {
		altCount = 3
	}
	alt := fmt.Sprintf("%s at %s, showing %s", place, bucket, strings.Join(elements[:altCount], ", "))

	return SynthesizedPrompt{Text: text, AltText: alt}
}

// resolvePlace picks the prompt's main subject. Priority: a place noun in the
// title, then the first recommended spot, then the first neighborhood, then
// the destination itself. The destination is appended when the resolved place
// does not already mention it.
func resolvePlace(fields PromptFields) string {
	place := ""
	for _, word := range strings.Fields(fields.Title) {
		if placeNouns[strings.ToLower(word)] {
			place = word
			break
		}
	}
	if place == "" {
		switch {
		case len(fields.RecommendedSpots) > 0:
			place = fields.RecommendedSpots[0]
		case len(fields.Neighborhoods) > 0:
			place = fields.Neighborhoods[0]
		default:
			place = fields.Destination
		}
	}

	if !strings.Contains(strings.ToLower(place), strings.ToLower(fields.Destination)) {
		place = place + " in " + fields.Destination
	}
	return place
}

func temporalBucket(bestTimes string) string {
	if bestTimes == "" {
		return defaultTemporalBucket
	}
	lower := strings.ToLower(bestTimes)
	for _, rule := range temporalRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				if rule.bucket != "" {
					return rule.bucket
				}
				return keyword
			}
		}
	}
	return defaultTemporalBucket
}

// visualElements collects up to four visual-keyword tokens from the content
// in first-seen order.
func visualElements(content string) []string {
	elements := make([]string, 0, maxVisualElements)
	seen := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(content)) {
		if len(elements) == maxVisualElements {
			break
		}
		if visualKeywords[word] && !seen[word] {
			elements = append(elements, word)
			seen[word] = true
		}
	}
	if len(elements) == 0 {
		return append(elements, defaultVisualElements...)
	}
	return elements
}

func perspectiveFor(content string) string {
	lower := strings.ToLower(content)
	for _, rule := range perspectiveRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.outcome
			}
		}
	}
	return defaultPerspective
}

func lightingFor(bucket string) string {
	switch bucket {
	case "sunset", "morning":
		return lightingWarm
	case "night":
		return lightingAmbient
	default:
		return lightingDaylight
	}
}
