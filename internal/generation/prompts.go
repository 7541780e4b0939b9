package generation

import (
	"fmt"
	"strings"
)

// suggestionSystemPrompt instructs the model to return the suggestion-list
// envelope as bare JSON.
const suggestionSystemPrompt = "You are an expert travel content creator for a travel media brand. " +
	"Produce concise, engaging, and accurate copy. " +
	"Return ONLY valid JSON that matches this schema: " +
	`{"suggestions": [{"title": str, "content": str, "type": str, "reading_time": str, "quality": str, "tags": [str]}]}. ` +
	"Do not include markdown, code fences, or any commentary."

// customSystemPrompt instructs the model to return a single enriched
// suggestion object. The recommended_spots/neighborhoods consistency rule is
// a generation instruction; it is not verified after the fact.
const customSystemPrompt = "You are an expert travel content creator for a travel media brand. " +
	"Rework or extend the user's travel content according to their instructions. " +
	"Return ONLY valid JSON that matches this schema: " +
	`{"title": str, "content": str, "type": str, "reading_time": str, "quality": str, "tags": [str], ` +
	`"highlights": [str], "neighborhoods": [str], "recommended_spots": [str], ` +
	`"price_range": str, "best_times": str, "cautions": str}. ` +
	"Any specific place referenced in content must also appear in recommended_spots or neighborhoods. " +
	"Do not include markdown, code fences, or any commentary."

// placesSystemPrompt instructs the model to return place search results.
const placesSystemPrompt = "You are a travel destination expert. " +
	"Given a search query, return up to 8 real matching places. " +
	"Return ONLY valid JSON that matches this schema: " +
	`{"places": [{"name": str, "type": str, "country": str, "description": str, "highlights": [str], "categories": [str]}]}. ` +
	"Do not include markdown, code fences, or any commentary."

// buildSuggestionUserPrompt renders the request fields into the user prompt,
// substituting defaults for the optional ones.
func buildSuggestionUserPrompt(req ContentRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "Dates: %s to %s\n", orDefault(req.StartDate, "N/A"), orDefault(req.EndDate, "N/A"))
	fmt.Fprintf(&b, "Preferred content type: %s\n", orDefault(req.ContentType, "Blog Post"))
	fmt.Fprintf(&b, "Language: %s\n", orDefault(req.Language, "en"))
	fmt.Fprintf(&b, "Tone: %s\n\n", orDefault(req.Tone, "friendly and informative"))

	b.WriteString("Create 3 tailored suggestions that intelligently consider the specific travel dates and seasonal factors. ")
	b.WriteString("If dates are provided, incorporate: ")
	b.WriteString("- Weather patterns and seasonal conditions for the destination ")
	b.WriteString("- Seasonal events, festivals, or cultural celebrations during those dates ")
	b.WriteString("- Peak vs. off-peak season considerations and pricing implications ")
	b.WriteString("- Date-specific recommendations (best times to visit attractions, seasonal activities) ")
	b.WriteString("- Seasonal cuisine, local produce, or time-specific experiences\n\n")
	b.WriteString("Ensure each suggestion has: title (compelling and date-aware), content (2-4 sentences with seasonal context), ")
	b.WriteString(`type (echo requested type), reading_time (e.g., "3 min" or "45 sec"), quality (High/Medium), `)
	b.WriteString(`and tags (3-5 relevant hashtag-style tags without # symbol, e.g., ["Local Culture", "Photography", "Hidden Gems", "Seasonal Events"]).`)

	return b.String()
}

// buildCustomUserPrompt renders a custom rewrite instruction together with
// the content it applies to.
func buildCustomUserPrompt(prompt string, req ContentRequest, existingContent string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "Content type: %s\n", orDefault(req.ContentType, "Blog Post"))
	fmt.Fprintf(&b, "Language: %s\n", orDefault(req.Language, "en"))
	if existingContent != "" {
		fmt.Fprintf(&b, "\nExisting content:\n%s\n", existingContent)
	}
	fmt.Fprintf(&b, "\nInstruction: %s", prompt)

	return b.String()
}

func buildPlacesUserPrompt(query, language string) string {
	return fmt.Sprintf("Search query: %s\nLanguage: %s", query, orDefault(language, "en"))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
