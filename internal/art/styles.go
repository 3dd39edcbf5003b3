// Package art brokers photo stylization through an external multimodal
// image-generation gateway. It owns the static style catalog, the typed
// upstream request/response schema, and the classification of upstream
// failures into stable error values.
package art

// DefaultStyle is used when a request names no style or an unknown one.
const DefaultStyle = "romantic"

// styleInstructions maps a user-facing style key to the natural-language
// transformation instruction sent to the model. Loaded once at process start;
// lookups never fail because unknown keys fall back to DefaultStyle.
var styleInstructions = map[string]string{
	"watercolor":   "Transform this photo into a beautiful watercolor painting with soft edges, flowing colors, and artistic brush strokes. Keep the subjects recognizable.",
	"oil-painting": "Transform this photo into a classical oil painting with rich textures, dramatic lighting, and museum-quality artistic technique.",
	"digital-art":  "Transform this photo into vibrant digital art with modern illustration style, enhanced colors, and high quality artistic render.",
	"anime":        "Transform this photo into anime art style with Japanese animation aesthetic, clean lines, and expressive features.",
	"vintage":      "Transform this photo into a vintage photograph with sepia tones, nostalgic feel, and retro aesthetic.",
	"romantic":     "Transform this photo into a romantic dreamy artwork with soft lighting, ethereal atmosphere, and beautiful artistic touches.",
	"wedding":      "Transform this photo into an elegant wedding portrait style with romantic lighting, soft focus, and professional artistic quality.",
	"sketch":       "Transform this photo into a detailed pencil sketch with artistic shading and hand-drawn appearance.",
	"pop-art":      "Transform this photo into bold pop art style with vibrant colors, comic-like appearance, and artistic contrast.",
}

// Instruction returns the transformation instruction for style, falling back
// to the default style when the key is unknown or empty.
func Instruction(style string) string {
	if s, ok := styleInstructions[style]; ok {
		return s
	}
	return styleInstructions[DefaultStyle]
}

// Styles lists the known style keys. Useful for docs and client pickers.
func Styles() []string {
	out := make([]string, 0, len(styleInstructions))
	for k := range styleInstructions {
		out = append(out, k)
	}
	return out
}
