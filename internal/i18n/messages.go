// Package i18n holds the user-facing copy for error responses. The page
// audience is Indonesian; API errors still need to read well in the guest's
// own language when their browser asks for one we have.
package i18n

import "golang.org/x/text/language"

// supported lists the languages we ship copy for. Indonesian first: it is
// the fallback when negotiation fails.
var supported = []language.Tag{
	language.Indonesian,
	language.English,
}

var matcher = language.NewMatcher(supported)

// messages maps a base language to per-error-code copy. Codes follow the
// handler taxonomy.
var messages = map[string]map[string]string{
	"id": {
		"bad_request":              "Foto wajib diunggah.",
		"too_many_requests":        "Terlalu banyak permintaan. Coba lagi dalam 1 menit.",
		"upstream_rate_limited":    "Layanan sedang sibuk. Silakan coba lagi nanti.",
		"upstream_quota_exhausted": "Kuota layanan AI habis. Silakan coba lagi nanti.",
		"upstream_error":           "Gagal mengubah foto. Silakan coba lagi.",
		"no_image_produced":        "Gagal membuat karya dari foto ini. Coba foto lain.",
		"internal_error":           "Terjadi kesalahan. Silakan coba lagi.",
		"invalid_rsvp":             "Data konfirmasi kehadiran tidak valid.",
		"not_found":                "Halaman tidak ditemukan.",
	},
	"en": {
		"bad_request":              "A photo is required.",
		"too_many_requests":        "Too many requests. Try again in a minute.",
		"upstream_rate_limited":    "The service is busy. Please try again later.",
		"upstream_quota_exhausted": "AI credits are exhausted. Please try again later.",
		"upstream_error":           "Failed to transform the photo. Please try again.",
		"no_image_produced":        "Could not generate art from this photo. Try another one.",
		"internal_error":           "Something went wrong. Please try again.",
		"invalid_rsvp":             "The RSVP submission is invalid.",
		"not_found":                "Page not found.",
	},
}

// Message returns the localized copy for an error code, negotiating against
// an Accept-Language header value. Unknown languages fall back to Indonesian;
// unknown codes fall back to the internal-error copy.
func Message(acceptLang, code string) string {
	tag, _ := language.MatchStrings(matcher, acceptLang)
	base, _ := tag.Base()

	m, ok := messages[base.String()]
	if !ok {
		m = messages["id"]
	}
	if msg, ok := m[code]; ok {
		return msg
	}
	return m["internal_error"]
}
