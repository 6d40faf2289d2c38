package accent

// supportedAccents lists the canonical accent labels in fixed table order
var supportedAccents = []string{
	"American English",
	"British English",
	"Australian English",
	"Canadian English",
	"Indian English",
	"New Zealand English",
	"South African English",
	"Irish English",
	"Singaporean English",
}

var accentDescriptions = map[string]string{
	"American English":      "North American English, commonly heard in the United States. Features rhotic pronunciation and distinctive vowel patterns.",
	"British English":       "English as spoken in the United Kingdom, including Received Pronunciation and regional variants. Often non-rhotic with distinct vowel sounds.",
	"Australian English":    "English as spoken in Australia, with distinctive vowel sounds and unique pronunciation patterns influenced by British English.",
	"Canadian English":      "North American English with some British influences, spoken in Canada. Similar to American English but with some distinct features.",
	"Indian English":        "English as spoken in India, influenced by local languages. Features unique pronunciation patterns and vocabulary.",
	"New Zealand English":   "English as spoken in New Zealand, similar to Australian but with distinct characteristics, particularly in vowel pronunciation.",
	"South African English": "English as spoken in South Africa, with unique characteristics influenced by Afrikaans and local languages.",
	"Irish English":         "English as spoken in Ireland, with Celtic influences and distinctive pronunciation patterns.",
	"Singaporean English":   "English as spoken in Singapore, influenced by various local languages and featuring unique pronunciation patterns.",
}

const defaultAccentDescription = "Regional variant of English with unique characteristics."

// Description returns a brief description of the accent label, or a generic
// regional-variant sentence when the label is not recognized
func Description(label string) string {
	if d, ok := accentDescriptions[label]; ok {
		return d
	}
	return defaultAccentDescription
}

// SupportedAccents returns the canonical accent labels in table order.
// The returned slice is a copy; callers may mutate it freely.
func SupportedAccents() []string {
	out := make([]string, len(supportedAccents))
	copy(out, supportedAccents)
	return out
}
