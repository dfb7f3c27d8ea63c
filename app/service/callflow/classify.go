package callflow

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// "cout" is anchored so folded "ecouter" does not read as a price
	// question.
	priceRe = regexp.MustCompile(`combien|prix|tarif|\bcout|devis`)
	// No "rappel" here: the phone prompt itself says "vous rappeler" and
	// callers echo it when answering with their number.
	availabilityRe = regexp.MustCompile(`quand|dispo|delai|aujourd'hui|demain|passe[rz]? quand`)
	greetingRe     = regexp.MustCompile(`^\s*(bonjour|bonsoir|salut|allo)\b`)
	sameNumberRe   = regexp.MustCompile(`meme numero|ce numero|celui[- ]ci|celui la|^\s*oui\b`)
)

// problemFamilies map plumbing keyword groups to the wording used in
// prompts and in the final recap. Checked in order, first hit wins.
var problemFamilies = []struct {
	label    string
	keywords []string
}{
	{"une fuite d'eau", []string{"fuite", "eau", "coule", "inond"}},
	{"une canalisation bouchée", []string{"bouche", "evier", "canalisation"}},
	{"un problème de chauffe-eau", []string{"chauffe", "chaude", "ballon", "cumulus"}},
	{"un problème de chasse d'eau", []string{"chasse", "wc", "toilette"}},
	{"un problème de chauffage", []string{"radiateur", "chauffage", "chaudiere"}},
	{"un problème de robinet", []string{"robinet", "mitigeur"}},
	{"un problème de tuyauterie", []string{"tuyau", "conduite", "raccord"}},
}

var urgencyKeywords = []string{"urgent", "inond", "partout", "vite", "tout de suite"}

var nameFillers = []string{
	"je m'appelle", "je m appelle", "moi c'est", "mon nom est", "c'est",
}

var addressFillers = []string{
	"j'habite au", "j'habite", "j habite au", "j habite", "c'est au", "a l'adresse", "l'adresse est",
}

var titleCaser = cases.Title(language.French)

// classifyProblem maps a folded utterance to a problem description.
// Returns false when no family matched and the problem stays generic.
func classifyProblem(folded string) (string, bool) {
	for _, family := range problemFamilies {
		for _, kw := range family.keywords {
			if strings.Contains(folded, kw) {
				return family.label, true
			}
		}
	}
	return "un problème", false
}

func isUrgent(folded string) bool {
	for _, kw := range urgencyKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// isBareGreeting reports whether the utterance is just a hello, with no
// problem description attached.
func isBareGreeting(folded string) bool {
	if !greetingRe.MatchString(folded) {
		return false
	}
	_, known := classifyProblem(folded)
	return !known
}

// stripFillers removes a leading conversational filler ("je m'appelle",
// "c'est au", ...) from the raw utterance while preserving its original
// casing and accents.
func stripFillers(raw string, fillers []string) string {
	trimmed := strings.ReplaceAll(strings.TrimSpace(raw), "’", "'")
	lower := strings.ToLower(trimmed)

	for _, filler := range fillers {
		if strings.HasPrefix(lower, filler+" ") {
			return strings.TrimSpace(trimmed[len(filler):])
		}
	}

	return trimmed
}

// titleCaseName normalizes "martin dupont" to "Martin Dupont".
func titleCaseName(raw string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(raw)))
}

// hasLiteralNumber reports whether the utterance carries enough digits to
// be a dictated phone number, spaced or not ("0612345678", "06 12 34 56 78").
func hasLiteralNumber(folded string) bool {
	digits := 0
	for _, r := range folded {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 6
}

// wantsSameNumber detects "call me back on this number" style answers. A
// dictated number wins over an affirmative opener ("oui, c'est le 06...").
func wantsSameNumber(folded string) bool {
	return sameNumberRe.MatchString(folded) && !hasLiteralNumber(folded)
}
