package salon

import (
	"regexp"

	"shopbot/app/util/textnorm"
)

var (
	// 1-2 digits, "h" or ":" separator, optional minutes: 9h, 14h30, 10:15
	timeRe    = regexp.MustCompile(`\d{1,2}[h:]\d{0,2}`)
	weekdayRe = regexp.MustCompile(`lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche`)
	staffRe   = regexp.MustCompile(`sarah|karim|julie|marco|gerante|responsable|patron`)
	confirmRe = regexp.MustCompile(`^\s*(oui|ouais|ok|d'accord|parfait|yes|yep|c'est bon|nickel|go)`)
)

var weekdayTitles = map[string]string{
	"lundi":    "Lundi",
	"mardi":    "Mardi",
	"mercredi": "Mercredi",
	"jeudi":    "Jeudi",
	"vendredi": "Vendredi",
	"samedi":   "Samedi",
	"dimanche": "Dimanche",
}

// staffPatterns maps mentions (including role words) to the canonical
// first name used in confirmations.
var staffPatterns = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`sarah|gerante|responsable`), "Sarah"},
	{regexp.MustCompile(`karim`), "Karim"},
	{regexp.MustCompile(`julie`), "Julie"},
	{regexp.MustCompile(`marco`), "Marco"},
}

// Normalized is the folded form of a user utterance plus the feature
// checks every branch of the engine relies on.
type Normalized struct {
	Text string
}

func Normalize(raw string) Normalized {
	return Normalized{Text: textnorm.Fold(raw)}
}

func (n Normalized) HasTime() bool {
	return timeRe.MatchString(n.Text)
}

// TimeToken returns the first time mention ("9h", "14h30") or "".
func (n Normalized) TimeToken() string {
	return timeRe.FindString(n.Text)
}

// Weekday returns the first mentioned weekday in lowercase, or "".
func (n Normalized) Weekday() string {
	return weekdayRe.FindString(n.Text)
}

func (n Normalized) HasStaffMention() bool {
	return staffRe.MatchString(n.Text)
}

// StaffName maps a staff mention to the canonical first name. Role words
// like "patron" count as a mention but have no canonical mapping.
func (n Normalized) StaffName() string {
	for _, p := range staffPatterns {
		if p.re.MatchString(n.Text) {
			return p.name
		}
	}
	return ""
}

// IsConfirmation reports whether the utterance opens with an affirmative
// token ("oui", "ok", "parfait", ...).
func (n Normalized) IsConfirmation() bool {
	return confirmRe.MatchString(n.Text)
}
