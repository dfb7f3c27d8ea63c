package salon

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/elliotchance/pie/v2"

	"shopbot/app/util/textnorm"
)

var (
	bookingCtxRe = regexp.MustCompile(`reserver|rdv|rendez|creneau|reserve|book`)
	hairTopicRe  = regexp.MustCompile(`cheveu|cheveux|tete|hair`)
	priceTopicRe = regexp.MustCompile(`cher|argent|economie|promo|promotion|reduc|offre|solde`)
	helpTopicRe  = regexp.MustCompile(`aide|aider|besoin|question|info|information|renseign`)
)

// Engine is the scripted reply engine for the salon chat. It is stateless:
// the caller hands it the latest message, the concatenated conversation and
// the prior assistant replies on every call. The only non-determinism is
// the injected random source used for reply variety.
type Engine struct {
	rng *rand.Rand
}

func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Reply resolves a user message to a canned reply. Branches are tried in a
// fixed order: appointment extraction, confirmation in a booking context,
// the rule table, the day-without-time fallback, topic heuristics and
// finally the generic pool. Every input yields some reply.
func (e *Engine) Reply(lastMessage, contextText string, priorReplies []string) string {
	n := Normalize(lastMessage)

	if reply, ok := e.appointmentReply(n); ok {
		return reply
	}

	if n.IsConfirmation() && bookingCtxRe.MatchString(textnorm.Fold(contextText)) {
		return "Parfait ! 🎉 Pour réserver votre créneau :\n\n📱 En ligne : eleganceparis.fr/rdv\n📞 Par téléphone : 01 42 XX XX XX\n\nVous avez une préférence de jour ou de coiffeur ? Je peux vous orienter !"
	}

	for _, rule := range rules {
		if rule.Keywords[0] == sentinelAppointment {
			continue
		}
		if !containsAny(n.Text, rule.Keywords) {
			continue
		}
		if containsAny(n.Text, rule.MustNotHave) {
			continue
		}
		return pickReply(e.rng, rule.Responses, priorReplies)
	}

	// A weekday without a time usually means an availability question.
	if day := n.Weekday(); day != "" && !n.HasTime() {
		if isClosedDay(day) {
			return fmt.Sprintf("Le salon est fermé le %s 😕 Nous sommes ouverts du mardi au samedi, de 9h à 19h. Un autre jour vous conviendrait ?", day)
		}
		return fmt.Sprintf("Oui, nous sommes ouverts le %s, de 9h à 19h ! 📅 Vous souhaitez réserver un créneau ? Dites-moi l'heure qui vous arrange et avec quel coiffeur si vous avez une préférence 😊", day)
	}

	switch {
	case hairTopicRe.MatchString(n.Text):
		return "Que ce soit pour une coupe, une coloration, un lissage ou un soin, on s'occupe de tout chez Élégance Paris ! ✂️ Qu'est-ce qui vous ferait plaisir ? Je peux vous donner les tarifs et vous aider à réserver."
	case priceTopicRe.MatchString(n.Text):
		return "Nos tarifs sont justes et transparents pour un salon de qualité au cœur de Paris 😊 La coupe homme démarre à 25€ et la coupe femme à 45€. On mise sur la qualité plutôt que le volume ! Voulez-vous voir la grille complète des tarifs ?"
	case helpTopicRe.MatchString(n.Text):
		return "Bien sûr, je suis là pour vous aider ! 😊 Je peux vous renseigner sur nos tarifs, nos horaires, notre équipe de coiffeurs, ou vous aider à prendre rendez-vous. Que souhaitez-vous savoir ?"
	}

	return pickReply(e.rng, genericFallbacks, priorReplies)
}

// appointmentReply handles messages carrying a concrete slot request: any
// pairing of day, time and stylist, or a confirmation alongside one of
// them. Closed days short-circuit without the booking call-to-action.
func (e *Engine) appointmentReply(n Normalized) (string, bool) {
	day := n.Weekday()
	timeTok := n.TimeToken()
	hasStaff := n.HasStaffMention()

	pairing := (day != "" && timeTok != "") ||
		(day != "" && hasStaff) ||
		(timeTok != "" && hasStaff) ||
		(n.IsConfirmation() && (day != "" || timeTok != "" || hasStaff))
	if !pairing {
		return "", false
	}

	if isClosedDay(day) {
		return fmt.Sprintf("Malheureusement, le salon est fermé le %s 😕 Nous sommes ouverts du mardi au samedi, de 9h à 19h. Souhaitez-vous réserver un autre jour ?", day), true
	}

	staffName := n.StaffName()

	var b strings.Builder
	b.WriteString("Parfait ! ")
	switch {
	case day != "" && timeTok != "" && staffName != "":
		fmt.Fprintf(&b, "Je note votre demande pour %s à %s avec %s ✨", weekdayTitles[day], timeTok, staffName)
	case day != "" && timeTok != "":
		fmt.Fprintf(&b, "Je note votre demande pour %s à %s ✨", weekdayTitles[day], timeTok)
	case day != "" && staffName != "":
		fmt.Fprintf(&b, "Je note votre demande pour %s avec %s ✨", weekdayTitles[day], staffName)
	case timeTok != "" && staffName != "":
		fmt.Fprintf(&b, "Je note votre demande à %s avec %s ✨", timeTok, staffName)
	default:
		b.WriteString("Je note votre demande ✨")
	}
	b.WriteString(bookingCTA)

	return b.String(), true
}

func containsAny(text string, keywords []string) bool {
	return pie.Any(keywords, func(kw string) bool {
		return strings.Contains(text, kw)
	})
}
