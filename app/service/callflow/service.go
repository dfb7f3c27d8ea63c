package callflow

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/do"

	"shopbot/app/util/textnorm"
)

const greetingMessage = "Bonjour, vous êtes bien chez Martin Plomberie ! Martin est actuellement sur un chantier, mais je suis son assistant. Comment puis-je vous aider ?"

const farewellMessage = "Merci pour votre appel. Martin va vous rappeler très vite. Bonne journée !"

// Service is the plumber voice-demo dialogue: a linear slot sequence
// (problem, name, address, phone) with price and availability questions
// answerable from any state. It is a pure function of the utterance, the
// current state and the collected slots; the caller threads both between
// turns.
type Service struct{}

func New(_ *do.Injector) (*Service, error) {
	return &Service{}, nil
}

// Greeting opens a call. The caller should store StateWaitingProblem as
// the state to resume from.
func (s *Service) Greeting() Turn {
	return Turn{
		Response: greetingMessage,
		Next:     StateWaitingProblem,
	}
}

// Respond advances the conversation by one user utterance.
func (s *Service) Respond(utterance string, state State, slots Slots) Turn {
	folded := strings.TrimSpace(textnorm.Fold(utterance))

	if state == StateIdle || state == "" {
		turn := s.Greeting()
		turn.Slots = slots
		return turn
	}

	if state == StateEnded {
		return Turn{Response: farewellMessage, Next: StateEnded, Slots: slots}
	}

	// Price and availability questions are answerable anywhere without
	// losing what has been collected so far.
	if priceRe.MatchString(folded) {
		next, question := nextSlotPrompt(slots)
		return Turn{
			Response: "Martin préfère se déplacer et voir la situation avant de vous donner un tarif précis. Il vous rappellera avec un devis adapté. " + question,
			Next:     next,
			Slots:    slots,
		}
	}

	if availabilityRe.MatchString(folded) {
		next, question := nextSlotPrompt(slots)
		return Turn{
			Response: "Martin rappelle toujours dans la journée, et il se déplace très rapidement quand c'est nécessaire. " + question,
			Next:     next,
			Slots:    slots,
		}
	}

	switch state {
	case StateGreeting, StateWaitingProblem:
		return s.collectProblem(utterance, folded, slots)
	case StateClarifying:
		return s.clarifyProblem(utterance, folded, slots)
	case StateWaitingName:
		return s.collectName(utterance, folded, slots)
	case StateWaitingAddress:
		return s.collectAddress(utterance, folded, slots)
	case StateWaitingPhone:
		return s.collectPhone(utterance, folded, slots)
	}

	return Turn{Response: farewellMessage, Next: StateEnded, Slots: slots}
}

func (s *Service) collectProblem(raw, folded string, slots Slots) Turn {
	if isBareGreeting(folded) {
		return Turn{
			Response: "Bonjour ! Dites-moi ce qui vous arrive, je transmettrai tout à Martin.",
			Next:     StateWaitingProblem,
			Slots:    slots,
		}
	}

	if utf8.RuneCountInString(folded) < 3 {
		return Turn{
			Response: "Excusez-moi, je n'ai pas bien compris. Pouvez-vous me décrire votre problème ?",
			Next:     StateWaitingProblem,
			Slots:    slots,
		}
	}

	problem, known := classifyProblem(folded)
	slots.Problem = problem

	if isUrgent(folded) {
		slots.Urgent = true
	}

	if !known {
		return Turn{
			Response: "D'accord. Pouvez-vous m'en dire un peu plus ? Par exemple, est-ce une fuite, quelque chose de bouché, un souci de chauffe-eau ?",
			Next:     StateClarifying,
			Slots:    slots,
		}
	}

	response := fmt.Sprintf("D'accord, je note %s. ", problem)
	if slots.Urgent {
		response += "Je comprends que c'est urgent. Si possible, coupez l'arrivée d'eau en attendant. Martin va vous rappeler en priorité. "
	}
	response += "Quel est votre nom, s'il vous plaît ?"

	return Turn{Response: response, Next: StateWaitingName, Slots: slots}
}

func (s *Service) clarifyProblem(raw, folded string, slots Slots) Turn {
	if problem, known := classifyProblem(folded); known {
		slots.Problem = problem
	} else if strings.TrimSpace(raw) != "" {
		// Keep the caller's own words rather than looping on the question.
		slots.Problem = "un problème (" + strings.TrimSpace(raw) + ")"
	}

	if isUrgent(folded) {
		slots.Urgent = true
	}

	response := fmt.Sprintf("Très bien, je note %s. ", slots.Problem)
	if slots.Urgent {
		response += "Martin va vous rappeler en priorité. "
	}
	response += "Quel est votre nom, s'il vous plaît ?"

	return Turn{Response: response, Next: StateWaitingName, Slots: slots}
}

func (s *Service) collectName(raw, folded string, slots Slots) Turn {
	if utf8.RuneCountInString(folded) < 2 {
		return Turn{
			Response: "Excusez-moi, pouvez-vous me répéter votre nom ?",
			Next:     StateWaitingName,
			Slots:    slots,
		}
	}

	slots.Name = titleCaseName(stripFillers(raw, nameFillers))

	return Turn{
		Response: fmt.Sprintf("Merci %s. Et quelle est votre adresse pour l'intervention ?", slots.Name),
		Next:     StateWaitingAddress,
		Slots:    slots,
	}
}

func (s *Service) collectAddress(raw, folded string, slots Slots) Turn {
	if utf8.RuneCountInString(folded) < 5 {
		return Turn{
			Response: "Pouvez-vous me donner votre adresse complète, s'il vous plaît ?",
			Next:     StateWaitingAddress,
			Slots:    slots,
		}
	}

	slots.Address = stripFillers(raw, addressFillers)

	return Turn{
		Response: "Très bien. Et à quel numéro Martin peut-il vous rappeler ?",
		Next:     StateWaitingPhone,
		Slots:    slots,
	}
}

func (s *Service) collectPhone(raw, folded string, slots Slots) Turn {
	if wantsSameNumber(folded) {
		slots.Phone = "ce numéro"
	} else {
		slots.Phone = strings.TrimSpace(raw)
	}

	return Turn{Response: recap(slots), Next: StateEnded, Slots: slots}
}

// recap is the single externally meaningful result of a call: every
// collected field read back deterministically.
func recap(slots Slots) string {
	problem := slots.Problem
	if problem == "" {
		problem = "votre demande"
	}

	urgencyText := " dans les plus brefs délais"
	if slots.Urgent {
		urgencyText = " en priorité"
	}

	response := fmt.Sprintf("Parfait, j'ai bien tout noté. %s, %s, au %s. Martin va vous rappeler%s au %s. ",
		slots.Name, problem, slots.Address, urgencyText, slots.Phone)
	if slots.Urgent {
		response += "En attendant, pensez bien à couper l'arrivée d'eau si c'est possible. "
	}
	response += "Bonne journée !"

	return response
}

// nextSlotPrompt returns the first slot still missing, in collection
// order, together with the question that asks for it. Used after a global
// interrupt so the conversation resumes where it left off.
func nextSlotPrompt(slots Slots) (State, string) {
	switch {
	case slots.Name == "":
		return StateWaitingName, "Quel est votre nom pour que je lui transmette ?"
	case slots.Address == "":
		return StateWaitingAddress, "Quelle est votre adresse pour l'intervention ?"
	default:
		return StateWaitingPhone, "Et à quel numéro peut-il vous rappeler ?"
	}
}
