package callflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRespondFullCall(t *testing.T) {
	svc := &Service{}

	turn := svc.Respond("", StateIdle, Slots{})
	require.Equal(t, StateWaitingProblem, turn.Next)
	require.Contains(t, turn.Response, "Martin Plomberie")

	turn = svc.Respond("Bonjour, j'ai une fuite d'eau sous l'évier", turn.Next, turn.Slots)
	require.Equal(t, StateWaitingName, turn.Next)
	require.Equal(t, "une fuite d'eau", turn.Slots.Problem)
	require.Contains(t, turn.Response, "votre nom")

	turn = svc.Respond("Je m'appelle martin dupont", turn.Next, turn.Slots)
	require.Equal(t, StateWaitingAddress, turn.Next)
	require.Equal(t, "Martin Dupont", turn.Slots.Name)
	require.Contains(t, turn.Response, "Merci Martin Dupont")

	turn = svc.Respond("12 rue de la Paix", turn.Next, turn.Slots)
	require.Equal(t, StateWaitingPhone, turn.Next)
	require.Equal(t, "12 rue de la Paix", turn.Slots.Address)

	turn = svc.Respond("Sur le même numéro", turn.Next, turn.Slots)
	require.Equal(t, StateEnded, turn.Next)
	require.Equal(t, "ce numéro", turn.Slots.Phone)
	require.Contains(t, turn.Response, "Martin Dupont")
	require.Contains(t, turn.Response, "une fuite d'eau")
	require.Contains(t, turn.Response, "12 rue de la Paix")
	require.Contains(t, turn.Response, "dans les plus brefs délais")

	// Anything said after the recap only gets the farewell.
	turn = svc.Respond("allô ?", turn.Next, turn.Slots)
	require.Equal(t, StateEnded, turn.Next)
	require.Contains(t, turn.Response, "Bonne journée")
}

func TestRespondFromGreetingState(t *testing.T) {
	svc := &Service{}

	turn := svc.Respond("J'ai une fuite", StateGreeting, Slots{})
	require.Equal(t, StateWaitingName, turn.Next)

	turn = svc.Respond("Martin", turn.Next, turn.Slots)
	turn = svc.Respond("12 rue de Paris", turn.Next, turn.Slots)
	turn = svc.Respond("même numéro", turn.Next, turn.Slots)

	require.Equal(t, StateEnded, turn.Next)
	require.Contains(t, turn.Slots.Problem, "fuite")
	require.Equal(t, "Martin", turn.Slots.Name)
	require.Equal(t, "12 rue de Paris", turn.Slots.Address)
	require.Equal(t, "ce numéro", turn.Slots.Phone)
}

func TestRespondUrgentProblem(t *testing.T) {
	svc := &Service{}

	turn := svc.Respond("Il y a de l'eau partout, c'est urgent !", StateWaitingProblem, Slots{})
	require.Equal(t, StateWaitingName, turn.Next)
	require.True(t, turn.Slots.Urgent)
	require.Contains(t, turn.Response, "coupez l'arrivée d'eau")

	slots := turn.Slots
	slots.Name = "Durand"
	slots.Address = "3 avenue Foch"

	turn = svc.Respond("0612345678", StateWaitingPhone, slots)
	require.Equal(t, "0612345678", turn.Slots.Phone)
	require.Contains(t, turn.Response, "en priorité")
	require.Contains(t, turn.Response, "couper l'arrivée d'eau")
}

func TestRespondClarifiesUnknownProblem(t *testing.T) {
	svc := &Service{}

	turn := svc.Respond("Mon lavabo fait un bruit bizarre", StateWaitingProblem, Slots{})
	require.Equal(t, StateClarifying, turn.Next)

	turn = svc.Respond("C'est le robinet je crois", turn.Next, turn.Slots)
	require.Equal(t, StateWaitingName, turn.Next)
	require.Equal(t, "un problème de robinet", turn.Slots.Problem)
}

func TestRespondClarifyKeepsCallerWords(t *testing.T) {
	svc := &Service{}

	turn := svc.Respond("Rien de spécial", StateClarifying, Slots{})
	require.Equal(t, StateWaitingName, turn.Next)
	require.Equal(t, "un problème (Rien de spécial)", turn.Slots.Problem)
}

func TestRespondPriceInterrupt(t *testing.T) {
	svc := &Service{}

	// Before anything is collected the flow resumes at the name.
	turn := svc.Respond("C'est combien ?", StateWaitingProblem, Slots{})
	require.Equal(t, StateWaitingName, turn.Next)
	require.Contains(t, turn.Response, "devis adapté")
	require.Contains(t, turn.Response, "votre nom")

	// Collected slots survive the interrupt and the next question follows.
	slots := Slots{Problem: "une fuite d'eau", Name: "Martin"}
	turn = svc.Respond("Et ça coûte combien ?", StateWaitingAddress, slots)
	require.Equal(t, StateWaitingAddress, turn.Next)
	require.Equal(t, slots, turn.Slots)
	require.Contains(t, turn.Response, "votre adresse")
}

func TestRespondAvailabilityInterrupt(t *testing.T) {
	svc := &Service{}

	slots := Slots{Problem: "un problème de chauffage", Name: "Petit", Address: "8 rue Verte"}
	turn := svc.Respond("Il peut passer quand ?", StateWaitingPhone, slots)

	require.Equal(t, StateWaitingPhone, turn.Next)
	require.Equal(t, slots, turn.Slots)
	require.Contains(t, turn.Response, "dans la journée")
	require.Contains(t, turn.Response, "quel numéro")
}

func TestRespondPhoneEchoingPromptWording(t *testing.T) {
	svc := &Service{}

	// The prompt says "vous rappeler"; echoing it while dictating the
	// number must store the number, not loop on an interrupt.
	slots := Slots{Problem: "une fuite d'eau", Name: "Martin", Address: "12 rue de Paris"}
	turn := svc.Respond("Il peut me rappeler au 0612345678", StateWaitingPhone, slots)

	require.Equal(t, StateEnded, turn.Next)
	require.Contains(t, turn.Slots.Phone, "0612345678")
}

func TestRespondSpacedNumberBeatsAffirmation(t *testing.T) {
	svc := &Service{}

	slots := Slots{Problem: "une fuite d'eau", Name: "Martin", Address: "12 rue de Paris"}
	turn := svc.Respond("Oui, c'est le 06 12 34 56 78", StateWaitingPhone, slots)

	require.Equal(t, StateEnded, turn.Next)
	require.Contains(t, turn.Slots.Phone, "06 12 34 56 78")
	require.NotEqual(t, "ce numéro", turn.Slots.Phone)
}

func TestRespondBareGreeting(t *testing.T) {
	svc := &Service{}

	turn := svc.Respond("Bonjour", StateWaitingProblem, Slots{})
	require.Equal(t, StateWaitingProblem, turn.Next)
	require.Contains(t, turn.Response, "ce qui vous arrive")

	// A greeting carrying a real problem is not a bare greeting.
	turn = svc.Respond("Bonjour, mes WC sont bouchés", StateWaitingProblem, Slots{})
	require.Equal(t, StateWaitingName, turn.Next)
}

func TestRespondTooShortAnswers(t *testing.T) {
	svc := &Service{}

	turn := svc.Respond("eu", StateWaitingProblem, Slots{})
	require.Equal(t, StateWaitingProblem, turn.Next)

	turn = svc.Respond("m", StateWaitingName, Slots{Problem: "une fuite d'eau"})
	require.Equal(t, StateWaitingName, turn.Next)

	// Length is counted in runes, not bytes.
	turn = svc.Respond("œ", StateWaitingName, Slots{Problem: "une fuite d'eau"})
	require.Equal(t, StateWaitingName, turn.Next)

	turn = svc.Respond("ici", StateWaitingAddress, Slots{Name: "Martin"})
	require.Equal(t, StateWaitingAddress, turn.Next)
}

func TestRespondEmptyStateOpensCall(t *testing.T) {
	svc := &Service{}

	turn := svc.Respond("peu importe", "", Slots{Name: "Martin"})
	require.Equal(t, StateWaitingProblem, turn.Next)
	require.Equal(t, "Martin", turn.Slots.Name)
}
