package callflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyProblem(t *testing.T) {
	cases := []struct {
		utterance string
		label     string
	}{
		{"ca coule sous l'evier de la cuisine", "une fuite d'eau"},
		{"ma canalisation est bouchee", "une canalisation bouchée"},
		{"le ballon ne chauffe plus", "un problème de chauffe-eau"},
		{"la chasse des toilettes fuit pas", "un problème de chasse d'eau"},
		{"le radiateur reste froid", "un problème de chauffage"},
		{"le mitigeur goutte", "un problème de robinet"},
		{"un raccord qui siffle", "un problème de tuyauterie"},
	}

	for _, c := range cases {
		label, known := classifyProblem(c.utterance)
		require.True(t, known, c.utterance)
		require.Equal(t, c.label, label, c.utterance)
	}

	_, known := classifyProblem("je veux juste des infos")
	require.False(t, known)
}

func TestIsUrgent(t *testing.T) {
	require.True(t, isUrgent("c'est urgent"))
	require.True(t, isUrgent("il y a de l'eau partout"))
	require.False(t, isUrgent("rien de grave"))
}

func TestStripFillers(t *testing.T) {
	require.Equal(t, "Bernard", stripFillers("Je m'appelle Bernard", nameFillers))
	require.Equal(t, "Bernard", stripFillers("je m’appelle Bernard", nameFillers))
	require.Equal(t, "Sophie Durand", stripFillers("moi c'est Sophie Durand", nameFillers))
	require.Equal(t, "Bernard", stripFillers("Bernard", nameFillers))
	require.Equal(t, "5 rue des Lilas", stripFillers("j'habite au 5 rue des Lilas", addressFillers))
}

func TestTitleCaseName(t *testing.T) {
	require.Equal(t, "Martin Dupont", titleCaseName("MARTIN DUPONT"))
	require.Equal(t, "Martin Dupont", titleCaseName("  martin dupont "))
}

func TestWantsSameNumber(t *testing.T) {
	require.True(t, wantsSameNumber("sur le meme numero"))
	require.True(t, wantsSameNumber("oui celui-ci"))

	// A literal number wins over an affirmative opener, spaced or not.
	require.False(t, wantsSameNumber("oui le 0612345678"))
	require.False(t, wantsSameNumber("oui  c'est le 06 12 34 56 78"))
	require.False(t, wantsSameNumber("le 06 12 34 56 78"))
}

func TestHasLiteralNumber(t *testing.T) {
	require.True(t, hasLiteralNumber("0612345678"))
	require.True(t, hasLiteralNumber("06 12 34 56 78"))

	// A lone short figure is not a phone number.
	require.False(t, hasLiteralNumber("au 12"))
	require.False(t, hasLiteralNumber("ce numero"))
}

func TestPriceAndAvailabilityPatterns(t *testing.T) {
	require.True(t, priceRe.MatchString("c'est combien"))
	require.True(t, priceRe.MatchString("ca va couter cher"))
	require.True(t, priceRe.MatchString("il faut un devis"))

	// "cout" inside "ecouter" is not a price question.
	require.False(t, priceRe.MatchString("vous pouvez m'ecouter"))

	require.True(t, availabilityRe.MatchString("il peut passer quand"))
	require.True(t, availabilityRe.MatchString("vous etes dispo demain"))

	// "rappeler" alone is the phone prompt's own wording, not a question.
	require.False(t, availabilityRe.MatchString("il peut me rappeler au 0612345678"))
}
