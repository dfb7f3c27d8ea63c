package textnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	require.Equal(t, "reservation ", Fold("Réservation!"))
	require.Equal(t, "c'est l'ete", Fold("C’est l’été"))
	require.Equal(t, "samedi a 14h30  ca marche ", Fold("Samedi à 14h30, ça marche?"))
}

func TestFoldIdempotent(t *testing.T) {
	inputs := []string{
		"Préférence de coiffeur ?",
		"Être à l'heure, c'est important !",
		"déjà plat",
	}

	for _, input := range inputs {
		once := Fold(input)
		require.Equal(t, once, Fold(once))
	}
}

func TestFoldKeepsDigitsAndApostrophes(t *testing.T) {
	require.Equal(t, "rdv a 9h ou 10 15", Fold("RDV à 9h ou 10:15"))
	require.Equal(t, "d'accord", Fold("D'accord"))
}
