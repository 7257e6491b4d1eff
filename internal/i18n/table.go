package i18n

import "github.com/robalobadob/hangman/internal/language"

// Keys shared by the presentation layer.
const (
	KeyTitle             = "title"
	KeyPlay              = "play"
	KeyBack              = "back"
	KeyReset             = "reset"
	KeyWinMessage        = "win_message"
	KeyLoseMessage       = "lose_message"
	KeyWrongGuesses      = "wrong_guesses"
	KeyRemainingLetters  = "remaining_letters"
	KeyRemainingAttempts = "remaining_attempts"
	KeyWinPopupTitle     = "win_popup_title"
	KeyWinPopupMessage   = "win_popup_message"
	KeyLosePopupTitle    = "lose_popup_title"
	KeyLosePopupMessage  = "lose_popup_message"
	KeyOK                = "ok_button"
	KeyNextWord          = "next_word"
	KeyCurrentScore      = "current_score"
	KeyTryAgain          = "try_again"
	KeyFetchErrorTitle   = "fetch_error_title"
	KeyFetchErrorMessage = "fetch_error_message"
)

// DefaultTable returns a fresh copy of the built-in strings.
// Positional verbs: win_popup_message (points, total), lose_popup_message (word, score).
func DefaultTable() Table {
	return Table{
		language.English: {
			KeyTitle:             "ENGLISH",
			KeyPlay:              "PLAY",
			KeyBack:              "Back",
			KeyReset:             "Reset Game",
			KeyWinMessage:        "You Won!",
			KeyLoseMessage:       "Game Over!",
			KeyWrongGuesses:      "Wrong Guesses:",
			KeyRemainingLetters:  "Remaining Letters:",
			KeyRemainingAttempts: "Attempts left: %d",
			KeyWinPopupTitle:     "Congratulations!",
			KeyWinPopupMessage:   "You guessed the word correctly!\nPoints earned: %d\nTotal score: %d",
			KeyLosePopupTitle:    "Game Over",
			KeyLosePopupMessage:  "The word was: %s\nYour score: %d",
			KeyOK:                "OK",
			KeyNextWord:          "Next Word",
			KeyCurrentScore:      "Score: %d",
			KeyTryAgain:          "Try Again",
			KeyFetchErrorTitle:   "Error",
			KeyFetchErrorMessage: "Failed to fetch a new word. Please check your connection and try again.",
		},
		language.Spanish: {
			KeyTitle:             "ESPAÑOL",
			KeyPlay:              "JUGAR",
			KeyBack:              "Volver",
			KeyReset:             "Reiniciar",
			KeyWinMessage:        "¡Has Ganado!",
			KeyLoseMessage:       "¡Juego Terminado!",
			KeyWrongGuesses:      "Errores:",
			KeyRemainingLetters:  "Letras restantes:",
			KeyRemainingAttempts: "Intentos restantes: %d",
			KeyWinPopupTitle:     "¡Felicidades!",
			KeyWinPopupMessage:   "¡Adivinaste la palabra correctamente!\nPuntos ganados: %d\nPuntuación total: %d",
			KeyLosePopupTitle:    "Juego Terminado",
			KeyLosePopupMessage:  "La palabra era: %s\nTu puntuación: %d",
			KeyOK:                "OK",
			KeyNextWord:          "Siguiente Palabra",
			KeyCurrentScore:      "Puntuación: %d",
			KeyTryAgain:          "Intentar otra vez",
		},
		language.Italian: {
			KeyTitle:             "ITALIANO",
			KeyPlay:              "GIOCA",
			KeyBack:              "Indietro",
			KeyReset:             "Ricomincia",
			KeyWinMessage:        "Hai Vinto!",
			KeyLoseMessage:       "Partita Terminata!",
			KeyWrongGuesses:      "Errori:",
			KeyRemainingLetters:  "Lettere rimanenti:",
			KeyRemainingAttempts: "Tentativi rimasti: %d",
			KeyWinPopupTitle:     "Congratulazioni!",
			KeyWinPopupMessage:   "Hai indovinato correttamente la parola!\nPunti guadagnati: %d\nPunteggio totale: %d",
			KeyLosePopupTitle:    "Partita Terminata",
			KeyLosePopupMessage:  "La parola era: %s\nIl tuo punteggio: %d",
			KeyOK:                "OK",
			KeyNextWord:          "Prossima Parola",
			KeyCurrentScore:      "Punteggio: %d",
			KeyTryAgain:          "Riprova",
		},
		language.German: {
			KeyTitle:             "DEUTSCH",
			KeyPlay:              "SPIELEN",
			KeyBack:              "Zurück",
			KeyReset:             "Neustart",
			KeyWinMessage:        "Du hast gewonnen!",
			KeyLoseMessage:       "Spiel vorbei!",
			KeyWrongGuesses:      "Falsche Buchstaben:",
			KeyRemainingLetters:  "Verbleibende Buchstaben:",
			KeyRemainingAttempts: "Verbleibende Versuche: %d",
			KeyWinPopupTitle:     "Glückwunsch!",
			KeyWinPopupMessage:   "Du hast das Wort richtig erraten!\nPunkte erhalten: %d\nGesamtpunktzahl: %d",
			KeyLosePopupTitle:    "Spiel vorbei",
			KeyLosePopupMessage:  "Das Wort war: %s\nDeine Punktzahl: %d",
			KeyOK:                "OK",
			KeyNextWord:          "Nächstes Wort",
			KeyCurrentScore:      "Punktzahl: %d",
			KeyTryAgain:          "Versuchen Sie es erneut",
		},
		language.French: {
			KeyTitle:             "FRANÇAIS",
			KeyPlay:              "JOUER",
			KeyBack:              "Retour",
			KeyReset:             "Recommencer",
			KeyWinMessage:        "Vous avez gagné!",
			KeyLoseMessage:       "Partie terminée!",
			KeyWrongGuesses:      "Erreurs:",
			KeyRemainingLetters:  "Lettres restantes:",
			KeyRemainingAttempts: "Essais restants: %d",
			KeyWinPopupTitle:     "Félicitations!",
			KeyWinPopupMessage:   "Vous avez deviné le mot correctement!\nPoints gagnés: %d\nScore total: %d",
			KeyLosePopupTitle:    "Partie Terminée",
			KeyLosePopupMessage:  "Le mot était: %s\nVotre score: %d",
			KeyOK:                "OK",
			KeyNextWord:          "Mot Suivant",
			KeyCurrentScore:      "Score: %d",
			KeyTryAgain:          "Essayer à nouveau",
		},
		language.PortugueseBR: {
			KeyTitle:             "PORTUGUÊS",
			KeyPlay:              "JOGAR",
			KeyBack:              "Voltar",
			KeyReset:             "Reiniciar",
			KeyWinMessage:        "Você Venceu!",
			KeyLoseMessage:       "Fim de Jogo!",
			KeyWrongGuesses:      "Erros:",
			KeyRemainingLetters:  "Letras restantes:",
			KeyRemainingAttempts: "Tentativas restantes: %d",
			KeyWinPopupTitle:     "Parabéns!",
			KeyWinPopupMessage:   "Você adivinhou a palavra corretamente!\nPontos ganhos: %d\nPontuação total: %d",
			KeyLosePopupTitle:    "Fim de Jogo",
			KeyLosePopupMessage:  "A palavra era: %s\nSua pontuação: %d",
			KeyOK:                "OK",
			KeyNextWord:          "Próxima Palavra",
			KeyCurrentScore:      "Pontuação: %d",
			KeyTryAgain:          "Tente novamente",
		},
	}
}
