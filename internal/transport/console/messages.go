package console

import "fmt"

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

func introMessage() string {
	return "Time for some tic-tac-toe!"
}

func namePromptMessage(number int) string {
	return fmt.Sprintf("What's your name, player #%d?", number)
}

func markerPromptMessage() string {
	return "Pick 1 alphabet (A-Z) to represent youself."
}

func unavailableMarkerMessage(marker string) string {
	return "It cannot be " + marker
}

func inputErrorMessage() string {
	return colorRed + "Invalid input, please try again." + colorReset
}

func playerTurnMessage(name, marker string) string {
	return fmt.Sprintf("%s, enter 1-9 to place your %s.", name, marker)
}

func winnerMessage(name string) string {
	return name + " is the winner!"
}

func tieMessage() string {
	return "It's a tie."
}

func playAgainMessage() string {
	return "Play again? (Y/N)"
}

func farewellMessage() string {
	return "See you!"
}
