// play.go
//
// Interactive terminal assistant: the thin driver loop over the solver
// core. Each of the six attempts prints the highest-ranked words for the
// current candidate set, then reads the played guess and the puzzle's
// color-coded reply from stdin and narrows the set.
//
// All puzzle semantics live in internal/solver; this file is presentation
// only.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lexio/wordle-assist/internal/solver"
)

// maxAttempts is the puzzle's guess budget.
const maxAttempts = 6

// runPlay drives one solver session against stdin/stdout.
func runPlay(dictionary []string, oracle solver.Commonality, k int) error {
	sess := solver.NewSession(dictionary)
	reader := bufio.NewReader(os.Stdin)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Printf("\nAttempt %d with a possible %d words, the best words to play are:\n\n", attempt, len(sess.Candidates))
		fmt.Println("   Word    Score   Commonality")
		fmt.Println("   ===========================")
		for _, sw := range sess.Suggest(oracle, k) {
			fmt.Printf(" - %s | %6.1f | %.1f\n", sw.Word, sw.Score, oracle.Score(sw.Word))
		}

		guess, err := prompt(reader, "\nYour guess: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var fb solver.Feedback
		for {
			label := "Response from the puzzle: "
			if attempt == 1 {
				label = "Type the color coded reply from the puzzle\n - for grey\n y for yellow\n g for green\n\nResponse from the puzzle: "
			}
			raw, err := prompt(reader, "\n"+label)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			fb, err = solver.ParseFeedback(raw)
			if err == nil {
				break
			}
			fmt.Println(err)
		}

		remaining, err := sess.Apply(guess, fb)
		if err != nil {
			// Invalid guess: report and retry the same attempt.
			fmt.Println(err)
			attempt--
			continue
		}
		if fb.String() == "ggggg" {
			fmt.Printf("\nSolved in %d attempts.\n", attempt)
			return nil
		}
		if remaining == 0 {
			fmt.Println("\nNo candidates remain. The feedback may be contradictory, or the solution is not in the word list.")
			return nil
		}
	}

	fmt.Println("\nSorry, out of attempts.")
	return nil
}

// prompt prints label and reads one trimmed line. io.EOF ends the session
// quietly.
func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return "", io.EOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
