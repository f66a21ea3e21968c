// Package tape replays key tapes: text files listing calculator keys in the order they
// are pressed.
//
// Each line holds zero or more whitespace separated key tokens (see calculator.ParseKey).
// A # starts a comment that runs to the end of the line. For example:
//
//	# 2 + 3 + 4 folds to 9
//	2 + 3
//	+ 4 =
package tape

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/spf13/afero"
)

// Step is one replayed key and the display it left behind
type Step struct {
	Line    int
	Key     calculator.Key
	Display string
}

// Run replays the tape at path on a fresh calculator, writing one "key<TAB>display" line
// to w per key. It stops at the first key that fails and returns the steps replayed so far.
func Run(fs afero.Fs, path string, w io.Writer) ([]Step, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tape: %w", err)
	}
	defer f.Close()

	steps, err := Replay(calculator.New(), f, func(step Step) error {
		_, err := fmt.Fprintf(w, "%s\t%s\n", step.Key, step.Display)
		return err
	})
	if err != nil {
		return steps, fmt.Errorf("%s: %w", path, err)
	}
	return steps, nil
}

// Replay presses the keys read from r on calc, calling onStep after each key
func Replay(calc *calculator.Calculator, r io.Reader, onStep func(Step) error) ([]Step, error) {
	var steps []Step

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line, _, _ := strings.Cut(scanner.Text(), "#")

		for _, token := range strings.Fields(line) {
			key, err := calculator.ParseKey(token)
			if err != nil {
				return steps, fmt.Errorf("line %d: %w", lineNum, err)
			}
			if err := calc.Press(key); err != nil {
				return steps, fmt.Errorf("line %d: key %s: %w", lineNum, key, err)
			}

			step := Step{Line: lineNum, Key: key, Display: calc.ReadScreen()}
			steps = append(steps, step)
			if onStep != nil {
				if err := onStep(step); err != nil {
					return steps, err
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return steps, fmt.Errorf("failed to read tape: %w", err)
	}
	return steps, nil
}
