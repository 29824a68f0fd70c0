// Package prompt implements the terminal confirmation asked before
// handing a log file to an external viewer.
package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/manifoldco/promptui"
)

var pathStyle = lipgloss.NewStyle().Bold(true)

// Interpret classifies a confirmation answer. An empty answer counts as
// yes; this matches what users of the original tooling rely on, so it
// stays even though it reads like an accident.
func Interpret(answer string) (ok, valid bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y":
		return true, true
	case "n":
		return false, true
	}
	return false, false
}

// Terminal confirms viewer hand-off on an interactive terminal,
// re-prompting until the answer is y, n, or empty.
type Terminal struct{}

func (Terminal) Confirm(command, path string) (bool, error) {
	p := promptui.Prompt{
		Label: fmt.Sprintf("open %s with %s? [Y/n]", pathStyle.Render(path), command),
		Validate: func(in string) error {
			if _, valid := Interpret(in); !valid {
				return fmt.Errorf("answer y or n")
			}
			return nil
		},
	}
	answer, err := p.Run()
	if err != nil {
		return false, err
	}
	ok, _ := Interpret(answer)
	return ok, nil
}
