package prompt

import "fmt"

// Script is a Prompter that replays queued answers. Test-only helper
// for exercising the interactive flow without a terminal.
type Script struct {
	Inputs   []string
	Confirms []bool
}

// Input pops the next queued string answer.
func (s *Script) Input(title, placeholder string) (string, error) {
	if len(s.Inputs) == 0 {
		return "", fmt.Errorf("no scripted input for %q", title)
	}
	answer := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	if answer == "" {
		answer = placeholder
	}
	return answer, nil
}

// Confirm pops the next queued boolean answer.
func (s *Script) Confirm(title string) (bool, error) {
	if len(s.Confirms) == 0 {
		return false, fmt.Errorf("no scripted confirmation for %q", title)
	}
	answer := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return answer, nil
}
