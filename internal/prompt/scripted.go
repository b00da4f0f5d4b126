package prompt

import (
	"context"
	"fmt"
	"strings"
)

// Scripted answers prompts from a fixed list, in order. Select answers are
// matched against option labels. Used to drive the menu without a terminal.
type Scripted struct {
	answers []string
	// Asked records every prompt title in the order it was shown.
	Asked []string
}

// NewScripted creates a prompter that replays answers.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

// Remaining returns the number of unused answers.
func (s *Scripted) Remaining() int {
	return len(s.answers)
}

func (s *Scripted) next(title string) (string, error) {
	s.Asked = append(s.Asked, title)
	if len(s.answers) == 0 {
		return "", fmt.Errorf("no scripted answer for %q", title)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *Scripted) Input(_ context.Context, title string) (string, error) {
	return s.next(title)
}

func (s *Scripted) Select(_ context.Context, title string, options []string) (int, error) {
	answer, err := s.next(title)
	if err != nil {
		return 0, err
	}
	for i, label := range options {
		if label == answer {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q is not an option for %q (have: %s)", answer, title, strings.Join(options, ", "))
}

func (s *Scripted) Confirm(_ context.Context, title string) (bool, error) {
	answer, err := s.next(title)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a yes/no answer for %q", answer, title)
	}
}
