// Package prompt collects answers from the user: free text, a choice from a
// list, or a yes/no confirmation.
package prompt

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user aborts a prompt (Ctrl-C).
var ErrAborted = errors.New("prompt aborted")

// Prompter asks one question at a time. Select returns the index of the chosen option.
type Prompter interface {
	Input(ctx context.Context, title string) (string, error)
	Select(ctx context.Context, title string, options []string) (int, error)
	Confirm(ctx context.Context, title string) (bool, error)
}

// HuhPrompter renders prompts with huh forms.
type HuhPrompter struct {
	theme      *huh.Theme
	accessible bool
}

// NewHuhPrompter creates a prompter. Accessible mode replaces the TUI with plain
// line-based questions, which also works when stdin is not a terminal.
func NewHuhPrompter(accessible bool) *HuhPrompter {
	return &HuhPrompter{
		theme:      huh.ThemeCharm(),
		accessible: accessible,
	}
}

func (p *HuhPrompter) Input(ctx context.Context, title string) (string, error) {
	var value string
	err := p.run(ctx, huh.NewInput().
		Title(title).
		Value(&value))
	return value, err
}

func (p *HuhPrompter) Select(ctx context.Context, title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("select: no options")
	}

	opts := make([]huh.Option[int], len(options))
	for i, label := range options {
		opts[i] = huh.NewOption(label, i)
	}

	var value int
	err := p.run(ctx, huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&value))
	return value, err
}

func (p *HuhPrompter) Confirm(ctx context.Context, title string) (bool, error) {
	var value bool
	err := p.run(ctx, huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value))
	return value, err
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
