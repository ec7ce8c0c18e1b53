package console

import "charm.land/lipgloss/v2"

var (
	primary = lipgloss.Color("#8B5CF6")
	accent  = lipgloss.Color("#F97316")
	success = lipgloss.Color("#22C55E")
	errorC  = lipgloss.Color("#F43F5E")
	dim     = lipgloss.Color("#94A3B8")
)

// paint renders text in a style; plain output uses the identity.
type paint func(string) string

func (p paint) Render(s string) string { return p(s) }

type styles struct {
	title   paint
	heading paint
	letter  paint
	body    paint
	prompt  paint
	notice  paint
	warn    paint
}

func use(st lipgloss.Style) paint {
	return func(s string) string { return st.Render(s) }
}

func newStyles(styled bool) styles {
	if !styled {
		plain := paint(func(s string) string { return s })
		return styles{plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title:   use(lipgloss.NewStyle().Bold(true).Foreground(primary)),
		heading: use(lipgloss.NewStyle().Bold(true).Foreground(accent)),
		letter:  use(lipgloss.NewStyle().Bold(true).Foreground(primary)),
		body:    func(s string) string { return s },
		prompt:  use(lipgloss.NewStyle().Foreground(dim)),
		notice:  use(lipgloss.NewStyle().Foreground(success)),
		warn:    use(lipgloss.NewStyle().Bold(true).Foreground(errorC)),
	}
}
