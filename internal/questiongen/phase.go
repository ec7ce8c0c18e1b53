package questiongen

import "fmt"

// Phase is a stage of the interview.
type Phase int

const (
	SkillDetermination Phase = iota
	Numeracy
	Literacy
	Complete
)

var phaseNames = [...]string{
	SkillDetermination: "skill_determination",
	Numeracy:           "numeracy",
	Literacy:           "literacy",
	Complete:           "complete",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// LastQuestion returns the number of the final question of the phase, used
// as the running counter's denominator in prompts. Complete returns 0.
func (p Phase) LastQuestion() int {
	switch p {
	case SkillDetermination:
		return 5
	case Numeracy:
		return 10
	case Literacy:
		return 15
	}
	return 0
}

// ParsePhase maps a phase name back to its Phase.
func ParsePhase(s string) (Phase, error) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}
