package questiongen

// RepairPolicy rewrites a prompt after the model's response failed the
// question contract. failure is the contract error of the failed attempt.
type RepairPolicy interface {
	Repair(prompt string, failure error) string
}

// Reinforce appends Clause to the prompt on a new line.
type Reinforce struct {
	Clause string
}

func (r Reinforce) Repair(prompt string, _ error) string {
	return prompt + "\n" + r.Clause
}

// DefaultRepair asks the model again for bare JSON.
var DefaultRepair RepairPolicy = Reinforce{Clause: "Return ONLY valid minified JSON."}

// RepairFunc adapts a function to RepairPolicy.
type RepairFunc func(prompt string, failure error) string

func (f RepairFunc) Repair(prompt string, failure error) string {
	return f(prompt, failure)
}
