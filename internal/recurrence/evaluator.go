package recurrence

// Evaluator computes the recurrence result for a parameter, reusing one
// pre-allocated table between calls. An Evaluator is not safe for
// concurrent use.
type Evaluator struct {
	table *Table
}

// NewEvaluator returns an Evaluator with its table allocated.
func NewEvaluator() *Evaluator {
	return &Evaluator{table: newTable()}
}

// Evaluate returns the value at (Depth, 1) for parameter c.
// The reused table is fully rewritten before it is read.
func (e *Evaluator) Evaluate(c int) (int, error) {
	if err := e.table.fill(c); err != nil {
		return 0, err
	}
	return e.table.Result(), nil
}

// Evaluate builds a fresh table for c and returns its value at (Depth, 1).
func Evaluate(c int) (int, error) {
	t, err := Build(c)
	if err != nil {
		return 0, err
	}
	return t.Result(), nil
}
