package sweep

import "fmt"

// floatSlack absorbs accumulation error when stepping a float range.
const floatSlack = 1e-9

// Tasks expands the grid into its (k, removal) cross product, k-major:
// the task order is the dispatch order and the error-reporting order.
func (g Grid) Tasks() []Task {
	var tasks []Task
	for k := g.KStart; k <= g.KEnd; k += g.KStep {
		for j := 0; ; j++ {
			pct := g.RemoveStart + float64(j)*g.RemoveStep
			if pct > g.RemoveEnd+floatSlack {
				break
			}
			tasks = append(tasks, Task{K: k, RemovePercent: pct})
			if g.RemoveStep <= 0 {
				break
			}
		}
		if g.KStep <= 0 {
			break
		}
	}

	return tasks
}

// Validate rejects ranges that cannot be expanded: a k span needs a
// positive KStep, a removal span needs a positive RemoveStep.
func (g Grid) Validate() error {
	if g.KEnd > g.KStart && g.KStep <= 0 {
		return fmt.Errorf("%w: k range %d..%d needs a positive step", ErrBadGrid, g.KStart, g.KEnd)
	}
	if g.RemoveEnd > g.RemoveStart && g.RemoveStep <= 0 {
		return fmt.Errorf("%w: removal range %g..%g needs a positive step", ErrBadGrid, g.RemoveStart, g.RemoveEnd)
	}

	return nil
}
