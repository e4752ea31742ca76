// Package reorder works out how a host list has to change to follow a
// desired order. It does not touch the host; callers apply the result.
package reorder

// Move records a live item whose position changes.
type Move struct {
	Label string `json:"label"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

// Result is the outcome of Plan.
type Result struct {
	// Order is the complete host list after applying the plan.
	Order []string `json:"order"`
	// Placeholders are desired names that have no live item yet.
	Placeholders []string `json:"placeholders,omitempty"`
	// Moves lists every live item whose index differs in Order.
	Moves []Move `json:"moves,omitempty"`
}

// Changed reports whether applying the plan alters the host list.
func (r Result) Changed() bool {
	return len(r.Moves) > 0 || len(r.Placeholders) > 0
}

// Plan merges desired into live. Live items named in desired take over the
// slots those names occupied, in desired order, while live items missing
// from desired stay where they are. Duplicate names are matched in order
// of occurrence. A desired name with no live match becomes a placeholder
// inserted right after the desired name that precedes it.
func Plan(live, desired []string) Result {
	positions := make(map[string][]int, len(live))
	for i, label := range live {
		positions[label] = append(positions[label], i)
	}

	var (
		matched  []int
		leading  []string
		trailing = make(map[int][]string)
		res      Result
	)
	for _, name := range desired {
		if queue := positions[name]; len(queue) > 0 {
			matched = append(matched, queue[0])
			positions[name] = queue[1:]
			continue
		}
		res.Placeholders = append(res.Placeholders, name)
		if len(matched) == 0 {
			leading = append(leading, name)
		} else {
			trailing[len(matched)-1] = append(trailing[len(matched)-1], name)
		}
	}

	// The k-th smallest matched live index is the slot for matched[k].
	slotOf := make(map[int]int, len(matched))
	isMatched := make([]bool, len(live))
	for _, idx := range matched {
		isMatched[idx] = true
	}
	k := 0
	for i := range live {
		if isMatched[i] {
			slotOf[i] = k
			k++
		}
	}

	res.Order = make([]string, 0, len(live)+len(res.Placeholders))
	emit := func(from int, label string) {
		if from >= 0 && from != len(res.Order) {
			res.Moves = append(res.Moves, Move{Label: label, From: from, To: len(res.Order)})
		}
		res.Order = append(res.Order, label)
	}

	for i, label := range live {
		slot, ok := slotOf[i]
		if !ok {
			emit(i, label)
			continue
		}
		if slot == 0 {
			for _, name := range leading {
				emit(-1, name)
			}
		}
		src := matched[slot]
		emit(src, live[src])
		for _, name := range trailing[slot] {
			emit(-1, name)
		}
	}
	if len(matched) == 0 {
		for _, name := range leading {
			emit(-1, name)
		}
	}
	return res
}
