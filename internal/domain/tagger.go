package domain

import "strings"

type StateTagger struct {
	states []string
	lower  []string
}

func NewStateTagger(states []string) *StateTagger {
	lower := make([]string, len(states))
	for i, s := range states {
		lower[i] = strings.ToLower(s)
	}
	return &StateTagger{states: states, lower: lower}
}

// Tag returns the earliest catalog state mentioned in the title, the
// description or the content. Nil means no state was found.
func (t *StateTagger) Tag(title, description, content *string) *string {
	var fields []string
	for _, f := range []*string{title, description, content} {
		if f != nil && *f != "" {
			fields = append(fields, strings.ToLower(*f))
		}
	}
	if len(fields) == 0 {
		return nil
	}

	for i, state := range t.lower {
		for _, text := range fields {
			if strings.Contains(text, state) {
				match := t.states[i]
				return &match
			}
		}
	}
	return nil
}
