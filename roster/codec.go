package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// document is the on-disk roster shape:
//
//	{
//	  "roles": ["Role A", "Role B", ...],
//	  "participants": {
//	    "Name": ["Role B", "Role A", ...],   // most- to least-preferred
//	    ...
//	  }
//	}
type document struct {
	Roles        []string            `json:"roles"`
	Participants map[string][]string `json:"participants"`
}

// DecodeJSON reads a roster document and builds a validated Roster.
//
// Participants are added in sorted-name order so that the resulting
// participant indices — and therefore solver output ordering — do not
// depend on JSON map iteration order.
//
// Errors: ErrBadDocument for malformed JSON or a missing section, plus
// every construction sentinel from New/AddParticipant, unchanged.
//
// Complexity: O(p·n + p log p), p = participants, n = roles.
func DecodeJSON(src io.Reader) (*Roster, error) {
	var doc document
	if err := json.NewDecoder(src).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if len(doc.Roles) == 0 {
		return nil, fmt.Errorf("%w: missing roles section", ErrBadDocument)
	}
	if len(doc.Participants) == 0 {
		return nil, fmt.Errorf("%w: missing participants section", ErrBadDocument)
	}

	r, err := New(doc.Roles)
	if err != nil {
		return nil, err
	}

	// Stable insertion order regardless of map iteration.
	names := make([]string, 0, len(doc.Participants))
	for name := range doc.Participants {
		names = append(names, name)
	}
	sort.Strings(names)

	var name string
	for _, name = range names {
		if err = r.AddParticipant(name, doc.Participants[name]); err != nil {
			return nil, err
		}
	}

	return r, nil
}
