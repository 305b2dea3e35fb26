package assign_test

import (
	"fmt"

	"github.com/nkorolko/castmatch/assign"
	"github.com/nkorolko/castmatch/roster"
	"github.com/nkorolko/castmatch/score"
)

// ExampleSolve casts a three-way preference rotation: every participant
// ranks a different role first, so the optimum hands everyone their
// first choice.
func ExampleSolve() {
	r, _ := roster.New([]string{"X", "Y", "Z"})
	_ = r.AddParticipant("P1", []string{"X", "Y", "Z"})
	_ = r.AddParticipant("P2", []string{"Y", "Z", "X"})
	_ = r.AddParticipant("P3", []string{"Z", "X", "Y"})

	res, err := assign.Solve(r, score.Linear, assign.Exact)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Details follow participant insertion order.
	for _, d := range res.Details {
		fmt.Printf("%s → %s (rank %d, utility %d)\n", d.Participant, d.Role, d.Rank, d.Utility)
	}
	fmt.Println("total:", res.Total)
	// Output:
	// P1 → X (rank 1, utility 3)
	// P2 → Y (rank 1, utility 3)
	// P3 → Z (rank 1, utility 3)
	// total: 9
}

// ExampleCheckConstraints validates a solved casting against a maximum
// acceptable rank.
func ExampleCheckConstraints() {
	r, _ := roster.New([]string{"A", "B"})
	_ = r.AddParticipant("P1", []string{"A", "B"})
	_ = r.AddParticipant("P2", []string{"A", "B"})

	res, _ := assign.Solve(r, score.Linear, assign.Exact)

	satisfied, violations := assign.CheckConstraints(res, 1)
	fmt.Println("satisfied:", satisfied)
	for _, v := range violations {
		fmt.Printf("%s got rank %d choice (%s)\n", v.Participant, v.Rank, v.Role)
	}
	// Output:
	// satisfied: false
	// P2 got rank 2 choice (B)
}
