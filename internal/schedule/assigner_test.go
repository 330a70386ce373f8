package schedule

import (
	"math/rand"
	"testing"

	"github.com/spec-kit/hospital-portal/internal/domain"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

func TestAssignEmptyCandidates(t *testing.T) {
	assigner := NewAssigner(rand.NewSource(1))

	_, err := assigner.Assign(nil)
	if err == nil {
		t.Fatal("Assign succeeded on empty candidate set")
	}
	if !apperrors.IsCode(err, "NOT_FOUND") {
		t.Fatalf("code = %s, want NOT_FOUND", apperrors.ToDomainError(err).Code)
	}
}

func TestAssignSingleCandidate(t *testing.T) {
	assigner := NewAssigner(rand.NewSource(1))
	only := domain.Doctor{ID: "d1", Name: "Dr. Mensah"}

	for i := 0; i < 10; i++ {
		got, err := assigner.Assign([]domain.Doctor{only})
		if err != nil {
			t.Fatalf("Assign returned error: %v", err)
		}
		if got.ID != only.ID {
			t.Fatalf("Assign = %s, want %s", got.ID, only.ID)
		}
	}
}

func TestAssignAlwaysReturnsMemberOfSet(t *testing.T) {
	assigner := NewAssigner(rand.NewSource(42))
	candidates := []domain.Doctor{
		{ID: "d1"}, {ID: "d2"}, {ID: "d3"},
	}
	members := map[string]bool{"d1": true, "d2": true, "d3": true}

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		got, err := assigner.Assign(candidates)
		if err != nil {
			t.Fatalf("Assign returned error: %v", err)
		}
		if !members[got.ID] {
			t.Fatalf("Assign returned %s, not a member of the candidate set", got.ID)
		}
		seen[got.ID] = true
	}
	// A uniform choice over 200 draws should have hit every candidate.
	if len(seen) != len(candidates) {
		t.Errorf("only %d of %d candidates ever selected", len(seen), len(candidates))
	}
}
