package schedule

import (
	"math/rand"
	"net/http"
	"sync"

	"github.com/spec-kit/hospital-portal/internal/domain"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// Assigner picks one doctor from a candidate set, uniformly at random. No
// affinity or load weighting; every request re-evaluates independently. The
// random source is injected at construction rather than read from a global.
type Assigner struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAssigner builds an assigner on the given source.
func NewAssigner(src rand.Source) *Assigner {
	return &Assigner{rng: rand.New(src)}
}

// Assign selects one candidate. Fails with NOT_FOUND when the set is empty.
func (a *Assigner) Assign(candidates []domain.Doctor) (*domain.Doctor, error) {
	if len(candidates) == 0 {
		return nil, apperrors.NewDomainError("NOT_FOUND",
			"No doctors available on the requested day", http.StatusNotFound, nil)
	}

	a.mu.Lock()
	index := a.rng.Intn(len(candidates))
	a.mu.Unlock()

	doctor := candidates[index]
	return &doctor, nil
}
