package particle

import (
	"github.com/marco-hrlic/go-sir/rnd"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Resample draws len(x) replication counts from multinomial distribution with probabilities w
// and returns a new slice in which x[i] is repeated as many times as outcome i was drawn.
// The output is grouped in ascending order of the original particle index.
// It returns error if x and w differ in length or if w is not a valid probability distribution.
func Resample(x, w []float64, src rand.Source) ([]float64, error) {
	if len(x) != len(w) {
		return nil, errors.Wrapf(ErrDimMismatch, "%d states, %d weights", len(x), len(w))
	}

	counts, err := rnd.Multinomial(len(x), w, src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw replication counts")
	}

	out := make([]float64, 0, len(x))
	for i, c := range counts {
		for j := 0; j < c; j++ {
			out = append(out, x[i])
		}
	}

	if len(out) != len(x) {
		return nil, errors.Errorf("resampled %d particles, expected %d", len(out), len(x))
	}

	return out, nil
}

// Resample replaces the particles with an equally weighted generation drawn from their current weights.
func (s *Set) Resample(src rand.Source) error {
	x, err := Resample(s.x, s.w, src)
	if err != nil {
		return err
	}

	s.x = x
	s.reset()

	return nil
}
