package services

import "meeting-eval-service/internal/domain"

// MaxPeople is the largest people-count bucket in the published dataset.
const MaxPeople = 10

// Bucket accumulates accuracy for one people-count.
type Bucket struct {
	Samples int
	Correct int
}

func (b Bucket) Accuracy() float64 {
	if b.Samples == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Samples)
}

// Summary aggregates sample correctness bucketed by people-count, plus an
// overall accuracy. It is caller-owned: the evaluator core keeps no state
// across samples.
type Summary struct {
	Buckets [MaxPeople]Bucket
	Samples int
	Correct int
}

func (s *Summary) Add(ev domain.Evaluation) {
	s.Samples++
	if ev.Correct {
		s.Correct++
	}

	if ev.NumPeople >= 1 && ev.NumPeople <= MaxPeople {
		b := &s.Buckets[ev.NumPeople-1]
		b.Samples++
		if ev.Correct {
			b.Correct++
		}
	}
}

func (s *Summary) Accuracy() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Samples)
}
