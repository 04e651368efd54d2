package services

import (
	"strings"

	"meeting-eval-service/internal/domain"
)

// Text-adapter anchors. Candidate plans follow the few-shot sentence format:
//
//	You start at Russian Hill at 9:00AM.
//	You travel to Marina District in 7 minutes and arrive at 9:07AM.
//	You wait until 3:45PM.
//	You meet James for 75 minutes from 3:45PM to 5:00PM.
const (
	solutionPrefix = "SOLUTION:"

	startAnchor  = "You start"
	travelAnchor = "You travel"
	waitAnchor   = "You wait"
	meetAnchor   = "You meet"
)

// ParseSentences splits a raw candidate plan into individual action sentences.
// An optional preamble up to and including "SOLUTION:" is discarded; sentence
// boundaries are periods; blank fragments are dropped.
func ParseSentences(raw string) []string {
	if i := strings.Index(raw, solutionPrefix); i >= 0 {
		raw = raw[i+len(solutionPrefix):]
	}

	pieces := strings.Split(raw, ".")
	sentences := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// ClassifySteps converts action sentences into typed steps by their leading
// phrase. A sentence matching none of the anchors becomes a StepUnknown, which
// aborts the replay when reached rather than failing the parse: malformed
// model output must still yield a comparable partial score.
func ClassifySteps(sentences []string) []domain.Step {
	steps := make([]domain.Step, 0, len(sentences))
	for _, s := range sentences {
		steps = append(steps, classifySentence(s))
	}
	return steps
}

func classifySentence(sentence string) domain.Step {
	switch {
	case strings.HasPrefix(sentence, startAnchor):
		return domain.Step{Kind: domain.StepStart, Raw: sentence}

	case strings.HasPrefix(sentence, travelAnchor):
		// Destination is the text between "travel to " and " in".
		_, rest, ok := strings.Cut(sentence, "travel to ")
		if !ok {
			return unknownStep(sentence)
		}
		dest, _, _ := strings.Cut(rest, " in")
		return domain.Step{
			Kind:     domain.StepTravel,
			Location: strings.TrimSpace(dest),
			Raw:      sentence,
		}

	case strings.HasPrefix(sentence, waitAnchor):
		_, rest, ok := strings.Cut(sentence, "wait until ")
		if !ok {
			return unknownStep(sentence)
		}
		at, err := domain.ParseClock(strings.TrimSpace(rest))
		if err != nil {
			return unknownStep(sentence)
		}
		return domain.Step{Kind: domain.StepWait, At: at, Raw: sentence}

	case strings.HasPrefix(sentence, meetAnchor):
		// Person is the text between "meet " and " for"; a missing duration
		// clause is tolerated and the remainder is taken as the name.
		_, rest, ok := strings.Cut(sentence, "meet ")
		if !ok {
			return unknownStep(sentence)
		}
		person, _, _ := strings.Cut(rest, " for")
		return domain.Step{
			Kind:   domain.StepMeet,
			Person: strings.TrimSpace(person),
			Raw:    sentence,
		}
	}

	return unknownStep(sentence)
}

func unknownStep(sentence string) domain.Step {
	return domain.Step{Kind: domain.StepUnknown, Raw: sentence}
}
