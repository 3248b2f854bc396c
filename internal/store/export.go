package store

import (
	"time"

	"github.com/ssoksound/surveywizard/internal/catalog"
	"github.com/ssoksound/surveywizard/internal/model"
)

// ExportSubmissions builds a full dump of recorded submissions with
// answers laid out in catalog order.
func (s *Store) ExportSubmissions() (*model.SubmissionDump, error) {
	subs, err := s.ListSubmissions()
	if err != nil {
		return nil, err
	}
	dump := &model.SubmissionDump{ExportedAt: time.Now()}
	for _, sub := range subs {
		result := model.SubmissionResult{
			ID:        sub.ID,
			BrandName: sub.Profile.BrandName,
			Industry:  sub.Profile.Industry,
			Email:     sub.Profile.Email,
			Service:   sub.Service,
			Forwarded: sub.Forwarded,
			CreatedAt: sub.CreatedAt,
		}
		for _, q := range catalog.Primary() {
			if a, ok := sub.Payload.PrimaryTrackAnswers[q.Title]; ok {
				result.Answers = append(result.Answers, model.AnswerResult{
					Track: q.Track, Title: q.Title, Answer: a,
				})
			}
		}
		for _, q := range catalog.Secondary() {
			if a, ok := sub.Payload.SecondaryTrackAnswers[q.Title]; ok {
				result.Answers = append(result.Answers, model.AnswerResult{
					Track: q.Track, Title: q.Title, Answer: a,
				})
			}
		}
		dump.Submissions = append(dump.Submissions, result)
	}
	return dump, nil
}
