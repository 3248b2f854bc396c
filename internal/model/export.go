package model

import "time"

// SubmissionDump is the top-level JSON structure for submission export.
type SubmissionDump struct {
	ExportedAt  time.Time          `json:"exported_at"`
	Submissions []SubmissionResult `json:"submissions"`
}

// SubmissionResult holds one completed survey for export.
type SubmissionResult struct {
	ID        int64          `json:"id"`
	BrandName string         `json:"brand_name"`
	Industry  string         `json:"industry"`
	Email     string         `json:"email"`
	Service   Service        `json:"service"`
	Forwarded bool           `json:"forwarded"`
	CreatedAt time.Time      `json:"created_at"`
	Answers   []AnswerResult `json:"answers"`
}

// AnswerResult holds one answered question for export.
type AnswerResult struct {
	Track  Track  `json:"track"`
	Title  string `json:"title"`
	Answer string `json:"answer"`
}
