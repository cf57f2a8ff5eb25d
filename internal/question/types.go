package question

import (
	"time"

	"council-archive/pkg/entryparser"
)

// DefaultPerson is stored when the speaker or questioner is left blank.
const DefaultPerson = "（未入力）"

// --- Question Domain Model ---

// Question is one archived (timestamp, summary) citation of a council session video.
type Question struct {
	ID          string
	Date        string // YYYY-MM-DD, archive timezone
	Meeting     string
	Speaker     string
	Questioner  string
	Summary     string
	Timestamp   string // "M:S"
	YoutubeURL  string
	Title       string
	PublishedAt string // RFC3339 as reported by the video provider
	Author      string // operator email
	CreatedAt   time.Time
}

// PreviewEntry is a parsed entry with its derived offset and link.
type PreviewEntry struct {
	Entry  entryparser.Entry
	Offset int
	Link   string
}

// --- UseCase Inputs ---

type PreviewInput struct {
	RawText  string
	Style    string // optional override of the configured input style
	VideoURL string // optional; links are empty without it
}

type SubmitInput struct {
	VideoURL    string
	Meeting     string
	Speaker     string
	Questioner  string
	RawText     string
	Title       string // client-side metadata cache, optional
	PublishedAt string
}

type SearchInput struct {
	Query  string
	Author string // restricts results to one operator's records when set
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type PreviewOutput struct {
	Entries []PreviewEntry
}

type SubmitOutput struct {
	Questions []Question
}

type SearchOutput struct {
	Questions []Question
	Total     int
	Limit     int
	Offset    int
}

type DetailOutput struct {
	Question Question
}
