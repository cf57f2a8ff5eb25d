package http

import (
	"time"

	"council-archive/internal/question"
	"council-archive/pkg/entryparser"
	"council-archive/pkg/response"
)

const summaryPreviewRunes = 50

// --- Request DTOs ---

type previewReq struct {
	RawInput   string `json:"raw_input"`
	Style      string `json:"style"       binding:"omitempty,oneof=multiline single_line"`
	YoutubeURL string `json:"youtube_url"`
}

func (r previewReq) validate() error { return nil }

func (r previewReq) toInput() question.PreviewInput {
	return question.PreviewInput{
		RawText:  r.RawInput,
		Style:    r.Style,
		VideoURL: r.YoutubeURL,
	}
}

// ---

type submitReq struct {
	YoutubeURL  string `json:"youtube_url"`
	Meeting     string `json:"meeting"      binding:"max=255"`
	Speaker     string `json:"speaker"      binding:"max=255"`
	Questioner  string `json:"questioner"   binding:"max=255"`
	RawInput    string `json:"raw_input"`
	Title       string `json:"title"`
	PublishedAt string `json:"published_at"`
}

func (r submitReq) validate() error { return nil }

func (r submitReq) toInput() question.SubmitInput {
	return question.SubmitInput{
		VideoURL:    r.YoutubeURL,
		Meeting:     r.Meeting,
		Speaker:     r.Speaker,
		Questioner:  r.Questioner,
		RawText:     r.RawInput,
		Title:       r.Title,
		PublishedAt: r.PublishedAt,
	}
}

// ---

type searchReq struct {
	Query  string `form:"q"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r searchReq) validate() error { return nil }

func (r searchReq) toInput() question.SearchInput {
	if r.Limit < 0 || r.Limit > 500 {
		r.Limit = 0
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return question.SearchInput{
		Query:  r.Query,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type entryResp struct {
	Timestamp     string `json:"timestamp"`
	Summary       string `json:"summary"`
	OffsetSeconds int    `json:"offset_seconds"`
	Link          string `json:"link,omitempty"`
}

type previewResp struct {
	Entries []entryResp `json:"entries"`
	Count   int         `json:"count"`
}

func (h *handler) newPreviewResp(out question.PreviewOutput) previewResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = entryResp{
			Timestamp:     e.Entry.Timestamp,
			Summary:       e.Entry.Summary,
			OffsetSeconds: e.Offset,
			Link:          e.Link,
		}
	}
	return previewResp{Entries: entries, Count: len(entries)}
}

type questionResp struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Meeting        string    `json:"meeting"`
	Speaker        string    `json:"speaker"`
	Questioner     string    `json:"questioner"`
	Summary        string    `json:"summary"`
	SummaryPreview string    `json:"summary_preview"`
	Timestamp      string    `json:"timestamp"`
	OffsetSeconds  int       `json:"offset_seconds"`
	YoutubeURL     string    `json:"youtube_url"`
	Link           string    `json:"link"`
	Title          string    `json:"title,omitempty"`
	PublishedAt    string    `json:"published_at,omitempty"`
	PublishedDate  string    `json:"published_date,omitempty"`
	Author         string    `json:"author"`
	CreatedAt      time.Time `json:"created_at"`
}

func (h *handler) newQuestionResp(q question.Question) questionResp {
	offset, _ := entryparser.Offset(q.Timestamp)
	link, _ := entryparser.Link(q.YoutubeURL, q.Timestamp)
	return questionResp{
		ID:             q.ID,
		Date:           q.Date,
		Meeting:        q.Meeting,
		Speaker:        q.Speaker,
		Questioner:     q.Questioner,
		Summary:        q.Summary,
		SummaryPreview: summaryPreview(q.Summary),
		Timestamp:      q.Timestamp,
		OffsetSeconds:  offset,
		YoutubeURL:     q.YoutubeURL,
		Link:           link,
		Title:          q.Title,
		PublishedAt:    q.PublishedAt,
		PublishedDate:  h.dateMath.DateOf(q.PublishedAt),
		Author:         q.Author,
		CreatedAt:      q.CreatedAt,
	}
}

func (h *handler) newQuestionsResp(qs []question.Question) []questionResp {
	out := make([]questionResp, len(qs))
	for i, q := range qs {
		out[i] = h.newQuestionResp(q)
	}
	return out
}

type submitResp struct {
	Questions []questionResp `json:"questions"`
	Count     int            `json:"count"`
}

func (h *handler) newSubmitResp(out question.SubmitOutput) submitResp {
	return submitResp{Questions: h.newQuestionsResp(out.Questions), Count: len(out.Questions)}
}

type searchResp struct {
	Questions []questionResp `json:"questions"`
	response.Page
}

func (h *handler) newSearchResp(out question.SearchOutput) searchResp {
	return searchResp{
		Questions: h.newQuestionsResp(out.Questions),
		Page:      response.NewPage(out.Total, out.Limit, out.Offset),
	}
}

type detailResp struct {
	Question questionResp `json:"question"`
}

func (h *handler) newDetailResp(out question.DetailOutput) detailResp {
	return detailResp{Question: h.newQuestionResp(out.Question)}
}

// summaryPreview cuts s to its first 50 characters, marking the cut with "...".
func summaryPreview(s string) string {
	r := []rune(s)
	if len(r) <= summaryPreviewRunes {
		return s
	}
	return string(r[:summaryPreviewRunes]) + "..."
}
