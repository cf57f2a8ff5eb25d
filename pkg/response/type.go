package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Page describes a window over a listing. Embed it in list payloads.
type Page struct {
	Total  int  `json:"total"`
	Limit  int  `json:"limit"`
	Offset int  `json:"offset"`
	More   bool `json:"has_more"`
}

// NewPage fills More from the window and the total count.
func NewPage(total, limit, offset int) Page {
	return Page{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		More:   offset+limit < total,
	}
}
