// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ListTemplatesRequest struct {
	Category string `form:"category,optional"`
	Q        string `form:"q,optional"`
}

type TemplateItem struct {
	Index    int    `json:"index"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Preview  string `json:"preview"`
}

type ListTemplatesResponse struct {
	Templates []TemplateItem `json:"templates"`
	Count     int            `json:"count"`
	Total     int            `json:"total"`
	Language  string         `json:"language"`
}

type GetTemplateRequest struct {
	Index int `path:"index"`
}

type GetTemplateResponse struct {
	Index    int    `json:"index"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Category string `json:"category"`
	CopyText string `json:"copy_text"`
	Language string `json:"language"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type ShareTemplateRequest struct {
	Index     int    `json:"index"`
	Recipient string `json:"recipient"`
}

type ShareTemplateResponse struct {
	Id       string `json:"id"`
	Status   string `json:"status"`
	Subject  string `json:"subject"`
	Language string `json:"language"`
}

type GetShareStatusRequest struct {
	Id string `path:"id"`
}

type GetShareStatusResponse struct {
	Id        string `json:"id"`
	Subject   string `json:"subject"`
	Recipient string `json:"recipient"`
	Language  string `json:"language"`
	Status    string `json:"status"`
	Attempts  int    `json:"attempts"`
	Error     string `json:"error,omitempty"`
	CreatedAt string `json:"created_at"`
}

type GetStatsResponse struct {
	Shares map[string]int `json:"shares"`
}
