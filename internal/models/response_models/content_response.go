package response_models

type FAQItem struct {
	ID           string `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"display_order"`
}

type FAQGroup struct {
	Category string    `json:"category"`
	Items    []FAQItem `json:"items"`
}

type TeamMemberResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

type ContactSubmissionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	Response  string `json:"response,omitempty"`
	CreatedAt int64  `json:"created_at"`
}
