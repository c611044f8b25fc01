package models

// RegisterRequest is the payload for POST /register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty"`
}

// ArticleInput carries article create/update fields. Tags accepts the three
// legacy representations (array, JSON string, comma-separated string); it is
// normalized into []string before anything else touches it.
type ArticleInput struct {
	Title     string
	Paragraph string
	Tags      []string
	Status    string
	// ImageURL is set by the handler after the blob store accepted the upload.
	ImageURL string
	HasImage bool
}

// CommentInput carries comment create/update fields
type CommentInput struct {
	Content string `json:"content"`
}

// ModerateRequest is the payload for PUT /comments/:id/moderate
type ModerateRequest struct {
	Status string `json:"status"` // Approved or Rejected
}

// UserInput carries user create/update fields for the admin CRUD.
// Password is optional on update; an empty value leaves the hash untouched.
type UserInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	Designation string `json:"designation"`
	Image       string `json:"image"`
}

// ProfileInput carries self-service profile fields for PUT /user/profile
type ProfileInput struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Image       string `json:"image"`
	Password    string `json:"password"`
}

// Paginated is the list envelope shared by paginated endpoints
type Paginated struct {
	Data        interface{} `json:"data"`
	CurrentPage int         `json:"current_page"`
	LastPage    int         `json:"last_page"`
	PerPage     int         `json:"per_page"`
	Total       int         `json:"total"`
}

// NewPaginated builds the envelope, clamping last_page to at least 1.
func NewPaginated(data interface{}, page, perPage, total int) *Paginated {
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	return &Paginated{
		Data:        data,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
}
