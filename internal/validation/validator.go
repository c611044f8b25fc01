package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudblog-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLength is the minimum accepted password size
const MinPasswordLength = 8

// Errors maps field names to human-readable messages for 422 responses
type Errors map[string]string

// Ok reports whether no validation error was recorded
func (e Errors) Ok() bool {
	return len(e) == 0
}

// ValidEmail reports whether the address has a plausible shape
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Register validates a registration payload
func Register(req *models.RegisterRequest) Errors {
	errs := Errors{}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "name is required"
	} else if len(req.Name) > 255 {
		errs["name"] = "name must not exceed 255 characters"
	}
	if req.Email == "" {
		errs["email"] = "email is required"
	} else if !ValidEmail(req.Email) {
		errs["email"] = "email is invalid"
	}
	if len(req.Password) < MinPasswordLength {
		errs["password"] = fmt.Sprintf("password must be at least %d characters", MinPasswordLength)
	}
	return errs
}

// Login validates a login payload
func Login(req *models.LoginRequest) Errors {
	errs := Errors{}
	if req.Email == "" || !ValidEmail(req.Email) {
		errs["email"] = "a valid email is required"
	}
	if req.Password == "" {
		errs["password"] = "password is required"
	}
	return errs
}

// Article validates article create/update fields
func Article(in *models.ArticleInput) Errors {
	errs := Errors{}
	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "title is required"
	} else if len(in.Title) > 255 {
		errs["title"] = "title must not exceed 255 characters"
	}
	if strings.TrimSpace(in.Paragraph) == "" {
		errs["paragraph"] = "paragraph is required"
	}
	if in.Status != "" && !models.ValidArticleStatuses[in.Status] {
		errs["status"] = "status must be Published or Archived"
	}
	return errs
}

// Comment validates comment create/update fields
func Comment(in *models.CommentInput) Errors {
	errs := Errors{}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		errs["content"] = "content is required"
	} else if len(content) > models.MaxCommentLength {
		errs["content"] = fmt.Sprintf("content must not exceed %d characters", models.MaxCommentLength)
	}
	return errs
}

// Moderate validates a moderation payload. Only the two terminal statuses
// are accepted; a comment cannot be moderated back to Pending.
func Moderate(req *models.ModerateRequest) Errors {
	errs := Errors{}
	if req.Status != models.CommentStatusApproved && req.Status != models.CommentStatusRejected {
		errs["status"] = "status must be Approved or Rejected"
	}
	return errs
}

// User validates admin user create/update fields. Password is required on
// create and optional on update.
func User(in *models.UserInput, isUpdate bool) Errors {
	errs := Errors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	} else if len(in.Name) > 255 {
		errs["name"] = "name must not exceed 255 characters"
	}
	if in.Email == "" {
		errs["email"] = "email is required"
	} else if !ValidEmail(in.Email) {
		errs["email"] = "email is invalid"
	}
	if !isUpdate && in.Password == "" {
		errs["password"] = "password is required"
	}
	if in.Password != "" && len(in.Password) < MinPasswordLength {
		errs["password"] = fmt.Sprintf("password must be at least %d characters", MinPasswordLength)
	}
	if !models.ValidRoles[in.Role] {
		errs["role"] = "role must be User or Admin"
	}
	if !models.ValidUserStatuses[in.Status] {
		errs["status"] = "status must be Active or Inactive"
	}
	return errs
}

// Profile validates self-service profile fields
func Profile(in *models.ProfileInput) Errors {
	errs := Errors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if in.Password != "" && len(in.Password) < MinPasswordLength {
		errs["password"] = fmt.Sprintf("password must be at least %d characters", MinPasswordLength)
	}
	return errs
}

// NormalizeTags converts the legacy tag representations into the canonical
// ordered []string. Clients have historically sent tags as a JSON array, a
// JSON-encoded string of an array, or a comma-separated string; nothing past
// this function sees anything but []string.
func NormalizeTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	if strings.HasPrefix(raw, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			return cleanTags(parsed)
		}
	}

	return cleanTags(strings.Split(raw, ","))
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
