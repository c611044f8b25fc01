package moderation

import (
	"github.com/cloudblog-api/internal/models"
)

// InitComment forces the moderation defaults on a new comment regardless of
// who created it: every comment enters the queue Pending and unreported.
func InitComment(c *models.Comment) {
	c.Status = models.CommentStatusPending
	c.IsReported = false
}

// CanEditComment permits content edits to the author only.
func CanEditComment(actor *models.User, comment *models.Comment) Decision {
	if actor == nil || actor.ID != comment.UserID {
		return deny(ReasonNotOwner)
	}
	return allow()
}

// ApplyCommentEdit replaces the content and sends the comment back through
// the moderation queue, even if it had been Approved or Rejected.
func ApplyCommentEdit(comment *models.Comment, content string) {
	comment.Content = content
	comment.Status = models.CommentStatusPending
}

// CanDeleteComment permits deletion to the author or an admin.
func CanDeleteComment(actor *models.User, comment *models.Comment) Decision {
	if actor == nil {
		return deny(ReasonNotOwner)
	}
	if actor.ID == comment.UserID || actor.IsAdmin() {
		return allow()
	}
	return deny(ReasonNotOwner)
}

// CanReportComment permits reporting to any authenticated user except the
// comment's own author.
func CanReportComment(actor *models.User, comment *models.Comment) Decision {
	if actor == nil {
		return deny(ReasonNotOwner)
	}
	if actor.ID == comment.UserID {
		return deny(ReasonOwnContent)
	}
	return allow()
}

// ApplyReport sets the reported flag and reports whether it was newly set.
// Re-reporting is an idempotent no-op; callers still answer with success.
func ApplyReport(comment *models.Comment) bool {
	if comment.IsReported {
		return false
	}
	comment.IsReported = true
	return true
}

// CanModerateComment permits approve/reject and report resolution to admins.
func CanModerateComment(actor *models.User) Decision {
	if actor == nil || !actor.IsAdmin() {
		return deny(ReasonNotAdmin)
	}
	return allow()
}

// ResolveReport clears the reported flag. The moderation status is never
// touched: resolving a report on an Approved comment leaves it Approved.
func ResolveReport(comment *models.Comment) {
	comment.IsReported = false
}

// CanViewComment decides whether one comment appears in the per-article list
// for the given viewer. The selection is an inclusive union: Approved and
// Pending are always shown, authors additionally see their own Rejected
// comments, and admins see everything.
func CanViewComment(viewer *models.User, comment *models.Comment) bool {
	switch comment.Status {
	case models.CommentStatusApproved, models.CommentStatusPending:
		return true
	}
	if viewer == nil {
		return false
	}
	if viewer.IsAdmin() {
		return true
	}
	return comment.UserID == viewer.ID && comment.Status == models.CommentStatusRejected
}
