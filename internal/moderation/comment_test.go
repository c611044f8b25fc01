package moderation_test

import (
	"testing"

	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/moderation"
)

func pendingComment() *models.Comment {
	return &models.Comment{ID: "comment-1", ArticleID: "article-1", UserID: owner.ID, Status: models.CommentStatusPending}
}

func TestInitComment_ForcesDefaults(t *testing.T) {
	for _, caller := range []*models.User{owner, stranger, admin} {
		c := &models.Comment{
			UserID:     caller.ID,
			Status:     models.CommentStatusApproved,
			IsReported: true,
		}
		moderation.InitComment(c)
		if c.Status != models.CommentStatusPending {
			t.Errorf("caller %s: status = %q, want Pending", caller.ID, c.Status)
		}
		if c.IsReported {
			t.Errorf("caller %s: new comment must not be reported", caller.ID)
		}
	}
}

func TestApplyCommentEdit_ResetsToPending(t *testing.T) {
	for _, status := range []string{
		models.CommentStatusPending,
		models.CommentStatusApproved,
		models.CommentStatusRejected,
	} {
		c := pendingComment()
		c.Status = status
		moderation.ApplyCommentEdit(c, "updated content")
		if c.Status != models.CommentStatusPending {
			t.Errorf("edit from %s: status = %q, want Pending", status, c.Status)
		}
		if c.Content != "updated content" {
			t.Errorf("content = %q, want updated", c.Content)
		}
	}
}

func TestCanEditComment_AuthorOnly(t *testing.T) {
	c := pendingComment()
	if d := moderation.CanEditComment(owner, c); !d.Allowed {
		t.Error("author should edit their own comment")
	}
	if d := moderation.CanEditComment(admin, c); d.Allowed {
		t.Error("admin should not edit someone else's comment")
	}
	if d := moderation.CanEditComment(nil, c); d.Allowed {
		t.Error("anonymous should not edit")
	}
}

func TestCanReportComment(t *testing.T) {
	c := pendingComment()

	if d := moderation.CanReportComment(stranger, c); !d.Allowed {
		t.Error("non-author should be allowed to report")
	}
	if d := moderation.CanReportComment(owner, c); d.Allowed || d.Reason != moderation.ReasonOwnContent {
		t.Errorf("author report: allowed=%v reason=%q, want denied/own_content", d.Allowed, d.Reason)
	}
	if d := moderation.CanReportComment(nil, c); d.Allowed {
		t.Error("anonymous should not report")
	}
}

func TestApplyReport_Idempotent(t *testing.T) {
	c := pendingComment()

	if newly := moderation.ApplyReport(c); !newly {
		t.Error("first report should set the flag")
	}
	if !c.IsReported {
		t.Fatal("flag should be set")
	}
	if newly := moderation.ApplyReport(c); newly {
		t.Error("re-reporting should be a no-op")
	}
	if !c.IsReported {
		t.Error("flag should stay set")
	}
}

func TestResolveReport_StatusUntouched(t *testing.T) {
	c := pendingComment()
	c.Status = models.CommentStatusApproved
	c.IsReported = true

	moderation.ResolveReport(c)

	if c.IsReported {
		t.Error("resolving should clear the flag")
	}
	if c.Status != models.CommentStatusApproved {
		t.Errorf("status = %q, resolving a report must not change it", c.Status)
	}
}

func TestCanDeleteComment(t *testing.T) {
	c := pendingComment()
	if d := moderation.CanDeleteComment(owner, c); !d.Allowed {
		t.Error("author should delete their own comment")
	}
	if d := moderation.CanDeleteComment(admin, c); !d.Allowed {
		t.Error("admin should delete any comment")
	}
	if d := moderation.CanDeleteComment(stranger, c); d.Allowed {
		t.Error("stranger should not delete")
	}
}

func TestCanModerateComment_AdminOnly(t *testing.T) {
	if d := moderation.CanModerateComment(admin); !d.Allowed {
		t.Error("admin should moderate")
	}
	if d := moderation.CanModerateComment(owner); d.Allowed || d.Reason != moderation.ReasonNotAdmin {
		t.Errorf("user moderate: allowed=%v reason=%q", d.Allowed, d.Reason)
	}
}

func TestCanViewComment_Visibility(t *testing.T) {
	rejected := pendingComment()
	rejected.Status = models.CommentStatusRejected

	tests := []struct {
		name    string
		viewer  *models.User
		comment *models.Comment
		want    bool
	}{
		{"anonymous sees approved", nil, &models.Comment{Status: models.CommentStatusApproved}, true},
		{"anonymous sees pending", nil, &models.Comment{Status: models.CommentStatusPending}, true},
		{"anonymous hidden rejected", nil, rejected, false},
		{"author sees own rejected", owner, rejected, true},
		{"stranger hidden rejected", stranger, rejected, false},
		{"admin sees rejected", admin, rejected, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := moderation.CanViewComment(tt.viewer, tt.comment); got != tt.want {
				t.Errorf("CanViewComment = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanViewComment_ReportedFlagIrrelevant(t *testing.T) {
	c := &models.Comment{Status: models.CommentStatusApproved, IsReported: true}
	if !moderation.CanViewComment(nil, c) {
		t.Error("reported flag must not affect visibility")
	}
}
