// Package moderation holds the article/comment lifecycle rules and the
// authorization matrix gating who may see or transition which entity.
// Everything here is a pure function over models; persistence and HTTP
// concerns stay out.
package moderation

// Reason is the internal cause of an authorization denial. Callers fold all
// reasons into a single outward 403 so existence and ownership information
// does not leak, but the distinction is kept for logging and tests.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonNotOwner     Reason = "not_owner"
	ReasonNotAdmin     Reason = "not_admin"
	ReasonNotPublished Reason = "not_published"
	ReasonOwnContent   Reason = "own_content"
)

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(r Reason) Decision {
	return Decision{Allowed: false, Reason: r}
}
