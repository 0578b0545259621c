// Package policy decides which identity may perform which operation on which
// resource. Evaluation is pure: no mutation, no logging, allow or deny only.
//
// The comment rule deliberately reproduces the deployed behavior, where the
// consumer check is OR-ed with an authenticated-or-read-only fallback. The
// effective rule is broader than consumer-only: any authenticated user may
// write comments. Likewise the video rule gates on the creator flag alone,
// not on ownership, so any creator may edit or delete any video. Both are
// flagged as open questions rather than narrowed here.
package policy

// Action is one of the five logical operations the API exposes per resource.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// Resource is an entity type guarded by the policy.
type Resource string

const (
	ResourceVideos   Resource = "videos"
	ResourceComments Resource = "comments"
	ResourceRatings  Resource = "ratings"
)

// Identity is the caller's resolved authentication state. The zero value is
// an anonymous caller. It is passed explicitly into every check; there is no
// ambient current-user state anywhere in the application.
type Identity struct {
	UserID        int64
	Username      string
	IsCreator     bool
	IsConsumer    bool
	Authenticated bool
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// Allow reports whether the identity may perform the action on the resource.
func Allow(id Identity, act Action, res Resource) bool {
	switch res {
	case ResourceVideos:
		if isWrite(act) {
			return id.Authenticated && id.IsCreator
		}
		return authenticatedOrReadOnly(id, act)
	case ResourceComments:
		// (IsAuthenticated AND IsConsumer) OR IsAuthenticatedOrReadOnly
		return (id.Authenticated && id.IsConsumer) || authenticatedOrReadOnly(id, act)
	case ResourceRatings:
		// Reads included: ratings are never visible anonymously.
		return id.Authenticated && id.IsConsumer
	}
	return false
}

func isWrite(act Action) bool {
	switch act {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// authenticatedOrReadOnly allows reads to anyone and writes only to
// authenticated callers.
func authenticatedOrReadOnly(id Identity, act Action) bool {
	if !isWrite(act) {
		return true
	}
	return id.Authenticated
}
