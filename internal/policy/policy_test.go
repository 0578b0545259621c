package policy

import "testing"

var (
	anonymous = Identity{}
	creator   = Identity{UserID: 1, IsCreator: true, Authenticated: true}
	consumer  = Identity{UserID: 2, IsConsumer: true, Authenticated: true}
	// A user registered before role assignment existed: authenticated but
	// carrying neither flag.
	flagless = Identity{UserID: 3, Authenticated: true}
)

func TestVideoPolicy(t *testing.T) {
	cases := []struct {
		name string
		id   Identity
		act  Action
		want bool
	}{
		{"anonymous list", anonymous, ActionList, true},
		{"anonymous retrieve", anonymous, ActionRetrieve, true},
		{"anonymous create", anonymous, ActionCreate, false},
		{"anonymous delete", anonymous, ActionDelete, false},
		{"creator create", creator, ActionCreate, true},
		{"creator update", creator, ActionUpdate, true},
		{"creator delete", creator, ActionDelete, true},
		{"consumer create", consumer, ActionCreate, false},
		{"consumer update", consumer, ActionUpdate, false},
		{"consumer retrieve", consumer, ActionRetrieve, true},
		{"flagless create", flagless, ActionCreate, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allow(tc.id, tc.act, ResourceVideos); got != tc.want {
				t.Errorf("Allow(%+v, %s, videos) = %v, want %v", tc.id, tc.act, got, tc.want)
			}
		})
	}
}

func TestCommentPolicy(t *testing.T) {
	cases := []struct {
		name string
		id   Identity
		act  Action
		want bool
	}{
		{"anonymous list", anonymous, ActionList, true},
		{"anonymous retrieve", anonymous, ActionRetrieve, true},
		{"anonymous create", anonymous, ActionCreate, false},
		{"consumer create", consumer, ActionCreate, true},
		{"consumer delete", consumer, ActionDelete, true},
		// The OR with the authenticated-or-read-only fallback means any
		// authenticated user can write comments, not only consumers.
		{"creator create", creator, ActionCreate, true},
		{"flagless create", flagless, ActionCreate, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allow(tc.id, tc.act, ResourceComments); got != tc.want {
				t.Errorf("Allow(%+v, %s, comments) = %v, want %v", tc.id, tc.act, got, tc.want)
			}
		})
	}
}

func TestRatingPolicy(t *testing.T) {
	cases := []struct {
		name string
		id   Identity
		act  Action
		want bool
	}{
		// Unlike videos and comments, rating reads are not anonymous.
		{"anonymous list", anonymous, ActionList, false},
		{"anonymous retrieve", anonymous, ActionRetrieve, false},
		{"anonymous create", anonymous, ActionCreate, false},
		{"consumer list", consumer, ActionList, true},
		{"consumer create", consumer, ActionCreate, true},
		{"consumer update", consumer, ActionUpdate, true},
		{"creator create", creator, ActionCreate, false},
		{"creator list", creator, ActionList, false},
		{"flagless create", flagless, ActionCreate, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allow(tc.id, tc.act, ResourceRatings); got != tc.want {
				t.Errorf("Allow(%+v, %s, ratings) = %v, want %v", tc.id, tc.act, got, tc.want)
			}
		})
	}
}

func TestUnknownResourceDenied(t *testing.T) {
	if Allow(creator, ActionList, Resource("channels")) {
		t.Error("unknown resource should be denied")
	}
}
