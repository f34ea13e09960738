package runtime

import (
	"context"

	"readroom/domain"
)

// TrustAllMembership admits everyone and lets anyone lead. It is the default
// when the engine runs without an upstream account service.
type TrustAllMembership struct{}

func (TrustAllMembership) IsMember(_ context.Context, _ domain.SessionID, _ string) (bool, error) {
	return true, nil
}

func (TrustAllMembership) CanLead(_ context.Context, _ domain.SessionID, _ string) (bool, error) {
	return true, nil
}

// StaticPageCounter reports the same page total for every session, useful when
// no document catalog is wired in. Zero disables percentage computation.
type StaticPageCounter struct {
	Total int
}

func (c StaticPageCounter) PageCount(_ context.Context, _ domain.SessionID) (int, error) {
	return c.Total, nil
}
