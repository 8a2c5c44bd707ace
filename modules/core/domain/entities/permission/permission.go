package permission

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	objectSeparator = "."
	actionSeparator = ":"
	// ActionWildcard grants every action on an object.
	ActionWildcard = "*"
)

var ErrMalformed = errors.New("malformed permission")

// Permission is a fine-grained grant over a module resource, e.g.
// "correspondence.letters:list". Parsing happens once at the ingestion
// boundary; the rest of the code passes typed values around.
type Permission struct {
	Object string
	Action string
}

func New(object, action string) *Permission {
	return &Permission{
		Object: object,
		Action: NormalizeAction(action),
	}
}

// Parse converts the canonical "module.resource:action" form into a
// Permission. The action part may be omitted, which means the wildcard.
func Parse(s string) (*Permission, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, errors.Wrap(ErrMalformed, "empty string")
	}
	object := s
	action := ActionWildcard
	if idx := strings.Index(s, actionSeparator); idx >= 0 {
		object = s[:idx]
		action = s[idx+1:]
	}
	if !strings.Contains(object, objectSeparator) {
		return nil, errors.Wrapf(ErrMalformed, "object %q is not module.resource", object)
	}
	if action == "" {
		return nil, errors.Wrapf(ErrMalformed, "empty action in %q", s)
	}
	return &Permission{Object: object, Action: action}, nil
}

func (p *Permission) String() string {
	return p.Object + actionSeparator + p.Action
}

// Covers reports whether a grant of p satisfies the requested permission.
func (p *Permission) Covers(requested *Permission) bool {
	if requested == nil {
		return false
	}
	if p.Object != requested.Object {
		return false
	}
	return p.Action == ActionWildcard || p.Action == requested.Action
}

// ObjectName returns the canonical module.resource string, lowercased.
func ObjectName(module, resource string) string {
	module = strings.ToLower(strings.TrimSpace(module))
	resource = strings.ToLower(strings.TrimSpace(resource))
	if module == "" {
		module = "global"
	}
	if resource == "" {
		resource = "resource"
	}
	return module + objectSeparator + resource
}

// NormalizeAction returns a normalized action string.
func NormalizeAction(action string) string {
	action = strings.ToLower(strings.TrimSpace(action))
	if action == "" {
		return ActionWildcard
	}
	return action
}
