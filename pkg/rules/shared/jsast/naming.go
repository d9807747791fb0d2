package jsast

import "regexp"

var (
	componentNamePattern = regexp.MustCompile(`^[A-Z]`)
	hookNamePattern      = regexp.MustCompile(`^use[A-Z0-9]`)
)

// Kind is the shape of a declaration name.
type Kind int

const (
	KindRootFunction Kind = iota
	KindComponent
	KindHook
)

func (k Kind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindHook:
		return "hook"
	default:
		return "root-function"
	}
}

// IsComponentName reports whether name starts with an uppercase ASCII letter.
func IsComponentName(name string) bool {
	return componentNamePattern.MatchString(name)
}

// IsHookName reports whether name is "use" followed by an uppercase letter or digit.
func IsHookName(name string) bool {
	return hookNamePattern.MatchString(name)
}

// IsRootFunctionName reports whether name is non-empty and neither a component nor a hook name.
func IsRootFunctionName(name string) bool {
	return name != "" && !IsComponentName(name) && !IsHookName(name)
}

// Classify returns the kind of name. Anonymous (empty) names are root functions.
func Classify(name string) Kind {
	switch {
	case IsComponentName(name):
		return KindComponent
	case IsHookName(name):
		return KindHook
	default:
		return KindRootFunction
	}
}
