package widget

import (
	"encoding/json"
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

var pluginNameRegexp = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsPluginName checks that name can be used as a jQuery plugin name
// as is.
func IsPluginName(name string) bool {
	return pluginNameRegexp.MatchString(name)
}

// Script renders a plugin invocation for the bound element.
func (b Binding) Script() (template.JS, error) {
	if !IsPluginName(b.Plugin) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPluginName, b.Plugin)
	}

	selector, err := json.Marshal("#" + b.ElementID)
	if err != nil {
		return "", fmt.Errorf("cannot encode selector: %w", err)
	}

	payload, err := json.Marshal(b.Config)
	if err != nil {
		return "", fmt.Errorf("cannot encode plugin config: %w", err)
	}

	return template.JS(fmt.Sprintf("jQuery(%s).%s(%s);", selector, b.Plugin, payload)), nil // nolint: gosec
}

// ScriptRegistrar collects plugin invocations of a single page. It is
// not safe for concurrent use.
type ScriptRegistrar struct {
	scripts []string
	seen    map[string]struct{}
}

// Register renders binding into a script. Element can be bound only
// once.
func (s *ScriptRegistrar) Register(binding Binding) error {
	if _, ok := s.seen[binding.ElementID]; ok {
		return &registrationError{
			elementID: binding.ElementID,
			err:       ErrAlreadyRegistered,
		}
	}

	script, err := binding.Script()
	if err != nil {
		return &registrationError{
			elementID: binding.ElementID,
			err:       err,
		}
	}

	if s.seen == nil {
		s.seen = map[string]struct{}{}
	}

	s.seen[binding.ElementID] = struct{}{}
	s.scripts = append(s.scripts, string(script))

	return nil
}

// Len returns a number of registered bindings.
func (s *ScriptRegistrar) Len() int {
	return len(s.scripts)
}

// Script returns all invocations wrapped into a DOM-ready handler.
func (s *ScriptRegistrar) Script() template.JS {
	if len(s.scripts) == 0 {
		return ""
	}

	return template.JS("jQuery(function () {\n" + strings.Join(s.scripts, "\n") + "\n});") // nolint: gosec
}
