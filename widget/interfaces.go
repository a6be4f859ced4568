package widget

// Logger receives notifications about suspicious but accepted input.
type Logger interface {
	UnknownField(key string)
}

// Translator resolves user-facing messages. A key is a default English
// text, optionally with printf verbs for interpolation.
type Translator interface {
	Translate(key string, args ...interface{}) string
}

// PopoverRenderer turns a popover description into markup. Widget does
// not know anything about popover internals, it only prepares a spec.
type PopoverRenderer interface {
	RenderPopover(PopoverSpec) string
}

// Registrar associates a rendered element with a configuration of the
// client-side plugin.
type Registrar interface {
	Register(Binding) error
}

// Configurer is implemented by Configurator and CachingConfigurator.
type Configurer interface {
	Configure(Options) Result
}

type noopLogger struct{}

func (noopLogger) UnknownField(string) {}

// NoopLogger returns a logger which drops everything.
func NoopLogger() Logger {
	return noopLogger{}
}
