package logger

// Scoped is a Logger bound to one component, so call sites only pass the
// message and fields
type Scoped struct {
	base      Logger
	component string
}

// For binds base to component. A nil base discards everything.
func For(base Logger, component string) Scoped {
	if base == nil {
		base = NoOpLogger{}
	}
	return Scoped{base: base, component: component}
}

func (s Scoped) Component() string { return s.component }

func (s Scoped) Debug(message string, fields map[string]interface{}) {
	s.base.Debug(s.component, message, fields)
}

func (s Scoped) Info(message string, fields map[string]interface{}) {
	s.base.Info(s.component, message, fields)
}

func (s Scoped) Warning(message string, fields map[string]interface{}) {
	s.base.Warning(s.component, message, fields)
}

func (s Scoped) Error(err error, fields map[string]interface{}) {
	s.base.Error(s.component, err, fields)
}
