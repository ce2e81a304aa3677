package expect

// IncludeStack reports Config.IncludeStack.
//
// Deprecated: use Config().IncludeStack.
func (r *Registry) IncludeStack() bool {
	r.warnDeprecated("Registry.IncludeStack", "Config.IncludeStack")
	return r.Config().IncludeStack
}

// SetIncludeStack updates Config.IncludeStack.
//
// Deprecated: use SetConfig.
func (r *Registry) SetIncludeStack(v bool) {
	r.warnDeprecated("Registry.IncludeStack", "Config.IncludeStack")
	r.mu.Lock()
	r.cfg.IncludeStack = v
	r.mu.Unlock()
}

// ShowDiff reports Config.ShowDiff.
//
// Deprecated: use Config().ShowDiff.
func (r *Registry) ShowDiff() bool {
	r.warnDeprecated("Registry.ShowDiff", "Config.ShowDiff")
	return r.Config().ShowDiff
}

// SetShowDiff updates Config.ShowDiff.
//
// Deprecated: use SetConfig.
func (r *Registry) SetShowDiff(v bool) {
	r.warnDeprecated("Registry.ShowDiff", "Config.ShowDiff")
	r.mu.Lock()
	r.cfg.ShowDiff = v
	r.mu.Unlock()
}

func (r *Registry) warnDeprecated(old, replacement string) {
	r.logger.Warn(old+" is deprecated, use "+replacement+" instead.", "deprecated", old)
}
