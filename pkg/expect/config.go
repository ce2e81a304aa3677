package expect

// Config holds the settings shared by every assertion of a registry.
type Config struct {
	// IncludeStack keeps library frames in failure stacks. When false, invoking a
	// chainable link makes it the recorded stack start (ssfi).
	IncludeStack bool `yaml:"include_stack" mapstructure:"include_stack"`
	// ShowDiff attaches a diff of expected and actual values to failures.
	ShowDiff bool `yaml:"show_diff" mapstructure:"show_diff"`
	// TruncateThreshold is the length above which values are summarized in
	// failure messages. Zero disables truncation.
	TruncateThreshold int `yaml:"truncate_threshold" mapstructure:"truncate_threshold"`
}

func DefaultConfig() Config {
	return Config{
		IncludeStack:      false,
		ShowDiff:          true,
		TruncateThreshold: 40,
	}
}
