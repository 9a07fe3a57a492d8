package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"docs_dir":      "./docs",
		"schemas_dir":   "",
		"workers":       4,
		"fail_under":    0,
		"show_progress": true,
	}
}
