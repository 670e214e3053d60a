package entities

// SystemSettings is the single global configuration record (no history).
type SystemSettings struct {
	Name         string `json:"name"`
	PrimaryColor string `json:"primaryColor"`
}

// DefaultSystemSettings is returned whenever the settings document has never
// been written (or cannot be decoded; the singleton is the one place that
// silently defaults).
func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		Name:         "AutoColor Funnel",
		PrimaryColor: "#2563eb",
	}
}
