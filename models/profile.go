package models

type Profile struct {
	Name string `json:"name,omitempty"`
}

// DisplayName returns the profile name, or "N/A" when the profile has none.
func (p Profile) DisplayName() string {
	if p.Name == "" {
		return "N/A"
	}
	return p.Name
}
