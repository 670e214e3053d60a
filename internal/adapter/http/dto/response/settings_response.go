package response

import "funilaria_autocolor/internal/domain/entities"

type SettingsResponse struct {
	Name         string `json:"name"`
	PrimaryColor string `json:"primaryColor"`
}

func FromSettings(s entities.SystemSettings) SettingsResponse {
	return SettingsResponse{Name: s.Name, PrimaryColor: s.PrimaryColor}
}
