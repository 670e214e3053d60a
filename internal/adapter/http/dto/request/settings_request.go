package request

type UpdateSettingsRequest struct {
	Name         string `json:"name" binding:"required"`
	PrimaryColor string `json:"primaryColor" binding:"required"`
}
