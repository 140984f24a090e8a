package request

type CreateGameRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ImageURL string `json:"image_url" validate:"required,url"`
}
