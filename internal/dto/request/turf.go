package request

type CreateTurfRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Location     string   `json:"location" validate:"required,min=1,max=200"`
	ImageURL     string   `json:"image_url" validate:"required,url"`
	PricePerHour *float64 `json:"price_per_hour" validate:"required,gte=0,money"`
	Contact      string   `json:"contact" validate:"required,len=10,numeric"`
	Description  string   `json:"description,omitempty" validate:"max=1000"`
	Slots        []string `json:"slots" validate:"required,min=1,unique,dive,slot"`
	GameID       string   `json:"game_id" validate:"required,uuid"`
	OwnerID      string   `json:"owner_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateTurfRequest carries the fields an owner may change after listing.
type UpdateTurfRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	PricePerHour *float64 `json:"price_per_hour,omitempty" validate:"omitempty,gte=0,money"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Slots        []string `json:"slots,omitempty" validate:"omitempty,min=1,unique,dive,slot"`
}
