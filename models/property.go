package models

// Property is a rental unit listed on the portal.
type Property struct {
	ID          string  `db:"id" json:"id" yaml:"id"`
	LandlordID  string  `db:"landlord_id" json:"landlordId" yaml:"landlordId"`
	Title       string  `db:"title" json:"title" yaml:"title"`
	Address     string  `db:"address" json:"address" yaml:"address"`
	Description string  `db:"description" json:"description" yaml:"description"`
	RentAmount  float64 `db:"rent_amount" json:"rentAmount" yaml:"rentAmount"`
	Bedrooms    int     `db:"bedrooms" json:"bedrooms" yaml:"bedrooms"`
	Bathrooms   float64 `db:"bathrooms" json:"bathrooms" yaml:"bathrooms"`
	ImageURL    string  `db:"image_url" json:"imageUrl" yaml:"imageUrl"`
	IsAvailable bool    `db:"is_available" json:"isAvailable" yaml:"isAvailable"`
}
