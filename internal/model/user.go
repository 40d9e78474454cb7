package model

// User is the synthetic single tenant that owns every entity.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BaseCurrency string `json:"baseCurrency"`
}
