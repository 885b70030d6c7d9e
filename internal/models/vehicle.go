package models

type Vehicle struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Plate     string `bson:"plate" json:"plate"` // Normalized to uppercase, unique.
	Model     string `bson:"model" json:"model"`
	Brand     string `bson:"brand" json:"brand"`
	Year      int    `bson:"year" json:"year"`
	Available bool   `bson:"available" json:"available"`
}
