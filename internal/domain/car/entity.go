package car

// Car is an immutable catalog snapshot fetched from the rental API.
// The frontend never owns it beyond display; the JSON tags match the
// upstream wire format.
type Car struct {
	ID           int64    `json:"id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Category     Category `json:"category"`
	Fuel         string   `json:"fuel"`
	Transmission string   `json:"transmission"`
	Seats        int      `json:"seats"`
	Price        float64  `json:"price"` // per day, whole currency units
	ImageURL     string   `json:"imageUrl"`
}

type Category struct {
	Name string `json:"name"`
}
