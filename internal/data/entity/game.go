package entity

// Game is a sport offered on the marketplace. ImageURL points at the external image host.
type Game struct {
	BaseSimple
	Name     string `db:"name"`
	ImageURL string `db:"image_url"`
}
