package freetogame

// Game is one catalog record as returned by the upstream /games endpoint.
// IDs are assigned by the source and stable within a session.
type Game struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Thumbnail        string `json:"thumbnail"`
	ShortDescription string `json:"short_description"`
	GameURL          string `json:"game_url"`
	Genre            string `json:"genre"`
	Platform         string `json:"platform"`
	Publisher        string `json:"publisher"`
	Developer        string `json:"developer"`
	ReleaseDate      string `json:"release_date"`
	ProfileURL       string `json:"freetogame_profile_url"`
}

type Screenshot struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

type SystemRequirements struct {
	OS        string `json:"os"`
	Processor string `json:"processor"`
	Memory    string `json:"memory"`
	Graphics  string `json:"graphics"`
	Storage   string `json:"storage"`
}

type GameDetails struct {
	Game
	Description               string              `json:"description"`
	Status                    string              `json:"status"`
	Screenshots               []Screenshot        `json:"screenshots"`
	MinimumSystemRequirements *SystemRequirements `json:"minimum_system_requirements,omitempty"`
}

// Query carries the server-side filters the upstream supports. Text search
// is deliberately absent: it is applied client-side over fetched records.
type Query struct {
	Platform string
	Category string
	SortBy   string
}
