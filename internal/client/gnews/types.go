package gnews

type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Article has no numeric id; the URL is its identity.
type Article struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	URL         string  `json:"url"`
	Image       *string `json:"image"`
	PublishedAt string  `json:"publishedAt"`
	Source      Source  `json:"source"`
}

type SearchResponse struct {
	TotalArticles int       `json:"totalArticles"`
	Articles      []Article `json:"articles"`
}
