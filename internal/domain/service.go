package domain

// Service is a bookable decoration service from the catalog.
type Service struct {
	ID          string
	Name        string
	Category    string
	Cost        int
	Unit        string
	Description string
	Image       string
}

// Decorator is the public profile of a decorator shown on marketing pages.
type Decorator struct {
	ID             string
	Name           string
	PhotoURL       string
	Specialization string
	Rating         float64
	ProjectsDone   int
}

// ServiceQuery captures catalog list filters.
type ServiceQuery struct {
	Search   string
	Category string
	Sort     string
	Page     int
	Limit    int
}

// Pagination mirrors the list envelope the API returns.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}
