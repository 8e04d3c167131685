package models

// Category groups deals under a human-readable name. The name doubles as the
// value cached on Deal.CategoryName, so renames must cascade (see
// services.CategoryServicer.UpdateCategory).
type Category struct {
	Base
	Name        string `gorm:"size:120;not null" json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	// No gorm default here: with a default tag GORM drops zero values from
	// the INSERT, so an explicit false would be overwritten by the column
	// default. The service sets the true default when the client omits it.
	IsActive bool `gorm:"not null" json:"is_active"`

	// RouteKey is the percent-encoded form of Name, safe for use as a URL
	// path segment. Derived on read, never stored.
	RouteKey string `gorm:"-" json:"route_key,omitempty"`

	// Relationships
	Deals []Deal `gorm:"foreignKey:CategoryID" json:"deals,omitempty"`
}
