package entity

import "time"

// HealthBlog is an informational article shown on the storefront.
type HealthBlog struct {
	ID        string    `json:"_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Author    string    `json:"author,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Company is a pharmaceutical company listed on the about page.
type Company struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Logo    string `json:"logo,omitempty"`
	Website string `json:"website,omitempty"`
}

// Category groups medicines for browsing.
type Category struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Count int64  `json:"count"`
}
