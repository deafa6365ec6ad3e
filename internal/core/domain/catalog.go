package domain

import "strings"

const shortDescriptionLen = 50

// Category groups items. Name is unique.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Item is a catalog entry. CategoryID is the stored reference; Category is
// populated by the read side.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	IsAvailable bool      `json:"isAvailable"`
	CategoryID  int64     `json:"-"`
	Category    *Category `json:"category,omitempty"`
}

// ShortDescription returns the first 50 characters of the description on a
// single line, with "..." appended when it was cut.
func (i Item) ShortDescription() string {
	runes := []rune(i.Description)
	if len(runes) <= shortDescriptionLen {
		return i.Description
	}
	return strings.ReplaceAll(string(runes[:shortDescriptionLen]), "\n", " ") + "..."
}

// NewItem is the input of an item insert. The category is named, not
// referenced by id; it is resolved before the write.
type NewItem struct {
	Name         string
	Price        float64
	Description  string
	Quantity     int
	IsAvailable  bool
	CategoryName string
}

// Valid reports whether the item parameters are acceptable for insertion.
func (n NewItem) Valid() bool {
	return n.Price > 0 && n.Name != "" && n.Description != ""
}
