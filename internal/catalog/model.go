package catalog

import (
	"errors"
	"fmt"

	"github.com/rinisriranganathan/RestBot/internal/money"
)

// Category is the fixed menu classification. The workbook loader rejects
// anything outside this set.
type Category string

const (
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
	CategoryDrink      Category = "Drink"
	CategorySide       Category = "Side"
)

var Categories = []Category{
	CategoryAppetizer,
	CategoryMainCourse,
	CategoryDessert,
	CategoryDrink,
	CategorySide,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", s)
}

// Entry is one sellable menu item. Entries are immutable after catalog load;
// a new upload replaces the whole catalog, never patches it.
type Entry struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Image         string       `json:"image"`
	Category      Category     `json:"category"`
	TasteProfiles []string     `json:"taste_profiles"`
	Price         money.Amount `json:"price"`
	Pieces        int          `json:"pieces,omitempty"` // 0 = not piece-based
}

func (e Entry) Validate() error {
	if e.ID == "" || e.Name == "" {
		return errors.New("entry requires id and name")
	}
	if _, err := ParseCategory(string(e.Category)); err != nil {
		return err
	}
	if e.Pieces < 0 {
		return errors.New("pieces must be positive when set")
	}
	return nil
}

// DisplayName annotates the name with the piece count, e.g. "Gulab Jamun (2 pcs)".
func (e Entry) DisplayName() string {
	if e.Pieces <= 0 {
		return e.Name
	}
	suffix := "pc"
	if e.Pieces > 1 {
		suffix = "pcs"
	}
	return fmt.Sprintf("%s (%d %s)", e.Name, e.Pieces, suffix)
}
