package models

type Category string

const (
	CategoryPersonal  Category = "Personal"
	CategoryBusiness  Category = "Business"
	CategorySpecialty Category = "Specialty"
)

// Categories lists the catalog tabs in display order.
var Categories = []Category{CategoryPersonal, CategoryBusiness, CategorySpecialty}

func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryBusiness, CategorySpecialty:
		return true
	}
	return false
}

// Offering is one sellable line from the services catalog. Category and
// Popular are derived once at load time and never change afterwards.
type Offering struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Popular     bool     `json:"popular"`
}
