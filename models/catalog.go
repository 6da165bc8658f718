package models

import "time"

// ServicePackage is a priced tier of a vendor service.
type ServicePackage struct {
	ID    string  `bson:"package_id" json:"package_id"`
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// VendorService is a bookable listing such as a venue or photographer.
type VendorService struct {
	ID              string           `bson:"service_id" json:"service_id"`
	VendorID        string           `bson:"vendor_id" json:"vendor_id"`
	VendorPhone     string           `bson:"vendor_phone" json:"vendor_phone,omitempty"`
	Name            string           `bson:"name" json:"name"`
	Category        string           `bson:"category" json:"category"`
	City            string           `bson:"city" json:"city,omitempty"`
	Packages        []ServicePackage `bson:"packages" json:"packages"`
	DiscountPercent float64          `bson:"discount_percent" json:"discount_percent,omitempty"`
	Rating          float64          `bson:"rating" json:"rating"`
	ReviewCount     int              `bson:"review_count" json:"review_count"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
}

// FindPackage returns the package with the given id.
func (s *VendorService) FindPackage(packageID string) (*ServicePackage, bool) {
	for i := range s.Packages {
		if s.Packages[i].ID == packageID {
			return &s.Packages[i], true
		}
	}
	return nil, false
}

// CardTemplate is a wedding invitation card design sold per card.
type CardTemplate struct {
	ID              string    `bson:"card_id" json:"card_id"`
	VendorID        string    `bson:"vendor_id" json:"vendor_id"`
	VendorPhone     string    `bson:"vendor_phone" json:"vendor_phone,omitempty"`
	Name            string    `bson:"name" json:"name"`
	PricePerCard    float64   `bson:"price_per_card" json:"price_per_card"`
	MinQuantity     int       `bson:"min_quantity" json:"min_quantity,omitempty"`
	DiscountPercent float64   `bson:"discount_percent" json:"discount_percent,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// Catalog categories shown on the home page.
const (
	CategoryRecommendations = "Recommendations"
	CategoryDiscounts       = "Discounts"
	CategoryWeddingCards    = "Wedding Cards"
)

// HomeCategories lists the home page sliders in display order.
var HomeCategories = []string{
	CategoryRecommendations, CategoryDiscounts, "Wedding Venues", "Photographers", "Bridal Makeup",
	"Henna Artists", "Bridal Wear", CategoryWeddingCards, "Car Rental",
}

// TrendingSearch is a search query with the number of times it was issued.
type TrendingSearch struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
