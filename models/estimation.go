package models

import "time"

// Estimation is a user's cart of vendor services and invitation cards.
type Estimation struct {
	ID        string              `bson:"estimation_id" json:"estimation_id"` // Unique estimation identifier (UUID)
	UserID    string              `bson:"user_id" json:"user_id"`             // Owner of the estimation
	Services  []EstimationService `bson:"services" json:"services"`           // Selected service packages, in insertion order
	Cards     []EstimationCard    `bson:"cards" json:"cards"`                 // Selected invitation cards, in insertion order
	TotalCost float64             `bson:"total_cost" json:"total_cost"`       // Sum of line totals
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
}

// EstimationService is a service package line inside an estimation.
type EstimationService struct {
	ServiceID    string  `bson:"service_id" json:"service_id"`
	Name         string  `bson:"name" json:"name"`
	PackageID    string  `bson:"package_id" json:"package_id"`
	PackagePrice float64 `bson:"package_price" json:"package_price"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	VendorID     string  `bson:"vendor_id" json:"vendor_id,omitempty"`
}

// EstimationCard is an invitation card line inside an estimation.
type EstimationCard struct {
	CardID       string  `bson:"card_id" json:"card_id"`
	Name         string  `bson:"name" json:"name"`
	PricePerCard float64 `bson:"price_per_card" json:"price_per_card"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	VendorID     string  `bson:"vendor_id" json:"vendor_id,omitempty"`
}

// LineTotal returns package price times quantity.
func (s EstimationService) LineTotal() float64 {
	return s.PackagePrice * float64(s.Quantity)
}

// LineTotal returns card price times quantity.
func (c EstimationCard) LineTotal() float64 {
	return c.PricePerCard * float64(c.Quantity)
}

// ComputeTotal sums every line of the estimation.
func (e *Estimation) ComputeTotal() float64 {
	var total float64
	for _, s := range e.Services {
		total += s.LineTotal()
	}
	for _, c := range e.Cards {
		total += c.LineTotal()
	}
	return total
}

// RecalculateTotal refreshes TotalCost from the current lines.
func (e *Estimation) RecalculateTotal() {
	e.TotalCost = e.ComputeTotal()
}

// IsEmpty reports whether the estimation has no lines left.
func (e *Estimation) IsEmpty() bool {
	return len(e.Services) == 0 && len(e.Cards) == 0
}

// FindService returns the service line with the given id.
func (e *Estimation) FindService(serviceID string) (*EstimationService, bool) {
	for i := range e.Services {
		if e.Services[i].ServiceID == serviceID {
			return &e.Services[i], true
		}
	}
	return nil, false
}

// FindCard returns the card line with the given id.
func (e *Estimation) FindCard(cardID string) (*EstimationCard, bool) {
	for i := range e.Cards {
		if e.Cards[i].CardID == cardID {
			return &e.Cards[i], true
		}
	}
	return nil, false
}

// RemoveService drops the service line and reports whether it existed.
func (e *Estimation) RemoveService(serviceID string) bool {
	for i := range e.Services {
		if e.Services[i].ServiceID == serviceID {
			e.Services = append(e.Services[:i], e.Services[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveCard drops the card line and reports whether it existed.
func (e *Estimation) RemoveCard(cardID string) bool {
	for i := range e.Cards {
		if e.Cards[i].CardID == cardID {
			e.Cards = append(e.Cards[:i], e.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// ShortID is the eight character prefix shown to users.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
