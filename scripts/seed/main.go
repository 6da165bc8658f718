package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"eazywed/config"
	"eazywed/database"
	"eazywed/database/repository"
	"eazywed/models"
	"eazywed/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type vendor struct {
	id    string
	phone string
}

var vendors = []vendor{
	{id: "vendor-lahore", phone: "03001234567"},
	{id: "vendor-karachi", phone: "03217654321"},
	{id: "vendor-islamabad", phone: "03331112233"},
}

var serviceNames = map[string][]string{
	"Wedding Venues": {"Royal Palm Marquee", "Garden Court Banquet", "Pearl Continental Hall"},
	"Photographers":  {"Lens & Light Studio", "Moments by Ayesha", "Golden Hour Films"},
	"Bridal Makeup":  {"Glam Bridal Lounge", "Nabila Salon", "Blush Studio"},
	"Henna Artists":  {"Mehndi by Sana", "Henna Heritage"},
	"Bridal Wear":    {"Zari Couture", "Maria B Bridal"},
	"Car Rental":     {"Vintage Rides", "Luxury Wheels"},
}

var cities = []string{"Lahore", "Karachi", "Islamabad"}

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.Database()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Clear existing catalog.
	for _, coll := range []string{"services", "card_templates"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	catalog := repository.NewMongoCatalogRepo(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	count := 0
	for category, names := range serviceNames {
		for i, name := range names {
			v := vendors[(count+i)%len(vendors)]
			base := float64(10000 + rng.Intn(40)*1000)
			svc := &models.VendorService{
				ID:          uuid.New().String(),
				VendorID:    v.id,
				VendorPhone: v.phone,
				Name:        name,
				Category:    category,
				City:        cities[rng.Intn(len(cities))],
				Packages: []models.ServicePackage{
					{ID: uuid.New().String(), Name: "Standard", Price: base},
					{ID: uuid.New().String(), Name: "Premium", Price: base * 1.5},
				},
				Rating:      3.5 + float64(rng.Intn(16))/10,
				ReviewCount: rng.Intn(200),
			}
			if rng.Intn(3) == 0 {
				svc.DiscountPercent = float64(5 * (1 + rng.Intn(6)))
			}
			if err := catalog.UpsertService(ctx, svc); err != nil {
				log.Fatalf("Failed to insert service %s: %v", name, err)
			}
		}
		count += len(names)
	}

	cards := []string{"Floral Gold Foil", "Classic Ivory", "Royal Maroon Scroll", "Minimal Pastel"}
	for i, name := range cards {
		v := vendors[i%len(vendors)]
		card := &models.CardTemplate{
			ID:           uuid.New().String(),
			VendorID:     v.id,
			VendorPhone:  v.phone,
			Name:         name,
			PricePerCard: float64(150 + rng.Intn(10)*50),
			MinQuantity:  50,
		}
		if err := catalog.UpsertCard(ctx, card); err != nil {
			log.Fatalf("Failed to insert card %s: %v", name, err)
		}
	}
	fmt.Printf("Seeded %d services and %d card templates\n", count, len(cards))

	// Development tokens for exercising the dashboard.
	for _, id := range []string{"user-demo", vendors[0].id} {
		token, err := utils.GenerateToken(id, id+"@eazywed.local", 30*24*time.Hour)
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}
		fmt.Printf("%s: %s\n", id, token)
	}
}
