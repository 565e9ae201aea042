package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tourguide-client/internal/domain"
)

func strPtr(s string) *string { return &s }

// SeedTours наполняет хранилище демонстрационным каталогом туров.
func SeedTours(ctx context.Context, store *TourStore) error {
	now := time.Now().UTC()

	tours := []domain.Tour{
		{
			ID:           uuid.New().String(),
			Name:         "Historic Downtown Walking Tour",
			Description:  "Explore the rich history of downtown with iconic landmarks, museums, and architectural wonders. Perfect for history enthusiasts and first-time visitors.",
			Difficulty:   domain.DifficultyEasy,
			Duration:     "2-3 hours",
			Distance:     "3 km",
			Category:     domain.CategoryWalking,
			Image:        strPtr("https://images.unsplash.com/photo-1477959858617-67f85cf4f1df"),
			Rating:       4.5,
			ReviewsCount: 128,
			CreatedAt:    &now,
			PointsOfInterest: []domain.PointOfInterest{
				{
					ID:          "poi1",
					Name:        "City Hall",
					Description: "A stunning example of neo-classical architecture built in 1885. The building features grand columns and intricate stonework.",
					Location:    domain.Location{Lat: 40.7128, Lng: -74.0060},
					Order:       1,
				},
				{
					ID:          "poi2",
					Name:        "Historical Museum",
					Description: "Houses artifacts and exhibits spanning 300 years of local history. Don't miss the colonial era collection on the second floor.",
					Location:    domain.Location{Lat: 40.7138, Lng: -74.0070},
					Order:       2,
				},
				{
					ID:          "poi3",
					Name:        "Old Town Square",
					Description: "The heart of the historic district, this square has been a gathering place since 1720. Features a beautiful fountain and seasonal markets.",
					Location:    domain.Location{Lat: 40.7148, Lng: -74.0080},
					Order:       3,
				},
			},
		},
		{
			ID:           uuid.New().String(),
			Name:         "Riverside Cycling Adventure",
			Description:  "A scenic cycling route along the river with breathtaking views, parks, and waterfront attractions. Suitable for all skill levels.",
			Difficulty:   domain.DifficultyModerate,
			Duration:     "3-4 hours",
			Distance:     "15 km",
			Category:     domain.CategoryCycling,
			Image:        strPtr("https://images.unsplash.com/photo-1571068316344-75bc76f77890"),
			Rating:       4.8,
			ReviewsCount: 89,
			CreatedAt:    &now,
			PointsOfInterest: []domain.PointOfInterest{
				{
					ID:          "poi4",
					Name:        "River Park",
					Description: "A beautiful green space with picnic areas and river access. Popular spot for photos and rest breaks.",
					Location:    domain.Location{Lat: 40.7200, Lng: -74.0100},
					Order:       1,
				},
				{
					ID:          "poi5",
					Name:        "Old Bridge",
					Description: "Historic suspension bridge offering panoramic river views. Built in 1903 and recently restored.",
					Location:    domain.Location{Lat: 40.7250, Lng: -74.0150},
					Order:       2,
				},
				{
					ID:          "poi6",
					Name:        "Waterfront Promenade",
					Description: "Modern boardwalk with cafes, art installations, and stunning sunset views. Great place to end the tour.",
					Location:    domain.Location{Lat: 40.7300, Lng: -74.0200},
					Order:       3,
				},
			},
		},
		{
			ID:           uuid.New().String(),
			Name:         "Mountain Trail Explorer",
			Description:  "Challenge yourself with this mountain trail featuring elevation changes, forest paths, and summit views. For experienced hikers.",
			Difficulty:   domain.DifficultyHard,
			Duration:     "5-6 hours",
			Distance:     "12 km",
			Category:     domain.CategoryWalking,
			Image:        strPtr("https://images.unsplash.com/photo-1551632811-561732d1e306"),
			Rating:       4.7,
			ReviewsCount: 67,
			CreatedAt:    &now,
			PointsOfInterest: []domain.PointOfInterest{
				{
					ID:          "poi7",
					Name:        "Trailhead Station",
					Description: "Starting point with parking, restrooms, and trail maps. Check weather conditions before starting.",
					Location:    domain.Location{Lat: 40.7400, Lng: -74.0300},
					Order:       1,
				},
				{
					ID:          "poi8",
					Name:        "Forest Lookout",
					Description: "Midway point with covered rest area and forest views. Perfect spot for lunch break.",
					Location:    domain.Location{Lat: 40.7450, Lng: -74.0350},
					Order:       2,
				},
				{
					ID:          "poi9",
					Name:        "Summit Peak",
					Description: "The highest point offering 360-degree views of the valley and surrounding peaks. Worth the climb!",
					Location:    domain.Location{Lat: 40.7500, Lng: -74.0400},
					Order:       3,
				},
			},
		},
		{
			ID:           uuid.New().String(),
			Name:         "Garden District Stroll",
			Description:  "Leisurely walk through charming neighborhoods with beautiful gardens, cafes, and boutique shops. Family-friendly.",
			Difficulty:   domain.DifficultyEasy,
			Duration:     "1-2 hours",
			Distance:     "2 km",
			Category:     domain.CategoryWalking,
			Image:        strPtr("https://images.unsplash.com/photo-1519378058457-4c29a0a2efac"),
			Rating:       4.6,
			ReviewsCount: 156,
			CreatedAt:    &now,
			PointsOfInterest: []domain.PointOfInterest{
				{
					ID:          "poi10",
					Name:        "Rose Garden",
					Description: "Award-winning garden with over 200 rose varieties. Best visited in spring and early summer.",
					Location:    domain.Location{Lat: 40.7100, Lng: -74.0050},
					Order:       1,
				},
				{
					ID:          "poi11",
					Name:        "Victorian Houses Row",
					Description: "Perfectly preserved Victorian homes from the late 1800s. These colorful 'Painted Ladies' are Instagram favorites.",
					Location:    domain.Location{Lat: 40.7120, Lng: -74.0070},
					Order:       2,
				},
				{
					ID:          "poi12",
					Name:        "Community Park",
					Description: "Local park with playground, pond, and picnic areas. Popular with families and great for a relaxing break.",
					Location:    domain.Location{Lat: 40.7140, Lng: -74.0090},
					Order:       3,
				},
			},
		},
	}

	for i := range tours {
		if err := store.Create(ctx, &tours[i]); err != nil {
			return err
		}
	}
	return nil
}
