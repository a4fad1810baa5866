package services

import (
	"fmt"
	"strings"

	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/models"
)

type FoodService struct {
	rek *RecognitionService
}

func NewFoodService(rek *RecognitionService) *FoodService {
	return &FoodService{rek: rek}
}

// A scan candidate: a catalog food scaled to an assumed 100 g portion.
type FoodCandidate struct {
	Label    string  `json:"label"`
	Category string  `json:"category"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Search manually
func (s *FoodService) Search(query string) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := config.DB.
		Where("label ILIKE ?", "%"+strings.TrimSpace(query)+"%").
		Limit(10).
		Find(&foods).Error
	return foods, err
}

// Recognize via image → match detected labels against the catalog
func (s *FoodService) Recognize(base64Img string) ([]FoodCandidate, error) {
	if s.rek == nil {
		return nil, fmt.Errorf("image recognition not configured")
	}
	labels, err := s.rek.RecognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels detected")
	}

	var out []FoodCandidate
	seen := map[string]bool{}
	for _, l := range labels {
		foods, err := s.Search(l)
		if err != nil {
			return nil, err
		}
		for _, f := range foods {
			if seen[f.Label] {
				continue
			}
			seen[f.Label] = true
			out = append(out, FoodCandidate{
				Label:    f.Label,
				Category: f.Category,
				Calories: f.CaloriesPer100g,
				Protein:  f.ProteinPer100g,
				Carbs:    f.CarbsPer100g,
				Fat:      f.FatPer100g,
			})
		}
	}
	return out, nil
}
