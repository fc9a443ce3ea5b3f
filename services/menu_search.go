package services

import (
	"sort"
	"strings"
	"sync"

	"hms/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// ScoredMenuItem món ăn kèm điểm phù hợp với query
type ScoredMenuItem struct {
	MenuItem models.MenuItem `json:"menuItem"`
	Score    int             `json:"score"`
}

// Hàm chuẩn hóa chuỗi
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	return 1.0 - float64(distance)/maxLen
}

// Danh sách category duy nhất từ menu cho closestmatch
func prepareCategoryList(items []models.MenuItem) []string {
	uniqueValues := make(map[string]bool)
	for _, item := range items {
		if item.Category != "" {
			uniqueValues[NormalizeInput(item.Category)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho một món
func scoreMenuItem(query string, item models.MenuItem, cmCategory *closestmatch.ClosestMatch) int {
	normalizedQuery := NormalizeInput(query)
	normalizedName := NormalizeInput(item.Name)
	score := 0

	if strings.Contains(normalizedName, normalizedQuery) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
		score += 12
	}

	if cmCategory != nil && cmCategory.Closest(normalizedQuery) == NormalizeInput(item.Category) {
		score += 8
	}

	return score
}

// SearchMenuItems tìm món theo query gần đúng, sắp theo điểm giảm dần
func SearchMenuItems(query string, items []models.MenuItem) []ScoredMenuItem {
	categories := prepareCategoryList(items)
	var cmCategory *closestmatch.ClosestMatch
	if len(categories) > 0 {
		cmCategory = createMatcher(categories)
	}

	var scored []ScoredMenuItem
	scoreCh := make(chan ScoredMenuItem, len(items))
	var wg sync.WaitGroup

	for _, item := range items {
		if !item.Available {
			continue
		}
		wg.Add(1)
		go func(item models.MenuItem) {
			defer wg.Done()
			score := scoreMenuItem(query, item, cmCategory)
			if score > 0 {
				scoreCh <- ScoredMenuItem{MenuItem: item, Score: score}
			}
		}(item)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for item := range scoreCh {
		scored = append(scored, item)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
