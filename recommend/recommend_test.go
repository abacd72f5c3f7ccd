package recommend

import (
	"fmt"
	"testing"

	"business-service/models"
)

func makeBusinesses(n int) []models.Business {
	out := make([]models.Business, n)
	for i := range out {
		out[i] = models.Business{ID: uint(i + 1), BusinessName: fmt.Sprintf("biz-%d", i+1)}
	}
	return out
}

func ids(scored []Scored) []uint {
	out := make([]uint, len(scored))
	for i, s := range scored {
		out[i] = s.ID
	}
	return out
}

func TestRankNoPreferencesReturnsFirstTen(t *testing.T) {
	got := Rank(makeBusinesses(15), nil)
	if len(got) != FallbackSize {
		t.Fatalf("len = %d, want %d", len(got), FallbackSize)
	}
	for i, s := range got {
		if s.ID != uint(i+1) {
			t.Fatalf("position %d has id %d, want persisted order", i, s.ID)
		}
		if s.MatchScore != 0 {
			t.Fatalf("fallback entries should not be scored, got %d", s.MatchScore)
		}
	}
}

func TestRankNoPreferencesFewerThanTen(t *testing.T) {
	got := Rank(makeBusinesses(4), []string{})
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
}

func TestRankNoPreferencesEmptyInput(t *testing.T) {
	if got := Rank(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

func TestRankFiltersAndSortsByScore(t *testing.T) {
	businesses := []models.Business{
		{ID: 1, Categories: models.Categories{"Burgers"}},
		{ID: 2, Categories: models.Categories{"Italian"}},
		{ID: 3, Categories: models.Categories{"Italian", "Pizza", "Pasta"}},
		{ID: 4, Categories: models.Categories{"Pizza", "Italian"}},
		{ID: 5, Categories: models.Categories{"italian"}},
	}
	got := Rank(businesses, []string{"Italian", "Pizza", "Pasta"})

	want := []uint{3, 4, 2}
	if fmt.Sprint(ids(got)) != fmt.Sprint(want) {
		t.Fatalf("order = %v, want %v", ids(got), want)
	}
	scores := []int{3, 2, 1}
	for i, s := range got {
		if s.MatchScore != scores[i] {
			t.Errorf("business %d score = %d, want %d", s.ID, s.MatchScore, scores[i])
		}
	}
}

func TestRankEveryResultContainsPreference(t *testing.T) {
	businesses := []models.Business{
		{ID: 1, Categories: models.Categories{"Italian", "Pizza"}},
		{ID: 2, Categories: models.Categories{"Thai"}},
		{ID: 3, Categories: models.Categories{"Coffee", "Italian"}},
		{ID: 4},
	}
	got := Rank(businesses, []string{"Italian"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, s := range got {
		found := false
		for _, c := range s.Categories {
			if c == "Italian" {
				found = true
			}
		}
		if !found {
			t.Errorf("business %d returned without Italian", s.ID)
		}
	}
}

func TestRankTiesKeepEncounterOrder(t *testing.T) {
	businesses := []models.Business{
		{ID: 7, Categories: models.Categories{"Thai"}},
		{ID: 3, Categories: models.Categories{"Thai"}},
		{ID: 9, Categories: models.Categories{"Thai", "Curry"}},
		{ID: 1, Categories: models.Categories{"Thai"}},
	}
	got := Rank(businesses, []string{"Thai", "Curry"})
	want := []uint{9, 7, 3, 1}
	if fmt.Sprint(ids(got)) != fmt.Sprint(want) {
		t.Fatalf("order = %v, want %v", ids(got), want)
	}
}

// Preferences that match nothing give an empty list rather than the
// first-ten fallback used when there are no preferences at all.
func TestRankPreferencesWithoutOverlapIsEmpty(t *testing.T) {
	businesses := makeBusinesses(12)
	businesses[0].Categories = models.Categories{"Burgers"}

	got := Rank(businesses, []string{"Sushi"})
	if len(got) != 0 {
		t.Fatalf("expected no results, got %v", ids(got))
	}
}

func TestMatchScoreIgnoresDuplicateCategories(t *testing.T) {
	wanted := map[string]struct{}{"Pizza": {}}
	if got := MatchScore([]string{"Pizza", "Pizza"}, wanted); got != 1 {
		t.Fatalf("MatchScore = %d, want 1", got)
	}
}
