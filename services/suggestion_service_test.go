package services

import (
	"context"
	"testing"
	"time"

	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

func never() float64  { return 0 }
func always() float64 { return 1 }

func findSuggestion(list []Suggestion, id string) *Suggestion {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func TestBuildSuggestionsSugarCrash(t *testing.T) {
	noon := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	user := &models.User{}
	meal := &models.MealLog{Name: "Pasta", Carbs: 80}

	tests := []struct {
		name   string
		level  int
		carbs  float64
		expect bool
	}{
		{name: "low energy heavy carbs", level: 4, carbs: 80, expect: true},
		{name: "low energy light carbs", level: 4, carbs: 30, expect: false},
		{name: "ok energy heavy carbs", level: 5, carbs: 80, expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meal.Carbs = tt.carbs
			energy := &models.EnergyLog{Level: tt.level}

			got := buildSuggestions(meal, energy, 0, user, noon, never)
			found := findSuggestion(got, "sugar-crash")
			if tt.expect && found == nil {
				t.Fatalf("expected sugar-crash warning, got %+v", got)
			}
			if !tt.expect && found != nil {
				t.Fatalf("unexpected sugar-crash warning: %+v", found)
			}
		})
	}
}

func TestBuildSuggestionsProteinGap(t *testing.T) {
	evening := time.Date(2026, 8, 31, 19, 0, 0, 0, time.Local)
	weight := 70.0 // target 112g, threshold 89.6g
	user := &models.User{Weight: &weight}

	short := buildSuggestions(nil, nil, 50, user, evening, never)
	if findSuggestion(short, "protein-gap") == nil {
		t.Fatalf("expected protein-gap tip at 50g/112g, got %+v", short)
	}

	nearTarget := buildSuggestions(nil, nil, 90, user, evening, never)
	if findSuggestion(nearTarget, "protein-gap") != nil {
		t.Fatal("90g is past 80% of target, no tip expected")
	}

	// Without a known weight the target falls back to a flat 100g.
	noWeight := buildSuggestions(nil, nil, 70, &models.User{}, evening, never)
	if findSuggestion(noWeight, "protein-gap") == nil {
		t.Fatalf("expected protein-gap tip at 70g/100g, got %+v", noWeight)
	}

	// The rule only fires in the evening.
	noon := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	daytime := buildSuggestions(nil, nil, 0, user, noon, never)
	if findSuggestion(daytime, "protein-gap") != nil {
		t.Fatal("protein-gap must not fire before 18:00")
	}
}

func TestBuildSuggestionsDaytimeFiller(t *testing.T) {
	noon := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	user := &models.User{}

	got := buildSuggestions(nil, nil, 0, user, noon, always)
	if findSuggestion(got, "rec-hydration") == nil {
		t.Fatalf("expected hydration filler when the chance hits, got %+v", got)
	}

	got = buildSuggestions(nil, nil, 0, user, noon, never)
	if len(got) != 0 {
		t.Fatalf("expected no suggestions when the chance misses, got %+v", got)
	}

	// The filler only pads an otherwise empty daytime list.
	meal := &models.MealLog{Name: "Pasta", Carbs: 80}
	energy := &models.EnergyLog{Level: 3}
	got = buildSuggestions(meal, energy, 0, user, noon, always)
	if findSuggestion(got, "sugar-crash") == nil {
		t.Fatalf("expected the crash warning, got %+v", got)
	}
	if findSuggestion(got, "rec-hydration") != nil {
		t.Fatal("filler must not fire alongside a real finding")
	}
}

func TestBuildSuggestionsSuccess(t *testing.T) {
	noon := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	user := &models.User{}

	got := buildSuggestions(nil, &models.EnergyLog{Level: 8}, 0, user, noon, never)
	if len(got) != 1 || got[0].ID != "doing-great" || got[0].Type != "success" {
		t.Fatalf("expected the success note alone, got %+v", got)
	}

	got = buildSuggestions(nil, &models.EnergyLog{Level: 7}, 0, user, noon, never)
	if findSuggestion(got, "doing-great") != nil {
		t.Fatal("level 7 is below the success threshold")
	}
}

func TestBuildSuggestionsAdditive(t *testing.T) {
	// A carb-heavy meal, a low reading earlier and a protein shortfall can
	// all surface in one cycle; order is fixed by rule order.
	evening := time.Date(2026, 8, 31, 19, 0, 0, 0, time.Local)
	user := &models.User{}
	meal := &models.MealLog{Name: "Ramen", Carbs: 90}
	energy := &models.EnergyLog{Level: 3}

	got := buildSuggestions(meal, energy, 10, user, evening, never)
	if len(got) != 2 {
		t.Fatalf("expected two findings, got %+v", got)
	}
	if got[0].ID != "sugar-crash" || got[1].ID != "protein-gap" {
		t.Fatalf("expected fixed rule order, got %q then %q", got[0].ID, got[1].ID)
	}
}

func TestBuildSuggestionsNoHistory(t *testing.T) {
	noon := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	got := buildSuggestions(nil, nil, 0, &models.User{}, noon, never)
	if got == nil {
		t.Fatal("expected an empty list, not nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no findings without history, got %+v", got)
	}
}

func TestSuggestionsFetchesFromStore(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, nil)

	now := time.Date(2026, 8, 31, 19, 0, 0, 0, time.Local)
	rows := []any{
		&models.MealLog{UserID: user.ID, Name: "Ramen", Carbs: 90, Protein: 20, LoggedAt: now.Add(-time.Hour)},
		&models.EnergyLog{UserID: user.ID, Level: 3, LoggedAt: now.Add(-30 * time.Minute)},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	svc := NewSuggestionService(db)
	svc.now = fixedClock(now)
	svc.chance = never

	got := svc.Suggestions(context.Background(), user)
	if findSuggestion(got, "sugar-crash") == nil {
		t.Fatalf("expected the crash warning from stored events, got %+v", got)
	}
	if findSuggestion(got, "protein-gap") == nil {
		t.Fatalf("expected the evening protein tip (20g/100g), got %+v", got)
	}
}
