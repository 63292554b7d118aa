package response

import (
	"time"

	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/services/fleet"
)

// Person represents a person in API responses
type Person struct {
	FullName string `json:"full_name"`
}

// PersonFromModel converts any named entity to a Person
func PersonFromModel(n model.Named) Person {
	return Person{FullName: n.FullName()}
}

// Starship represents a starship in API responses
type Starship struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Prefix       *string   `json:"prefix"`
	FullName     string    `json:"full_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// StarshipFromModel converts a model.Starship
func StarshipFromModel(s *model.Starship) Starship {
	return Starship{
		ID:           string(s.ID),
		Name:         s.Name,
		Prefix:       s.Prefix,
		FullName:     s.FullName(),
		RegisteredAt: s.RegisteredAt,
	}
}

// StarshipList wraps a list of starships
type StarshipList struct {
	Starships []Starship `json:"starships"`
}

// StarshipListFromModel converts a slice of model.Starship
func StarshipListFromModel(ships []*model.Starship) StarshipList {
	list := make([]Starship, len(ships))
	for i, s := range ships {
		list[i] = StarshipFromModel(s)
	}
	return StarshipList{Starships: list}
}

// Comparison is the response for comparing two starships
type Comparison struct {
	Equal         bool   `json:"equal"`
	LeftFullName  string `json:"left_full_name"`
	RightFullName string `json:"right_full_name"`
}

// ComparisonFromService converts a fleet.Comparison
func ComparisonFromService(c *fleet.Comparison) Comparison {
	return Comparison{
		Equal:         c.Equal,
		LeftFullName:  c.Left.FullName(),
		RightFullName: c.Right.FullName(),
	}
}

// Roll represents a recorded roll
type Roll struct {
	ID       string    `json:"id"`
	Sides    int       `json:"sides"`
	Value    int       `json:"value"`
	RolledAt time.Time `json:"rolled_at"`
}

// RollFromModel converts a model.Roll
func RollFromModel(r *model.Roll) Roll {
	return Roll{
		ID:       string(r.ID),
		Sides:    r.Sides,
		Value:    r.Value,
		RolledAt: r.RolledAt,
	}
}

// RollList wraps a list of rolls
type RollList struct {
	Rolls []Roll `json:"rolls"`
}

// RollListFromModel converts a slice of model.Roll
func RollListFromModel(rolls []*model.Roll) RollList {
	list := make([]Roll, len(rolls))
	for i, r := range rolls {
		list[i] = RollFromModel(r)
	}
	return RollList{Rolls: list}
}

// RollResult is the response after rolling a die
type RollResult struct {
	Sides int    `json:"sides"`
	Rolls []Roll `json:"rolls"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
