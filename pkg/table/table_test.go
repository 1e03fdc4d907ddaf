package table

import "fmt"

type advisee struct {
	ID        string
	First     string
	Last      string
	Email     string
	YearLevel string
	CoachID   string
	Units     float64
}

func adviseeConfig() Config[advisee] {
	return Config[advisee]{
		ID: func(a advisee) string { return a.ID },
		Search: []func(advisee) string{
			func(a advisee) string { return a.First },
			func(a advisee) string { return a.Last },
			func(a advisee) string { return a.First + " " + a.Last },
			func(a advisee) string { return a.Email },
			func(a advisee) string { return a.ID },
		},
		Dimensions: map[string]func(advisee) string{
			"yearLevel": func(a advisee) string { return a.YearLevel },
			"coachId":   func(a advisee) string { return a.CoachID },
		},
		SortKeys: map[string]SortKey[advisee]{
			"lastName": {String: func(a advisee) string { return a.Last }},
			"fullName": {String: func(a advisee) string { return a.First + " " + a.Last }, Fold: true},
			"units":    {Number: func(a advisee) float64 { return a.Units }},
		},
		DefaultSortKey: "lastName",
		PageSize:       10,
	}
}

func fixtureAdvisees() []advisee {
	return []advisee{
		{ID: "s1", First: "Ana", Last: "Reyes", Email: "ana@uni.edu", YearLevel: "FIRST", CoachID: "c1", Units: 18},
		{ID: "s2", First: "Ben", Last: "Cruz", Email: "ben@uni.edu", YearLevel: "SECOND", CoachID: "c1", Units: 21},
		{ID: "s3", First: "Carla", Last: "Santos", Email: "carla@uni.edu", YearLevel: "SECOND", CoachID: "c2", Units: 15},
		{ID: "s4", First: "Dan", Last: "Cruz", Email: "dan@uni.edu", YearLevel: "THIRD", CoachID: "c2", Units: 21},
		{ID: "s5", First: "Eva", Last: "Lim", Email: "eva@uni.edu", YearLevel: "SECOND", CoachID: "c1", Units: 12},
	}
}

func manyAdvisees(n int) []advisee {
	out := make([]advisee, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, advisee{
			ID:    fmt.Sprintf("s%03d", i),
			First: fmt.Sprintf("First%03d", i),
			Last:  fmt.Sprintf("Last%03d", i),
			Units: float64(i % 7),
		})
	}
	return out
}
