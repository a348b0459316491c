// Package curriculum defines the built-in algebra topic sequence. The
// serve command upserts it on startup so a fresh database is immediately
// usable; edits here flow to existing databases on the next start.
package curriculum

import "github.com/abhisek/tutorloop/internal/store"

// Default returns the algebra curriculum in display order. Each topic's
// prerequisite is the one before it, so completing a topic unlocks the next.
func Default() []*store.Topic {
	return []*store.Topic{
		{
			ID:           "linear-equations",
			Name:         "Linear Equations",
			Description:  "Solving one-variable linear equations, including multi-step equations and variables on both sides.",
			DisplayOrder: 1,
		},
		{
			ID:             "inequalities",
			Name:           "Inequalities",
			Description:    "Solving and graphing linear inequalities, including compound inequalities and sign flips.",
			DisplayOrder:   2,
			PrerequisiteID: "linear-equations",
		},
		{
			ID:             "systems-of-equations",
			Name:           "Systems of Equations",
			Description:    "Solving systems of two linear equations by substitution, elimination, and graphing.",
			DisplayOrder:   3,
			PrerequisiteID: "inequalities",
		},
		{
			ID:             "exponents-and-polynomials",
			Name:           "Exponents and Polynomials",
			Description:    "Exponent rules, polynomial arithmetic, and multiplying binomials.",
			DisplayOrder:   4,
			PrerequisiteID: "systems-of-equations",
		},
		{
			ID:             "factoring",
			Name:           "Factoring",
			Description:    "Factoring out common factors, factoring trinomials, and difference of squares.",
			DisplayOrder:   5,
			PrerequisiteID: "exponents-and-polynomials",
		},
		{
			ID:             "quadratic-equations",
			Name:           "Quadratic Equations",
			Description:    "Solving quadratics by factoring, completing the square, and the quadratic formula.",
			DisplayOrder:   6,
			PrerequisiteID: "factoring",
		},
	}
}
