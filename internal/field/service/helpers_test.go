package service

import (
	"time"

	"github.com/allisson/paymentfields/internal/field/domain"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func testRules() domain.Rules {
	return domain.Rules{Country: "US", Now: testNow}
}

func kernAt(locations ...int) []domain.Style {
	styles := make([]domain.Style, 0, len(locations))
	for _, loc := range locations {
		styles = append(styles, domain.Style{
			Range: domain.Range{Location: loc, Length: 1},
			Hint:  domain.StyleKern,
			Value: domain.DefaultKern,
		})
	}
	return styles
}
