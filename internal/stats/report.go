// Package stats contains review-history aggregation and reporting.
package stats

import (
	"context"
	"sort"

	"github.com/verte-zerg/tuicard/internal/model"
	"github.com/verte-zerg/tuicard/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Reviews []model.ReviewAggregate
	Decks   []model.DeckAggregate
}

// BuildReport loads and prepares review history for rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	reviews, err := st.ListReviews(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(reviews) > cfg.Last {
		reviews = reviews[len(reviews)-cfg.Last:]
	}
	return Report{
		Reviews: reviews,
		Decks:   aggregateDecks(reviews),
	}, nil
}

// Accuracy returns the correct fraction, or 1 when nothing was judged.
func Accuracy(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		return 1.0
	}
	return float64(correct) / float64(total)
}

func aggregateDecks(reviews []model.ReviewAggregate) []model.DeckAggregate {
	byDeck := map[string]*model.DeckAggregate{}
	for _, r := range reviews {
		agg, ok := byDeck[r.DeckPath]
		if !ok {
			agg = &model.DeckAggregate{DeckPath: r.DeckPath}
			byDeck[r.DeckPath] = agg
		}
		agg.Passes++
		agg.Cards += r.Cards
		agg.Correct += r.Correct
		agg.Incorrect += r.Incorrect
	}
	decks := make([]model.DeckAggregate, 0, len(byDeck))
	for _, agg := range byDeck {
		decks = append(decks, *agg)
	}
	sort.Slice(decks, func(i, j int) bool {
		return decks[i].DeckPath < decks[j].DeckPath
	})
	return decks
}

// AccuracyCurve returns per-review accuracy in chronological order.
func AccuracyCurve(reviews []model.ReviewAggregate) []float64 {
	curve := make([]float64, len(reviews))
	for i, r := range reviews {
		curve[i] = Accuracy(r.Correct, r.Incorrect)
	}
	return curve
}
