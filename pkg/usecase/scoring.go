package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/complypilot/complypilot/pkg/catalog"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

// scoreAnswers turns one questionnaire submission into a scored result.
//
// Per category: round(100 * yesWeight / totalWeight). Overall: mean of the
// category sub-scores, each category counting equally regardless of how many
// questions it holds. Every catalog question not answered "yes" is a gap;
// a missing answer counts the same as an explicit "no". Submitted answers
// for question IDs not in the catalog are dropped. When the same question
// is answered twice, the last answer wins.
func scoreAnswers(cat *catalog.Catalog, userID types.UserID, answers []model.Answer) *model.HealthCheck {
	yes := make(map[string]bool, len(answers))
	responses := make([]model.Answer, 0, len(answers))
	for _, a := range answers {
		if _, ok := cat.Question(a.QuestionID); !ok {
			continue
		}
		yes[a.QuestionID] = a.Answer
		responses = append(responses, a)
	}

	yesWeight := make(map[types.QuestionCategory]int)
	totalWeight := make(map[types.QuestionCategory]int)
	var gaps []model.Gap

	for _, q := range cat.Questions() {
		totalWeight[q.Category] += q.Weight
		if yes[q.ID] {
			yesWeight[q.Category] += q.Weight
			continue
		}
		gaps = append(gaps, model.Gap{
			QuestionID:  q.ID,
			Category:    q.Category,
			Subcategory: q.Subcategory,
			Question:    q.Text,
			Guidance:    q.Guidance,
			Weight:      q.Weight,
			Priority:    types.PriorityForWeight(q.Weight),
		})
	}

	// Heaviest gaps first; catalog order breaks ties
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Weight > gaps[j].Weight
	})

	categoryScores := make(map[types.QuestionCategory]int, len(totalWeight))
	sum := 0
	for category, total := range totalWeight {
		score := 0
		if total > 0 {
			score = int(math.Round(100 * float64(yesWeight[category]) / float64(total)))
		}
		categoryScores[category] = score
		sum += score
	}

	overall := 0
	if len(categoryScores) > 0 {
		overall = int(math.Round(float64(sum) / float64(len(categoryScores))))
	}

	return &model.HealthCheck{
		ID:              types.NewHealthCheckID(),
		UserID:          userID,
		Responses:       responses,
		ComplianceScore: overall,
		CategoryScores:  categoryScores,
		RiskLevel:       types.RiskLevelForScore(overall),
		Gaps:            gaps,
		TotalGaps:       len(gaps),
		CreatedAt:       time.Now().UTC(),
	}
}
