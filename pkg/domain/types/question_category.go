package types

import "github.com/m-mizutani/goerr/v2"

// QuestionCategory is the compliance framework a questionnaire item belongs to
type QuestionCategory string

const (
	QuestionCategoryGDPR            QuestionCategory = "GDPR"
	QuestionCategoryCyberEssentials QuestionCategory = "Cyber Essentials"
)

// AllQuestionCategories returns all valid question categories
func AllQuestionCategories() []QuestionCategory {
	return []QuestionCategory{
		QuestionCategoryGDPR,
		QuestionCategoryCyberEssentials,
	}
}

// IsValid checks if the question category is valid
func (x QuestionCategory) IsValid() bool {
	switch x {
	case QuestionCategoryGDPR, QuestionCategoryCyberEssentials:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x QuestionCategory) String() string {
	return string(x)
}

// ParseQuestionCategory parses a string into QuestionCategory
func ParseQuestionCategory(s string) (QuestionCategory, error) {
	category := QuestionCategory(s)
	if !category.IsValid() {
		return "", goerr.New("invalid question category", goerr.T(ErrTagValidation), goerr.V("category", s))
	}
	return category, nil
}
