package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

// Question is one immutable item of the compliance questionnaire. The set of
// questions is catalog data loaded at startup, not user data.
type Question struct {
	ID          string                 `json:"id"`
	Category    types.QuestionCategory `json:"category"`
	Subcategory string                 `json:"subcategory"`
	Text        string                 `json:"question"`
	Weight      int                    `json:"weight"`
	Guidance    string                 `json:"guidance"`
}

// Validate checks if the question is well formed
func (x *Question) Validate() error {
	if x.ID == "" {
		return goerr.New("question ID is required", goerr.T(types.ErrTagValidation))
	}
	if !x.Category.IsValid() {
		return goerr.New("invalid question category",
			goerr.T(types.ErrTagValidation),
			goerr.V("id", x.ID),
			goerr.V("category", x.Category))
	}
	if x.Subcategory == "" {
		return goerr.New("question subcategory is required", goerr.T(types.ErrTagValidation), goerr.V("id", x.ID))
	}
	if x.Text == "" {
		return goerr.New("question text is required", goerr.T(types.ErrTagValidation), goerr.V("id", x.ID))
	}
	if x.Weight < 1 || x.Weight > 3 {
		return goerr.New("question weight must be between 1 and 3",
			goerr.T(types.ErrTagValidation),
			goerr.V("id", x.ID),
			goerr.V("weight", x.Weight))
	}
	if x.Guidance == "" {
		return goerr.New("question guidance is required", goerr.T(types.ErrTagValidation), goerr.V("id", x.ID))
	}
	return nil
}
