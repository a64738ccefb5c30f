package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

type ProfileUseCase struct {
	repo interfaces.Repository
}

func NewProfileUseCase(repo interfaces.Repository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// ProfileUpdate carries a partial profile update. Nil fields leave the
// stored value unchanged.
type ProfileUpdate struct {
	Name          *string `json:"name"`
	CompanyName   *string `json:"company_name"`
	BusinessType  *string `json:"business_type"`
	EmployeeCount *int    `json:"employee_count"`
	Industry      *string `json:"industry"`
}

func (uc *ProfileUseCase) Get(ctx context.Context, userID types.UserID) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("user_id", userID))
	}
	return user, nil
}

// Update applies the non-nil fields of the update to the stored profile
func (uc *ProfileUseCase) Update(ctx context.Context, userID types.UserID, update ProfileUpdate) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("user_id", userID))
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.CompanyName != nil {
		user.CompanyName = *update.CompanyName
	}
	if update.BusinessType != nil {
		bt, err := types.ParseBusinessType(*update.BusinessType)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid business type", goerr.V("business_type", *update.BusinessType))
		}
		user.BusinessType = bt
	}
	if update.EmployeeCount != nil {
		if *update.EmployeeCount < 0 {
			return nil, goerr.New("employee count must not be negative",
				goerr.T(types.ErrTagValidation),
				goerr.V("employee_count", *update.EmployeeCount))
		}
		user.EmployeeCount = *update.EmployeeCount
	}
	if update.Industry != nil {
		user.Industry = *update.Industry
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.repo.User().Put(ctx, user); err != nil {
		return nil, goerr.Wrap(err, "failed to update user", goerr.V("user_id", userID))
	}

	return user, nil
}
