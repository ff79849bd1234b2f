package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/FurkanErogluu/shopping-cart/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestBusinessErrorUnwrapsToClass(t *testing.T) {
	err := apperrors.NewBusiness("SHOPPING_LIST_NOT_FOUND", "Shopping list not found", apperrors.ErrNotFound)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "SHOPPING_LIST_NOT_FOUND: Shopping list not found", err.Error())
}

func TestNarrowedConflictsUnwrapToConflict(t *testing.T) {
	assert.ErrorIs(t, apperrors.ErrDuplicateEmail, apperrors.ErrConflict)
	assert.ErrorIs(t, apperrors.ErrDuplicateFollowID, apperrors.ErrConflict)
	assert.NotErrorIs(t, apperrors.ErrDuplicateEmail, apperrors.ErrDuplicateFollowID)
}

func TestAsBusinessThroughWrapping(t *testing.T) {
	base := apperrors.NewBusiness("EMAIL_EXISTS", "Email already registered", apperrors.ErrConflict)
	wrapped := fmt.Errorf("register failed: %w", base)

	be, ok := apperrors.AsBusiness(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "EMAIL_EXISTS", be.Code)

	_, ok = apperrors.AsBusiness(errors.New("plain"))
	assert.False(t, ok)
}
