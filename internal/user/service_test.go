package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/user"
)

func TestService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	repo.EXPECT().UpsertUser(gomock.Any(), &user.User{ID: "u-1", Email: "a@b.c"}).Return(nil)

	require.NoError(t, svc.Upsert(context.Background(), &user.User{ID: " u-1 ", Email: "a@b.c"}))

	err := svc.Upsert(context.Background(), &user.User{Email: "no-id@b.c"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
