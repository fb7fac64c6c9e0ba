package cmd

import (
	"context"
	"testing"

	"customer-crm/internal/apperr"
	mockRepo "customer-crm/internal/mocks/repository"
	"customer-crm/internal/usecase"
	"customer-crm/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateAdmin(t *testing.T) {
	m := mockRepo.NewMocks(t)
	auth := usecase.NewAuthService(m.Repo, &utils.Config{}, zap.NewNop())
	ctx := context.Background()

	m.User.EXPECT().FindByUsername(ctx, "root").Return(nil, nil)
	m.User.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	m.Group.EXPECT().AddUser(ctx, mock.AnythingOfType("uuid.UUID"), "admin").Return(nil)
	m.Customer.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

	fs := CreateAdminFlags()
	require.NoError(t, fs.Parse([]string{"--username", "root", "--email", "root@example.com", "--password", "supersecret"}))

	assert.NoError(t, CreateAdmin(ctx, auth, fs, zap.NewNop()))
	assert.Equal(t, 1, m.Tx.Committed)
}

func TestCreateAdmin_MissingFlags(t *testing.T) {
	m := mockRepo.NewMocks(t)
	auth := usecase.NewAuthService(m.Repo, &utils.Config{}, zap.NewNop())

	fs := CreateAdminFlags()
	require.NoError(t, fs.Parse([]string{"--username", "root"}))

	err := CreateAdmin(context.Background(), auth, fs, zap.NewNop())
	verr, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}
