package graphql

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/api/middleware"
	"github.com/propsetu/estate-backend/internal/api/shared/dto"
	"github.com/propsetu/estate-backend/internal/api/shared/executor"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	m.Run()
}

func adminContext(adminID string) context.Context {
	claims := &middleware.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: adminID},
		AccountType:      middleware.AccountTypeAdmin,
	}
	return withClaims(context.Background(), claims)
}

func resolverStrptr(s string) *string { return &s }

// All three transition mutations accept the same optional message, admin
// notes and reason arguments, and each must reach the executor intact.
func TestTransitionMutationsForwardAllArguments(t *testing.T) {
	tests := []struct {
		name   string
		expect func(*mocks.MockAPIExecutor) *gomock.Call
		call   func(*mutationResolver, context.Context, *string, *string, *string) (*dto.PropertyResponse, error)
	}{
		{
			name: "approveProperty",
			expect: func(m *mocks.MockAPIExecutor) *gomock.Call {
				return m.EXPECT().ApproveProperty(gomock.Any(), gomock.Any(), gomock.Any())
			},
			call: func(r *mutationResolver, ctx context.Context, message, adminNotes, reason *string) (*dto.PropertyResponse, error) {
				return r.ApproveProperty(ctx, 101, message, adminNotes, reason)
			},
		},
		{
			name: "rejectProperty",
			expect: func(m *mocks.MockAPIExecutor) *gomock.Call {
				return m.EXPECT().RejectProperty(gomock.Any(), gomock.Any(), gomock.Any())
			},
			call: func(r *mutationResolver, ctx context.Context, message, adminNotes, reason *string) (*dto.PropertyResponse, error) {
				return r.RejectProperty(ctx, 101, message, adminNotes, reason)
			},
		},
		{
			name: "verifyProperty",
			expect: func(m *mocks.MockAPIExecutor) *gomock.Call {
				return m.EXPECT().VerifyProperty(gomock.Any(), gomock.Any(), gomock.Any())
			},
			call: func(r *mutationResolver, ctx context.Context, message, adminNotes, reason *string) (*dto.PropertyResponse, error) {
				return r.VerifyProperty(ctx, 101, message, adminNotes, reason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			exec := mocks.NewMockAPIExecutor(ctrl)
			resolver := &mutationResolver{NewResolver(exec)}

			tt.expect(exec).DoAndReturn(func(_ context.Context, actor executor.Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error) {
				require.NotNil(t, actor.AdminID)
				assert.Equal(t, uint64(3), *actor.AdminID)
				assert.Equal(t, uint64(101), req.PropertyID)
				require.NotNil(t, req.Message)
				assert.Equal(t, "message text", *req.Message)
				require.NotNil(t, req.AdminNotes)
				assert.Equal(t, "internal notes", *req.AdminNotes)
				require.NotNil(t, req.Reason)
				assert.Equal(t, "reason text", *req.Reason)
				return &dto.PropertyResponse{ID: 101}, nil
			})

			resp, err := tt.call(resolver, adminContext("3"),
				resolverStrptr("message text"), resolverStrptr("internal notes"), resolverStrptr("reason text"))
			require.NoError(t, err)
			assert.Equal(t, uint64(101), resp.ID)
		})
	}
}

func TestTransitionMutationsRequireAuthentication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	resolver := &mutationResolver{NewResolver(exec)}

	_, err := resolver.RejectProperty(context.Background(), 101, nil, nil, nil)
	require.Error(t, err)
}
