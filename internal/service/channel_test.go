package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Egor213/UniLog/internal/domain"
	repomocks "github.com/Egor213/UniLog/internal/mocks/repository"
	"github.com/Egor213/UniLog/internal/repo/repoerrs"
	"github.com/Egor213/UniLog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChannelService_GetChannel(t *testing.T) {
	const tenantId int64 = 7

	stored := []domain.Channel{
		{Id: 1, TenantId: tenantId, Name: "billing", RetentionHours: 24, MinimumLevel: domain.LevelDetail},
		{Id: 2, TenantId: tenantId, Name: "auth", RetentionHours: 168, MinimumLevel: domain.LevelWarning},
	}

	type mockBehavior func(r *repomocks.MockChannel)

	testCases := []struct {
		name         string
		channel      string
		mockBehavior mockBehavior
		want         domain.Channel
		wantErr      error
	}{
		{
			name:    "cached channel",
			channel: "billing",
			mockBehavior: func(r *repomocks.MockChannel) {
				r.EXPECT().GetChannels(gomock.Any(), tenantId).Return(stored, nil)
			},
			want: stored[0],
		},
		{
			name:    "unknown channel",
			channel: "missing",
			mockBehavior: func(r *repomocks.MockChannel) {
				r.EXPECT().GetChannels(gomock.Any(), tenantId).Return(stored, nil)
			},
			wantErr: service.ErrChannelNotFound,
		},
		{
			name:    "store failure",
			channel: "billing",
			mockBehavior: func(r *repomocks.MockChannel) {
				r.EXPECT().GetChannels(gomock.Any(), tenantId).Return(nil, errors.New("db down"))
			},
			wantErr: service.ErrCannotLoadChannels,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repomocks.NewMockChannel(ctrl)
			tc.mockBehavior(mockRepo)

			s := service.NewChannelService(mockRepo)

			got, err := s.GetChannel(context.Background(), tenantId, tc.channel)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChannelService_LoadsTenantOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockChannel(ctrl)
	mockRepo.EXPECT().
		GetChannels(gomock.Any(), int64(1)).
		Return([]domain.Channel{{Id: 3, TenantId: 1, Name: "app", RetentionHours: 1}}, nil).
		Times(1)

	s := service.NewChannelService(mockRepo)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, err := s.GetChannel(context.Background(), 1, "app")
			assert.NoError(t, err)
			assert.Equal(t, int64(3), ch.Id)
		}()
	}
	wg.Wait()

	channels, err := s.ListChannels(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, channels, 1)
}

func TestChannelService_FailedLoadIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockChannel(ctrl)
	gomock.InOrder(
		mockRepo.EXPECT().GetChannels(gomock.Any(), int64(1)).Return(nil, errors.New("timeout")),
		mockRepo.EXPECT().GetChannels(gomock.Any(), int64(1)).Return([]domain.Channel{{Id: 1, TenantId: 1, Name: "app"}}, nil),
	)

	s := service.NewChannelService(mockRepo)

	_, err := s.GetChannel(context.Background(), 1, "app")
	assert.ErrorIs(t, err, service.ErrCannotLoadChannels)

	_, err = s.GetChannel(context.Background(), 1, "app")
	assert.NoError(t, err)
}

func TestChannelService_LoadIgnoresCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockChannel(ctrl)

	mockRepo.EXPECT().GetChannels(gomock.Any(), int64(3)).
		DoAndReturn(func(ctx context.Context, _ int64) ([]domain.Channel, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return []domain.Channel{{Id: 1, TenantId: 3, Name: "billing"}}, nil
		}).Times(1)

	s := service.NewChannelService(mockRepo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := s.GetChannel(ctx, 3, "billing")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Id)

	// the cache is filled, later callers do not reload
	_, err = s.GetChannel(context.Background(), 3, "billing")
	assert.NoError(t, err)
}

func TestChannelService_ListChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockChannel(ctrl)
	mockRepo.EXPECT().GetChannels(gomock.Any(), int64(2)).Return([]domain.Channel{
		{Id: 1, TenantId: 2, Name: "zeta"},
		{Id: 2, TenantId: 2, Name: "alpha"},
		{Id: 3, TenantId: 2, Name: "mid"},
	}, nil)

	s := service.NewChannelService(mockRepo)

	channels, err := s.ListChannels(context.Background(), 2)
	require.NoError(t, err)

	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, ch.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestChannelService_UpsertChannel(t *testing.T) {
	ctx := context.Background()

	t.Run("create then update keeps id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockChannel(ctrl)
		mockRepo.EXPECT().GetChannels(gomock.Any(), int64(1)).Return(nil, nil)
		mockRepo.EXPECT().
			UpsertChannel(gomock.Any(), &domain.Channel{TenantId: 1, Name: "orders", RetentionHours: 24, MinimumLevel: domain.LevelDetail}).
			Return(int64(42), nil)
		mockRepo.EXPECT().
			UpsertChannel(gomock.Any(), &domain.Channel{TenantId: 1, Name: "orders", RetentionHours: 48, MinimumLevel: domain.LevelError}).
			Return(int64(42), nil)

		s := service.NewChannelService(mockRepo)

		assert.True(t, s.UpsertChannel(ctx, 1, "orders", 24, domain.LevelDetail))
		assert.True(t, s.UpsertChannel(ctx, 1, "orders", 48, domain.LevelError))

		got, err := s.GetChannel(ctx, 1, "orders")
		require.NoError(t, err)
		assert.Equal(t, domain.Channel{
			Id:             42,
			TenantId:       1,
			Name:           "orders",
			RetentionHours: 48,
			MinimumLevel:   domain.LevelError,
		}, got)
	})

	t.Run("store failure leaves cache untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		existing := domain.Channel{Id: 5, TenantId: 1, Name: "orders", RetentionHours: 24, MinimumLevel: domain.LevelDetail}

		mockRepo := repomocks.NewMockChannel(ctrl)
		mockRepo.EXPECT().GetChannels(gomock.Any(), int64(1)).Return([]domain.Channel{existing}, nil)
		mockRepo.EXPECT().UpsertChannel(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("constraint"))

		s := service.NewChannelService(mockRepo)

		assert.False(t, s.UpsertChannel(ctx, 1, "orders", 1, domain.LevelError))

		got, err := s.GetChannel(ctx, 1, "orders")
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("tenant load failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockChannel(ctrl)
		mockRepo.EXPECT().GetChannels(gomock.Any(), int64(1)).Return(nil, errors.New("db down"))

		s := service.NewChannelService(mockRepo)

		assert.False(t, s.UpsertChannel(ctx, 1, "orders", 1, domain.LevelError))
	})
}

func TestChannelService_DeleteChannel(t *testing.T) {
	ctx := context.Background()
	existing := domain.Channel{Id: 9, TenantId: 3, Name: "jobs", RetentionHours: 24}

	type mockBehavior func(r *repomocks.MockChannel)

	testCases := []struct {
		name          string
		channel       string
		mockBehavior  mockBehavior
		want          bool
		wantRemaining bool
	}{
		{
			name:    "deleted",
			channel: "jobs",
			mockBehavior: func(r *repomocks.MockChannel) {
				r.EXPECT().DeleteChannel(gomock.Any(), int64(3), int64(9)).Return(nil)
			},
			want:          true,
			wantRemaining: false,
		},
		{
			name:          "unknown channel",
			channel:       "nope",
			mockBehavior:  func(r *repomocks.MockChannel) {},
			want:          false,
			wantRemaining: true,
		},
		{
			name:    "store failure keeps channel",
			channel: "jobs",
			mockBehavior: func(r *repomocks.MockChannel) {
				r.EXPECT().DeleteChannel(gomock.Any(), int64(3), int64(9)).Return(errors.New("db down"))
			},
			want:          false,
			wantRemaining: true,
		},
		{
			name:    "already gone in store",
			channel: "jobs",
			mockBehavior: func(r *repomocks.MockChannel) {
				r.EXPECT().DeleteChannel(gomock.Any(), int64(3), int64(9)).Return(repoerrs.ErrNotFound)
			},
			want:          false,
			wantRemaining: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repomocks.NewMockChannel(ctrl)
			mockRepo.EXPECT().GetChannels(gomock.Any(), int64(3)).Return([]domain.Channel{existing}, nil)
			tc.mockBehavior(mockRepo)

			s := service.NewChannelService(mockRepo)

			assert.Equal(t, tc.want, s.DeleteChannel(ctx, 3, tc.channel))

			_, err := s.GetChannel(ctx, 3, "jobs")
			if tc.wantRemaining {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, service.ErrChannelNotFound)
			}
		})
	}
}
