package hunters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/hunter"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
	mockhunters "github.com/KirkDiggler/raid-bot-discord/internal/repositories/hunters/mock"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	mockCtrl     *gomock.Controller
	timeProvider *mockhunters.MockTimeProvider
	repo         Repository
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockhunters.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	profile := hunter.NewProfile("user-1", "guild-1")
	profile.Inventory = []string{hunter.ItemHealKit}

	s.timeProvider.EXPECT().Now().Return(s.now)

	expected := profile.Clone()
	expected.CreatedAt = s.now
	expected.UpdatedAt = s.now
	data, err := json.Marshal(expected)
	s.Require().NoError(err)

	s.mock.ExpectExists("hunter:guild-1:user-1").SetVal(0)
	s.mock.ExpectSet("hunter:guild-1:user-1", data, 0).SetVal("OK")
	s.mock.ExpectSAdd("guild:guild-1:hunters", "user-1").SetVal(1)

	err = s.repo.Create(ctx, profile)
	s.NoError(err)
	s.Equal(s.now, profile.CreatedAt)
	s.Equal(s.now, profile.UpdatedAt)
}

func (s *RedisRepoTestSuite) TestCreateAlreadyExists() {
	ctx := context.Background()
	profile := hunter.NewProfile("user-1", "guild-1")

	s.mock.ExpectExists("hunter:guild-1:user-1").SetVal(1)

	err := s.repo.Create(ctx, profile)
	s.Error(err)
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreateInvalid() {
	err := s.repo.Create(context.Background(), &hunter.Profile{GuildID: "guild-1"})
	s.True(apperr.IsInvalidArgument(err))

	err = s.repo.Create(context.Background(), nil)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	stored := hunter.NewProfile("user-1", "guild-1")
	stored.Level = 4
	stored.Inventory = []string{hunter.ItemHealKit, "active_skill:flame_slash"}
	data, err := json.Marshal(stored)
	s.Require().NoError(err)

	s.mock.ExpectGet("hunter:guild-1:user-1").SetVal(string(data))

	got, err := s.repo.Get(ctx, "guild-1", "user-1")
	s.Require().NoError(err)
	s.Equal(4, got.Level)
	s.Equal(stored.Inventory, got.Inventory)
}

func (s *RedisRepoTestSuite) TestGetNotFound() {
	s.mock.ExpectGet("hunter:guild-1:ghost").RedisNil()

	got, err := s.repo.Get(context.Background(), "guild-1", "ghost")
	s.Nil(got)
	s.True(apperr.IsNotFound(err))
	s.Equal("ghost", apperr.GetMeta(err)["user_id"])
}

func (s *RedisRepoTestSuite) TestGetRedisError() {
	s.mock.ExpectGet("hunter:guild-1:user-1").SetErr(errors.New("connection refused"))

	_, err := s.repo.Get(context.Background(), "guild-1", "user-1")
	s.Error(err)
	s.False(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	profile := hunter.NewProfile("user-1", "guild-1")
	profile.Gold = 10

	s.timeProvider.EXPECT().Now().Return(s.now)

	expected := profile.Clone()
	expected.UpdatedAt = s.now
	data, err := json.Marshal(expected)
	s.Require().NoError(err)

	s.mock.ExpectExists("hunter:guild-1:user-1").SetVal(1)
	s.mock.ExpectSet("hunter:guild-1:user-1", data, 0).SetVal("OK")

	s.NoError(s.repo.Update(ctx, profile))
}

func (s *RedisRepoTestSuite) TestUpdateNotFound() {
	s.mock.ExpectExists("hunter:guild-1:user-1").SetVal(0)

	err := s.repo.Update(context.Background(), hunter.NewProfile("user-1", "guild-1"))
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListByGuild() {
	ctx := context.Background()
	p1 := hunter.NewProfile("user-1", "guild-1")
	d1, err := json.Marshal(p1)
	s.Require().NoError(err)

	s.mock.ExpectSMembers("guild:guild-1:hunters").SetVal([]string{"user-1"})
	s.mock.ExpectGet("hunter:guild-1:user-1").SetVal(string(d1))

	profiles, err := s.repo.ListByGuild(ctx, "guild-1")
	s.Require().NoError(err)
	s.Require().Len(profiles, 1)
	s.Equal("user-1", profiles[0].UserID)
}

func (s *RedisRepoTestSuite) TestListByGuildEmpty() {
	s.mock.ExpectSMembers("guild:guild-2:hunters").SetVal([]string{})

	profiles, err := s.repo.ListByGuild(context.Background(), "guild-2")
	s.NoError(err)
	s.Empty(profiles)
}
