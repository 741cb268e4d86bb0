//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"estagio-gateway/internal/registry"
	"estagio-gateway/internal/registry/store"
	"estagio-gateway/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.Redis
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = store.NewRedis(s.redis.Client, 5*time.Minute)
}

func (s *RedisStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.redis.FlushAll(ctx)
	s.Require().NoError(err)
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	result := registry.LookupResult{
		Status:    registry.StatusFound,
		Active:    true,
		LegalName: "ACME COMERCIO LTDA",
		CheckedAt: now,
	}

	err := s.store.Save(ctx, "80971798000158", result)
	s.Require().NoError(err)

	found, err := s.store.Find(ctx, "80971798000158")
	s.Require().NoError(err)
	s.Equal(result.Status, found.Status)
	s.Equal(result.Active, found.Active)
	s.Equal(result.LegalName, found.LegalName)
	s.True(result.CheckedAt.Equal(found.CheckedAt))
}

func (s *RedisStoreSuite) TestMissReturnsErrNotFound() {
	ctx := context.Background()

	_, err := s.store.Find(ctx, "00000000000000")
	s.Require().ErrorIs(err, store.ErrNotFound)
}

func (s *RedisStoreSuite) TestEntriesExpire() {
	ctx := context.Background()
	short := store.NewRedis(s.redis.Client, time.Second)

	err := short.Save(ctx, "80971798000158", registry.LookupResult{
		Status:    registry.StatusFound,
		Active:    true,
		CheckedAt: time.Now(),
	})
	s.Require().NoError(err)

	time.Sleep(1500 * time.Millisecond)

	_, err = short.Find(ctx, "80971798000158")
	s.Require().ErrorIs(err, store.ErrNotFound)
}
