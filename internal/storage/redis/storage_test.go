package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/soalpich/soalpich-web/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.TokenTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetToken() {
	err := s.storage.SaveToken(s.ctx, "sid-1", "tok-abc")
	s.Require().NoError(err)

	token, err := s.storage.GetToken(s.ctx, "sid-1")
	s.Require().NoError(err)
	s.Equal("tok-abc", token)
}

func (s *StorageSuite) TestGetTokenNotFound() {
	_, err := s.storage.GetToken(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrTokenNotFound)
}

func (s *StorageSuite) TestSaveOverwritesToken() {
	_ = s.storage.SaveToken(s.ctx, "sid-1", "tok-old")

	err := s.storage.SaveToken(s.ctx, "sid-1", "tok-new")
	s.Require().NoError(err)

	token, err := s.storage.GetToken(s.ctx, "sid-1")
	s.Require().NoError(err)
	s.Equal("tok-new", token)
}

func (s *StorageSuite) TestDeleteToken() {
	_ = s.storage.SaveToken(s.ctx, "sid-1", "tok-abc")

	err := s.storage.DeleteToken(s.ctx, "sid-1")
	s.Require().NoError(err)

	_, err = s.storage.GetToken(s.ctx, "sid-1")
	s.ErrorIs(err, model.ErrTokenNotFound)
}

func (s *StorageSuite) TestTokenExpires() {
	err := s.storage.SaveToken(s.ctx, "sid-1", "tok-abc")
	s.Require().NoError(err)

	s.mini.FastForward(2 * time.Hour)

	_, err = s.storage.GetToken(s.ctx, "sid-1")
	s.ErrorIs(err, model.ErrTokenNotFound)
}

func (s *StorageSuite) TestKeysAreNamespaced() {
	err := s.storage.SaveToken(s.ctx, "sid-1", "tok-abc")
	s.Require().NoError(err)

	s.True(s.mini.Exists("soalpich:token:sid-1"))
}
