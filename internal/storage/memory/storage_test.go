package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/soalpich/soalpich-web/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
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

func (s *StorageSuite) TestDeleteTokenIdempotent() {
	err := s.storage.DeleteToken(s.ctx, "never-saved")
	s.NoError(err)
}

func (s *StorageSuite) TestSessionsAreIndependent() {
	_ = s.storage.SaveToken(s.ctx, "sid-1", "tok-1")
	_ = s.storage.SaveToken(s.ctx, "sid-2", "tok-2")

	_ = s.storage.DeleteToken(s.ctx, "sid-1")

	token, err := s.storage.GetToken(s.ctx, "sid-2")
	s.Require().NoError(err)
	s.Equal("tok-2", token)
}
