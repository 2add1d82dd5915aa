package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	apperr "github.com/antaresengine/antares/internal/errors"
	"github.com/antaresengine/antares/internal/uuid"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:        s.mockClient,
		UUIDGenerator: &uuid.FixedGenerator{ID: "doc-1"},
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testDocument() *Document {
	return &Document{
		CampaignID: "tutorial",
		Name:       "Tutorial Campaign",
		Version:    "1.0.0",
		Payload:    json.RawMessage(`{"items":[]}`),
	}
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("assigns an ID and stores", func() {
		s.mock.ExpectExists("campaign_doc:doc-1").SetVal(0)
		s.mock.Regexp().ExpectSet("campaign_doc:doc-1", `.*"campaign_id":"tutorial".*`, 0).SetVal("OK")
		s.mock.ExpectSAdd("campaign:tutorial:docs", "doc-1").SetVal(1)

		stored, err := s.repo.Create(ctx, s.testDocument())
		s.Require().NoError(err)
		s.Equal("doc-1", stored.ID)
		s.False(stored.CreatedAt.IsZero())
	})

	s.Run("drafts get a TTL", func() {
		doc := s.testDocument()
		doc.ID = "doc-2"
		doc.Draft = true

		s.mock.ExpectExists("campaign_doc:doc-2").SetVal(0)
		s.mock.Regexp().ExpectSet("campaign_doc:doc-2", `.*`, 24*time.Hour).SetVal("OK")
		s.mock.ExpectSAdd("campaign:tutorial:docs", "doc-2").SetVal(1)

		stored, err := s.repo.Create(ctx, doc)
		s.Require().NoError(err)
		s.Equal("doc-2", stored.ID)
	})

	s.Run("already exists", func() {
		s.mock.ExpectExists("campaign_doc:doc-1").SetVal(1)

		_, err := s.repo.Create(ctx, s.testDocument())
		s.Require().Error(err)
		s.True(apperr.IsAlreadyExists(err))
	})

	s.Run("nil document", func() {
		_, err := s.repo.Create(ctx, nil)
		s.Require().Error(err)
		s.True(apperr.IsInvalidArgument(err))
	})

	s.Run("missing campaign ID", func() {
		doc := s.testDocument()
		doc.CampaignID = ""
		_, err := s.repo.Create(ctx, doc)
		s.Require().Error(err)
		s.True(apperr.IsInvalidArgument(err))
	})
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()

	s.Run("found", func() {
		doc := s.testDocument()
		doc.ID = "doc-1"
		jsonData, err := json.Marshal(doc)
		s.Require().NoError(err)

		s.mock.ExpectGet("campaign_doc:doc-1").SetVal(string(jsonData))

		got, err := s.repo.Get(ctx, "doc-1")
		s.Require().NoError(err)
		s.Equal("tutorial", got.CampaignID)
		s.Equal("Tutorial Campaign", got.Name)
	})

	s.Run("not found", func() {
		s.mock.ExpectGet("campaign_doc:missing").RedisNil()

		_, err := s.repo.Get(ctx, "missing")
		s.Require().Error(err)
		s.True(apperr.IsNotFound(err))
	})

	s.Run("redis error", func() {
		s.mock.ExpectGet("campaign_doc:doc-1").SetErr(errors.New("connection refused"))

		_, err := s.repo.Get(ctx, "doc-1")
		s.Error(err)
	})

	s.Run("empty ID", func() {
		_, err := s.repo.Get(ctx, "")
		s.Require().Error(err)
		s.True(apperr.IsInvalidArgument(err))
	})
}

func (s *RedisRepoTestSuite) TestGetByCampaign() {
	ctx := context.Background()

	doc := s.testDocument()
	doc.ID = "doc-1"
	jsonData, err := json.Marshal(doc)
	s.Require().NoError(err)

	s.Run("skips expired index entries", func() {
		s.mock.ExpectSMembers("campaign:tutorial:docs").SetVal([]string{"doc-1", "doc-gone"})
		s.mock.ExpectGet("campaign_doc:doc-1").SetVal(string(jsonData))
		s.mock.ExpectGet("campaign_doc:doc-gone").RedisNil()

		docs, err := s.repo.GetByCampaign(ctx, "tutorial")
		s.Require().NoError(err)
		s.Require().Len(docs, 1)
		s.Equal("doc-1", docs[0].ID)
	})

	s.Run("empty campaign ID", func() {
		_, err := s.repo.GetByCampaign(ctx, "")
		s.Require().Error(err)
		s.True(apperr.IsInvalidArgument(err))
	})
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("overwrites existing", func() {
		doc := s.testDocument()
		doc.ID = "doc-1"
		doc.Version = "1.1.0"

		s.mock.ExpectExists("campaign_doc:doc-1").SetVal(1)
		s.mock.Regexp().ExpectSet("campaign_doc:doc-1", `.*"version":"1.1.0".*`, 0).SetVal("OK")

		s.NoError(s.repo.Update(ctx, doc))
	})

	s.Run("not found", func() {
		doc := s.testDocument()
		doc.ID = "missing"

		s.mock.ExpectExists("campaign_doc:missing").SetVal(0)

		err := s.repo.Update(ctx, doc)
		s.Require().Error(err)
		s.True(apperr.IsNotFound(err))
	})

	s.Run("missing ID", func() {
		err := s.repo.Update(ctx, s.testDocument())
		s.Require().Error(err)
		s.True(apperr.IsInvalidArgument(err))
	})
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("removes document and index entry", func() {
		doc := s.testDocument()
		doc.ID = "doc-1"
		jsonData, err := json.Marshal(doc)
		s.Require().NoError(err)

		s.mock.ExpectGet("campaign_doc:doc-1").SetVal(string(jsonData))
		s.mock.ExpectDel("campaign_doc:doc-1").SetVal(1)
		s.mock.ExpectSRem("campaign:tutorial:docs", "doc-1").SetVal(1)

		s.NoError(s.repo.Delete(ctx, "doc-1"))
	})

	s.Run("not found", func() {
		s.mock.ExpectGet("campaign_doc:missing").RedisNil()

		err := s.repo.Delete(ctx, "missing")
		s.Require().Error(err)
		s.True(apperr.IsNotFound(err))
	})
}
