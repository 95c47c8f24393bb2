package share_test

import (
	"encoding/base64"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/coc-api/internal/catalog"
	"github.com/KirkDiggler/coc-api/internal/engine/rules"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/share"
)

type CodecTestSuite struct {
	suite.Suite
	codec *share.Codec
	ch    *coc.Character
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func (s *CodecTestSuite) SetupTest() {
	codec, err := share.NewCodec(&share.Config{CacheSize: 4})
	s.Require().NoError(err)
	s.codec = codec

	s.ch = rules.NewCharacter("inv_1", "Harvey Walters", coc.Era1920s, catalog.SeedSkills(coc.Era1920s))
	s.ch.OwnerID = "player_1"
	s.ch.Occupation = "Journalist"
	s.ch.OccupationalSkills = []string{"credit_rating", "history"}
	s.ch.CreatedAt = 1700000000
	s.ch.UpdatedAt = 1700000500
}

func (s *CodecTestSuite) TearDownTest() {
	s.codec.Close()
}

func (s *CodecTestSuite) TestNewCodecRejectsNegativeCache() {
	_, err := share.NewCodec(&share.Config{CacheSize: -1})
	s.Error(err)
}

func (s *CodecTestSuite) TestRoundTrip() {
	code, err := s.codec.Encode(s.ch)
	s.Require().NoError(err)
	s.NotContains(code, "+")
	s.NotContains(code, "/")
	s.NotContains(code, "=")

	decoded, err := s.codec.Decode(code)
	s.Require().NoError(err)

	s.Equal("Harvey Walters", decoded.Name)
	s.Equal("Journalist", decoded.Occupation)
	s.Equal(s.ch.Skills, decoded.Skills)
	s.Equal(s.ch.Characteristics, decoded.Characteristics)
	s.Equal([]string{"credit_rating", "history"}, decoded.OccupationalSkills)
	s.Empty(decoded.OwnerID)
	s.Zero(decoded.CreatedAt)

	s.Equal("player_1", s.ch.OwnerID, "encoding leaves the source untouched")
}

func (s *CodecTestSuite) TestCachedDecodeReturnsCopies() {
	code, err := s.codec.Encode(s.ch)
	s.Require().NoError(err)

	first, err := s.codec.Decode(code)
	s.Require().NoError(err)
	first.Name = "Changed"
	first.Skills[0].Value = 99

	second, err := s.codec.Decode("  " + code + "\n")
	s.Require().NoError(err)
	s.Equal("Harvey Walters", second.Name)
	s.Equal(s.ch.Skills[0].Value, second.Skills[0].Value)
}

func (s *CodecTestSuite) TestDecodeRejectsGarbage() {
	testCases := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"not base64", "!!!not-a-code!!!"},
		{"not zstd", base64.RawURLEncoding.EncodeToString([]byte("plain text"))},
		{"not json", s.compress("{broken")},
		{"wrong version", s.compress(`{"v":7,"c":{"id":"x"}}`)},
		{"missing character", s.compress(`{"v":1}`)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.codec.Decode(tc.code)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *CodecTestSuite) TestEncodeRequiresCharacter() {
	_, err := s.codec.Encode(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CodecTestSuite) compress(payload string) string {
	enc, err := zstd.NewWriter(nil)
	s.Require().NoError(err)
	defer func() { _ = enc.Close() }()
	return base64.RawURLEncoding.EncodeToString(enc.EncodeAll([]byte(payload), nil))
}
