// Package share turns whole investigator records into compact codes that can be pasted
// into a URL, and back.
//
// A code is base64url(zstd(json(envelope))). Decoded codes are cached by their text so
// repeated imports of a popular code skip the decompression.
package share

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/klauspost/compress/zstd"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
)

const (
	// CodeVersion is written into every envelope
	CodeVersion = 1

	// DefaultCacheSize is the number of decoded codes kept in memory
	DefaultCacheSize = 256

	// MaxCodeLength bounds the accepted code text
	MaxCodeLength = 64 * 1024

	maxDecodedSize = 4 << 20
)

type envelope struct {
	Version   int            `json:"v"`
	Character *coc.Character `json:"c"`
}

// Config holds the codec settings
type Config struct {
	CacheSize int
}

// Validate ensures the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CacheSize < 0 {
		vb.InvalidField("CacheSize", "must not be negative")
	}

	return vb.Build()
}

// Codec encodes and decodes share codes. It is safe for concurrent use.
type Codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	cache   *lru.Cache
}

// NewCodec creates a codec
func NewCodec(cfg *Config) (*Codec, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	size := cfg.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create share code cache")
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create zstd encoder")
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create zstd decoder")
	}

	return &Codec{encoder: encoder, decoder: decoder, cache: cache}, nil
}

// Close releases the decoder's resources
func (c *Codec) Close() {
	c.decoder.Close()
}

// Encode serializes a character into a share code. Owner and timestamps are not shared.
func (c *Codec) Encode(ch *coc.Character) (string, error) {
	if ch == nil {
		return "", errors.InvalidArgument("character is required")
	}

	shared := ch.Clone()
	shared.OwnerID = ""
	shared.CreatedAt = 0
	shared.UpdatedAt = 0

	raw, err := json.Marshal(envelope{Version: CodeVersion, Character: shared})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal character")
	}

	return base64.RawURLEncoding.EncodeToString(c.encoder.EncodeAll(raw, nil)), nil
}

// Decode parses a share code. The returned character is a fresh copy the caller may
// modify.
func (c *Codec) Decode(code string) (*coc.Character, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.InvalidArgument("share code is required")
	}
	if len(code) > MaxCodeLength {
		return nil, errors.InvalidArgumentf("share code longer than %d characters", MaxCodeLength)
	}

	if cached, ok := c.cache.Get(code); ok {
		if ch, ok := cached.(*coc.Character); ok {
			return ch.Clone(), nil
		}
	}

	compressed, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "share code is not valid base64")
	}

	raw, err := c.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "share code is corrupted")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "share code payload is malformed")
	}
	if env.Version != CodeVersion {
		return nil, errors.InvalidArgumentf("unsupported share code version %d", env.Version).
			WithMeta("version", env.Version)
	}
	if env.Character == nil {
		return nil, errors.InvalidArgument("share code carries no character")
	}

	c.cache.Add(code, env.Character)
	return env.Character.Clone(), nil
}
