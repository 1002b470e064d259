package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"moonwalk/source"
	"moonwalk/token"
)

// Bump when the payload format changes; older entries then read as misses.
const cacheSchemaVersion uint16 = 1

// Digest keys a cache entry by source content.
type Digest [sha256.Size]byte

// SourceKey hashes source text into its cache key.
func SourceKey(src string) Digest {
	return sha256.Sum256([]byte(src))
}

// DiskCache stores token streams on disk, keyed by source digest.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type tokenRecord struct {
	Kind  uint8
	Sym   uint8
	Start uint32
	End   uint32
	Text  string
}

type diskPayload struct {
	Schema uint16
	Tokens []tokenRecord
}

// OpenDiskCache initializes a disk cache at the standard user location:
// $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "tokens", hex.EncodeToString(key[:])+".mp")
}

// PutTokens serializes a token stream under key. The write lands via an
// atomic rename, so readers never see a partial entry.
func (c *DiskCache) PutTokens(key Digest, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := diskPayload{
		Schema: cacheSchemaVersion,
		Tokens: make([]tokenRecord, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Tokens[i] = tokenRecord{
			Kind:  uint8(tok.Kind),
			Sym:   uint8(tok.Sym),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  tok.Text,
		}
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Tokens looks up a cached token stream. A missing entry or one written
// under another schema version reads as a miss, not an error.
func (c *DiskCache) Tokens(key Digest) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() { _ = f.Close() }()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}

	tokens := make([]token.Token, len(payload.Tokens))
	for i, rec := range payload.Tokens {
		tokens[i] = token.Token{
			Kind: token.Kind(rec.Kind),
			Sym:  token.Sym(rec.Sym),
			Span: source.Span{Start: rec.Start, End: rec.End},
			Text: rec.Text,
		}
	}
	return tokens, true, nil
}

// DropAll invalidates the whole cache, useful after format changes. The
// directory is renamed aside first so concurrent readers fall back to
// misses instead of partial reads.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
