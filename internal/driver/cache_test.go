package driver_test

import (
	"testing"

	"moonwalk/internal/driver"
	"moonwalk/lexer"
)

func TestCacheMissOnUnknownKey(t *testing.T) {
	cache := openTestCache(t)

	_, ok, err := cache.Tokens(driver.SourceKey("never stored"))
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if ok {
		t.Error("unknown key reported a hit")
	}
}

func TestCachePutGet(t *testing.T) {
	cache := openTestCache(t)
	src := "local x = 1 -- keep trivia\n"
	toks := lexer.Tokenize([]byte(src), lexer.Options{})
	key := driver.SourceKey(src)

	if err := cache.PutTokens(key, toks); err != nil {
		t.Fatalf("PutTokens: %v", err)
	}
	got, ok, err := cache.Tokens(key)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if !ok {
		t.Fatal("stored key reported a miss")
	}
	if len(got) != len(toks) {
		t.Fatalf("tokens = %d, want %d", len(got), len(toks))
	}
	for i := range toks {
		if got[i] != toks[i] {
			t.Errorf("token %d = %+v, want %+v", i, got[i], toks[i])
		}
	}
}

func TestCacheDropAll(t *testing.T) {
	cache := openTestCache(t)
	src := "return 1"
	key := driver.SourceKey(src)
	toks := lexer.Tokenize([]byte(src), lexer.Options{})

	if err := cache.PutTokens(key, toks); err != nil {
		t.Fatalf("PutTokens: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok, err := cache.Tokens(key); err != nil || ok {
		t.Errorf("after DropAll: ok=%t err=%v, want a clean miss", ok, err)
	}

	// The cache recreates its directory on the next write.
	if err := cache.PutTokens(key, toks); err != nil {
		t.Fatalf("PutTokens after DropAll: %v", err)
	}
	if _, ok, err := cache.Tokens(key); err != nil || !ok {
		t.Errorf("after rewrite: ok=%t err=%v, want a hit", ok, err)
	}
}

func TestSourceKeyDistinguishesContent(t *testing.T) {
	if driver.SourceKey("local x = 1") == driver.SourceKey("local x = 2") {
		t.Error("different sources share a key")
	}
	if driver.SourceKey("same") != driver.SourceKey("same") {
		t.Error("identical sources disagree on the key")
	}
}
