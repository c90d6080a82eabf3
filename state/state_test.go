package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/ir"
	"github.com/signadot/uniutil/parse"
)

type recStore struct {
	*MemStore
	commits []string
}

func (r *recStore) Commit(m string, p Payload) error {
	r.commits = append(r.commits, m+":"+p.Property)
	return r.MemStore.Commit(m, p)
}

func node(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestBridgeRoutesSets(t *testing.T) {
	store := &recStore{MemStore: NewMemStore(node(t, `{"count":1}`), nil)}
	acc := Bridge(store)
	if got := acc.Get("count"); got == nil || *got.Int64 != 1 {
		t.Fatalf("got %v", got)
	}
	if err := acc.Set("count", ir.FromInt(2)); err != nil {
		t.Fatal(err)
	}
	if err := acc.Set("name", ir.FromString("n")); err != nil {
		t.Fatal(err)
	}
	if got := *acc.Get("count").Int64; got != 2 {
		t.Errorf("count = %d", got)
	}
	if len(store.commits) != 2 || store.commits[0] != "$state:count" || store.commits[1] != "$state:name" {
		t.Errorf("commits %v", store.commits)
	}
	if acc.Get("missing") != nil {
		t.Error("missing key")
	}
}

func TestEmptyPropertyIgnored(t *testing.T) {
	store := NewMemStore(nil, nil)
	if err := Bridge(store).Set("", ir.FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if store.Snapshot().Len() != 0 {
		t.Errorf("got %s", encode.MustString(store.Snapshot()))
	}
}

func TestStoreIsolation(t *testing.T) {
	store := NewMemStore(nil, nil)
	acc := Bridge(store)
	user := node(t, `{"name":"a","tags":["x"]}`)
	if err := acc.Set("user", user); err != nil {
		t.Fatal(err)
	}
	user.Set("name", ir.FromString("changed"))
	got := acc.Get("user")
	if ir.Get(got, "name").String != "a" {
		t.Error("store shares the set value")
	}
	got.Set("name", ir.FromString("again"))
	if ir.Get(acc.Get("user"), "name").String != "a" {
		t.Error("store shares the returned value")
	}
}

func TestUpdate(t *testing.T) {
	store := NewMemStore(node(t, `{"user":{"name":"a","prefs":{"dark":false}}}`), nil)
	acc := Bridge(store)
	if err := Update(acc, "user", node(t, `{"prefs":{"dark":true,"lang":"en"}}`)); err != nil {
		t.Fatal(err)
	}
	want := `{"user":{"name":"a","prefs":{"dark":true,"lang":"en"}}}`
	if got := encode.MustString(store.Snapshot()); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if err := Update(acc, "fresh", node(t, `{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(acc.Get("fresh")); got != `{"a":1}` {
		t.Errorf("got %s", got)
	}
}

func TestCustomMutation(t *testing.T) {
	boom := errors.New("boom")
	store := NewMemStore(nil, map[string]Mutation{
		"incr": func(st map[string]*ir.Node, p Payload) error {
			v := st[p.Property]
			n := int64(0)
			if v != nil && v.Int64 != nil {
				n = *v.Int64
			}
			st[p.Property] = ir.FromInt(n + 1)
			return nil
		},
		"fail": func(map[string]*ir.Node, Payload) error { return boom },
	})
	for range 3 {
		if err := store.Commit("incr", Payload{Property: "n"}); err != nil {
			t.Fatal(err)
		}
	}
	if v, _ := store.State("n"); *v.Int64 != 3 {
		t.Errorf("n = %d", *v.Int64)
	}
	if err := store.Commit("fail", Payload{}); !errors.Is(err, boom) {
		t.Errorf("got %v", err)
	}
	if err := store.Commit("nope", Payload{}); !errors.Is(err, ErrUnknownMutation) {
		t.Errorf("expected ErrUnknownMutation, got %v", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	store := NewMemStore(nil, nil)
	acc := Bridge(store)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				_ = acc.Set("k", ir.FromInt(int64(i*100+j)))
				_ = acc.Get("k")
			}
		}()
	}
	wg.Wait()
	if acc.Get("k") == nil {
		t.Error("no value")
	}
}
