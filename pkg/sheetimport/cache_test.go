package sheetimport

import (
	"bytes"
	"reflect"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := OpenMemoryCache()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	pages := []Page{{Data: []byte("page-1"), MIMEType: "image/png"}}
	rec := &Recognition{Name: "cached", BPM: 72, Jianpu: []string{"1 2 3"}}

	if _, ok := c.Get("gemini", pages); ok {
		t.Fatal("unexpected hit before Put")
	}
	if err := c.Put("gemini", pages, rec); err != nil {
		t.Fatal(err)
	}
	got, ok := c.Get("gemini", pages)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("got %+v, want %+v", got, rec)
	}
}

func TestCacheKeyedByProviderAndContent(t *testing.T) {
	c, err := OpenMemoryCache()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	pages := []Page{{Data: []byte("page-1")}}
	if err := c.Put("gemini", pages, &Recognition{BPM: 1}); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("ark", pages); ok {
		t.Error("different provider should miss")
	}
	other := []Page{{Data: []byte("page-2")}}
	if _, ok := c.Get("gemini", other); ok {
		t.Error("different content should miss")
	}
}

func TestCacheKeyIgnoresMIMEAndFilename(t *testing.T) {
	a := cacheKey("p", []Page{{Data: []byte("x"), MIMEType: "image/png"}})
	b := cacheKey("p", []Page{{Data: []byte("x"), MIMEType: "image/jpeg"}})
	if !bytes.Equal(a, b) {
		t.Error("key should depend on page bytes only")
	}
}
