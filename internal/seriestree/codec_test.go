package seriestree

import (
	"errors"
	"testing"

	"github.com/gitseries/git-series/internal/gitexec"
)

var (
	hSeries = gitexec.Hash("1111111111111111111111111111111111111111")
	hBase   = gitexec.Hash("2222222222222222222222222222222222222222")
	hCover  = gitexec.Hash("3333333333333333333333333333333333333333")
)

func TestDecodeMinimal(t *testing.T) {
	tr, err := Decode([]gitexec.TreeEntry{
		{Mode: gitexec.ModeGitlink, Name: "series", Hash: hSeries},
	})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tr.Series != hSeries || tr.Base != nil || tr.Cover != nil {
		t.Fatalf("Decode = %+v, want series-only", tr)
	}
}

func TestDecodeFull(t *testing.T) {
	tr, err := Decode([]gitexec.TreeEntry{
		{Mode: gitexec.ModeBlob, Name: "cover", Hash: hCover},
		{Mode: gitexec.ModeGitlink, Name: "base", Hash: hBase},
		{Mode: gitexec.ModeGitlink, Name: "series", Hash: hSeries},
	})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tr.Series != hSeries {
		t.Fatalf("Series = %s, want %s", tr.Series, hSeries)
	}
	if tr.Base == nil || *tr.Base != hBase {
		t.Fatalf("Base = %v, want %s", tr.Base, hBase)
	}
	if tr.Cover == nil || *tr.Cover != hCover {
		t.Fatalf("Cover = %v, want %s", tr.Cover, hCover)
	}
}

func TestDecodeMissingSeries(t *testing.T) {
	_, err := Decode([]gitexec.TreeEntry{
		{Mode: gitexec.ModeGitlink, Name: "base", Hash: hBase},
	})
	if !errors.Is(err, ErrMissingSeries) {
		t.Fatalf("Decode = %v, want ErrMissingSeries", err)
	}
}

func TestDecodeBadMode(t *testing.T) {
	_, err := Decode([]gitexec.TreeEntry{
		{Mode: gitexec.ModeBlob, Name: "series", Hash: hSeries},
	})
	if !errors.Is(err, ErrBadMode) {
		t.Fatalf("Decode = %v, want ErrBadMode", err)
	}
}

func TestDecodeUnknownEntryPreserved(t *testing.T) {
	extra := gitexec.TreeEntry{Mode: gitexec.ModeBlob, Name: "zzz-future", Hash: hCover}
	tr, err := Decode([]gitexec.TreeEntry{
		{Mode: gitexec.ModeGitlink, Name: "series", Hash: hSeries},
		extra,
	})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tr.Unknown) != 1 || tr.Unknown[0] != extra {
		t.Fatalf("Unknown = %v, want [%v]", tr.Unknown, extra)
	}

	// Encode must not silently drop it.
	encoded := tr.Encode()
	found := false
	for _, e := range encoded {
		if e == extra {
			found = true
		}
	}
	if !found {
		t.Fatalf("Encode dropped unknown entry: %v", encoded)
	}
}

func TestRoundTrip(t *testing.T) {
	original := []gitexec.TreeEntry{
		{Mode: gitexec.ModeGitlink, Name: "series", Hash: hSeries},
		{Mode: gitexec.ModeGitlink, Name: "base", Hash: hBase},
		{Mode: gitexec.ModeBlob, Name: "cover", Hash: hCover},
	}
	tr, err := Decode(original)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	re := tr.Encode()
	if len(re) != len(original) {
		t.Fatalf("Encode produced %d entries, want %d", len(re), len(original))
	}
}

func TestGitlinks(t *testing.T) {
	tr := &Tree{Series: hSeries, Base: &hBase}
	links := tr.Gitlinks()
	if len(links) != 2 || links[0] != hSeries || links[1] != hBase {
		t.Fatalf("Gitlinks = %v, want [%s %s]", links, hSeries, hBase)
	}
}
