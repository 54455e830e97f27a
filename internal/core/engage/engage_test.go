package engage

import "testing"

func obs(a *Aggregator, id string, kind Kind, n int) {
	for i := 0; i < n; i++ {
		a.Observe(Profile{ID: id, Handle: id + ".test"}, kind)
	}
}

func TestRecords_WeightedScoring(t *testing.T) {
	a := New(Weights{})

	obs(a, "alice", KindLike, 3)    // 3
	obs(a, "bob", KindRepost, 2)    // 8
	obs(a, "carol", KindComment, 2) // 4
	obs(a, "carol", KindLike, 1)    // 5

	recs := a.Records()
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].ID != "bob" || recs[0].RawScore != 8 {
		t.Fatalf("expected bob first with raw 8, got %s raw=%d", recs[0].ID, recs[0].RawScore)
	}
	if recs[0].Score != 100 {
		t.Fatalf("top engager should normalize to 100, got %d", recs[0].Score)
	}
	// carol: round(5/8*100) = 63, alice: round(3/8*100) = 38
	if recs[1].ID != "carol" || recs[1].Score != 63 {
		t.Fatalf("expected carol with score 63, got %s score=%d", recs[1].ID, recs[1].Score)
	}
	if recs[2].ID != "alice" || recs[2].Score != 38 {
		t.Fatalf("expected alice with score 38, got %s score=%d", recs[2].ID, recs[2].Score)
	}
}

func TestRecords_TiesKeepFirstSeenOrder(t *testing.T) {
	a := New(DefaultWeights)

	obs(a, "first", KindLike, 2)
	obs(a, "second", KindLike, 2)
	obs(a, "third", KindComment, 1) // same raw score of 2

	recs := a.Records()
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if recs[i].ID != id {
			t.Fatalf("rank %d: expected %s, got %s", i, id, recs[i].ID)
		}
	}
}

func TestRecords_Empty(t *testing.T) {
	a := New(DefaultWeights)
	recs := a.Records()
	if recs == nil || len(recs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", recs)
	}
}

func TestRecords_AllZeroScores(t *testing.T) {
	a := New(Weights{Like: 0, Repost: 1, Comment: 1})
	obs(a, "alice", KindLike, 5)

	recs := a.Records()
	if recs[0].Score != 0 || recs[0].RawScore != 0 {
		t.Fatalf("zero raw max should keep scores at zero, got %+v", recs[0])
	}
}

func TestObserve_BackfillsIdentity(t *testing.T) {
	a := New(DefaultWeights)
	a.Observe(Profile{ID: "did:plc:x"}, KindLike)
	a.Observe(Profile{ID: "did:plc:x", Handle: "x.bsky.social", Name: "X"}, KindRepost)

	recs := a.Records()
	if recs[0].Handle != "x.bsky.social" || recs[0].Name != "X" {
		t.Fatalf("expected identity backfill, got %+v", recs[0].Profile)
	}
}

func TestViewerMarks(t *testing.T) {
	a := New(DefaultWeights)
	obs(a, "alice", KindLike, 1)

	a.MarkViewerLiked("alice")
	a.MarkViewerReplied("alice")
	a.MarkViewerLiked("nobody") // unknown actors are ignored

	recs := a.Records()
	if !recs[0].ViewerLiked || !recs[0].ViewerReplied {
		t.Fatalf("expected viewer marks set, got %+v", recs[0])
	}
	if recs[0].ViewerReposted {
		t.Fatalf("viewer repost detection is not wired yet and must stay false")
	}
}
