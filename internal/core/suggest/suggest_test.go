package suggest

import (
	"fmt"
	"testing"
)

func TestScreener_Exclusions(t *testing.T) {
	s := NewScreener("seed", []string{"f1", "f2"}, []string{"g1"})

	for _, id := range []string{"seed", "f1", "f2", "g1"} {
		if s.Admit(id) {
			t.Fatalf("expected %s to be excluded", id)
		}
	}
	if !s.Admit("new") {
		t.Fatalf("expected unseen actor to be admitted")
	}
	if s.Admit("new") {
		t.Fatalf("expected duplicate to be rejected")
	}
}

func TestScreener_Cap(t *testing.T) {
	s := NewScreener("seed", nil, nil)
	for i := 0; i < MaxCandidates; i++ {
		if !s.Admit(fmt.Sprintf("c%d", i)) {
			t.Fatalf("admission %d unexpectedly rejected", i)
		}
	}
	if !s.Full() {
		t.Fatalf("expected screener to report full at %d", MaxCandidates)
	}
	if s.Admit("overflow") {
		t.Fatalf("expected admission past cap to be rejected")
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		name string
		in   Engagement
		want int
	}{
		{"zero posts", Engagement{Likes: 10}, 0},
		{"mixed", Engagement{Likes: 4, Reposts: 2, Replies: 1, Posts: 5}, 22}, // (4+4+3)/5*10
		{"clamped high", Engagement{Replies: 50, Posts: 2}, 100},
		{"quiet account", Engagement{Posts: 40, Likes: 2}, 1}, // 2/40*10 = 0.5 rounds up
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Score(c.in); got != c.want {
				t.Fatalf("Score(%+v) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

func TestRank_TopNAndStability(t *testing.T) {
	cands := []Candidate{
		{Profile: Profile{ID: "a"}, Score: 40},
		{Profile: Profile{ID: "b"}, Score: 90},
		{Profile: Profile{ID: "c"}, Score: 40},
		{Profile: Profile{ID: "d"}, Score: 70},
	}
	got := Rank(cands, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	want := []string{"b", "d", "a"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("rank %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	// input must not be reordered
	if cands[0].ID != "a" || cands[3].ID != "d" {
		t.Fatalf("Rank mutated its input: %+v", cands)
	}
}

func TestRank_FewerThanN(t *testing.T) {
	got := Rank([]Candidate{{Profile: Profile{ID: "only"}, Score: 5}}, TopN)
	if len(got) != 1 || got[0].ID != "only" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
