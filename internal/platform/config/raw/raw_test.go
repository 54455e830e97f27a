package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("APP_NAME", " skypulse ")
	t.Setenv("FEED_BASE", " https://public.api.bsky.app ")

	root := New()
	feed := root.Prefix("FEED_")

	tests := []struct {
		name string
		conf Conf
		key  string
		def  string
		want string
	}{
		{name: "root no default used", conf: root, key: "APP_NAME", def: "x", want: "skypulse"},
		{name: "prefixed hit", conf: feed, key: "BASE", def: "x", want: "https://public.api.bsky.app"},
		{name: "missing returns default", conf: feed, key: "MISSING", def: "defv", want: "defv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("X_")
	t.Setenv("X_T", "YES")
	t.Setenv("X_F", "0")

	if !c.GetBool("T", false) {
		t.Fatalf("GetBool YES = false")
	}
	if c.GetBool("F", true) {
		t.Fatalf("GetBool 0 = true")
	}
	if !c.GetBool("MISSING", true) {
		t.Fatalf("GetBool missing should use default")
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("X_")
	t.Setenv("X_N", " 42 ")
	t.Setenv("X_BAD", "4x2")

	if got := c.GetInt("N", 1); got != 42 {
		t.Fatalf("GetInt = %d, want 42", got)
	}
	if got := c.GetInt("BAD", 7); got != 7 {
		t.Fatalf("GetInt bad = %d, want default 7", got)
	}
	if got := c.GetInt("MISSING", 9); got != 9 {
		t.Fatalf("GetInt missing = %d, want default 9", got)
	}
}
