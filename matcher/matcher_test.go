package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prizzledev/simple-cacher/matcher"
)

func TestStringMatchers(t *testing.T) {
	tests := []struct {
		name string
		m    matcher.Matcher[string]
		key  string
		want bool
	}{
		{"exact hit", matcher.Exact("user:alice"), "user:alice", true},
		{"exact miss", matcher.Exact("user:alice"), "user:alicia", false},
		{"prefix hit", matcher.Prefix("user:"), "user:bob", true},
		{"prefix miss", matcher.Prefix("user:"), "admin:carl", false},
		{"empty prefix", matcher.Prefix(""), "anything", true},
		{"suffix hit", matcher.Suffix(".rs"), "/src/main.rs", true},
		{"suffix miss", matcher.Suffix(".rs"), "/src/main.go", false},
		{"contains hit", matcher.Contains("/config/"), "/app/config/db.toml", true},
		{"contains miss", matcher.Contains("/config/"), "/app/src/db.rs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Matches(tt.key))
		})
	}
}

func TestRange(t *testing.T) {
	t.Run("inclusive", func(t *testing.T) {
		m := matcher.Range(6, 12)

		assert.False(t, m.Matches(5))
		assert.True(t, m.Matches(6))
		assert.True(t, m.Matches(10))
		assert.True(t, m.Matches(12))
		assert.False(t, m.Matches(15))
	})

	t.Run("exclusive", func(t *testing.T) {
		m := matcher.RangeExclusive(6, 12)

		assert.False(t, m.Matches(6))
		assert.True(t, m.Matches(7))
		assert.False(t, m.Matches(12))
	})

	t.Run("strings order lexically", func(t *testing.T) {
		m := matcher.Range("b", "d")

		assert.True(t, m.Matches("c"))
		assert.True(t, m.Matches("bzz"))
		assert.False(t, m.Matches("e"))
	})
}

func TestFunc(t *testing.T) {
	even := matcher.Func[int](func(k int) bool { return k%2 == 0 })

	assert.True(t, even.Matches(4))
	assert.False(t, even.Matches(5))
}

func TestCombinators(t *testing.T) {
	users := matcher.Prefix("user:")
	admins := matcher.Suffix("@admin")

	t.Run("all", func(t *testing.T) {
		m := matcher.All(users, admins)
		assert.True(t, m.Matches("user:carl@admin"))
		assert.False(t, m.Matches("user:carl"))
		assert.True(t, matcher.All[string]().Matches("x"))
	})

	t.Run("any", func(t *testing.T) {
		m := matcher.Any(users, admins)
		assert.True(t, m.Matches("user:carl"))
		assert.True(t, m.Matches("ops:dave@admin"))
		assert.False(t, m.Matches("ops:dave"))
		assert.False(t, matcher.Any[string]().Matches("x"))
	})

	t.Run("not", func(t *testing.T) {
		m := matcher.Not(users)
		assert.False(t, m.Matches("user:carl"))
		assert.True(t, m.Matches("admin:carl"))
	})
}

func TestRegexp(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		m, err := matcher.Regexp(`^(?:[0-9]{1,3}\.){3}[0-9]{1,3}$`)
		require.NoError(t, err)

		assert.True(t, m.Matches("192.168.1.1"))
		assert.False(t, m.Matches("192.168.1"))
		assert.False(t, m.Matches("alice@company.com"))
	})

	t.Run("bad pattern", func(t *testing.T) {
		m, err := matcher.Regexp(`(unclosed`)
		require.Error(t, err)
		assert.Nil(t, m)
	})

	t.Run("must panics on bad pattern", func(t *testing.T) {
		assert.Panics(t, func() {
			matcher.MustRegexp(`[`)
		})
	})
}
