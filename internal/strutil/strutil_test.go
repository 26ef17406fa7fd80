package strutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"shorter than max", "abc", 6, "abc"},
		{"exactly max", "abcdef", 6, "abcdef"},
		{"one over max", "abcdefg", 6, "abcdef..."},
		{"well over max", "abcdefghijklmnop", 6, "abcdef..."},
		{"empty", "", 6, ""},
		{"zero max returns input", "abcdef", 0, "abcdef"},
		{"multibyte runes", "äöüäöüäöü", 3, "äöü..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestShorten(t *testing.T) {
	tests := []struct {
		name  string
		input string
		edge  int
		want  string
	}{
		{"address", "osmo1qwertyuiopasdfgh", 4, "osmo...dfgh"},
		{"fits whole", "osmo1ab", 4, "osmo1ab"},
		{"boundary exactly 2*edge+3", "abcdefghijk", 4, "abcdefghijk"},
		{"boundary one over", "abcdefghijkl", 4, "abcd...ijkl"},
		{"zero edge returns input", "abcdef", 0, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shorten(tt.input, tt.edge); got != tt.want {
				t.Errorf("Shorten(%q, %d) = %q, want %q", tt.input, tt.edge, got, tt.want)
			}
		})
	}
}

func TestShortenBounds(t *testing.T) {
	// Output never exceeds input length and stays bounded by 2*edge+3.
	inputs := []string{"", "a", "abcdef", "osmo1qwertyuiopasdfghjklzxcvbnm"}
	for _, in := range inputs {
		got := Shorten(in, 5)
		if len([]rune(got)) > 2*5+3 && got != in {
			t.Errorf("Shorten(%q, 5) = %q exceeds bound", in, got)
		}
	}
}

func TestEllipsisText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exactly max", "helloworld", 10, "helloworld"},
		{"one over", "helloworld!", 10, "hell...ld!"},
		{"odd split keeps extra at head", "abcdefghijklm", 8, "abc...lm"},
		{"tiny max", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EllipsisText(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("EllipsisText(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if n := len([]rune(got)); tt.max > 0 && n > tt.max && got != tt.input {
				t.Errorf("EllipsisText(%q, %d) length %d exceeds max", tt.input, tt.max, n)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.example.com/", "example.com"},
		{"http://example.com", "example.com"},
		{"www.example.com/path/", "example.com/path"},
		{"example.com", "example.com"},
		{"https://example.com//", "example.com"},
		{"  https://example.com ", "example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeURL(tt.input); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, tt := range tests {
			once := NormalizeURL(tt.input)
			if twice := NormalizeURL(once); twice != once {
				t.Errorf("NormalizeURL not idempotent on %q: %q != %q", tt.input, once, twice)
			}
		}
	})
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"camelCase", "camel_case"},
		{"orderBookAddress", "order_book_address"},
		{"Simple", "simple"},
		{"lower", "lower"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CamelToSnake(tt.input); got != tt.want {
			t.Errorf("CamelToSnake(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	t.Run("stable on converted input", func(t *testing.T) {
		for _, tt := range tests {
			if got := CamelToSnake(tt.want); got != tt.want {
				t.Errorf("CamelToSnake(%q) = %q, want unchanged", tt.want, got)
			}
		}
	})
}

func TestCamelToKebab(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"camelCase", "camel-case"},
		{"orderBookAddress", "order-book-address"},
		{"lower", "lower"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CamelToKebab(tt.input); got != tt.want {
			t.Errorf("CamelToKebab(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	t.Run("stable on converted input", func(t *testing.T) {
		for _, tt := range tests {
			if got := CamelToKebab(tt.want); got != tt.want {
				t.Errorf("CamelToKebab(%q) = %q, want unchanged", tt.want, got)
			}
		}
	})
}
