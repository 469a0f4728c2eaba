package lgrep

import (
	"errors"
	"strings"
	"testing"
)

func FuzzPatternCompile(f *testing.F) {
	seeds := []string{
		// Good patterns.
		"abc",
		"a+",
		`\d{2,4}`,
		"(foo|bar)",
		"^x.*y$",
		`[a-z]+@[a-z]+`,

		// Bad patterns.
		`(`,
		`[a-`,
		`a{2,1}`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		defer func() {
			rv := recover()
			if rv != nil {
				t.Fatalf("panic during compiling %q", s)
			}
		}()
		searcher, err := NewSearcher(s, Options{CaseIgnore: true})
		if err != nil {
			if !errors.Is(err, ErrInvalidPattern) {
				t.Fatalf("compile %q: error %v does not match ErrInvalidPattern", s, err)
			}
			return
		}
		scan := searcher.SearchReader(strings.NewReader("fuzz line\n"))
		for scan.Next() {
		}
	})
}
