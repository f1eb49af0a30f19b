package batch_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/ghannotate/pkg/batch"
)

func seq(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i
	}
	return arr
}

func TestSplit(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		n     int
		size  int
		sizes []int
	}{
		{name: "empty", n: 0, size: 50, sizes: nil},
		{name: "one", n: 1, size: 50, sizes: []int{1}},
		{name: "less than a page", n: 49, size: 50, sizes: []int{49}},
		{name: "exactly one page", n: 50, size: 50, sizes: []int{50}},
		{name: "one more than a page", n: 51, size: 50, sizes: []int{50, 1}},
		{name: "exact multiple", n: 100, size: 50, sizes: []int{50, 50}},
		{name: "120 findings", n: 120, size: 50, sizes: []int{50, 50, 20}},
		{name: "zero size", n: 3, size: 0, sizes: []int{3}},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			items := seq(d.n)
			pages := batch.Split(items, d.size)
			var sizes []int
			joined := []int{}
			for _, page := range pages {
				if len(page) == 0 {
					t.Fatal("an empty page must not be returned")
				}
				sizes = append(sizes, len(page))
				joined = append(joined, page...)
			}
			if diff := cmp.Diff(d.sizes, sizes); diff != "" {
				t.Fatalf("page sizes: %s", diff)
			}
			if diff := cmp.Diff(items, joined); diff != "" {
				t.Fatalf("pages must reconstruct the input: %s", diff)
			}
		})
	}
}

func TestSplit_pagesDontShareCapacity(t *testing.T) {
	t.Parallel()
	items := seq(4)
	pages := batch.Split(items, 2)
	_ = append(pages[0], 100)
	if items[2] != 2 {
		t.Fatal("appending to a page must not overwrite the next page")
	}
}
