package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCodeBlocks(t *testing.T) {
	document := "# Doc\n\n```jsx\n<input name=\"a\" />\n```\n\ntext\n\n```python\nprint('no')\n```\n\n```ts\nregister('b')\n```\n"

	got := CodeBlocks(document)
	want := []string{"<input name=\"a\" />\n", "register('b')\n"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestCodeBlocks_None(t *testing.T) {
	if got := CodeBlocks("plain text, no fences"); got != nil {
		t.Fatalf("expected no blocks, got %v", got)
	}
}
