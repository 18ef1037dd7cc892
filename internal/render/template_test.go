package render

import "testing"

func TestDocumentRenderSubstitutesAllOccurrences(t *testing.T) {
	doc := ParseDocument("<h1>{{name}}</h1><title>{{name}}</title>")

	got := doc.Render(map[string]string{"name": "Ada"})
	want := "<h1>Ada</h1><title>Ada</title>"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestDocumentRenderLeavesUnresolvedTokensLiteral(t *testing.T) {
	doc := ParseDocument("<p>{{known}} and {{unknown}}</p>")

	got := doc.Render(map[string]string{"known": "value"})
	want := "<p>value and {{unknown}}</p>"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestDocumentRenderInsertsVerbatim(t *testing.T) {
	doc := ParseDocument("<p>{{about}}</p>")

	// 内容原样插入，不做转义。
	got := doc.Render(map[string]string{"about": `<b>bold & "quoted"</b>`})
	want := `<p><b>bold & "quoted"</b></p>`
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestParseDocumentUnclosedBracesStayLiteral(t *testing.T) {
	doc := ParseDocument("before {{dangling after")

	got := doc.Render(map[string]string{"dangling": "x"})
	if got != "before {{dangling after" {
		t.Fatalf("Render = %q", got)
	}
}

func TestParseDocumentEmptyInput(t *testing.T) {
	if got := ParseDocument("").Render(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
