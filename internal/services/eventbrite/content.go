package eventbrite

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractDescription extracts the plain-text event description from a
// structured-content document. The first module's body is an HTML fragment,
// possibly prefixed with a byte-order mark left over from utf-8-sig encoding.
// Text nodes are joined with single spaces so adjacent nodes separated only
// by markup do not run together.
func ExtractDescription(doc *StructuredContentResponse) (string, error) {
	body, err := contentBody(doc)
	if err != nil {
		return "", err
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse content body: %w", err)
	}

	var parts []string
	for _, node := range parsed.Nodes {
		collectText(node, &parts)
	}

	return strings.Join(parts, " "), nil
}

// ExtractDescriptionMarkdown converts the same content body to markdown.
// Optional enrichment; callers apply the same fall-back-to-empty policy as
// for the plain-text extraction.
func ExtractDescriptionMarkdown(doc *StructuredContentResponse) (string, error) {
	body, err := contentBody(doc)
	if err != nil {
		return "", err
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("failed to convert content body to markdown: %w", err)
	}

	return strings.TrimSpace(markdown), nil
}

// contentBody locates the first module's body text and strips any leading
// byte-order mark artifact.
func contentBody(doc *StructuredContentResponse) (string, error) {
	if doc == nil || len(doc.Modules) == 0 {
		return "", fmt.Errorf("structured content document has no modules")
	}

	body := doc.Modules[0].Data.Body.Text
	body = strings.TrimPrefix(body, "\uFEFF")

	return body, nil
}

// collectText walks the parsed fragment depth-first and gathers trimmed,
// non-empty text nodes in document order.
func collectText(node *html.Node, parts *[]string) {
	if node.Type == html.TextNode {
		if text := strings.TrimSpace(node.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}
