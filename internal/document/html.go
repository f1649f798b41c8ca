package document

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "p, div, section, article, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr"

// htmlText returns the visible text of an HTML page. Block elements and <br>
// become line breaks so sentences from adjacent blocks do not run together.
func htmlText(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", err
	}

	doc.Find("head, script, style, noscript, template").Remove()
	doc.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithHtml("\n")
	})
	doc.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		block.AppendHtml("\n")
	})

	var textBuilder strings.Builder
	for line := range strings.SplitSeq(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if textBuilder.Len() > 0 {
			textBuilder.WriteString("\n")
		}
		textBuilder.WriteString(line)
	}

	return textBuilder.String(), nil
}
