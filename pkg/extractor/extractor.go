package extractor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xhad/roll/internal/models"
	"github.com/xhad/roll/pkg/markdown"
)

// ErrParse is wrapped by every structural error, so callers can
// discriminate parse failures from fetch failures with errors.Is.
var ErrParse = errors.New("md parse failed")

const (
	categoryPrefix = "Build"
	boundaryPrefix = "Contribute"
)

// Extract walks the document root and rebuilds the two-level taxonomy:
// depth-4 "Build ..." headings open a category named by their inline
// code, the lists that follow fill it. A depth-2 "Contribute" heading
// ends the relevant content. Any deviation from that shape aborts the
// whole extraction.
func Extract(root *markdown.Node) (models.Catalog, error) {
	catalog := models.Catalog{}
	current := "" // empty means no category is active

	for _, child := range root.Children {
		switch child.Kind {
		case markdown.KindHeading:
			switch child.Depth {
			case 2:
				if first := child.First(); first != nil && first.Kind == markdown.KindText &&
					strings.HasPrefix(first.Literal, boundaryPrefix) {
					return catalog, nil
				}
			case 4:
				name, ok, err := categoryName(child)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				current = name
				catalog[name] = []string{}
			}
		case markdown.KindList:
			if current == "" {
				continue
			}
			for _, item := range child.Children {
				title, err := entryTitle(item)
				if err != nil {
					return nil, err
				}
				catalog[current] = append(catalog[current], title)
			}
		}
	}

	return catalog, nil
}

// categoryName inspects a depth-4 heading. ok is false when the heading
// is not a "Build ..." one and should simply be skipped.
func categoryName(heading *markdown.Node) (name string, ok bool, err error) {
	first := heading.First()
	if first == nil || first.Kind != markdown.KindText {
		return "", false, fmt.Errorf("%w: expected direct text under a depth-4 heading", ErrParse)
	}
	if !strings.HasPrefix(first.Literal, categoryPrefix) {
		return "", false, nil
	}

	code := heading.Nth(1)
	if code == nil || code.Kind != markdown.KindCodeSpan {
		return "", false, fmt.Errorf("%w: expected inline code in a depth-4 heading", ErrParse)
	}
	return code.Literal, true, nil
}

// entryTitle renders a list item into a styled title template. The item
// must hold a paragraph whose first child is a link; the link's strong
// and emphasis runs become the title, everything else is skipped.
func entryTitle(item *markdown.Node) (string, error) {
	para := item.First()
	if para == nil || para.Kind != markdown.KindParagraph {
		return "", fmt.Errorf("%w: expected link for category item", ErrParse)
	}
	link := para.First()
	if link == nil || link.Kind != markdown.KindLink {
		return "", fmt.Errorf("%w: expected link for category item", ErrParse)
	}

	var title strings.Builder
	for _, part := range link.Children {
		switch part.Kind {
		case markdown.KindStrong:
			text := part.First()
			if text == nil || text.Kind != markdown.KindText {
				return "", fmt.Errorf("%w: expected text under strong", ErrParse)
			}
			fmt.Fprintf(&title, "{blue}{bold}%s{-}: ", text.Literal)
		case markdown.KindEmphasis:
			text := part.First()
			if text == nil || text.Kind != markdown.KindText {
				return "", fmt.Errorf("%w: expected text under emphasis", ErrParse)
			}
			fmt.Fprintf(&title, "{white}{italic}%s{-}", text.Literal)
		}
	}

	return title.String(), nil
}
