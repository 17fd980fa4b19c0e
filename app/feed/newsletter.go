package feed

import (
	"strings"

	"golang.org/x/net/html"
)

// Weekly newsletter issues are HubSpot-rendered HTML: each show sits in
// a block tagged data-hs-cos-field="show_info.show_heading" /
// "show_info.show_body", under a schedule header naming the weekday.

const (
	showHeadingField = "show_info.show_heading"
	showBodyField    = "show_info.show_body"
	scheduleClass    = "schedule-header__text"
)

var weekdayNames = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// ShowBlock is one show's entry extracted from a weekly newsletter.
type ShowBlock struct {
	Title string
	Body  string
	Day   string
}

// IsWeeklyNewsletter reports whether an item body is a digest issue
// covering multiple shows rather than a single-show announcement.
func IsWeeklyNewsletter(body string) bool {
	if strings.Contains(strings.ToLower(body), "this week on dropout") {
		return true
	}
	return strings.Count(body, `data-hs-cos-field="`+showHeadingField+`"`) >= 2
}

// ExtractShowBlocks walks the newsletter HTML in document order and
// returns one block per show heading, carrying the text of the show
// body that follows it and the weekday from the most recent schedule
// header.
func ExtractShowBlocks(body string) []ShowBlock {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil
	}

	var blocks []ShowBlock
	currentDay := ""

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case hasClass(n, scheduleClass):
				if day := collapseText(n); weekdayNames[day] {
					currentDay = day
				}
				return
			case attrValue(n, "data-hs-cos-field") == showHeadingField:
				if title := collapseText(n); title != "" {
					blocks = append(blocks, ShowBlock{Title: title, Day: currentDay})
				}
				return
			case attrValue(n, "data-hs-cos-field") == showBodyField:
				if len(blocks) > 0 {
					blocks[len(blocks)-1].Body = collapseText(n)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return blocks
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// collapseText concatenates the text content of a node's subtree with
// single-space separation.
func collapseText(n *html.Node) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
