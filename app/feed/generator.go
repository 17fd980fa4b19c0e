package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"time"

	"github.com/showsplit/showsplit/app/cfg"
	"github.com/showsplit/showsplit/app/shows"
)

const platformURL = "https://www.dropout.tv/"

// CombinedSlug names the feed that interleaves every show.
const CombinedSlug = shows.CombinedSlug

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders the RSS 2.0 document for one show's episode list.
func (g *Generator) Run(show *shows.Show, episodes []Episode) string {
	description := fmt.Sprintf("Episode feed for %s", show.Name)
	return g.render(show.Slug, show.Name, description, episodes)
}

// RunCombined renders the interleaved all-shows feed.
func (g *Generator) RunCombined(episodes []Episode) string {
	return g.render(CombinedSlug, "All Shows", "Combined episode feed for all shows", episodes)
}

func (g *Generator) render(slug, title, description string, episodes []Episode) string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", title, 4)
	g.writeElement(&buf, "description", description, 4)

	link := cfg.Get().BaseUrl
	if link == "" {
		link = platformURL
	}
	g.writeElement(&buf, "link", link, 4)
	g.writeElement(&buf, "language", "en-us", 4)

	var selfLink string
	if cfg.Get().BaseUrl != "" {
		selfLink = fmt.Sprintf("%s/feeds/%s.xml", cfg.Get().BaseUrl, slug)
	} else {
		selfLink = fmt.Sprintf("http://localhost:%s/feeds/%s.xml", cfg.Get().Port, slug)
	}
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(selfLink)))

	lastBuildDate := time.Now()
	if len(episodes) > 0 {
		lastBuildDate = episodes[0].PublishedAt
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("showsplit/%s", cfg.Get().Version), 4)

	for _, ep := range episodes {
		g.writeItem(&buf, ep)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String()
}

func (g *Generator) writeItem(buf *bytes.Buffer, ep Episode) {
	buf.WriteString("    <item>\n")

	if ep.GUID != "" {
		buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", g.isURL(ep.GUID)))
		xml.EscapeText(buf, []byte(ep.GUID))
		buf.WriteString("</guid>\n")
	}

	g.writeElement(buf, "title", ep.Title, 6)

	if ep.Link != "" {
		g.writeElement(buf, "link", ep.Link, 6)
	}

	description := ep.Description
	if description == "" {
		description = "No description available"
	}
	g.writeElement(buf, "description", description, 6)

	if !ep.PublishedAt.IsZero() {
		g.writeElement(buf, "pubDate", ep.PublishedAt.Format(time.RFC1123Z), 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func (g *Generator) isURL(s string) bool {
	return (len(s) > 7 && s[:7] == "http://") || (len(s) > 8 && s[:8] == "https://")
}
