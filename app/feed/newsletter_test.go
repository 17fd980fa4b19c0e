package feed

import (
	"testing"
)

const sampleNewsletter = `<html><body>
	<table><tr><td>
		<div class="schedule-header"><span class="schedule-header__text">Monday</span></div>
		<h2 data-hs-cos-field="show_info.show_heading">Um, Actually</h2>
		<div data-hs-cos-field="show_info.show_body"><p>7pm ET / 4pm PT</p><p>Corrections abound.</p></div>
		<div class="schedule-header"><span class="schedule-header__text">Friday</span></div>
		<h2 data-hs-cos-field="show_info.show_heading">Dimension 20</h2>
		<div data-hs-cos-field="show_info.show_body">11pm ET The campaign continues.</div>
	</td></tr></table>
</body></html>`

func TestIsWeeklyNewsletter(t *testing.T) {
	if !IsWeeklyNewsletter(sampleNewsletter) {
		t.Error("Expected newsletter with two show headings to be detected")
	}
	if !IsWeeklyNewsletter("<p>This week on Dropout we have a lot!</p>") {
		t.Error("Expected the digest catchphrase to be detected")
	}
	if IsWeeklyNewsletter("<p>A single announcement</p>") {
		t.Error("Expected a plain announcement not to be detected")
	}
	if IsWeeklyNewsletter(`<h2 data-hs-cos-field="show_info.show_heading">Only One</h2>`) {
		t.Error("A single show heading is not a weekly digest")
	}
}

func TestExtractShowBlocks(t *testing.T) {
	blocks := ExtractShowBlocks(sampleNewsletter)

	if len(blocks) != 2 {
		t.Fatalf("Expected 2 show blocks, got %d", len(blocks))
	}

	if blocks[0].Title != "Um, Actually" {
		t.Errorf("Expected first title 'Um, Actually', got %q", blocks[0].Title)
	}
	if blocks[0].Day != "Monday" {
		t.Errorf("Expected first day 'Monday', got %q", blocks[0].Day)
	}
	if blocks[0].Body != "7pm ET / 4pm PT Corrections abound." {
		t.Errorf("Expected collapsed body text, got %q", blocks[0].Body)
	}

	if blocks[1].Title != "Dimension 20" {
		t.Errorf("Expected second title 'Dimension 20', got %q", blocks[1].Title)
	}
	if blocks[1].Day != "Friday" {
		t.Errorf("Expected second day 'Friday', got %q", blocks[1].Day)
	}
	if blocks[1].Body != "11pm ET The campaign continues." {
		t.Errorf("Expected second body text, got %q", blocks[1].Body)
	}
}

func TestExtractShowBlocks_NoMarkers(t *testing.T) {
	blocks := ExtractShowBlocks("<p>Nothing structured here</p>")
	if len(blocks) != 0 {
		t.Errorf("Expected no blocks, got %d", len(blocks))
	}
}

func TestExtractShowBlocks_ScheduleHeaderWithNonDayText(t *testing.T) {
	body := `<div class="schedule-header__text">Coming Up</div>
		<h2 data-hs-cos-field="show_info.show_heading">Game Changer</h2>
		<div data-hs-cos-field="show_info.show_body">Tonight.</div>
		<h2 data-hs-cos-field="show_info.show_heading">Make Some Noise</h2>`

	blocks := ExtractShowBlocks(body)
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Day != "" {
		t.Errorf("Non-weekday header text must not set a day, got %q", blocks[0].Day)
	}
}
