package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/catsplus/radiograb-sub001/lib/schedule"
)

const schedulePage = `<html><body>
<table>
  <tr><th>TIME</th><th>MONDAY</th><th>TUESDAY</th></tr>
  <tr><td>7:00 PM</td><td>Jazz Hour</td><td>Talk Time</td></tr>
  <tr><td>8:00 PM</td><td>Music</td><td>Blues Train</td></tr>
</table>
</body></html>`

func serve(t *testing.T, page string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTableStrategy(t *testing.T) {
	server := serve(t, schedulePage)

	shows, err := newTableStrategy().Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	filtered, _ := schedule.Filter(shows)

	end19 := schedule.TimeOfDay{Hour: 20, Minute: 0}
	end20 := schedule.TimeOfDay{Hour: 21, Minute: 0}
	expected := []schedule.Show{
		{
			Name: "Jazz Hour", Start: schedule.TimeOfDay{Hour: 19}, End: &end19,
			Days: []schedule.Weekday{schedule.Monday},
			Host: "DJ", Genre: "music", DurationMinutes: 60, SourceStrategy: "html_table",
		},
		{
			Name: "Talk Time", Start: schedule.TimeOfDay{Hour: 19}, End: &end19,
			Days: []schedule.Weekday{schedule.Tuesday},
			Host: "DJ", Genre: "talk", DurationMinutes: 60, SourceStrategy: "html_table",
		},
		// "Music" on monday 8pm is a filler value and gets skipped
		{
			Name: "Blues Train", Start: schedule.TimeOfDay{Hour: 20}, End: &end20,
			Days: []schedule.Weekday{schedule.Tuesday},
			Host: "DJ", Genre: "music", DurationMinutes: 60, SourceStrategy: "html_table",
		},
	}

	for i := range expected {
		expected[i].Station = schedule.StationLabel(server.URL)
	}
	if diff := cmp.Diff(expected, filtered); diff != "" {
		t.Fatal(diff)
	}
}

func TestTableStrategyIgnoresNonScheduleTables(t *testing.T) {
	server := serve(t, `<html><body>
<table>
  <tr><th>Name</th><th>Email</th></tr>
  <tr><td>Station Manager</td><td>manager@example.org</td></tr>
</table>
</body></html>`)

	shows, err := newTableStrategy().Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 0 {
		t.Fatalf("expected no shows from a staff table, got %v", shows)
	}
}

func TestTableStrategyHeaderBeyondFirstRows(t *testing.T) {
	// header must be found within the first 5 rows only
	server := serve(t, `<html><body>
<table>
  <tr><td>About our programming</td></tr>
  <tr><td>schedule</td></tr>
  <tr><th>Time</th><th>Friday</th></tr>
  <tr><td>6:30 AM</td><td>Sunrise Folk</td></tr>
</table>
</body></html>`)

	shows, err := newTableStrategy().Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d", len(shows))
	}
	if shows[0].Name != "Sunrise Folk" || shows[0].Start != (schedule.TimeOfDay{Hour: 6, Minute: 30}) {
		t.Errorf("got %+v", shows[0])
	}
	if shows[0].Days[0] != schedule.Friday {
		t.Errorf("day = %v", shows[0].Days)
	}
}

func TestSheetStrategyIframeRecursion(t *testing.T) {
	var sheetServer *httptest.Server
	sheetServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><table>
<tr><td></td><th>TIME</th><th>SATURDAY</th></tr>
<tr><td>1</td><td>9:00 AM</td><td>Weekend Wakeup</td></tr>
<tr><td>2</td><td>9:30 AM</td><td>filler</td></tr>
</table></body></html>`))
	}))
	defer sheetServer.Close()

	page := `<html><body>
<iframe src="` + sheetServer.URL + `/pubhtml?widget=true"></iframe>
</body></html>`
	stationServer := serve(t, page)

	shows, err := newSheetStrategy().Extract(context.Background(), stationServer.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d: %v", len(shows), shows)
	}

	s := shows[0]
	if s.Name != "Weekend Wakeup" {
		t.Errorf("name = %q", s.Name)
	}
	if s.Start != (schedule.TimeOfDay{Hour: 9}) {
		t.Errorf("start = %v", s.Start)
	}
	// spreadsheet default slot is 30 minutes, not 60
	if s.DurationMinutes != 30 {
		t.Errorf("duration = %d, expected 30", s.DurationMinutes)
	}
	station := schedule.StationLabel(stationServer.URL)
	if s.Host != station+" DJ" {
		t.Errorf("host = %q, expected %q", s.Host, station+" DJ")
	}
}
