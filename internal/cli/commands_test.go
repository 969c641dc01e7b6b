package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/metcollection/internal/mettest"
	apperrors "github.com/matzehuels/metcollection/pkg/errors"
	"github.com/matzehuels/metcollection/pkg/integrations/met"
)

const departmentsFixture = `{"departments": [
	{"departmentId": 1, "displayName": "American Decorative Arts"},
	{"departmentId": 11, "displayName": "European Paintings"}
]}`

const objectFixture = `{
	"objectID": 436535,
	"isHighlight": true,
	"isPublicDomain": true,
	"title": "Wheat Field with Cypresses",
	"artistDisplayName": "Vincent van Gogh",
	"artistDisplayBio": "Dutch, Zundert 1853–1890 Auvers-sur-Oise",
	"objectDate": "1889",
	"medium": "Oil on canvas",
	"department": "European Paintings",
	"objectURL": "https://www.metmuseum.org/art/collection/search/436535",
	"GalleryNumber": "822",
	"constituents": [{"constituentID": 161947, "role": "Artist", "name": "Vincent van Gogh"}],
	"tags": [{"term": "Landscapes", "AAT_URL": "http://vocab.getty.edu/page/aat/300132294"}],
	"measurements": null
}`

func TestSearchCommandQuery(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantQuery string
	}{
		{
			name:      "no filters",
			args:      []string{"search", "sunflowers"},
			wantQuery: "q=sunflowers",
		},
		{
			name:      "boolean filters",
			args:      []string{"search", "sunflowers", "--highlight", "--on-view=false", "--has-images"},
			wantQuery: "q=sunflowers&isHighlight=true&isOnView=false&hasImages=true",
		},
		{
			name:      "declaration order regardless of flag order",
			args:      []string{"search", "sunflowers", "--has-images", "--highlight"},
			wantQuery: "q=sunflowers&isHighlight=true&hasImages=true",
		},
		{
			name:      "repeated medium joined",
			args:      []string{"search", "sunflowers", "--medium", "Paintings", "--medium", "Drawings"},
			wantQuery: "q=sunflowers&medium=Paintings%7CDrawings",
		},
		{
			name:      "geo location keeps commas",
			args:      []string{"search", "vase", "--geo-location", "Paris, France"},
			wantQuery: "q=vase&geoLocation=Paris%2C+France",
		},
		{
			name:      "integer filters",
			args:      []string{"search", "portrait", "--department", "11", "--date-begin", "1700", "--date-end", "1800"},
			wantQuery: "q=portrait&departmentId=11&dateBegin=1700&dateEnd=1800",
		},
		{
			name:      "search fields",
			args:      []string{"search", "gogh", "--artist-or-culture", "--title=false"},
			wantQuery: "q=gogh&title=false&artistOrCulture=true",
		},
		{
			name:      "query with spaces",
			args:      []string{"search", "van gogh"},
			wantQuery: "q=van+gogh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := mettest.NewServer(t)
			srv.Respond("/search", http.StatusOK, `{"total": 1, "objectIDs": [436535]}`)

			if _, _, err := runCLI(t, srv, tt.args...); err != nil {
				t.Fatalf("search failed: %v", err)
			}

			reqs := srv.Requests()
			if len(reqs) != 1 {
				t.Fatalf("got %d requests, want 1", len(reqs))
			}
			if reqs[0].RawQuery != tt.wantQuery {
				t.Errorf("query = %q, want %q", reqs[0].RawQuery, tt.wantQuery)
			}
		})
	}
}

func TestSearchCommandText(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/search", http.StatusOK, `{"total": 3, "objectIDs": [436524, 437980, 436535]}`)

	out, _, err := runCLI(t, srv, "search", "sunflowers", "--limit", "2")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	for _, want := range []string{"3 matching objects", "436524", "437980", "showing 2 of 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "436535") {
		t.Errorf("output should be limited to 2 IDs:\n%s", out)
	}
}

func TestSearchCommandNoResults(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/search", http.StatusOK, `{"total": 0, "objectIDs": null}`)

	out, _, err := runCLI(t, srv, "search", "zzzz")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "0 matching objects") {
		t.Errorf("output = %q, want 0 matching objects", out)
	}
}

func TestObjectsCommandJSON(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/objects", http.StatusOK, `{"total": 5, "objectIDs": [1, 2, 3, 4, 5]}`)

	out, _, err := runCLI(t, srv, "objects", "-o", "json", "--limit", "2")
	if err != nil {
		t.Fatalf("objects failed: %v", err)
	}

	var got met.ObjectSummaryList
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := met.ObjectSummaryList{Total: 5, ObjectIDs: []int{1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("objects = %+v, want %+v", got, want)
	}
}

func TestObjectsCommandAll(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/objects", http.StatusOK, `{"total": 3, "objectIDs": [10, 20, 30]}`)

	out, _, err := runCLI(t, srv, "objects", "-o", "json", "-n", "0")
	if err != nil {
		t.Fatalf("objects failed: %v", err)
	}
	var got met.ObjectSummaryList
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got.ObjectIDs) != 3 {
		t.Errorf("got %d IDs, want 3", len(got.ObjectIDs))
	}
}

func TestDepartmentsCommandJSON(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/departments", http.StatusOK, departmentsFixture)

	out, _, err := runCLI(t, srv, "departments", "--output", "json")
	if err != nil {
		t.Fatalf("departments failed: %v", err)
	}

	var got met.DepartmentList
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output should be the bare list: %v\n%s", err, out)
	}
	want := met.DepartmentList{
		{DepartmentID: 1, DisplayName: "American Decorative Arts"},
		{DepartmentID: 11, DisplayName: "European Paintings"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("departments = %+v, want %+v", got, want)
	}
}

func TestDepartmentsCommandText(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/departments", http.StatusOK, departmentsFixture)

	out, _, err := runCLI(t, srv, "departments")
	if err != nil {
		t.Fatalf("departments failed: %v", err)
	}
	for _, want := range []string{"Department", "American Decorative Arts", "European Paintings", "11"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDepartmentsCommandTOML(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/departments", http.StatusOK, departmentsFixture)

	out, _, err := runCLI(t, srv, "departments", "-o", "toml")
	if err != nil {
		t.Fatalf("departments failed: %v", err)
	}
	for _, want := range []string{"[[departments]]", `displayName = "European Paintings"`, "departmentId = 11"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestObjectCommandText(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/objects/436535", http.StatusOK, objectFixture)

	out, _, err := runCLI(t, srv, "object", "436535")
	if err != nil {
		t.Fatalf("object failed: %v", err)
	}
	for _, want := range []string{
		"Wheat Field with Cypresses",
		"Vincent van Gogh",
		"Oil on canvas",
		"822",
		"Constituents",
		"Vincent van Gogh (Artist)",
		"Tags",
		"Landscapes",
		"https://www.metmuseum.org/art/collection/search/436535",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestObjectCommandTOML(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/objects/436535", http.StatusOK, objectFixture)

	out, _, err := runCLI(t, srv, "object", "436535", "-o", "toml")
	if err != nil {
		t.Fatalf("object failed: %v", err)
	}
	for _, want := range []string{"objectID = 436535", `title = "Wheat Field with Cypresses"`, "[[tags]]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestObjectCommandInvalidID(t *testing.T) {
	srv := mettest.NewServer(t)

	_, _, err := runCLI(t, srv, "object", "abc")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidObjectID) {
		t.Errorf("error = %v, want %s", err, apperrors.ErrCodeInvalidObjectID)
	}
	if n := len(srv.Requests()); n != 0 {
		t.Errorf("got %d requests, want 0", n)
	}
}

func TestObjectCommandStatusError(t *testing.T) {
	srv := mettest.NewServer(t)

	_, _, err := runCLI(t, srv, "object", "999999999")
	if err == nil || err.Error() != "MET API error: 404" {
		t.Errorf("error = %v, want MET API error: 404", err)
	}
}

func TestCommandsPropagateServerErrors(t *testing.T) {
	tests := []struct {
		path string
		args []string
	}{
		{"/objects", []string{"objects"}},
		{"/departments", []string{"departments"}},
		{"/search", []string{"search", "sunflowers"}},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			srv := mettest.NewServer(t)
			srv.Respond(tt.path, http.StatusServiceUnavailable, "Service Unavailable")

			_, _, err := runCLI(t, srv, tt.args...)
			if err == nil || err.Error() != "MET API error: 503" {
				t.Errorf("error = %v, want MET API error: 503", err)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	srv := mettest.NewServer(t)

	out, _, err := runCLI(t, srv, "completion", "bash")
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if !strings.Contains(out, "metcollection") {
		t.Errorf("bash completion should mention metcollection:\n%.200s", out)
	}

	if _, _, err := runCLI(t, srv, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestDepartmentFlagCompletion(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/departments", http.StatusOK, departmentsFixture)

	out, _, err := runCLI(t, srv, "__complete", "search", "vase", "--department", "")
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	for _, want := range []string{"1\tAmerican Decorative Arts", "11\tEuropean Paintings"} {
		if !strings.Contains(out, want) {
			t.Errorf("completions missing %q:\n%s", want, out)
		}
	}
}

func TestSearchCommandDateRange(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"inverted", []string{"search", "vase", "--date-begin", "1800", "--date-end", "1700"}, "date range is inverted"},
		{"begin without end", []string{"search", "vase", "--date-begin", "1800"}, "date-begin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := mettest.NewServer(t)

			_, _, err := runCLI(t, srv, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}
			if n := len(srv.Requests()); n != 0 {
				t.Errorf("got %d requests, want 0", n)
			}
		})
	}
}

func TestBaseURLFlag(t *testing.T) {
	srv := mettest.NewServer(t)
	srv.Respond("/departments", http.StatusOK, departmentsFixture)

	var out, logs bytes.Buffer
	root := New(&logs, LogInfo, met.WithHTTPClient(srv.Client())).RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs([]string{"departments", "--base-url", srv.BaseURL() + "/"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("departments failed: %v", err)
	}
	if len(srv.Requests()) != 1 {
		t.Errorf("request should reach the --base-url server")
	}
}

func TestBaseURLFlagInvalid(t *testing.T) {
	srv := mettest.NewServer(t)

	_, _, err := runCLI(t, srv, "departments", "--base-url", "ftp://example.com")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidURL) {
		t.Errorf("error = %v, want %s", err, apperrors.ErrCodeInvalidURL)
	}
	if n := len(srv.Requests()); n != 0 {
		t.Errorf("got %d requests, want 0", n)
	}
}

func TestSearchFlagsOptionsAbsentUnlessSet(t *testing.T) {
	var f searchFlags
	cmd := &cobra.Command{Use: "search"}
	cmd.Flags().BoolVar(&f.highlight, "highlight", false, "")
	cmd.Flags().BoolVar(&f.onView, "on-view", false, "")
	cmd.Flags().IntVar(&f.department, "department", 0, "")
	cmd.Flags().IntVar(&f.dateBegin, "date-begin", 0, "")
	if err := cmd.Flags().Parse([]string{"--highlight=false", "--department", "0"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	opts := f.options(cmd)

	if v, ok := opts.Get(met.KeyIsHighlight).Encode(); !ok || v != "false" {
		t.Errorf("isHighlight = %q (present %v), want explicit false", v, ok)
	}
	if v, ok := opts.Get(met.KeyDepartmentID).Encode(); !ok || v != "0" {
		t.Errorf("departmentId = %q (present %v), want explicit 0", v, ok)
	}
	for _, key := range []string{met.KeyIsOnView, met.KeyDateBegin, met.KeyMedium} {
		if !opts.Get(key).IsNone() {
			t.Errorf("%s should be absent when its flag is not set", key)
		}
	}
	if got, want := met.EncodeSearch("vase", opts), "q=vase&isHighlight=false&departmentId=0"; got != want {
		t.Errorf("EncodeSearch() = %q, want %q", got, want)
	}
}
