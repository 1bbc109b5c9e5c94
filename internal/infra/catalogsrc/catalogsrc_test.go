package catalogsrc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
)

const yamlCatalog = `entries:
  - id: hours
    question: what are your business hours
    answer: "We're open from 9 AM to 6 PM, Monday to Friday."
  - id: hours_hi
    question: aapke vyapar ke ghante kya hain
    answer: हम सोमवार से शुक्रवार सुबह 9 बजे से शाम 6 बजे तक खुले रहते हैं।
`

const jsonCatalog = `{"entries":[{"id":"hours","question":"what are your business hours","answer":"We're open."}]}`

const tomlCatalog = `
[[entries]]
id = "hours"
question = "what are your business hours"
answer = "We're open."

[[entries]]
id = "demos"
question = "do you offer demos"
answer = "Yes."
`

func TestFileSourceFormats(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		file    string
		content string
		want    []string
	}{
		{file: "catalog.yaml", content: yamlCatalog, want: []string{"hours", "hours_hi"}},
		{file: "catalog.yml", content: yamlCatalog, want: []string{"hours", "hours_hi"}},
		{file: "catalog.json", content: jsonCatalog, want: []string{"hours"}},
		{file: "catalog.toml", content: tomlCatalog, want: []string{"hours", "demos"}},
	}

	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			source, err := NewFileSource(path)
			require.NoError(t, err)
			require.Equal(t, "file:"+path, source.Name())

			entries, err := source.Load(context.Background())
			require.NoError(t, err)
			ids := make([]string, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.ID)
			}
			require.Equal(t, tc.want, ids)
		})
	}
}

func TestFileSourceErrors(t *testing.T) {
	_, err := NewFileSource("catalog.csv")
	require.Error(t, err)

	source, err := NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	_, err = source.Load(context.Background())
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	source, err = NewFileSource(path)
	require.NoError(t, err)
	_, err = source.Load(context.Background())
	require.ErrorContains(t, err, "decode json catalog")
}

func TestEmbeddedSourceBuildsValidCatalog(t *testing.T) {
	entries, err := NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 16)
	require.Equal(t, "business_hours_en", entries[0].ID)
	require.Equal(t, "what are your business hours", entries[0].Question)

	catalog, err := faq.NewCatalog(entries)
	require.NoError(t, err)

	matcher := faq.NewMatcher(catalog, faq.DefaultMatchThreshold)
	entry, ok := matcher.FindBestMatch("aapka office kahan hai")
	require.True(t, ok)
	require.Equal(t, "location_hi", entry.ID)
}

func TestEmbeddedSourceKeepsAnswersVerbatim(t *testing.T) {
	entries, err := NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)

	answers := make(map[string]string, len(entries))
	for _, entry := range entries {
		answers[entry.ID] = entry.Answer
	}
	require.Equal(t, "हम आपकी व्यावसायिक आवश्यकताओं के आधार पर लचीले मूल्य निर्धारण योजनाएं प्रदान करते हैं। विवरण के लिए हमसे संपर्क करें。", answers["pricing_hi"])
	for _, id := range []string{"how_it_works_hi", "pricing_hi", "demos_hi"} {
		require.True(t, strings.HasSuffix(answers[id], "。"), id)
	}
	require.True(t, strings.HasSuffix(answers["business_hours_hi"], "।"))
}

func TestEncodeRoundTripsThroughDecode(t *testing.T) {
	entries := []faq.Entry{{ID: "a", Question: "kya aap demo pradaan karte hain", Answer: "हाँ।"}}
	for _, format := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		data, err := Encode(entries, format)
		require.NoError(t, err)
		decoded, err := Decode(data, format)
		require.NoError(t, err)
		require.Equal(t, entries, decoded, string(format))
	}
	_, err := Encode(entries, Format("xml"))
	require.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	format, err := FormatFromPath("faq/CATALOG.YML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, format)

	_, err = FormatFromPath("catalog")
	require.Error(t, err)
}

func TestSanitizeEndpoint(t *testing.T) {
	require.Equal(t, "account.r2.cloudflarestorage.com", sanitizeEndpoint("https://account.r2.cloudflarestorage.com/bucket"))
	require.Equal(t, "localhost:9000", sanitizeEndpoint(" http://localhost:9000 "))
	require.Equal(t, "", sanitizeEndpoint(""))
}

func TestNewObjectSourceRejectsUnknownKeyFormat(t *testing.T) {
	_, err := NewObjectSource(ObjectConfig{Endpoint: "localhost:9000", Bucket: "faq", Key: "catalog.txt"}, nil)
	require.Error(t, err)

	source, err := NewObjectSource(ObjectConfig{Endpoint: "http://localhost:9000", Bucket: "faq", Key: "omx/catalog.toml"}, nil)
	require.NoError(t, err)
	require.Equal(t, "object:faq/omx/catalog.toml", source.Name())
}

func TestScanEntries(t *testing.T) {
	rows := &fakeRows{data: [][3]string{
		{"hours", "what are your business hours", "We're open."},
		{"demos", "do you offer demos", "Yes."},
	}}
	entries, err := scanEntries(rows)
	require.NoError(t, err)
	require.Equal(t, []faq.Entry{
		{ID: "hours", Question: "what are your business hours", Answer: "We're open."},
		{ID: "demos", Question: "do you offer demos", Answer: "Yes."},
	}, entries)

	_, err = scanEntries(&fakeRows{err: errors.New("conn reset")})
	require.ErrorContains(t, err, "conn reset")
}

type fakeRows struct {
	data [][3]string
	pos  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	for i := range dest {
		*(dest[i].(*string)) = row[i]
	}
	return nil
}

func (r *fakeRows) Err() error { return r.err }
