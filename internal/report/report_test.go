package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetDelta/internal/delta"
	"sheetDelta/internal/sheet"
)

var lots = delta.EntityPair{Primary: "LOTA", Secondary: "LOTB"}

func testSpec(t *testing.T, showRow bool) delta.Spec {
	t.Helper()
	spec, err := delta.NewSpec("test").
		Field("Step", []int{2, 3}, []int{12, 13}).
		KeyField("Operation", 4, 20).
		ShowRow(showRow).
		Build()
	require.NoError(t, err)
	return spec
}

func testRecords() []delta.Record {
	return []delta.Record{
		{
			Row:       26,
			Primary:   []delta.FieldValue{{sheet.Number(100), sheet.Null()}, {sheet.Text("OP20")}},
			Secondary: []delta.FieldValue{{sheet.Null(), sheet.Text("Rinse")}, {sheet.Text("OP30")}},
		},
		{
			Row:       31,
			Primary:   []delta.FieldValue{{sheet.Number(110), sheet.Text("Dry")}, {sheet.Number(5)}},
			Secondary: []delta.FieldValue{{sheet.Number(110), sheet.Text("Dry")}, {sheet.Text("5")}},
		},
	}
}

func TestRender_Table(t *testing.T) {
	body, err := NewRenderer(testSpec(t, false)).Render(lots, testRecords())
	require.NoError(t, err)

	assert.False(t, body.Empty)
	assert.Empty(t, body.Message)
	assert.Equal(t, []string{"LOTA Step", "LOTA Operation", "LOTB Step", "LOTB Operation"}, body.Header)
	assert.Equal(t, [][]string{
		{"100 ", "OP20", " Rinse", "OP30"},
		{"110 Dry", "5", "110 Dry", "5"},
	}, body.Rows)
}

func TestRender_ShowRow(t *testing.T) {
	body, err := NewRenderer(testSpec(t, true)).Render(lots, testRecords())
	require.NoError(t, err)

	assert.Equal(t, RowHeader, body.Header[0])
	assert.Equal(t, "26", body.Rows[0][0])
	assert.Equal(t, "31", body.Rows[1][0])
	assert.Len(t, body.Rows[0], len(body.Header))
}

func TestRender_Empty(t *testing.T) {
	body, err := NewRenderer(testSpec(t, false)).Render(lots, nil)
	require.NoError(t, err)

	assert.True(t, body.Empty)
	assert.Equal(t, "No differences found between LOTA and LOTB.", body.Message)
	assert.Nil(t, body.Header)
	assert.Nil(t, body.Rows)
}

func TestRender_MissingPair(t *testing.T) {
	r := NewRenderer(testSpec(t, false))
	for _, pair := range []delta.EntityPair{
		{},
		{Primary: "LOTA"},
		{Secondary: "LOTB"},
	} {
		_, err := r.Render(pair, testRecords())
		assert.ErrorIs(t, err, ErrMissingPair, "pair %+v", pair)
	}
}

func TestFormats_Deterministic(t *testing.T) {
	r := NewRenderer(testSpec(t, true))

	for _, f := range []Format{FormatHTML, FormatMarkdown, FormatTerminal, FormatTOON} {
		t.Run(string(f), func(t *testing.T) {
			b1, err := r.Render(lots, testRecords())
			require.NoError(t, err)
			b2, err := r.Render(lots, testRecords())
			require.NoError(t, err)

			out1, err := Encode(f, b1)
			require.NoError(t, err)
			out2, err := Encode(f, b2)
			require.NoError(t, err)

			assert.Equal(t, out1, out2)
			assert.Contains(t, out1, "LOTA")
			assert.Contains(t, out1, "LOTB")
		})
	}
}

func TestFormats_EmptyIsDistinct(t *testing.T) {
	r := NewRenderer(testSpec(t, false))
	empty, err := r.Render(lots, nil)
	require.NoError(t, err)

	html, err := HTML(empty)
	require.NoError(t, err)
	assert.Contains(t, html, "No differences found between <b>LOTA</b> and <b>LOTB</b>.")
	assert.NotContains(t, html, "<table")

	assert.Equal(t, "No differences found between LOTA and LOTB.\n", Markdown(empty))
	assert.Equal(t, "No differences found between LOTA and LOTB.\n", Terminal(empty))
	assert.NotContains(t, Terminal(empty), "Operation")
}

func TestHTML_Table(t *testing.T) {
	body, err := NewRenderer(testSpec(t, false)).Render(lots, testRecords())
	require.NoError(t, err)

	html, err := HTML(body)
	require.NoError(t, err)

	assert.Contains(t, html, "<table")
	assert.Contains(t, html, "2 row(s)")
	assert.Equal(t, 2, strings.Count(html, "<tr><td"))
	assert.Contains(t, html, ">LOTA Operation</th>")
	assert.Contains(t, html, ">OP30</td>")
}

func TestHTML_Escapes(t *testing.T) {
	body := Body{
		Pair:   lots,
		Header: []string{"LOTA Note"},
		Rows:   [][]string{{"<script>"}},
	}
	html, err := HTML(body)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestMarkdown_Table(t *testing.T) {
	body := Body{
		Pair:   lots,
		Header: []string{"LOTA Op", "LOTB Op"},
		Rows:   [][]string{{"OP|20", ""}},
	}

	md := Markdown(body)
	require.True(t, strings.HasPrefix(md, "# Deltas: LOTA vs LOTB\n\n"))

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(md, "# Deltas: LOTA vs LOTB\n\n"), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^\| LOTA Op +\| LOTB Op +\|$`, lines[0])
	assert.Regexp(t, `^\|-+\|-+\|$`, lines[1])
	assert.Regexp(t, `^\| OP\\\|20 +\| +\|$`, lines[2])
}

func TestTOON_Table(t *testing.T) {
	body := Body{
		Pair:   lots,
		Header: []string{"LOTA Op", "LOTB Op"},
		Rows:   [][]string{{"OP20", "OP30"}},
	}

	out, err := TOON(body)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "[3]:", lines[0])
	assert.Contains(t, lines[1], "LOTA,LOTB")
	assert.Contains(t, lines[2], "LOTA Op,LOTB Op")
	assert.Contains(t, lines[3], "OP20,OP30")
}

func TestTOON_Empty(t *testing.T) {
	out, err := TOON(Body{Pair: lots, Empty: true, Message: NoDifferencesMessage(lots)})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "LOTA,LOTB")
	assert.Contains(t, lines[2], "No differences found between LOTA and LOTB.")
}

func TestFormats_StableAcrossCalls(t *testing.T) {
	body, err := NewRenderer(testSpec(t, true)).Render(lots, testRecords())
	require.NoError(t, err)
	empty, err := NewRenderer(testSpec(t, true)).Render(lots, nil)
	require.NoError(t, err)

	for _, f := range []Format{FormatHTML, FormatMarkdown, FormatTerminal, FormatTOON} {
		for name, b := range map[string]Body{"table": body, "empty": empty} {
			t.Run(string(f)+"/"+name, func(t *testing.T) {
				seen := map[string]bool{}
				for range 50 {
					out, err := Encode(f, b)
					require.NoError(t, err)
					seen[out] = true
				}
				assert.Len(t, seen, 1)
			})
		}
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(Format("pdf"), Body{Empty: true})
	assert.Error(t, err)
}
