package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/domain"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftGridCSV_RoundTrip(t *testing.T) {
	p := calendar.PeriodFor(2026, 10)
	grid := domain.NewShiftGrid([]*domain.ShiftRecord{
		{Date: day(10, 16), Employee: "佐渡", Raw: shiftcode.RawOf("AM可,9-12@本店,13-15@武店")},
		{Date: day(10, 16), Employee: "大塚", Raw: shiftcode.RawOf("休み")},
		{Date: day(11, 15), Employee: "大塚", Raw: shiftcode.RawOf(" 1日可 ")},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteShiftGridCSV(&buf, p, []string{"佐渡", "大塚"}, grid))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 32)
	assert.Equal(t, "日付,曜日,佐渡,大塚", lines[0])
	assert.Equal(t, `2026-10-16,金,"AM可,9-12@本店,13-15@武店",休み`, lines[1])
	assert.Equal(t, "2026-10-17,土,,", lines[2])

	records, err := ReadShiftGridCSV(&buf)
	require.NoError(t, err)
	require.Len(t, records, 62)

	back := domain.NewShiftGrid(records)
	assert.Equal(t, "AM可,9-12@本店,13-15@武店", back.Get(day(10, 16), "佐渡").Value)
	assert.Equal(t, " 1日可 ", back.Get(day(11, 15), "大塚").Value, "codes are carried verbatim")
	assert.False(t, back.Get(day(10, 17), "佐渡").Present)
}

func TestReadShiftGridCSV_BOMAndNoWeekday(t *testing.T) {
	in := "\ufeff日付,佐渡\n2026-10-20,PM可\n"

	records, err := ReadShiftGridCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "佐渡", records[0].Employee)
	assert.Equal(t, "PM可", records[0].Raw.Value)
	assert.Equal(t, day(10, 20), records[0].Date)
}

func TestReadShiftGridCSV_Errors(t *testing.T) {
	_, err := ReadShiftGridCSV(strings.NewReader("name,佐渡\n"))
	assert.ErrorContains(t, err, "first column")

	_, err = ReadShiftGridCSV(strings.NewReader("日付,佐渡\n10/20,AM可\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestWriteHelpRequestsCSV_HasBOM(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHelpRequestsCSV(&buf, []*domain.HelpRequest{
		{Date: day(10, 20), Store: "本店", HelpTime: "10-15"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff"))
	assert.Contains(t, out, "日付,店舗,ヘルプ時間\n2026-10-20,本店,10-15\n")
}

func TestWriteHelpTableCSV_UsesCanonicalCodes(t *testing.T) {
	var buf bytes.Buffer
	// Built for the screen medium; the CSV still gets comma-joined codes.
	require.NoError(t, WriteHelpTableCSV(&buf, sampleHelpTable(shiftcode.MediumScreen)))

	out := strings.TrimPrefix(buf.String(), "\ufeff")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `2026-10-16,金,"AM可,9-12@本店",休み`, lines[1])
	assert.Equal(t, `2026-10-17,土,-,"PM可,13-17"`, lines[2])
}
