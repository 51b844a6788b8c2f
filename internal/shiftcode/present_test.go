package shiftcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStores map[string]Color

func (f fakeStores) StoreColor(store string) (Color, bool) {
	c, ok := f[store]
	return c, ok
}

type fakeHolidays map[string]bool

func (f fakeHolidays) IsHoliday(date time.Time) bool {
	return f[date.Format("2006-01-02")]
}

var testStores = fakeStores{"本店": "#0070C2", "武店": "#D2A000"}

func newTestPresenter() *Presenter {
	return NewPresenter(nil, testStores, DefaultPalette())
}

func TestPresent_Dash(t *testing.T) {
	got := newTestPresenter().PresentRaw(RawOf("-"), Context{Medium: MediumScreen, Weekday: time.Monday})
	assert.Equal(t, []Span{{Text: "-"}}, got.Spans)
	assert.Empty(t, got.RowBackground)
}

func TestPresent_SpecialKeywords(t *testing.T) {
	pal := DefaultPalette()
	for _, k := range DefaultSpecialKinds {
		got := newTestPresenter().Present(ParseString(string(k)), Context{Medium: MediumScreen, Weekday: time.Tuesday})
		require.Len(t, got.Spans, 1)
		assert.Equal(t, Span{Text: string(k), Background: pal.Specials[k], Bold: true}, got.Spans[0])
		assert.NotEmpty(t, got.Spans[0].Background)
	}
}

func TestPresent_UnknownSpecialKeywordHasNoBackground(t *testing.T) {
	pr := NewPresenter(NewParser(append(DefaultSpecialKinds, "出張")...), testStores, DefaultPalette())
	got := pr.PresentRaw(RawOf("出張"), Context{Medium: MediumPrint, Weekday: time.Wednesday})

	require.Len(t, got.Spans, 1)
	assert.Equal(t, Span{Text: "出張", Bold: true}, got.Spans[0])
}

func TestPresent_KeywordOutsideVocabularyIsBold(t *testing.T) {
	got := newTestPresenter().PresentRaw(RawOf("出張"), Context{Medium: MediumScreen, Weekday: time.Tuesday})

	require.Len(t, got.Spans, 1)
	assert.Equal(t, Span{Text: "出張", Bold: true}, got.Spans[0])
}

func TestPresent_PlainKeepsEmptyKindToken(t *testing.T) {
	got := newTestPresenter().PresentRaw(RawOf("10-12@本店,14@郡元店"), Context{Medium: MediumPlain})
	assert.Equal(t, ",14@郡元店", got.Text())

	screen := newTestPresenter().PresentRaw(RawOf("10-12@本店,14@郡元店"), Context{Medium: MediumScreen})
	assert.Equal(t, "14@郡元店", screen.Text())
}

func TestPresent_AvailabilityScreen(t *testing.T) {
	pal := DefaultPalette()
	got := newTestPresenter().PresentRaw(RawOf("AM可,10-12@本店,13@武店"), Context{Medium: MediumScreen, Weekday: time.Thursday})

	assert.Equal(t, []Span{
		{Text: "AM可", Color: pal.KindLabel},
		{Text: "10-12@本店", Color: "#0070C2"},
		{Text: "13@武店", Color: "#D2A000"},
	}, got.Spans)
	assert.Equal(t, "AM可\n10-12@本店\n13@武店", got.Text())
}

func TestPresent_UnknownStoreUsesNeutralColor(t *testing.T) {
	pal := DefaultPalette()
	got := newTestPresenter().PresentRaw(RawOf("PM可,15@どこか,16"), Context{Medium: MediumPrint})

	require.Len(t, got.Spans, 3)
	assert.Equal(t, pal.Neutral, got.Spans[1].Color)
	assert.Equal(t, pal.Neutral, got.Spans[2].Color)
}

func TestPresent_PlainDropsStyling(t *testing.T) {
	ctx := Context{Medium: MediumPlain, Weekday: time.Sunday, IsHoliday: true}
	pr := newTestPresenter()

	got := pr.PresentRaw(RawOf("AM可,10-12@本店,13@武店"), ctx)
	assert.Empty(t, got.RowBackground)
	for _, s := range got.Spans {
		assert.Empty(t, s.Color)
		assert.Empty(t, s.Background)
		assert.False(t, s.Bold)
	}
	assert.Equal(t, "AM可,10-12@本店,13@武店", got.Text())

	special := pr.PresentRaw(RawOf("休み"), ctx)
	assert.Equal(t, []Span{{Text: "休み"}}, special.Spans)
}

func TestRowBackground_Precedence(t *testing.T) {
	pal := DefaultPalette()
	pr := newTestPresenter()
	holidays := fakeHolidays{"2026-11-03": true, "2026-11-22": true}

	tests := []struct {
		name string
		date time.Time
		want Color
	}{
		{"weekday", time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC), ""},
		{"saturday", time.Date(2026, 11, 7, 0, 0, 0, 0, time.UTC), pal.Saturday},
		{"sunday", time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC), pal.Holiday},
		{"weekday holiday", time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC), pal.Holiday},
		{"sunday holiday", time.Date(2026, 11, 22, 0, 0, 0, 0, time.UTC), pal.Holiday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(MediumScreen, tt.date, holidays)
			assert.Equal(t, tt.want, pr.RowBackground(ctx))
			assert.Equal(t, tt.want, pr.PresentRaw(RawOf("-"), ctx).RowBackground)
		})
	}
}

func TestRowBackground_SaturdayHolidayTakesHoliday(t *testing.T) {
	pal := DefaultPalette()
	ctx := Context{Medium: MediumPrint, Weekday: time.Saturday, IsHoliday: true}
	assert.Equal(t, pal.Holiday, newTestPresenter().RowBackground(ctx))
}

func TestColor_RGB(t *testing.T) {
	r, g, b, ok := Color("#0070C2").RGB()
	require.True(t, ok)
	assert.Equal(t, []int{0, 0x70, 0xC2}, []int{r, g, b})

	_, _, _, ok = Color("").RGB()
	assert.False(t, ok)
	assert.False(t, Color("#12345").Valid())
	assert.False(t, Color("#GG0000").Valid())
}
