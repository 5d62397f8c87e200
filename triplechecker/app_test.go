package triplechecker_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-coursework/localization"
	"github.com/AntonStoeckl/library-coursework/shell"
	"github.com/AntonStoeckl/library-coursework/testutil/helper"
	"github.com/AntonStoeckl/library-coursework/triplechecker"
)

func runApp(t *testing.T, locale, input string, options ...triplechecker.Option) string {
	t.Helper()

	var out bytes.Buffer
	options = append(options, triplechecker.WithInput(strings.NewReader(input)), triplechecker.WithOutput(&out))

	app := triplechecker.NewApp(localization.NewLocalizer(localization.IdentityTranslator{}), locale, options...)
	require.NoError(t, app.Run(context.Background()))

	return out.String()
}

func Test_Run_PrintsHeaderAndTripleVerdict(t *testing.T) {
	output := runApp(t, "en", "3 4 5\n")

	assert.Equal(
		t,
		"Interface language: English\n"+
			strings.Repeat("=", 50)+"\n"+
			"Enter three integers a, b, c: \n"+
			"Numbers 3, 4, 5, are a Pythagorean triple. Because 3²+4²=5² (25=25).\n",
		output,
	)
}

func Test_Run_NotATriple(t *testing.T) {
	output := runApp(t, "en", "1 2 3\n")

	assert.Contains(t, output, "Numbers 1, 2, 3, are not a Pythagorean triple.\n")
}

func Test_Run_LastLineWithoutNewline(t *testing.T) {
	output := runApp(t, "en", "5 12 13")

	assert.Contains(t, output, "Because 5²+12²=13² (169=169).")
}

func Test_Run_InvalidInputPrintsValueError(t *testing.T) {
	// setup
	logHandler := helper.NewTestLogHandler(false)

	// act
	output := runApp(t, "en", "3 4\n", triplechecker.WithLogger(slog.New(logHandler)))

	// assert
	assert.True(t, strings.HasSuffix(output, "Error: Please enter three integers separated by spaces.\n"))
	assert.NotContains(t, output, "Numbers")
	assert.Len(t, logHandler.RecordsAtLevel(slog.LevelWarn), 1)
}

func Test_Run_EmptyInputPrintsGeneralError(t *testing.T) {
	output := runApp(t, "en", "")

	assert.Contains(t, output, "An error occurred: "+triplechecker.ErrNoInput.Error())
}

func Test_Run_ReadErrorPrintsGeneralError(t *testing.T) {
	var out bytes.Buffer
	app := triplechecker.NewApp(
		localization.NewLocalizer(nil),
		"en",
		triplechecker.WithInput(iotest.ErrReader(errors.New("stdin closed"))),
		triplechecker.WithOutput(&out),
	)

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "An error occurred: stdin closed")
}

func Test_Run_UsesLocalizedTexts(t *testing.T) {
	// setup
	translator := localization.TranslatorFunc(func(_ context.Context, text, locale string) (string, error) {
		return "[" + locale + "] " + text, nil
	})

	// act
	var out bytes.Buffer
	app := triplechecker.NewApp(
		localization.NewLocalizer(translator),
		"tr",
		triplechecker.WithInput(strings.NewReader("6 8 10\n")),
		triplechecker.WithOutput(&out),
	)
	require.NoError(t, app.Run(context.Background()))

	// assert
	assert.True(t, strings.HasPrefix(out.String(), "[tr] Interface language: Turkish\n"))
	assert.Contains(t, out.String(), "[tr] Numbers 6, 8, 10, [tr] are a Pythagorean triple.")
}

func Test_Run_ColorsWhenPaletteEnabled(t *testing.T) {
	output := runApp(t, "en", "3 4 5\n", triplechecker.WithPalette(shell.NewPalette(true)))

	assert.Contains(t, output, shell.ColorRed+"3, 4, 5"+shell.ColorReset)
	assert.Contains(t, output, shell.ColorCyan+"are a Pythagorean triple"+shell.ColorReset)
}
