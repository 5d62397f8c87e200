package triplechecker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonStoeckl/library-coursework/localization"
	"github.com/AntonStoeckl/library-coursework/pythagoras"
	"github.com/AntonStoeckl/library-coursework/shell"
)

const (
	separatorChar   = "="
	separatorLength = 50

	logMsgRunStarted   = "triple checker started"
	logMsgInvalidInput = "invalid input"
	logMsgRunFailed    = "triple checker failed"
	logMsgClassified   = "input classified"
	logAttrLocale      = "locale"
	logAttrError       = "error"
	logAttrIsTriple    = "is_triple"
)

// ErrNoInput is reported when the input ends before a line could be read.
var ErrNoInput = errors.New("no input")

// App runs one interactive check.
type App struct {
	localizer localization.Localizer
	locale    string
	in        io.Reader
	out       io.Writer
	palette   shell.Palette
	logger    shell.Logger
}

// Option defines a functional option for configuring App.
type Option func(*App)

// WithInput sets the reader the numbers are read from. Default is os.Stdin.
func WithInput(in io.Reader) Option {
	return func(a *App) {
		a.in = in
	}
}

// WithOutput sets the writer for all user-facing output. Default is os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(a *App) {
		a.out = out
	}
}

// WithPalette sets the console colors. Default is no colors.
func WithPalette(palette shell.Palette) Option {
	return func(a *App) {
		a.palette = palette
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger shell.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates an App that localizes its texts into locale.
func NewApp(localizer localization.Localizer, locale string, options ...Option) *App {
	app := &App{
		localizer: localizer,
		locale:    locale,
		in:        os.Stdin,
		out:       os.Stdout,
		palette:   shell.NewPalette(false),
	}

	for _, option := range options {
		option(app)
	}

	return app
}

// Run performs one check. Every failure is reported on the output, so Run only returns an error
// when the output itself cannot be written.
func (a *App) Run(ctx context.Context) error {
	a.logInfo(logMsgRunStarted, logAttrLocale, a.locale)

	texts := a.localizer.Localize(ctx, a.locale)

	if err := a.printHeader(texts); err != nil {
		return err
	}

	line, err := a.readLine(ctx, texts)
	if err != nil {
		return a.printGeneralError(texts, err)
	}

	triple, err := pythagoras.ParseInput(line)
	if err != nil {
		a.logWarn(logMsgInvalidInput, logAttrError, err.Error())
		_, writeErr := fmt.Fprintln(a.out, a.palette.Red(texts.Text(localization.KeyErrorValue)))

		return writeErr
	}

	result := pythagoras.Classify(triple.A, triple.B, triple.C)
	a.logDebug(logMsgClassified, logAttrIsTriple, result.IsTriple)

	sentence := pythagoras.RenderDecorated(triple, result, texts, pythagoras.Decorations{
		Numbers: a.palette.Red,
		Verdict: a.palette.Cyan,
	})

	_, err = fmt.Fprintf(a.out, "\n%s\n", sentence)

	return err
}

func (a *App) printHeader(texts localization.Texts) error {
	header := fmt.Sprintf("%s: %s", texts.Text(localization.KeyTitle), localization.LanguageName(a.locale))

	_, err := fmt.Fprintf(
		a.out,
		"%s\n%s\n",
		a.palette.Cyan(header),
		a.palette.Separator(separatorChar, separatorLength),
	)

	return err
}

func (a *App) readLine(ctx context.Context, texts localization.Texts) (string, error) {
	if _, err := fmt.Fprint(a.out, texts.Text(localization.KeyEnterNumbers)); err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}

		if strings.TrimSpace(line) == "" {
			return "", ErrNoInput
		}
	}

	return line, nil
}

func (a *App) printGeneralError(texts localization.Texts, cause error) error {
	a.logError(logMsgRunFailed, logAttrError, cause.Error())

	_, err := fmt.Fprintln(a.out, a.palette.Red(fmt.Sprintf("%s: %v", texts.Text(localization.KeyErrorGeneral), cause)))

	return err
}

func (a *App) logDebug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}

func (a *App) logInfo(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Info(msg, args...)
	}
}

func (a *App) logWarn(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}

func (a *App) logError(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Error(msg, args...)
	}
}
