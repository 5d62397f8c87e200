// Package localization turns the fixed set of English interface texts into texts of a target language.
//
// A Localizer resolves the message keys one after another, in the order returned by Keys, through a
// Translator. A key whose translation fails falls back to its English source and is reported as a
// warning, so Localize never fails as a whole.
//
// Usage:
//
//	localizer := localization.NewLocalizer(translator, localization.WithLogger(logger))
//	texts := localizer.Localize(ctx, "uk")
//	fmt.Println(texts.Text(localization.KeyEnterNumbers))
package localization
