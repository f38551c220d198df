// Package i18n compares and negotiates language codes.
//
// Codes are canonicalized with golang.org/x/text/language, so "en_us",
// "EN-us" and "en-US" compare equal. ParseAcceptLanguage negotiates an
// Accept-Language header against a list of supported languages, such as the
// languages covered by a notification's templates.
package i18n
