// Package language resolves the language names used to label the two sides
// of an aligned corpus.
//
// Configuration accepts BCP 47 tags ("ru", "en-GB"), ISO 639-2 codes ("rus")
// and English word forms ("russian"). Everything is resolved to a
// golang.org/x/text/language Tag so reports can print canonical codes and
// display names.
package language
