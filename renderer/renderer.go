// Package renderer builds the human-facing reports as markdown documents.
// The CLI decides how to display them; this package only shapes content.
package renderer
