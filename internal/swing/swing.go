// Package swing predicts kinase activity from phosphoproteomic data. It
// builds position weight matrices from known kinase-substrate sequences,
// scores observed phosphopeptides against them with an empirical null, and
// integrates match significance with fold change into a signed "swing"
// activity score per kinase.
package swing

import (
	"log"
	"os"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)
