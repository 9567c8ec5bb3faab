// Package gadtext round-trips the legacy single-string encoding of a gender
// issue: three lines prefixed "Issue: ", "Data: " and "Source: ". The fields
// are stored natively in the database; this codec exists only for the export
// boundary and for decoding rows imported from the old system.
package gadtext

import (
	"strings"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
)

const (
	issuePrefix  = "Issue: "
	dataPrefix   = "Data: "
	sourcePrefix = "Source: "
)

// Encode serializes the three fields into the legacy blob, byte-for-byte
// compatible with previously exported data.
//
// The encoding is ambiguous when a field itself contains a newline: Decode
// will then see more than three lines and fold the overflow into whichever
// field the stray line follows without a recognized prefix. Known limitation
// of the legacy format; native storage avoids it everywhere else.
func Encode(gi domain.GenderIssue) string {
	return issuePrefix + gi.Statement + "\n" + dataPrefix + gi.DataEvidence + "\n" + sourcePrefix + gi.Source
}

// Decode splits a legacy blob back into its three fields. Missing lines decode
// to empty strings; unprefixed lines keep their full text.
func Decode(blob string) domain.GenderIssue {
	var gi domain.GenderIssue
	if blob == "" {
		return gi
	}
	parts := strings.Split(blob, "\n")
	if len(parts) > 0 {
		gi.Statement = strings.TrimPrefix(parts[0], issuePrefix)
	}
	if len(parts) > 1 {
		gi.DataEvidence = strings.TrimPrefix(parts[1], dataPrefix)
	}
	if len(parts) > 2 {
		gi.Source = strings.TrimPrefix(parts[2], sourcePrefix)
	}
	return gi
}
