package mistral

import (
	"fmt"
	"strings"

	"github.com/DEEPAK-KUMAR-SINGH1/panextract/ai"
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/core"
)

const extractionPromptTemplate = `You are an information extraction assistant.
From the text you are given, extract:
- Entities: %s
- Relation: %s (linking the PAN to the Name)

Output in CSV format with columns:
%s

Rules:
- Emit exactly one row per extracted relation, nothing else. No header row,
  no preamble, no explanation, no markdown code fences.
- Wrap any field that contains a comma or a double quote in double quotes,
  doubling embedded quotes ("" for a literal ").
- If the organisation is unknown, leave that field blank.
- If the text contains no extractable relation, output nothing.`

const segmentPromptTemplate = "Text (Part %d/%d):\n\n%s"

// buildSystemPrompt renders the extraction instructions for the run's
// schema. The schema is fixed per run, so the rendered prompt is the same
// for every segment.
func buildSystemPrompt(schema ai.Schema) string {
	return fmt.Sprintf(extractionPromptTemplate,
		strings.Join(schema.Entities, ", "),
		schema.Relation,
		strings.Join(schema.Columns, ","))
}

// buildSegmentPrompt renders the per-segment message: the segment's
// position within the document for context, then its content verbatim.
func buildSegmentPrompt(segment core.Segment) string {
	return fmt.Sprintf(segmentPromptTemplate, segment.Index, segment.Total, segment.Content)
}
