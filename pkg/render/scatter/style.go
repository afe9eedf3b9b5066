package scatter

import (
	"bytes"
	"encoding/xml"
)

// Chart colors.
const (
	ColorBase   = "#1f77b4"
	ColorMuted  = "#b0b0b0"
	ColorPareto = "#d62728"
	ColorSlater = "#2ca02c"
	ColorBoth   = "#9467bd"
	ColorText   = "#333333"
	ColorGrid   = "#e0e0e0"
)

const (
	fontFamily    = "Helvetica, Arial, sans-serif"
	pointRadius   = 6.0
	labelOffset   = 8.0
	labelLineStep = 14.0
)

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
