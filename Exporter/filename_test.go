package Exporter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ChecklistPro/Exporter"
)

func TestSafeFilename(t *testing.T) {
	cases := map[string]string{
		"":                  "checklist",
		"My Checklist":      "my_checklist",
		"Site #4 (North)":   "site__4__north_",
		"already_safe":      "already_safe",
		"Przegląd":          "przegl_d",
		"Report 2026-08-28": "report_2026_08_28",
	}
	for input, want := range cases {
		assert.Equal(t, want, Exporter.SafeFilename(input), "input %q", input)
	}
}
