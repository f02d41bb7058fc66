package services

import (
	"strings"
	"testing"

	"conference-management-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTemplatePlaceholders(t *testing.T) {
	got := applyTemplatePlaceholders(
		"Dear {{name}}, paper {{paper_number}} was approved. {{name}} again.",
		map[string]string{"name": "Asha Rao", "paper_number": "PAP-20260831-0001"},
	)
	assert.Equal(t, "Dear Asha Rao, paper PAP-20260831-0001 was approved. Asha Rao again.", got)
}

func TestApplyTemplatePlaceholdersUnknownKeysLeftIntact(t *testing.T) {
	got := applyTemplatePlaceholders("Hello {{name}}, ref {{missing}}", map[string]string{"name": "X"})
	assert.Equal(t, "Hello X, ref {{missing}}", got)
}

func TestDefaultTemplatesCoverEveryEvent(t *testing.T) {
	for _, key := range []string{
		models.EventPaperApproved,
		models.EventPaperRejected,
		models.EventPaymentVerified,
		models.EventPaymentRejected,
	} {
		tmpl, ok := defaultTemplates[key]
		require.True(t, ok, "missing default template for %s", key)
		assert.NotEmpty(t, tmpl.SubjectTemplate)
		assert.NotEmpty(t, tmpl.BodyTemplate)
		assert.Contains(t, tmpl.BodyTemplate, "{{name}}")
	}
}

func TestBuildEmailHTMLEscapesContent(t *testing.T) {
	html := buildEmailHTML(
		"Payment <verified>",
		[]string{"Dear A & B", "", "Amount: INR 5500"},
		[]emailMetaItem{{Label: "Transaction", Value: "TX<1>"}},
	)

	assert.Contains(t, html, "Payment &lt;verified&gt;")
	assert.Contains(t, html, "Dear A &amp; B")
	assert.Contains(t, html, "TX&lt;1&gt;")
	assert.NotContains(t, html, "TX<1>")
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
}

func TestBuildEmailHTMLSkipsEmptyMeta(t *testing.T) {
	html := buildEmailHTML("Subject", []string{"Body"}, []emailMetaItem{{Label: "Empty", Value: "  "}})
	assert.NotContains(t, html, "<table")
}
