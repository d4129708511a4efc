package sender

import (
	"fmt"
	"strings"

	"github.com/osteele/liquid"

	"github.com/ignite/mersal-sms/internal/contacts"
)

// nameToken is the legacy placeholder the web UI documents. Only the
// FIRST occurrence is replaced; that is long-standing behavior the
// product decided to keep.
const nameToken = "{name}"

// ResolveMessage produces the final text for one contact. A non-empty
// per-row custom message wins and is used verbatim, with no
// substitution of any kind. Otherwise the shared template is used with
// the first {name} token replaced by the contact's name.
func ResolveMessage(template string, c contacts.Contact) string {
	if strings.TrimSpace(c.CustomMessage) != "" {
		return c.CustomMessage
	}
	return strings.Replace(template, nameToken, c.Name, 1)
}

// TemplateService renders Liquid personalization in shared templates.
// Plain templates (no Liquid markup) never pass through the engine, so
// the legacy {name} semantics above are untouched.
type TemplateService struct {
	engine *liquid.Engine
}

// NewTemplateService creates the Liquid engine with SMS-appropriate
// filters.
func NewTemplateService() *TemplateService {
	engine := liquid.NewEngine()

	// Default value filter: {{ name | default: "customer" }}
	engine.RegisterFilter("default", func(value interface{}, defaultVal string) interface{} {
		if value == nil {
			return defaultVal
		}
		strVal := fmt.Sprintf("%v", value)
		if strVal == "" || strVal == "<nil>" {
			return defaultVal
		}
		return value
	})

	// Capitalize first letter: {{ name | capitalize }}
	engine.RegisterFilter("capitalize", func(s string) string {
		if len(s) == 0 {
			return s
		}
		return strings.ToUpper(string(s[0])) + strings.ToLower(s[1:])
	})

	// Truncate with ellipsis, SMS budgets are tight: {{ name | truncate: 20 }}
	engine.RegisterFilter("truncate", func(s string, length int) string {
		if len(s) <= length {
			return s
		}
		if length <= 3 {
			return s[:length]
		}
		return s[:length-3] + "..."
	})

	return &TemplateService{engine: engine}
}

// HasLiquidMarkup reports whether a template needs the Liquid engine.
func HasLiquidMarkup(template string) bool {
	return strings.Contains(template, "{{") || strings.Contains(template, "{%")
}

// Render runs a template through Liquid with per-contact bindings.
// Rendering is lax: on error the original text is returned so a bad
// template degrades to a literal message instead of blocking the send.
func (ts *TemplateService) Render(template string, c contacts.Contact) string {
	bindings := map[string]interface{}{
		"name":  c.Name,
		"phone": c.Phone,
	}

	out, err := ts.engine.ParseAndRenderString(template, bindings)
	if err != nil {
		return template
	}
	return out
}
