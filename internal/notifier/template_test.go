package notifier

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		vars map[string]string
		want string
	}{
		{
			"simple substitution",
			"Dear {{name}}, see you at {{event}}.",
			map[string]string{"name": "Dr. Rao", "event": "AMASICON"},
			"Dear Dr. Rao, see you at AMASICON.",
		},
		{
			"unresolved placeholders stripped",
			"Hello {{name}}, your hall is {{hall}}.",
			map[string]string{"name": "A"},
			"Hello A, your hall is .",
		},
		{
			"no escaping",
			"{{html}}",
			map[string]string{"html": "<b>hi</b>"},
			"<b>hi</b>",
		},
		{
			"whitespace inside braces",
			"{{ name }}",
			map[string]string{"name": "B"},
			"B",
		},
		{
			"no placeholders",
			"plain text",
			nil,
			"plain text",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.tpl, tc.vars); got != tc.want {
				t.Errorf("Render(%q) = %q, want %q", tc.tpl, got, tc.want)
			}
		})
	}
}
