package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newEmptyEnv(t)

		out := env.run("guide")
		env.contains(out, "thebook Guide")
		env.contains(out, "thebook fetch")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newEmptyEnv(t)

		out, _ := env.runErr("guide", "nonexistent")
		env.contains(out, "Available:")
		env.contains(out, "scoring")
	})
}

func TestGuide_Topics(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		contain string
	}{
		{"reader", "reader", "thebook read"},
		{"scoring", "scoring", "Relevancy"},
		{"fetch", "fetch", "thebook fetch"},
		{"config", "config", "thebook config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newEmptyEnv(t)

			out := env.run("guide", tc.topic)
			env.contains(out, tc.contain)
		})
	}
}

func TestGuide_NotFound(t *testing.T) {
	env := newEmptyEnv(t)

	_, err := env.runErr("guide", "nonexistent")
	if err == nil {
		t.Error("Guide(nonexistent) = nil, want error")
	}
}
